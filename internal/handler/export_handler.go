package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/internal/service"
	"github.com/hireloop/interview-api/pkg/response"
)

// ExportHandler exposes async roster export endpoints.
type ExportHandler struct {
	svc     *service.ExportService
	metrics *service.Metrics
}

// NewExportHandler creates an export handler.
func NewExportHandler(svc *service.ExportService, metrics *service.Metrics) *ExportHandler {
	return &ExportHandler{svc: svc, metrics: metrics}
}

// RegisterRoutes mounts the export endpoints.
func (h *ExportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/exports", h.Create)
	rg.GET("/exports/:id", h.Get)
	rg.GET("/exports/:id/download", h.Download)
}

// Create godoc
// @Summary      Request a roster export
// @Description  Queues generation of a CSV or PDF roster for a job.
// @Tags         exports
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateExportRequest  true  "export request"
// @Success      202      {object}  response.Envelope
// @Router       /exports [post]
func (h *ExportHandler) Create(c *gin.Context) {
	var req dto.CreateExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	job, err := h.svc.CreateExport(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.RecordExport(req.Format)
	response.Accepted(c, job)
}

// Get godoc
// @Summary      Export job status
// @Tags         exports
// @Produce      json
// @Param        id   path      string  true  "export id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /exports/{id} [get]
func (h *ExportHandler) Get(c *gin.Context) {
	job, err := h.svc.GetExport(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, job)
}

// Download godoc
// @Summary      Download a finished export
// @Description  Streams the artifact. Requires the signed expires/signature
// @Description  query parameters issued with the job status.
// @Tags         exports
// @Produce      octet-stream
// @Param        id         path   string  true  "export id"
// @Param        expires    query  string  true  "expiry timestamp"
// @Param        signature  query  string  true  "request signature"
// @Success      200
// @Failure      400  {object}  response.Envelope
// @Router       /exports/{id}/download [get]
func (h *ExportHandler) Download(c *gin.Context) {
	id := c.Param("id")
	rc, contentType, err := h.svc.Download(c.Request.Context(), id,
		c.Query("expires"), c.Query("signature"))
	if err != nil {
		response.Error(c, err)
		return
	}
	defer rc.Close()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "roster-"+id))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		_ = c.Error(err)
	}
}
