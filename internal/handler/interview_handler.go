package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/interview-api/internal/service"
	"github.com/hireloop/interview-api/pkg/response"
)

// InterviewHandler exposes committed interview endpoints.
type InterviewHandler struct {
	svc *service.InterviewService
}

// NewInterviewHandler creates an interview handler.
func NewInterviewHandler(svc *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{svc: svc}
}

// RegisterRoutes mounts the interview endpoints.
func (h *InterviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/jobs/:jobId/interviews", h.ListByJob)
	rg.DELETE("/interviews/:id", h.Cancel)
}

// ListByJob godoc
// @Summary      List scheduled interviews for a job
// @Tags         interviews
// @Produce      json
// @Param        jobId  path      int  true  "job id"
// @Success      200    {object}  response.Envelope
// @Router       /jobs/{jobId}/interviews [get]
func (h *InterviewHandler) ListByJob(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.svc.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Cancel godoc
// @Summary      Cancel a scheduled interview
// @Tags         interviews
// @Param        id  path  int  true  "interview id"
// @Success      204
// @Failure      404  {object}  response.Envelope
// @Router       /interviews/{id} [delete]
func (h *InterviewHandler) Cancel(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.svc.Cancel(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
