package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/internal/models"
	"github.com/hireloop/interview-api/internal/service"
	apperrors "github.com/hireloop/interview-api/pkg/errors"
	"github.com/hireloop/interview-api/pkg/response"
)

// ApplicantHandler exposes applicant CRUD endpoints.
type ApplicantHandler struct {
	svc *service.ApplicantService
}

// NewApplicantHandler creates an applicant handler.
func NewApplicantHandler(svc *service.ApplicantService) *ApplicantHandler {
	return &ApplicantHandler{svc: svc}
}

// RegisterRoutes mounts the applicant endpoints.
func (h *ApplicantHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applicants", h.Create)
	rg.GET("/applicants", h.List)
	rg.GET("/applicants/:id", h.Get)
	rg.PATCH("/applicants/:id", h.Update)
	rg.DELETE("/applicants/:id", h.Delete)
	rg.GET("/jobs/:jobId/applicants", h.ListByJob)
}

// Create godoc
// @Summary      Register an applicant
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateApplicantRequest  true  "applicant"
// @Success      201      {object}  response.Envelope
// @Router       /applicants [post]
func (h *ApplicantHandler) Create(c *gin.Context) {
	var req dto.CreateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	a, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, a)
}

// List godoc
// @Summary      List applicants
// @Tags         applicants
// @Produce      json
// @Param        page     query     int  false  "page"
// @Param        perPage  query     int  false  "page size"
// @Success      200      {object}  response.Envelope
// @Router       /applicants [get]
func (h *ApplicantHandler) List(c *gin.Context) {
	var p models.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.ValidationError(c, err.Error())
		return
	}
	p.Normalize()

	items, total, err := h.svc.List(c.Request.Context(), p)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Paginated(c, items, p.Page, p.PerPage, total)
}

// Get godoc
// @Summary      Fetch an applicant
// @Tags         applicants
// @Produce      json
// @Param        id   path      int  true  "applicant id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /applicants/{id} [get]
func (h *ApplicantHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	a, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, a)
}

// Update godoc
// @Summary      Update an applicant
// @Tags         applicants
// @Accept       json
// @Produce      json
// @Param        id       path      int                         true  "applicant id"
// @Param        request  body      dto.UpdateApplicantRequest  true  "fields to update"
// @Success      200      {object}  response.Envelope
// @Router       /applicants/{id} [patch]
func (h *ApplicantHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateApplicantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	a, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, a)
}

// Delete godoc
// @Summary      Delete an applicant
// @Tags         applicants
// @Param        id  path  int  true  "applicant id"
// @Success      204
// @Router       /applicants/{id} [delete]
func (h *ApplicantHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListByJob godoc
// @Summary      List applicants for a job
// @Tags         applicants
// @Produce      json
// @Param        jobId  path      int  true  "job id"
// @Success      200    {object}  response.Envelope
// @Router       /jobs/{jobId}/applicants [get]
func (h *ApplicantHandler) ListByJob(c *gin.Context) {
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

func parseID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.Clone(apperrors.ErrValidation, "invalid id")
	}
	return id, nil
}
