package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/internal/models"
	"github.com/hireloop/interview-api/internal/service"
	"github.com/hireloop/interview-api/pkg/response"
)

// InterviewerHandler exposes interviewer CRUD endpoints.
type InterviewerHandler struct {
	svc *service.InterviewerService
}

// NewInterviewerHandler creates an interviewer handler.
func NewInterviewerHandler(svc *service.InterviewerService) *InterviewerHandler {
	return &InterviewerHandler{svc: svc}
}

// RegisterRoutes mounts the interviewer endpoints.
func (h *InterviewerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/interviewers", h.Create)
	rg.GET("/interviewers", h.List)
	rg.GET("/interviewers/:id", h.Get)
	rg.PATCH("/interviewers/:id", h.Update)
	rg.DELETE("/interviewers/:id", h.Delete)
}

// Create godoc
// @Summary      Register an interviewer
// @Tags         interviewers
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CreateInterviewerRequest  true  "interviewer"
// @Success      201      {object}  response.Envelope
// @Router       /interviewers [post]
func (h *InterviewerHandler) Create(c *gin.Context) {
	var req dto.CreateInterviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	iv, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, iv)
}

// List godoc
// @Summary      List interviewers
// @Tags         interviewers
// @Produce      json
// @Param        page     query     int  false  "page"
// @Param        perPage  query     int  false  "page size"
// @Success      200      {object}  response.Envelope
// @Router       /interviewers [get]
func (h *InterviewerHandler) List(c *gin.Context) {
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
// @Summary      Fetch an interviewer
// @Tags         interviewers
// @Produce      json
// @Param        id   path      int  true  "interviewer id"
// @Success      200  {object}  response.Envelope
// @Failure      404  {object}  response.Envelope
// @Router       /interviewers/{id} [get]
func (h *InterviewerHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	iv, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, iv)
}

// Update godoc
// @Summary      Update an interviewer
// @Tags         interviewers
// @Accept       json
// @Produce      json
// @Param        id       path      int                           true  "interviewer id"
// @Param        request  body      dto.UpdateInterviewerRequest  true  "fields to update"
// @Success      200      {object}  response.Envelope
// @Router       /interviewers/{id} [patch]
func (h *InterviewerHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.UpdateInterviewerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	iv, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, iv)
}

// Delete godoc
// @Summary      Delete an interviewer
// @Tags         interviewers
// @Param        id  path  int  true  "interviewer id"
// @Success      204
// @Router       /interviewers/{id} [delete]
func (h *InterviewerHandler) Delete(c *gin.Context) {
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
