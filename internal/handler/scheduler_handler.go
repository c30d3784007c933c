package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/internal/service"
	apperrors "github.com/hireloop/interview-api/pkg/errors"
	"github.com/hireloop/interview-api/pkg/response"
)

// SchedulerHandler exposes the scheduling engine over HTTP.
type SchedulerHandler struct {
	svc     *service.SchedulerService
	metrics *service.Metrics
}

// NewSchedulerHandler creates a scheduler handler.
func NewSchedulerHandler(svc *service.SchedulerService, metrics *service.Metrics) *SchedulerHandler {
	return &SchedulerHandler{svc: svc, metrics: metrics}
}

// RegisterRoutes mounts the scheduler endpoints.
func (h *SchedulerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/algorithms", h.ListAlgorithms)
	rg.POST("/schedules/generate", h.Generate)
	rg.POST("/schedules/commit", h.Commit)
	rg.GET("/jobs/:jobId/report", h.Report)
	rg.GET("/jobs/:jobId/scheduling-config", h.SavedConfig)
}

// ListAlgorithms godoc
// @Summary      List scheduling algorithms
// @Description  Returns every registered strategy with its config schema.
// @Tags         scheduler
// @Produce      json
// @Success      200  {object}  response.Envelope
// @Router       /algorithms [get]
func (h *SchedulerHandler) ListAlgorithms(c *gin.Context) {
	response.OK(c, h.svc.Algorithms())
}

// Generate godoc
// @Summary      Generate a schedule proposal
// @Description  Runs the chosen algorithm over the job's applicants and
// @Description  interviewers. The result is held as a proposal until committed.
// @Tags         scheduler
// @Accept       json
// @Produce      json
// @Param        request  body      dto.GenerateScheduleRequest  true  "generation request"
// @Success      200      {object}  response.Envelope
// @Failure      400      {object}  response.Envelope
// @Router       /schedules/generate [post]
func (h *SchedulerHandler) Generate(c *gin.Context) {
	var req dto.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	resp, err := h.svc.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.RecordSchedulerRun(resp.Algorithm, len(resp.Result.Interviews), len(resp.Result.Unmatched))
	response.OK(c, resp)
}

// Commit godoc
// @Summary      Commit a schedule proposal
// @Description  Persists all interviews of a pending proposal atomically.
// @Tags         scheduler
// @Accept       json
// @Produce      json
// @Param        request  body      dto.CommitScheduleRequest  true  "commit request"
// @Success      200      {object}  response.Envelope
// @Failure      404      {object}  response.Envelope
// @Router       /schedules/commit [post]
func (h *SchedulerHandler) Commit(c *gin.Context) {
	var req dto.CommitScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	resp, err := h.svc.Commit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.metrics.RecordCommit()
	response.OK(c, resp)
}

// Report godoc
// @Summary      Schedule report for a job
// @Tags         scheduler
// @Produce      json
// @Param        jobId  path      int  true  "job id"
// @Success      200    {object}  response.Envelope
// @Router       /jobs/{jobId}/report [get]
func (h *SchedulerHandler) Report(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.svc.Report(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, report)
}

// SavedConfig godoc
// @Summary      Last-used scheduling config for a job
// @Tags         scheduler
// @Produce      json
// @Param        jobId  path      int  true  "job id"
// @Success      200    {object}  response.Envelope
// @Failure      404    {object}  response.Envelope
// @Router       /jobs/{jobId}/scheduling-config [get]
func (h *SchedulerHandler) SavedConfig(c *gin.Context) {
	jobID, err := parseJobID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	cfg, err := h.svc.SavedConfig(c.Request.Context(), jobID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, cfg)
}

func parseJobID(c *gin.Context) (int64, error) {
	jobID, err := strconv.ParseInt(c.Param("jobId"), 10, 64)
	if err != nil || jobID <= 0 {
		return 0, apperrors.Clone(apperrors.ErrValidation, "invalid job id")
	}
	return jobID, nil
}
