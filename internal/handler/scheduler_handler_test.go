package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/internal/models"
	"github.com/hireloop/interview-api/internal/service"
	apperrors "github.com/hireloop/interview-api/pkg/errors"
	"github.com/hireloop/interview-api/pkg/logger"
)

type stubApplicants struct{ items []models.Applicant }

func (s *stubApplicants) ListByJob(ctx context.Context, jobID int64) ([]models.Applicant, error) {
	return s.items, nil
}

type stubInterviewers struct{ items []models.Interviewer }

func (s *stubInterviewers) ListActive(ctx context.Context) ([]models.Interviewer, error) {
	return s.items, nil
}

type stubInterviews struct{}

func (s *stubInterviews) ListByJob(ctx context.Context, jobID int64) ([]models.Interview, error) {
	return nil, nil
}

func (s *stubInterviews) ListScheduled(ctx context.Context) ([]models.Interview, error) {
	return nil, nil
}

func (s *stubInterviews) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return nil, apperrors.ErrInternal
}

func (s *stubInterviews) BulkCreateWithTx(ctx context.Context, tx *sqlx.Tx, interviews []models.Interview) error {
	return nil
}

type stubConfigs struct{}

func (s *stubConfigs) Upsert(ctx context.Context, sc *models.SchedulingConfig) error { return nil }

func (s *stubConfigs) GetByJob(ctx context.Context, jobID int64) (*models.SchedulingConfig, error) {
	return nil, apperrors.ErrNotFound
}

type stubReports struct{}

func (s *stubReports) GetReport(ctx context.Context, jobID int64) (*dto.ScheduleReport, error) {
	return nil, apperrors.ErrCacheMiss
}

func (s *stubReports) SetReport(ctx context.Context, jobID int64, report *dto.ScheduleReport) error {
	return nil
}

func (s *stubReports) InvalidateReport(ctx context.Context, jobID int64) error { return nil }

func availability(t *testing.T) []byte {
	t.Helper()
	raw, err := json.Marshal([]map[string]string{
		{"date": "2026-09-01", "start": "09:00", "end": "12:00"},
	})
	require.NoError(t, err)
	return raw
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := service.NewSchedulerService(
		&stubApplicants{items: []models.Applicant{{
			ID: 1, JobID: 7, Email: "ada@example.com", Name: "Ada", Availability: availability(t),
		}}},
		&stubInterviewers{items: []models.Interviewer{{
			ID: 1, Email: "iv1@example.com", Availability: availability(t), Active: true,
		}}},
		&stubInterviews{},
		&stubConfigs{},
		&stubReports{},
		30*time.Minute,
		logger.NewNop(),
	)
	metrics := service.NewMetrics(prometheus.NewRegistry())

	r := gin.New()
	api := r.Group("/api/v1")
	NewSchedulerHandler(svc, metrics).RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSchedulerHandler_ListAlgorithms(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/algorithms", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool                `json:"success"`
		Data    []dto.AlgorithmInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Data, 4)
	assert.Equal(t, "greedy-first-available", envelope.Data[0].ID)
	assert.NotEmpty(t, envelope.Data[3].ConfigSchema)
}

func TestSchedulerHandler_Generate(t *testing.T) {
	r := newTestRouter(t)

	body := `{"jobId":7,"algorithm":"greedy-first-available","config":{"slotDurationMinutes":30,"location":"HQ"}}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/schedules/generate", body)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Success bool                         `json:"success"`
		Data    dto.GenerateScheduleResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.NotEmpty(t, envelope.Data.ProposalID)
	require.Len(t, envelope.Data.Result.Interviews, 1)
	assert.Equal(t, "HQ", envelope.Data.Result.Interviews[0].Location)
}

func TestSchedulerHandler_Generate_UnknownAlgorithm(t *testing.T) {
	r := newTestRouter(t)

	body := `{"jobId":7,"algorithm":"nope"}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/schedules/generate", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchedulerHandler_Generate_MissingBody(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/schedules/generate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSchedulerHandler_Commit_UnknownProposal(t *testing.T) {
	r := newTestRouter(t)

	body := `{"proposalId":"5bb0e9a3-0f0f-4f1a-b8f4-0f6a62c7d001"}`
	w := doJSON(t, r, http.MethodPost, "/api/v1/schedules/commit", body)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSchedulerHandler_Report_InvalidJobID(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/jobs/abc/report", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
