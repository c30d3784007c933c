package service

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/internal/models"
	apperrors "github.com/hireloop/interview-api/pkg/errors"
	"github.com/hireloop/interview-api/pkg/jobs"
	"github.com/hireloop/interview-api/pkg/logger"
	"github.com/hireloop/interview-api/pkg/storage"
)

type fakeExportStore struct {
	jobs map[string]*models.ExportJob
}

func newFakeExportStore() *fakeExportStore {
	return &fakeExportStore{jobs: make(map[string]*models.ExportJob)}
}

func (f *fakeExportStore) Create(ctx context.Context, job *models.ExportJob) error {
	job.CreatedAt = time.Now()
	copied := *job
	f.jobs[job.ID] = &copied
	return nil
}

func (f *fakeExportStore) GetByID(ctx context.Context, id string) (*models.ExportJob, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeExportStore) MarkCompleted(ctx context.Context, id, storageKey string) error {
	job, ok := f.jobs[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	job.Status = models.ExportStatusCompleted
	job.StorageKey.String = storageKey
	job.StorageKey.Valid = true
	job.CompletedAt.Time = time.Now()
	job.CompletedAt.Valid = true
	return nil
}

func (f *fakeExportStore) MarkFailed(ctx context.Context, id, reason string) error {
	job, ok := f.jobs[id]
	if !ok {
		return apperrors.ErrNotFound
	}
	job.Status = models.ExportStatusFailed
	job.Error.String = reason
	job.Error.Valid = true
	return nil
}

type memStorage struct {
	files map[string][]byte
}

func newMemStorage() *memStorage {
	return &memStorage{files: make(map[string][]byte)}
}

func (m *memStorage) Save(key string, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.files[key] = data
	return key, nil
}

func (m *memStorage) Open(key string) (io.ReadCloser, error) {
	data, ok := m.files[key]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func newExportFixture(t *testing.T, queueSize int) (*ExportService, *fakeExportStore, *memStorage, *fakeInterviews) {
	t.Helper()
	store := newFakeExportStore()
	artifacts := newMemStorage()
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	interviews := &fakeInterviews{byJob: []models.Interview{
		{JobID: 7, ApplicantEmail: "ada@example.com", InterviewerEmail: "iv1@example.com",
			StartTime: start, EndTime: start.Add(30 * time.Minute), Location: "HQ", Type: "onsite"},
	}}

	log := logger.NewNop()
	queue := jobs.NewQueue(queueSize, log)
	signer := storage.NewSignedURLSigner("secret", 15*time.Minute)

	svc := NewExportService(store, interviews, artifacts, signer, queue, log)
	return svc, store, artifacts, interviews
}

func TestExportService_RunExport_WritesCSVAndCompletes(t *testing.T) {
	svc, store, artifacts, _ := newExportFixture(t, 4)

	job := &models.ExportJob{ID: "exp1", JobID: 7, Format: "csv", Status: models.ExportStatusPending}
	require.NoError(t, store.Create(context.Background(), job))

	err := svc.runExport(context.Background(), "exp1", 7, "csv")
	require.NoError(t, err)

	data, ok := artifacts.files["job-7/exp1.csv"]
	require.True(t, ok)
	content := string(data)
	assert.True(t, strings.HasPrefix(content, "Applicant,Interviewer,Date,Start,End,Location,Type"))
	assert.Contains(t, content, "ada@example.com,iv1@example.com,2026-09-01,09:00,09:30,HQ,onsite")

	saved, err := store.GetByID(context.Background(), "exp1")
	require.NoError(t, err)
	assert.Equal(t, models.ExportStatusCompleted, saved.Status)
}

func TestExportService_RunExport_WritesPDF(t *testing.T) {
	svc, store, artifacts, _ := newExportFixture(t, 4)

	job := &models.ExportJob{ID: "exp2", JobID: 7, Format: "pdf", Status: models.ExportStatusPending}
	require.NoError(t, store.Create(context.Background(), job))

	err := svc.runExport(context.Background(), "exp2", 7, "pdf")
	require.NoError(t, err)

	data, ok := artifacts.files["job-7/exp2.pdf"]
	require.True(t, ok)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}

func TestExportService_GetExport_SignsDownloadURL(t *testing.T) {
	svc, store, _, _ := newExportFixture(t, 4)

	job := &models.ExportJob{ID: "exp3", JobID: 7, Format: "csv", Status: models.ExportStatusPending}
	require.NoError(t, store.Create(context.Background(), job))
	require.NoError(t, store.MarkCompleted(context.Background(), "exp3", "job-7/exp3.csv"))

	resp, err := svc.GetExport(context.Background(), "exp3")
	require.NoError(t, err)
	assert.Equal(t, models.ExportStatusCompleted, resp.Status)
	require.True(t, strings.HasPrefix(resp.DownloadURL, "/api/v1/exports/exp3/download?"))

	query, err := url.ParseQuery(strings.SplitN(resp.DownloadURL, "?", 2)[1])
	require.NoError(t, err)
	assert.NotEmpty(t, query.Get("expires"))
	assert.NotEmpty(t, query.Get("signature"))
}

func TestExportService_Download_RoundTrip(t *testing.T) {
	svc, store, _, _ := newExportFixture(t, 4)

	job := &models.ExportJob{ID: "exp4", JobID: 7, Format: "csv", Status: models.ExportStatusPending}
	require.NoError(t, store.Create(context.Background(), job))
	require.NoError(t, svc.runExport(context.Background(), "exp4", 7, "csv"))

	resp, err := svc.GetExport(context.Background(), "exp4")
	require.NoError(t, err)
	query, err := url.ParseQuery(strings.SplitN(resp.DownloadURL, "?", 2)[1])
	require.NoError(t, err)

	rc, contentType, err := svc.Download(context.Background(), "exp4", query.Get("expires"), query.Get("signature"))
	require.NoError(t, err)
	defer rc.Close()

	assert.Equal(t, "text/csv", contentType)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ada@example.com")
}

func TestExportService_Download_RejectsBadSignature(t *testing.T) {
	svc, store, _, _ := newExportFixture(t, 4)

	job := &models.ExportJob{ID: "exp5", JobID: 7, Format: "csv", Status: models.ExportStatusPending}
	require.NoError(t, store.Create(context.Background(), job))
	require.NoError(t, svc.runExport(context.Background(), "exp5", 7, "csv"))

	_, _, err := svc.Download(context.Background(), "exp5", "9999999999", "forged")
	require.Error(t, err)
}

func TestExportService_CreateExport_QueueFull(t *testing.T) {
	svc, store, _, _ := newExportFixture(t, 1)

	// workers are never started so the first job occupies the buffer
	first, err := svc.CreateExport(context.Background(), dto.CreateExportRequest{JobID: 7, Format: "csv"})
	require.NoError(t, err)
	assert.Equal(t, models.ExportStatusPending, first.Status)

	_, err = svc.CreateExport(context.Background(), dto.CreateExportRequest{JobID: 7, Format: "csv"})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrConflict.Code, apperrors.FromError(err).Code)

	var failed int
	for _, job := range store.jobs {
		if job.Status == models.ExportStatusFailed {
			failed++
		}
	}
	assert.Equal(t, 1, failed)
}
