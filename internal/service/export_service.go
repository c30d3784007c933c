package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/internal/models"
	apperrors "github.com/hireloop/interview-api/pkg/errors"
	"github.com/hireloop/interview-api/pkg/export"
	"github.com/hireloop/interview-api/pkg/jobs"
	"github.com/hireloop/interview-api/pkg/storage"
)

// ExportStore persists export job records.
type ExportStore interface {
	Create(ctx context.Context, job *models.ExportJob) error
	GetByID(ctx context.Context, id string) (*models.ExportJob, error)
	MarkCompleted(ctx context.Context, id, storageKey string) error
	MarkFailed(ctx context.Context, id, reason string) error
}

// ArtifactStorage persists generated export files.
type ArtifactStorage interface {
	Save(key string, r io.Reader) (string, error)
	Open(key string) (io.ReadCloser, error)
}

// InterviewLister reads committed interviews for roster exports.
type InterviewLister interface {
	ListByJob(ctx context.Context, jobID int64) ([]models.Interview, error)
}

// ExportService produces roster exports asynchronously.
type ExportService struct {
	exports    ExportStore
	interviews InterviewLister
	storage    ArtifactStorage
	signer     *storage.SignedURLSigner
	queue      *jobs.Queue
	csv        *export.CSVExporter
	pdf        *export.PDFExporter
	validate   *validator.Validate
	log        *zap.Logger
}

// NewExportService wires an export service.
func NewExportService(
	exports ExportStore,
	interviews InterviewLister,
	artifacts ArtifactStorage,
	signer *storage.SignedURLSigner,
	queue *jobs.Queue,
	log *zap.Logger,
) *ExportService {
	return &ExportService{
		exports:    exports,
		interviews: interviews,
		storage:    artifacts,
		signer:     signer,
		queue:      queue,
		csv:        export.NewCSVExporter(),
		pdf:        export.NewPDFExporter(),
		validate:   validator.New(),
		log:        log,
	}
}

// CreateExport records a pending export and queues the generation work.
func (s *ExportService) CreateExport(ctx context.Context, req dto.CreateExportRequest) (*dto.ExportJobResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, err.Error())
	}

	job := &models.ExportJob{
		ID:     uuid.NewString(),
		JobID:  req.JobID,
		Format: req.Format,
		Status: models.ExportStatusPending,
	}
	if err := s.exports.Create(ctx, job); err != nil {
		return nil, err
	}

	queued := s.queue.Enqueue(jobs.Job{
		ID:   job.ID,
		Name: "roster-export",
		Run: func(ctx context.Context) error {
			return s.runExport(ctx, job.ID, job.JobID, job.Format)
		},
	})
	if !queued {
		if err := s.exports.MarkFailed(ctx, job.ID, "export queue full"); err != nil {
			s.log.Warn("failed to mark export failed", zap.String("exportId", job.ID), zap.Error(err))
		}
		return nil, apperrors.Clone(apperrors.ErrConflict, "export queue is full, try again later")
	}

	return s.toResponse(job), nil
}

func (s *ExportService) runExport(ctx context.Context, exportID string, jobID int64, format string) error {
	interviews, err := s.interviews.ListByJob(ctx, jobID)
	if err != nil {
		return s.failExport(ctx, exportID, err)
	}

	headers, rows := rosterTable(interviews)

	var buf bytes.Buffer
	var ext string
	switch format {
	case "pdf":
		ext = s.pdf.Extension()
		err = s.pdf.Export(&buf, fmt.Sprintf("Interview Roster - Job %d", jobID), headers, rows)
	default:
		ext = s.csv.Extension()
		err = s.csv.Export(&buf, headers, rows)
	}
	if err != nil {
		return s.failExport(ctx, exportID, err)
	}

	key := fmt.Sprintf("job-%d/%s.%s", jobID, exportID, ext)
	if _, err := s.storage.Save(key, &buf); err != nil {
		return s.failExport(ctx, exportID, err)
	}

	return s.exports.MarkCompleted(ctx, exportID, key)
}

func (s *ExportService) failExport(ctx context.Context, exportID string, cause error) error {
	if err := s.exports.MarkFailed(ctx, exportID, cause.Error()); err != nil {
		s.log.Warn("failed to mark export failed", zap.String("exportId", exportID), zap.Error(err))
	}
	return cause
}

// rosterTable flattens interviews into export rows.
func rosterTable(interviews []models.Interview) ([]string, [][]string) {
	headers := []string{"Applicant", "Interviewer", "Date", "Start", "End", "Location", "Type"}
	rows := make([][]string, 0, len(interviews))
	for _, iv := range interviews {
		rows = append(rows, []string{
			iv.ApplicantEmail,
			iv.InterviewerEmail,
			iv.StartTime.Format("2006-01-02"),
			iv.StartTime.Format("15:04"),
			iv.EndTime.Format("15:04"),
			iv.Location,
			iv.Type,
		})
	}
	return headers, rows
}

// GetExport reports the state of an export, with a signed download link
// once completed.
func (s *ExportService) GetExport(ctx context.Context, id string) (*dto.ExportJobResponse, error) {
	job, err := s.exports.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(job), nil
}

// Download verifies the signature and streams the artifact.
func (s *ExportService) Download(ctx context.Context, id, expires, signature string) (io.ReadCloser, string, error) {
	job, err := s.exports.GetByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if job.Status != models.ExportStatusCompleted || !job.StorageKey.Valid {
		return nil, "", apperrors.Clone(apperrors.ErrPreconditionFailed, "export is not ready")
	}
	if err := s.signer.Verify(job.ID, expires, signature); err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status,
			"invalid or expired download link")
	}

	rc, err := s.storage.Open(job.StorageKey.String)
	if err != nil {
		return nil, "", apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "open artifact")
	}

	contentType := s.csv.ContentType()
	if job.Format == "pdf" {
		contentType = s.pdf.ContentType()
	}
	return rc, contentType, nil
}

func (s *ExportService) toResponse(job *models.ExportJob) *dto.ExportJobResponse {
	resp := &dto.ExportJobResponse{
		ID:        job.ID,
		JobID:     job.JobID,
		Format:    job.Format,
		Status:    job.Status,
		CreatedAt: job.CreatedAt.UTC().Format(time.RFC3339),
	}
	if job.Error.Valid {
		resp.Error = job.Error.String
	}
	if job.CompletedAt.Valid {
		resp.CompletedAt = job.CompletedAt.Time.UTC().Format(time.RFC3339)
	}
	if job.Status == models.ExportStatusCompleted {
		resp.DownloadURL = fmt.Sprintf("/api/v1/exports/%s/download?%s", job.ID, s.signer.Sign(job.ID))
	}
	return resp
}
