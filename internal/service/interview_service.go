package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/hireloop/interview-api/internal/models"
)

// InterviewReader reads and cancels committed interviews.
type InterviewReader interface {
	GetByID(ctx context.Context, id int64) (*models.Interview, error)
	ListByJob(ctx context.Context, jobID int64) ([]models.Interview, error)
	CancelByID(ctx context.Context, id int64) error
}

// InterviewService manages committed interviews.
type InterviewService struct {
	store   InterviewReader
	reports ReportCache
	log     *zap.Logger
}

// NewInterviewService wires an interview service.
func NewInterviewService(store InterviewReader, reports ReportCache, log *zap.Logger) *InterviewService {
	return &InterviewService{store: store, reports: reports, log: log}
}

// ListByJob returns all scheduled interviews for a job.
func (s *InterviewService) ListByJob(ctx context.Context, jobID int64) ([]models.Interview, error) {
	return s.store.ListByJob(ctx, jobID)
}

// Cancel marks an interview cancelled and drops the job's cached report.
func (s *InterviewService) Cancel(ctx context.Context, id int64) error {
	iv, err := s.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.CancelByID(ctx, id); err != nil {
		return err
	}
	if err := s.reports.InvalidateReport(ctx, iv.JobID); err != nil {
		s.log.Warn("failed to invalidate report cache", zap.Int64("jobId", iv.JobID), zap.Error(err))
	}
	return nil
}
