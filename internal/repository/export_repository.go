package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hireloop/interview-api/internal/models"
	apperrors "github.com/hireloop/interview-api/pkg/errors"
)

// ExportRepository tracks async export jobs.
type ExportRepository struct {
	db *sqlx.DB
}

// NewExportRepository creates an export repository.
func NewExportRepository(db *sqlx.DB) *ExportRepository {
	return &ExportRepository{db: db}
}

// Create inserts a pending export job.
func (r *ExportRepository) Create(ctx context.Context, job *models.ExportJob) error {
	query := `
		INSERT INTO export_jobs (id, job_id, format, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING created_at`
	err := r.db.QueryRowContext(ctx, query, job.ID, job.JobID, job.Format, job.Status).
		Scan(&job.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert export job: %w", err)
	}
	return nil
}

// GetByID fetches an export job.
func (r *ExportRepository) GetByID(ctx context.Context, id string) (*models.ExportJob, error) {
	var job models.ExportJob
	err := r.db.GetContext(ctx, &job, `SELECT * FROM export_jobs WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get export job %s: %w", id, err)
	}
	return &job, nil
}

// MarkCompleted records the storage key of a finished export.
func (r *ExportRepository) MarkCompleted(ctx context.Context, id, storageKey string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE export_jobs SET status = $1, storage_key = $2, completed_at = NOW() WHERE id = $3`,
		models.ExportStatusCompleted, storageKey, id)
	if err != nil {
		return fmt.Errorf("complete export job %s: %w", id, err)
	}
	return requireRowAffected(res)
}

// MarkFailed records a failure reason.
func (r *ExportRepository) MarkFailed(ctx context.Context, id, reason string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE export_jobs SET status = $1, error = $2, completed_at = NOW() WHERE id = $3`,
		models.ExportStatusFailed, sql.NullString{String: reason, Valid: reason != ""}, id)
	if err != nil {
		return fmt.Errorf("fail export job %s: %w", id, err)
	}
	return requireRowAffected(res)
}
