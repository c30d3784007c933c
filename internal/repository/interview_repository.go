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

// InterviewRepository provides access to the interviews table.
type InterviewRepository struct {
	db *sqlx.DB
}

// NewInterviewRepository creates an interview repository.
func NewInterviewRepository(db *sqlx.DB) *InterviewRepository {
	return &InterviewRepository{db: db}
}

// ListByJob returns all committed interviews for a job.
func (r *InterviewRepository) ListByJob(ctx context.Context, jobID int64) ([]models.Interview, error) {
	var out []models.Interview
	err := r.db.SelectContext(ctx, &out,
		`SELECT * FROM interviews WHERE job_id = $1 AND status = $2 ORDER BY start_time ASC, applicant_email ASC`,
		jobID, models.InterviewStatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("list interviews for job %d: %w", jobID, err)
	}
	return out, nil
}

// ListScheduled returns all scheduled interviews across jobs. The engine
// treats these as immovable bookings when placing new ones.
func (r *InterviewRepository) ListScheduled(ctx context.Context) ([]models.Interview, error) {
	var out []models.Interview
	err := r.db.SelectContext(ctx, &out,
		`SELECT * FROM interviews WHERE status = $1 ORDER BY start_time ASC, id ASC`,
		models.InterviewStatusScheduled)
	if err != nil {
		return nil, fmt.Errorf("list scheduled interviews: %w", err)
	}
	return out, nil
}

// GetByID fetches a single interview.
func (r *InterviewRepository) GetByID(ctx context.Context, id int64) (*models.Interview, error) {
	var iv models.Interview
	err := r.db.GetContext(ctx, &iv, `SELECT * FROM interviews WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get interview %d: %w", id, err)
	}
	return &iv, nil
}

// BulkCreateWithTx inserts all interviews inside the given transaction.
func (r *InterviewRepository) BulkCreateWithTx(ctx context.Context, tx *sqlx.Tx, interviews []models.Interview) error {
	query := `
		INSERT INTO interviews
			(job_id, applicant_email, interviewer_email, start_time, end_time,
			 location, type, status, proposal_id, violations, created_at, updated_at)
		VALUES
			(:job_id, :applicant_email, :interviewer_email, :start_time, :end_time,
			 :location, :type, :status, :proposal_id, :violations, NOW(), NOW())`
	for i := range interviews {
		if _, err := tx.NamedExecContext(ctx, query, &interviews[i]); err != nil {
			return fmt.Errorf("insert interview %d: %w", i, err)
		}
	}
	return nil
}

// CancelByID marks an interview cancelled.
func (r *InterviewRepository) CancelByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE interviews SET status = $1, updated_at = NOW() WHERE id = $2 AND status = $3`,
		models.InterviewStatusCancelled, id, models.InterviewStatusScheduled)
	if err != nil {
		return fmt.Errorf("cancel interview %d: %w", id, err)
	}
	return requireRowAffected(res)
}

// BeginTx starts a transaction for multi-statement writes.
func (r *InterviewRepository) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}
