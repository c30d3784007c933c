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

// ApplicantRepository provides access to the applicants table.
type ApplicantRepository struct {
	db *sqlx.DB
}

// NewApplicantRepository creates an applicant repository.
func NewApplicantRepository(db *sqlx.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

// Create inserts an applicant and returns its assigned ID.
func (r *ApplicantRepository) Create(ctx context.Context, a *models.Applicant) error {
	query := `
		INSERT INTO applicants (job_id, email, name, availability, attributes, priority, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		a.JobID, a.Email, a.Name, a.Availability, a.Attributes, a.Priority,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert applicant: %w", err)
	}
	return nil
}

// GetByID fetches a single applicant.
func (r *ApplicantRepository) GetByID(ctx context.Context, id int64) (*models.Applicant, error) {
	var a models.Applicant
	err := r.db.GetContext(ctx, &a, `SELECT * FROM applicants WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get applicant %d: %w", id, err)
	}
	return &a, nil
}

// ListByJob returns all applicants registered for a job.
func (r *ApplicantRepository) ListByJob(ctx context.Context, jobID int64) ([]models.Applicant, error) {
	var out []models.Applicant
	err := r.db.SelectContext(ctx, &out,
		`SELECT * FROM applicants WHERE job_id = $1 ORDER BY priority DESC, email ASC`, jobID)
	if err != nil {
		return nil, fmt.Errorf("list applicants for job %d: %w", jobID, err)
	}
	return out, nil
}

// List returns a page of applicants plus the total count.
func (r *ApplicantRepository) List(ctx context.Context, p models.Pagination) ([]models.Applicant, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM applicants`); err != nil {
		return nil, 0, fmt.Errorf("count applicants: %w", err)
	}

	var out []models.Applicant
	err := r.db.SelectContext(ctx, &out,
		`SELECT * FROM applicants ORDER BY id LIMIT $1 OFFSET $2`, p.PerPage, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list applicants: %w", err)
	}
	return out, total, nil
}

// Update rewrites mutable applicant fields.
func (r *ApplicantRepository) Update(ctx context.Context, a *models.Applicant) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE applicants
		SET name = $1, availability = $2, attributes = $3, priority = $4, updated_at = NOW()
		WHERE id = $5`,
		a.Name, a.Availability, a.Attributes, a.Priority, a.ID)
	if err != nil {
		return fmt.Errorf("update applicant %d: %w", a.ID, err)
	}
	return requireRowAffected(res)
}

// Delete removes an applicant.
func (r *ApplicantRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM applicants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete applicant %d: %w", id, err)
	}
	return requireRowAffected(res)
}

func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
