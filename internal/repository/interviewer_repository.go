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

// InterviewerRepository provides access to the interviewers table.
type InterviewerRepository struct {
	db *sqlx.DB
}

// NewInterviewerRepository creates an interviewer repository.
func NewInterviewerRepository(db *sqlx.DB) *InterviewerRepository {
	return &InterviewerRepository{db: db}
}

// Create inserts an interviewer and returns its assigned ID.
func (r *InterviewerRepository) Create(ctx context.Context, iv *models.Interviewer) error {
	query := `
		INSERT INTO interviewers (email, name, availability, attributes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, TRUE, NOW(), NOW())
		RETURNING id, active, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query,
		iv.Email, iv.Name, iv.Availability, iv.Attributes,
	).Scan(&iv.ID, &iv.Active, &iv.CreatedAt, &iv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert interviewer: %w", err)
	}
	return nil
}

// GetByID fetches a single interviewer.
func (r *InterviewerRepository) GetByID(ctx context.Context, id int64) (*models.Interviewer, error) {
	var iv models.Interviewer
	err := r.db.GetContext(ctx, &iv, `SELECT * FROM interviewers WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get interviewer %d: %w", id, err)
	}
	return &iv, nil
}

// ListActive returns all interviewers available for assignment.
func (r *InterviewerRepository) ListActive(ctx context.Context) ([]models.Interviewer, error) {
	var out []models.Interviewer
	err := r.db.SelectContext(ctx, &out,
		`SELECT * FROM interviewers WHERE active = TRUE ORDER BY email ASC`)
	if err != nil {
		return nil, fmt.Errorf("list active interviewers: %w", err)
	}
	return out, nil
}

// List returns a page of interviewers plus the total count.
func (r *InterviewerRepository) List(ctx context.Context, p models.Pagination) ([]models.Interviewer, int64, error) {
	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM interviewers`); err != nil {
		return nil, 0, fmt.Errorf("count interviewers: %w", err)
	}

	var out []models.Interviewer
	err := r.db.SelectContext(ctx, &out,
		`SELECT * FROM interviewers ORDER BY id LIMIT $1 OFFSET $2`, p.PerPage, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list interviewers: %w", err)
	}
	return out, total, nil
}

// Update rewrites mutable interviewer fields.
func (r *InterviewerRepository) Update(ctx context.Context, iv *models.Interviewer) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE interviewers
		SET name = $1, availability = $2, attributes = $3, active = $4, updated_at = NOW()
		WHERE id = $5`,
		iv.Name, iv.Availability, iv.Attributes, iv.Active, iv.ID)
	if err != nil {
		return fmt.Errorf("update interviewer %d: %w", iv.ID, err)
	}
	return requireRowAffected(res)
}

// Delete removes an interviewer.
func (r *InterviewerRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM interviewers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete interviewer %d: %w", id, err)
	}
	return requireRowAffected(res)
}
