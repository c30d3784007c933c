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

// SchedulingConfigRepository stores the last-used config per job.
type SchedulingConfigRepository struct {
	db *sqlx.DB
}

// NewSchedulingConfigRepository creates a scheduling config repository.
func NewSchedulingConfigRepository(db *sqlx.DB) *SchedulingConfigRepository {
	return &SchedulingConfigRepository{db: db}
}

// Upsert saves the config for a job, replacing any previous one.
func (r *SchedulingConfigRepository) Upsert(ctx context.Context, sc *models.SchedulingConfig) error {
	query := `
		INSERT INTO scheduling_configs (job_id, algorithm, config, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (job_id)
		DO UPDATE SET algorithm = EXCLUDED.algorithm, config = EXCLUDED.config, updated_at = NOW()
		RETURNING id, created_at, updated_at`
	err := r.db.QueryRowContext(ctx, query, sc.JobID, sc.Algorithm, sc.Config).
		Scan(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert scheduling config for job %d: %w", sc.JobID, err)
	}
	return nil
}

// GetByJob fetches the saved config for a job.
func (r *SchedulingConfigRepository) GetByJob(ctx context.Context, jobID int64) (*models.SchedulingConfig, error) {
	var sc models.SchedulingConfig
	err := r.db.GetContext(ctx, &sc, `SELECT * FROM scheduling_configs WHERE job_id = $1`, jobID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get scheduling config for job %d: %w", jobID, err)
	}
	return &sc, nil
}
