package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// SchedulingConfig is a saved per-job scheduling configuration.
type SchedulingConfig struct {
	ID        int64          `db:"id" json:"id"`
	JobID     int64          `db:"job_id" json:"jobId"`
	Algorithm string         `db:"algorithm" json:"algorithm"`
	Config    types.JSONText `db:"config" json:"config"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time      `db:"updated_at" json:"updatedAt"`
}
