package models

import (
	"database/sql"
	"time"
)

// Export job statuses.
const (
	ExportStatusPending   = "pending"
	ExportStatusCompleted = "completed"
	ExportStatusFailed    = "failed"
)

// ExportJob tracks an async roster export request.
type ExportJob struct {
	ID          string         `db:"id" json:"id"`
	JobID       int64          `db:"job_id" json:"jobId"`
	Format      string         `db:"format" json:"format"`
	Status      string         `db:"status" json:"status"`
	StorageKey  sql.NullString `db:"storage_key" json:"-"`
	Error       sql.NullString `db:"error" json:"error,omitempty"`
	CreatedAt   time.Time      `db:"created_at" json:"createdAt"`
	CompletedAt sql.NullTime   `db:"completed_at" json:"completedAt,omitempty"`
}
