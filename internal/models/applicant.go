package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Applicant is a candidate waiting to be scheduled for a job's interviews.
type Applicant struct {
	ID           int64          `db:"id" json:"id"`
	JobID        int64          `db:"job_id" json:"jobId"`
	Email        string         `db:"email" json:"email"`
	Name         string         `db:"name" json:"name"`
	Availability types.JSONText `db:"availability" json:"availability"`
	Attributes   types.JSONText `db:"attributes" json:"attributes,omitempty"`
	Priority     int            `db:"priority" json:"priority"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updatedAt"`
}
