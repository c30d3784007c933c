package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Interviewer is a staff member who can be assigned to interview slots.
type Interviewer struct {
	ID           int64          `db:"id" json:"id"`
	Email        string         `db:"email" json:"email"`
	Name         string         `db:"name" json:"name"`
	Availability types.JSONText `db:"availability" json:"availability"`
	Attributes   types.JSONText `db:"attributes" json:"attributes,omitempty"`
	Active       bool           `db:"active" json:"active"`
	CreatedAt    time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time      `db:"updated_at" json:"updatedAt"`
}
