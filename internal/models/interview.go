package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Interview statuses.
const (
	InterviewStatusScheduled = "scheduled"
	InterviewStatusCompleted = "completed"
	InterviewStatusCancelled = "cancelled"
)

// Interview is a committed interview booking.
type Interview struct {
	ID               int64          `db:"id" json:"id"`
	JobID            int64          `db:"job_id" json:"jobId"`
	ApplicantEmail   string         `db:"applicant_email" json:"applicantEmail"`
	InterviewerEmail string         `db:"interviewer_email" json:"interviewerEmail"`
	StartTime        time.Time      `db:"start_time" json:"startTime"`
	EndTime          time.Time      `db:"end_time" json:"endTime"`
	Location         string         `db:"location" json:"location"`
	Type             string         `db:"type" json:"type"`
	Status           string         `db:"status" json:"status"`
	ProposalID       string         `db:"proposal_id" json:"proposalId,omitempty"`
	Violations       types.JSONText `db:"violations" json:"violations,omitempty"`
	CreatedAt        time.Time      `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updatedAt"`
}
