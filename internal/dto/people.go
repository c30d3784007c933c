package dto

import (
	"encoding/json"

	"github.com/hireloop/interview-api/internal/scheduling"
)

// CreateApplicantRequest registers a candidate for scheduling.
type CreateApplicantRequest struct {
	JobID        int64                  `json:"jobId" binding:"required" validate:"required,gt=0"`
	Email        string                 `json:"email" binding:"required" validate:"required,email"`
	Name         string                 `json:"name" binding:"required" validate:"required"`
	Availability []scheduling.TimeRange `json:"availability" validate:"dive"`
	Attributes   map[string][]string    `json:"attributes"`
	Priority     int                    `json:"priority"`
}

// UpdateApplicantRequest updates mutable applicant fields.
type UpdateApplicantRequest struct {
	Name         *string                 `json:"name,omitempty"`
	Availability *[]scheduling.TimeRange `json:"availability,omitempty"`
	Attributes   *map[string][]string    `json:"attributes,omitempty"`
	Priority     *int                    `json:"priority,omitempty"`
}

// CreateInterviewerRequest registers an interviewer.
type CreateInterviewerRequest struct {
	Email        string                 `json:"email" binding:"required" validate:"required,email"`
	Name         string                 `json:"name" binding:"required" validate:"required"`
	Availability []scheduling.TimeRange `json:"availability" validate:"dive"`
	Attributes   map[string][]string    `json:"attributes"`
}

// UpdateInterviewerRequest updates mutable interviewer fields.
type UpdateInterviewerRequest struct {
	Name         *string                 `json:"name,omitempty"`
	Availability *[]scheduling.TimeRange `json:"availability,omitempty"`
	Attributes   *map[string][]string    `json:"attributes,omitempty"`
	Active       *bool                   `json:"active,omitempty"`
}

// MarshalAvailability encodes a time range list for storage.
func MarshalAvailability(ranges []scheduling.TimeRange) (json.RawMessage, error) {
	if ranges == nil {
		ranges = []scheduling.TimeRange{}
	}
	return json.Marshal(ranges)
}
