package dto

import (
	"encoding/json"

	"github.com/hireloop/interview-api/internal/scheduling"
)

// GenerateScheduleRequest asks the engine to produce a schedule proposal.
type GenerateScheduleRequest struct {
	JobID     int64           `json:"jobId" binding:"required" validate:"required,gt=0"`
	Algorithm string          `json:"algorithm" binding:"required" validate:"required"`
	Config    json.RawMessage `json:"config"`
}

// GenerateScheduleResponse carries the proposal and its engine output.
type GenerateScheduleResponse struct {
	ProposalID string            `json:"proposalId"`
	Algorithm  string            `json:"algorithm"`
	ExpiresAt  string            `json:"expiresAt"`
	Result     scheduling.Output `json:"result"`
}

// CommitScheduleRequest confirms a previously generated proposal.
type CommitScheduleRequest struct {
	ProposalID string `json:"proposalId" binding:"required" validate:"required,uuid"`
}

// CommitScheduleResponse reports how many interviews were persisted.
type CommitScheduleResponse struct {
	Committed int `json:"committed"`
}

// AlgorithmInfo describes a selectable scheduling strategy.
type AlgorithmInfo struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	Description  string                   `json:"description"`
	ConfigSchema []scheduling.ConfigField `json:"configSchema"`
}

// ScheduleReport summarises committed interviews for a job.
type ScheduleReport struct {
	JobID           int64                  `json:"jobId"`
	TotalInterviews int                    `json:"totalInterviews"`
	PerInterviewer  map[string]int         `json:"perInterviewer"`
	PerDay          map[string]int         `json:"perDay"`
	RoundStats      []scheduling.RoundStat `json:"roundStats,omitempty"`
	GeneratedAt     string                 `json:"generatedAt"`
	FromCache       bool                   `json:"fromCache"`
}
