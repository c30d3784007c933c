package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/internal/models"
	"github.com/hireloop/interview-api/internal/scheduling"
	apperrors "github.com/hireloop/interview-api/pkg/errors"
)

const interviewTimeLayout = "2006-01-02T15:04:05"

// ApplicantSource lists candidates eligible for scheduling.
type ApplicantSource interface {
	ListByJob(ctx context.Context, jobID int64) ([]models.Applicant, error)
}

// InterviewerSource lists interviewers eligible for assignment.
type InterviewerSource interface {
	ListActive(ctx context.Context) ([]models.Interviewer, error)
}

// InterviewStore reads and writes committed interviews.
type InterviewStore interface {
	ListByJob(ctx context.Context, jobID int64) ([]models.Interview, error)
	ListScheduled(ctx context.Context) ([]models.Interview, error)
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	BulkCreateWithTx(ctx context.Context, tx *sqlx.Tx, interviews []models.Interview) error
}

// ConfigStore persists the last-used scheduling configuration per job.
type ConfigStore interface {
	Upsert(ctx context.Context, sc *models.SchedulingConfig) error
	GetByJob(ctx context.Context, jobID int64) (*models.SchedulingConfig, error)
}

// ReportCache caches computed schedule reports.
type ReportCache interface {
	GetReport(ctx context.Context, jobID int64) (*dto.ScheduleReport, error)
	SetReport(ctx context.Context, jobID int64, report *dto.ScheduleReport) error
	InvalidateReport(ctx context.Context, jobID int64) error
}

// proposal is a generated schedule awaiting confirmation.
type proposal struct {
	ID        string
	JobID     int64
	Algorithm string
	ConfigRaw json.RawMessage
	Output    scheduling.Output
	ExpiresAt time.Time
}

// proposalStore holds pending proposals in memory with a TTL.
type proposalStore struct {
	mu    sync.Mutex
	items map[string]proposal
	ttl   time.Duration
	now   func() time.Time
}

func newProposalStore(ttl time.Duration) *proposalStore {
	return &proposalStore{
		items: make(map[string]proposal),
		ttl:   ttl,
		now:   time.Now,
	}
}

func (s *proposalStore) put(p proposal) proposal {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ExpiresAt = s.now().Add(s.ttl)
	s.items[p.ID] = p
	s.evictExpiredLocked()
	return p
}

func (s *proposalStore) get(id string) (proposal, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.items[id]
	if !ok || s.now().After(p.ExpiresAt) {
		delete(s.items, id)
		return proposal{}, false
	}
	return p, true
}

func (s *proposalStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
}

func (s *proposalStore) evictExpiredLocked() {
	now := s.now()
	for id, p := range s.items {
		if now.After(p.ExpiresAt) {
			delete(s.items, id)
		}
	}
}

// SchedulerService runs the scheduling engine and manages the
// generate/commit proposal flow.
type SchedulerService struct {
	applicants   ApplicantSource
	interviewers InterviewerSource
	interviews   InterviewStore
	configs      ConfigStore
	reports      ReportCache
	proposals    *proposalStore
	validate     *validator.Validate
	log          *zap.Logger
}

// NewSchedulerService wires a scheduler service.
func NewSchedulerService(
	applicants ApplicantSource,
	interviewers InterviewerSource,
	interviews InterviewStore,
	configs ConfigStore,
	reports ReportCache,
	proposalTTL time.Duration,
	log *zap.Logger,
) *SchedulerService {
	return &SchedulerService{
		applicants:   applicants,
		interviewers: interviewers,
		interviews:   interviews,
		configs:      configs,
		reports:      reports,
		proposals:    newProposalStore(proposalTTL),
		validate:     validator.New(),
		log:          log,
	}
}

// Algorithms returns metadata for every registered strategy.
func (s *SchedulerService) Algorithms() []dto.AlgorithmInfo {
	algos := scheduling.Algorithms()
	out := make([]dto.AlgorithmInfo, 0, len(algos))
	for _, a := range algos {
		out = append(out, dto.AlgorithmInfo{
			ID:           a.ID(),
			Name:         a.Name(),
			Description:  a.Description(),
			ConfigSchema: a.ConfigSchema(),
		})
	}
	return out
}

// Generate runs the requested strategy over the job's current data and
// stores the result as a pending proposal.
func (s *SchedulerService) Generate(ctx context.Context, req dto.GenerateScheduleRequest) (*dto.GenerateScheduleResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, err.Error())
	}

	algo, ok := scheduling.Get(req.Algorithm)
	if !ok {
		return nil, apperrors.Clone(apperrors.ErrUnknownAlgorithm,
			fmt.Sprintf("unknown scheduling algorithm %q", req.Algorithm))
	}

	input, err := s.buildInput(ctx, req)
	if err != nil {
		return nil, err
	}

	output := algo.Run(input)

	p := s.proposals.put(proposal{
		ID:        uuid.NewString(),
		JobID:     req.JobID,
		Algorithm: req.Algorithm,
		ConfigRaw: req.Config,
		Output:    output,
	})

	s.persistConfig(ctx, req)

	s.log.Info("schedule proposal generated",
		zap.String("proposalId", p.ID),
		zap.Int64("jobId", req.JobID),
		zap.String("algorithm", req.Algorithm),
		zap.Int("interviews", len(output.Interviews)),
		zap.Int("unmatched", len(output.Unmatched)),
	)

	return &dto.GenerateScheduleResponse{
		ProposalID: p.ID,
		Algorithm:  req.Algorithm,
		ExpiresAt:  p.ExpiresAt.UTC().Format(time.RFC3339),
		Result:     output,
	}, nil
}

func (s *SchedulerService) buildInput(ctx context.Context, req dto.GenerateScheduleRequest) (scheduling.Input, error) {
	var input scheduling.Input

	applicants, err := s.applicants.ListByJob(ctx, req.JobID)
	if err != nil {
		return input, err
	}
	interviewers, err := s.interviewers.ListActive(ctx)
	if err != nil {
		return input, err
	}
	existing, err := s.interviews.ListScheduled(ctx)
	if err != nil {
		return input, err
	}

	input.Applicants = make([]scheduling.Applicant, 0, len(applicants))
	for _, a := range applicants {
		ea, err := applicantToEngine(a)
		if err != nil {
			return input, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status,
				fmt.Sprintf("decode applicant %s", a.Email))
		}
		input.Applicants = append(input.Applicants, ea)
	}

	input.Interviewers = make([]scheduling.Interviewer, 0, len(interviewers))
	for _, iv := range interviewers {
		ei, err := interviewerToEngine(iv)
		if err != nil {
			return input, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status,
				fmt.Sprintf("decode interviewer %s", iv.Email))
		}
		input.Interviewers = append(input.Interviewers, ei)
	}

	input.ExistingInterviews = make([]scheduling.ExistingInterview, 0, len(existing))
	for _, iv := range existing {
		input.ExistingInterviews = append(input.ExistingInterviews, scheduling.ExistingInterview{
			StartTime:   iv.StartTime.Format(interviewTimeLayout),
			EndTime:     iv.EndTime.Format(interviewTimeLayout),
			Interviewer: iv.InterviewerEmail,
			Applicant:   iv.ApplicantEmail,
		})
	}

	if len(req.Config) > 0 {
		if err := json.Unmarshal(req.Config, &input.Config); err != nil {
			return input, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status,
				"invalid scheduling config")
		}
	}

	return input, nil
}

func applicantToEngine(a models.Applicant) (scheduling.Applicant, error) {
	out := scheduling.Applicant{
		Email:    a.Email,
		Name:     a.Name,
		JobID:    a.JobID,
		Priority: a.Priority,
	}
	if len(a.Availability) > 0 {
		if err := json.Unmarshal(a.Availability, &out.Availability); err != nil {
			return out, fmt.Errorf("availability: %w", err)
		}
	}
	if len(a.Attributes) > 0 {
		if err := json.Unmarshal(a.Attributes, &out.Attributes); err != nil {
			return out, fmt.Errorf("attributes: %w", err)
		}
	}
	return out, nil
}

func interviewerToEngine(iv models.Interviewer) (scheduling.Interviewer, error) {
	out := scheduling.Interviewer{Email: iv.Email}
	if len(iv.Availability) > 0 {
		if err := json.Unmarshal(iv.Availability, &out.Availability); err != nil {
			return out, fmt.Errorf("availability: %w", err)
		}
	}
	if len(iv.Attributes) > 0 {
		if err := json.Unmarshal(iv.Attributes, &out.Attributes); err != nil {
			return out, fmt.Errorf("attributes: %w", err)
		}
	}
	return out, nil
}

func (s *SchedulerService) persistConfig(ctx context.Context, req dto.GenerateScheduleRequest) {
	cfg := req.Config
	if len(cfg) == 0 {
		cfg = json.RawMessage(`{}`)
	}
	sc := &models.SchedulingConfig{
		JobID:     req.JobID,
		Algorithm: req.Algorithm,
		Config:    []byte(cfg),
	}
	if err := s.configs.Upsert(ctx, sc); err != nil {
		s.log.Warn("failed to persist scheduling config",
			zap.Int64("jobId", req.JobID), zap.Error(err))
	}
}

// Commit persists all interviews of a pending proposal in one transaction.
func (s *SchedulerService) Commit(ctx context.Context, req dto.CommitScheduleRequest) (*dto.CommitScheduleResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, err.Error())
	}

	p, ok := s.proposals.get(req.ProposalID)
	if !ok {
		return nil, apperrors.ErrProposalExpired
	}

	rows, err := proposalToModels(p)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status,
			"decode proposal interviews")
	}

	if len(rows) > 0 {
		tx, err := s.interviews.BeginTx(ctx)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "begin transaction")
		}
		if err := s.interviews.BulkCreateWithTx(ctx, tx, rows); err != nil {
			_ = tx.Rollback()
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "persist interviews")
		}
		if err := tx.Commit(); err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "commit transaction")
		}
	}

	s.proposals.remove(p.ID)
	if err := s.reports.InvalidateReport(ctx, p.JobID); err != nil {
		s.log.Warn("failed to invalidate report cache", zap.Int64("jobId", p.JobID), zap.Error(err))
	}

	s.log.Info("schedule proposal committed",
		zap.String("proposalId", p.ID),
		zap.Int64("jobId", p.JobID),
		zap.Int("committed", len(rows)),
	)

	return &dto.CommitScheduleResponse{Committed: len(rows)}, nil
}

func proposalToModels(p proposal) ([]models.Interview, error) {
	rows := make([]models.Interview, 0, len(p.Output.Interviews))
	for _, iv := range p.Output.Interviews {
		start, err := time.Parse(interviewTimeLayout, iv.StartTime)
		if err != nil {
			return nil, fmt.Errorf("parse start time %q: %w", iv.StartTime, err)
		}
		end, err := time.Parse(interviewTimeLayout, iv.EndTime)
		if err != nil {
			return nil, fmt.Errorf("parse end time %q: %w", iv.EndTime, err)
		}
		violations, err := json.Marshal(iv.Violations)
		if err != nil {
			return nil, fmt.Errorf("marshal violations: %w", err)
		}
		rows = append(rows, models.Interview{
			JobID:            iv.JobID,
			ApplicantEmail:   iv.Applicant,
			InterviewerEmail: iv.Interviewer,
			StartTime:        start,
			EndTime:          end,
			Location:         iv.Location,
			Type:             iv.Type,
			Status:           models.InterviewStatusScheduled,
			ProposalID:       p.ID,
			Violations:       violations,
		})
	}
	return rows, nil
}

// Report aggregates committed interviews for a job, served from cache
// when available.
func (s *SchedulerService) Report(ctx context.Context, jobID int64) (*dto.ScheduleReport, error) {
	if cached, err := s.reports.GetReport(ctx, jobID); err == nil {
		cached.FromCache = true
		return cached, nil
	}

	interviews, err := s.interviews.ListByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}

	report := &dto.ScheduleReport{
		JobID:           jobID,
		TotalInterviews: len(interviews),
		PerInterviewer:  make(map[string]int),
		PerDay:          make(map[string]int),
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
	}
	for _, iv := range interviews {
		report.PerInterviewer[iv.InterviewerEmail]++
		report.PerDay[iv.StartTime.Format("2006-01-02")]++
	}

	if err := s.reports.SetReport(ctx, jobID, report); err != nil {
		s.log.Warn("failed to cache report", zap.Int64("jobId", jobID), zap.Error(err))
	}
	return report, nil
}

// SavedConfig returns the last persisted scheduling config for a job.
func (s *SchedulerService) SavedConfig(ctx context.Context, jobID int64) (*models.SchedulingConfig, error) {
	return s.configs.GetByJob(ctx, jobID)
}
