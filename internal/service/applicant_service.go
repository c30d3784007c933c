package service

import (
	"context"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/internal/models"
	apperrors "github.com/hireloop/interview-api/pkg/errors"
)

// ApplicantStore is the persistence surface the applicant service needs.
type ApplicantStore interface {
	Create(ctx context.Context, a *models.Applicant) error
	GetByID(ctx context.Context, id int64) (*models.Applicant, error)
	List(ctx context.Context, p models.Pagination) ([]models.Applicant, int64, error)
	ListByJob(ctx context.Context, jobID int64) ([]models.Applicant, error)
	Update(ctx context.Context, a *models.Applicant) error
	Delete(ctx context.Context, id int64) error
}

// ApplicantService manages applicant records.
type ApplicantService struct {
	store    ApplicantStore
	validate *validator.Validate
	log      *zap.Logger
}

// NewApplicantService wires an applicant service.
func NewApplicantService(store ApplicantStore, log *zap.Logger) *ApplicantService {
	return &ApplicantService{store: store, validate: validator.New(), log: log}
}

// Create registers a new applicant.
func (s *ApplicantService) Create(ctx context.Context, req dto.CreateApplicantRequest) (*models.Applicant, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, err.Error())
	}

	availability, err := dto.MarshalAvailability(req.Availability)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "encode availability")
	}
	attributes, err := marshalAttributes(req.Attributes)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "encode attributes")
	}

	a := &models.Applicant{
		JobID:        req.JobID,
		Email:        req.Email,
		Name:         req.Name,
		Availability: []byte(availability),
		Attributes:   []byte(attributes),
		Priority:     req.Priority,
	}
	if err := s.store.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Get fetches one applicant.
func (s *ApplicantService) Get(ctx context.Context, id int64) (*models.Applicant, error) {
	return s.store.GetByID(ctx, id)
}

// List returns a page of applicants.
func (s *ApplicantService) List(ctx context.Context, p models.Pagination) ([]models.Applicant, int64, error) {
	p.Normalize()
	return s.store.List(ctx, p)
}

// ListByJob returns all applicants for a job.
func (s *ApplicantService) ListByJob(ctx context.Context, jobID int64) ([]models.Applicant, error) {
	return s.store.ListByJob(ctx, jobID)
}

// Update applies a partial update to an applicant.
func (s *ApplicantService) Update(ctx context.Context, id int64, req dto.UpdateApplicantRequest) (*models.Applicant, error) {
	a, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.Priority != nil {
		a.Priority = *req.Priority
	}
	if req.Availability != nil {
		raw, err := dto.MarshalAvailability(*req.Availability)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "encode availability")
		}
		a.Availability = []byte(raw)
	}
	if req.Attributes != nil {
		raw, err := marshalAttributes(*req.Attributes)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "encode attributes")
		}
		a.Attributes = []byte(raw)
	}

	if err := s.store.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// Delete removes an applicant.
func (s *ApplicantService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

func marshalAttributes(attrs map[string][]string) (json.RawMessage, error) {
	if attrs == nil {
		attrs = map[string][]string{}
	}
	return json.Marshal(attrs)
}
