package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/hireloop/interview-api/internal/dto"
	"github.com/hireloop/interview-api/internal/models"
	apperrors "github.com/hireloop/interview-api/pkg/errors"
)

// InterviewerStore is the persistence surface the interviewer service needs.
type InterviewerStore interface {
	Create(ctx context.Context, iv *models.Interviewer) error
	GetByID(ctx context.Context, id int64) (*models.Interviewer, error)
	List(ctx context.Context, p models.Pagination) ([]models.Interviewer, int64, error)
	ListActive(ctx context.Context) ([]models.Interviewer, error)
	Update(ctx context.Context, iv *models.Interviewer) error
	Delete(ctx context.Context, id int64) error
}

// InterviewerService manages interviewer records.
type InterviewerService struct {
	store    InterviewerStore
	validate *validator.Validate
	log      *zap.Logger
}

// NewInterviewerService wires an interviewer service.
func NewInterviewerService(store InterviewerStore, log *zap.Logger) *InterviewerService {
	return &InterviewerService{store: store, validate: validator.New(), log: log}
}

// Create registers a new interviewer.
func (s *InterviewerService) Create(ctx context.Context, req dto.CreateInterviewerRequest) (*models.Interviewer, error) {
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

	iv := &models.Interviewer{
		Email:        req.Email,
		Name:         req.Name,
		Availability: []byte(availability),
		Attributes:   []byte(attributes),
	}
	if err := s.store.Create(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Get fetches one interviewer.
func (s *InterviewerService) Get(ctx context.Context, id int64) (*models.Interviewer, error) {
	return s.store.GetByID(ctx, id)
}

// List returns a page of interviewers.
func (s *InterviewerService) List(ctx context.Context, p models.Pagination) ([]models.Interviewer, int64, error) {
	p.Normalize()
	return s.store.List(ctx, p)
}

// Update applies a partial update to an interviewer.
func (s *InterviewerService) Update(ctx context.Context, id int64, req dto.UpdateInterviewerRequest) (*models.Interviewer, error) {
	iv, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		iv.Name = *req.Name
	}
	if req.Active != nil {
		iv.Active = *req.Active
	}
	if req.Availability != nil {
		raw, err := dto.MarshalAvailability(*req.Availability)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "encode availability")
		}
		iv.Availability = []byte(raw)
	}
	if req.Attributes != nil {
		raw, err := marshalAttributes(*req.Attributes)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrInternal.Code, apperrors.ErrInternal.Status, "encode attributes")
		}
		iv.Attributes = []byte(raw)
	}

	if err := s.store.Update(ctx, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Delete removes an interviewer.
func (s *InterviewerService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
