package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/store"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
)

// ClassroomRequest represents payload for creating or replacing a classroom.
type ClassroomRequest struct {
	Name string `json:"name" validate:"required"`
}

// ClassroomService orchestrates classroom operations.
type ClassroomService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassroomService constructs a ClassroomService.
func NewClassroomService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *ClassroomService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassroomService{store: st, validator: validate, logger: logger}
}

// List returns all classrooms.
func (s *ClassroomService) List(context.Context) []models.Classroom {
	return s.store.Snapshot().Classrooms
}

// Create registers a new classroom.
func (s *ClassroomService) Create(ctx context.Context, req ClassroomRequest) (*models.Classroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid classroom payload")
	}

	classroom := models.NewClassroom(uuid.NewString(), strings.TrimSpace(req.Name))
	s.store.AddClassroom(ctx, classroom)
	return &classroom, nil
}

// Update replaces an existing classroom record.
func (s *ClassroomService) Update(ctx context.Context, id string, req ClassroomRequest) (*models.Classroom, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid classroom payload")
	}

	classroom := models.NewClassroom(id, strings.TrimSpace(req.Name))
	if !s.store.UpdateClassroom(ctx, classroom) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
	}
	return &classroom, nil
}

// Delete removes a classroom; the store cascades dependent lessons.
func (s *ClassroomService) Delete(ctx context.Context, id string) (int, error) {
	dependents := len(s.store.LessonsReferencing(id))
	if !s.store.DeleteClassroom(ctx, id) {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "classroom not found")
	}
	return dependents, nil
}
