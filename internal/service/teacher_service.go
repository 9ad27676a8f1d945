package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/store"
	"github.com/jadvalhub/jadval-api/internal/timetable"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
)

// CreateTeacherRequest represents payload for creating teachers.
type CreateTeacherRequest struct {
	FullName   string  `json:"fullName" validate:"required"`
	Department *string `json:"department" validate:"omitempty,max=200"`
	Color      string  `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateTeacherRequest represents payload for replacing a teacher record.
type UpdateTeacherRequest struct {
	FullName   string  `json:"fullName" validate:"required"`
	Department *string `json:"department" validate:"omitempty,max=200"`
	Color      string  `json:"color" validate:"omitempty,hexcolor"`
}

// TeacherService orchestrates teacher operations over the state store.
type TeacherService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTeacherService constructs a TeacherService.
func NewTeacherService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *TeacherService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeacherService{store: st, validator: validate, logger: logger}
}

// List returns all teachers.
func (s *TeacherService) List(context.Context) []models.Teacher {
	return s.store.Snapshot().Teachers
}

// Get returns a teacher by id.
func (s *TeacherService) Get(_ context.Context, id string) (*models.Teacher, error) {
	for _, teacher := range s.store.Snapshot().Teachers {
		if teacher.ID == id {
			return &teacher, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
}

// Create registers a new teacher record.
func (s *TeacherService) Create(ctx context.Context, req CreateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	teacher := models.NewTeacher(uuid.NewString(), strings.TrimSpace(req.FullName), normalizeOptional(req.Department), req.Color)
	s.store.AddTeacher(ctx, teacher)
	return &teacher, nil
}

// Update replaces an existing teacher record wholesale.
func (s *TeacherService) Update(ctx context.Context, id string, req UpdateTeacherRequest) (*models.Teacher, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid teacher payload")
	}

	teacher := models.NewTeacher(id, strings.TrimSpace(req.FullName), normalizeOptional(req.Department), req.Color)
	if !s.store.UpdateTeacher(ctx, teacher) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return &teacher, nil
}

// Delete removes a teacher; dependent lessons are cascade-deleted by the
// store. The count of removed lessons is returned for the caller's
// confirmation display.
func (s *TeacherService) Delete(ctx context.Context, id string) (int, error) {
	dependents := len(s.store.LessonsReferencing(id))
	if !s.store.DeleteTeacher(ctx, id) {
		return 0, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}
	return dependents, nil
}

// WeeklySchedule computes the teacher's per-day timetable, every day 1-7
// present with lessons ordered by start time and enriched with group names.
func (s *TeacherService) WeeklySchedule(_ context.Context, id string) (map[int][]timetable.ScheduledLesson, error) {
	state := s.store.Snapshot()

	found := false
	for _, teacher := range state.Teachers {
		if teacher.ID == id {
			found = true
			break
		}
	}
	if !found {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
	}

	groupNames := make(map[string]string, len(state.Groups))
	for _, group := range state.Groups {
		groupNames[group.ID] = group.Name
	}
	return timetable.WeeklySchedule(state.Lessons, id, groupNames), nil
}

func normalizeOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
