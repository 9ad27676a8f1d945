package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/store"
	"github.com/jadvalhub/jadval-api/internal/timetable"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
)

// LessonRequest represents payload for creating or replacing a lesson.
// Force acknowledges a detected conflict and books the slot anyway; the
// engine only signals the condition, the caller owns the policy.
type LessonRequest struct {
	TeacherID   string `json:"teacherId" validate:"required"`
	GroupID     string `json:"groupId" validate:"required"`
	ClassroomID string `json:"classroomId" validate:"required"`
	DayOfWeek   int    `json:"dayOfWeek" validate:"required,min=1,max=7"`
	StartTime   string `json:"startTime" validate:"required"`
	EndTime     string `json:"endTime" validate:"required"`
	Note        string `json:"note"`
	Force       bool   `json:"force"`
}

// LessonFilter narrows lesson listings.
type LessonFilter struct {
	TeacherID   string
	GroupID     string
	ClassroomID string
	DayOfWeek   int
}

// LessonService coordinates lesson CRUD, validation and conflict checks.
type LessonService struct {
	store     *store.Store
	validator *validator.Validate
	logger    *zap.Logger
}

// NewLessonService instantiates LessonService.
func NewLessonService(st *store.Store, validate *validator.Validate, logger *zap.Logger) *LessonService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LessonService{store: st, validator: validate, logger: logger}
}

// List returns lessons matching the filter.
func (s *LessonService) List(_ context.Context, filter LessonFilter) []models.Lesson {
	lessons := s.store.Snapshot().Lessons
	out := []models.Lesson{}
	for _, lesson := range lessons {
		if filter.TeacherID != "" && lesson.TeacherID != filter.TeacherID {
			continue
		}
		if filter.GroupID != "" && lesson.GroupID != filter.GroupID {
			continue
		}
		if filter.ClassroomID != "" && lesson.ClassroomID != filter.ClassroomID {
			continue
		}
		if filter.DayOfWeek != 0 && lesson.DayOfWeek != filter.DayOfWeek {
			continue
		}
		out = append(out, lesson)
	}
	return out
}

// Get returns a lesson by id.
func (s *LessonService) Get(_ context.Context, id string) (*models.Lesson, error) {
	for _, lesson := range s.store.Snapshot().Lessons {
		if lesson.ID == id {
			return &lesson, nil
		}
	}
	return nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
}

// Create validates and books a new lesson. Conflicting slots are rejected
// with the colliding lessons attached unless the request forces the booking.
func (s *LessonService) Create(ctx context.Context, req LessonRequest) (*models.Lesson, error) {
	lesson, err := s.prepare(req, uuid.NewString(), "")
	if err != nil {
		return nil, err
	}
	s.store.AddLesson(ctx, *lesson)
	return lesson, nil
}

// Update validates and replaces an existing lesson. The lesson being edited
// is excluded from conflict detection so it never collides with itself.
func (s *LessonService) Update(ctx context.Context, id string, req LessonRequest) (*models.Lesson, error) {
	lesson, err := s.prepare(req, id, id)
	if err != nil {
		return nil, err
	}
	if !s.store.UpdateLesson(ctx, *lesson) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
	}
	return lesson, nil
}

// Delete removes a lesson entry.
func (s *LessonService) Delete(ctx context.Context, id string) error {
	if !s.store.DeleteLesson(ctx, id) {
		return appErrors.Clone(appErrors.ErrNotFound, "lesson not found")
	}
	return nil
}

// CheckConflicts runs the conflict predicate for a candidate without
// committing anything, for preview display in the booking form.
func (s *LessonService) CheckConflicts(_ context.Context, req LessonRequest, excludeID string) []models.Lesson {
	candidate := models.NewLesson("", req.TeacherID, req.GroupID, req.ClassroomID,
		strconv.Itoa(req.DayOfWeek), req.StartTime, req.EndTime, req.Note)
	conflicts := timetable.FindConflicts(candidate, s.store.Snapshot().Lessons, excludeID)
	if conflicts == nil {
		conflicts = []models.Lesson{}
	}
	return conflicts
}

// LessonsForSlot returns lessons occupying an exact day/time window.
func (s *LessonService) LessonsForSlot(_ context.Context, dayOfWeek int, startTime, endTime string) []models.Lesson {
	found := timetable.LessonsForSlot(s.store.Snapshot().Lessons, dayOfWeek, startTime, endTime)
	if found == nil {
		found = []models.Lesson{}
	}
	return found
}

func (s *LessonService) prepare(req LessonRequest, id, excludeID string) (*models.Lesson, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid lesson payload")
	}

	lesson := models.NewLesson(id, req.TeacherID, req.GroupID, req.ClassroomID,
		strconv.Itoa(req.DayOfWeek), req.StartTime, req.EndTime, req.Note)

	if problems := timetable.ValidateLesson(lesson); len(problems) > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, strings.Join(problems, "; "))
	}

	state := s.store.Snapshot()
	if err := s.checkReferences(state, lesson); err != nil {
		return nil, err
	}

	if !req.Force {
		if conflicts := timetable.FindConflicts(lesson, state.Lessons, excludeID); len(conflicts) > 0 {
			domainErr := &models.ConflictError{
				Message:   "lesson conflicts with an existing booking",
				Conflicts: conflicts,
			}
			return nil, appErrors.Wrap(domainErr, appErrors.ErrConflict.Code, appErrors.ErrConflict.Status, domainErr.Message)
		}
	}
	return &lesson, nil
}

func (s *LessonService) checkReferences(state models.State, lesson models.Lesson) error {
	if !containsTeacher(state.Teachers, lesson.TeacherID) {
		return appErrors.Clone(appErrors.ErrValidation, "referenced teacher does not exist")
	}
	if !containsGroup(state.Groups, lesson.GroupID) {
		return appErrors.Clone(appErrors.ErrValidation, "referenced group does not exist")
	}
	if !containsClassroom(state.Classrooms, lesson.ClassroomID) {
		return appErrors.Clone(appErrors.ErrValidation, "referenced classroom does not exist")
	}
	return nil
}

func containsTeacher(teachers []models.Teacher, id string) bool {
	for _, t := range teachers {
		if t.ID == id {
			return true
		}
	}
	return false
}

func containsGroup(groups []models.Group, id string) bool {
	for _, g := range groups {
		if g.ID == id {
			return true
		}
	}
	return false
}

func containsClassroom(classrooms []models.Classroom, id string) bool {
	for _, c := range classrooms {
		if c.ID == id {
			return true
		}
	}
	return false
}
