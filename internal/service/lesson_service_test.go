package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadvalhub/jadval-api/internal/models"
	"github.com/jadvalhub/jadval-api/internal/store"
	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
)

func lessonFixtureStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(models.State{
		Teachers:   []models.Teacher{{ID: "t1", FullName: "Aziza Karimova", Color: "#3B82F6"}, {ID: "t2", FullName: "Bobur Rahimov", Color: "#10B981"}},
		Groups:     []models.Group{{ID: "g1", Name: "10-A"}, {ID: "g2", Name: "11-B"}},
		Classrooms: []models.Classroom{{ID: "c1", Name: "101"}, {ID: "c2", Name: "102"}},
		Lessons: []models.Lesson{
			{ID: "l1", TeacherID: "t1", GroupID: "g1", ClassroomID: "c1", DayOfWeek: 1, StartTime: "08:30", EndTime: "10:00"},
		},
	}, store.NopSnapshotStore{}, nil)
}

func validRequest() LessonRequest {
	return LessonRequest{
		TeacherID:   "t2",
		GroupID:     "g2",
		ClassroomID: "c2",
		DayOfWeek:   2,
		StartTime:   "10:00",
		EndTime:     "11:30",
	}
}

func TestLessonCreate(t *testing.T) {
	st := lessonFixtureStore(t)
	svc := NewLessonService(st, nil, nil)

	lesson, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, lesson.ID)
	assert.Len(t, st.Snapshot().Lessons, 2)
}

func TestLessonCreateConflictBlocked(t *testing.T) {
	svc := NewLessonService(lessonFixtureStore(t), nil, nil)

	req := validRequest()
	req.TeacherID = "t1"
	req.DayOfWeek = 1
	req.StartTime = "08:30"
	req.EndTime = "10:00"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)

	var conflictErr *models.ConflictError
	require.True(t, errors.As(err, &conflictErr))
	require.Len(t, conflictErr.Conflicts, 1)
	assert.Equal(t, "l1", conflictErr.Conflicts[0].ID)
}

func TestLessonCreateConflictForced(t *testing.T) {
	st := lessonFixtureStore(t)
	svc := NewLessonService(st, nil, nil)

	req := validRequest()
	req.TeacherID = "t1"
	req.DayOfWeek = 1
	req.StartTime = "08:30"
	req.EndTime = "10:00"
	req.Force = true

	lesson, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.NotEmpty(t, lesson.ID)
	assert.Len(t, st.Snapshot().Lessons, 2)
}

func TestLessonCreateNoConflictOnPartialOverlap(t *testing.T) {
	svc := NewLessonService(lessonFixtureStore(t), nil, nil)

	req := validRequest()
	req.TeacherID = "t1"
	req.DayOfWeek = 1
	req.StartTime = "09:00"
	req.EndTime = "10:30"

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
}

func TestLessonCreateUnknownReference(t *testing.T) {
	svc := NewLessonService(lessonFixtureStore(t), nil, nil)

	req := validRequest()
	req.TeacherID = "missing"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "referenced teacher does not exist", appErr.Message)
}

func TestLessonCreateEndBeforeStart(t *testing.T) {
	svc := NewLessonService(lessonFixtureStore(t), nil, nil)

	req := validRequest()
	req.StartTime = "11:00"
	req.EndTime = "10:00"

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestLessonUpdateExcludesSelfFromConflicts(t *testing.T) {
	st := lessonFixtureStore(t)
	svc := NewLessonService(st, nil, nil)

	req := LessonRequest{
		TeacherID:   "t1",
		GroupID:     "g1",
		ClassroomID: "c1",
		DayOfWeek:   1,
		StartTime:   "08:30",
		EndTime:     "10:00",
		Note:        "yangilandi",
	}

	lesson, err := svc.Update(context.Background(), "l1", req)
	require.NoError(t, err)
	assert.Equal(t, "yangilandi", lesson.Note)
}

func TestLessonUpdateMissing(t *testing.T) {
	svc := NewLessonService(lessonFixtureStore(t), nil, nil)

	_, err := svc.Update(context.Background(), "nope", validRequest())
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestLessonDelete(t *testing.T) {
	st := lessonFixtureStore(t)
	svc := NewLessonService(st, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "l1"))
	assert.Empty(t, st.Snapshot().Lessons)
	require.Error(t, svc.Delete(context.Background(), "l1"))
}

func TestLessonListFilters(t *testing.T) {
	st := lessonFixtureStore(t)
	svc := NewLessonService(st, nil, nil)

	req := validRequest()
	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	assert.Len(t, svc.List(context.Background(), LessonFilter{}), 2)
	assert.Len(t, svc.List(context.Background(), LessonFilter{TeacherID: "t1"}), 1)
	assert.Len(t, svc.List(context.Background(), LessonFilter{DayOfWeek: 2}), 1)
	assert.Empty(t, svc.List(context.Background(), LessonFilter{GroupID: "none"}))
}

func TestLessonCheckConflictsPreview(t *testing.T) {
	svc := NewLessonService(lessonFixtureStore(t), nil, nil)

	req := validRequest()
	req.GroupID = "g1"
	req.DayOfWeek = 1
	req.StartTime = "08:30"
	req.EndTime = "10:00"

	conflicts := svc.CheckConflicts(context.Background(), req, "")
	require.Len(t, conflicts, 1)
	assert.Equal(t, "l1", conflicts[0].ID)

	assert.Empty(t, svc.CheckConflicts(context.Background(), req, "l1"))
	assert.Len(t, svc.LessonsForSlot(context.Background(), 1, "08:30", "10:00"), 1)
}
