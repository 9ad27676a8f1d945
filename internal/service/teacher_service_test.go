package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/jadvalhub/jadval-api/pkg/errors"
)

func TestTeacherCreateDefaultsColor(t *testing.T) {
	st := emptyStore(t)
	svc := NewTeacherService(st, nil, nil)

	teacher, err := svc.Create(context.Background(), CreateTeacherRequest{FullName: "  Aziza Karimova  "})
	require.NoError(t, err)
	assert.Equal(t, "Aziza Karimova", teacher.FullName)
	assert.True(t, strings.HasPrefix(teacher.Color, "#"))
	assert.Nil(t, teacher.Department)
}

func TestTeacherCreateRequiresName(t *testing.T) {
	svc := NewTeacherService(emptyStore(t), nil, nil)

	_, err := svc.Create(context.Background(), CreateTeacherRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestTeacherUpdateMissing(t *testing.T) {
	svc := NewTeacherService(emptyStore(t), nil, nil)

	_, err := svc.Update(context.Background(), "nope", UpdateTeacherRequest{FullName: "X"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestTeacherDeleteCascades(t *testing.T) {
	st := lessonFixtureStore(t)
	svc := NewTeacherService(st, nil, nil)

	removed, err := svc.Delete(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	state := st.Snapshot()
	assert.Len(t, state.Teachers, 1)
	assert.Empty(t, state.Lessons)
}

func TestTeacherWeeklySchedule(t *testing.T) {
	st := lessonFixtureStore(t)
	svc := NewTeacherService(st, nil, nil)

	schedule, err := svc.WeeklySchedule(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, schedule, 7)
	require.Len(t, schedule[1], 1)
	assert.Equal(t, "10-A", schedule[1][0].GroupName)
	assert.Empty(t, schedule[7])

	_, err = svc.WeeklySchedule(context.Background(), "missing")
	require.Error(t, err)
}

func TestGroupDeleteCascades(t *testing.T) {
	st := lessonFixtureStore(t)
	svc := NewGroupService(st, nil, nil)

	removed, err := svc.Delete(context.Background(), "g1")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)
	assert.Empty(t, st.Snapshot().Lessons)
}

func TestClassroomCRUD(t *testing.T) {
	st := emptyStore(t)
	svc := NewClassroomService(st, nil, nil)

	room, err := svc.Create(context.Background(), ClassroomRequest{Name: " 101 "})
	require.NoError(t, err)
	assert.Equal(t, "101", room.Name)

	updated, err := svc.Update(context.Background(), room.ID, ClassroomRequest{Name: "Laboratoriya"})
	require.NoError(t, err)
	assert.Equal(t, "Laboratoriya", updated.Name)

	removed, err := svc.Delete(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Empty(t, svc.List(context.Background()))
}

func TestStateResetRestoresSeed(t *testing.T) {
	st := emptyStore(t)
	svc := NewStateService(st, nil)

	assert.Empty(t, svc.Snapshot(context.Background()).Teachers)

	state := svc.Reset(context.Background())
	assert.Len(t, state.Teachers, 3)
	assert.Len(t, state.Groups, 3)
	assert.Len(t, state.Classrooms, 4)
	assert.Equal(t, "Maktab Dars Jadvali", state.Settings.SchoolName)
}
