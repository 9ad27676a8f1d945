package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/models"
)

type recordingSnapshots struct {
	saves []models.State
	err   error
}

func (r *recordingSnapshots) Save(_ context.Context, state models.State) error {
	r.saves = append(r.saves, state)
	return r.err
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := New(SeedState(), nil, zap.NewNop())

	snap := s.Snapshot()
	snap.Teachers[0].FullName = "mutated"

	assert.Equal(t, "Aziza Karimova", s.Snapshot().Teachers[0].FullName)
}

func TestStoreMirrorsEveryMutation(t *testing.T) {
	snapshots := &recordingSnapshots{}
	s := New(models.State{}, snapshots, zap.NewNop())

	s.AddTeacher(context.Background(), models.Teacher{ID: "t1", FullName: "A"})
	s.AddGroup(context.Background(), models.Group{ID: "g1", Name: "10-A"})

	require.Len(t, snapshots.saves, 2)
	assert.Len(t, snapshots.saves[1].Teachers, 1)
	assert.Len(t, snapshots.saves[1].Groups, 1)
}

func TestStoreMirrorFailureDoesNotBlockMutation(t *testing.T) {
	snapshots := &recordingSnapshots{err: errors.New("backend down")}
	s := New(models.State{}, snapshots, zap.NewNop())

	s.AddTeacher(context.Background(), models.Teacher{ID: "t1", FullName: "A"})

	assert.Len(t, s.Snapshot().Teachers, 1)
}

func TestStoreDeleteTeacherCascadesLessons(t *testing.T) {
	s := New(SeedState(), nil, zap.NewNop())

	removed := s.DeleteTeacher(context.Background(), "1")
	require.True(t, removed)

	state := s.Snapshot()
	assert.Len(t, state.Teachers, 2)
	for _, lesson := range state.Lessons {
		assert.NotEqual(t, "1", lesson.TeacherID)
	}
}

func TestStoreDeleteGroupCascadesLessons(t *testing.T) {
	s := New(SeedState(), nil, zap.NewNop())

	require.True(t, s.DeleteGroup(context.Background(), "2"))

	state := s.Snapshot()
	for _, lesson := range state.Lessons {
		assert.NotEqual(t, "2", lesson.GroupID)
	}
}

func TestStoreDeleteClassroomCascadesLessons(t *testing.T) {
	s := New(SeedState(), nil, zap.NewNop())

	require.True(t, s.DeleteClassroom(context.Background(), "4"))

	state := s.Snapshot()
	for _, lesson := range state.Lessons {
		assert.NotEqual(t, "4", lesson.ClassroomID)
	}
}

func TestStoreUpdateMissingRecord(t *testing.T) {
	s := New(models.State{}, nil, zap.NewNop())

	assert.False(t, s.UpdateTeacher(context.Background(), models.Teacher{ID: "missing"}))
	assert.False(t, s.UpdateGroup(context.Background(), models.Group{ID: "missing"}))
	assert.False(t, s.UpdateLesson(context.Background(), models.Lesson{ID: "missing"}))
	assert.False(t, s.DeleteLesson(context.Background(), "missing"))
}

func TestStoreLessonsReferencing(t *testing.T) {
	s := New(SeedState(), nil, zap.NewNop())

	dependents := s.LessonsReferencing("1")
	// teacher "1" and group "1" and classroom "1" all appear on lesson 1;
	// ids are opaque, the primitive matches any of the three references.
	require.NotEmpty(t, dependents)
	assert.Equal(t, "1", dependents[0].ID)
}

func TestStoreApplyBatch(t *testing.T) {
	s := New(models.State{}, nil, zap.NewNop())

	s.ApplyBatch(context.Background(),
		[]models.Teacher{{ID: "t1", FullName: "A"}},
		[]models.Group{{ID: "g1", Name: "10-A"}},
		[]models.Classroom{{ID: "c1", Name: "101"}},
		[]models.Lesson{{ID: "l1", TeacherID: "t1", GroupID: "g1", ClassroomID: "c1", DayOfWeek: 1, StartTime: "08:30", EndTime: "10:00"}},
	)

	state := s.Snapshot()
	assert.Len(t, state.Teachers, 1)
	assert.Len(t, state.Groups, 1)
	assert.Len(t, state.Classrooms, 1)
	assert.Len(t, state.Lessons, 1)
}

func TestStoreReplaceReseeds(t *testing.T) {
	s := New(models.State{}, nil, zap.NewNop())

	s.Replace(context.Background(), SeedState())

	assert.Len(t, s.Snapshot().Teachers, 3)
}
