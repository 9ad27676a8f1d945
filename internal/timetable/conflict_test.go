package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadvalhub/jadval-api/internal/models"
)

func slotLesson(id, teacherID, groupID, classroomID string) models.Lesson {
	return models.Lesson{
		ID:          id,
		TeacherID:   teacherID,
		GroupID:     groupID,
		ClassroomID: classroomID,
		DayOfWeek:   1,
		StartTime:   "08:30",
		EndTime:     "10:00",
	}
}

func TestHasConflictSharedTeacher(t *testing.T) {
	existing := []models.Lesson{slotLesson("l1", "t1", "g1", "c1")}
	candidate := slotLesson("l2", "t1", "g2", "c2")

	assert.True(t, HasConflict(candidate, existing, ""))
}

func TestHasConflictSharedGroupAndClassroom(t *testing.T) {
	existing := []models.Lesson{slotLesson("l1", "t1", "g1", "c1")}

	assert.True(t, HasConflict(slotLesson("l2", "t2", "g1", "c2"), existing, ""))
	assert.True(t, HasConflict(slotLesson("l3", "t2", "g2", "c1"), existing, ""))
}

func TestHasConflictDisjointResources(t *testing.T) {
	existing := []models.Lesson{slotLesson("l1", "t1", "g1", "c1")}
	candidate := slotLesson("l2", "t2", "g2", "c2")

	assert.False(t, HasConflict(candidate, existing, ""))
}

func TestHasConflictDifferentSlot(t *testing.T) {
	existing := []models.Lesson{slotLesson("l1", "t1", "g1", "c1")}

	other := slotLesson("l2", "t1", "g1", "c1")
	other.StartTime = "10:00"
	other.EndTime = "11:30"
	assert.False(t, HasConflict(other, existing, ""))

	otherDay := slotLesson("l3", "t1", "g1", "c1")
	otherDay.DayOfWeek = 2
	assert.False(t, HasConflict(otherDay, existing, ""))
}

func TestHasConflictExcludesSelfDuringEdit(t *testing.T) {
	lesson := slotLesson("l1", "t1", "g1", "c1")

	assert.False(t, HasConflict(lesson, []models.Lesson{lesson}, lesson.ID))
}

func TestFindConflictsListsEveryCollision(t *testing.T) {
	existing := []models.Lesson{
		slotLesson("l1", "t1", "g1", "c1"),
		slotLesson("l2", "t2", "g2", "c2"),
		slotLesson("l3", "t1", "g3", "c3"),
	}
	candidate := slotLesson("cand", "t1", "g9", "c9")

	conflicts := FindConflicts(candidate, existing, "")
	require.Len(t, conflicts, 2)
	assert.Equal(t, "l1", conflicts[0].ID)
	assert.Equal(t, "l3", conflicts[1].ID)

	// The boolean check and the listing share the same predicate.
	assert.Equal(t, len(conflicts) > 0, HasConflict(candidate, existing, ""))
}
