package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jadvalhub/jadval-api/internal/models"
)

func TestLessonsForSlotRoundTrip(t *testing.T) {
	lesson := models.Lesson{
		ID: "l1", TeacherID: "t1", GroupID: "g1", ClassroomID: "c1",
		DayOfWeek: 3, StartTime: "11:00", EndTime: "12:30",
	}
	other := models.Lesson{
		ID: "l2", TeacherID: "t2", GroupID: "g2", ClassroomID: "c2",
		DayOfWeek: 3, StartTime: "12:30", EndTime: "14:00",
	}

	matched := LessonsForSlot([]models.Lesson{lesson, other}, lesson.DayOfWeek, lesson.StartTime, lesson.EndTime)
	require.Len(t, matched, 1)
	assert.Equal(t, lesson, matched[0])
}

func TestLessonsForTeacher(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "l1", TeacherID: "t1"},
		{ID: "l2", TeacherID: "t2"},
		{ID: "l3", TeacherID: "t1"},
	}

	mine := LessonsForTeacher(lessons, "t1")
	require.Len(t, mine, 2)
	assert.Equal(t, "l1", mine[0].ID)
	assert.Equal(t, "l3", mine[1].ID)
}

func TestWeeklyScheduleAlwaysHasSevenDays(t *testing.T) {
	schedule := WeeklySchedule(nil, "t1", nil)

	require.Len(t, schedule, 7)
	for day := 1; day <= 7; day++ {
		entries, ok := schedule[day]
		require.True(t, ok)
		assert.NotNil(t, entries)
		assert.Empty(t, entries)
	}
}

func TestWeeklyScheduleOrdersByStartTime(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "late", TeacherID: "t1", GroupID: "g1", DayOfWeek: 1, StartTime: "14:00", EndTime: "15:30"},
		{ID: "early", TeacherID: "t1", GroupID: "g2", DayOfWeek: 1, StartTime: "08:00", EndTime: "09:30"},
		{ID: "other-teacher", TeacherID: "t2", GroupID: "g1", DayOfWeek: 1, StartTime: "09:30", EndTime: "11:00"},
	}
	groupNames := map[string]string{"g1": "10-A", "g2": "11-B"}

	schedule := WeeklySchedule(lessons, "t1", groupNames)

	monday := schedule[1]
	require.Len(t, monday, 2)
	assert.Equal(t, "early", monday[0].ID)
	assert.Equal(t, "11-B", monday[0].GroupName)
	assert.Equal(t, "late", monday[1].ID)
	assert.Equal(t, "10-A", monday[1].GroupName)
	assert.Empty(t, schedule[2])
}
