package timetable

import (
	"sort"

	"github.com/jadvalhub/jadval-api/internal/models"
)

// ScheduledLesson is a lesson enriched with its resolved group name for
// display in weekly schedule views.
type ScheduledLesson struct {
	models.Lesson
	GroupName string `json:"groupName"`
}

// LessonsForSlot returns all lessons matching the day and exact time window.
// Order is unspecified; callers re-sort as needed.
func LessonsForSlot(lessons []models.Lesson, dayOfWeek int, startTime, endTime string) []models.Lesson {
	var out []models.Lesson
	for _, lesson := range lessons {
		if lesson.DayOfWeek == dayOfWeek && lesson.StartTime == startTime && lesson.EndTime == endTime {
			out = append(out, lesson)
		}
	}
	return out
}

// LessonsForTeacher returns every lesson referencing the teacher.
func LessonsForTeacher(lessons []models.Lesson, teacherID string) []models.Lesson {
	var out []models.Lesson
	for _, lesson := range lessons {
		if lesson.TeacherID == teacherID {
			out = append(out, lesson)
		}
	}
	return out
}

// WeeklySchedule maps each day of week (1-7) to the teacher's lessons for
// that day, ordered by ascending start time. Lexicographic comparison is
// sufficient because times are zero-padded HH:MM. Days without lessons map
// to an empty slice, never a missing key.
func WeeklySchedule(lessons []models.Lesson, teacherID string, groupNames map[string]string) map[int][]ScheduledLesson {
	schedule := make(map[int][]ScheduledLesson, len(models.DaysOfWeek))
	for _, day := range models.DaysOfWeek {
		schedule[day.ID] = []ScheduledLesson{}
	}

	for _, lesson := range LessonsForTeacher(lessons, teacherID) {
		if lesson.DayOfWeek < 1 || lesson.DayOfWeek > len(models.DaysOfWeek) {
			continue
		}
		schedule[lesson.DayOfWeek] = append(schedule[lesson.DayOfWeek], ScheduledLesson{
			Lesson:    lesson,
			GroupName: groupNames[lesson.GroupID],
		})
	}

	for day := range schedule {
		entries := schedule[day]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].StartTime < entries[j].StartTime
		})
	}
	return schedule
}
