package timetable

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jadvalhub/jadval-api/internal/models"
)

// timePattern accepts 24-hour H:MM or HH:MM with hour 0-23 and minute 00-59.
var timePattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeFormat reports whether the value is a well-formed wall-clock
// time string.
func ValidTimeFormat(value string) bool {
	return timePattern.MatchString(value)
}

// ParseMinutes converts an "HH:MM" string to minutes since midnight.
// Callers are expected to have checked the format first.
func ParseMinutes(value string) int {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, _ := strconv.Atoi(parts[0])
	minutes, _ := strconv.Atoi(parts[1])
	return hours*60 + minutes
}

// SplitClock breaks an "HH:MM" string into hour and minute components.
func SplitClock(value string) (hour, minute int) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	hour, _ = strconv.Atoi(parts[0])
	minute, _ = strconv.Atoi(parts[1])
	return hour, minute
}

// ValidateLesson collects the field-level problems of a lesson record:
// missing references, day out of range, missing times and end-not-after-
// start ordering. It returns human-readable messages and never an error;
// an empty slice means the lesson is valid.
func ValidateLesson(lesson models.Lesson) []string {
	var problems []string

	if lesson.TeacherID == "" {
		problems = append(problems, "teacher is not selected")
	}
	if lesson.GroupID == "" {
		problems = append(problems, "group is not selected")
	}
	if lesson.ClassroomID == "" {
		problems = append(problems, "classroom is not selected")
	}
	if lesson.DayOfWeek < 1 || lesson.DayOfWeek > 7 {
		problems = append(problems, "invalid day of week")
	}
	if lesson.StartTime == "" || lesson.EndTime == "" {
		problems = append(problems, "time range is not set")
		return problems
	}
	if !ValidTimeFormat(lesson.StartTime) || !ValidTimeFormat(lesson.EndTime) {
		problems = append(problems, "invalid time format")
		return problems
	}
	if ParseMinutes(lesson.EndTime) <= ParseMinutes(lesson.StartTime) {
		problems = append(problems, "end time must be after start time")
	}
	return problems
}
