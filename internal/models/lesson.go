package models

import "strconv"

// Lesson is one weekly-recurring occupation of a teacher, group and
// classroom for a fixed day and time range. Times are local wall-clock
// strings in zero-padded 24-hour "HH:MM" form.
type Lesson struct {
	ID          string `json:"id"`
	TeacherID   string `json:"teacherId"`
	GroupID     string `json:"groupId"`
	ClassroomID string `json:"classroomId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Note        string `json:"note,omitempty"`
}

// NewLesson builds a lesson record, coercing the day value to an integer.
// It does not validate time ordering or day range; validation is explicit
// and lives with the callers.
func NewLesson(id, teacherID, groupID, classroomID, day, startTime, endTime, note string) Lesson {
	dayOfWeek, _ := strconv.Atoi(day)
	return Lesson{
		ID:          id,
		TeacherID:   teacherID,
		GroupID:     groupID,
		ClassroomID: classroomID,
		DayOfWeek:   dayOfWeek,
		StartTime:   startTime,
		EndTime:     endTime,
		Note:        note,
	}
}

// References reports whether the lesson points at the given entity id via
// any of its three foreign references.
func (l Lesson) References(entityID string) bool {
	return l.TeacherID == entityID || l.GroupID == entityID || l.ClassroomID == entityID
}
