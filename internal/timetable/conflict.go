package timetable

import "github.com/jadvalhub/jadval-api/internal/models"

// SharesSlot reports whether two lessons occupy the same day and exact time
// slot while competing for at least one resource (teacher, group or
// classroom). Exact slot equality is the collision granularity because
// lessons are placed into the discrete windows produced by GenerateSlots;
// partial overlaps between differently-sized custom ranges are not detected.
func SharesSlot(a, b models.Lesson) bool {
	if a.DayOfWeek != b.DayOfWeek || a.StartTime != b.StartTime || a.EndTime != b.EndTime {
		return false
	}
	return a.TeacherID == b.TeacherID || a.GroupID == b.GroupID || a.ClassroomID == b.ClassroomID
}

// FindConflicts returns every existing lesson that collides with the
// candidate. excludeID skips the lesson being edited in place. The boolean
// check and the diagnostic listing both go through this single filter, so
// they can never disagree.
func FindConflicts(candidate models.Lesson, existing []models.Lesson, excludeID string) []models.Lesson {
	var conflicts []models.Lesson
	for _, lesson := range existing {
		if excludeID != "" && lesson.ID == excludeID {
			continue
		}
		if SharesSlot(candidate, lesson) {
			conflicts = append(conflicts, lesson)
		}
	}
	return conflicts
}

// HasConflict reports whether the candidate collides with any existing
// lesson.
func HasConflict(candidate models.Lesson, existing []models.Lesson, excludeID string) bool {
	return len(FindConflicts(candidate, existing, excludeID)) > 0
}
