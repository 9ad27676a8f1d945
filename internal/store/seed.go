package store

import "github.com/jadvalhub/jadval-api/internal/models"

func strPtr(s string) *string { return &s }

// SeedState returns the bundled startup dataset. The application always
// seeds from this at launch and only writes the durable slot afterwards;
// the persisted copy is never read back on boot.
func SeedState() models.State {
	return models.State{
		Teachers: []models.Teacher{
			{ID: "1", FullName: "Aziza Karimova", Department: strPtr("Matematika"), Color: "#3B82F6"},
			{ID: "2", FullName: "Bobur Rahimov", Department: strPtr("Fizika"), Color: "#10B981"},
			{ID: "3", FullName: "Dildora Tursunova", Department: strPtr("Kimyo"), Color: "#F59E0B"},
		},
		Groups: []models.Group{
			{ID: "1", Name: "10-A", Level: strPtr("10")},
			{ID: "2", Name: "11-B", Level: strPtr("11")},
			{ID: "3", Name: "9-V", Level: strPtr("9")},
		},
		Classrooms: []models.Classroom{
			{ID: "1", Name: "101"},
			{ID: "2", Name: "102"},
			{ID: "3", Name: "201"},
			{ID: "4", Name: "Laboratoriya"},
		},
		Lessons: []models.Lesson{
			{ID: "1", TeacherID: "1", GroupID: "1", ClassroomID: "1", DayOfWeek: 1, StartTime: "08:30", EndTime: "10:00"},
			{ID: "2", TeacherID: "2", GroupID: "2", ClassroomID: "4", DayOfWeek: 2, StartTime: "10:00", EndTime: "11:30", Note: "Laboratoriya ishlar"},
		},
		Settings: models.Settings{
			SchoolName:     "Maktab Dars Jadvali",
			WorkingHours:   models.WorkingHours{Start: "08:00", End: "18:00"},
			LessonDuration: 90,
			WorkingDays:    6,
			DarkMode:       false,
		},
	}
}
