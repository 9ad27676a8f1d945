package models

// WorkingHours bounds the bookable part of a day.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Settings holds school-wide timetable configuration plus display-only
// fields mirrored for the UI.
type Settings struct {
	SchoolName     string       `json:"schoolName"`
	WorkingHours   WorkingHours `json:"workingHours"`
	LessonDuration int          `json:"lessonDuration"`
	WorkingDays    int          `json:"workingDays"`
	DarkMode       bool         `json:"darkMode"`
}

// State is the whole application state tree. It is the unit of persistence:
// every mutation produces a new snapshot that is mirrored wholesale to the
// durable store.
type State struct {
	Teachers   []Teacher   `json:"teachers"`
	Groups     []Group     `json:"groups"`
	Classrooms []Classroom `json:"classrooms"`
	Lessons    []Lesson    `json:"lessons"`
	Settings   Settings    `json:"settings"`
}

// Clone returns a deep copy of the state so callers can never alias the
// store's internal slices.
func (s State) Clone() State {
	cp := s
	cp.Teachers = append([]Teacher(nil), s.Teachers...)
	cp.Groups = append([]Group(nil), s.Groups...)
	cp.Classrooms = append([]Classroom(nil), s.Classrooms...)
	cp.Lessons = append([]Lesson(nil), s.Lessons...)
	return cp
}
