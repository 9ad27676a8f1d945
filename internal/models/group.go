package models

// Group represents a student group (class section).
type Group struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Level *string `json:"level,omitempty"`
}

// NewGroup builds a group record.
func NewGroup(id, name string, level *string) Group {
	return Group{ID: id, Name: name, Level: level}
}

// Classroom represents a bookable room.
type Classroom struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewClassroom builds a classroom record.
func NewClassroom(id, name string) Classroom {
	return Classroom{ID: id, Name: name}
}
