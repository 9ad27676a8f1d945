package models

// Teacher represents an instructor record.
type Teacher struct {
	ID         string  `json:"id"`
	FullName   string  `json:"fullName"`
	Department *string `json:"department,omitempty"`
	Color      string  `json:"color"`
}

// NewTeacher builds a teacher record, defaulting the display color when
// absent. Construction is permissive; required-field checks happen in the
// service layer.
func NewTeacher(id, fullName string, department *string, color string) Teacher {
	if color == "" {
		color = RandomColor()
	}
	return Teacher{ID: id, FullName: fullName, Department: department, Color: color}
}
