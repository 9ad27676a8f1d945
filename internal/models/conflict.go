package models

// ConflictError is returned when a lesson collides with existing lessons on
// the same day and exact time slot while sharing a teacher, group or
// classroom. It carries the colliding lessons for diagnostic display.
type ConflictError struct {
	Message   string   `json:"message"`
	Conflicts []Lesson `json:"conflicts"`
}

// Error implements the error interface for conflict errors.
func (e *ConflictError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}
