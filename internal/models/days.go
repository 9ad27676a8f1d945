package models

import (
	"strconv"
	"strings"
)

// Day describes one weekday with its localized full and short names.
type Day struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Short string `json:"short"`
}

// DaysOfWeek is the canonical weekday table, Monday=1 through Sunday=7.
var DaysOfWeek = []Day{
	{ID: 1, Name: "Dushanba", Short: "Du"},
	{ID: 2, Name: "Seshanba", Short: "Se"},
	{ID: 3, Name: "Chorshanba", Short: "Ch"},
	{ID: 4, Name: "Payshanba", Short: "Pa"},
	{ID: 5, Name: "Juma", Short: "Ju"},
	{ID: 6, Name: "Shanba", Short: "Sh"},
	{ID: 7, Name: "Yakshanba", Short: "Ya"},
}

// DayName returns the localized full name for a weekday number, or the
// empty string when out of range.
func DayName(dayOfWeek int) string {
	if dayOfWeek < 1 || dayOfWeek > len(DaysOfWeek) {
		return ""
	}
	return DaysOfWeek[dayOfWeek-1].Name
}

// ResolveDay maps a raw day value to a weekday number. Numeric values must
// fall in 1-7; anything else is matched case-insensitively as a substring
// of each day's full name or short code. Returns 0 when nothing matches.
func ResolveDay(raw string) int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	if n, err := strconv.Atoi(trimmed); err == nil {
		if n >= 1 && n <= len(DaysOfWeek) {
			return n
		}
		return 0
	}
	needle := strings.ToLower(trimmed)
	for _, day := range DaysOfWeek {
		if strings.Contains(strings.ToLower(day.Name), needle) ||
			strings.Contains(strings.ToLower(day.Short), needle) {
			return day.ID
		}
	}
	return 0
}
