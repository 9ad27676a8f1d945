// Package timetable implements the pure scheduling engine: time-slot
// generation, the conflict predicate and read-only queries over the lesson
// set. Nothing in this package touches application state or performs I/O.
package timetable

import "fmt"

// Slot is one bookable window in "HH:MM" form.
type Slot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// GenerateSlots produces the ordered sequence of bookable windows for one
// day. Generation starts at startHour:00 and steps by intervalMinutes;
// it continues while the slot's start hour is strictly below endHour, so
// the final slot may extend past endHour when the interval does not divide
// the span evenly. The slice is rebuilt fresh on every call.
func GenerateSlots(startHour, endHour, intervalMinutes int) []Slot {
	slots := []Slot{}
	if intervalMinutes <= 0 {
		return slots
	}

	hour := startHour
	minute := 0
	for hour < endHour {
		endMinute := minute + intervalMinutes
		slotEndHour := hour + endMinute/60
		endMinute = endMinute % 60

		slots = append(slots, Slot{
			StartTime: formatClock(hour, minute),
			EndTime:   formatClock(slotEndHour, endMinute),
		})

		minute += intervalMinutes
		hour += minute / 60
		minute = minute % 60
	}
	return slots
}

func formatClock(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
