package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/jadvalhub/jadval-api/internal/store"
	"github.com/jadvalhub/jadval-api/internal/timetable"
)

// SlotQuery optionally overrides the configured working window. Zero values
// fall back to the school settings.
type SlotQuery struct {
	StartHour int
	EndHour   int
	Interval  int
}

// SlotService derives the bookable time grid from school settings.
type SlotService struct {
	store  *store.Store
	logger *zap.Logger
}

// NewSlotService instantiates SlotService.
func NewSlotService(st *store.Store, logger *zap.Logger) *SlotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlotService{store: st, logger: logger}
}

// Slots generates candidate lesson slots for the current working hours.
// Explicit query values win over the stored settings.
func (s *SlotService) Slots(_ context.Context, query SlotQuery) []timetable.Slot {
	settings := s.store.Snapshot().Settings

	startHour := query.StartHour
	if startHour == 0 {
		startHour, _ = timetable.SplitClock(settings.WorkingHours.Start)
	}
	endHour := query.EndHour
	if endHour == 0 {
		endHour, _ = timetable.SplitClock(settings.WorkingHours.End)
	}
	interval := query.Interval
	if interval == 0 {
		interval = settings.LessonDuration
	}
	return timetable.GenerateSlots(startHour, endHour, interval)
}
