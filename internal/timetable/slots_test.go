package timetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlotsStandardDay(t *testing.T) {
	slots := GenerateSlots(8, 18, 90)

	require.Len(t, slots, 7)
	assert.Equal(t, Slot{StartTime: "08:00", EndTime: "09:30"}, slots[0])
	assert.Equal(t, Slot{StartTime: "09:30", EndTime: "11:00"}, slots[1])
	assert.Equal(t, Slot{StartTime: "11:00", EndTime: "12:30"}, slots[2])
	assert.Equal(t, Slot{StartTime: "12:30", EndTime: "14:00"}, slots[3])
	assert.Equal(t, Slot{StartTime: "14:00", EndTime: "15:30"}, slots[4])
	assert.Equal(t, Slot{StartTime: "15:30", EndTime: "17:00"}, slots[5])
	assert.Equal(t, Slot{StartTime: "17:00", EndTime: "18:30"}, slots[6])

	for i, slot := range slots {
		assert.Equal(t, 90, ParseMinutes(slot.EndTime)-ParseMinutes(slot.StartTime))
		if i > 0 {
			assert.Equal(t, slots[i-1].EndTime, slot.StartTime)
		}
		assert.Less(t, ParseMinutes(slot.StartTime), 18*60)
	}
}

func TestGenerateSlotsHourAligned(t *testing.T) {
	slots := GenerateSlots(9, 12, 60)

	require.Len(t, slots, 3)
	assert.Equal(t, "09:00", slots[0].StartTime)
	assert.Equal(t, "12:00", slots[2].EndTime)
}

func TestGenerateSlotsLastSlotMayOverrun(t *testing.T) {
	slots := GenerateSlots(8, 10, 45)

	// 09:45 still starts before 10, so its window runs past the end hour.
	require.Len(t, slots, 3)
	assert.Equal(t, Slot{StartTime: "09:30", EndTime: "10:15"}, slots[2])
}

func TestGenerateSlotsDegenerateInput(t *testing.T) {
	assert.Empty(t, GenerateSlots(18, 8, 90))
	assert.Empty(t, GenerateSlots(8, 18, 0))
}

func TestGenerateSlotsFreshOnEachCall(t *testing.T) {
	first := GenerateSlots(8, 18, 90)
	first[0].StartTime = "mutated"

	second := GenerateSlots(8, 18, 90)
	assert.Equal(t, "08:00", second[0].StartTime)
}
