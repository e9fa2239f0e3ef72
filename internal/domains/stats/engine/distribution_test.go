package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"arena/internal/domains/stats/engine"
	"arena/internal/domains/stats/model"
)

func TestHourlyHistogram(t *testing.T) {
	bookings := []model.Booking{
		{StartTime: "09:00"},
		{StartTime: "09:30"},
		{StartTime: "18:00"},
		{StartTime: "25:00"},
		{StartTime: "whenever"},
		{StartTime: ""},
	}

	histogram := engine.HourlyHistogram(bookings)

	assert.Equal(t, 2, histogram[9])
	assert.Equal(t, 1, histogram[18])

	total := 0
	for _, count := range histogram {
		total += count
	}
	assert.Equal(t, 3, total)
}

func TestWeeklyHistogram_MondayFirst(t *testing.T) {
	bookings := []model.Booking{
		{Date: "2026-08-24"}, // monday
		{Date: "2026-08-24"},
		{Date: "2026-08-30"}, // sunday
		{Date: "bad"},
	}

	histogram := engine.WeeklyHistogram(bookings, time.UTC)

	assert.Equal(t, 2, histogram[0])
	assert.Equal(t, 1, histogram[6])
	assert.Equal(t, "Lunedì", engine.WeekdayLabels[0])
	assert.Equal(t, "Domenica", engine.WeekdayLabels[6])
}

func TestSlotSizeForFilter(t *testing.T) {
	assert.InDelta(t, 1.5, engine.SlotSizeForFilter(1.5), 1e-9)
	assert.InDelta(t, 1.0, engine.SlotSizeForFilter(1.0), 1e-9)
	assert.InDelta(t, 1.0, engine.SlotSizeForFilter(0), 1e-9)
	assert.InDelta(t, 1.0, engine.SlotSizeForFilter(2), 1e-9)
}

func TestSlotLabel(t *testing.T) {
	assert.Equal(t, "09:00", engine.SlotLabel(9))
	assert.Equal(t, "10:30", engine.SlotLabel(10.5))
	assert.Equal(t, "00:00", engine.SlotLabel(0))
}

func TestSlotPopularity_HourlySlots(t *testing.T) {
	bookings := []model.Booking{
		{StartTime: "09:00", User: model.Ref{ID: "user-1", Name: "Marco", Surname: "Rossi"}},
		{StartTime: "09:30", User: model.Ref{ID: "user-1", Name: "Marco", Surname: "Rossi"}},
		{StartTime: "09:15", User: model.Ref{ID: "user-2", Name: "Luca"}},
		{StartTime: "18:00", User: model.Ref{ID: "user-3"}},
		{StartTime: "nonsense"},
	}

	slots := engine.SlotPopularity(bookings, 1)

	assert.Len(t, slots, 2)

	busiest := slots[0]
	assert.InDelta(t, 9, busiest.Start, 1e-9)
	assert.Equal(t, "09:00", busiest.Label)
	assert.Equal(t, 3, busiest.Count)

	assert.Len(t, busiest.TopUsers, 2)
	assert.Equal(t, "Marco Rossi", busiest.TopUsers[0].DisplayName)
	assert.Equal(t, 2, busiest.TopUsers[0].Count)
	assert.Equal(t, "Luca", busiest.TopUsers[1].DisplayName)
}

func TestSlotPopularity_NinetyMinuteSlots(t *testing.T) {
	bookings := []model.Booking{
		{StartTime: "10:00", User: model.Ref{ID: "user-1"}},
		{StartTime: "10:30", User: model.Ref{ID: "user-2"}},
		{StartTime: "11:30", User: model.Ref{ID: "user-3"}},
	}

	slots := engine.SlotPopularity(bookings, 1.5)

	// 10:00 falls in the 09:00 slot (floor(10/1.5)*1.5 = 9.0); 10:30 and
	// 11:30 both key to 10.5 (floor(10.5/1.5)*1.5 = floor(11.5/1.5)*1.5).
	assert.Len(t, slots, 2)
	assert.InDelta(t, 10.5, slots[0].Start, 1e-9)
	assert.Equal(t, "10:30", slots[0].Label)
	assert.Equal(t, 2, slots[0].Count)
	assert.InDelta(t, 9, slots[1].Start, 1e-9)
	assert.Equal(t, 1, slots[1].Count)
}

func TestSlotPopularity_AnonymousUser(t *testing.T) {
	bookings := []model.Booking{
		{StartTime: "09:00", UserID: "user-1"},
	}

	slots := engine.SlotPopularity(bookings, 1)

	assert.Len(t, slots, 1)
	assert.Equal(t, model.AnonymousClientName, slots[0].TopUsers[0].DisplayName)
}

func TestSlotPopularity_TopFiveAndDeterministicTies(t *testing.T) {
	bookings := []model.Booking{}
	for hour := 8; hour < 15; hour++ {
		bookings = append(bookings, model.Booking{
			StartTime: engine.SlotLabel(float64(hour)),
			User:      model.Ref{ID: "user-1"},
		})
	}

	slots := engine.SlotPopularity(bookings, 1)

	assert.Len(t, slots, 5)

	// All counts tie, so ordering falls back to the earlier slot.
	for i := 0; i < len(slots)-1; i++ {
		assert.Less(t, slots[i].Start, slots[i+1].Start)
	}
	assert.InDelta(t, 8, slots[0].Start, 1e-9)
}
