package engine

import (
	"math"
	"time"

	"arena/internal/domains/stats/model"
)

// WeeksPerMonth is the mean number of weeks in a calendar month, used to
// project weekly availability onto the rolling month window.
const WeeksPerMonth = 4.33

var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ScheduleHours converts an open/close clock pair into available hours.
// Inverted or unparseable pairs contribute nothing.
func ScheduleHours(open, close string) float64 {
	openHours, okOpen := model.ParseClock(open)
	closeHours, okClose := model.ParseClock(close)

	if !okOpen || !okClose {
		return 0
	}

	if hours := closeHours - openHours; hours > 0 {
		return hours
	}

	return 0
}

// WeeklyHours sums a field's available hours across the seven weekdays.
// Days without a schedule entry, disabled or closed days contribute zero.
func WeeklyHours(campo model.Campo) float64 {
	total := 0.0

	for _, day := range weekdays {
		schedule, ok := campo.WeeklySchedule[day]
		if !ok || !schedule.Available() {
			continue
		}

		total += ScheduleHours(schedule.Open, schedule.Close)
	}

	return total
}

// AvailableWeeklyHours sums weekly availability across every field that
// belongs to one of the owner's venues. Fields referencing a foreign or
// unresolvable venue are skipped so stray records cannot inflate
// availability.
func AvailableWeeklyHours(campi []model.Campo, venueIDs map[string]struct{}) float64 {
	total := 0.0

	for _, campo := range campi {
		if _, owned := venueIDs[campo.Struttura.ID]; !owned {
			continue
		}

		total += WeeklyHours(campo)
	}

	return total
}

// BookedHours sums the resolved duration of confirmed bookings whose date
// falls inside the window. Bookings with unparseable dates are left out.
func BookedHours(bookings []model.Booking, window DateRange, loc *time.Location) float64 {
	total := 0.0

	for _, booking := range bookings {
		if !booking.IsConfirmed() {
			continue
		}

		date, ok := ParseBookingDate(booking.Date, loc)
		if !ok || !window.Contains(date) {
			continue
		}

		total += booking.DurationHours()
	}

	return total
}

// Occupancy converts booked versus available hours into a percentage,
// clamped to [0, 100]. Zero or missing availability reports zero instead
// of a division artifact.
func Occupancy(bookedHours, availableHours float64) int {
	if availableHours <= 0 {
		return 0
	}

	rate := math.Round(bookedHours / availableHours * 100)

	return int(math.Min(100, math.Max(0, rate)))
}

// TrailingMonthBookedHours sums confirmed booked hours strictly before
// today and strictly after one month ago. Unlike the rolling month figure
// this deliberately excludes same-day and future-dated bookings, so the
// rate reflects only concluded business.
func TrailingMonthBookedHours(bookings []model.Booking, today time.Time, loc *time.Location) float64 {
	monthAgo := today.AddDate(0, -1, 0)
	total := 0.0

	for _, booking := range bookings {
		if !booking.IsConfirmed() {
			continue
		}

		date, ok := ParseBookingDate(booking.Date, loc)
		if !ok {
			continue
		}

		if date.Before(today) && date.After(monthAgo) {
			total += booking.DurationHours()
		}
	}

	return total
}
