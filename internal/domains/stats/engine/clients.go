package engine

import (
	"time"

	"arena/internal/domains/stats/model"
)

const clientScopeSeparator = "::"

// UniqueClients counts the distinct resolvable user ids in a subset.
// Bookings without a resolvable user are left out.
func UniqueClients(bookings []model.Booking) int {
	seen := map[string]struct{}{}

	for _, booking := range bookings {
		userID := booking.ResolvedUserID()
		if userID == "" {
			continue
		}

		seen[userID] = struct{}{}
	}

	return len(seen)
}

// FirstConfirmedDates maps each venue::user pair to the earliest confirmed
// booking date for that user at that venue. The scope is per venue: a
// returning customer at one venue is still a first-time customer at
// another.
func FirstConfirmedDates(bookings []model.Booking, loc *time.Location) map[string]time.Time {
	first := map[string]time.Time{}

	for _, booking := range bookings {
		if !booking.IsConfirmed() {
			continue
		}

		userID := booking.ResolvedUserID()
		venueID := booking.StrutturaID()

		if userID == "" || venueID == "" {
			continue
		}

		date, ok := ParseBookingDate(booking.Date, loc)
		if !ok {
			continue
		}

		key := venueID + clientScopeSeparator + userID
		if earliest, exists := first[key]; !exists || date.Before(earliest) {
			first[key] = date
		}
	}

	return first
}

// NewClients counts the venue::user pairs whose earliest confirmed date
// falls inside the window.
func NewClients(first map[string]time.Time, window DateRange) int {
	count := 0

	for _, date := range first {
		if window.Contains(date) {
			count++
		}
	}

	return count
}
