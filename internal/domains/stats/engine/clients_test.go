package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"arena/internal/domains/stats/engine"
	"arena/internal/domains/stats/model"
)

func TestUniqueClients(t *testing.T) {
	bookings := []model.Booking{
		{User: model.Ref{ID: "user-1"}},
		{User: model.Ref{ID: "user-1"}},
		{UserID: "user-2"},
		{User: model.Ref{ID: "user-3"}, UserID: "ignored-fallback"},
		{},
	}

	assert.Equal(t, 3, engine.UniqueClients(bookings))
}

func TestFirstConfirmedDates_VenueScoped(t *testing.T) {
	campoA := model.Ref{ID: "campo-1", Struttura: &model.Ref{ID: "venue-a"}}
	campoB := model.Ref{ID: "campo-2", Struttura: &model.Ref{ID: "venue-b"}}

	bookings := []model.Booking{
		{Status: "confirmed", Date: "2026-08-10", User: model.Ref{ID: "user-1"}, Campo: campoA},
		{Status: "confirmed", Date: "2026-08-02", User: model.Ref{ID: "user-1"}, Campo: campoA},
		// Same user, different venue: a separate first-visit scope.
		{Status: "confirmed", Date: "2026-08-20", User: model.Ref{ID: "user-1"}, Campo: campoB},
		{Status: "pending", Date: "2026-08-01", User: model.Ref{ID: "user-2"}, Campo: campoA},
		{Status: "confirmed", Date: "bad-date", User: model.Ref{ID: "user-3"}, Campo: campoA},
	}

	first := engine.FirstConfirmedDates(bookings, time.UTC)

	assert.Len(t, first, 2)
	assert.Equal(t, time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), first["venue-a::user-1"])
	assert.Equal(t, time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), first["venue-b::user-1"])
}

func TestNewClients_WeekScenario(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	windows := engine.BuildWindows(now)

	campo := model.Ref{ID: "campo-1", Struttura: &model.Ref{ID: "venue-a"}}

	// First confirmed booking on day 1 of the window, second on day 5:
	// the user is new exactly once and unique exactly once.
	bookings := []model.Booking{
		{Status: "confirmed", Date: "2026-08-23", User: model.Ref{ID: "user-1"}, Campo: campo},
		{Status: "confirmed", Date: "2026-08-27", User: model.Ref{ID: "user-1"}, Campo: campo},
	}

	first := engine.FirstConfirmedDates(bookings, time.UTC)

	assert.Equal(t, 1, engine.NewClients(first, windows.Week))
	assert.Equal(t, 1, engine.UniqueClients(bookings))
}

func TestNewClients_ReturningCustomerOutsideWindow(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	windows := engine.BuildWindows(now)

	campo := model.Ref{ID: "campo-1", Struttura: &model.Ref{ID: "venue-a"}}

	bookings := []model.Booking{
		{Status: "confirmed", Date: "2026-05-01", User: model.Ref{ID: "user-1"}, Campo: campo},
		{Status: "confirmed", Date: "2026-08-27", User: model.Ref{ID: "user-1"}, Campo: campo},
	}

	first := engine.FirstConfirmedDates(bookings, time.UTC)

	assert.Equal(t, 0, engine.NewClients(first, windows.Week))
}
