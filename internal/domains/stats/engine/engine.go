// Package engine derives dashboard metrics for a venue operator from an
// in-memory snapshot of bookings, venues and fields. Every computation is
// pure and single-pass over immutable inputs: the engine performs no I/O,
// holds no state between calls and never fails on malformed records, it
// degrades them to safe defaults and keeps going.
package engine

import (
	"time"

	"arena/internal/domains/stats/model"
)

// Tracer is an optional observability hook. The engine invokes it at
// composition milestones but never depends on it being set.
type Tracer func(event string, fields map[string]any)

// Snapshot is the immutable input of one computation pass.
type Snapshot struct {
	Bookings  []model.Booking
	Strutture []model.Struttura
	Campi     []model.Campo
}

// Params drives a computation pass.
type Params struct {
	// Now is the reference instant the rolling windows anchor to.
	Now time.Time

	// DurationFilter selects the slot width of the popularity ranking:
	// 1.5 selects 90-minute slots, anything else selects hourly slots.
	DurationFilter float64

	// Trace, when set, receives composition milestones.
	Trace Tracer
}

// PeriodStats is the per-window nested figure consumed by the dashboard.
type PeriodStats struct {
	Prenotazioni     int `json:"prenotazioni"`
	TassoOccupazione int `json:"tassoOccupazione"`
	ClientiUnici     int `json:"clientiUnici"`
	ClientiNuovi     int `json:"clientiNuovi"`
}

// RevenueBreakdown carries the revenue aggregate per rolling window.
type RevenueBreakdown struct {
	Oggi      RevenueTotals `json:"oggi"`
	Settimana RevenueTotals `json:"settimana"`
	Mese      RevenueTotals `json:"mese"`
	Totale    RevenueTotals `json:"totale"`
}

// BusinessPeriodStats groups the nested per-window figures.
type BusinessPeriodStats struct {
	Oggi      PeriodStats `json:"oggi"`
	Settimana PeriodStats `json:"settimana"`
	Mese      PeriodStats `json:"mese"`
}

// Stats is the composed result of one computation pass.
type Stats struct {
	StruttureTotali    int `json:"struttureTotali"`
	PrenotazioniTotali int `json:"prenotazioniTotali"`

	Revenue RevenueBreakdown `json:"revenue"`

	// TassoOccupazione is the rolling-month occupancy including the
	// still-accruing current month.
	TassoOccupazione int `json:"tassoOccupazione"`

	// TassoOccupazioneMensile is the trailing figure restricted to
	// concluded bookings, strictly before today and after one month ago.
	// It can disagree with the rolling figure on purpose; both are
	// reported side by side.
	TassoOccupazioneMensile int `json:"tassoOccupazioneMensile"`

	ClientiUnici int `json:"clientiUnici"`

	BusinessPeriodStats BusinessPeriodStats `json:"businessPeriodStats"`

	OrePopolari    [24]int   `json:"orePopolari"`
	GiorniPopolari [7]int    `json:"giorniPopolari"`
	GiorniLabels   [7]string `json:"giorniLabels"`
	SlotPopolari   []Slot    `json:"slotPopolari"`
}

// Compute runs one full derivation pass over the snapshot. It is safe to
// call concurrently on independent snapshots and yields identical output
// for identical input.
func Compute(snapshot Snapshot, params Params) Stats {
	loc := params.Now.Location()
	windows := BuildWindows(params.Now)

	trace := params.Trace
	if trace == nil {
		trace = func(string, map[string]any) {}
	}

	venueIDs := make(map[string]struct{}, len(snapshot.Strutture))
	for _, struttura := range snapshot.Strutture {
		if !struttura.ID.Empty() {
			venueIDs[struttura.ID.ID] = struct{}{}
		}
	}

	oggi := filterByWindow(snapshot.Bookings, windows.Oggi, loc)
	settimana := filterByWindow(snapshot.Bookings, windows.Week, loc)
	mese := filterByWindow(snapshot.Bookings, windows.Month, loc)

	trace("windows.partitioned", map[string]any{
		"oggi":      len(oggi),
		"settimana": len(settimana),
		"mese":      len(mese),
	})

	weeklyAvailable := AvailableWeeklyHours(snapshot.Campi, venueIDs)
	dailyAvailable := weeklyAvailable / 7
	monthlyAvailable := weeklyAvailable * WeeksPerMonth

	first := FirstConfirmedDates(snapshot.Bookings, loc)

	periodFor := func(subset []model.Booking, window DateRange, available float64) PeriodStats {
		return PeriodStats{
			Prenotazioni:     len(subset),
			TassoOccupazione: Occupancy(BookedHours(subset, window, loc), available),
			ClientiUnici:     UniqueClients(subset),
			ClientiNuovi:     NewClients(first, window),
		}
	}

	stats := Stats{
		StruttureTotali:    len(snapshot.Strutture),
		PrenotazioniTotali: len(snapshot.Bookings),
		Revenue: RevenueBreakdown{
			Oggi:      AggregateRevenue(oggi),
			Settimana: AggregateRevenue(settimana),
			Mese:      AggregateRevenue(mese),
			Totale:    AggregateRevenue(snapshot.Bookings),
		},
		TassoOccupazione: Occupancy(
			BookedHours(snapshot.Bookings, windows.Month, loc),
			monthlyAvailable,
		),
		TassoOccupazioneMensile: Occupancy(
			TrailingMonthBookedHours(snapshot.Bookings, windows.Today, loc),
			monthlyAvailable,
		),
		ClientiUnici: UniqueClients(snapshot.Bookings),
		BusinessPeriodStats: BusinessPeriodStats{
			Oggi:      periodFor(oggi, windows.Oggi, dailyAvailable),
			Settimana: periodFor(settimana, windows.Week, weeklyAvailable),
			Mese:      periodFor(mese, windows.Month, monthlyAvailable),
		},
		OrePopolari:    HourlyHistogram(snapshot.Bookings),
		GiorniPopolari: WeeklyHistogram(snapshot.Bookings, loc),
		GiorniLabels:   WeekdayLabels,
		SlotPopolari:   SlotPopularity(snapshot.Bookings, SlotSizeForFilter(params.DurationFilter)),
	}

	trace("stats.composed", map[string]any{
		"strutture":    stats.StruttureTotali,
		"prenotazioni": stats.PrenotazioniTotali,
	})

	return stats
}

func filterByWindow(bookings []model.Booking, window DateRange, loc *time.Location) []model.Booking {
	filtered := make([]model.Booking, 0, len(bookings))

	for _, booking := range bookings {
		date, ok := ParseBookingDate(booking.Date, loc)
		if !ok || !window.Contains(date) {
			continue
		}

		filtered = append(filtered, booking)
	}

	return filtered
}
