package dto

import (
	"time"

	"arena/internal/domains/stats/engine"
	"arena/internal/domains/stats/model"
	"arena/shared/timezone"
)

// DashboardResponse is the composed dashboard payload for one operator.
type DashboardResponse struct {
	engine.Stats
	ComputedAt string `json:"computedAt"`
}

func (r *DashboardResponse) FromStats(stats engine.Stats, computedAt time.Time) {
	r.Stats = stats
	r.ComputedAt = timezone.Format(computedAt, time.RFC3339)
}

// ComputeStatsRequest carries a raw snapshot for a stateless computation
// pass. The record slices tolerate upstream shape drift through the model's
// lenient decoding, so no validate tags beyond presence make sense here.
type ComputeStatsRequest struct {
	Prenotazioni []model.Booking   `json:"prenotazioni"`
	Strutture    []model.Struttura `json:"strutture"`
	Campi        []model.Campo     `json:"campi"`
	Durata       float64           `json:"durata" validate:"omitempty,min=0"`
}

func (r *ComputeStatsRequest) ToSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Bookings:  r.Prenotazioni,
		Strutture: r.Strutture,
		Campi:     r.Campi,
	}
}

// DistributionsResponse is the temporal-distribution slice of the dashboard
// for clients that only render the popularity charts.
type DistributionsResponse struct {
	OrePopolari    [24]int       `json:"orePopolari"`
	GiorniPopolari [7]int        `json:"giorniPopolari"`
	GiorniLabels   [7]string     `json:"giorniLabels"`
	SlotPopolari   []engine.Slot `json:"slotPopolari"`
	ComputedAt     string        `json:"computedAt"`
}

func (r *DistributionsResponse) FromDashboard(dashboard DashboardResponse) {
	r.OrePopolari = dashboard.OrePopolari
	r.GiorniPopolari = dashboard.GiorniPopolari
	r.GiorniLabels = dashboard.GiorniLabels
	r.SlotPopolari = dashboard.SlotPopolari
	r.ComputedAt = dashboard.ComputedAt
}

// ExportReportRequest selects the slot width of the exported report.
type ExportReportRequest struct {
	Durata float64 `json:"durata" validate:"omitempty,min=0"`
}

// ReportResponse points at an exported dashboard report.
type ReportResponse struct {
	URL        string `json:"url"`
	ObjectName string `json:"object_name"`
	ComputedAt string `json:"computedAt"`
}
