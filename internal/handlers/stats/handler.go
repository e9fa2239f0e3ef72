package stats

import (
	"net/http"

	"arena/infras/otel"
	"arena/internal/domains/stats/model/dto"
	"arena/internal/domains/stats/service"
	"arena/shared"
	"arena/shared/constant"
	"arena/shared/failure"
	"arena/shared/validator"
	"arena/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Stats
	otel    otel.Otel
}

func New(service service.Stats, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/stats", func(routerGroup chi.Router) {
		routerGroup.Get("/dashboard", handler.GetDashboard)
		routerGroup.Get("/distributions", handler.GetDistributions)
		routerGroup.Post("/compute", handler.ComputeStats)
		routerGroup.Post("/report", handler.ExportReport)
	})
}

// GetDashboard composes the dashboard for the authenticated operator.
// @Summary Get the operator dashboard
// @Description Compose revenue, occupancy, client and popularity metrics over the operator's venues.
// @Tags Stats
// @Accept json
// @Produce json
// @Param durata query number false "Slot width filter in hours (1.5 selects 90-minute slots)"
// @Success 200 {object} response.Data[dto.DashboardResponse] "Dashboard metrics"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats/dashboard [get]
// @Security BearerAuth
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	ownerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || ownerID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	durata := 0.0
	if value := shared.ConvertStringToFloat(r.URL.Query().Get("durata")); value != nil {
		durata = *value
	}

	dashboard, err := handler.service.Dashboard(ctx, ownerID, durata)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compose dashboard")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Dashboard composed successfully for user " + ownerID)

	response.WithJSON(w, http.StatusOK, dashboard)
}

// GetDistributions returns only the popularity charts of the dashboard.
// @Summary Get booking time distributions
// @Description Hour-of-day and day-of-week histograms plus the busiest slots for the operator's venues.
// @Tags Stats
// @Accept json
// @Produce json
// @Param durata query number false "Slot width filter in hours (1.5 selects 90-minute slots)"
// @Success 200 {object} response.Data[dto.DistributionsResponse] "Distribution metrics"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats/distributions [get]
// @Security BearerAuth
func (handler *Handler) GetDistributions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDistributions")
	defer scope.End()

	ownerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || ownerID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	durata := 0.0
	if value := shared.ConvertStringToFloat(r.URL.Query().Get("durata")); value != nil {
		durata = *value
	}

	dashboard, err := handler.service.Dashboard(ctx, ownerID, durata)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compose distributions")

		response.WithError(w, err)

		return
	}

	distributions := dto.DistributionsResponse{}
	distributions.FromDashboard(dashboard)

	scope.AddEvent("Distributions composed successfully for user " + ownerID)

	response.WithJSON(w, http.StatusOK, distributions)
}

// ComputeStats runs one stateless computation pass over a raw snapshot.
// @Summary Compute stats from a raw snapshot
// @Description Run the metrics engine over a caller-supplied snapshot without touching storage.
// @Tags Stats
// @Accept json
// @Produce json
// @Param request body dto.ComputeStatsRequest true "Raw snapshot"
// @Success 200 {object} response.Data[dto.DashboardResponse] "Computed metrics"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats/compute [post]
// @Security BearerAuth
func (handler *Handler) ComputeStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ComputeStats")
	defer scope.End()

	req := dto.ComputeStatsRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	stats, err := handler.service.Compute(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stats computed successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// ExportReport stores a dashboard report on object storage.
// @Summary Export a dashboard report
// @Description Compute the operator dashboard and store it as a JSON report.
// @Tags Stats
// @Accept json
// @Produce json
// @Param request body dto.ExportReportRequest false "Export options"
// @Success 201 {object} response.Data[dto.ReportResponse] "Report location"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/stats/report [post]
// @Security BearerAuth
func (handler *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ExportReport")
	defer scope.End()

	ownerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || ownerID == "" {
		scope.TraceError(nil)
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	// An empty body selects the default slot width.
	req := dto.ExportReportRequest{}
	if r.ContentLength != 0 {
		if err := validator.Validate(r.Body, &req); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to validate request body")

			response.WithError(w, err)

			return
		}
	}

	report, err := handler.service.ExportReport(ctx, ownerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to export report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Report exported successfully for user " + ownerID)

	response.WithJSON(w, http.StatusCreated, report)
}
