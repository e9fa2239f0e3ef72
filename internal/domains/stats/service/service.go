package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"arena/config"
	"arena/infras/otel"
	"arena/infras/s3"
	bookingModel "arena/internal/domains/booking/model"
	bookingRepo "arena/internal/domains/booking/repository"
	campoModel "arena/internal/domains/campo/model"
	campoRepo "arena/internal/domains/campo/repository"
	"arena/internal/domains/stats/engine"
	"arena/internal/domains/stats/model"
	"arena/internal/domains/stats/model/dto"
	strutturaModel "arena/internal/domains/struttura/model"
	strutturaRepo "arena/internal/domains/struttura/repository"
	"arena/shared"
	"arena/shared/cache"
	"arena/shared/constant"
	"arena/shared/timezone"
)

const (
	cacheDashboard = "stats:dashboard"

	reportDirectory   = "reports"
	reportContentType = "application/json"
)

type Stats interface {
	Dashboard(ctx context.Context, ownerID string, durata float64) (dto.DashboardResponse, error)
	Compute(ctx context.Context, req dto.ComputeStatsRequest) (dto.DashboardResponse, error)
	ExportReport(ctx context.Context, ownerID string, req dto.ExportReportRequest) (dto.ReportResponse, error)
	InvalidateDashboards(ctx context.Context)
}

type serviceImpl struct {
	strutturaRepo strutturaRepo.Struttura
	campoRepo     campoRepo.Campo
	bookingRepo   bookingRepo.Booking
	cfg           *config.Config
	cache         cache.RedisCache
	s3            s3.S3
	otel          otel.Otel
}

func New(
	strutturaRepo strutturaRepo.Struttura,
	campoRepo campoRepo.Campo,
	bookingRepo bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	s3 s3.S3,
	otel otel.Otel,
) Stats {
	return &serviceImpl{
		strutturaRepo: strutturaRepo,
		campoRepo:     campoRepo,
		bookingRepo:   bookingRepo,
		cfg:           cfg,
		cache:         cache,
		s3:            s3,
		otel:          otel,
	}
}

// Dashboard composes the operator dashboard from the owner's venues, their
// fields and every booking on them. Results are cached per owner and slot
// width until a booking mutation invalidates them.
func (s *serviceImpl) Dashboard(ctx context.Context, ownerID string, durata float64) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheDashboard, ownerID, strconv.FormatFloat(durata, 'f', -1, 64))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for dashboard")

		return res, nil
	}

	snapshot, err := s.loadSnapshot(ctx, ownerID)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	stats := engine.Compute(snapshot, engine.Params{
		Now:            now,
		DurationFilter: durata,
		Trace: func(event string, fields map[string]any) {
			log.Debug().Fields(fields).Str("ownerID", ownerID).Msg(event)
		},
	})

	res.FromStats(stats, now)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save dashboard to cache")
		}
	}()

	return res, nil
}

// Compute runs one stateless pass over a caller-supplied snapshot. Nothing
// is read from storage and nothing is cached.
func (s *serviceImpl) Compute(ctx context.Context, req dto.ComputeStatsRequest) (res dto.DashboardResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Compute")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()
	stats := engine.Compute(req.ToSnapshot(), engine.Params{
		Now:            now,
		DurationFilter: req.Durata,
	})

	res.FromStats(stats, now)

	return res, nil
}

// ExportReport computes the owner's dashboard and stores it as a JSON
// object on S3.
func (s *serviceImpl) ExportReport(ctx context.Context, ownerID string, req dto.ExportReportRequest) (res dto.ReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportReport")
	defer scope.End()
	defer scope.TraceIfError(err)

	dashboard, err := s.Dashboard(ctx, ownerID, req.Durata)
	if err != nil {
		return res, err
	}

	data, err := json.Marshal(dashboard)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal dashboard report")

		return res, fmt.Errorf("failed to marshal dashboard report: %w", err)
	}

	objectName := fmt.Sprintf("%s-%s.json", ownerID, timezone.Now().Format("20060102-150405"))

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, reportDirectory, objectName, reportContentType, data)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload dashboard report")

		return res, fmt.Errorf("failed to upload dashboard report: %w", err)
	}

	res.URL = url
	res.ObjectName = objectName
	res.ComputedAt = dashboard.ComputedAt

	return res, nil
}

// InvalidateDashboards drops every cached dashboard. Booking mutations are
// published as events, so the event consumer calls this rather than the
// booking service.
func (s *serviceImpl) InvalidateDashboards(ctx context.Context) {
	shared.InvalidateCaches(ctx, s.cache, cacheDashboard)
}

func (s *serviceImpl) loadSnapshot(ctx context.Context, ownerID string) (snapshot engine.Snapshot, err error) {
	strutture, err := s.strutturaRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get strutture for dashboard")

		return snapshot, fmt.Errorf("failed to get strutture for dashboard: %w", err)
	}

	strutturaIDs := make([]string, len(strutture))
	for i, struttura := range strutture {
		strutturaIDs[i] = struttura.ID
	}

	campi, err := s.campoRepo.GetByStrutture(ctx, strutturaIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get campi for dashboard")

		return snapshot, fmt.Errorf("failed to get campi for dashboard: %w", err)
	}

	campoIDs := make([]string, len(campi))
	for i, campo := range campi {
		campoIDs[i] = campo.ID
	}

	bookings, err := s.bookingRepo.GetByCampi(ctx, campoIDs)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings for dashboard")

		return snapshot, fmt.Errorf("failed to get bookings for dashboard: %w", err)
	}

	return buildSnapshot(strutture, campi, bookings), nil
}

// buildSnapshot converts storage rows into the engine's canonical records.
func buildSnapshot(
	strutture []strutturaModel.Struttura,
	campi []campoModel.Campo,
	bookings []bookingModel.BookingWithContext,
) engine.Snapshot {
	snapshot := engine.Snapshot{
		Bookings:  make([]model.Booking, len(bookings)),
		Strutture: make([]model.Struttura, len(strutture)),
		Campi:     make([]model.Campo, len(campi)),
	}

	for i, struttura := range strutture {
		snapshot.Strutture[i] = model.Struttura{
			ID:   model.Ref{ID: struttura.ID},
			Name: struttura.Name,
		}
	}

	for i, campo := range campi {
		schedule := make(map[string]model.DaySchedule, len(campo.WeeklySchedule))
		for day, entry := range campo.WeeklySchedule {
			schedule[day] = model.DaySchedule{
				Open:    entry.Open,
				Close:   entry.Close,
				Enabled: entry.Enabled,
				Closed:  entry.Closed,
			}
		}

		snapshot.Campi[i] = model.Campo{
			ID:             model.Ref{ID: campo.ID},
			Name:           campo.Name,
			Struttura:      model.Ref{ID: campo.StrutturaID},
			WeeklySchedule: schedule,
		}
	}

	for i, booking := range bookings {
		record := model.Booking{
			ID:        model.Ref{ID: booking.ID},
			Status:    booking.Status,
			Date:      booking.BookingDate.Format("2006-01-02"),
			StartTime: booking.StartTime,
			EndTime:   booking.EndTime,
			Payments:  make([]model.Payment, len(booking.Payments)),
			User: model.Ref{
				ID:      booking.UserID,
				Name:    derefString(booking.UserName),
				Surname: derefString(booking.UserSurname),
			},
			Campo:         model.Ref{ID: booking.CampoID},
			Struttura:     model.Ref{ID: booking.StrutturaID},
			Price:         floatPtr(booking.Price),
			OwnerEarnings: booking.OwnerEarnings,
			RefundAmount:  booking.RefundAmount,
		}

		if booking.Duration != nil {
			record.Duration = *booking.Duration
		}

		if booking.RefundedAt != nil {
			record.RefundedAt = timezone.Format(*booking.RefundedAt, time.RFC3339)
		}

		for j, payment := range booking.Payments {
			record.Payments[j] = model.Payment{
				Status: payment.Status,
				Amount: payment.Amount,
			}
		}

		snapshot.Bookings[i] = record
	}

	return snapshot
}

func derefString(value *string) string {
	if value == nil {
		return constant.Empty
	}

	return *value
}

func floatPtr(value float64) *float64 {
	return &value
}
