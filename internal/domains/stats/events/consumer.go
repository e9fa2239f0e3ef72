package events

import (
	"context"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"

	"arena/infras/kafka"
	"arena/infras/otel"
	bookingService "arena/internal/domains/booking/service"
	"arena/internal/domains/stats/service"
	"arena/shared/constant"
)

// Consumer drops cached dashboards whenever a booking changes, so the next
// dashboard read recomputes from fresh data.
type Consumer struct {
	kafka kafka.Client
	stats service.Stats
	otel  otel.Otel
}

func NewConsumer(kafka kafka.Client, stats service.Stats, otel otel.Otel) *Consumer {
	return &Consumer{
		kafka: kafka,
		stats: stats,
		otel:  otel,
	}
}

// Run consumes booking change events until the context is cancelled.
func (c *Consumer) Run(ctx context.Context) {
	log.Info().Str("topic", constant.KafkaTopicBookingsChanged).Msg("Starting booking change consumer")

	c.kafka.Consume(ctx, constant.Empty, constant.KafkaTopicBookingsChanged, c.handle)
}

func (c *Consumer) handle(message kafkaGo.Message) {
	ctx, scope := c.otel.NewScope(context.Background(), constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingChanged")
	defer scope.End()

	decoded, err := kafka.DecodeKafkaMessage[bookingService.ChangeEvent](message)
	if err != nil {
		log.Error().Err(err).Msg("failed to decode booking change event")

		return
	}

	event, _ := decoded.Value.(bookingService.ChangeEvent)
	log.Info().
		Str("bookingID", event.BookingID).
		Str("action", event.Action).
		Msg("booking changed, invalidating dashboards")

	c.stats.InvalidateDashboards(ctx)
}
