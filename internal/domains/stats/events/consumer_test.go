package events_test

import (
	"context"
	"encoding/json"
	"testing"

	kafkaGo "github.com/segmentio/kafka-go"
	"go.uber.org/mock/gomock"

	kafkaMocks "arena/infras/kafka/mocks"
	"arena/infras/otel/mocks"
	bookingService "arena/internal/domains/booking/service"
	"arena/internal/domains/stats/events"
	statsMocks "arena/internal/domains/stats/mocks"
	"arena/shared/constant"
)

func TestConsumer_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockStats := statsMocks.NewMockStats(ctrl)
	mockOtel := mocks.NewOtel()

	consumer := events.NewConsumer(mockKafka, mockStats, mockOtel)

	payload, err := json.Marshal(bookingService.ChangeEvent{
		BookingID: "booking-1",
		CampoID:   "campo-1",
		Action:    "created",
	})
	if err != nil {
		t.Fatal(err)
	}

	mockKafka.EXPECT().
		Consume(gomock.Any(), constant.Empty, constant.KafkaTopicBookingsChanged, gomock.Any()).
		Do(func(_ context.Context, _, _ string, handler func(kafkaGo.Message)) {
			handler(kafkaGo.Message{Key: []byte("booking-1"), Value: payload})
		})

	mockStats.EXPECT().
		InvalidateDashboards(gomock.Any())

	consumer.Run(context.Background())
}

func TestConsumer_MalformedEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockStats := statsMocks.NewMockStats(ctrl)
	mockOtel := mocks.NewOtel()

	consumer := events.NewConsumer(mockKafka, mockStats, mockOtel)

	// A payload that does not decode must not trigger invalidation.
	mockKafka.EXPECT().
		Consume(gomock.Any(), constant.Empty, constant.KafkaTopicBookingsChanged, gomock.Any()).
		Do(func(_ context.Context, _, _ string, handler func(kafkaGo.Message)) {
			handler(kafkaGo.Message{Value: []byte("not-json")})
		})

	consumer.Run(context.Background())
}
