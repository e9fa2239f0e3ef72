package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arena/config"
	kafkaMocks "arena/infras/kafka/mocks"
	"arena/infras/otel/mocks"
	bookingMocks "arena/internal/domains/booking/mocks"
	"arena/internal/domains/booking/model"
	"arena/internal/domains/booking/model/dto"
	"arena/internal/domains/booking/service"
	campoMocks "arena/internal/domains/campo/mocks"
	cacheMocks "arena/shared/cache/mocks"
	"arena/shared/constant"
	"arena/shared/timezone"
)

func floatPtr(value float64) *float64 {
	return &value
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCampoRepo := campoMocks.NewMockCampo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCampoRepo, cfg, mockCache, mockKafka, mockOtel)

	validReq := dto.CreateBookingRequest{
		CampoID:   "campo-1",
		UserID:    "user-1",
		Date:      "2026-08-29",
		StartTime: "10:00",
		EndTime:   "11:00",
		Price:     25,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req:  validReq,
			setupMock: func() {
				mockCampoRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), constant.KafkaTopicBookingsChanged, gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "campo does not exist",
			req:  validReq,
			setupMock: func() {
				mockCampoRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "campo check error",
			req:  validReq,
			setupMock: func() {
				mockCampoRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "invalid date format",
			req: dto.CreateBookingRequest{
				CampoID:   "campo-1",
				Date:      "29/08/2026",
				StartTime: "10:00",
				EndTime:   "11:00",
			},
			setupMock: func() {
				mockCampoRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req:  validReq,
			setupMock: func() {
				mockCampoRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Refund(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCampoRepo := campoMocks.NewMockCampo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCampoRepo, cfg, mockCache, mockKafka, mockOtel)

	booking := model.Booking{
		ID:            "booking-1",
		CampoID:       "campo-1",
		UserID:        "user-1",
		Status:        model.StatusConfirmed,
		BookingDate:   timezone.Now(),
		StartTime:     "10:00",
		EndTime:       "11:00",
		Price:         30,
		OwnerEarnings: floatPtr(27),
	}

	refundedAt := timezone.Now()
	refundedBooking := booking
	refundedBooking.RefundedAt = &refundedAt

	expectAsync := func() {
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockKafka.EXPECT().
			SendMessages(gomock.Any(), constant.KafkaTopicBookingsChanged, gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		req       dto.RefundBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "full refund uses owner earnings",
			req:  dto.RefundBookingRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, 27.0, fields[model.FieldRefundAmount])
						assert.NotContains(t, fields, model.FieldStatus)

						return nil
					})

				expectAsync()
			},
			wantErr: false,
		},
		{
			name: "partial refund with cancellation",
			req:  dto.RefundBookingRequest{Amount: floatPtr(10), Cancel: true},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, 10.0, fields[model.FieldRefundAmount])
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])

						return nil
					})

				expectAsync()
			},
			wantErr: false,
		},
		{
			name: "refund amount exceeds booking amount",
			req:  dto.RefundBookingRequest{Amount: floatPtr(50)},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)
			},
			wantErr: true,
		},
		{
			name: "already refunded",
			req:  dto.RefundBookingRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(refundedBooking, nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			req:  dto.RefundBookingRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
		{
			name: "get error",
			req:  dto.RefundBookingRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "update error",
			req:  dto.RefundBookingRequest{},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("update error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Refund(ctx, tt.req, "booking-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockCampoRepo := campoMocks.NewMockCampo(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCampoRepo, cfg, mockCache, mockKafka, mockOtel)

	booking := model.Booking{
		ID:          "booking-1",
		CampoID:     "campo-1",
		UserID:      "user-1",
		Status:      model.StatusConfirmed,
		BookingDate: timezone.Now(),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Price:       25,
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			id:   "booking-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "booking-1",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  "booking-1",
		},
		{
			name: "booking not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}
