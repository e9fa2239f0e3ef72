package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"arena/config"
	"arena/infras/otel/mocks"
	s3Mocks "arena/infras/s3/mocks"
	bookingMocks "arena/internal/domains/booking/mocks"
	bookingModel "arena/internal/domains/booking/model"
	campoMocks "arena/internal/domains/campo/mocks"
	campoModel "arena/internal/domains/campo/model"
	statsModel "arena/internal/domains/stats/model"
	"arena/internal/domains/stats/model/dto"
	"arena/internal/domains/stats/service"
	strutturaMocks "arena/internal/domains/struttura/mocks"
	strutturaModel "arena/internal/domains/struttura/model"
	cacheMocks "arena/shared/cache/mocks"
	"arena/shared/timezone"
)

func fixtureRows() ([]strutturaModel.Struttura, []campoModel.Campo, []bookingModel.BookingWithContext) {
	strutture := []strutturaModel.Struttura{
		{ID: "struttura-1", Name: "Centro Sportivo Nord", OwnerID: "owner-1"},
	}

	campi := []campoModel.Campo{
		{
			ID:          "campo-1",
			Name:        "Campo Centrale",
			StrutturaID: "struttura-1",
			WeeklySchedule: campoModel.WeeklySchedule{
				"monday":    {Open: "09:00", Close: "23:00"},
				"tuesday":   {Open: "09:00", Close: "23:00"},
				"wednesday": {Open: "09:00", Close: "23:00"},
				"thursday":  {Open: "09:00", Close: "23:00"},
				"friday":    {Open: "09:00", Close: "23:00"},
				"saturday":  {Open: "10:00", Close: "22:00"},
				"sunday":    {Open: "10:00", Close: "22:00"},
			},
		},
	}

	name := "Mario"
	surname := "Rossi"
	bookings := []bookingModel.BookingWithContext{
		{
			Booking: bookingModel.Booking{
				ID:          "booking-1",
				CampoID:     "campo-1",
				UserID:      "user-1",
				Status:      bookingModel.StatusConfirmed,
				BookingDate: timezone.Now().Add(-24 * time.Hour),
				StartTime:   "10:00",
				EndTime:     "11:00",
				Price:       25,
			},
			StrutturaID: "struttura-1",
			UserName:    &name,
			UserSurname: &surname,
		},
	}

	return strutture, campi, bookings
}

func TestStatsService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStrutturaRepo := strutturaMocks.NewMockStruttura(ctrl)
	mockCampoRepo := campoMocks.NewMockCampo(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockStrutturaRepo, mockCampoRepo, mockBookingRepo, cfg, mockCache, mockS3, mockOtel)

	strutture, campi, bookings := fixtureRows()

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantTotali int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, composed from storage",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockStrutturaRepo.EXPECT().
					GetByOwner(gomock.Any(), "owner-1").
					Return(strutture, nil)

				mockCampoRepo.EXPECT().
					GetByStrutture(gomock.Any(), []string{"struttura-1"}).
					Return(campi, nil)

				mockBookingRepo.EXPECT().
					GetByCampi(gomock.Any(), []string{"campo-1"}).
					Return(bookings, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:    false,
			wantTotali: 1,
		},
		{
			name: "strutture repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockStrutturaRepo.EXPECT().
					GetByOwner(gomock.Any(), "owner-1").
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "campi repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockStrutturaRepo.EXPECT().
					GetByOwner(gomock.Any(), "owner-1").
					Return(strutture, nil)

				mockCampoRepo.EXPECT().
					GetByStrutture(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "bookings repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockStrutturaRepo.EXPECT().
					GetByOwner(gomock.Any(), "owner-1").
					Return(strutture, nil)

				mockCampoRepo.EXPECT().
					GetByStrutture(gomock.Any(), gomock.Any()).
					Return(campi, nil)

				mockBookingRepo.EXPECT().
					GetByCampi(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Dashboard(context.Background(), "owner-1", 0)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)

			if tt.wantTotali > 0 {
				assert.Equal(t, tt.wantTotali, result.PrenotazioniTotali)
				assert.Equal(t, 1, result.StruttureTotali)
				assert.Equal(t, 1, result.ClientiUnici)
				assert.NotEmpty(t, result.ComputedAt)
			}
		})
	}
}

func TestStatsService_Compute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStrutturaRepo := strutturaMocks.NewMockStruttura(ctrl)
	mockCampoRepo := campoMocks.NewMockCampo(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockStrutturaRepo, mockCampoRepo, mockBookingRepo, cfg, mockCache, mockS3, mockOtel)

	price := 30.0
	req := dto.ComputeStatsRequest{
		Strutture: []statsModel.Struttura{
			{ID: statsModel.Ref{ID: "struttura-1"}, Name: "Centro Sportivo Nord"},
		},
		Campi: []statsModel.Campo{
			{
				ID:        statsModel.Ref{ID: "campo-1"},
				Name:      "Campo Centrale",
				Struttura: statsModel.Ref{ID: "struttura-1"},
			},
		},
		Prenotazioni: []statsModel.Booking{
			{
				ID:        statsModel.Ref{ID: "booking-1"},
				Status:    statsModel.StatusConfirmed,
				Date:      timezone.Now().Add(-24 * time.Hour).Format("2006-01-02"),
				StartTime: "18:00",
				EndTime:   "19:30",
				Price:     &price,
				User:      statsModel.Ref{ID: "user-1", Name: "Mario", Surname: "Rossi"},
				Campo:     statsModel.Ref{ID: "campo-1"},
				Struttura: statsModel.Ref{ID: "struttura-1"},
			},
		},
		Durata: 1.5,
	}

	result, err := svc.Compute(context.Background(), req)

	assert.NoError(t, err)
	assert.Equal(t, 1, result.StruttureTotali)
	assert.Equal(t, 1, result.PrenotazioniTotali)
	assert.Equal(t, 1, result.ClientiUnici)
	assert.Equal(t, price, result.Revenue.Totale.Lorda)
	assert.Equal(t, price, result.Revenue.Totale.Netta)
	assert.NotEmpty(t, result.ComputedAt)
}

func TestStatsService_ExportReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStrutturaRepo := strutturaMocks.NewMockStruttura(ctrl)
	mockCampoRepo := campoMocks.NewMockCampo(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "arena-reports"

	svc := service.New(mockStrutturaRepo, mockCampoRepo, mockBookingRepo, cfg, mockCache, mockS3, mockOtel)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantURL   string
	}{
		{
			name: "successful export",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), "arena-reports", "reports", gomock.Any(), "application/json", gomock.Any()).
					Return("https://cdn.example.com/reports/report.json", nil)
			},
			wantErr: false,
			wantURL: "https://cdn.example.com/reports/report.json",
		},
		{
			name: "dashboard error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockStrutturaRepo.EXPECT().
					GetByOwner(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "upload error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("upload failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.ExportReport(context.Background(), "owner-1", dto.ExportReportRequest{})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantURL, result.URL)
			assert.NotEmpty(t, result.ObjectName)
		})
	}
}
