package dto

import (
	"time"

	"github.com/google/uuid"

	"arena/internal/domains/booking/model"
	"arena/shared"
	gDto "arena/shared/dto"
	gModel "arena/shared/model"
	"arena/shared/timezone"
)

type CreateBookingRequest struct {
	CampoID       string          `json:"campo_id"       validate:"required"`
	UserID        string          `json:"user_id"        validate:"required"`
	Date          string          `json:"date"           validate:"required"`
	StartTime     string          `json:"start_time"     validate:"required"`
	EndTime       string          `json:"end_time"       validate:"required"`
	Duration      *float64        `json:"duration"       validate:"omitempty,gt=0"`
	Price         float64         `json:"price"          validate:"omitempty,min=0"`
	OwnerEarnings *float64        `json:"owner_earnings" validate:"omitempty,min=0"`
	Status        string          `json:"status"         validate:"omitempty,oneof=pending confirmed cancelled"`
	Payments      []model.Payment `json:"payments"       validate:"omitempty"`
}

func (c *CreateBookingRequest) ToModel(user string) (model.Booking, error) {
	bookingDate, err := time.Parse("2006-01-02", c.Date)
	if err != nil {
		return model.Booking{}, err
	}

	if _, err := time.Parse("15:04", c.StartTime); err != nil {
		return model.Booking{}, err
	}

	if _, err := time.Parse("15:04", c.EndTime); err != nil {
		return model.Booking{}, err
	}

	status := model.StatusPending
	if c.Status != "" {
		status = c.Status
	}

	return model.Booking{
		ID:            uuid.NewString(),
		CampoID:       c.CampoID,
		UserID:        c.UserID,
		Status:        status,
		BookingDate:   bookingDate,
		StartTime:     c.StartTime,
		EndTime:       c.EndTime,
		Duration:      c.Duration,
		Price:         c.Price,
		OwnerEarnings: c.OwnerEarnings,
		Payments:      c.Payments,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateBookingRequest struct {
	Status        string   `db:"status"         json:"status"         validate:"omitempty,oneof=pending confirmed cancelled"`
	StartTime     string   `db:"start_time"     json:"start_time"     validate:"omitempty"`
	EndTime       string   `db:"end_time"       json:"end_time"       validate:"omitempty"`
	Duration      *float64 `db:"duration"       json:"duration"       validate:"omitempty,gt=0"`
	Price         *float64 `db:"price"          json:"price"          validate:"omitempty,min=0"`
	OwnerEarnings *float64 `db:"owner_earnings" json:"owner_earnings" validate:"omitempty,min=0"`
}

// RefundBookingRequest records a refund event against a booking. A missing
// amount means a full refund.
type RefundBookingRequest struct {
	Amount *float64 `json:"amount" validate:"omitempty,min=0"`
	Cancel bool     `json:"cancel"`
}

type BookingResponse struct {
	ID            string          `json:"id"`
	CampoID       string          `json:"campo_id"`
	UserID        string          `json:"user_id"`
	Status        string          `json:"status"`
	Date          string          `json:"date"`
	StartTime     string          `json:"start_time"`
	EndTime       string          `json:"end_time"`
	Duration      *float64        `json:"duration,omitempty"`
	Price         float64         `json:"price"`
	OwnerEarnings *float64        `json:"owner_earnings,omitempty"`
	RefundAmount  *float64        `json:"refund_amount,omitempty"`
	RefundedAt    string          `json:"refunded_at,omitempty"`
	Payments      []model.Payment `json:"payments,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.CampoID = model.CampoID
	r.UserID = model.UserID
	r.Status = model.Status
	r.Date = model.BookingDate.Format("2006-01-02")
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Duration = model.Duration
	r.Price = model.Price
	r.OwnerEarnings = model.OwnerEarnings
	r.RefundAmount = model.RefundAmount
	r.Payments = model.Payments

	if model.RefundedAt != nil {
		r.RefundedAt = timezone.Format(*model.RefundedAt, time.RFC3339)
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
