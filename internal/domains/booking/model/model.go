package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"arena/shared/model"
)

const (
	TableName  = "prenotazioni"
	EntityName = "booking"

	FieldID            = "id"
	FieldCampoID       = "campo_id"
	FieldUserID        = "user_id"
	FieldStatus        = "status"
	FieldBookingDate   = "booking_date"
	FieldStartTime     = "start_time"
	FieldEndTime       = "end_time"
	FieldDuration      = "duration"
	FieldPrice         = "price"
	FieldOwnerEarnings = "owner_earnings"
	FieldRefundAmount  = "refund_amount"
	FieldRefundedAt    = "refunded_at"
	FieldPayments      = "payments"
	FieldCreatedBy     = "created_by"

	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Payment is one payment entry of a booking, stored inside a JSONB column.
type Payment struct {
	Status string  `json:"status"`
	Amount float64 `json:"amount"`
}

type PaymentList []Payment

func (p PaymentList) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}

	return json.Marshal(p)
}

func (p *PaymentList) Scan(src any) error {
	if src == nil {
		*p = nil

		return nil
	}

	switch value := src.(type) {
	case []byte:
		return json.Unmarshal(value, p)
	case string:
		return json.Unmarshal([]byte(value), p)
	default:
		return errors.New("unsupported payments source type")
	}
}

type Booking struct {
	ID            string      `db:"id"`
	CampoID       string      `db:"campo_id"`
	UserID        string      `db:"user_id"`
	Status        string      `db:"status"`
	BookingDate   time.Time   `db:"booking_date"`
	StartTime     string      `db:"start_time"`
	EndTime       string      `db:"end_time"`
	Duration      *float64    `db:"duration"`
	Price         float64     `db:"price"`
	OwnerEarnings *float64    `db:"owner_earnings"`
	RefundAmount  *float64    `db:"refund_amount"`
	RefundedAt    *time.Time  `db:"refunded_at"`
	Payments      PaymentList `db:"payments"`
	model.Metadata
}

// BookingWithContext is a booking joined with the references the stats
// snapshot needs: the venue the field belongs to and the booker's name.
type BookingWithContext struct {
	Booking
	StrutturaID string  `db:"struttura_id"`
	UserName    *string `db:"user_name"`
	UserSurname *string `db:"user_surname"`
}
