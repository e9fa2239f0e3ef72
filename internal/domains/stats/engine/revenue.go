package engine

import (
	"math"
	"strings"

	"arena/internal/domains/stats/model"
)

// RevenueTotals is the single revenue aggregate: gross earnings of
// non-cancelled bookings, refunded amounts, and their difference.
type RevenueTotals struct {
	Lorda    float64 `json:"revenueLorda"`
	Rimborsi float64 `json:"rimborsi"`
	Netta    float64 `json:"revenueNetta"`
}

// BookingAmount resolves the revenue basis of a booking: owner earnings
// when present, price otherwise, zero when neither resolves. Negative or
// non-finite values degrade to zero.
func BookingAmount(b model.Booking) float64 {
	amount := 0.0

	switch {
	case b.OwnerEarnings != nil:
		amount = *b.OwnerEarnings
	case b.Price != nil:
		amount = *b.Price
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0
	}

	return amount
}

// IsRefunded classifies a booking as carrying a refund event. Any of the
// signals counts: a cancelled status, a refunded or partially refunded
// payment entry, a refund timestamp, or the presence of a refund amount
// field even when its value is zero.
func IsRefunded(b model.Booking) bool {
	if b.IsCancelled() {
		return true
	}

	for _, payment := range b.Payments {
		status := strings.ToLower(strings.TrimSpace(payment.Status))
		if status == model.PaymentStatusRefunded || status == model.PaymentStatusPartialRefunded {
			return true
		}
	}

	if b.RefundedAt != "" {
		return true
	}

	return b.RefundAmount != nil
}

// RefundedAmount resolves how much money a refunded booking returned. An
// explicit amount is clamped to zero; a refund with no explicit amount is
// treated as a full refund of the booking amount.
func RefundedAmount(b model.Booking) float64 {
	if b.RefundAmount != nil && !math.IsNaN(*b.RefundAmount) && !math.IsInf(*b.RefundAmount, 0) {
		return math.Max(0, *b.RefundAmount)
	}

	return BookingAmount(b)
}

// AggregateRevenue folds a booking subset into gross, refund and net
// figures in a single pass. Cancelled bookings contribute nothing to
// gross, their economic effect lives entirely in the refund bucket, while
// refunds accumulate for every refunded booking regardless of
// cancellation so partial refunds on live bookings are represented.
func AggregateRevenue(bookings []model.Booking) RevenueTotals {
	totals := RevenueTotals{}

	for _, booking := range bookings {
		if !booking.IsCancelled() {
			totals.Lorda += BookingAmount(booking)
		}

		if IsRefunded(booking) {
			totals.Rimborsi += RefundedAmount(booking)
		}
	}

	totals.Netta = totals.Lorda - totals.Rimborsi

	return totals
}
