package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"arena/internal/domains/stats/engine"
	"arena/internal/domains/stats/model"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestBookingAmount(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		want    float64
	}{
		{
			name:    "owner earnings preferred over price",
			booking: model.Booking{OwnerEarnings: floatPtr(18), Price: floatPtr(25)},
			want:    18,
		},
		{
			name:    "price fallback",
			booking: model.Booking{Price: floatPtr(25)},
			want:    25,
		},
		{
			name:    "owner earnings of zero still wins",
			booking: model.Booking{OwnerEarnings: floatPtr(0), Price: floatPtr(25)},
			want:    0,
		},
		{
			name:    "no revenue basis",
			booking: model.Booking{},
			want:    0,
		},
		{
			name:    "negative amount degrades to zero",
			booking: model.Booking{Price: floatPtr(-12)},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, engine.BookingAmount(tt.booking), 1e-9)
		})
	}
}

func TestIsRefunded(t *testing.T) {
	tests := []struct {
		name    string
		booking model.Booking
		want    bool
	}{
		{
			name:    "cancelled status",
			booking: model.Booking{Status: "cancelled"},
			want:    true,
		},
		{
			name:    "alternate cancellation spelling",
			booking: model.Booking{Status: "Canceled"},
			want:    true,
		},
		{
			name: "partial refund payment on a confirmed booking",
			booking: model.Booking{
				Status:   "confirmed",
				Payments: []model.Payment{{Status: "partial_refunded", Amount: 10}},
			},
			want: true,
		},
		{
			name:    "refund timestamp present",
			booking: model.Booking{Status: "confirmed", RefundedAt: "2026-08-01T10:00:00Z"},
			want:    true,
		},
		{
			name:    "refund amount present even when zero",
			booking: model.Booking{Status: "confirmed", RefundAmount: floatPtr(0)},
			want:    true,
		},
		{
			name:    "plain confirmed booking",
			booking: model.Booking{Status: "confirmed", Payments: []model.Payment{{Status: "paid", Amount: 20}}},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.IsRefunded(tt.booking))
		})
	}
}

func TestRefundedAmount(t *testing.T) {
	t.Run("explicit amount clamped at zero", func(t *testing.T) {
		booking := model.Booking{RefundAmount: floatPtr(-5), Price: floatPtr(30)}

		assert.InDelta(t, 0, engine.RefundedAmount(booking), 1e-9)
	})

	t.Run("missing amount means full refund", func(t *testing.T) {
		booking := model.Booking{Status: "cancelled", Price: floatPtr(30)}

		assert.InDelta(t, 30, engine.RefundedAmount(booking), 1e-9)
	})
}

func TestAggregateRevenue(t *testing.T) {
	bookings := []model.Booking{
		{Status: "confirmed", Price: floatPtr(40)},
		{Status: "confirmed", OwnerEarnings: floatPtr(25), Price: floatPtr(30)},
		{
			Status:   "confirmed",
			Price:    floatPtr(20),
			Payments: []model.Payment{{Status: "partial_refunded", Amount: 10}},
		},
		{Status: "cancelled", Price: floatPtr(50)},
	}

	totals := engine.AggregateRevenue(bookings)

	// Gross counts every non-cancelled booking, including the partially
	// refunded one, while refunds accumulate across cancellation states.
	assert.InDelta(t, 85, totals.Lorda, 1e-9)
	assert.InDelta(t, 70, totals.Rimborsi, 1e-9)
	assert.InDelta(t, totals.Lorda-totals.Rimborsi, totals.Netta, 1e-9)
}

func TestAggregateRevenue_PartialRefundWithExplicitAmount(t *testing.T) {
	bookings := []model.Booking{
		{
			Status:       "confirmed",
			Price:        floatPtr(20),
			RefundAmount: floatPtr(10),
			Payments:     []model.Payment{{Status: "partial_refunded", Amount: 10}},
		},
	}

	totals := engine.AggregateRevenue(bookings)

	assert.InDelta(t, 20, totals.Lorda, 1e-9)
	assert.InDelta(t, 10, totals.Rimborsi, 1e-9)
	assert.InDelta(t, 10, totals.Netta, 1e-9)
}

func TestAggregateRevenue_NetIdentityAcrossSubsets(t *testing.T) {
	subsets := [][]model.Booking{
		{},
		{{Status: "cancelled", Price: floatPtr(15)}},
		{
			{Status: "confirmed", Price: floatPtr(10)},
			{Status: "cancelled", Price: floatPtr(5), RefundAmount: floatPtr(3)},
			{Status: "pending", OwnerEarnings: floatPtr(7)},
		},
	}

	for _, subset := range subsets {
		totals := engine.AggregateRevenue(subset)

		assert.InDelta(t, totals.Lorda-totals.Rimborsi, totals.Netta, 1e-9)
	}
}
