//go:build unit

package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3coo/car-rental-backend/internal/domain/booking"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

func pendingBooking(t *testing.T) *booking.Booking {
	t.Helper()
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	dates, err := pricing.NewDateRange(start, start.AddDate(0, 0, 7))
	require.NoError(t, err)

	cost, err := pricing.NewMoneyFromString("700", "SAR")
	require.NoError(t, err)
	total, err := pricing.NewMoneyFromString("805", "SAR")
	require.NoError(t, err)

	return &booking.Booking{
		ID:            "bk-1",
		OrderID:       "order-1",
		BookingNumber: "BK-20260201-ABCD1234",
		UserID:        "user-1",
		CarID:         "car-1",
		Dates:         dates,
		Unit:          pricing.UnitWeek,
		Count:         1,
		BookingCost:   cost,
		TotalCost:     total,
		Status:        booking.StatusPending,
		PaymentStatus: booking.PaymentPending,
	}
}

func TestBooking_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(b *booking.Booking)
		valid  bool
	}{
		{name: "complete booking", mutate: func(b *booking.Booking) {}, valid: true},
		{name: "missing order id", mutate: func(b *booking.Booking) { b.OrderID = " " }},
		{name: "missing booking number", mutate: func(b *booking.Booking) { b.BookingNumber = "" }},
		{name: "missing user", mutate: func(b *booking.Booking) { b.UserID = "" }},
		{name: "missing car", mutate: func(b *booking.Booking) { b.CarID = "" }},
		{name: "zero count", mutate: func(b *booking.Booking) { b.Count = 0 }},
		{name: "invalid unit", mutate: func(b *booking.Booking) { b.Unit = "Fortnight" }},
		{
			name: "package booking without months",
			mutate: func(b *booking.Booking) {
				b.IsPackageBooking = true
				b.PackageMonths = 0
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := pendingBooking(t)
			tc.mutate(b)
			err := b.Validate()
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrDomainValidationFailed)
		})
	}
}

func TestBooking_Accept(t *testing.T) {
	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)

	b := pendingBooking(t)
	require.NoError(t, b.Accept(now))
	assert.Equal(t, booking.StatusAccepted, b.Status)
	require.NotNil(t, b.AcceptedAt)
	assert.Equal(t, now, *b.AcceptedAt)

	err := b.Accept(now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
}

func TestBooking_Deny(t *testing.T) {
	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)

	b := pendingBooking(t)
	err := b.Deny("  ", now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	require.NoError(t, b.Deny("car unavailable", now))
	assert.Equal(t, booking.StatusDenied, b.Status)
	assert.Equal(t, "car unavailable", b.DeniedReason)

	err = b.Deny("again", now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
}

func TestBooking_Cancel(t *testing.T) {
	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		status  booking.Status
		allowed bool
	}{
		{name: "pending", status: booking.StatusPending, allowed: true},
		{name: "confirmed", status: booking.StatusConfirmed, allowed: true},
		{name: "accepted", status: booking.StatusAccepted, allowed: true},
		{name: "denied", status: booking.StatusDenied},
		{name: "completed", status: booking.StatusCompleted},
		{name: "already cancelled", status: booking.StatusCancelled},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			b := pendingBooking(t)
			b.Status = tc.status
			err := b.Cancel("changed plans", now)
			if !tc.allowed {
				require.Error(t, err)
				assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, booking.StatusCancelled, b.Status)
			assert.Equal(t, "changed plans", b.CancelReason)
			require.NotNil(t, b.CancelledAt)
		})
	}
}

func TestBooking_UpdateDates(t *testing.T) {
	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)

	b := pendingBooking(t)
	newDates, err := pricing.NewDateRange(b.Dates.Start(), b.Dates.Start().AddDate(0, 0, 14))
	require.NoError(t, err)

	require.NoError(t, b.UpdateDates(newDates, now))
	assert.Equal(t, 14, b.Dates.DurationDays())

	require.NoError(t, b.Accept(now))
	err = b.UpdateDates(newDates, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
}

func TestBooking_ReplaceCar(t *testing.T) {
	now := time.Date(2026, 2, 2, 12, 0, 0, 0, time.UTC)

	b := pendingBooking(t)
	cost, err := pricing.NewMoneyFromString("600", "SAR")
	require.NoError(t, err)
	total, err := pricing.NewMoneyFromString("690", "SAR")
	require.NoError(t, err)

	require.NoError(t, b.ReplaceCar("car-2", cost, total, now))
	assert.Equal(t, "car-2", b.CarID)
	assert.True(t, b.BookingCost.Equal(cost))
	assert.True(t, b.TotalCost.Equal(total))

	err = b.ReplaceCar("", cost, total, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	b.Status = booking.StatusCompleted
	err = b.ReplaceCar("car-3", cost, total, now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
}
