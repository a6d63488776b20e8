//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

func TestNewDateRange(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	r, err := pricing.NewDateRange(start, start.AddDate(0, 0, 14))
	require.NoError(t, err)
	assert.Equal(t, 14, r.DurationDays())

	_, err = pricing.NewDateRange(start, start.AddDate(0, 0, -1))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestDateRangeFromUnit(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name         string
		unit         pricing.Unit
		count        int
		expectedDays int
	}{
		{name: "days", unit: pricing.UnitDay, count: 5, expectedDays: 5},
		{name: "weeks", unit: pricing.UnitWeek, count: 2, expectedDays: 14},
		{name: "months", unit: pricing.UnitMonth, count: 3, expectedDays: 90},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := pricing.DateRangeFromUnit(start, tc.unit, tc.count)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedDays, r.DurationDays())
			assert.Equal(t, start, r.Start())
			assert.Equal(t, start.AddDate(0, 0, tc.expectedDays), r.End())
		})
	}

	_, err := pricing.DateRangeFromUnit(start, pricing.Unit("Fortnight"), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestDateRange_Durations(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	r, err := pricing.NewDateRange(start, start.AddDate(0, 0, 21))
	require.NoError(t, err)

	assert.Equal(t, 21, r.DurationDays())
	assert.True(t, r.DurationWeeks().Equal(decimal.NewFromInt(3)), "weeks %s", r.DurationWeeks())
	assert.True(t, r.DurationMonths().Equal(decimal.RequireFromString("0.7")), "months %s", r.DurationMonths())
}

func TestDateRange_ExtendTo(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	r, err := pricing.NewDateRange(start, start.AddDate(0, 0, 7))
	require.NoError(t, err)

	extended, err := r.ExtendTo(r.End().AddDate(0, 0, 3))
	require.NoError(t, err)
	assert.Equal(t, 10, extended.DurationDays())
	assert.Equal(t, start, extended.Start())

	_, err = r.ExtendTo(r.End())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestDateRange_ContainsAndOverlaps(t *testing.T) {
	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	r, err := pricing.NewDateRange(start, start.AddDate(0, 0, 7))
	require.NoError(t, err)

	assert.True(t, r.Contains(start.AddDate(0, 0, 3)))
	assert.True(t, r.Contains(r.End()))
	assert.False(t, r.Contains(start.AddDate(0, 0, -1)))

	other, err := pricing.NewDateRange(start.AddDate(0, 0, 5), start.AddDate(0, 0, 12))
	require.NoError(t, err)
	assert.True(t, r.Overlaps(other))

	disjoint, err := pricing.NewDateRange(start.AddDate(0, 0, 8), start.AddDate(0, 0, 12))
	require.NoError(t, err)
	assert.False(t, r.Overlaps(disjoint))
}
