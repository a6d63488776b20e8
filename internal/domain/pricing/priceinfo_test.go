//go:build unit

package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

func moneyPtr(t *testing.T, amount string) *pricing.Money {
	t.Helper()
	m := money(t, amount)
	return &m
}

func TestPriceInfo_RateFor(t *testing.T) {
	testCases := []struct {
		name     string
		info     pricing.PriceInfo
		unit     pricing.Unit
		expected string
	}{
		{
			name:     "daily rate verbatim",
			info:     pricing.PriceInfo{DailyRate: money(t, "100")},
			unit:     pricing.UnitDay,
			expected: "100",
		},
		{
			name:     "explicit weekly rate wins",
			info:     pricing.PriceInfo{DailyRate: money(t, "100"), WeeklyRate: moneyPtr(t, "600")},
			unit:     pricing.UnitWeek,
			expected: "600",
		},
		{
			name:     "missing weekly falls back to daily times seven",
			info:     pricing.PriceInfo{DailyRate: money(t, "100")},
			unit:     pricing.UnitWeek,
			expected: "700",
		},
		{
			name:     "zero weekly treated as missing",
			info:     pricing.PriceInfo{DailyRate: money(t, "100"), WeeklyRate: moneyPtr(t, "0")},
			unit:     pricing.UnitWeek,
			expected: "700",
		},
		{
			name:     "missing monthly falls back to daily times thirty",
			info:     pricing.PriceInfo{DailyRate: money(t, "100")},
			unit:     pricing.UnitMonth,
			expected: "3000",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rate, err := tc.info.RateFor(tc.unit)
			require.NoError(t, err)
			assert.True(t, rate.Equal(money(t, tc.expected)), "got %s", rate)
		})
	}
}

func TestPriceInfo_RateForInvalidUnit(t *testing.T) {
	info := pricing.PriceInfo{DailyRate: money(t, "100")}
	_, err := info.RateFor(pricing.Unit("Fortnight"))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestPriceInfo_PackagePrice(t *testing.T) {
	info := pricing.PriceInfo{
		DailyRate: money(t, "100"),
		Packages: []pricing.PackageRate{
			{Months: 3, Price: money(t, "2500")},
			{Months: 6, Price: money(t, "4500")},
		},
	}

	price, err := info.PackagePrice(3)
	require.NoError(t, err)
	assert.True(t, price.Equal(money(t, "2500")), "got %s", price)

	_, err = info.PackagePrice(12)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrPackageNotFound)
}

func TestResolveCurrentPrice(t *testing.T) {
	noDiscount := decimal.Zero
	ten := decimal.NewFromInt(10)

	testCases := []struct {
		name        string
		info        pricing.PriceInfo
		unit        pricing.Unit
		hasDiscount bool
		percent     decimal.Decimal
		expected    string
		wantErr     error
	}{
		{
			name:     "day uses daily rate",
			info:     pricing.PriceInfo{DailyRate: money(t, "100")},
			unit:     pricing.UnitDay,
			percent:  noDiscount,
			expected: "100",
		},
		{
			name: "booked day price wins and skips the discount",
			info: pricing.PriceInfo{
				DailyRate:      money(t, "100"),
				BookedDayPrice: moneyPtr(t, "80"),
			},
			unit:        pricing.UnitDay,
			hasDiscount: true,
			percent:     ten,
			expected:    "80",
		},
		{
			name:        "discount applied to daily rate",
			info:        pricing.PriceInfo{DailyRate: money(t, "100")},
			unit:        pricing.UnitDay,
			hasDiscount: true,
			percent:     ten,
			expected:    "90",
		},
		{
			name:    "week requires an explicit weekly rate",
			info:    pricing.PriceInfo{DailyRate: money(t, "100")},
			unit:    pricing.UnitWeek,
			percent: noDiscount,
			wantErr: errs.ErrInvalidInput,
		},
		{
			name:     "week uses the weekly rate",
			info:     pricing.PriceInfo{DailyRate: money(t, "100"), WeeklyRate: moneyPtr(t, "600")},
			unit:     pricing.UnitWeek,
			percent:  noDiscount,
			expected: "600",
		},
		{
			name:    "month requires an explicit monthly rate",
			info:    pricing.PriceInfo{DailyRate: money(t, "100")},
			unit:    pricing.UnitMonth,
			percent: noDiscount,
			wantErr: errs.ErrInvalidInput,
		},
		{
			name:        "discount over 100 percent rejected",
			info:        pricing.PriceInfo{DailyRate: money(t, "100")},
			unit:        pricing.UnitDay,
			hasDiscount: true,
			percent:     decimal.NewFromInt(101),
			wantErr:     errs.ErrInvalidInput,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			price, err := pricing.ResolveCurrentPrice(tc.info, tc.unit, tc.hasDiscount, tc.percent)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, price.Equal(money(t, tc.expected)), "got %s", price)
		})
	}
}
