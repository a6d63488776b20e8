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

func money(t *testing.T, amount string) pricing.Money {
	t.Helper()
	m, err := pricing.NewMoneyFromString(amount, "SAR")
	require.NoError(t, err)
	return m
}

func TestMoney_Add(t *testing.T) {
	testCases := []struct {
		name     string
		a        string
		b        string
		expected string
	}{
		{name: "whole amounts", a: "100", b: "250", expected: "350"},
		{name: "fractional amounts stay exact", a: "0.1", b: "0.2", expected: "0.3"},
		{name: "zero is neutral", a: "99.99", b: "0", expected: "99.99"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := money(t, tc.a).Add(money(t, tc.b))
			require.NoError(t, err)
			assert.True(t, sum.Equal(money(t, tc.expected)), "got %s", sum)
		})
	}
}

func TestMoney_AddCurrencyMismatch(t *testing.T) {
	sar := money(t, "100")
	usd := pricing.NewMoneyFromFloat(100, "USD")

	_, err := sar.Add(usd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCurrencyMismatch)

	_, err = sar.Subtract(usd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCurrencyMismatch)
}

func TestMoney_ApplyDiscount(t *testing.T) {
	testCases := []struct {
		name     string
		amount   string
		percent  int64
		expected string
	}{
		{name: "25 percent", amount: "200", percent: 25, expected: "150"},
		{name: "zero percent", amount: "200", percent: 0, expected: "200"},
		{name: "full discount", amount: "200", percent: 100, expected: "0"},
		{name: "fractional result stays exact", amount: "99.99", percent: 10, expected: "89.991"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := money(t, tc.amount).ApplyDiscount(decimal.NewFromInt(tc.percent))
			assert.True(t, got.Equal(money(t, tc.expected)), "got %s", got)
		})
	}
}

func TestMoney_Tax(t *testing.T) {
	base := money(t, "200")

	tax := base.CalculateTax(pricing.TaxRate)
	assert.True(t, tax.Equal(money(t, "30")), "got %s", tax)

	withTax := base.WithTax(pricing.TaxRate)
	assert.True(t, withTax.Equal(money(t, "230")), "got %s", withTax)
}

func TestMoney_MultiplyInt(t *testing.T) {
	got := money(t, "33.5").MultiplyInt(3)
	assert.True(t, got.Equal(money(t, "100.5")), "got %s", got)
}

func TestNewMoneyFromString_Invalid(t *testing.T) {
	_, err := pricing.NewMoneyFromString("not-a-number", "SAR")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}
