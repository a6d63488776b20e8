package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

// DefaultCurrency is used when a record carries no currency code.
const DefaultCurrency = "SAR"

// Money is an immutable amount in a single currency. The amount is kept as
// an exact decimal so repeated add/multiply chains never accumulate binary
// floating point drift. Every operation returns a new value.
type Money struct {
	amount   decimal.Decimal
	currency string
}

func NewMoney(amount decimal.Decimal, currency string) Money {
	return Money{amount: amount, currency: normalizeCurrency(currency)}
}

func NewMoneyFromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.Mark(err, errs.ErrInvalidInput)
	}
	return NewMoney(d, currency), nil
}

// NewMoneyFromFloat converts amounts arriving from JSON payloads. The float
// is rendered through its shortest decimal representation, so 0.1 stays 0.1.
func NewMoneyFromFloat(amount float64, currency string) Money {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

func ZeroMoney(currency string) Money {
	return NewMoney(decimal.Zero, currency)
}

func normalizeCurrency(c string) string {
	c = strings.ToUpper(strings.TrimSpace(c))
	if c == "" {
		return DefaultCurrency
	}
	return c
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Currency() string        { return m.currency }

func (m Money) IsZero() bool     { return m.amount.IsZero() }
func (m Money) IsNegative() bool { return m.amount.IsNegative() }
func (m Money) IsPositive() bool { return m.amount.IsPositive() }

func (m Money) Equal(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errs.Mark(
			errs.Newf("cannot add %s to %s", other.currency, m.currency),
			errs.ErrCurrencyMismatch,
		)
	}
	return Money{amount: m.amount.Add(other.amount), currency: m.currency}, nil
}

func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, errs.Mark(
			errs.Newf("cannot subtract %s from %s", other.currency, m.currency),
			errs.ErrCurrencyMismatch,
		)
	}
	return Money{amount: m.amount.Sub(other.amount), currency: m.currency}, nil
}

func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor), currency: m.currency}
}

func (m Money) MultiplyInt(n int) Money {
	return m.Multiply(decimal.NewFromInt(int64(n)))
}

// ApplyDiscount returns the price reduced by percent (0-100). Range
// validation belongs to the caller; the arithmetic itself is total.
func (m Money) ApplyDiscount(percent decimal.Decimal) Money {
	factor := decimal.NewFromInt(1).Sub(percent.Div(decimal.NewFromInt(100)))
	return m.Multiply(factor)
}

// CalculateTax returns the tax amount for a fractional rate, e.g. 0.15.
func (m Money) CalculateTax(rate decimal.Decimal) Money {
	return m.Multiply(rate)
}

func (m Money) WithTax(rate decimal.Decimal) Money {
	total, _ := m.Add(m.CalculateTax(rate)) // same currency, cannot fail
	return total
}

// Float64 is for serialization at the API boundary only; internal
// arithmetic never round-trips through floats.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

func (m Money) String() string {
	return m.currency + " " + m.amount.StringFixed(2)
}
