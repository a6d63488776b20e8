package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

// PackageRate is a fixed-price multi-month entry from a car's package
// table. Package bookings look prices up here instead of computing
// per-unit.
type PackageRate struct {
	Months int
	Price  Money
}

// PriceInfo is a car's rate plan. Only the daily rate is mandatory;
// weekly and monthly rates fall back to daily×7 / daily×30 when absent or
// zero. BookedDayPrice, when present, is a pre-discounted day rate used
// verbatim by the rate resolver.
type PriceInfo struct {
	DailyRate      Money
	BookedDayPrice *Money
	WeeklyRate     *Money
	MonthlyRate    *Money
	Packages       []PackageRate
}

func (p PriceInfo) Currency() string {
	return p.DailyRate.Currency()
}

func (p PriceInfo) Validate() error {
	if !p.DailyRate.IsPositive() {
		return errs.Mark(errs.New("daily rate must be positive"), errs.ErrInvalidInput)
	}
	if p.WeeklyRate != nil && p.WeeklyRate.IsNegative() {
		return errs.Mark(errs.New("weekly rate cannot be negative"), errs.ErrInvalidInput)
	}
	if p.MonthlyRate != nil && p.MonthlyRate.IsNegative() {
		return errs.Mark(errs.New("monthly rate cannot be negative"), errs.ErrInvalidInput)
	}
	return nil
}

// RateFor returns the per-unit rate with the daily fallback applied:
// a missing or zero weekly/monthly rate degrades to daily×7 / daily×30.
func (p PriceInfo) RateFor(unit Unit) (Money, error) {
	switch unit {
	case UnitDay:
		return p.DailyRate, nil
	case UnitWeek:
		if p.WeeklyRate != nil && !p.WeeklyRate.IsZero() {
			return *p.WeeklyRate, nil
		}
		return p.DailyRate.MultiplyInt(DaysPerWeek), nil
	case UnitMonth:
		if p.MonthlyRate != nil && !p.MonthlyRate.IsZero() {
			return *p.MonthlyRate, nil
		}
		return p.DailyRate.MultiplyInt(DaysPerMonth), nil
	default:
		return Money{}, errs.Mark(errs.Newf("invalid booking unit: %q", unit), errs.ErrInvalidInput)
	}
}

// PackagePrice looks up the fixed package table by month count.
func (p PriceInfo) PackagePrice(months int) (Money, error) {
	for _, pkg := range p.Packages {
		if pkg.Months == months {
			return pkg.Price, nil
		}
	}
	return Money{}, errs.Mark(
		errs.Newf("no package for %d months", months),
		errs.ErrPackageNotFound,
	)
}

// ResolveCurrentPrice selects the car's applicable per-unit rate for a
// booking unit, honoring the pre-discounted booked day price and applying
// the discount otherwise. The resolved price must come out positive.
func ResolveCurrentPrice(info PriceInfo, unit Unit, hasDiscount bool, discountPercent decimal.Decimal) (Money, error) {
	if err := validateDiscountPercent(discountPercent); err != nil {
		return Money{}, err
	}

	var price Money
	switch unit {
	case UnitDay:
		// Booked day price already has the discount baked in.
		if info.BookedDayPrice != nil && info.BookedDayPrice.IsPositive() {
			return *info.BookedDayPrice, nil
		}
		price = info.DailyRate
	case UnitWeek:
		if info.WeeklyRate != nil {
			price = *info.WeeklyRate
		} else {
			price = ZeroMoney(info.Currency())
		}
	case UnitMonth:
		if info.MonthlyRate != nil {
			price = *info.MonthlyRate
		} else {
			price = ZeroMoney(info.Currency())
		}
	default:
		return Money{}, errs.Mark(errs.Newf("invalid booking unit: %q", unit), errs.ErrInvalidInput)
	}

	if hasDiscount && discountPercent.IsPositive() {
		price = price.ApplyDiscount(discountPercent)
	}

	if !price.IsPositive() {
		return Money{}, errs.Mark(
			errs.Newf("no positive rate for booking unit %s", unit),
			errs.ErrInvalidInput,
		)
	}
	return price, nil
}

func validateDiscountPercent(percent decimal.Decimal) error {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return errs.Mark(
			errs.Newf("discount percent must be between 0 and 100, got %s", percent),
			errs.ErrInvalidInput,
		)
	}
	return nil
}
