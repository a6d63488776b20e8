package pricing

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

// TaxRate is the VAT applied to rental charges.
var TaxRate = decimal.RequireFromString("0.15")

// Service orchestrates booking and extension quotes: base cost, discount,
// offers, tax and delivery. All calculations are pure and synchronous
// over immutable inputs, so concurrent calls need no coordination.
type Service struct {
	offers *OfferEngine
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	return &Service{
		offers: NewOfferEngine(logger),
		logger: logger,
	}
}

func (s *Service) Offers() *OfferEngine { return s.offers }

// BaseCost computes the per-unit rental cost with the daily fallback for
// missing weekly/monthly rates.
func (s *Service) BaseCost(car PriceInfo, unit Unit, count int) (Money, error) {
	if count <= 0 {
		return Money{}, errs.Mark(errs.Newf("count must be positive, got %d", count), errs.ErrInvalidInput)
	}
	rate, err := car.RateFor(unit)
	if err != nil {
		return Money{}, err
	}
	return rate.MultiplyInt(count), nil
}

// ApplyDiscount validates the percent range before delegating to Money.
func (s *Service) ApplyDiscount(price Money, percent decimal.Decimal) (Money, error) {
	if err := validateDiscountPercent(percent); err != nil {
		return Money{}, err
	}
	return price.ApplyDiscount(percent), nil
}

// Taxes computes the 15% tax amount on a taxable base.
func (s *Service) Taxes(taxable Money) Money {
	return taxable.CalculateTax(TaxRate)
}

// BookingInput is the transient bundle for a booking quote, constructed
// per pricing request and discarded.
type BookingInput struct {
	Car             PriceInfo
	Unit            Unit
	Count           int
	DiscountPercent decimal.Decimal
	DeliveryFee     Money
	Offers          []OfferInput
	Tiers           TierRates
	IsPackage       bool
	PackageMonths   int
}

// TotalBookingCost computes the full booking breakdown:
//
//  1. base cost (package table or per-unit), discounted when requested
//  2. offers priced through the offer engine, skipping failures
//  3. taxes = 15% of the base cost only, never offers or delivery
//  4. total = base + taxes + delivery + offers
func (s *Service) TotalBookingCost(in BookingInput) (*Breakdown, error) {
	currency := in.Car.Currency()

	var base Money
	var err error
	if in.IsPackage && in.PackageMonths > 0 {
		base, err = in.Car.PackagePrice(in.PackageMonths)
	} else {
		base, err = s.BaseCost(in.Car, in.Unit, in.Count)
	}
	if err != nil {
		return nil, err
	}

	if in.DiscountPercent.IsPositive() {
		base, err = s.ApplyDiscount(base, in.DiscountPercent)
		if err != nil {
			return nil, err
		}
	}

	offersTotal, lines := s.offers.PriceBatch(in.Offers, OfferContext{
		Car:             in.Car,
		Unit:            in.Unit,
		Count:           in.Count,
		Currency:        currency,
		HasDiscount:     in.DiscountPercent.IsPositive(),
		DiscountPercent: in.DiscountPercent,
		Tiers:           in.Tiers,
	})

	taxes := s.Taxes(base)

	delivery := in.DeliveryFee
	if delivery.Currency() != currency {
		delivery = NewMoney(delivery.Amount(), currency)
	}

	subtotal, err := base.Add(offersTotal)
	if err != nil {
		return nil, err
	}
	total, err := sumMoney(base, taxes, delivery, offersTotal)
	if err != nil {
		return nil, err
	}

	return &Breakdown{
		BaseCost:    base,
		OffersTotal: offersTotal,
		OfferLines:  lines,
		Subtotal:    subtotal,
		Taxes:       taxes,
		DeliveryFee: delivery,
		TotalCost:   total,
		Currency:    currency,
	}, nil
}

// ContractTerms is the slice of a contract the extension calculator
// needs: the priced period, its unit, and what it cost.
type ContractTerms struct {
	Dates       DateRange
	Unit        Unit
	BookingCost Money
}

// ExtensionCost prices lengthening a contract to newEnd by pro-rating the
// original booking cost. Extensions shorter than a week (or month) fall
// back to the daily-prorated rate. The returned amount includes 15% tax.
func (s *Service) ExtensionCost(terms ContractTerms, newEnd time.Time) (Money, error) {
	if !newEnd.After(terms.Dates.End()) {
		return Money{}, errs.Mark(
			errs.New("extension date must be after current end date"),
			errs.ErrInvalidInput,
		)
	}

	extensionDays := daysBetween(terms.Dates.End(), newEnd)
	days := decimal.NewFromInt(int64(extensionDays))
	durationDays := decimal.NewFromInt(int64(terms.Dates.DurationDays()))
	if durationDays.IsZero() {
		return Money{}, errs.Mark(errs.New("contract duration is zero days"), errs.ErrInvalidInput)
	}

	var cost Money
	switch terms.Unit {
	case UnitDay:
		dailyRate := terms.BookingCost.Amount().Div(durationDays)
		cost = NewMoney(dailyRate.Mul(days), terms.BookingCost.Currency())
	case UnitWeek:
		if extensionDays < DaysPerWeek {
			dailyRate := terms.BookingCost.Amount().Div(durationDays)
			cost = NewMoney(dailyRate.Mul(days), terms.BookingCost.Currency())
		} else {
			weeklyRate := terms.BookingCost.Amount().Div(terms.Dates.DurationWeeks())
			weeks := days.Div(decimal.NewFromInt(DaysPerWeek))
			cost = NewMoney(weeklyRate.Mul(weeks), terms.BookingCost.Currency())
		}
	case UnitMonth:
		if extensionDays < DaysPerMonth {
			dailyRate := terms.BookingCost.Amount().Div(durationDays)
			cost = NewMoney(dailyRate.Mul(days), terms.BookingCost.Currency())
		} else {
			monthlyRate := terms.BookingCost.Amount().Div(terms.Dates.DurationMonths())
			months := days.Div(decimal.NewFromInt(DaysPerMonth))
			cost = NewMoney(monthlyRate.Mul(months), terms.BookingCost.Currency())
		}
	default:
		return Money{}, errs.Mark(errs.Newf("invalid booking unit: %q", terms.Unit), errs.ErrInvalidInput)
	}

	return cost.WithTax(TaxRate), nil
}

// ExtensionInput is the transient bundle for a full extension quote.
// CustomRate, when set, replaces the resolved car rate and must be
// positive.
type ExtensionInput struct {
	Car             PriceInfo
	Unit            Unit
	Count           int
	Currency        string
	DiscountPercent decimal.Decimal
	CustomRate      *decimal.Decimal
	Offers          []OfferInput
	Tiers           TierRates
	CurrentEnd      *time.Time
	NewEnd          *time.Time
}

// TotalExtensionCost combines the extension base (resolved or custom
// rate × count), offers priced with the extension dates, and 15% tax on
// the subtotal of both.
func (s *Service) TotalExtensionCost(in ExtensionInput) (*Breakdown, error) {
	if in.Count <= 0 {
		return nil, errs.Mark(errs.Newf("count must be positive, got %d", in.Count), errs.ErrInvalidInput)
	}

	currency := in.Currency
	if currency == "" {
		currency = in.Car.Currency()
	}

	var extension Money
	if in.CustomRate != nil {
		if !in.CustomRate.IsPositive() {
			return nil, errs.Mark(errs.New("custom rate must be positive"), errs.ErrInvalidInput)
		}
		extension = NewMoney(*in.CustomRate, currency).MultiplyInt(in.Count)
	} else {
		rate, err := ResolveCurrentPrice(in.Car, in.Unit, in.DiscountPercent.IsPositive(), in.DiscountPercent)
		if err != nil {
			return nil, err
		}
		extension = rate.MultiplyInt(in.Count)
	}

	offersTotal, lines := s.offers.PriceBatch(in.Offers, OfferContext{
		Car:             in.Car,
		Unit:            in.Unit,
		Count:           in.Count,
		Currency:        currency,
		HasDiscount:     in.DiscountPercent.IsPositive(),
		DiscountPercent: in.DiscountPercent,
		Tiers:           in.Tiers,
		CurrentEnd:      in.CurrentEnd,
		NewEnd:          in.NewEnd,
	})

	subtotal, err := extension.Add(offersTotal)
	if err != nil {
		return nil, err
	}
	taxes := s.Taxes(subtotal)
	total, err := subtotal.Add(taxes)
	if err != nil {
		return nil, err
	}

	return &Breakdown{
		BaseCost:    extension,
		OffersTotal: offersTotal,
		OfferLines:  lines,
		Subtotal:    subtotal,
		Taxes:       taxes,
		DeliveryFee: ZeroMoney(currency),
		TotalCost:   total,
		Currency:    currency,
	}, nil
}

func sumMoney(first Money, rest ...Money) (Money, error) {
	total := first
	var err error
	for _, m := range rest {
		total, err = total.Add(m)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}
