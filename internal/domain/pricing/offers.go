package pricing

import (
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

var (
	insuranceShare = decimal.RequireFromString("0.20")
	unlimitedShare = decimal.RequireFromString("0.25")
)

// OfferInput is one add-on to price. UnitPrice is the offer's flat rate:
// per day for child seats, per month for document service.
type OfferInput struct {
	Name      string
	Type      OfferType
	UnitPrice Money
}

// TierRate carries an offer's alternate per-day rates for week (L2) and
// month (L3) bookings. Either tier may be absent.
type TierRate struct {
	L2 *decimal.Decimal
	L3 *decimal.Decimal
}

// TierRates maps offer names to externally sourced tier rates. It is
// passed into each pricing call; the engine keeps no cross-call state.
type TierRates map[string]TierRate

func (t TierRates) forOffer(name string) TierRate {
	if t == nil {
		return TierRate{}
	}
	return t[name]
}

// OfferContext bundles the booking facts an offer price depends on.
// CurrentEnd/NewEnd are set only when pricing a contract extension.
type OfferContext struct {
	Car             PriceInfo
	Unit            Unit
	Count           int
	Currency        string
	HasDiscount     bool
	DiscountPercent decimal.Decimal
	Tiers           TierRates
	CurrentEnd      *time.Time
	NewEnd          *time.Time
}

// OfferEngine computes the price of individual offers and of offer
// batches. All methods are pure; the logger only records skipped offers.
type OfferEngine struct {
	logger *slog.Logger
}

func NewOfferEngine(logger *slog.Logger) *OfferEngine {
	return &OfferEngine{logger: logger}
}

// PriceOffer dispatches on the offer type. Unknown types fail with
// ErrUnsupportedOfferType; everything else follows its formula:
//
//	Insurance:   currentRate(unit) × count × 20%
//	UnlimitedKM: currentRate(unit) × count × 25%
//	ChildSeat:   tiered per-day rates, daily fallback
//	Documents:   per calendar month, rounded up, minimum one
func (e *OfferEngine) PriceOffer(offer OfferInput, ctx OfferContext) (Money, error) {
	if !offer.Type.IsValid() {
		return Money{}, errs.Mark(
			errs.Newf("unsupported offer type: %q", offer.Type),
			errs.ErrUnsupportedOfferType,
		)
	}

	switch offer.Type {
	case OfferInsurance:
		return e.percentageOfRate(ctx, insuranceShare)
	case OfferUnlimitedKM:
		return e.percentageOfRate(ctx, unlimitedShare)
	case OfferChildSeat:
		return e.childSeatPrice(offer, ctx)
	case OfferDocuments:
		return e.documentsPrice(offer, ctx)
	default:
		return Money{}, errs.Mark(
			errs.Newf("unsupported offer type: %q", offer.Type),
			errs.ErrUnsupportedOfferType,
		)
	}
}

// PriceBatch prices each offer and accumulates the total. A failure on
// one offer is logged and that offer skipped; the batch never aborts
// wholesale, so the caller gets a degraded rather than absent total.
func (e *OfferEngine) PriceBatch(offers []OfferInput, ctx OfferContext) (Money, []OfferLine) {
	total := ZeroMoney(ctx.Currency)
	lines := make([]OfferLine, 0, len(offers))

	for _, offer := range offers {
		cost, err := e.PriceOffer(offer, ctx)
		if err != nil {
			e.logger.Warn("skipping offer that failed to price",
				"offer", offer.Name,
				"type", string(offer.Type),
				"error", err.Error(),
			)
			continue
		}
		sum, err := total.Add(cost)
		if err != nil {
			e.logger.Warn("skipping offer priced in a different currency",
				"offer", offer.Name,
				"currency", cost.Currency(),
				"error", err.Error(),
			)
			continue
		}
		total = sum
		lines = append(lines, OfferLine{Name: offer.Name, Type: offer.Type, Cost: cost})
	}

	return total, lines
}

// percentageOfRate covers insurance and unlimited-KM: a share of the
// unit-based rental cost, not a day-expanded one.
func (e *OfferEngine) percentageOfRate(ctx OfferContext, share decimal.Decimal) (Money, error) {
	rate, err := ResolveCurrentPrice(ctx.Car, ctx.Unit, ctx.HasDiscount, ctx.DiscountPercent)
	if err != nil {
		return Money{}, err
	}
	return rate.MultiplyInt(ctx.Count).Multiply(share), nil
}

func (e *OfferEngine) childSeatPrice(offer OfferInput, ctx OfferContext) (Money, error) {
	days, err := TotalDays(ctx.Unit, ctx.Count)
	if err != nil {
		return Money{}, err
	}

	tier := ctx.Tiers.forOffer(offer.Name)

	switch ctx.Unit {
	case UnitDay:
		return offer.UnitPrice.MultiplyInt(ctx.Count), nil
	case UnitWeek:
		if tier.L2 != nil {
			return NewMoney(*tier.L2, ctx.Currency).MultiplyInt(days), nil
		}
		return offer.UnitPrice.MultiplyInt(days), nil
	case UnitMonth:
		if tier.L3 != nil {
			return NewMoney(*tier.L3, ctx.Currency).MultiplyInt(days), nil
		}
		return offer.UnitPrice.MultiplyInt(days), nil
	default:
		return Money{}, errs.Mark(errs.Newf("invalid booking unit: %q", ctx.Unit), errs.ErrInvalidInput)
	}
}

func (e *OfferEngine) documentsPrice(offer OfferInput, ctx OfferContext) (Money, error) {
	// Extension pricing: months between the current and new end dates.
	if ctx.CurrentEnd != nil && ctx.NewEnd != nil {
		months := monthsNeeded(daysBetween(*ctx.CurrentEnd, *ctx.NewEnd))
		return offer.UnitPrice.MultiplyInt(months), nil
	}

	// New bookings: month-unit bookings charge per unit, everything else
	// rounds the covered days up to whole months.
	switch ctx.Unit {
	case UnitDay, UnitWeek:
		days, err := TotalDays(ctx.Unit, ctx.Count)
		if err != nil {
			return Money{}, err
		}
		return offer.UnitPrice.MultiplyInt(monthsNeeded(days)), nil
	case UnitMonth:
		return offer.UnitPrice.MultiplyInt(ctx.Count), nil
	default:
		return Money{}, errs.Mark(errs.Newf("invalid booking unit: %q", ctx.Unit), errs.ErrInvalidInput)
	}
}

// monthsNeeded rounds days up to 30-day months with a one-month floor.
func monthsNeeded(days int) int {
	months := (days + DaysPerMonth - 1) / DaysPerMonth
	if months < 1 {
		return 1
	}
	return months
}
