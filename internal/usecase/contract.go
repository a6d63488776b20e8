package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/domain/booking"
	"github.com/d3coo/car-rental-backend/internal/domain/contract"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/pkg/clock"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

var ErrBookingNotReady = errs.New("booking must be accepted before a contract can be issued")

type ContractFilter struct {
	UserID string
	Status contract.Status
	Limit  int
}

type ContractRepository interface {
	FindByID(ctx context.Context, id string) (*contract.Contract, error)
	FindByBookingID(ctx context.Context, bookingID string) (*contract.Contract, error)
	List(ctx context.Context, filter ContractFilter) ([]*contract.Contract, error)
	Create(ctx context.Context, c *contract.Contract) (string, error)
	Update(ctx context.Context, c *contract.Contract) error
}

// ExtendContractInput extends a contract to NewEnd. With Count set the
// extension is re-quoted at current rates (plus offers); otherwise the
// cost is pro-rated from the original booking cost.
type ExtendContractInput struct {
	NewEnd          time.Time
	Unit            pricing.Unit
	Count           int
	DiscountPercent decimal.Decimal
	CustomRate      *decimal.Decimal
	OfferIDs        []string
	PayFromWallet   bool
}

type ContractUseCase interface {
	CreateFromBooking(ctx context.Context, bookingID string) (*contract.Contract, error)
	Get(ctx context.Context, id string) (*contract.Contract, error)
	List(ctx context.Context, filter ContractFilter) ([]*contract.Contract, error)
	Extend(ctx context.Context, id string, in ExtendContractInput) (*contract.Contract, error)
	Complete(ctx context.Context, id string) (*contract.Contract, error)
	Cancel(ctx context.Context, id, reason string) (*contract.Contract, error)
}

type contractUseCaseImpl struct {
	contracts ContractRepository
	bookings  BookingRepository
	cars      CarRepository
	wallets   WalletRepository
	quotes    PricingUseCase
	pricing   *pricing.Service
	clock     clock.Clock
}

func NewContractUseCase(
	contracts ContractRepository,
	bookings BookingRepository,
	cars CarRepository,
	wallets WalletRepository,
	quotes PricingUseCase,
	svc *pricing.Service,
	clk clock.Clock,
) ContractUseCase {
	return &contractUseCaseImpl{
		contracts: contracts,
		bookings:  bookings,
		cars:      cars,
		wallets:   wallets,
		quotes:    quotes,
		pricing:   svc,
		clock:     clk,
	}
}

// CreateFromBooking issues a contract carrying the booking's cost
// snapshot. The booking must already be accepted.
func (uc *contractUseCaseImpl) CreateFromBooking(ctx context.Context, bookingID string) (*contract.Contract, error) {
	b, err := uc.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	if b.Status != booking.StatusAccepted {
		return nil, errs.Mark(ErrBookingNotReady, errs.ErrBusinessRuleViolation)
	}

	if existing, err := uc.contracts.FindByBookingID(ctx, bookingID); err == nil && existing != nil {
		return existing, nil
	} else if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	now := uc.clock.Now()
	c := &contract.Contract{
		OrderID:        b.OrderID,
		ContractNumber: newContractNumber(now),
		BookingID:      bookingID,
		UserID:         b.UserID,
		CarID:          b.CarID,
		Dates:          b.Dates,
		Unit:           b.Unit,
		Count:          b.Count,
		BookingCost:    b.BookingCost,
		Taxes:          b.Taxes,
		DeliveryFee:    b.DeliveryFee,
		OffersTotal:    b.OffersTotal,
		TotalCost:      b.TotalCost,
		Offers:         b.Offers,
		Status:         contract.StatusActive,
		PaymentStatus:  b.PaymentStatus,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	id, err := uc.contracts.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return c, nil
}

func (uc *contractUseCaseImpl) Get(ctx context.Context, id string) (*contract.Contract, error) {
	c, err := uc.contracts.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrContractNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (uc *contractUseCaseImpl) List(ctx context.Context, filter ContractFilter) ([]*contract.Contract, error) {
	return uc.contracts.List(ctx, filter)
}

func (uc *contractUseCaseImpl) Extend(ctx context.Context, id string, in ExtendContractInput) (*contract.Contract, error) {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !c.CanExtend() {
		return nil, errs.Mark(
			errs.New("contract cannot be extended in current state"),
			errs.ErrBusinessRuleViolation,
		)
	}

	unit := in.Unit
	if unit == "" {
		unit = c.Unit
	}
	count := in.Count

	var cost pricing.Money
	if count > 0 {
		quote, err := uc.quotes.QuoteExtension(ctx, ExtensionQuoteInput{
			CarID:           c.CarID,
			Unit:            unit,
			Count:           count,
			DiscountPercent: in.DiscountPercent,
			CustomRate:      in.CustomRate,
			OfferIDs:        in.OfferIDs,
			CurrentEnd:      c.Dates.End(),
			NewEnd:          in.NewEnd,
		})
		if err != nil {
			return nil, err
		}
		cost = quote.Breakdown.TotalCost
	} else {
		cost, err = uc.pricing.ExtensionCost(c.Terms(), in.NewEnd)
		if err != nil {
			return nil, err
		}
		count = extensionUnits(c.Dates.End(), in.NewEnd, unit)
	}

	now := uc.clock.Now()
	if err := c.Extend(in.NewEnd, cost, unit, count, now); err != nil {
		return nil, err
	}

	if in.PayFromWallet {
		if _, err := uc.wallets.Debit(ctx, WalletMovement{
			UserID:            c.UserID,
			Amount:            cost,
			Reason:            "contract extension payment",
			AdminUserID:       "system",
			RelatedContractID: c.ID,
		}); err != nil {
			return nil, err
		}
	}

	if err := uc.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *contractUseCaseImpl) Complete(ctx context.Context, id string) (*contract.Contract, error) {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Complete(uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.releaseCar(ctx, c.CarID); err != nil {
		return nil, err
	}
	if err := uc.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *contractUseCaseImpl) Cancel(ctx context.Context, id, reason string) (*contract.Contract, error) {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.Cancel(reason, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.releaseCar(ctx, c.CarID); err != nil {
		return nil, err
	}
	if err := uc.contracts.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *contractUseCaseImpl) releaseCar(ctx context.Context, carID string) error {
	c, err := uc.cars.FindByID(ctx, carID)
	if err != nil {
		return err
	}
	if err := c.MarkAvailable(uc.clock.Now()); err != nil {
		return err
	}
	return uc.cars.Update(ctx, c)
}

// extensionUnits counts whole booking units between the current and new
// end dates, rounding up so a partial unit still counts as one.
func extensionUnits(currentEnd, newEnd time.Time, unit pricing.Unit) int {
	days := int(newEnd.Sub(currentEnd).Hours() / 24)
	if days < 1 {
		days = 1
	}
	per, err := pricing.TotalDays(unit, 1)
	if err != nil || per <= 0 {
		per = 1
	}
	return (days + per - 1) / per
}

func newContractNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return "CT-" + now.Format("20060102") + "-" + suffix
}
