package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/domain/booking"
	"github.com/d3coo/car-rental-backend/internal/domain/offer"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/pkg/clock"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

var (
	ErrCarNotBookable = errs.New("car is not available for booking")
	ErrUserCannotBook = errs.New("user account cannot make bookings")
)

type BookingFilter struct {
	UserID string
	Status booking.Status
	Limit  int
}

type BookingRepository interface {
	FindByID(ctx context.Context, id string) (*booking.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]*booking.Booking, error)
	Create(ctx context.Context, b *booking.Booking) (string, error)
	Update(ctx context.Context, b *booking.Booking) error
}

type CreateBookingInput struct {
	UserID          string
	CarID           string
	StartDate       time.Time
	Unit            pricing.Unit
	Count           int
	DiscountPercent decimal.Decimal
	DeliveryFee     float64
	OfferIDs        []string
	IsPackage       bool
	PackageMonths   int
}

type BookingUseCase interface {
	Create(ctx context.Context, in CreateBookingInput) (*booking.Booking, error)
	Get(ctx context.Context, id string) (*booking.Booking, error)
	List(ctx context.Context, filter BookingFilter) ([]*booking.Booking, error)
	Accept(ctx context.Context, id string) (*booking.Booking, error)
	Deny(ctx context.Context, id, reason string) (*booking.Booking, error)
	Cancel(ctx context.Context, id, reason string) (*booking.Booking, error)
}

type bookingUseCaseImpl struct {
	bookings BookingRepository
	cars     CarRepository
	users    UserRepository
	wallets  WalletRepository
	quotes   PricingUseCase
	clock    clock.Clock
}

func NewBookingUseCase(
	bookings BookingRepository,
	cars CarRepository,
	users UserRepository,
	wallets WalletRepository,
	quotes PricingUseCase,
	clk clock.Clock,
) BookingUseCase {
	return &bookingUseCaseImpl{
		bookings: bookings,
		cars:     cars,
		users:    users,
		wallets:  wallets,
		quotes:   quotes,
		clock:    clk,
	}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, in CreateBookingInput) (*booking.Booking, error) {
	u, err := uc.users.FindByID(ctx, in.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	if !u.CanBook() {
		return nil, errs.Mark(ErrUserCannotBook, errs.ErrBusinessRuleViolation)
	}

	c, err := uc.cars.FindByID(ctx, in.CarID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCarNotFound)
		}
		return nil, err
	}
	if !c.IsAvailable() {
		return nil, errs.Mark(ErrCarNotBookable, errs.ErrBusinessRuleViolation)
	}

	quote, err := uc.quotes.QuoteBooking(ctx, BookingQuoteInput{
		CarID:           in.CarID,
		Unit:            in.Unit,
		Count:           in.Count,
		DiscountPercent: in.DiscountPercent,
		DeliveryFee:     in.DeliveryFee,
		OfferIDs:        in.OfferIDs,
		IsPackage:       in.IsPackage,
		PackageMonths:   in.PackageMonths,
	})
	if err != nil {
		return nil, err
	}

	count := in.Count
	unit := in.Unit
	if in.IsPackage && in.PackageMonths > 0 {
		unit = pricing.UnitMonth
		count = in.PackageMonths
	}
	dates, err := pricing.DateRangeFromUnit(in.StartDate, unit, count)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()
	bd := quote.Breakdown
	b := &booking.Booking{
		OrderID:          uuid.NewString(),
		BookingNumber:    newBookingNumber(now),
		UserID:           in.UserID,
		CarID:            in.CarID,
		Dates:            dates,
		Unit:             unit,
		Count:            count,
		BookingCost:      bd.BaseCost,
		Taxes:            bd.Taxes,
		DeliveryFee:      bd.DeliveryFee,
		OffersTotal:      bd.OffersTotal,
		TotalCost:        bd.TotalCost,
		Offers:           snapshotOffers(bd.OfferLines, quote.Offers),
		IsPackageBooking: in.IsPackage,
		PackageMonths:    in.PackageMonths,
		Status:           booking.StatusPending,
		PaymentStatus:    booking.PaymentPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}

	id, err := uc.bookings.Create(ctx, b)
	if err != nil {
		return nil, err
	}
	b.ID = id
	return b, nil
}

func (uc *bookingUseCaseImpl) Get(ctx context.Context, id string) (*booking.Booking, error) {
	b, err := uc.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) List(ctx context.Context, filter BookingFilter) ([]*booking.Booking, error) {
	return uc.bookings.List(ctx, filter)
}

func (uc *bookingUseCaseImpl) Accept(ctx context.Context, id string) (*booking.Booking, error) {
	b, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := uc.clock.Now()
	if err := b.Accept(now); err != nil {
		return nil, err
	}

	c, err := uc.cars.FindByID(ctx, b.CarID)
	if err != nil {
		return nil, err
	}
	if err := c.MarkRented(now); err != nil {
		return nil, err
	}
	if err := uc.cars.Update(ctx, c); err != nil {
		return nil, err
	}

	if err := uc.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) Deny(ctx context.Context, id, reason string) (*booking.Booking, error) {
	b, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := b.Deny(reason, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Cancel releases the car and, when the booking was already paid, refunds
// the full total to the customer's wallet.
func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, id, reason string) (*booking.Booking, error) {
	b, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	wasAccepted := b.Status == booking.StatusAccepted
	if err := b.Cancel(reason, uc.clock.Now()); err != nil {
		return nil, err
	}

	if wasAccepted {
		if err := uc.releaseCar(ctx, b.CarID); err != nil {
			return nil, err
		}
	}

	if b.PaymentStatus == booking.PaymentPaid {
		if _, err := uc.wallets.Credit(ctx, WalletMovement{
			UserID:           b.UserID,
			Amount:           b.TotalCost,
			Reason:           "booking cancellation refund",
			AdminUserID:      "system",
			RelatedBookingID: b.ID,
		}); err != nil {
			return nil, err
		}
		b.PaymentStatus = booking.PaymentRefunded
	}

	if err := uc.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) releaseCar(ctx context.Context, carID string) error {
	c, err := uc.cars.FindByID(ctx, carID)
	if err != nil {
		return err
	}
	if err := c.MarkAvailable(uc.clock.Now()); err != nil {
		return err
	}
	return uc.cars.Update(ctx, c)
}

// snapshotOffers freezes priced offer lines onto the booking, joining the
// engine's output back to the catalog entries for refs and unit prices.
func snapshotOffers(lines []pricing.OfferLine, catalog []*offer.Offer) []booking.OfferItem {
	byName := make(map[string]*offer.Offer, len(catalog))
	for _, o := range catalog {
		byName[o.Name] = o
	}
	items := make([]booking.OfferItem, 0, len(lines))
	for _, line := range lines {
		item := booking.OfferItem{
			Name:       line.Name,
			Type:       line.Type,
			TotalPrice: line.Cost,
		}
		if o, ok := byName[line.Name]; ok {
			item.NameAr = o.NameAr
			item.UnitPrice = o.UnitPrice
			item.OfferRef = o.ID
		}
		items = append(items, item)
	}
	return items
}

func newBookingNumber(now time.Time) string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return "BK-" + now.Format("20060102") + "-" + suffix
}
