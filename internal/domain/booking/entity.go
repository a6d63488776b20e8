package booking

import (
	"strings"
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

var (
	ErrCannotAccept = errs.New("booking cannot be accepted in current state")
	ErrCannotDeny   = errs.New("booking cannot be denied in current state")
	ErrCannotCancel = errs.New("booking cannot be cancelled in current state")
)

// Booking is a rental request before it becomes a contract. Cost fields
// are a snapshot of the pricing breakdown at creation time; later rate
// changes on the car never touch them.
type Booking struct {
	ID            string
	OrderID       string
	BookingNumber string
	UserID        string
	CarID         string

	Dates pricing.DateRange
	Unit  pricing.Unit
	Count int

	BookingCost pricing.Money
	Taxes       pricing.Money
	DeliveryFee pricing.Money
	OffersTotal pricing.Money
	TotalCost   pricing.Money
	Offers      []OfferItem

	IsPackageBooking bool
	PackageMonths    int

	Status        Status
	PaymentStatus PaymentStatus

	DeniedReason string
	AcceptedAt   *time.Time
	DeniedAt     *time.Time
	CancelledAt  *time.Time
	CancelReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OfferItem is one add-on attached to a booking or contract, with its
// priced total frozen in.
type OfferItem struct {
	Name       string
	NameAr     string
	Type       pricing.OfferType
	UnitPrice  pricing.Money
	TotalPrice pricing.Money
	OfferRef   string
}

func (b *Booking) Validate() error {
	if strings.TrimSpace(b.OrderID) == "" {
		return errs.Mark(errs.New("order id is required"), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(b.BookingNumber) == "" {
		return errs.Mark(errs.New("booking number is required"), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(b.UserID) == "" {
		return errs.Mark(errs.New("user id is required"), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(b.CarID) == "" {
		return errs.Mark(errs.New("car id is required"), errs.ErrDomainValidationFailed)
	}
	if b.Count <= 0 {
		return errs.Mark(errs.New("count must be positive"), errs.ErrDomainValidationFailed)
	}
	if !b.Unit.IsValid() {
		return errs.Mark(errs.Newf("invalid booking unit: %q", b.Unit), errs.ErrDomainValidationFailed)
	}
	if b.IsPackageBooking && b.PackageMonths <= 0 {
		return errs.Mark(errs.New("package months must be positive for package bookings"), errs.ErrDomainValidationFailed)
	}
	if b.BookingCost.IsNegative() || b.TotalCost.IsNegative() {
		return errs.Mark(errs.New("costs cannot be negative"), errs.ErrDomainValidationFailed)
	}
	return nil
}

func (b *Booking) CanAccept() bool { return b.Status == StatusPending }
func (b *Booking) CanDeny() bool   { return b.Status == StatusPending }

func (b *Booking) CanCancel() bool {
	switch b.Status {
	case StatusPending, StatusConfirmed, StatusAccepted:
		return true
	default:
		return false
	}
}

func (b *Booking) Accept(now time.Time) error {
	if !b.CanAccept() {
		return errs.Mark(ErrCannotAccept, errs.ErrBusinessRuleViolation)
	}
	b.Status = StatusAccepted
	b.AcceptedAt = &now
	b.UpdatedAt = now
	return nil
}

func (b *Booking) Deny(reason string, now time.Time) error {
	if !b.CanDeny() {
		return errs.Mark(ErrCannotDeny, errs.ErrBusinessRuleViolation)
	}
	if strings.TrimSpace(reason) == "" {
		return errs.Mark(errs.New("denial reason is required"), errs.ErrInvalidInput)
	}
	b.Status = StatusDenied
	b.DeniedReason = reason
	b.DeniedAt = &now
	b.UpdatedAt = now
	return nil
}

func (b *Booking) Cancel(reason string, now time.Time) error {
	if !b.CanCancel() {
		return errs.Mark(ErrCannotCancel, errs.ErrBusinessRuleViolation)
	}
	b.Status = StatusCancelled
	b.CancelReason = reason
	b.CancelledAt = &now
	b.UpdatedAt = now
	return nil
}

// UpdateDates is only allowed before the booking is processed.
func (b *Booking) UpdateDates(dates pricing.DateRange, now time.Time) error {
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return errs.Mark(errs.New("cannot update dates after booking is processed"), errs.ErrBusinessRuleViolation)
	}
	b.Dates = dates
	b.UpdatedAt = now
	return nil
}

// ReplaceCar swaps the vehicle and the cost snapshot that came with it.
func (b *Booking) ReplaceCar(carID string, bookingCost, totalCost pricing.Money, now time.Time) error {
	switch b.Status {
	case StatusPending, StatusConfirmed, StatusAccepted:
	default:
		return errs.Mark(errs.New("cannot replace car in current booking state"), errs.ErrBusinessRuleViolation)
	}
	if strings.TrimSpace(carID) == "" {
		return errs.Mark(errs.New("new car id is required"), errs.ErrInvalidInput)
	}
	if bookingCost.IsNegative() || totalCost.IsNegative() {
		return errs.Mark(errs.New("costs cannot be negative"), errs.ErrInvalidInput)
	}
	b.CarID = carID
	b.BookingCost = bookingCost
	b.TotalCost = totalCost
	b.UpdatedAt = now
	return nil
}
