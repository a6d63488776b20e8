package contract

import (
	"strings"
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/booking"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

var (
	ErrCannotExtend   = errs.New("contract cannot be extended in current state")
	ErrCannotComplete = errs.New("only active or extended contracts can be completed")
	ErrUnpaid         = errs.New("contract must be fully paid before completion")
	ErrAlreadyDone    = errs.New("cannot cancel a completed contract")
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusExtended  Status = "extended"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusCancelled, StatusExtended:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

// Extension records one applied contract extension.
type Extension struct {
	ExtendedAt time.Time
	NewEndDate time.Time
	Cost       pricing.Money
	Unit       pricing.Unit
	Count      int
}

// Contract is an active rental agreement. Like bookings, cost fields are
// a pricing snapshot; extensions append to both the history and the
// running total.
type Contract struct {
	ID             string
	OrderID        string
	ContractNumber string
	BookingID      string
	UserID         string
	CarID          string

	Dates pricing.DateRange
	Unit  pricing.Unit
	Count int

	BookingCost pricing.Money
	Taxes       pricing.Money
	DeliveryFee pricing.Money
	OffersTotal pricing.Money
	TotalCost   pricing.Money
	Offers      []booking.OfferItem

	Status        Status
	PaymentStatus booking.PaymentStatus

	IsExtended bool
	Extensions []Extension

	CancelReason string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Contract) Validate() error {
	if strings.TrimSpace(c.OrderID) == "" {
		return errs.Mark(errs.New("order id is required"), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(c.ContractNumber) == "" {
		return errs.Mark(errs.New("contract number is required"), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(c.UserID) == "" {
		return errs.Mark(errs.New("user id is required"), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(c.CarID) == "" {
		return errs.Mark(errs.New("car id is required"), errs.ErrDomainValidationFailed)
	}
	if c.Count <= 0 {
		return errs.Mark(errs.New("count must be positive"), errs.ErrDomainValidationFailed)
	}
	if !c.Unit.IsValid() {
		return errs.Mark(errs.Newf("invalid booking unit: %q", c.Unit), errs.ErrDomainValidationFailed)
	}
	if c.BookingCost.IsNegative() || c.TotalCost.IsNegative() {
		return errs.Mark(errs.New("costs cannot be negative"), errs.ErrDomainValidationFailed)
	}
	return nil
}

// Terms exposes the slice of the contract the extension calculator
// pro-rates from.
func (c *Contract) Terms() pricing.ContractTerms {
	return pricing.ContractTerms{
		Dates:       c.Dates,
		Unit:        c.Unit,
		BookingCost: c.BookingCost,
	}
}

// CanExtend requires an active contract with at least partial payment.
func (c *Contract) CanExtend() bool {
	if c.Status != StatusActive && c.Status != StatusExtended {
		return false
	}
	return c.PaymentStatus == booking.PaymentPaid || c.PaymentStatus == booking.PaymentPartial
}

// Extend moves the end date out, records the extension, and adds its
// cost to the contract total.
func (c *Contract) Extend(newEnd time.Time, cost pricing.Money, unit pricing.Unit, count int, now time.Time) error {
	if !c.CanExtend() {
		return errs.Mark(ErrCannotExtend, errs.ErrBusinessRuleViolation)
	}
	if !unit.IsValid() {
		return errs.Mark(errs.Newf("invalid extension unit: %q", unit), errs.ErrInvalidInput)
	}
	if count <= 0 {
		return errs.Mark(errs.New("extension count must be positive"), errs.ErrInvalidInput)
	}
	if cost.IsNegative() {
		return errs.Mark(errs.New("extension cost cannot be negative"), errs.ErrInvalidInput)
	}

	dates, err := c.Dates.ExtendTo(newEnd)
	if err != nil {
		return err
	}
	total, err := c.TotalCost.Add(cost)
	if err != nil {
		return err
	}

	c.Dates = dates
	c.TotalCost = total
	c.IsExtended = true
	c.Extensions = append(c.Extensions, Extension{
		ExtendedAt: now,
		NewEndDate: newEnd,
		Cost:       cost,
		Unit:       unit,
		Count:      count,
	})
	if c.Status == StatusActive {
		c.Status = StatusExtended
	}
	c.UpdatedAt = now
	return nil
}

func (c *Contract) Complete(now time.Time) error {
	if c.Status != StatusActive && c.Status != StatusExtended {
		return errs.Mark(ErrCannotComplete, errs.ErrBusinessRuleViolation)
	}
	if c.PaymentStatus != booking.PaymentPaid {
		return errs.Mark(ErrUnpaid, errs.ErrBusinessRuleViolation)
	}
	c.Status = StatusCompleted
	c.UpdatedAt = now
	return nil
}

func (c *Contract) Cancel(reason string, now time.Time) error {
	if c.Status == StatusCompleted {
		return errs.Mark(ErrAlreadyDone, errs.ErrBusinessRuleViolation)
	}
	if strings.TrimSpace(reason) == "" {
		return errs.Mark(errs.New("cancellation reason is required"), errs.ErrInvalidInput)
	}
	c.Status = StatusCancelled
	c.CancelReason = reason
	c.UpdatedAt = now
	return nil
}

func (c *Contract) UpdatePaymentStatus(status booking.PaymentStatus, now time.Time) error {
	if c.Status == StatusCancelled {
		return errs.Mark(errs.New("cannot update payment status of cancelled contract"), errs.ErrBusinessRuleViolation)
	}
	if !status.IsValid() {
		return errs.Mark(errs.Newf("invalid payment status: %q", status), errs.ErrInvalidInput)
	}
	c.PaymentStatus = status
	c.UpdatedAt = now
	return nil
}

// RemainingDays is zero once the contract is no longer running.
func (c *Contract) RemainingDays(now time.Time) int {
	if c.Status != StatusActive && c.Status != StatusExtended {
		return 0
	}
	remaining := int(c.Dates.End().Sub(now).Hours() / 24)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c *Contract) IsOverdue(now time.Time) bool {
	return (c.Status == StatusActive || c.Status == StatusExtended) && now.After(c.Dates.End())
}
