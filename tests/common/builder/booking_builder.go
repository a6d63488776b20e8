//go:build unit || e2e

package builder

import (
	"time"

	dombooking "github.com/d3coo/car-rental-backend/internal/domain/booking"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	reqdto "github.com/d3coo/car-rental-backend/internal/handler/dto/request"
)

type BookingBuilder struct {
	ID            string
	OrderID       string
	BookingNumber string
	UserID        string
	CarID         string
	StartDate     time.Time
	Unit          pricing.Unit
	Count         int
	Currency      string
	BookingCost   float64
	Taxes         float64
	TotalCost     float64
	Status        dombooking.Status
	PaymentStatus dombooking.PaymentStatus
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            "bk-1",
		OrderID:       "order-1",
		BookingNumber: "BK-20260201-ABCD1234",
		UserID:        "user-1",
		CarID:         "car-1",
		StartDate:     time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		Unit:          pricing.UnitWeek,
		Count:         1,
		Currency:      pricing.DefaultCurrency,
		BookingCost:   700,
		Taxes:         105,
		TotalCost:     805,
		Status:        dombooking.StatusPending,
		PaymentStatus: dombooking.PaymentPending,
	}
}

func (b *BookingBuilder) WithStatus(status dombooking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithPaymentStatus(status dombooking.PaymentStatus) *BookingBuilder {
	b.PaymentStatus = status
	return b
}

func (b *BookingBuilder) Build() *dombooking.Booking {
	dates, err := pricing.DateRangeFromUnit(b.StartDate, b.Unit, b.Count)
	if err != nil {
		panic(err)
	}
	return &dombooking.Booking{
		ID:            b.ID,
		OrderID:       b.OrderID,
		BookingNumber: b.BookingNumber,
		UserID:        b.UserID,
		CarID:         b.CarID,
		Dates:         dates,
		Unit:          b.Unit,
		Count:         b.Count,
		BookingCost:   pricing.NewMoneyFromFloat(b.BookingCost, b.Currency),
		Taxes:         pricing.NewMoneyFromFloat(b.Taxes, b.Currency),
		TotalCost:     pricing.NewMoneyFromFloat(b.TotalCost, b.Currency),
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.StartDate,
		UpdatedAt:     b.StartDate,
	}
}

func (b *BookingBuilder) BuildDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		CarID:     b.CarID,
		StartDate: b.StartDate,
		Unit:      b.Unit.String(),
		Count:     b.Count,
	}
}
