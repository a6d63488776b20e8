package request

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type CreateBookingRequest struct {
	CarID           string    `json:"carId" binding:"required"`
	StartDate       time.Time `json:"startDate" binding:"required"`
	Unit            string    `json:"unit" binding:"required,oneof=Day Week Month"`
	Count           int       `json:"count" binding:"required,min=1"`
	DiscountPercent float64   `json:"discountPercent,omitempty" binding:"omitempty,gte=0,lte=100"`
	DeliveryFee     float64   `json:"deliveryFee,omitempty" binding:"omitempty,gte=0"`
	OfferIDs        []string  `json:"offerIds,omitempty"`
	IsPackage       bool      `json:"isPackage,omitempty"`
	PackageMonths   int       `json:"packageMonths,omitempty" binding:"omitempty,min=1"`
}

func (r CreateBookingRequest) ToInput(userID string) (usecase.CreateBookingInput, error) {
	unit, err := pricing.ParseUnit(r.Unit)
	if err != nil {
		return usecase.CreateBookingInput{}, err
	}
	return usecase.CreateBookingInput{
		UserID:          userID,
		CarID:           r.CarID,
		StartDate:       r.StartDate,
		Unit:            unit,
		Count:           r.Count,
		DiscountPercent: decimal.NewFromFloat(r.DiscountPercent),
		DeliveryFee:     r.DeliveryFee,
		OfferIDs:        r.OfferIDs,
		IsPackage:       r.IsPackage,
		PackageMonths:   r.PackageMonths,
	}, nil
}

type DenyBookingRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}
