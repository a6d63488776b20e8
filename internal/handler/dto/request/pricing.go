package request

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type BookingQuoteRequest struct {
	CarID           string   `json:"carId" binding:"required"`
	Unit            string   `json:"unit" binding:"required,oneof=Day Week Month"`
	Count           int      `json:"count" binding:"required,min=1"`
	DiscountPercent float64  `json:"discountPercent,omitempty" binding:"omitempty,gte=0,lte=100"`
	DeliveryFee     float64  `json:"deliveryFee,omitempty" binding:"omitempty,gte=0"`
	OfferIDs        []string `json:"offerIds,omitempty"`
	IsPackage       bool     `json:"isPackage,omitempty"`
	PackageMonths   int      `json:"packageMonths,omitempty" binding:"omitempty,min=1"`
}

func (r BookingQuoteRequest) ToInput() (usecase.BookingQuoteInput, error) {
	unit, err := pricing.ParseUnit(r.Unit)
	if err != nil {
		return usecase.BookingQuoteInput{}, err
	}
	return usecase.BookingQuoteInput{
		CarID:           r.CarID,
		Unit:            unit,
		Count:           r.Count,
		DiscountPercent: decimal.NewFromFloat(r.DiscountPercent),
		DeliveryFee:     r.DeliveryFee,
		OfferIDs:        r.OfferIDs,
		IsPackage:       r.IsPackage,
		PackageMonths:   r.PackageMonths,
	}, nil
}

type ExtensionQuoteRequest struct {
	CarID           string    `json:"carId" binding:"required"`
	Unit            string    `json:"unit" binding:"required,oneof=Day Week Month"`
	Count           int       `json:"count" binding:"required,min=1"`
	DiscountPercent float64   `json:"discountPercent,omitempty" binding:"omitempty,gte=0,lte=100"`
	CustomRate      *float64  `json:"customRate,omitempty" binding:"omitempty,gt=0"`
	OfferIDs        []string  `json:"offerIds,omitempty"`
	CurrentEndDate  time.Time `json:"currentEndDate" binding:"required"`
	NewEndDate      time.Time `json:"newEndDate" binding:"required"`
}

func (r ExtensionQuoteRequest) ToInput() (usecase.ExtensionQuoteInput, error) {
	unit, err := pricing.ParseUnit(r.Unit)
	if err != nil {
		return usecase.ExtensionQuoteInput{}, err
	}
	var customRate *decimal.Decimal
	if r.CustomRate != nil {
		d := decimal.NewFromFloat(*r.CustomRate)
		customRate = &d
	}
	return usecase.ExtensionQuoteInput{
		CarID:           r.CarID,
		Unit:            unit,
		Count:           r.Count,
		DiscountPercent: decimal.NewFromFloat(r.DiscountPercent),
		CustomRate:      customRate,
		OfferIDs:        r.OfferIDs,
		CurrentEnd:      r.CurrentEndDate,
		NewEnd:          r.NewEndDate,
	}, nil
}
