package request

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type CreateContractRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

type ExtendContractRequest struct {
	NewEndDate      time.Time `json:"newEndDate" binding:"required"`
	Unit            string    `json:"unit,omitempty" binding:"omitempty,oneof=Day Week Month"`
	Count           int       `json:"count,omitempty" binding:"omitempty,min=1"`
	DiscountPercent float64   `json:"discountPercent,omitempty" binding:"omitempty,gte=0,lte=100"`
	CustomRate      *float64  `json:"customRate,omitempty" binding:"omitempty,gt=0"`
	OfferIDs        []string  `json:"offerIds,omitempty"`
	PayFromWallet   bool      `json:"payFromWallet,omitempty"`
}

func (r ExtendContractRequest) ToInput() (usecase.ExtendContractInput, error) {
	var unit pricing.Unit
	if r.Unit != "" {
		parsed, err := pricing.ParseUnit(r.Unit)
		if err != nil {
			return usecase.ExtendContractInput{}, err
		}
		unit = parsed
	}

	var customRate *decimal.Decimal
	if r.CustomRate != nil {
		d := decimal.NewFromFloat(*r.CustomRate)
		customRate = &d
	}

	return usecase.ExtendContractInput{
		NewEnd:          r.NewEndDate,
		Unit:            unit,
		Count:           r.Count,
		DiscountPercent: decimal.NewFromFloat(r.DiscountPercent),
		CustomRate:      customRate,
		OfferIDs:        r.OfferIDs,
		PayFromWallet:   r.PayFromWallet,
	}, nil
}

type CancelContractRequest struct {
	Reason string `json:"reason" binding:"required"`
}
