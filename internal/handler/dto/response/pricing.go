package response

import (
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
)

type OfferLineResponse struct {
	Name string  `json:"name"`
	Type string  `json:"type"`
	Cost float64 `json:"cost"`
}

type QuoteResponse struct {
	BaseCost    float64             `json:"baseCost"`
	OffersTotal float64             `json:"offersTotal"`
	OfferLines  []OfferLineResponse `json:"offerLines,omitempty"`
	Subtotal    float64             `json:"subtotal"`
	Taxes       float64             `json:"taxes"`
	DeliveryFee float64             `json:"deliveryFee"`
	TotalCost   float64             `json:"totalCost"`
	Currency    string              `json:"currency"`
}

func FromBreakdown(bd *pricing.Breakdown) QuoteResponse {
	resp := QuoteResponse{
		BaseCost:    bd.BaseCost.Float64(),
		OffersTotal: bd.OffersTotal.Float64(),
		Subtotal:    bd.Subtotal.Float64(),
		Taxes:       bd.Taxes.Float64(),
		DeliveryFee: bd.DeliveryFee.Float64(),
		TotalCost:   bd.TotalCost.Float64(),
		Currency:    bd.Currency,
	}
	for _, line := range bd.OfferLines {
		resp.OfferLines = append(resp.OfferLines, OfferLineResponse{
			Name: line.Name,
			Type: line.Type.String(),
			Cost: line.Cost.Float64(),
		})
	}
	return resp
}
