package response

import (
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/contract"
)

type ExtensionResponse struct {
	ExtendedAt time.Time `json:"extendedAt"`
	NewEndDate time.Time `json:"newEndDate"`
	Cost       float64   `json:"cost"`
	Unit       string    `json:"unit"`
	Count      int       `json:"count"`
}

type ContractResponse struct {
	ID             string `json:"id"`
	OrderID        string `json:"orderId"`
	ContractNumber string `json:"contractNumber"`
	BookingID      string `json:"bookingId"`
	UserID         string `json:"userId"`
	CarID          string `json:"carId"`

	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Unit      string    `json:"unit"`
	Count     int       `json:"count"`

	BookingCost float64 `json:"bookingCost"`
	Taxes       float64 `json:"taxes"`
	DeliveryFee float64 `json:"deliveryFee"`
	OffersTotal float64 `json:"offersTotal"`
	TotalCost   float64 `json:"totalCost"`
	Currency    string  `json:"currency"`

	Offers []OfferItemResponse `json:"offers,omitempty"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	IsExtended   bool                `json:"isExtended"`
	Extensions   []ExtensionResponse `json:"extensions,omitempty"`
	CancelReason string              `json:"cancelReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromContract(c *contract.Contract) ContractResponse {
	resp := ContractResponse{
		ID:             c.ID,
		OrderID:        c.OrderID,
		ContractNumber: c.ContractNumber,
		BookingID:      c.BookingID,
		UserID:         c.UserID,
		CarID:          c.CarID,
		StartDate:      c.Dates.Start(),
		EndDate:        c.Dates.End(),
		Unit:           c.Unit.String(),
		Count:          c.Count,
		BookingCost:    c.BookingCost.Float64(),
		Taxes:          c.Taxes.Float64(),
		DeliveryFee:    c.DeliveryFee.Float64(),
		OffersTotal:    c.OffersTotal.Float64(),
		TotalCost:      c.TotalCost.Float64(),
		Currency:       c.TotalCost.Currency(),
		Offers:         fromOfferItems(c.Offers),
		Status:         c.Status.String(),
		PaymentStatus:  c.PaymentStatus.String(),
		IsExtended:     c.IsExtended,
		CancelReason:   c.CancelReason,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
	for _, e := range c.Extensions {
		resp.Extensions = append(resp.Extensions, ExtensionResponse{
			ExtendedAt: e.ExtendedAt,
			NewEndDate: e.NewEndDate,
			Cost:       e.Cost.Float64(),
			Unit:       e.Unit.String(),
			Count:      e.Count,
		})
	}
	return resp
}

func FromContracts(contracts []*contract.Contract) []ContractResponse {
	resp := make([]ContractResponse, 0, len(contracts))
	for _, c := range contracts {
		resp = append(resp, FromContract(c))
	}
	return resp
}
