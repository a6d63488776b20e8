package response

import (
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/booking"
)

type OfferItemResponse struct {
	Name       string  `json:"name"`
	NameAr     string  `json:"nameAr,omitempty"`
	Type       string  `json:"type"`
	UnitPrice  float64 `json:"unitPrice"`
	TotalPrice float64 `json:"totalPrice"`
	OfferRef   string  `json:"offerRef,omitempty"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	OrderID       string `json:"orderId"`
	BookingNumber string `json:"bookingNumber"`
	UserID        string `json:"userId"`
	CarID         string `json:"carId"`

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

	IsPackageBooking bool `json:"isPackageBooking,omitempty"`
	PackageMonths    int  `json:"packageMonths,omitempty"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	DeniedReason  string `json:"deniedReason,omitempty"`
	CancelReason  string `json:"cancelReason,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func fromOfferItems(items []booking.OfferItem) []OfferItemResponse {
	resp := make([]OfferItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, OfferItemResponse{
			Name:       it.Name,
			NameAr:     it.NameAr,
			Type:       it.Type.String(),
			UnitPrice:  it.UnitPrice.Float64(),
			TotalPrice: it.TotalPrice.Float64(),
			OfferRef:   it.OfferRef,
		})
	}
	return resp
}

func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		OrderID:          b.OrderID,
		BookingNumber:    b.BookingNumber,
		UserID:           b.UserID,
		CarID:            b.CarID,
		StartDate:        b.Dates.Start(),
		EndDate:          b.Dates.End(),
		Unit:             b.Unit.String(),
		Count:            b.Count,
		BookingCost:      b.BookingCost.Float64(),
		Taxes:            b.Taxes.Float64(),
		DeliveryFee:      b.DeliveryFee.Float64(),
		OffersTotal:      b.OffersTotal.Float64(),
		TotalCost:        b.TotalCost.Float64(),
		Currency:         b.TotalCost.Currency(),
		Offers:           fromOfferItems(b.Offers),
		IsPackageBooking: b.IsPackageBooking,
		PackageMonths:    b.PackageMonths,
		Status:           b.Status.String(),
		PaymentStatus:    b.PaymentStatus.String(),
		DeniedReason:     b.DeniedReason,
		CancelReason:     b.CancelReason,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func FromBookings(bookings []*booking.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, FromBooking(b))
	}
	return resp
}
