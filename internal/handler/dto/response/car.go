package response

import (
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/car"
)

type PackageRateResponse struct {
	Months int     `json:"months"`
	Price  float64 `json:"price"`
}

type CarResponse struct {
	ID           string   `json:"id"`
	Make         string   `json:"make"`
	Model        string   `json:"model"`
	Year         int      `json:"year"`
	Color        string   `json:"color,omitempty"`
	LicensePlate string   `json:"licensePlate"`
	Category     string   `json:"category,omitempty"`
	Status       string   `json:"status"`
	Location     string   `json:"location,omitempty"`
	Mileage      *int     `json:"mileage,omitempty"`
	FuelType     *string  `json:"fuelType,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	Seats        *int     `json:"seats,omitempty"`
	Features     []string `json:"features,omitempty"`

	Currency       string                `json:"currency"`
	DailyRate      float64               `json:"dailyRate"`
	WeeklyRate     *float64              `json:"weeklyRate,omitempty"`
	MonthlyRate    *float64              `json:"monthlyRate,omitempty"`
	BookedDayPrice *float64              `json:"bookedDayPrice,omitempty"`
	Packages       []PackageRateResponse `json:"packages,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromCar(c *car.Car) CarResponse {
	resp := CarResponse{
		ID:           c.ID,
		Make:         c.Make,
		Model:        c.Model,
		Year:         c.Year,
		Color:        c.Color,
		LicensePlate: c.LicensePlate,
		Category:     c.Category,
		Status:       c.Status.String(),
		Location:     c.Location,
		Mileage:      c.Mileage,
		Seats:        c.Seats,
		Features:     c.Features,
		Currency:     c.Price.DailyRate.Currency(),
		DailyRate:    c.Price.DailyRate.Float64(),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	if c.FuelType != nil {
		ft := string(*c.FuelType)
		resp.FuelType = &ft
	}
	if c.Transmission != nil {
		tr := string(*c.Transmission)
		resp.Transmission = &tr
	}
	if c.Price.WeeklyRate != nil {
		v := c.Price.WeeklyRate.Float64()
		resp.WeeklyRate = &v
	}
	if c.Price.MonthlyRate != nil {
		v := c.Price.MonthlyRate.Float64()
		resp.MonthlyRate = &v
	}
	if c.Price.BookedDayPrice != nil {
		v := c.Price.BookedDayPrice.Float64()
		resp.BookedDayPrice = &v
	}
	for _, p := range c.Price.Packages {
		resp.Packages = append(resp.Packages, PackageRateResponse{
			Months: p.Months,
			Price:  p.Price.Float64(),
		})
	}
	return resp
}

func FromCars(cars []*car.Car) []CarResponse {
	resp := make([]CarResponse, 0, len(cars))
	for _, c := range cars {
		resp = append(resp, FromCar(c))
	}
	return resp
}
