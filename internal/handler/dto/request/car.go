package request

import (
	"github.com/d3coo/car-rental-backend/internal/domain/car"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type PackageRateRequest struct {
	Months int     `json:"months" binding:"required,min=1"`
	Price  float64 `json:"price" binding:"required,gt=0"`
}

type CreateCarRequest struct {
	Make         string   `json:"make" binding:"required"`
	Model        string   `json:"model" binding:"required"`
	Year         int      `json:"year" binding:"required"`
	Color        string   `json:"color,omitempty"`
	LicensePlate string   `json:"licensePlate" binding:"required"`
	Category     string   `json:"category,omitempty"`
	Location     string   `json:"location,omitempty"`
	Mileage      *int     `json:"mileage,omitempty"`
	FuelType     *string  `json:"fuelType,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	Seats        *int     `json:"seats,omitempty"`
	Features     []string `json:"features,omitempty"`

	Currency       string               `json:"currency,omitempty"`
	DailyRate      float64              `json:"dailyRate" binding:"required,gt=0"`
	WeeklyRate     *float64             `json:"weeklyRate,omitempty"`
	MonthlyRate    *float64             `json:"monthlyRate,omitempty"`
	BookedDayPrice *float64             `json:"bookedDayPrice,omitempty"`
	Packages       []PackageRateRequest `json:"packages,omitempty"`
}

func (r CreateCarRequest) ToDomain() *car.Car {
	currency := r.Currency
	if currency == "" {
		currency = pricing.DefaultCurrency
	}

	price := pricing.PriceInfo{
		DailyRate: pricing.NewMoneyFromFloat(r.DailyRate, currency),
	}
	if r.WeeklyRate != nil {
		m := pricing.NewMoneyFromFloat(*r.WeeklyRate, currency)
		price.WeeklyRate = &m
	}
	if r.MonthlyRate != nil {
		m := pricing.NewMoneyFromFloat(*r.MonthlyRate, currency)
		price.MonthlyRate = &m
	}
	if r.BookedDayPrice != nil {
		m := pricing.NewMoneyFromFloat(*r.BookedDayPrice, currency)
		price.BookedDayPrice = &m
	}
	for _, p := range r.Packages {
		price.Packages = append(price.Packages, pricing.PackageRate{
			Months: p.Months,
			Price:  pricing.NewMoneyFromFloat(p.Price, currency),
		})
	}

	c := &car.Car{
		Make:         r.Make,
		Model:        r.Model,
		Year:         r.Year,
		Color:        r.Color,
		LicensePlate: r.LicensePlate,
		Category:     r.Category,
		Location:     r.Location,
		Mileage:      r.Mileage,
		Seats:        r.Seats,
		Features:     r.Features,
		Price:        price,
	}
	if r.FuelType != nil {
		ft := car.FuelType(*r.FuelType)
		c.FuelType = &ft
	}
	if r.Transmission != nil {
		tr := car.Transmission(*r.Transmission)
		c.Transmission = &tr
	}
	return c
}

type UpdateRatesRequest struct {
	Currency    string   `json:"currency,omitempty"`
	DailyRate   *float64 `json:"dailyRate,omitempty"`
	WeeklyRate  *float64 `json:"weeklyRate,omitempty"`
	MonthlyRate *float64 `json:"monthlyRate,omitempty"`
}

func (r UpdateRatesRequest) ToInput() usecase.UpdateRatesInput {
	currency := r.Currency
	if currency == "" {
		currency = pricing.DefaultCurrency
	}
	var in usecase.UpdateRatesInput
	if r.DailyRate != nil {
		m := pricing.NewMoneyFromFloat(*r.DailyRate, currency)
		in.Daily = &m
	}
	if r.WeeklyRate != nil {
		m := pricing.NewMoneyFromFloat(*r.WeeklyRate, currency)
		in.Weekly = &m
	}
	if r.MonthlyRate != nil {
		m := pricing.NewMoneyFromFloat(*r.MonthlyRate, currency)
		in.Monthly = &m
	}
	return in
}
