//go:build unit || e2e

package builder

import (
	"time"

	domcar "github.com/d3coo/car-rental-backend/internal/domain/car"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	reqdto "github.com/d3coo/car-rental-backend/internal/handler/dto/request"
)

type CarBuilder struct {
	ID           string
	Make         string
	Model        string
	Year         int
	LicensePlate string
	Category     string
	Currency     string
	DailyRate    float64
	WeeklyRate   *float64
	MonthlyRate  *float64
	Status       domcar.Status
	CreatedAt    time.Time
}

func NewCarBuilder() *CarBuilder {
	return &CarBuilder{
		ID:           "car-1",
		Make:         "Toyota",
		Model:        "Camry",
		Year:         2024,
		LicensePlate: "ABC-1234",
		Category:     "Sedan",
		Currency:     pricing.DefaultCurrency,
		DailyRate:    100,
		Status:       domcar.StatusAvailable,
		CreatedAt:    time.Now(),
	}
}

func (b *CarBuilder) WithWeeklyRate(rate float64) *CarBuilder {
	b.WeeklyRate = &rate
	return b
}

func (b *CarBuilder) WithMonthlyRate(rate float64) *CarBuilder {
	b.MonthlyRate = &rate
	return b
}

func (b *CarBuilder) WithStatus(status domcar.Status) *CarBuilder {
	b.Status = status
	return b
}

func (b *CarBuilder) Build() *domcar.Car {
	price := pricing.PriceInfo{
		DailyRate: pricing.NewMoneyFromFloat(b.DailyRate, b.Currency),
	}
	if b.WeeklyRate != nil {
		m := pricing.NewMoneyFromFloat(*b.WeeklyRate, b.Currency)
		price.WeeklyRate = &m
	}
	if b.MonthlyRate != nil {
		m := pricing.NewMoneyFromFloat(*b.MonthlyRate, b.Currency)
		price.MonthlyRate = &m
	}
	return &domcar.Car{
		ID:           b.ID,
		Make:         b.Make,
		Model:        b.Model,
		Year:         b.Year,
		LicensePlate: b.LicensePlate,
		Category:     b.Category,
		Price:        price,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.CreatedAt,
	}
}

func (b *CarBuilder) BuildDTO() reqdto.CreateCarRequest {
	return reqdto.CreateCarRequest{
		Make:         b.Make,
		Model:        b.Model,
		Year:         b.Year,
		LicensePlate: b.LicensePlate,
		Category:     b.Category,
		Currency:     b.Currency,
		DailyRate:    b.DailyRate,
		WeeklyRate:   b.WeeklyRate,
		MonthlyRate:  b.MonthlyRate,
	}
}
