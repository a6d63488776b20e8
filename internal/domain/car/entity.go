package car

import (
	"fmt"
	"strings"
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

var (
	ErrNotAvailable  = errs.New("car is not available")
	ErrOutOfService  = errs.New("car is out of service")
	ErrAlreadyRented = errs.New("car is already rented")
)

// Car is the fleet aggregate. Rates live in the embedded pricing.PriceInfo
// so the pricing engine consumes the same plan the repository stores.
type Car struct {
	ID           string
	Make         string
	Model        string
	Year         int
	Color        string
	LicensePlate string
	Category     string

	Price pricing.PriceInfo

	Status   Status
	Location string

	Mileage      *int
	FuelType     *FuelType
	Transmission *Transmission
	Seats        *int
	Features     []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c *Car) Validate() error {
	if strings.TrimSpace(c.Make) == "" {
		return errs.Mark(errs.New("make is required"), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(c.Model) == "" {
		return errs.Mark(errs.New("model is required"), errs.ErrDomainValidationFailed)
	}
	if c.Year < 1900 || c.Year > time.Now().Year()+1 {
		return errs.Mark(errs.Newf("implausible model year: %d", c.Year), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(c.LicensePlate) == "" {
		return errs.Mark(errs.New("license plate is required"), errs.ErrDomainValidationFailed)
	}
	if !c.Status.IsValid() {
		return errs.Mark(errs.Newf("invalid car status: %q", c.Status), errs.ErrDomainValidationFailed)
	}
	if c.Seats != nil && (*c.Seats < 1 || *c.Seats > 50) {
		return errs.Mark(errs.New("seats must be between 1 and 50"), errs.ErrDomainValidationFailed)
	}
	if c.Mileage != nil && *c.Mileage < 0 {
		return errs.Mark(errs.New("mileage cannot be negative"), errs.ErrDomainValidationFailed)
	}
	if err := c.Price.Validate(); err != nil {
		return errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	return nil
}

func (c *Car) IsAvailable() bool {
	return c.Status == StatusAvailable
}

func (c *Car) MarkRented(now time.Time) error {
	if c.Status != StatusAvailable {
		return errs.Mark(ErrNotAvailable, errs.ErrBusinessRuleViolation)
	}
	c.Status = StatusRented
	c.UpdatedAt = now
	return nil
}

func (c *Car) MarkAvailable(now time.Time) error {
	if c.Status == StatusOutOfService {
		return errs.Mark(ErrOutOfService, errs.ErrBusinessRuleViolation)
	}
	c.Status = StatusAvailable
	c.UpdatedAt = now
	return nil
}

func (c *Car) SendForMaintenance(now time.Time) error {
	if c.Status == StatusRented {
		return errs.Mark(ErrAlreadyRented, errs.ErrBusinessRuleViolation)
	}
	c.Status = StatusMaintenance
	c.UpdatedAt = now
	return nil
}

func (c *Car) Retire(now time.Time) {
	c.Status = StatusOutOfService
	c.UpdatedAt = now
}

// UpdateRates replaces the rate plan fields that are non-nil; each must
// be positive.
func (c *Car) UpdateRates(daily, weekly, monthly *pricing.Money, now time.Time) error {
	if daily != nil {
		if !daily.IsPositive() {
			return errs.Mark(errs.New("daily rate must be positive"), errs.ErrInvalidInput)
		}
		c.Price.DailyRate = *daily
	}
	if weekly != nil {
		if !weekly.IsPositive() {
			return errs.Mark(errs.New("weekly rate must be positive"), errs.ErrInvalidInput)
		}
		c.Price.WeeklyRate = weekly
	}
	if monthly != nil {
		if !monthly.IsPositive() {
			return errs.Mark(errs.New("monthly rate must be positive"), errs.ErrInvalidInput)
		}
		c.Price.MonthlyRate = monthly
	}
	c.UpdatedAt = now
	return nil
}

func (c *Car) DisplayName() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
}

func (c *Car) AgeYears(now time.Time) int {
	return now.Year() - c.Year
}
