package usecase

import (
	"context"

	"github.com/d3coo/car-rental-backend/internal/domain/car"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/pkg/clock"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

// CarFilter narrows fleet listings; zero values match everything.
type CarFilter struct {
	Status   car.Status
	Category string
	Location string
	Limit    int
}

type CarRepository interface {
	FindByID(ctx context.Context, id string) (*car.Car, error)
	List(ctx context.Context, filter CarFilter) ([]*car.Car, error)
	Create(ctx context.Context, c *car.Car) (string, error)
	Update(ctx context.Context, c *car.Car) error
	Delete(ctx context.Context, id string) error
}

type UpdateRatesInput struct {
	Daily   *pricing.Money
	Weekly  *pricing.Money
	Monthly *pricing.Money
}

type CarUseCase interface {
	Get(ctx context.Context, id string) (*car.Car, error)
	List(ctx context.Context, filter CarFilter) ([]*car.Car, error)
	Create(ctx context.Context, c *car.Car) (*car.Car, error)
	UpdateRates(ctx context.Context, id string, in UpdateRatesInput) (*car.Car, error)
	SendForMaintenance(ctx context.Context, id string) error
	ReturnToFleet(ctx context.Context, id string) error
	Retire(ctx context.Context, id string) error
}

type carUseCaseImpl struct {
	cars  CarRepository
	clock clock.Clock
}

func NewCarUseCase(cars CarRepository, clk clock.Clock) CarUseCase {
	return &carUseCaseImpl{cars: cars, clock: clk}
}

func (uc *carUseCaseImpl) Get(ctx context.Context, id string) (*car.Car, error) {
	c, err := uc.cars.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCarNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (uc *carUseCaseImpl) List(ctx context.Context, filter CarFilter) ([]*car.Car, error) {
	return uc.cars.List(ctx, filter)
}

func (uc *carUseCaseImpl) Create(ctx context.Context, c *car.Car) (*car.Car, error) {
	now := uc.clock.Now()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Status == "" {
		c.Status = car.StatusAvailable
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	id, err := uc.cars.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	c.ID = id
	return c, nil
}

func (uc *carUseCaseImpl) UpdateRates(ctx context.Context, id string, in UpdateRatesInput) (*car.Car, error) {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.UpdateRates(in.Daily, in.Weekly, in.Monthly, uc.clock.Now()); err != nil {
		return nil, err
	}
	if err := uc.cars.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (uc *carUseCaseImpl) SendForMaintenance(ctx context.Context, id string) error {
	return uc.transition(ctx, id, func(c *car.Car) error {
		return c.SendForMaintenance(uc.clock.Now())
	})
}

func (uc *carUseCaseImpl) ReturnToFleet(ctx context.Context, id string) error {
	return uc.transition(ctx, id, func(c *car.Car) error {
		return c.MarkAvailable(uc.clock.Now())
	})
}

func (uc *carUseCaseImpl) Retire(ctx context.Context, id string) error {
	return uc.transition(ctx, id, func(c *car.Car) error {
		c.Retire(uc.clock.Now())
		return nil
	})
}

func (uc *carUseCaseImpl) transition(ctx context.Context, id string, apply func(*car.Car) error) error {
	c, err := uc.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := apply(c); err != nil {
		return err
	}
	return uc.cars.Update(ctx, c)
}
