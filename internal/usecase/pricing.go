package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/d3coo/car-rental-backend/internal/domain/offer"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

type OfferRepository interface {
	FindByID(ctx context.Context, id string) (*offer.Offer, error)
	FindByIDs(ctx context.Context, ids []string) ([]*offer.Offer, error)
	ListActive(ctx context.Context) ([]*offer.Offer, error)
}

// BookingQuoteInput describes a booking to be priced. OfferIDs refer to
// catalog offers; inactive ones are rejected.
type BookingQuoteInput struct {
	CarID           string
	Unit            pricing.Unit
	Count           int
	DiscountPercent decimal.Decimal
	DeliveryFee     float64
	OfferIDs        []string
	IsPackage       bool
	PackageMonths   int
}

// ExtensionQuoteInput describes a contract extension to be priced on its
// own, without an existing contract.
type ExtensionQuoteInput struct {
	CarID           string
	Unit            pricing.Unit
	Count           int
	DiscountPercent decimal.Decimal
	CustomRate      *decimal.Decimal
	OfferIDs        []string
	CurrentEnd      time.Time
	NewEnd          time.Time
}

// Quote pairs the pricing breakdown with the catalog offers that were
// priced into it, so callers can snapshot offer lines with their refs.
type Quote struct {
	Breakdown *pricing.Breakdown
	Offers    []*offer.Offer
}

type PricingUseCase interface {
	QuoteBooking(ctx context.Context, in BookingQuoteInput) (*Quote, error)
	QuoteExtension(ctx context.Context, in ExtensionQuoteInput) (*Quote, error)
}

type pricingUseCaseImpl struct {
	cars    CarRepository
	offers  OfferRepository
	pricing *pricing.Service
}

func NewPricingUseCase(cars CarRepository, offers OfferRepository, svc *pricing.Service) PricingUseCase {
	return &pricingUseCaseImpl{
		cars:    cars,
		offers:  offers,
		pricing: svc,
	}
}

func (uc *pricingUseCaseImpl) QuoteBooking(ctx context.Context, in BookingQuoteInput) (*Quote, error) {
	c, err := uc.cars.FindByID(ctx, in.CarID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCarNotFound)
		}
		return nil, err
	}

	catalog, inputs, err := uc.resolveOffers(ctx, in.OfferIDs)
	if err != nil {
		return nil, err
	}

	breakdown, err := uc.pricing.TotalBookingCost(pricing.BookingInput{
		Car:             c.Price,
		Unit:            in.Unit,
		Count:           in.Count,
		DiscountPercent: in.DiscountPercent,
		DeliveryFee:     pricing.NewMoneyFromFloat(in.DeliveryFee, c.Price.Currency()),
		Offers:          inputs,
		Tiers:           offer.TierRatesFor(catalog),
		IsPackage:       in.IsPackage,
		PackageMonths:   in.PackageMonths,
	})
	if err != nil {
		return nil, err
	}
	return &Quote{Breakdown: breakdown, Offers: catalog}, nil
}

func (uc *pricingUseCaseImpl) QuoteExtension(ctx context.Context, in ExtensionQuoteInput) (*Quote, error) {
	c, err := uc.cars.FindByID(ctx, in.CarID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrCarNotFound)
		}
		return nil, err
	}

	catalog, inputs, err := uc.resolveOffers(ctx, in.OfferIDs)
	if err != nil {
		return nil, err
	}

	currentEnd := in.CurrentEnd
	newEnd := in.NewEnd
	breakdown, err := uc.pricing.TotalExtensionCost(pricing.ExtensionInput{
		Car:             c.Price,
		Unit:            in.Unit,
		Count:           in.Count,
		Currency:        c.Price.Currency(),
		DiscountPercent: in.DiscountPercent,
		CustomRate:      in.CustomRate,
		Offers:          inputs,
		Tiers:           offer.TierRatesFor(catalog),
		CurrentEnd:      &currentEnd,
		NewEnd:          &newEnd,
	})
	if err != nil {
		return nil, err
	}
	return &Quote{Breakdown: breakdown, Offers: catalog}, nil
}

func (uc *pricingUseCaseImpl) resolveOffers(ctx context.Context, ids []string) ([]*offer.Offer, []pricing.OfferInput, error) {
	if len(ids) == 0 {
		return nil, nil, nil
	}
	catalog, err := uc.offers.FindByIDs(ctx, ids)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.Mark(err, errs.ErrOfferNotFound)
		}
		return nil, nil, err
	}
	inputs := make([]pricing.OfferInput, 0, len(catalog))
	for _, o := range catalog {
		if !o.Active {
			return nil, nil, errs.Mark(errs.Newf("offer %q is not active", o.Name), errs.ErrOfferNotFound)
		}
		inputs = append(inputs, o.PricingInput())
	}
	return catalog, inputs, nil
}
