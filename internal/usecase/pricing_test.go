//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3coo/car-rental-backend/internal/domain/car"
	"github.com/d3coo/car-rental-backend/internal/domain/offer"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
	"github.com/d3coo/car-rental-backend/internal/usecase"
	"github.com/d3coo/car-rental-backend/tests/common/builder"
)

func fleetCar(t *testing.T, id string) *car.Car {
	t.Helper()
	b := builder.NewCarBuilder()
	b.ID = id
	return b.Build()
}

func TestPricingUseCase_QuoteBooking(t *testing.T) {
	ctx := context.Background()

	cars := newFakeCarRepo(fleetCar(t, "car-1"))
	offers := newFakeOfferRepo(&offer.Offer{
		ID:     "offer-1",
		Name:   "Full Insurance",
		Type:   pricing.OfferInsurance,
		Active: true,
	})
	uc := usecase.NewPricingUseCase(cars, offers, newPricingService())

	quote, err := uc.QuoteBooking(ctx, usecase.BookingQuoteInput{
		CarID:    "car-1",
		Unit:     pricing.UnitDay,
		Count:    10,
		OfferIDs: []string{"offer-1"},
	})
	require.NoError(t, err)

	bd := quote.Breakdown
	assert.True(t, bd.BaseCost.Equal(money(t, "1000")), "base %s", bd.BaseCost)
	assert.True(t, bd.OffersTotal.Equal(money(t, "200")), "offers %s", bd.OffersTotal)
	assert.True(t, bd.Taxes.Equal(money(t, "150")), "taxes %s", bd.Taxes)
	assert.True(t, bd.TotalCost.Equal(money(t, "1350")), "total %s", bd.TotalCost)
	require.Len(t, quote.Offers, 1)
	assert.Equal(t, "offer-1", quote.Offers[0].ID)
}

func TestPricingUseCase_QuoteBookingCarNotFound(t *testing.T) {
	uc := usecase.NewPricingUseCase(newFakeCarRepo(), newFakeOfferRepo(), newPricingService())

	_, err := uc.QuoteBooking(context.Background(), usecase.BookingQuoteInput{
		CarID: "missing",
		Unit:  pricing.UnitDay,
		Count: 1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrCarNotFound)
}

func TestPricingUseCase_QuoteBookingRejectsInactiveOffer(t *testing.T) {
	cars := newFakeCarRepo(fleetCar(t, "car-1"))
	offers := newFakeOfferRepo(&offer.Offer{
		ID:   "offer-1",
		Name: "Full Insurance",
		Type: pricing.OfferInsurance,
	})
	uc := usecase.NewPricingUseCase(cars, offers, newPricingService())

	_, err := uc.QuoteBooking(context.Background(), usecase.BookingQuoteInput{
		CarID:    "car-1",
		Unit:     pricing.UnitDay,
		Count:    1,
		OfferIDs: []string{"offer-1"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrOfferNotFound)
}

func TestPricingUseCase_QuoteExtension(t *testing.T) {
	cars := newFakeCarRepo(fleetCar(t, "car-1"))
	uc := usecase.NewPricingUseCase(cars, newFakeOfferRepo(), newPricingService())

	currentEnd := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	customRate := decimal.NewFromInt(80)

	quote, err := uc.QuoteExtension(context.Background(), usecase.ExtensionQuoteInput{
		CarID:      "car-1",
		Unit:       pricing.UnitDay,
		Count:      5,
		CustomRate: &customRate,
		CurrentEnd: currentEnd,
		NewEnd:     currentEnd.AddDate(0, 0, 5),
	})
	require.NoError(t, err)

	bd := quote.Breakdown
	assert.True(t, bd.BaseCost.Equal(money(t, "400")), "base %s", bd.BaseCost)
	assert.True(t, bd.Taxes.Equal(money(t, "60")), "taxes %s", bd.Taxes)
	assert.True(t, bd.TotalCost.Equal(money(t, "460")), "total %s", bd.TotalCost)
}
