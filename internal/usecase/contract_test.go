//go:build unit

package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3coo/car-rental-backend/internal/domain/booking"
	"github.com/d3coo/car-rental-backend/internal/domain/car"
	"github.com/d3coo/car-rental-backend/internal/domain/contract"
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/clock"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
	"github.com/d3coo/car-rental-backend/internal/usecase"
	"github.com/d3coo/car-rental-backend/tests/common/builder"
)

type contractFixture struct {
	uc        usecase.ContractUseCase
	contracts *fakeContractRepo
	bookings  *fakeBookingRepo
	cars      *fakeCarRepo
	wallets   *fakeWalletRepo
	clock     *clock.MockClock
}

func newContractFixture(t *testing.T, seed ...*booking.Booking) *contractFixture {
	t.Helper()
	rented := fleetCar(t, "car-1")
	rented.Status = car.StatusRented

	cars := newFakeCarRepo(rented)
	bookings := newFakeBookingRepo(seed...)
	contracts := newFakeContractRepo()
	wallets := newFakeWalletRepo()
	quotes := usecase.NewPricingUseCase(cars, newFakeOfferRepo(), newPricingService())
	clk := clock.NewMockClock(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC))

	return &contractFixture{
		uc: usecase.NewContractUseCase(
			contracts, bookings, cars, wallets, quotes, newPricingService(), clk,
		),
		contracts: contracts,
		bookings:  bookings,
		cars:      cars,
		wallets:   wallets,
		clock:     clk,
	}
}

func acceptedBooking(t *testing.T, id string) *booking.Booking {
	t.Helper()
	b := builder.NewBookingBuilder().
		WithStatus(booking.StatusAccepted).
		WithPaymentStatus(booking.PaymentPaid)
	b.ID = id
	return b.Build()
}

func TestContractUseCase_CreateFromBooking(t *testing.T) {
	fx := newContractFixture(t, acceptedBooking(t, "bk-1"))

	c, err := fx.uc.CreateFromBooking(context.Background(), "bk-1")
	require.NoError(t, err)

	assert.NotEmpty(t, c.ID)
	assert.True(t, strings.HasPrefix(c.ContractNumber, "CT-20260201-"), "number %s", c.ContractNumber)
	assert.Equal(t, "bk-1", c.BookingID)
	assert.Equal(t, contract.StatusActive, c.Status)
	assert.True(t, c.TotalCost.Equal(money(t, "805")), "total %s", c.TotalCost)

	// A second call returns the existing contract instead of a duplicate.
	again, err := fx.uc.CreateFromBooking(context.Background(), "bk-1")
	require.NoError(t, err)
	assert.Equal(t, c.ID, again.ID)
	assert.Len(t, fx.contracts.contracts, 1)
}

func TestContractUseCase_CreateFromBookingRequiresAccepted(t *testing.T) {
	b := acceptedBooking(t, "bk-1")
	b.Status = booking.StatusPending
	fx := newContractFixture(t, b)

	_, err := fx.uc.CreateFromBooking(context.Background(), "bk-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
}

func TestContractUseCase_ExtendProRated(t *testing.T) {
	fx := newContractFixture(t, acceptedBooking(t, "bk-1"))

	c, err := fx.uc.CreateFromBooking(context.Background(), "bk-1")
	require.NoError(t, err)

	newEnd := c.Dates.End().AddDate(0, 0, 3)
	extended, err := fx.uc.Extend(context.Background(), c.ID, usecase.ExtendContractInput{
		NewEnd: newEnd,
	})
	require.NoError(t, err)

	assert.Equal(t, contract.StatusExtended, extended.Status)
	assert.Equal(t, newEnd, extended.Dates.End())
	require.Len(t, extended.Extensions, 1)
	// 3 days at the daily fallback 100/day, plus 15% tax: 345.
	assert.True(t, extended.Extensions[0].Cost.Equal(money(t, "345")), "cost %s", extended.Extensions[0].Cost)
	assert.True(t, extended.TotalCost.Equal(money(t, "1150")), "total %s", extended.TotalCost)
	assert.Empty(t, fx.wallets.debits)
}

func TestContractUseCase_ExtendQuotedAndPaidFromWallet(t *testing.T) {
	fx := newContractFixture(t, acceptedBooking(t, "bk-1"))
	fx.wallets.balances["user-1"] = money(t, "2000")

	c, err := fx.uc.CreateFromBooking(context.Background(), "bk-1")
	require.NoError(t, err)

	newEnd := c.Dates.End().AddDate(0, 0, 5)
	extended, err := fx.uc.Extend(context.Background(), c.ID, usecase.ExtendContractInput{
		NewEnd:        newEnd,
		Unit:          pricing.UnitDay,
		Count:         5,
		PayFromWallet: true,
	})
	require.NoError(t, err)

	// Re-quoted at the current daily rate: 5×100 plus 15% = 575.
	require.Len(t, extended.Extensions, 1)
	assert.True(t, extended.Extensions[0].Cost.Equal(money(t, "575")), "cost %s", extended.Extensions[0].Cost)

	require.Len(t, fx.wallets.debits, 1)
	debit := fx.wallets.debits[0]
	assert.Equal(t, "user-1", debit.UserID)
	assert.Equal(t, "contract extension payment", debit.Reason)
	assert.True(t, debit.Amount.Equal(money(t, "575")), "debit %s", debit.Amount)
	assert.True(t, fx.wallets.balances["user-1"].Equal(money(t, "1425")))
}

func TestContractUseCase_ExtendRejectsUnpaidContract(t *testing.T) {
	b := acceptedBooking(t, "bk-1")
	b.PaymentStatus = booking.PaymentPending
	fx := newContractFixture(t, b)

	c, err := fx.uc.CreateFromBooking(context.Background(), "bk-1")
	require.NoError(t, err)

	_, err = fx.uc.Extend(context.Background(), c.ID, usecase.ExtendContractInput{
		NewEnd: c.Dates.End().AddDate(0, 0, 3),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
}

func TestContractUseCase_CompleteReleasesCar(t *testing.T) {
	fx := newContractFixture(t, acceptedBooking(t, "bk-1"))

	c, err := fx.uc.CreateFromBooking(context.Background(), "bk-1")
	require.NoError(t, err)

	completed, err := fx.uc.Complete(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, contract.StatusCompleted, completed.Status)
	assert.Equal(t, car.StatusAvailable, fx.cars.cars["car-1"].Status)
}

func TestContractUseCase_CancelReleasesCar(t *testing.T) {
	fx := newContractFixture(t, acceptedBooking(t, "bk-1"))

	c, err := fx.uc.CreateFromBooking(context.Background(), "bk-1")
	require.NoError(t, err)

	cancelled, err := fx.uc.Cancel(context.Background(), c.ID, "vehicle recalled")
	require.NoError(t, err)
	assert.Equal(t, contract.StatusCancelled, cancelled.Status)
	assert.Equal(t, car.StatusAvailable, fx.cars.cars["car-1"].Status)
}
