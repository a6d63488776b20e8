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
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/domain/user"
	"github.com/d3coo/car-rental-backend/internal/pkg/clock"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

func activeCustomer(id string) *user.User {
	return &user.User{
		ID:                id,
		Email:             "rider@example.com",
		FirstName:         "Sara",
		LastName:          "Alharbi",
		PhoneNumber:       "+966500000000",
		Role:              user.RoleCustomer,
		Status:            user.StatusActive,
		WalletBalance:     pricing.ZeroMoney("SAR"),
		PreferredLanguage: "en",
		EmailVerified:     true,
		PhoneVerified:     true,
	}
}

type bookingFixture struct {
	uc       usecase.BookingUseCase
	bookings *fakeBookingRepo
	cars     *fakeCarRepo
	users    *fakeUserRepo
	wallets  *fakeWalletRepo
	clock    *clock.MockClock
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	cars := newFakeCarRepo(fleetCar(t, "car-1"))
	users := newFakeUserRepo(activeCustomer("user-1"))
	bookings := newFakeBookingRepo()
	wallets := newFakeWalletRepo()
	quotes := usecase.NewPricingUseCase(cars, newFakeOfferRepo(), newPricingService())
	clk := clock.NewMockClock(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC))

	return &bookingFixture{
		uc:       usecase.NewBookingUseCase(bookings, cars, users, wallets, quotes, clk),
		bookings: bookings,
		cars:     cars,
		users:    users,
		wallets:  wallets,
		clock:    clk,
	}
}

func TestBookingUseCase_Create(t *testing.T) {
	fx := newBookingFixture(t)

	b, err := fx.uc.Create(context.Background(), usecase.CreateBookingInput{
		UserID:    "user-1",
		CarID:     "car-1",
		StartDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Unit:      pricing.UnitWeek,
		Count:     1,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.NotEmpty(t, b.OrderID)
	assert.True(t, strings.HasPrefix(b.BookingNumber, "BK-20260201-"), "number %s", b.BookingNumber)
	assert.Equal(t, booking.StatusPending, b.Status)
	assert.Equal(t, booking.PaymentPending, b.PaymentStatus)
	assert.Equal(t, 7, b.Dates.DurationDays())
	// Weekly fallback: 100×7 base, 15% tax on base only.
	assert.True(t, b.BookingCost.Equal(money(t, "700")), "cost %s", b.BookingCost)
	assert.True(t, b.TotalCost.Equal(money(t, "805")), "total %s", b.TotalCost)
}

func TestBookingUseCase_CreatePackageOverridesUnit(t *testing.T) {
	fx := newBookingFixture(t)
	fx.cars.cars["car-1"].Price.Packages = []pricing.PackageRate{
		{Months: 3, Price: money(t, "2400")},
	}

	b, err := fx.uc.Create(context.Background(), usecase.CreateBookingInput{
		UserID:        "user-1",
		CarID:         "car-1",
		StartDate:     time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Unit:          pricing.UnitDay,
		Count:         1,
		IsPackage:     true,
		PackageMonths: 3,
	})
	require.NoError(t, err)

	assert.Equal(t, pricing.UnitMonth, b.Unit)
	assert.Equal(t, 3, b.Count)
	assert.Equal(t, 90, b.Dates.DurationDays())
	assert.True(t, b.BookingCost.Equal(money(t, "2400")), "cost %s", b.BookingCost)
}

func TestBookingUseCase_CreateRejections(t *testing.T) {
	t.Run("unverified user", func(t *testing.T) {
		fx := newBookingFixture(t)
		fx.users.users["user-1"].PhoneVerified = false

		_, err := fx.uc.Create(context.Background(), usecase.CreateBookingInput{
			UserID:    "user-1",
			CarID:     "car-1",
			StartDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			Unit:      pricing.UnitDay,
			Count:     1,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("car in maintenance", func(t *testing.T) {
		fx := newBookingFixture(t)
		fx.cars.cars["car-1"].Status = car.StatusMaintenance

		_, err := fx.uc.Create(context.Background(), usecase.CreateBookingInput{
			UserID:    "user-1",
			CarID:     "car-1",
			StartDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			Unit:      pricing.UnitDay,
			Count:     1,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := newBookingFixture(t)
		_, err := fx.uc.Create(context.Background(), usecase.CreateBookingInput{
			UserID:    "ghost",
			CarID:     "car-1",
			StartDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
			Unit:      pricing.UnitDay,
			Count:     1,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestBookingUseCase_AcceptMarksCarRented(t *testing.T) {
	fx := newBookingFixture(t)

	b, err := fx.uc.Create(context.Background(), usecase.CreateBookingInput{
		UserID:    "user-1",
		CarID:     "car-1",
		StartDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Unit:      pricing.UnitDay,
		Count:     3,
	})
	require.NoError(t, err)

	accepted, err := fx.uc.Accept(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusAccepted, accepted.Status)
	assert.Equal(t, car.StatusRented, fx.cars.cars["car-1"].Status)

	_, err = fx.uc.Accept(context.Background(), b.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
}

func TestBookingUseCase_Deny(t *testing.T) {
	fx := newBookingFixture(t)

	b, err := fx.uc.Create(context.Background(), usecase.CreateBookingInput{
		UserID:    "user-1",
		CarID:     "car-1",
		StartDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Unit:      pricing.UnitDay,
		Count:     3,
	})
	require.NoError(t, err)

	denied, err := fx.uc.Deny(context.Background(), b.ID, "fleet shortage")
	require.NoError(t, err)
	assert.Equal(t, booking.StatusDenied, denied.Status)
	assert.Equal(t, "fleet shortage", denied.DeniedReason)
	// Denial never touched the car.
	assert.Equal(t, car.StatusAvailable, fx.cars.cars["car-1"].Status)
}

func TestBookingUseCase_CancelRefundsPaidBooking(t *testing.T) {
	fx := newBookingFixture(t)

	b, err := fx.uc.Create(context.Background(), usecase.CreateBookingInput{
		UserID:    "user-1",
		CarID:     "car-1",
		StartDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Unit:      pricing.UnitWeek,
		Count:     1,
	})
	require.NoError(t, err)

	_, err = fx.uc.Accept(context.Background(), b.ID)
	require.NoError(t, err)
	b.PaymentStatus = booking.PaymentPaid

	cancelled, err := fx.uc.Cancel(context.Background(), b.ID, "customer request")
	require.NoError(t, err)

	assert.Equal(t, booking.StatusCancelled, cancelled.Status)
	assert.Equal(t, booking.PaymentRefunded, cancelled.PaymentStatus)
	assert.Equal(t, car.StatusAvailable, fx.cars.cars["car-1"].Status)

	require.Len(t, fx.wallets.credits, 1)
	refund := fx.wallets.credits[0]
	assert.Equal(t, "user-1", refund.UserID)
	assert.Equal(t, "booking cancellation refund", refund.Reason)
	assert.Equal(t, "system", refund.AdminUserID)
	assert.True(t, refund.Amount.Equal(money(t, "805")), "refund %s", refund.Amount)
}

func TestBookingUseCase_CancelUnpaidSkipsRefund(t *testing.T) {
	fx := newBookingFixture(t)

	b, err := fx.uc.Create(context.Background(), usecase.CreateBookingInput{
		UserID:    "user-1",
		CarID:     "car-1",
		StartDate: time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Unit:      pricing.UnitDay,
		Count:     2,
	})
	require.NoError(t, err)

	cancelled, err := fx.uc.Cancel(context.Background(), b.ID, "changed plans")
	require.NoError(t, err)
	assert.Equal(t, booking.PaymentPending, cancelled.PaymentStatus)
	assert.Empty(t, fx.wallets.credits)
}
