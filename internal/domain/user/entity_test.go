//go:build unit

package user_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/domain/user"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

func verifiedUser() *user.User {
	return &user.User{
		ID:                "user-1",
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

func TestUser_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(u *user.User)
		valid  bool
	}{
		{name: "complete user", mutate: func(u *user.User) {}, valid: true},
		{name: "arabic language", mutate: func(u *user.User) { u.PreferredLanguage = "ar" }, valid: true},
		{name: "email without at sign", mutate: func(u *user.User) { u.Email = "not-an-email" }},
		{name: "missing first name", mutate: func(u *user.User) { u.FirstName = " " }},
		{name: "missing phone", mutate: func(u *user.User) { u.PhoneNumber = "" }},
		{name: "unknown language", mutate: func(u *user.User) { u.PreferredLanguage = "fr" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			u := verifiedUser()
			tc.mutate(u)
			err := u.Validate()
			if tc.valid {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrDomainValidationFailed)
		})
	}
}

func TestUser_CanBook(t *testing.T) {
	u := verifiedUser()
	assert.True(t, u.CanBook())

	u.Status = user.StatusSuspended
	assert.False(t, u.CanBook())

	u = verifiedUser()
	u.PhoneVerified = false
	assert.False(t, u.CanBook())
}

func TestUser_Activate(t *testing.T) {
	now := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

	u := verifiedUser()
	u.Status = user.StatusPendingVerification
	require.NoError(t, u.Activate(now))
	assert.Equal(t, user.StatusActive, u.Status)

	u = verifiedUser()
	u.Status = user.StatusPendingVerification
	u.EmailVerified = false
	err := u.Activate(now)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrBusinessRuleViolation)
}

func TestUser_FullName(t *testing.T) {
	u := verifiedUser()
	assert.Equal(t, "Sara Alharbi", u.FullName())

	u.LastName = ""
	assert.Equal(t, "Sara", u.FullName())
}
