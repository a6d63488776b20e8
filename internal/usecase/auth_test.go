//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3coo/car-rental-backend/internal/domain/user"
	"github.com/d3coo/car-rental-backend/internal/pkg/clock"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
	"github.com/d3coo/car-rental-backend/internal/pkg/jwt"
	"github.com/d3coo/car-rental-backend/internal/pkg/password"
	"github.com/d3coo/car-rental-backend/internal/usecase"
	"github.com/d3coo/car-rental-backend/tests/common/builder"
)

func newAuthUseCase(users *fakeUserRepo) usecase.AuthUseCase {
	return usecase.NewAuthUseCase(
		users,
		jwt.NewService("test-secret", time.Hour),
		clock.NewMockClock(time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)),
	)
}

func TestAuthUseCase_Register(t *testing.T) {
	users := newFakeUserRepo()
	uc := newAuthUseCase(users)

	reg := builder.NewAuthBuilder()
	reg.Email = "  Rider@Example.com "

	u, err := uc.Register(context.Background(), reg.BuildRegisterDTO().ToInput())
	require.NoError(t, err)

	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "rider@example.com", u.Email)
	assert.Equal(t, user.RoleCustomer, u.Role)
	assert.Equal(t, user.StatusActive, u.Status)
	assert.Equal(t, "en", u.PreferredLanguage)
	assert.True(t, u.WalletBalance.IsZero())
	assert.NotEmpty(t, users.hashes[u.ID])
	assert.NotEqual(t, reg.Password, users.hashes[u.ID])
}

func TestAuthUseCase_RegisterDuplicateEmail(t *testing.T) {
	existing := activeCustomer("user-1")
	users := newFakeUserRepo(existing)
	uc := newAuthUseCase(users)

	reg := builder.NewAuthBuilder()
	reg.Email = existing.Email

	_, err := uc.Register(context.Background(), reg.BuildRegisterDTO().ToInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestAuthUseCase_Login(t *testing.T) {
	existing := activeCustomer("user-1")
	users := newFakeUserRepo(existing)
	hash, err := password.HashPassword("s3cret-pass")
	require.NoError(t, err)
	users.hashes["user-1"] = hash

	uc := newAuthUseCase(users)

	token, u, err := uc.Login(context.Background(), existing.Email, "s3cret-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", u.ID)

	_, _, err = uc.Login(context.Background(), existing.Email, "wrong-pass")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)

	_, _, err = uc.Login(context.Background(), "nobody@example.com", "s3cret-pass")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
}

func TestAuthUseCase_LoginInactiveUser(t *testing.T) {
	existing := activeCustomer("user-1")
	existing.Status = user.StatusSuspended
	users := newFakeUserRepo(existing)
	hash, err := password.HashPassword("s3cret-pass")
	require.NoError(t, err)
	users.hashes["user-1"] = hash

	uc := newAuthUseCase(users)

	_, _, err = uc.Login(context.Background(), existing.Email, "s3cret-pass")
	require.Error(t, err)
	assert.ErrorIs(t, err, usecase.ErrUserInactive)
}

func TestAuthUseCase_GetCurrentUser(t *testing.T) {
	users := newFakeUserRepo(activeCustomer("user-1"))
	uc := newAuthUseCase(users)

	u, err := uc.GetCurrentUser(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", u.ID)

	_, err = uc.GetCurrentUser(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}
