//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

func TestWalletUseCase_AddFunds(t *testing.T) {
	wallets := newFakeWalletRepo()
	wallets.balances["user-1"] = money(t, "100")
	uc := usecase.NewWalletUseCase(wallets)

	entry, err := uc.AddFunds(context.Background(), usecase.WalletMovement{
		UserID:      "user-1",
		Amount:      money(t, "250"),
		Reason:      "top up",
		AdminUserID: "admin-1",
	})
	require.NoError(t, err)
	assert.Equal(t, "add", entry.Action)
	assert.True(t, entry.NewBalance.Equal(money(t, "350")), "balance %s", entry.NewBalance)
}

func TestWalletUseCase_RejectsNonPositiveAmounts(t *testing.T) {
	uc := usecase.NewWalletUseCase(newFakeWalletRepo())

	_, err := uc.AddFunds(context.Background(), usecase.WalletMovement{
		UserID: "user-1",
		Amount: money(t, "0"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)

	_, err = uc.DeductFunds(context.Background(), usecase.WalletMovement{
		UserID: "user-1",
		Amount: money(t, "-5"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestWalletUseCase_BalanceUnknownUser(t *testing.T) {
	uc := usecase.NewWalletUseCase(newFakeWalletRepo())

	_, err := uc.Balance(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)
}

func TestWalletUseCase_HistoryClampsLimit(t *testing.T) {
	wallets := newFakeWalletRepo()
	wallets.balances["user-1"] = money(t, "0")
	uc := usecase.NewWalletUseCase(wallets)

	for i := 0; i < 60; i++ {
		_, err := uc.AddFunds(context.Background(), usecase.WalletMovement{
			UserID: "user-1",
			Amount: money(t, "1"),
			Reason: "top up",
		})
		require.NoError(t, err)
	}

	entries, err := uc.History(context.Background(), "user-1", 0)
	require.NoError(t, err)
	assert.Len(t, entries, 50)

	entries, err = uc.History(context.Background(), "user-1", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 10)
}
