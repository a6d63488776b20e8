package usecase

import (
	"context"
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

// WalletEntry is one row of a user's wallet history.
type WalletEntry struct {
	ID                string
	Action            string
	Amount            pricing.Money
	Reason            string
	AdminUserID       string
	RelatedBookingID  string
	RelatedContractID string
	PreviousBalance   pricing.Money
	NewBalance        pricing.Money
	Timestamp         time.Time
}

// WalletMovement describes a single credit or debit to apply atomically.
type WalletMovement struct {
	UserID            string
	Amount            pricing.Money
	Reason            string
	AdminUserID       string
	RelatedBookingID  string
	RelatedContractID string
}

// WalletRepository applies balance changes inside a storage transaction:
// the balance update and its history entry commit together or not at all.
type WalletRepository interface {
	Balance(ctx context.Context, userID string) (pricing.Money, error)
	Credit(ctx context.Context, mv WalletMovement) (*WalletEntry, error)
	Debit(ctx context.Context, mv WalletMovement) (*WalletEntry, error)
	History(ctx context.Context, userID string, limit int) ([]*WalletEntry, error)
}

type WalletUseCase interface {
	Balance(ctx context.Context, userID string) (pricing.Money, error)
	AddFunds(ctx context.Context, mv WalletMovement) (*WalletEntry, error)
	DeductFunds(ctx context.Context, mv WalletMovement) (*WalletEntry, error)
	History(ctx context.Context, userID string, limit int) ([]*WalletEntry, error)
}

type walletUseCaseImpl struct {
	wallets WalletRepository
}

func NewWalletUseCase(wallets WalletRepository) WalletUseCase {
	return &walletUseCaseImpl{wallets: wallets}
}

func (uc *walletUseCaseImpl) Balance(ctx context.Context, userID string) (pricing.Money, error) {
	balance, err := uc.wallets.Balance(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return pricing.Money{}, errs.Mark(err, errs.ErrUserNotFound)
		}
		return pricing.Money{}, err
	}
	return balance, nil
}

func (uc *walletUseCaseImpl) AddFunds(ctx context.Context, mv WalletMovement) (*WalletEntry, error) {
	if !mv.Amount.IsPositive() {
		return nil, errs.Mark(errs.New("amount must be positive"), errs.ErrInvalidInput)
	}
	entry, err := uc.wallets.Credit(ctx, mv)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	return entry, nil
}

func (uc *walletUseCaseImpl) DeductFunds(ctx context.Context, mv WalletMovement) (*WalletEntry, error) {
	if !mv.Amount.IsPositive() {
		return nil, errs.Mark(errs.New("amount must be positive"), errs.ErrInvalidInput)
	}
	entry, err := uc.wallets.Debit(ctx, mv)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	return entry, nil
}

func (uc *walletUseCaseImpl) History(ctx context.Context, userID string, limit int) ([]*WalletEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return uc.wallets.History(ctx, userID, limit)
}
