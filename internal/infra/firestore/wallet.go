package firestore

import (
	"context"
	"errors"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/pkg/clock"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type walletEntryDoc struct {
	Action            string    `firestore:"action"`
	Amount            float64   `firestore:"amount"`
	Reason            string    `firestore:"reason"`
	AdminUserID       string    `firestore:"adminUserId"`
	Timestamp         time.Time `firestore:"timestamp"`
	PreviousBalance   float64   `firestore:"previousBalance"`
	NewBalance        float64   `firestore:"newBalance"`
	Currency          string    `firestore:"currency"`
	RelatedBookingID  string    `firestore:"relatedBookingId"`
	RelatedContractID string    `firestore:"relatedContractId"`
}

type walletRepository struct {
	client *firestore.Client
	clock  clock.Clock
}

func NewWalletRepository(client *firestore.Client, clk clock.Clock) usecase.WalletRepository {
	return &walletRepository{client: client, clock: clk}
}

func (r *walletRepository) Balance(ctx context.Context, userID string) (pricing.Money, error) {
	snap, err := r.client.Collection(collUsers).Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return pricing.Money{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return pricing.Money{}, infra.WrapRepoErr("failed to get user", err)
	}
	balance, currency := walletFields(snap)
	return pricing.NewMoneyFromFloat(balance, currency), nil
}

func (r *walletRepository) Credit(ctx context.Context, mv usecase.WalletMovement) (*usecase.WalletEntry, error) {
	return r.apply(ctx, "add", mv, func(balance, amount float64) (float64, error) {
		return balance + amount, nil
	})
}

func (r *walletRepository) Debit(ctx context.Context, mv usecase.WalletMovement) (*usecase.WalletEntry, error) {
	return r.apply(ctx, "deduct", mv, func(balance, amount float64) (float64, error) {
		if balance < amount {
			return 0, errs.Mark(
				errs.Newf("wallet balance %.2f is below %.2f", balance, amount),
				errs.ErrInsufficientBalance,
			)
		}
		return balance - amount, nil
	})
}

// apply runs the read-modify-write inside a Firestore transaction so the
// balance update and its history entry commit atomically.
func (r *walletRepository) apply(
	ctx context.Context,
	action string,
	mv usecase.WalletMovement,
	next func(balance, amount float64) (float64, error),
) (*usecase.WalletEntry, error) {
	userRef := r.client.Collection(collUsers).Doc(mv.UserID)
	amount := mv.Amount.Float64()

	var entry *usecase.WalletEntry
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(userRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return infra.WrapRepoErr("user not found", err, infra.KindNotFound)
			}
			return err
		}
		balance, currency := walletFields(snap)
		if currency == "" {
			currency = mv.Amount.Currency()
		}

		newBalance, err := next(balance, amount)
		if err != nil {
			return err
		}

		if err := tx.Update(userRef, []firestore.Update{
			{Path: "Wallet_Balance", Value: newBalance},
		}); err != nil {
			return err
		}

		now := r.clock.Now()
		entryRef := userRef.Collection(subcollTransactions).NewDoc()
		doc := walletEntryDoc{
			Action:            action,
			Amount:            amount,
			Reason:            mv.Reason,
			AdminUserID:       orSystem(mv.AdminUserID),
			Timestamp:         now,
			PreviousBalance:   balance,
			NewBalance:        newBalance,
			Currency:          currency,
			RelatedBookingID:  mv.RelatedBookingID,
			RelatedContractID: mv.RelatedContractID,
		}
		if err := tx.Create(entryRef, doc); err != nil {
			return err
		}

		entry = &usecase.WalletEntry{
			ID:                entryRef.ID,
			Action:            action,
			Amount:            pricing.NewMoneyFromFloat(amount, currency),
			Reason:            mv.Reason,
			AdminUserID:       doc.AdminUserID,
			RelatedBookingID:  mv.RelatedBookingID,
			RelatedContractID: mv.RelatedContractID,
			PreviousBalance:   pricing.NewMoneyFromFloat(balance, currency),
			NewBalance:        pricing.NewMoneyFromFloat(newBalance, currency),
			Timestamp:         now,
		}
		return nil
	})
	if err != nil {
		var repoErr infra.RepositoryError
		if errors.As(err, &repoErr) || errors.Is(err, errs.ErrInsufficientBalance) {
			return nil, err
		}
		return nil, infra.WrapRepoErr("wallet transaction failed", err, infra.KindConflict)
	}
	return entry, nil
}

func (r *walletRepository) History(ctx context.Context, userID string, limit int) ([]*usecase.WalletEntry, error) {
	iter := r.client.Collection(collUsers).Doc(userID).
		Collection(subcollTransactions).
		OrderBy("timestamp", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var entries []*usecase.WalletEntry
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, infra.WrapRepoErr("failed to list wallet history", err)
		}
		var doc walletEntryDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, infra.WrapRepoErr("failed to decode wallet entry", err, infra.KindBadDocument)
		}
		entries = append(entries, &usecase.WalletEntry{
			ID:                snap.Ref.ID,
			Action:            doc.Action,
			Amount:            pricing.NewMoneyFromFloat(doc.Amount, doc.Currency),
			Reason:            doc.Reason,
			AdminUserID:       doc.AdminUserID,
			RelatedBookingID:  doc.RelatedBookingID,
			RelatedContractID: doc.RelatedContractID,
			PreviousBalance:   pricing.NewMoneyFromFloat(doc.PreviousBalance, doc.Currency),
			NewBalance:        pricing.NewMoneyFromFloat(doc.NewBalance, doc.Currency),
			Timestamp:         doc.Timestamp,
		})
	}
	return entries, nil
}

func walletFields(snap *firestore.DocumentSnapshot) (float64, string) {
	var balance float64
	if v, err := snap.DataAt("Wallet_Balance"); err == nil {
		switch n := v.(type) {
		case float64:
			balance = n
		case int64:
			balance = float64(n)
		}
	}
	currency := pricing.DefaultCurrency
	if v, err := snap.DataAt("Currency"); err == nil {
		if s, ok := v.(string); ok && s != "" {
			currency = s
		}
	}
	return balance, currency
}

func orSystem(adminUserID string) string {
	if adminUserID == "" {
		return "system"
	}
	return adminUserID
}
