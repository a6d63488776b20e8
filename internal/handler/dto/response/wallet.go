package response

import (
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type BalanceResponse struct {
	Balance  float64 `json:"balance"`
	Currency string  `json:"currency"`
}

func FromBalance(balance pricing.Money) BalanceResponse {
	return BalanceResponse{
		Balance:  balance.Float64(),
		Currency: balance.Currency(),
	}
}

type WalletEntryResponse struct {
	ID                string    `json:"id"`
	Action            string    `json:"action"`
	Amount            float64   `json:"amount"`
	Currency          string    `json:"currency"`
	Reason            string    `json:"reason"`
	AdminUserID       string    `json:"adminUserId,omitempty"`
	RelatedBookingID  string    `json:"relatedBookingId,omitempty"`
	RelatedContractID string    `json:"relatedContractId,omitempty"`
	PreviousBalance   float64   `json:"previousBalance"`
	NewBalance        float64   `json:"newBalance"`
	Timestamp         time.Time `json:"timestamp"`
}

func FromWalletEntry(e *usecase.WalletEntry) WalletEntryResponse {
	return WalletEntryResponse{
		ID:                e.ID,
		Action:            e.Action,
		Amount:            e.Amount.Float64(),
		Currency:          e.Amount.Currency(),
		Reason:            e.Reason,
		AdminUserID:       e.AdminUserID,
		RelatedBookingID:  e.RelatedBookingID,
		RelatedContractID: e.RelatedContractID,
		PreviousBalance:   e.PreviousBalance.Float64(),
		NewBalance:        e.NewBalance.Float64(),
		Timestamp:         e.Timestamp,
	}
}

func FromWalletEntries(entries []*usecase.WalletEntry) []WalletEntryResponse {
	resp := make([]WalletEntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, FromWalletEntry(e))
	}
	return resp
}
