package request

import (
	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type WalletMovementRequest struct {
	Amount            float64 `json:"amount" binding:"required,gt=0"`
	Currency          string  `json:"currency,omitempty"`
	Reason            string  `json:"reason" binding:"required"`
	RelatedBookingID  string  `json:"relatedBookingId,omitempty"`
	RelatedContractID string  `json:"relatedContractId,omitempty"`
}

func (r WalletMovementRequest) ToMovement(userID, adminUserID string) usecase.WalletMovement {
	currency := r.Currency
	if currency == "" {
		currency = pricing.DefaultCurrency
	}
	return usecase.WalletMovement{
		UserID:            userID,
		Amount:            pricing.NewMoneyFromFloat(r.Amount, currency),
		Reason:            r.Reason,
		AdminUserID:       adminUserID,
		RelatedBookingID:  r.RelatedBookingID,
		RelatedContractID: r.RelatedContractID,
	}
}
