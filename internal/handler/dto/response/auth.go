package response

import (
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/user"
)

type UserResponse struct {
	ID                string    `json:"id"`
	Email             string    `json:"email"`
	FirstName         string    `json:"firstName"`
	LastName          string    `json:"lastName"`
	PhoneNumber       string    `json:"phoneNumber"`
	Nationality       string    `json:"nationality,omitempty"`
	Role              string    `json:"role"`
	Status            string    `json:"status"`
	WalletBalance     float64   `json:"walletBalance"`
	Currency          string    `json:"currency"`
	PreferredLanguage string    `json:"preferredLanguage"`
	CreatedAt         time.Time `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

func FromUser(u *user.User) UserResponse {
	return UserResponse{
		ID:                u.ID,
		Email:             u.Email,
		FirstName:         u.FirstName,
		LastName:          u.LastName,
		PhoneNumber:       u.PhoneNumber,
		Nationality:       u.Nationality,
		Role:              u.Role.String(),
		Status:            u.Status.String(),
		WalletBalance:     u.WalletBalance.Float64(),
		Currency:          u.WalletBalance.Currency(),
		PreferredLanguage: u.PreferredLanguage,
		CreatedAt:         u.CreatedAt,
	}
}
