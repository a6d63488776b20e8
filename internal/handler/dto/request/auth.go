package request

import (
	"github.com/d3coo/car-rental-backend/internal/usecase"
)

type RegisterRequest struct {
	Email             string `json:"email" binding:"required,email"`
	Password          string `json:"password" binding:"required,min=8"`
	FirstName         string `json:"firstName" binding:"required"`
	LastName          string `json:"lastName" binding:"required"`
	PhoneNumber       string `json:"phoneNumber" binding:"required"`
	Nationality       string `json:"nationality,omitempty"`
	StatusNumber      string `json:"statusNumber,omitempty"`
	PreferredLanguage string `json:"preferredLanguage,omitempty" binding:"omitempty,oneof=en ar"`
}

func (r RegisterRequest) ToInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Email:             r.Email,
		Password:          r.Password,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		PhoneNumber:       r.PhoneNumber,
		Nationality:       r.Nationality,
		StatusNumber:      r.StatusNumber,
		PreferredLanguage: r.PreferredLanguage,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
