//go:build unit || e2e

package builder

import (
	reqdto "github.com/d3coo/car-rental-backend/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "rider@example.com",
		Password: "password123",
	}
}

func (a *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Email:       a.Email,
		Password:    a.Password,
		FirstName:   "Sara",
		LastName:    "Alharbi",
		PhoneNumber: "+966500000000",
	}
}
