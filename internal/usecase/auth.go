package usecase

import (
	"context"
	"strings"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/domain/user"
	"github.com/d3coo/car-rental-backend/internal/infra"
	"github.com/d3coo/car-rental-backend/internal/pkg/clock"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
	"github.com/d3coo/car-rental-backend/internal/pkg/jwt"
	"github.com/d3coo/car-rental-backend/internal/pkg/password"
)

var (
	ErrInvalidCredentials = errs.New("invalid email or password")
	ErrUserInactive       = errs.New("user account is not active")
	ErrEmailTaken         = errs.New("email is already registered")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

// UserRepository is the persistence port for user accounts. FindByEmail
// returns the stored password hash alongside the entity; the hash never
// appears on the entity itself.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, string, error)
	Create(ctx context.Context, u *user.User, passwordHash string) (string, error)
	Update(ctx context.Context, u *user.User) error
}

type RegisterInput struct {
	Email             string
	Password          string
	FirstName         string
	LastName          string
	PhoneNumber       string
	Nationality       string
	StatusNumber      string
	PreferredLanguage string
}

type AuthUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*user.User, error)
	Login(ctx context.Context, email, rawPassword string) (string, *user.User, error)
	GetCurrentUser(ctx context.Context, userID string) (*user.User, error)
}

type authUseCaseImpl struct {
	users      UserRepository
	jwtService *jwt.Service
	clock      clock.Clock
}

func NewAuthUseCase(users UserRepository, jwtService *jwt.Service, clk clock.Clock) AuthUseCase {
	return &authUseCaseImpl{
		users:      users,
		jwtService: jwtService,
		clock:      clk,
	}
}

func (a *authUseCaseImpl) Register(ctx context.Context, in RegisterInput) (*user.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if existing, _, err := a.users.FindByEmail(ctx, email); err == nil && existing != nil {
		return nil, errs.Mark(ErrEmailTaken, errs.ErrInvalidInput)
	} else if err != nil && !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	hash, err := password.HashPassword(in.Password)
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	now := a.clock.Now()
	lang := in.PreferredLanguage
	if lang == "" {
		lang = "en"
	}
	u := &user.User{
		Email:             email,
		FirstName:         in.FirstName,
		LastName:          in.LastName,
		PhoneNumber:       in.PhoneNumber,
		Nationality:       in.Nationality,
		StatusNumber:      in.StatusNumber,
		Role:              user.RoleCustomer,
		Status:            user.StatusActive,
		WalletBalance:     pricing.ZeroMoney(pricing.DefaultCurrency),
		PreferredLanguage: lang,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	id, err := a.users.Create(ctx, u, hash)
	if err != nil {
		return nil, err
	}
	u.ID = id
	return u, nil
}

func (a *authUseCaseImpl) Login(ctx context.Context, email, rawPassword string) (string, *user.User, error) {
	u, hash, err := a.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := password.ComparePassword(hash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if u.Status != user.StatusActive {
		return "", nil, ErrUserInactive
	}

	token, err := a.jwtService.GenerateToken(u.ID, u.Role)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}
	return token, u, nil
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, userID string) (*user.User, error) {
	u, err := a.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		}
		return nil, err
	}
	return u, nil
}
