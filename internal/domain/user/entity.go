package user

import (
	"strings"
	"time"

	"github.com/d3coo/car-rental-backend/internal/domain/pricing"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

var ErrNotVerified = errs.New("user must verify email and phone before activation")

type Status string

const (
	StatusActive              Status = "active"
	StatusInactive            Status = "inactive"
	StatusSuspended           Status = "suspended"
	StatusPendingVerification Status = "pending_verification"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusSuspended, StatusPendingVerification:
		return true
	default:
		return false
	}
}

func (s Status) String() string { return string(s) }

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

func (r Role) String() string { return string(r) }

// User carries the renter profile and the wallet balance. The balance is
// only ever moved through the wallet service's transactional path; the
// entity just holds the last committed value.
type User struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	PhoneNumber  string
	Nationality  string
	StatusNumber string // national ID or passport number

	Role   Role
	Status Status

	WalletBalance pricing.Money

	PreferredLanguage string
	EmailVerified     bool
	PhoneVerified     bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Email) == "" || !strings.Contains(u.Email, "@") {
		return errs.Mark(errs.New("a valid email is required"), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(u.FirstName) == "" {
		return errs.Mark(errs.New("first name is required"), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(u.LastName) == "" {
		return errs.Mark(errs.New("last name is required"), errs.ErrDomainValidationFailed)
	}
	if strings.TrimSpace(u.PhoneNumber) == "" {
		return errs.Mark(errs.New("phone number is required"), errs.ErrDomainValidationFailed)
	}
	if u.WalletBalance.IsNegative() {
		return errs.Mark(errs.New("wallet balance cannot be negative"), errs.ErrDomainValidationFailed)
	}
	if u.PreferredLanguage != "en" && u.PreferredLanguage != "ar" {
		return errs.Mark(errs.New("preferred language must be en or ar"), errs.ErrDomainValidationFailed)
	}
	return nil
}

func (u *User) CanBook() bool {
	return u.Status == StatusActive && u.EmailVerified && u.PhoneVerified
}

func (u *User) Activate(now time.Time) error {
	if !u.EmailVerified || !u.PhoneVerified {
		return errs.Mark(ErrNotVerified, errs.ErrBusinessRuleViolation)
	}
	u.Status = StatusActive
	u.UpdatedAt = now
	return nil
}

func (u *User) Suspend(now time.Time) {
	u.Status = StatusSuspended
	u.UpdatedAt = now
}

func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}
