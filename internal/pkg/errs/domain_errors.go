package errs

import "errors"

// Pricing error taxonomy. These are the sentinels every pricing operation
// fails with; callers categorize them via errors.Is.
var (
	// ErrInvalidInput covers malformed or out-of-domain arguments:
	// unrecognized booking unit, non-positive resolved price, discount
	// percent outside [0,100], non-positive custom rate, extension date
	// not after the current end date.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPackageNotFound is returned when a package booking requests a
	// month count the car's package table does not carry.
	ErrPackageNotFound = errors.New("package not found")

	// ErrUnsupportedOfferType is returned when an offer type does not map
	// to a known pricing formula.
	ErrUnsupportedOfferType = errors.New("unsupported offer type")

	// ErrCurrencyMismatch is returned by Money arithmetic across
	// differing currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Entity and use-case sentinel errors
var (
	ErrCarNotFound      = errors.New("car not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrContractNotFound = errors.New("contract not found")
	ErrOfferNotFound    = errors.New("offer not found")

	ErrBusinessRuleViolation = errors.New("business rule violation")
	ErrInsufficientBalance   = errors.New("insufficient wallet balance")

	ErrDomainValidationFailed  = errors.New("domain validation failed")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
