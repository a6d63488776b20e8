package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/d3coo/car-rental-backend/internal/handler/httperr"
	"github.com/d3coo/car-rental-backend/internal/pkg/errs"
)

// respondDomainError maps the domain error taxonomy to an HTTP status and
// reports through httperr, keeping the original error on the gin context
// for the logging and error middleware.
func respondDomainError(c *gin.Context, err error) {
	status, msg := domainErrorStatus(err)
	httperr.AbortWithError(c, status, err, msg, nil)
}

func domainErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, errs.ErrCarNotFound),
		errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrContractNotFound),
		errors.Is(err, errs.ErrOfferNotFound),
		errors.Is(err, errs.ErrPackageNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, errs.ErrInvalidInput),
		errors.Is(err, errs.ErrUnsupportedOfferType),
		errors.Is(err, errs.ErrCurrencyMismatch),
		errors.Is(err, errs.ErrDomainValidationFailed):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, errs.ErrInsufficientBalance):
		return http.StatusPaymentRequired, "Insufficient wallet balance"
	case errors.Is(err, errs.ErrBusinessRuleViolation):
		return http.StatusConflict, err.Error()
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
