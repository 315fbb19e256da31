// Package bookingerr maps booking errors to HTTP statuses and response bodies.
package bookingerr

import (
	"errors"
	"net/http"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/api/response"
	"trekBooker/internal/lib/pricing"
	"trekBooker/internal/models"
	"trekBooker/internal/services/booking"
	"trekBooker/internal/storage"
)

// Map returns the status and body for a known error. ok is false for unexpected errors,
// which the caller reports as 500.
func Map(err error) (status int, resp response.Response, ok bool) {
	var (
		missing   *booking.MissingFieldError
		noPricing *pricing.NoPricingError
	)

	switch {
	case errors.As(err, &missing):
		return http.StatusBadRequest, response.ErrorWithDetails(err.Error(), map[string]string{"field": missing.Field}), true
	case errors.Is(err, models.ErrAmbiguousEventRef),
		errors.Is(err, booking.ErrInvalidEventID),
		errors.Is(err, booking.ErrInvalidPhone),
		errors.Is(err, booking.ErrInvalidEmail),
		errors.Is(err, booking.ErrInvalidMemberCount),
		errors.Is(err, booking.ErrMissingVerificationData):
		return http.StatusBadRequest, response.Error(rootMessage(err)), true
	case errors.Is(err, booking.ErrSignatureMismatch):
		return http.StatusBadRequest, response.Error(booking.ErrSignatureMismatch.Error()), true
	case errors.Is(err, storage.ErrEventNotFound):
		return http.StatusNotFound, response.Error(storage.ErrEventNotFound.Error()), true
	case errors.Is(err, storage.ErrBookingNotFound):
		return http.StatusNotFound, response.Error(storage.ErrBookingNotFound.Error()), true
	case errors.Is(err, storage.ErrEventInactive):
		return http.StatusConflict, response.Error(storage.ErrEventInactive.Error()), true
	case errors.As(err, &noPricing):
		return http.StatusUnprocessableEntity, response.ErrorWithDetails(
			pricing.ErrNoPricingForCity.Error(),
			map[string]any{"city": noPricing.City, "availableCities": noPricing.AvailableCities},
		), true
	case errors.Is(err, pricing.ErrInvalidPrice):
		return http.StatusUnprocessableEntity, response.Error(pricing.ErrInvalidPrice.Error()), true
	case errors.Is(err, booking.ErrGatewayUnavailable):
		return http.StatusServiceUnavailable, response.ErrorWithDetails(
			booking.ErrGatewayUnavailable.Error(),
			map[string]bool{"retryable": true},
		), true
	case errors.Is(err, access.ErrUnauthorized):
		return http.StatusUnauthorized, response.Error(access.ErrUnauthorized.Error()), true
	}

	return http.StatusInternalServerError, response.Response{}, false
}

func rootMessage(err error) string {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}
