package booking

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField            = errors.New("missing required field")
	ErrInvalidEventID          = errors.New("invalid event id format")
	ErrInvalidPhone            = errors.New("phone number must be exactly 10 digits")
	ErrInvalidMemberCount      = errors.New("members count must be between 1 and 20")
	ErrInvalidEmail            = errors.New("invalid email address")
	ErrMissingVerificationData = errors.New("missing payment verification data")
	ErrSignatureMismatch       = errors.New("payment verification failed")
	ErrGatewayUnavailable      = errors.New("payment gateway unavailable, try again later")
)

// MissingFieldError names the first required field absent from a request.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: %s", ErrMissingField, e.Field)
}

func (e *MissingFieldError) Unwrap() error {
	return ErrMissingField
}
