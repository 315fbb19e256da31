package storage

import "errors"

var (
	ErrEventNotFound   = errors.New("event not found")
	ErrEventInactive   = errors.New("event is not active")
	ErrBookingNotFound = errors.New("booking not found")
	ErrOrderMismatch   = errors.New("gateway order does not belong to booking")
)
