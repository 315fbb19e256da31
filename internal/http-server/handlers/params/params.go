// Package params reads path and query parameters shared by several handlers.
package params

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"trekBooker/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidEventType = errors.New("invalid event type, expected trek or tour")
	ErrInvalidEventID   = errors.New("invalid event id format")
	ErrInvalidStatus    = errors.New("invalid payment status, expected pending, paid or failed")
	ErrInvalidPage      = errors.New("page and limit must be positive integers")
)

// EventRef reads the {type} and {id} path parameters.
func EventRef(r *http.Request) (models.EventRef, error) {
	kind, err := models.ParseEventKind(chi.URLParam(r, "type"))
	if err != nil {
		return models.EventRef{}, ErrInvalidEventType
	}

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		return models.EventRef{}, ErrInvalidEventID
	}

	return models.NewEventRef(kind, id)
}

// Kind reads the optional ?type= filter.
func Kind(r *http.Request) (*models.EventKind, error) {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		return nil, nil
	}

	kind, err := models.ParseEventKind(raw)
	if err != nil {
		return nil, ErrInvalidEventType
	}

	return &kind, nil
}

// Status reads the optional ?status= filter.
func Status(r *http.Request) (*models.PaymentStatus, error) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, nil
	}

	status, ok := models.ParsePaymentStatus(raw)
	if !ok {
		return nil, ErrInvalidStatus
	}

	return &status, nil
}

// Page reads ?page= and ?limit=; absent values fall back to the defaults.
func Page(r *http.Request) (page, limit int, err error) {
	q := r.URL.Query()

	page, err = positiveInt(q.Get("page"), 1)
	if err != nil {
		return 0, 0, err
	}
	if page > models.MaxPage {
		return 0, 0, fmt.Errorf("%w: page above %d", ErrInvalidPage, models.MaxPage)
	}

	limit, err = positiveInt(q.Get("limit"), models.DefaultPageLimit)
	if err != nil {
		return 0, 0, err
	}

	page, limit = models.NormalizePage(page, limit)

	return page, limit, nil
}

func positiveInt(raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPage, raw)
	}

	return v, nil
}
