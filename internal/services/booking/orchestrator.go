package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/lib/metrics"
	"trekBooker/internal/lib/pricing"
	"trekBooker/internal/models"
	"trekBooker/internal/payment"
	"trekBooker/internal/storage"

	"github.com/google/uuid"
)

type Created struct {
	Order           payment.Order `json:"order"`
	BookingID       string        `json:"bookingId"`
	FinalPrice      float64       `json:"finalPrice"`
	EventName       string        `json:"eventName"`
	AvailableCities []models.City `json:"availableCities"`
}

// loadBookable validates the request and resolves its event and price.
func (s *Service) loadBookable(ctx context.Context, req Request) (models.Event, pricing.Quote, error) {
	ref, err := req.validate()
	if err != nil {
		return models.Event{}, pricing.Quote{}, err
	}

	event, err := s.catalog.GetEvent(ctx, ref)
	if err != nil {
		return models.Event{}, pricing.Quote{}, err
	}

	if !event.IsActive {
		return models.Event{}, pricing.Quote{}, storage.ErrEventInactive
	}

	quote, err := pricing.Resolve(event, req.City, req.MembersCount)
	if err != nil {
		return models.Event{}, pricing.Quote{}, err
	}

	return event, quote, nil
}

func newBooking(req Request, event models.Event, quote pricing.Quote) models.Booking {
	return models.Booking{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		City:         quote.City,
		MembersCount: req.MembersCount,
		Event:        event.Ref(),
		FinalPrice:   quote.FinalPrice,
	}
}

// Create stores a pending booking and opens a gateway order for its final price. When the
// gateway can't be reached the pending booking is removed again.
func (s *Service) Create(ctx context.Context, req Request) (Created, error) {
	const op = "services.booking.Create"

	log := s.log.With(slog.String("op", op))

	event, quote, err := s.loadBookable(ctx, req)
	if err != nil {
		return Created{}, err
	}

	b := newBooking(req, event, quote)
	b.PaymentStatus = models.PaymentPending
	b.CreatedAt = s.clock.Now()

	b, err = s.ledger.CreateBooking(ctx, b)
	if err != nil {
		if errors.Is(err, storage.ErrEventInactive) || errors.Is(err, storage.ErrEventNotFound) {
			return Created{}, err
		}
		return Created{}, fmt.Errorf("%s: %w", op, err)
	}

	log = log.With(slog.String("booking_id", b.ID), slog.String("event", b.Event.String()))

	order, err := s.gateway.CreateOrder(ctx, pricing.ToMinorUnits(b.FinalPrice), s.currency, b.ID, map[string]string{
		"bookingId": b.ID,
		"eventType": string(b.Event.Kind()),
		"eventId":   b.Event.ID(),
		"city":      string(b.City),
		"members":   fmt.Sprint(b.MembersCount),
	})
	if err != nil {
		log.Error("failed to create gateway order", sl.Err(err))
		s.discard(ctx, b.ID)
		return Created{}, fmt.Errorf("%s: %w", op, ErrGatewayUnavailable)
	}

	if err := s.ledger.SetGatewayOrder(ctx, b.ID, order.ID); err != nil {
		log.Error("failed to store gateway order", sl.Err(err), slog.String("order_id", order.ID))
		s.discard(ctx, b.ID)
		return Created{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.BookingsCreated.WithLabelValues(string(b.Event.Kind()), "online").Inc()

	log.Info("booking created", slog.String("order_id", order.ID), slog.Float64("final_price", b.FinalPrice))

	return Created{
		Order:           order,
		BookingID:       b.ID,
		FinalPrice:      b.FinalPrice,
		EventName:       event.Name,
		AvailableCities: event.AvailableCities(),
	}, nil
}

// discard drops a pending booking whose order could not be opened. It runs even if the
// request context is already cancelled.
func (s *Service) discard(ctx context.Context, bookingID string) {
	if err := s.ledger.DeleteBooking(context.WithoutCancel(ctx), bookingID); err != nil {
		s.log.Error("failed to remove pending booking",
			slog.String("booking_id", bookingID),
			sl.Err(err),
		)
	}
}
