package pubsub

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"trekBooker/internal/events"
	"trekBooker/internal/models"
	"trekBooker/internal/notification"
	"trekBooker/internal/storage"

	"github.com/ThreeDotsLabs/watermill/components/cqrs"
)

type BookingReader interface {
	GetBooking(ctx context.Context, bookingID string) (models.Booking, error)
	GetEvent(ctx context.Context, ref models.EventRef) (models.Event, error)
}

type Notifier interface {
	BookingPaid(ctx context.Context, booking models.Booking, event models.Event) notification.Outcome
}

type Handler struct {
	log      *slog.Logger
	bookings BookingReader
	notifier Notifier
}

func NewHandler(log *slog.Logger, bookings BookingReader, notifier Notifier) Handler {
	return Handler{
		log:      log,
		bookings: bookings,
		notifier: notifier,
	}
}

func (h Handler) EventHandlers() []cqrs.EventHandler {
	return []cqrs.EventHandler{
		cqrs.NewEventHandler("NotifyBookingPaid", h.NotifyBookingPaid),
	}
}

// NotifyBookingPaid sends the confirmation and operations emails for a paid booking.
// Storage errors are returned so the message is retried. Delivery failures are not, to
// avoid duplicate emails to the customer.
func (h Handler) NotifyBookingPaid(ctx context.Context, event *events.BookingPaid) error {
	const op = "pubsub.Handler.NotifyBookingPaid"

	log := h.log.With(
		slog.String("op", op),
		slog.String("booking_id", event.BookingID),
	)

	booking, err := h.bookings.GetBooking(ctx, event.BookingID)
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) {
			log.Warn("booking is gone, skipping notifications")
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	ev, err := h.bookings.GetEvent(ctx, booking.Event)
	if err != nil {
		if errors.Is(err, storage.ErrEventNotFound) {
			log.Warn("event is gone, skipping notifications")
			return nil
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	outcome := h.notifier.BookingPaid(ctx, booking, ev)
	log.Info("booking notifications dispatched", slog.String("outcome", string(outcome)))

	return nil
}
