package notification

import (
	"context"
	"fmt"
	"log/slog"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/lib/metrics"
	"trekBooker/internal/models"
)

type Outcome string

const (
	OutcomeSent         Outcome = "sent"
	OutcomeFailed       Outcome = "failed"
	OutcomeNotAttempted Outcome = "not_attempted"
)

// Dispatcher sends the customer confirmation and the operations alert for a paid booking.
type Dispatcher struct {
	log      *slog.Logger
	sender   Sender
	opsEmail string
}

func NewDispatcher(log *slog.Logger, sender Sender, opsEmail string) *Dispatcher {
	return &Dispatcher{
		log:      log,
		sender:   sender,
		opsEmail: opsEmail,
	}
}

// BookingPaid never returns an error; failures are logged and reported as OutcomeFailed.
func (d *Dispatcher) BookingPaid(ctx context.Context, booking models.Booking, event models.Event) (outcome Outcome) {
	const op = "notification.Dispatcher.BookingPaid"

	defer func() {
		metrics.Notifications.WithLabelValues(string(outcome)).Inc()
	}()

	log := d.log.With(
		slog.String("op", op),
		slog.String("booking_id", booking.ID),
	)

	if d.sender == nil {
		log.Warn("no sender configured, skipping notifications")
		return OutcomeNotAttempted
	}

	data := NewBookingMail(booking, event)
	outcome = OutcomeSent

	err := d.sender.Send(ctx, Email{
		To:       booking.Email,
		Subject:  fmt.Sprintf("Booking confirmed: %s", event.Name),
		Template: TemplateBookingConfirmation,
		Data:     data,
	})
	if err != nil {
		log.Error("failed to send booking confirmation", sl.Err(err))
		outcome = OutcomeFailed
	}

	if d.opsEmail != "" {
		channel := "online"
		if booking.Offline {
			channel = "offline"
		}

		err = d.sender.Send(ctx, Email{
			To:       d.opsEmail,
			Subject:  fmt.Sprintf("New %s booking: %s (%d members)", channel, event.Name, booking.MembersCount),
			Template: TemplateOpsAlert,
			Data:     data,
		})
		if err != nil {
			log.Error("failed to send ops alert", sl.Err(err))
			outcome = OutcomeFailed
		}
	}

	if outcome == OutcomeSent && !delivers(d.sender) {
		return OutcomeNotAttempted
	}

	return outcome
}

// delivers reports whether the sender hands emails to a mail server. Senders that do not
// say otherwise are assumed to deliver.
func delivers(s Sender) bool {
	d, ok := s.(interface{ Delivers() bool })
	return !ok || d.Delivers()
}
