package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/lib/metrics"
	"trekBooker/internal/models"
	"trekBooker/internal/storage"
)

type Verified struct {
	Booking     models.Booking `json:"booking"`
	EventName   string         `json:"eventName"`
	AlreadyPaid bool           `json:"alreadyPaid"`
}

// VerifyPayment checks the gateway signature and marks the booking paid exactly once.
// Repeating a successful verification returns the paid booking with AlreadyPaid set.
func (s *Service) VerifyPayment(ctx context.Context, conf models.PaymentConfirmation) (Verified, error) {
	const op = "services.booking.VerifyPayment"

	conf = models.PaymentConfirmation{
		BookingID: strings.TrimSpace(conf.BookingID),
		OrderID:   strings.TrimSpace(conf.OrderID),
		PaymentID: strings.TrimSpace(conf.PaymentID),
		Signature: strings.TrimSpace(conf.Signature),
	}

	log := s.log.With(
		slog.String("op", op),
		slog.String("booking_id", conf.BookingID),
		slog.String("order_id", conf.OrderID),
	)

	if conf.BookingID == "" || conf.OrderID == "" || conf.PaymentID == "" || conf.Signature == "" {
		metrics.PaymentsVerified.WithLabelValues("invalid").Inc()
		return Verified{}, ErrMissingVerificationData
	}

	if !s.gateway.VerifySignature(conf.OrderID, conf.PaymentID, conf.Signature) {
		log.Warn("signature mismatch")
		metrics.PaymentsVerified.WithLabelValues("mismatch").Inc()
		return Verified{}, ErrSignatureMismatch
	}

	b, transitioned, err := s.ledger.MarkPaid(ctx, conf)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrBookingNotFound):
			metrics.PaymentsVerified.WithLabelValues("not_found").Inc()
			return Verified{}, err
		case errors.Is(err, storage.ErrOrderMismatch):
			log.Warn("order does not belong to booking")
			metrics.PaymentsVerified.WithLabelValues("mismatch").Inc()
			return Verified{}, ErrSignatureMismatch
		default:
			return Verified{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	if transitioned {
		metrics.PaymentsVerified.WithLabelValues("paid").Inc()
		log.Info("booking paid", slog.String("payment_id", conf.PaymentID))
	} else {
		metrics.PaymentsVerified.WithLabelValues("already_paid").Inc()
		log.Info("booking already paid")
	}

	res := Verified{
		Booking:     b,
		AlreadyPaid: !transitioned,
	}

	event, err := s.catalog.GetEvent(ctx, b.Event)
	if err != nil {
		log.Warn("failed to resolve event name", sl.Err(err))
		return res, nil
	}
	res.EventName = event.Name

	return res, nil
}
