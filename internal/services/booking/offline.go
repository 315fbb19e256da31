package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/metrics"
	"trekBooker/internal/models"
	"trekBooker/internal/notification"
	"trekBooker/internal/storage"

	"github.com/lithammer/shortuuid/v3"
)

const (
	offlineOrderPrefix     = "cash_order_"
	offlinePaymentPrefix   = "cash_pay_"
	offlineSignaturePrefix = "cash_sig_"
)

type Offline struct {
	Booking            models.Booking       `json:"booking"`
	EventName          string               `json:"eventName"`
	NotificationStatus notification.Outcome `json:"notificationStatus"`
}

// RecordOffline books a cash sale directly as paid. The synthetic gateway ids can't collide
// with real gateway ids, which start with order_ and pay_.
func (s *Service) RecordOffline(ctx context.Context, admin access.Admin, req Request) (Offline, error) {
	const op = "services.booking.RecordOffline"

	if !admin.Valid() {
		return Offline{}, access.ErrUnauthorized
	}

	log := s.log.With(slog.String("op", op))

	event, quote, err := s.loadBookable(ctx, req)
	if err != nil {
		return Offline{}, err
	}

	orderID := offlineOrderPrefix + shortuuid.New()
	paymentID := offlinePaymentPrefix + shortuuid.New()
	signature := offlineSignaturePrefix + shortuuid.New()

	b := newBooking(req, event, quote)
	b.PaymentStatus = models.PaymentPaid
	b.Offline = true
	b.GatewayOrderID = &orderID
	b.GatewayPaymentID = &paymentID
	b.GatewaySignature = &signature
	b.CreatedAt = s.clock.Now()

	b, err = s.ledger.CreateBooking(ctx, b)
	if err != nil {
		if errors.Is(err, storage.ErrEventInactive) || errors.Is(err, storage.ErrEventNotFound) {
			return Offline{}, err
		}
		return Offline{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.BookingsCreated.WithLabelValues(string(b.Event.Kind()), "offline").Inc()

	log = log.With(slog.String("booking_id", b.ID))
	log.Info("offline booking recorded", slog.Float64("final_price", b.FinalPrice))

	status := notification.OutcomeNotAttempted
	if s.notifier != nil {
		status = s.notifier.BookingPaid(ctx, b, event)
	}
	if status != notification.OutcomeSent {
		log.Warn("offline booking notifications not delivered", slog.String("status", string(status)))
	}

	return Offline{
		Booking:            b,
		EventName:          event.Name,
		NotificationStatus: status,
	}, nil
}
