// Package booking turns reservation requests into priced, payment-gated bookings and
// reconciles them with the payment gateway.
package booking

import (
	"context"
	"log/slog"
	"trekBooker/internal/clock"
	"trekBooker/internal/models"
	"trekBooker/internal/notification"
	"trekBooker/internal/payment"
)

type Catalog interface {
	GetEvent(ctx context.Context, ref models.EventRef) (models.Event, error)
}

type Ledger interface {
	CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error)
	SetGatewayOrder(ctx context.Context, bookingID, orderID string) error
	DeleteBooking(ctx context.Context, bookingID string) error
	MarkPaid(ctx context.Context, conf models.PaymentConfirmation) (models.Booking, bool, error)
}

type Gateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (payment.Order, error)
	VerifySignature(orderID, paymentID, signature string) bool
}

type Notifier interface {
	BookingPaid(ctx context.Context, booking models.Booking, event models.Event) notification.Outcome
}

type Service struct {
	log      *slog.Logger
	catalog  Catalog
	ledger   Ledger
	gateway  Gateway
	notifier Notifier
	clock    clock.Clock
	currency string
}

func New(
	log *slog.Logger,
	catalog Catalog,
	ledger Ledger,
	gateway Gateway,
	notifier Notifier,
	clk clock.Clock,
	currency string,
) *Service {
	if clk == nil {
		clk = clock.NewSystem()
	}
	if currency == "" {
		currency = "INR"
	}

	return &Service{
		log:      log,
		catalog:  catalog,
		ledger:   ledger,
		gateway:  gateway,
		notifier: notifier,
		clock:    clk,
		currency: currency,
	}
}
