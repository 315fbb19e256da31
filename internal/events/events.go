package events

import (
	"time"

	"github.com/google/uuid"
)

type Header struct {
	ID             string    `json:"id"`
	PublishedAt    time.Time `json:"published_at"`
	IdempotencyKey string    `json:"idempotency_key"`
}

func NewHeader() Header {
	return Header{
		ID:          uuid.NewString(),
		PublishedAt: time.Now().UTC(),
	}
}

func NewHeaderWithIdempotencyKey(idempotencyKey string) Header {
	return Header{
		ID:             uuid.NewString(),
		PublishedAt:    time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
	}
}

// BookingPaid is committed to the outbox together with the pending -> paid transition.
type BookingPaid struct {
	Header    Header    `json:"header"`
	BookingID string    `json:"booking_id"`
	EventType string    `json:"event_type"`
	EventID   string    `json:"event_id"`
	PaymentID string    `json:"payment_id"`
	Amount    float64   `json:"amount"`
	PaidAt    time.Time `json:"paid_at"`
}
