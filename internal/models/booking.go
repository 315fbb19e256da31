package models

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentPaid, PaymentFailed:
		return PaymentStatus(s), true
	default:
		return "", false
	}
}

const (
	MinMembers = 1
	MaxMembers = 20
)

type Booking struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	PhoneNumber      string        `json:"phoneNumber"`
	City             City          `json:"city"`
	MembersCount     int           `json:"membersCount"`
	Event            EventRef      `json:"-"`
	FinalPrice       float64       `json:"finalPrice"`
	PaymentStatus    PaymentStatus `json:"paymentStatus"`
	GatewayOrderID   *string       `json:"gatewayOrderId,omitempty"`
	GatewayPaymentID *string       `json:"gatewayPaymentId,omitempty"`
	GatewaySignature *string       `json:"gatewaySignature,omitempty"`
	Offline          bool          `json:"offline"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// PaymentConfirmation is what the gateway hands back to the customer after checkout.
type PaymentConfirmation struct {
	BookingID string
	OrderID   string
	PaymentID string
	Signature string
}

func (b Booking) MarshalJSON() ([]byte, error) {
	type alias Booking

	out := struct {
		alias
		Type   EventKind `json:"type,omitempty"`
		TrekID *string   `json:"trekId,omitempty"`
		TourID *string   `json:"tourId,omitempty"`
	}{alias: alias(b)}

	if !b.Event.IsZero() {
		out.Type = b.Event.Kind()
		out.TrekID, out.TourID = b.Event.Columns()
	}

	return json.Marshal(out)
}
