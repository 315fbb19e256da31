package notification

import (
	"context"
	"errors"
	"testing"
	"time"
	"trekBooker/internal/lib/logger/handlers/slogdiscard"
	"trekBooker/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	d.sent = append(d.sent, m...)
	return d.err
}

func TestSMTPSenderSend(t *testing.T) {
	t.Parallel()

	d := &fakeDialer{}
	s := &SMTPSender{from: "bookings@example.com", dialer: d}

	err := s.Send(context.Background(), Email{
		To:       "asha@example.com",
		Subject:  "Booking confirmed",
		Template: TemplateOpsAlert,
		Data:     BookingMail{EventName: "Ridge Trek"},
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)
	assert.Equal(t, []string{"asha@example.com"}, d.sent[0].GetHeader("To"))
	assert.Equal(t, []string{"bookings@example.com"}, d.sent[0].GetHeader("From"))
}

func TestSMTPSenderErrors(t *testing.T) {
	t.Parallel()

	s := &SMTPSender{from: "bookings@example.com", dialer: &fakeDialer{err: errors.New("connection refused")}}

	err := s.Send(context.Background(), Email{To: "a@example.com", Template: TemplateOpsAlert, Data: BookingMail{}})
	assert.ErrorContains(t, err, "connection refused")

	err = s.Send(context.Background(), Email{Template: TemplateOpsAlert})
	assert.ErrorIs(t, err, ErrNoRecipient)
}

func TestDispatcherOverSMTPReportsSent(t *testing.T) {
	t.Parallel()

	payID := "pay_123"
	booking := models.Booking{
		ID:               "6f1c7a3e-8c1e-4a52-9b5b-0c8f6d1e2a11",
		Name:             "Asha Rao",
		Email:            "asha@example.com",
		City:             "Pune",
		MembersCount:     3,
		FinalPrice:       4500,
		PaymentStatus:    models.PaymentPaid,
		GatewayPaymentID: &payID,
	}
	event := models.Event{
		Name:      "Ridge Trek",
		Kind:      models.KindTrek,
		StartDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 11, 3, 0, 0, 0, 0, time.UTC),
	}

	dialer := &fakeDialer{}
	d := NewDispatcher(slogdiscard.NewDiscardLogger(), &SMTPSender{from: "bookings@example.com", dialer: dialer}, "ops@example.com")

	assert.Equal(t, OutcomeSent, d.BookingPaid(context.Background(), booking, event))
	assert.Len(t, dialer.sent, 2)
}
