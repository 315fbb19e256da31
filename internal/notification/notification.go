// Package notification renders and delivers booking emails.
package notification

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"time"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/models"
)

const (
	TemplateBookingConfirmation = "booking_confirmation.html"
	TemplateOpsAlert            = "ops_alert.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"date": func(t time.Time) string { return t.Format("02 Jan 2006") },
	"money": func(v float64) string { return fmt.Sprintf("%.2f", v) },
}).ParseFS(templatesFS, "templates/*.html"))

var ErrNoRecipient = errors.New("email has no recipient")

type Email struct {
	To       string
	Subject  string
	Template string
	Data     any
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Sender
type Sender interface {
	Send(ctx context.Context, email Email) error
}

// Render executes the named template against the email's data.
func Render(email Email) (string, error) {
	const op = "notification.Render"

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, email.Template, email.Data); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return buf.String(), nil
}

// BookingMail is the data both booking templates are rendered with.
type BookingMail struct {
	Booking   models.Booking
	EventName string
	EventKind models.EventKind
	StartDate time.Time
	EndDate   time.Time
}

func NewBookingMail(booking models.Booking, event models.Event) BookingMail {
	return BookingMail{
		Booking:   booking,
		EventName: event.Name,
		EventKind: event.Kind,
		StartDate: event.StartDate,
		EndDate:   event.EndDate,
	}
}

// LogSender renders emails and writes them to the log. Used when SMTP is not configured.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

// Delivers is false: emails only reach the log.
func (s *LogSender) Delivers() bool {
	return false
}

func (s *LogSender) Send(_ context.Context, email Email) error {
	const op = "notification.LogSender.Send"

	if email.To == "" {
		return fmt.Errorf("%s: %w", op, ErrNoRecipient)
	}

	body, err := Render(email)
	if err != nil {
		s.log.Error("failed to render email", slog.String("op", op), sl.Err(err))
		return err
	}

	s.log.Info("email not sent, mail disabled",
		slog.String("op", op),
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.Int("body_len", len(body)),
	)

	return nil
}
