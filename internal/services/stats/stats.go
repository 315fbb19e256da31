// Package stats aggregates bookings per event for the admin views.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/models"

	"github.com/samber/lo"
)

type Catalog interface {
	GetEvent(ctx context.Context, ref models.EventRef) (models.Event, error)
}

type Ledger interface {
	ListEventBookings(ctx context.Context, ref models.EventRef, status *models.PaymentStatus, limit, offset int) ([]models.Booking, error)
	SummarizeEventBookings(ctx context.Context, ref models.EventRef, status *models.PaymentStatus) (models.BookingSummary, error)
	EventStats(ctx context.Context, kind *models.EventKind, status *models.PaymentStatus) ([]models.EventStats, error)
}

type Service struct {
	log     *slog.Logger
	catalog Catalog
	ledger  Ledger
}

func New(log *slog.Logger, catalog Catalog, ledger Ledger) *Service {
	return &Service{
		log:     log,
		catalog: catalog,
		ledger:  ledger,
	}
}

type EventBookings struct {
	Event      models.Event          `json:"event"`
	Bookings   []models.Booking      `json:"bookings"`
	Summary    models.BookingSummary `json:"summary"`
	Pagination models.Page           `json:"pagination"`
}

// EventBookings lists one event's bookings, newest first. The summary covers the whole
// status-filtered set, not just the returned page.
func (s *Service) EventBookings(
	ctx context.Context,
	admin access.Admin,
	ref models.EventRef,
	status *models.PaymentStatus,
	page, limit int,
) (EventBookings, error) {
	const op = "services.stats.EventBookings"

	if !admin.Valid() {
		return EventBookings{}, access.ErrUnauthorized
	}

	event, err := s.catalog.GetEvent(ctx, ref)
	if err != nil {
		return EventBookings{}, err
	}

	summary, err := s.ledger.SummarizeEventBookings(ctx, ref, status)
	if err != nil {
		return EventBookings{}, fmt.Errorf("%s: %w", op, err)
	}

	p := models.NewPage(page, limit, summary.TotalBookings)

	bookings, err := s.ledger.ListEventBookings(ctx, ref, status, p.Limit, p.Offset())
	if err != nil {
		return EventBookings{}, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Debug("event bookings listed",
		slog.String("op", op),
		slog.String("event", ref.String()),
		slog.Int("count", len(bookings)),
	)

	return EventBookings{
		Event:      event,
		Bookings:   bookings,
		Summary:    summary,
		Pagination: p,
	}, nil
}

type Overview struct {
	Events     []models.EventStats   `json:"events"`
	Totals     models.BookingSummary `json:"totals"`
	Pagination models.Page           `json:"pagination"`
}

// Overview returns per-event totals across treks and tours (or one kind) sorted by start
// date. Totals span every event, not just the returned page.
func (s *Service) Overview(
	ctx context.Context,
	admin access.Admin,
	kind *models.EventKind,
	status *models.PaymentStatus,
	page, limit int,
) (Overview, error) {
	const op = "services.stats.Overview"

	if !admin.Valid() {
		return Overview{}, access.ErrUnauthorized
	}

	rows, err := s.ledger.EventStats(ctx, kind, status)
	if err != nil {
		return Overview{}, fmt.Errorf("%s: %w", op, err)
	}

	slices.SortStableFunc(rows, func(a, b models.EventStats) int {
		return a.StartDate.Compare(b.StartDate)
	})

	p := models.NewPage(page, limit, len(rows))

	return Overview{
		Events: lo.Subset(rows, p.Offset(), uint(p.Limit)),
		Totals: models.BookingSummary{
			TotalBookings: lo.SumBy(rows, func(r models.EventStats) int { return r.TotalBookings }),
			TotalMembers:  lo.SumBy(rows, func(r models.EventStats) int { return r.TotalMembers }),
			TotalRevenue:  lo.SumBy(rows, func(r models.EventStats) float64 { return r.TotalRevenue }),
		},
		Pagination: p,
	}, nil
}
