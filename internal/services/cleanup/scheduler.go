// Package cleanup retires bookings of concluded events, on a schedule and on admin request.
package cleanup

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"trekBooker/internal/clock"
	"trekBooker/internal/lib/logger/sl"
	"trekBooker/internal/lib/metrics"
	"trekBooker/internal/models"
)

type Ledger interface {
	ListEndedEvents(ctx context.Context, before time.Time) ([]models.Event, error)
	DeleteEventBookings(ctx context.Context, ref models.EventRef) (int64, error)
	FailStalePending(ctx context.Context, before time.Time) (int64, error)
}

type Scheduler struct {
	log        *slog.Logger
	ledger     Ledger
	clock      clock.Clock
	interval   time.Duration
	grace      time.Duration
	pendingTTL time.Duration
}

func NewScheduler(
	log *slog.Logger,
	ledger Ledger,
	clk clock.Clock,
	interval, grace, pendingTTL time.Duration,
) *Scheduler {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	if clk == nil {
		clk = clock.NewSystem()
	}

	return &Scheduler{
		log:        log,
		ledger:     ledger,
		clock:      clk,
		interval:   interval,
		grace:      grace,
		pendingTTL: pendingTTL,
	}
}

type Report struct {
	Events  int
	Deleted int64
	Failed  int
	Expired int64
}

// RunOnce deletes the bookings of every event that ended more than grace ago, then marks
// stale pending bookings failed. A failing event is logged and skipped.
func (s *Scheduler) RunOnce(ctx context.Context) (Report, error) {
	const op = "services.cleanup.Scheduler.RunOnce"

	log := s.log.With(slog.String("op", op))
	now := s.clock.Now()

	var report Report

	events, err := s.ledger.ListEndedEvents(ctx, now.Add(-s.grace))
	if err != nil {
		return report, fmt.Errorf("%s: %w", op, err)
	}

	for _, e := range events {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		report.Events++

		deleted, err := s.ledger.DeleteEventBookings(ctx, e.Ref())
		if err != nil {
			report.Failed++
			log.Error("failed to delete bookings of ended event",
				slog.String("event", e.Ref().String()),
				sl.Err(err),
			)
			continue
		}

		report.Deleted += deleted
		if deleted > 0 {
			metrics.BookingsDeleted.WithLabelValues(string(e.Kind), "schedule").Add(float64(deleted))
			log.Info("bookings of ended event deleted",
				slog.String("event", e.Ref().String()),
				slog.String("name", e.Name),
				slog.Int64("deleted", deleted),
			)
		}
	}

	if s.pendingTTL > 0 {
		expired, err := s.ledger.FailStalePending(ctx, now.Add(-s.pendingTTL))
		if err != nil {
			log.Error("failed to expire stale pending bookings", sl.Err(err))
		} else if expired > 0 {
			report.Expired = expired
			metrics.BookingsExpired.Add(float64(expired))
			log.Info("stale pending bookings marked failed", slog.Int64("count", expired))
		}
	}

	return report, nil
}

// Run executes a pass immediately and then every interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context) error {
	const op = "services.cleanup.Scheduler.Run"

	log := s.log.With(slog.String("op", op))
	log.Info("cleanup scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.RunOnce(ctx); err != nil && ctx.Err() == nil {
			log.Error("cleanup run failed", sl.Err(err))
		}

		select {
		case <-ctx.Done():
			log.Info("cleanup scheduler stopped")
			return nil
		case <-ticker.C:
		}
	}
}
