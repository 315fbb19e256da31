package cleanup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"trekBooker/internal/clock"
	"trekBooker/internal/lib/access"
	"trekBooker/internal/lib/metrics"
	"trekBooker/internal/models"
)

var (
	ErrEventStillActive  = errors.New("event is still active")
	ErrEventNotEnded     = errors.New("event has not ended yet")
	ErrPaidBookingsExist = errors.New("event has paid bookings")
)

// PaidBookingsError carries the number of paid bookings that blocked a delete.
type PaidBookingsError struct {
	Count int
}

func (e *PaidBookingsError) Error() string {
	return fmt.Sprintf("%s: %d, archive them first or repeat with force=true", ErrPaidBookingsExist, e.Count)
}

func (e *PaidBookingsError) Unwrap() error {
	return ErrPaidBookingsExist
}

type Store interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	GetEventForUpdate(ctx context.Context, ref models.EventRef) (models.Event, error)
	CountEventBookings(ctx context.Context, ref models.EventRef, status models.PaymentStatus) (int, error)
	DeleteEventBookings(ctx context.Context, ref models.EventRef) (int64, error)
	DeleteUnpaidEventBookings(ctx context.Context, ref models.EventRef) (int64, error)
}

type Service struct {
	log   *slog.Logger
	store Store
	clock clock.Clock
}

func NewService(log *slog.Logger, store Store, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.NewSystem()
	}

	return &Service{
		log:   log,
		store: store,
		clock: clk,
	}
}

// DeleteEventBookings removes all bookings of an inactive, ended event. Paid bookings block
// the delete for treks and tours alike unless force is set.
func (s *Service) DeleteEventBookings(ctx context.Context, admin access.Admin, ref models.EventRef, force bool) (int64, error) {
	const op = "services.cleanup.DeleteEventBookings"

	if !admin.Valid() {
		return 0, access.ErrUnauthorized
	}

	log := s.log.With(
		slog.String("op", op),
		slog.String("event", ref.String()),
		slog.Bool("force", force),
	)

	var deleted int64

	err := s.store.WithTx(ctx, func(ctx context.Context) error {
		event, err := s.store.GetEventForUpdate(ctx, ref)
		if err != nil {
			return err
		}

		if event.IsActive {
			return ErrEventStillActive
		}
		if !event.HasEnded(s.clock.Now()) {
			return ErrEventNotEnded
		}

		if force {
			deleted, err = s.store.DeleteEventBookings(ctx, ref)
			return err
		}

		if err = s.ensureNoPaid(ctx, ref); err != nil {
			return err
		}

		deleted, err = s.store.DeleteUnpaidEventBookings(ctx, ref)
		if err != nil {
			return err
		}

		// A payment reconciled after the first count survives the delete; report it and
		// roll back.
		return s.ensureNoPaid(ctx, ref)
	})
	if err != nil {
		log.Warn("bookings not deleted", slog.String("reason", err.Error()))
		return 0, err
	}

	metrics.BookingsDeleted.WithLabelValues(string(ref.Kind()), "admin").Add(float64(deleted))
	log.Info("event bookings deleted", slog.Int64("deleted", deleted))

	return deleted, nil
}

func (s *Service) ensureNoPaid(ctx context.Context, ref models.EventRef) error {
	paid, err := s.store.CountEventBookings(ctx, ref, models.PaymentPaid)
	if err != nil {
		return err
	}
	if paid > 0 {
		return &PaidBookingsError{Count: paid}
	}
	return nil
}
