package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
	"trekBooker/internal/events"
	"trekBooker/internal/models"
	"trekBooker/internal/storage"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const bookingColumns = `id, name, email, phone_number, city, members_count, trek_id, tour_id,
	final_price, payment_status, gateway_order_id, gateway_payment_id, gateway_signature,
	offline, created_at, updated_at`

type bookingRow struct {
	ID               string    `db:"id"`
	Name             string    `db:"name"`
	Email            string    `db:"email"`
	PhoneNumber      string    `db:"phone_number"`
	City             string    `db:"city"`
	MembersCount     int       `db:"members_count"`
	TrekID           *string   `db:"trek_id"`
	TourID           *string   `db:"tour_id"`
	FinalPrice       float64   `db:"final_price"`
	PaymentStatus    string    `db:"payment_status"`
	GatewayOrderID   *string   `db:"gateway_order_id"`
	GatewayPaymentID *string   `db:"gateway_payment_id"`
	GatewaySignature *string   `db:"gateway_signature"`
	Offline          bool      `db:"offline"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (r bookingRow) toModel() models.Booking {
	var ref models.EventRef
	switch {
	case r.TrekID != nil:
		ref = models.TrekRef(*r.TrekID)
	case r.TourID != nil:
		ref = models.TourRef(*r.TourID)
	}

	return models.Booking{
		ID:               r.ID,
		Name:             r.Name,
		Email:            r.Email,
		PhoneNumber:      r.PhoneNumber,
		City:             models.City(r.City),
		MembersCount:     r.MembersCount,
		Event:            ref,
		FinalPrice:       r.FinalPrice,
		PaymentStatus:    models.PaymentStatus(r.PaymentStatus),
		GatewayOrderID:   r.GatewayOrderID,
		GatewayPaymentID: r.GatewayPaymentID,
		GatewaySignature: r.GatewaySignature,
		Offline:          r.Offline,
		CreatedAt:        r.CreatedAt.UTC(),
		UpdatedAt:        r.UpdatedAt.UTC(),
	}
}

func refColumn(kind models.EventKind) (string, error) {
	switch kind {
	case models.KindTrek:
		return "trek_id", nil
	case models.KindTour:
		return "tour_id", nil
	default:
		return "", models.ErrUnknownEventKind
	}
}

func statusArg(status *models.PaymentStatus) *string {
	if status == nil {
		return nil
	}
	s := string(*status)
	return &s
}

// CreateBooking inserts the booking only while its event is still active, so a booking
// can't slip in after the event was deactivated between lookup and insert.
func (s *Storage) CreateBooking(ctx context.Context, b models.Booking) (models.Booking, error) {
	const op = "storage.postgres.CreateBooking"

	table, err := tableFor(b.Event.Kind())
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now().UTC()
	}
	b.UpdatedAt = b.CreatedAt

	trekID, tourID := b.Event.Columns()

	query := fmt.Sprintf(`
		INSERT INTO bookings (%s)
		SELECT $1::uuid, $2, $3, $4, $5, $6::int, $7::uuid, $8::uuid,
			$9::numeric, $10, $11, $12, $13,
			$14::boolean, $15::timestamptz, $16::timestamptz
		WHERE EXISTS (SELECT 1 FROM %s WHERE id = $17 AND is_active)`, bookingColumns, table)

	res, err := s.ext(ctx).ExecContext(ctx, query,
		b.ID, b.Name, b.Email, b.PhoneNumber, string(b.City), b.MembersCount, trekID, tourID,
		b.FinalPrice, string(b.PaymentStatus), b.GatewayOrderID, b.GatewayPaymentID, b.GatewaySignature,
		b.Offline, b.CreatedAt, b.UpdatedAt,
		b.Event.ID(),
	)
	if err != nil {
		if isInvalidUUID(err) {
			return models.Booking{}, storage.ErrEventNotFound
		}
		return models.Booking{}, fmt.Errorf("%s: failed to create booking: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Booking{}, fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return models.Booking{}, storage.ErrEventInactive
	}

	return b, nil
}

func (s *Storage) SetGatewayOrder(ctx context.Context, bookingID, orderID string) error {
	const op = "storage.postgres.SetGatewayOrder"

	res, err := s.ext(ctx).ExecContext(ctx, `
		UPDATE bookings
		SET gateway_order_id = $2, updated_at = NOW()
		WHERE id = $1 AND payment_status = 'pending'`, bookingID, orderID)
	if err != nil {
		return fmt.Errorf("%s: failed to store gateway order: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if affected == 0 {
		return storage.ErrBookingNotFound
	}

	return nil
}

// DeleteBooking removes a single booking; used to drop a pending booking whose gateway order failed.
func (s *Storage) DeleteBooking(ctx context.Context, bookingID string) error {
	const op = "storage.postgres.DeleteBooking"

	_, err := s.ext(ctx).ExecContext(ctx, `DELETE FROM bookings WHERE id = $1 AND payment_status = 'pending'`, bookingID)
	if err != nil {
		return fmt.Errorf("%s: failed to delete booking: %w", op, err)
	}

	return nil
}

func (s *Storage) GetBooking(ctx context.Context, bookingID string) (models.Booking, error) {
	const op = "storage.postgres.GetBooking"

	var row bookingRow
	err := sqlx.GetContext(ctx, s.ext(ctx), &row, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return models.Booking{}, storage.ErrBookingNotFound
		}
		return models.Booking{}, fmt.Errorf("%s: failed to get booking: %w", op, err)
	}

	return row.toModel(), nil
}

// MarkPaid moves the booking to paid with one conditional UPDATE and, in the same
// transaction, appends a BookingPaid event to the outbox. A booking that is already paid
// for the same order is returned unchanged with transitioned == false and no event.
func (s *Storage) MarkPaid(ctx context.Context, conf models.PaymentConfirmation) (booking models.Booking, transitioned bool, err error) {
	const op = "storage.postgres.MarkPaid"

	err = s.WithTx(ctx, func(ctx context.Context) error {
		tx := txFromContext(ctx)

		var row bookingRow
		err := sqlx.GetContext(ctx, tx, &row, `
			UPDATE bookings
			SET payment_status = 'paid',
				gateway_payment_id = $3,
				gateway_signature = $4,
				updated_at = NOW()
			WHERE id = $1 AND gateway_order_id = $2 AND payment_status <> 'paid'
			RETURNING `+bookingColumns,
			conf.BookingID, conf.OrderID, conf.PaymentID, conf.Signature,
		)
		if err != nil {
			if isInvalidUUID(err) {
				return storage.ErrBookingNotFound
			}
			if !errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("failed to mark booking paid: %w", err)
			}

			existing, err := s.GetBooking(ctx, conf.BookingID)
			if err != nil {
				return err
			}
			if existing.GatewayOrderID == nil || *existing.GatewayOrderID != conf.OrderID {
				return storage.ErrOrderMismatch
			}

			booking = existing
			return nil
		}

		booking = row.toModel()
		transitioned = true

		bus, err := s.newOutboxEventBus(tx)
		if err != nil {
			return fmt.Errorf("failed to create outbox event bus: %w", err)
		}

		return bus.Publish(ctx, events.BookingPaid{
			Header:    events.NewHeaderWithIdempotencyKey(booking.ID),
			BookingID: booking.ID,
			EventType: string(booking.Event.Kind()),
			EventID:   booking.Event.ID(),
			PaymentID: conf.PaymentID,
			Amount:    booking.FinalPrice,
			PaidAt:    booking.UpdatedAt,
		})
	})
	if err != nil {
		if errors.Is(err, storage.ErrBookingNotFound) || errors.Is(err, storage.ErrOrderMismatch) {
			return models.Booking{}, false, err
		}
		return models.Booking{}, false, fmt.Errorf("%s: %w", op, err)
	}

	return booking, transitioned, nil
}

func (s *Storage) ListEventBookings(ctx context.Context, ref models.EventRef, status *models.PaymentStatus, limit, offset int) ([]models.Booking, error) {
	const op = "storage.postgres.ListEventBookings"

	column, err := refColumn(ref.Kind())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM bookings
		WHERE %s = $1 AND ($2::text IS NULL OR payment_status = $2)
		ORDER BY created_at DESC, id
		LIMIT $3 OFFSET $4`, bookingColumns, column)

	var rows []bookingRow
	if err = sqlx.SelectContext(ctx, s.ext(ctx), &rows, query, ref.ID(), statusArg(status), limit, offset); err != nil {
		return nil, fmt.Errorf("%s: failed to list bookings: %w", op, err)
	}

	bookings := make([]models.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, row.toModel())
	}

	return bookings, nil
}

type summaryRow struct {
	TotalBookings int     `db:"total_bookings"`
	TotalMembers  int     `db:"total_members"`
	TotalRevenue  float64 `db:"total_revenue"`
}

func (r summaryRow) toModel() models.BookingSummary {
	return models.BookingSummary{
		TotalBookings: r.TotalBookings,
		TotalMembers:  r.TotalMembers,
		TotalRevenue:  r.TotalRevenue,
	}
}

// SummarizeEventBookings sums members over the (optionally status-filtered) bookings of an
// event and revenue over the paid ones among them.
func (s *Storage) SummarizeEventBookings(ctx context.Context, ref models.EventRef, status *models.PaymentStatus) (models.BookingSummary, error) {
	const op = "storage.postgres.SummarizeEventBookings"

	column, err := refColumn(ref.Kind())
	if err != nil {
		return models.BookingSummary{}, fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(`
		SELECT
			COUNT(*) AS total_bookings,
			COALESCE(SUM(members_count), 0) AS total_members,
			COALESCE(SUM(final_price) FILTER (WHERE payment_status = 'paid'), 0) AS total_revenue
		FROM bookings
		WHERE %s = $1 AND ($2::text IS NULL OR payment_status = $2)`, column)

	var row summaryRow
	if err = sqlx.GetContext(ctx, s.ext(ctx), &row, query, ref.ID(), statusArg(status)); err != nil {
		return models.BookingSummary{}, fmt.Errorf("%s: failed to summarize bookings: %w", op, err)
	}

	return row.toModel(), nil
}

func (s *Storage) CountEventBookings(ctx context.Context, ref models.EventRef, status models.PaymentStatus) (int, error) {
	const op = "storage.postgres.CountEventBookings"

	column, err := refColumn(ref.Kind())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM bookings WHERE %s = $1 AND payment_status = $2`, column)
	if err = sqlx.GetContext(ctx, s.ext(ctx), &count, query, ref.ID(), string(status)); err != nil {
		return 0, fmt.Errorf("%s: failed to count bookings: %w", op, err)
	}

	return count, nil
}

// DeleteEventBookings removes every booking of one event and returns how many were deleted.
func (s *Storage) DeleteEventBookings(ctx context.Context, ref models.EventRef) (int64, error) {
	const op = "storage.postgres.DeleteEventBookings"

	column, err := refColumn(ref.Kind())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.ext(ctx).ExecContext(ctx, fmt.Sprintf(`DELETE FROM bookings WHERE %s = $1`, column), ref.ID())
	if err != nil {
		return 0, fmt.Errorf("%s: failed to delete bookings: %w", op, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}

// DeleteUnpaidEventBookings removes the bookings of one event that are not paid. The
// status predicate is re-evaluated against rows committed by concurrent transactions, so a
// booking paid while the delete runs is kept.
func (s *Storage) DeleteUnpaidEventBookings(ctx context.Context, ref models.EventRef) (int64, error) {
	const op = "storage.postgres.DeleteUnpaidEventBookings"

	column, err := refColumn(ref.Kind())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	res, err := s.ext(ctx).ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM bookings WHERE %s = $1 AND payment_status <> 'paid'`, column), ref.ID())
	if err != nil {
		return 0, fmt.Errorf("%s: failed to delete bookings: %w", op, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return deleted, nil
}

// FailStalePending marks bookings still pending since before the given instant as failed.
func (s *Storage) FailStalePending(ctx context.Context, before time.Time) (int64, error) {
	const op = "storage.postgres.FailStalePending"

	res, err := s.ext(ctx).ExecContext(ctx, `
		UPDATE bookings
		SET payment_status = 'failed', updated_at = NOW()
		WHERE payment_status = 'pending' AND created_at < $1`, before)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to expire pending bookings: %w", op, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return affected, nil
}
