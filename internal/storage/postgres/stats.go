package postgres

import (
	"context"
	"fmt"
	"time"
	"trekBooker/internal/models"

	"github.com/jmoiron/sqlx"
)

type eventStatsRow struct {
	Kind      string    `db:"kind"`
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	IsActive  bool      `db:"is_active"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`

	TotalBookings int     `db:"total_bookings"`
	TotalMembers  int     `db:"total_members"`
	TotalRevenue  float64 `db:"total_revenue"`
}

// EventStats aggregates bookings per event over treks and tours together, ordered by start
// date. Events without bookings are included with zero totals.
func (s *Storage) EventStats(ctx context.Context, kind *models.EventKind, status *models.PaymentStatus) ([]models.EventStats, error) {
	const op = "storage.postgres.EventStats"

	var kindArg *string
	if kind != nil {
		k := string(*kind)
		kindArg = &k
	}

	query := `
		SELECT 'trek' AS kind, e.id, e.name, e.is_active, e.start_date, e.end_date,
			COUNT(b.id) AS total_bookings,
			COALESCE(SUM(b.members_count), 0) AS total_members,
			COALESCE(SUM(b.final_price) FILTER (WHERE b.payment_status = 'paid'), 0) AS total_revenue
		FROM treks e
		LEFT JOIN bookings b ON b.trek_id = e.id AND ($1::text IS NULL OR b.payment_status = $1)
		WHERE $2::text IS NULL OR $2 = 'trek'
		GROUP BY e.id
		UNION ALL
		SELECT 'tour' AS kind, e.id, e.name, e.is_active, e.start_date, e.end_date,
			COUNT(b.id) AS total_bookings,
			COALESCE(SUM(b.members_count), 0) AS total_members,
			COALESCE(SUM(b.final_price) FILTER (WHERE b.payment_status = 'paid'), 0) AS total_revenue
		FROM tours e
		LEFT JOIN bookings b ON b.tour_id = e.id AND ($1::text IS NULL OR b.payment_status = $1)
		WHERE $2::text IS NULL OR $2 = 'tour'
		GROUP BY e.id
		ORDER BY start_date ASC, name ASC`

	var rows []eventStatsRow
	if err := sqlx.SelectContext(ctx, s.ext(ctx), &rows, query, statusArg(status), kindArg); err != nil {
		return nil, fmt.Errorf("%s: failed to aggregate bookings: %w", op, err)
	}

	stats := make([]models.EventStats, 0, len(rows))
	for _, row := range rows {
		stats = append(stats, models.EventStats{
			Kind:           models.EventKind(row.Kind),
			EventID:        row.ID,
			EventName:      row.Name,
			IsActive:       row.IsActive,
			StartDate:      row.StartDate.UTC(),
			EndDate:        row.EndDate.UTC(),
			BookingSummary: models.BookingSummary{
				TotalBookings: row.TotalBookings,
				TotalMembers:  row.TotalMembers,
				TotalRevenue:  row.TotalRevenue,
			},
		})
	}

	return stats, nil
}
