package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"time"
	"trekBooker/internal/models"
	"trekBooker/internal/storage"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const eventColumns = `id, name, is_active, start_date, end_date, city_pricing`

type eventRow struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	IsActive    bool      `db:"is_active"`
	StartDate   time.Time `db:"start_date"`
	EndDate     time.Time `db:"end_date"`
	CityPricing []byte    `db:"city_pricing"`
}

func (r eventRow) toModel(kind models.EventKind) (models.Event, error) {
	event := models.Event{
		ID:        r.ID,
		Kind:      kind,
		Name:      r.Name,
		IsActive:  r.IsActive,
		StartDate: r.StartDate.UTC(),
		EndDate:   r.EndDate.UTC(),
	}

	if len(r.CityPricing) > 0 {
		if err := json.Unmarshal(r.CityPricing, &event.CityPricing); err != nil {
			return models.Event{}, fmt.Errorf("failed to decode city pricing of %s: %w", r.ID, err)
		}
	}

	return event, nil
}

func tableFor(kind models.EventKind) (string, error) {
	switch kind {
	case models.KindTrek:
		return "treks", nil
	case models.KindTour:
		return "tours", nil
	default:
		return "", models.ErrUnknownEventKind
	}
}

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) (models.Event, error) {
	const op = "storage.postgres.CreateEvent"

	table, err := tableFor(event.Kind)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CityPricing == nil {
		event.CityPricing = []models.CityPricing{}
	}

	pricing, err := json.Marshal(event.CityPricing)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, name, is_active, start_date, end_date, city_pricing)
		VALUES ($1, $2, $3, $4, $5, $6)`, table)

	_, err = s.ext(ctx).ExecContext(ctx, query,
		event.ID, event.Name, event.IsActive, event.StartDate, event.EndDate, pricing,
	)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: failed to create event: %w", op, err)
	}

	return event, nil
}

func (s *Storage) GetEvent(ctx context.Context, ref models.EventRef) (models.Event, error) {
	return s.getEvent(ctx, ref, false)
}

// GetEventForUpdate locks the event row until the surrounding transaction ends.
func (s *Storage) GetEventForUpdate(ctx context.Context, ref models.EventRef) (models.Event, error) {
	return s.getEvent(ctx, ref, true)
}

func (s *Storage) getEvent(ctx context.Context, ref models.EventRef, forUpdate bool) (models.Event, error) {
	const op = "storage.postgres.GetEvent"

	table, err := tableFor(ref.Kind())
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id = $1`, eventColumns, table)
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var row eventRow
	err = sqlx.GetContext(ctx, s.ext(ctx), &row, query, ref.ID())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isInvalidUUID(err) {
			return models.Event{}, storage.ErrEventNotFound
		}
		return models.Event{}, fmt.Errorf("%s: failed to get event: %w", op, err)
	}

	return row.toModel(ref.Kind())
}

// ListEvents returns events of one kind (or both when kind is nil) ordered by start date.
func (s *Storage) ListEvents(ctx context.Context, kind *models.EventKind, activeOnly bool) ([]models.Event, error) {
	const op = "storage.postgres.ListEvents"

	where := `TRUE`
	if activeOnly {
		where = `is_active`
	}

	events, err := s.listEvents(ctx, kind, where)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// ListEndedEvents returns events of both kinds whose end date is before the given instant.
func (s *Storage) ListEndedEvents(ctx context.Context, before time.Time) ([]models.Event, error) {
	const op = "storage.postgres.ListEndedEvents"

	events, err := s.listEvents(ctx, nil, `end_date < $1`, before)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Storage) listEvents(ctx context.Context, kind *models.EventKind, where string, args ...any) ([]models.Event, error) {
	kinds := []models.EventKind{models.KindTrek, models.KindTour}
	if kind != nil {
		kinds = []models.EventKind{*kind}
	}

	var events []models.Event
	for _, k := range kinds {
		table, err := tableFor(k)
		if err != nil {
			return nil, err
		}

		var rows []eventRow
		query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY start_date ASC`, eventColumns, table, where)
		if err = sqlx.SelectContext(ctx, s.ext(ctx), &rows, query, args...); err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", table, err)
		}

		for _, row := range rows {
			event, err := row.toModel(k)
			if err != nil {
				return nil, err
			}
			events = append(events, event)
		}
	}

	slices.SortStableFunc(events, func(a, b models.Event) int {
		return a.StartDate.Compare(b.StartDate)
	})

	return events, nil
}
