package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"communityHub/internal/models"
	"communityHub/internal/storage"
)

const eventColumns = `id, title, description, location, starts_at, ends_at, capacity, status, creator_id, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(row scanner) (*models.Event, error) {
	var e models.Event
	err := row.Scan(
		&e.ID,
		&e.Title,
		&e.Description,
		&e.Location,
		&e.StartsAt,
		&e.EndsAt,
		&e.Capacity,
		&e.Status,
		&e.CreatorID,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (q *queries) CreateEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.postgres.CreateEvent"

	query := `
		INSERT INTO events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := q.db.ExecContext(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.StartsAt,
		event.EndsAt,
		event.Capacity,
		event.Status,
		event.CreatorID,
		event.CreatedAt,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (q *queries) getEvent(ctx context.Context, op, query, id string) (*models.Event, error) {
	event, err := scanEvent(q.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return event, nil
}

func (q *queries) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	return q.getEvent(ctx, "storage.postgres.GetEvent",
		`SELECT `+eventColumns+` FROM events WHERE id = $1`, id)
}

func (q *queries) GetEventForUpdate(ctx context.Context, id string) (*models.Event, error) {
	return q.getEvent(ctx, "storage.postgres.GetEventForUpdate",
		`SELECT `+eventColumns+` FROM events WHERE id = $1 FOR UPDATE`, id)
}

func (q *queries) ListEvents(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	const op = "storage.postgres.ListEvents"

	limit, offset := storage.Page(filter.Limit, filter.Offset)

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE ($1 = '' OR status = $1)
		ORDER BY starts_at ASC, created_at ASC
		LIMIT $2 OFFSET $3`

	rows, err := q.db.QueryContext(ctx, query, string(filter.Status), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan event: %w", op, err)
		}
		events = append(events, *event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating events: %w", op, err)
	}

	return events, nil
}

func (q *queries) UpdateEvent(ctx context.Context, event *models.Event) error {
	const op = "storage.postgres.UpdateEvent"

	query := `
		UPDATE events
		SET title = $2, description = $3, location = $4, starts_at = $5, ends_at = $6,
		    capacity = $7, status = $8, updated_at = $9
		WHERE id = $1`

	res, err := q.db.ExecContext(ctx, query,
		event.ID,
		event.Title,
		event.Description,
		event.Location,
		event.StartsAt,
		event.EndsAt,
		event.Capacity,
		event.Status,
		event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(res, storage.ErrEventNotFound)
}
