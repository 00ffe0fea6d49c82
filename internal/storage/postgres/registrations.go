package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"communityHub/internal/models"
	"communityHub/internal/storage"
)

const registrationColumns = `id, event_id, user_id, status, registered_at, notes`

func scanRegistration(row scanner) (*models.Registration, error) {
	var r models.Registration
	if err := row.Scan(&r.ID, &r.EventID, &r.UserID, &r.Status, &r.RegisteredAt, &r.Notes); err != nil {
		return nil, err
	}
	return &r, nil
}

func (q *queries) CreateRegistration(ctx context.Context, reg *models.Registration) error {
	const op = "storage.postgres.CreateRegistration"

	query := `
		INSERT INTO registrations (` + registrationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := q.db.ExecContext(ctx, query, reg.ID, reg.EventID, reg.UserID, reg.Status, reg.RegisteredAt, reg.Notes)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrRegistrationExists
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (q *queries) queryRegistration(ctx context.Context, op, query string, args ...any) (*models.Registration, error) {
	reg, err := scanRegistration(q.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return reg, nil
}

func (q *queries) GetRegistration(ctx context.Context, eventID, userID string) (*models.Registration, error) {
	return q.queryRegistration(ctx, "storage.postgres.GetRegistration", `
		SELECT `+registrationColumns+`
		FROM registrations
		WHERE event_id = $1 AND user_id = $2`,
		eventID, userID,
	)
}

func (q *queries) CountRegistrations(ctx context.Context, eventID string, status models.RegistrationStatus) (int, error) {
	const op = "storage.postgres.CountRegistrations"

	var count int
	err := q.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM registrations
		WHERE event_id = $1 AND status = $2`,
		eventID, status,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func (q *queries) OldestWaitlisted(ctx context.Context, eventID string) (*models.Registration, error) {
	return q.queryRegistration(ctx, "storage.postgres.OldestWaitlisted", `
		SELECT `+registrationColumns+`
		FROM registrations
		WHERE event_id = $1 AND status = $2
		ORDER BY registered_at ASC, id ASC
		LIMIT 1`,
		eventID, models.RegistrationWaitlist,
	)
}

func (q *queries) SetRegistrationStatus(ctx context.Context, id string, status models.RegistrationStatus) error {
	const op = "storage.postgres.SetRegistrationStatus"

	res, err := q.db.ExecContext(ctx, `UPDATE registrations SET status = $2 WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(res, storage.ErrRegistrationNotFound)
}

func (q *queries) DeleteRegistration(ctx context.Context, id string) error {
	const op = "storage.postgres.DeleteRegistration"

	res, err := q.db.ExecContext(ctx, `DELETE FROM registrations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(res, storage.ErrRegistrationNotFound)
}

func (q *queries) ListRegistrations(ctx context.Context, eventID string) ([]models.Registration, error) {
	const op = "storage.postgres.ListRegistrations"

	rows, err := q.db.QueryContext(ctx, `
		SELECT `+registrationColumns+`
		FROM registrations
		WHERE event_id = $1
		ORDER BY registered_at ASC, id ASC`,
		eventID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var regs []models.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan registration: %w", op, err)
		}
		regs = append(regs, *reg)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: error iterating registrations: %w", op, err)
	}

	return regs, nil
}
