package repository

import (
	"context"
	"errors"
	"time"

	"alumni-connect/internal/database"
	"alumni-connect/internal/domain/event"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresEventRepository struct {
	db database.DB
}

func NewPostgresEventRepository(db database.DB) *PostgresEventRepository {
	return &PostgresEventRepository{db: db}
}

const eventColumns = `id, title, event_date, location, image_url, description, has_registration`

func (r *PostgresEventRepository) List(ctx context.Context) ([]event.Event, error) {
	rows, err := r.db.Query(ctx, `SELECT `+eventColumns+` FROM events ORDER BY event_date ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]event.Event, 0)
	for rows.Next() {
		var e event.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Date, &e.Location, &e.ImageURL, &e.Description, &e.HasRegistration); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresEventRepository) GetByID(ctx context.Context, id uuid.UUID) (event.Event, error) {
	var e event.Event
	err := r.db.QueryRow(ctx, `SELECT `+eventColumns+` FROM events WHERE id = $1`, id).
		Scan(&e.ID, &e.Title, &e.Date, &e.Location, &e.ImageURL, &e.Description, &e.HasRegistration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return event.Event{}, event.ErrNotFound
		}
		return event.Event{}, err
	}
	return e, nil
}

func (r *PostgresEventRepository) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM events WHERE event_date >= $1`, from).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresEventRepository) Register(ctx context.Context, reg event.Registration) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO event_registrations (id, user_id, event_id, name, email, phone, attend_dinner)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, event_id) DO NOTHING`,
		reg.ID, reg.UserID, reg.EventID, reg.Name, reg.Email, reg.Phone, reg.AttendDinner,
	)
	return err
}

func (r *PostgresEventRepository) ListEventIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT event_id FROM event_registrations WHERE user_id = $1 ORDER BY created_at ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
