package repository

import (
	"context"

	"alumni-connect/internal/database"
	"alumni-connect/internal/domain/donation"

	"github.com/google/uuid"
)

type PostgresDonationRepository struct {
	db database.DB
}

func NewPostgresDonationRepository(db database.DB) *PostgresDonationRepository {
	return &PostgresDonationRepository{db: db}
}

func (r *PostgresDonationRepository) Create(ctx context.Context, d donation.Donation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO donations (id, user_id, name, email, phone, amount, purpose, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		d.ID, d.UserID, d.Name, d.Email, d.Phone, d.Amount, d.Purpose, d.Message, d.CreatedAt,
	)
	return err
}

func (r *PostgresDonationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]donation.Donation, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, email, phone, amount, purpose, message, created_at
		FROM donations
		WHERE user_id = $1
		ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]donation.Donation, 0)
	for rows.Next() {
		var d donation.Donation
		if err := rows.Scan(&d.ID, &d.UserID, &d.Name, &d.Email, &d.Phone, &d.Amount, &d.Purpose, &d.Message, &d.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresDonationRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM donations`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}
