package repository

import (
	"context"

	"alumni-connect/internal/database"
	"alumni-connect/internal/domain/feedback"
)

type PostgresFeedbackRepository struct {
	db database.DB
}

func NewPostgresFeedbackRepository(db database.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) Create(ctx context.Context, f feedback.Feedback) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO feedback (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		f.ID, f.Name, f.Email, f.Message, f.CreatedAt,
	)
	return err
}
