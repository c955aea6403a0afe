package repository

import (
	"context"

	"alumni-connect/internal/database"
	"alumni-connect/internal/domain/message"

	"github.com/google/uuid"
)

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

func (r *PostgresMessageRepository) Create(ctx context.Context, m message.Message) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO messages (id, sender_id, receiver_id, body, sent_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.ID, m.SenderID, m.ReceiverID, m.Body, m.SentAt,
	)
	return err
}

func (r *PostgresMessageRepository) Conversation(ctx context.Context, userID, otherID uuid.UUID, limit int) ([]message.Message, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, sender_id, receiver_id, body, sent_at
		FROM messages
		WHERE (sender_id = $1 AND receiver_id = $2)
		   OR (sender_id = $2 AND receiver_id = $1)
		ORDER BY sent_at ASC
		LIMIT $3`,
		userID, otherID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]message.Message, 0)
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Body, &m.SentAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
