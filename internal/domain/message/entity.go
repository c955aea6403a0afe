package message

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Message struct {
	ID         uuid.UUID
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Body       string
	SentAt     time.Time
}

type Repository interface {
	Create(ctx context.Context, m Message) error

	// Conversation returns messages in either direction between the two
	// users, ascending by send time, capped at limit.
	Conversation(ctx context.Context, userID, otherID uuid.UUID, limit int) ([]Message, error)
}
