package event

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("event not found")

type Repository interface {
	List(ctx context.Context) ([]Event, error)
	GetByID(ctx context.Context, id uuid.UUID) (Event, error)
	CountUpcoming(ctx context.Context, from time.Time) (int64, error)

	// Register is idempotent per (user, event); re-registering is a no-op.
	Register(ctx context.Context, r Registration) error
	ListEventIDsByUser(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}
