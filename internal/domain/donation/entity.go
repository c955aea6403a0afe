package donation

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Accepted amount bounds in USD.
const (
	MinAmount = 10
	MaxAmount = 10000
)

type Donation struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Email     string
	Phone     string
	Amount    float64
	Purpose   string
	Message   *string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, d Donation) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Donation, error)
	Count(ctx context.Context) (int64, error)
}
