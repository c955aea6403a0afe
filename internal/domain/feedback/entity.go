package feedback

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

type Repository interface {
	Create(ctx context.Context, f Feedback) error
}
