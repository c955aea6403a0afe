package usecase

import (
	"context"
	"time"
)

// Cache is the best-effort JSON cache consumed by read-heavy usecases.
// Implementations must degrade to misses when the backend is unavailable.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
