package event

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/domain/event"
	"alumni-connect/internal/domain/user"
	"alumni-connect/internal/pkg/phone"
	"alumni-connect/internal/usecase"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

const (
	listCacheKey = "events:list"
	listCacheTTL = 5 * time.Minute
)

type RegisterInput struct {
	UserID       uuid.UUID
	EventID      uuid.UUID
	Name         string
	Email        string
	Phone        string
	AttendDinner bool
}

type Service struct {
	events event.Repository
	users  user.Repository
	cache  usecase.Cache
}

func NewService(events event.Repository, users user.Repository, cache usecase.Cache) *Service {
	return &Service{events: events, users: users, cache: cache}
}

// List returns the catalog ordered by date. Cache failures fall through to
// the database.
func (s *Service) List(ctx context.Context) ([]event.Event, error) {
	if s.cache != nil {
		var cached []event.Event
		if ok, err := s.cache.GetJSON(ctx, listCacheKey, &cached); err == nil && ok {
			return cached, nil
		}
	}

	list, err := s.events.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, listCacheKey, list, listCacheTTL)
	}
	return list, nil
}

// Register records attendance for an event. Registering twice for the same
// event is a no-op.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = phone.Format(in.Phone)
	if in.Name == "" || in.Email == "" || in.Phone == "" {
		return ErrInvalidInput
	}

	ev, err := s.events.GetByID(ctx, in.EventID)
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			return event.ErrNotFound
		}
		return ErrInternal
	}
	if !ev.HasRegistration {
		return ErrInvalidInput
	}

	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.ErrNotFound
		}
		return ErrInternal
	}

	reg := event.Registration{
		ID:           uuid.New(),
		UserID:       in.UserID,
		EventID:      in.EventID,
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		AttendDinner: in.AttendDinner,
	}
	if err := s.events.Register(ctx, reg); err != nil {
		return ErrInternal
	}
	return nil
}
