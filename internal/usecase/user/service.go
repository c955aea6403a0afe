package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"alumni-connect/internal/domain/donation"
	"alumni-connect/internal/domain/event"
	"alumni-connect/internal/domain/user"
	"alumni-connect/internal/pkg/phone"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

const directoryLimit = 1000

// UpdateProfileInput carries the mutable profile fields; anything else
// submitted by the client is dropped before it reaches the store.
type UpdateProfileInput struct {
	FullName       *string
	Location       *string
	Company        *string
	Domain         *string
	Phone          *string
	ProfilePicture *string
}

type Service struct {
	users     user.Repository
	events    event.Repository
	donations donation.Repository
}

func NewService(users user.Repository, events event.Repository, donations donation.Repository) *Service {
	return &Service{users: users, events: events, donations: donations}
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (user.Snapshot, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Snapshot{}, user.ErrNotFound
		}
		return user.Snapshot{}, ErrInternal
	}
	return s.Snapshot(ctx, u)
}

func (s *Service) UpdateProfile(ctx context.Context, id uuid.UUID, in UpdateProfileInput) (user.Snapshot, error) {
	patch := user.Patch{
		FullName:       trimmed(in.FullName),
		Location:       trimmed(in.Location),
		Company:        trimmed(in.Company),
		Domain:         trimmed(in.Domain),
		ProfilePicture: trimmed(in.ProfilePicture),
	}
	if in.Phone != nil {
		formatted := phone.Format(*in.Phone)
		if formatted == "" {
			return user.Snapshot{}, ErrInvalidInput
		}
		patch.Phone = &formatted
	}
	if patch.Empty() {
		return user.Snapshot{}, ErrInvalidInput
	}

	u, err := s.users.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.Snapshot{}, user.ErrNotFound
		}
		return user.Snapshot{}, ErrInternal
	}
	return s.Snapshot(ctx, u)
}

// ListAlumni returns the password-free directory, oldest members first.
func (s *Service) ListAlumni(ctx context.Context) ([]user.User, error) {
	list, err := s.users.List(ctx, directoryLimit)
	if err != nil {
		return nil, ErrInternal
	}
	for i := range list {
		list[i].PasswordHash = ""
	}
	return list, nil
}

// Snapshot joins the owned collections into the password-free user view.
func (s *Service) Snapshot(ctx context.Context, u user.User) (user.Snapshot, error) {
	u.PasswordHash = ""

	eventIDs, err := s.events.ListEventIDsByUser(ctx, u.ID)
	if err != nil {
		return user.Snapshot{}, ErrInternal
	}

	given, err := s.donations.ListByUser(ctx, u.ID)
	if err != nil {
		return user.Snapshot{}, ErrInternal
	}
	records := make([]user.DonationRecord, 0, len(given))
	for _, d := range given {
		records = append(records, user.DonationRecord{
			Purpose:   d.Purpose,
			Amount:    d.Amount,
			Timestamp: d.CreatedAt,
		})
	}

	return user.Snapshot{User: u, RegisteredEvents: eventIDs, Donations: records}, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
