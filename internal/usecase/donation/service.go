package donation

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/domain/donation"
	"alumni-connect/internal/domain/user"
	"alumni-connect/internal/pkg/phone"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrAmountOutOfRange = errors.New("amount out of range")
	ErrInternal         = errors.New("internal error")
)

type CreateInput struct {
	UserID  uuid.UUID
	Name    string
	Email   string
	Phone   string
	Amount  float64
	Purpose string
	Message *string
}

type Service struct {
	donations donation.Repository
	users     user.Repository
}

func NewService(donations donation.Repository, users user.Repository) *Service {
	return &Service{donations: donations, users: users}
}

// Create records a donation after the (mock) payment step confirms. The
// donation is its own row; the donor's user record is not rewritten.
func (s *Service) Create(ctx context.Context, in CreateInput) (donation.Donation, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Purpose = strings.TrimSpace(in.Purpose)
	in.Phone = phone.Format(in.Phone)
	if in.Name == "" || in.Email == "" || in.Purpose == "" {
		return donation.Donation{}, ErrInvalidInput
	}
	if in.Amount < donation.MinAmount || in.Amount > donation.MaxAmount {
		return donation.Donation{}, ErrAmountOutOfRange
	}

	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return donation.Donation{}, user.ErrNotFound
		}
		return donation.Donation{}, ErrInternal
	}

	var msg *string
	if in.Message != nil {
		trimmed := strings.TrimSpace(*in.Message)
		if trimmed != "" {
			msg = &trimmed
		}
	}

	d := donation.Donation{
		ID:        uuid.New(),
		UserID:    in.UserID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Amount:    in.Amount,
		Purpose:   in.Purpose,
		Message:   msg,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.donations.Create(ctx, d); err != nil {
		return donation.Donation{}, ErrInternal
	}
	return d, nil
}
