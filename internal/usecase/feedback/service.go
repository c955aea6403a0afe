package feedback

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/domain/feedback"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

type SubmitInput struct {
	Name    string
	Email   string
	Message string
}

type Service struct {
	feedback feedback.Repository
}

func NewService(repo feedback.Repository) *Service {
	return &Service{feedback: repo}
}

func (s *Service) Submit(ctx context.Context, in SubmitInput) (feedback.Feedback, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
	if in.Name == "" || in.Email == "" || in.Message == "" {
		return feedback.Feedback{}, ErrInvalidInput
	}

	f := feedback.Feedback{
		ID:        uuid.New(),
		Name:      in.Name,
		Email:     in.Email,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.feedback.Create(ctx, f); err != nil {
		return feedback.Feedback{}, ErrInternal
	}
	return f, nil
}
