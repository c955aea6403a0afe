package message

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"alumni-connect/internal/domain/message"
	"alumni-connect/internal/domain/user"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
)

// conversationLimit caps a single conversation fetch.
const conversationLimit = 1000

// Notifier receives fire-and-forget created-message events. New messages
// are delivered by polling; the notifier is only a hint channel.
type Notifier interface {
	MessageCreated(m message.Message)
}

type SendInput struct {
	SenderID   uuid.UUID
	ReceiverID uuid.UUID
	Body       string
}

type Service struct {
	messages message.Repository
	users    user.Repository
	notifier Notifier
}

func NewService(messages message.Repository, users user.Repository, notifier Notifier) *Service {
	return &Service{messages: messages, users: users, notifier: notifier}
}

func (s *Service) Send(ctx context.Context, in SendInput) (message.Message, error) {
	in.Body = strings.TrimSpace(in.Body)
	if in.Body == "" || in.SenderID == in.ReceiverID {
		return message.Message{}, ErrInvalidInput
	}

	if _, err := s.users.GetByID(ctx, in.ReceiverID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return message.Message{}, user.ErrNotFound
		}
		return message.Message{}, ErrInternal
	}

	m := message.Message{
		ID:         uuid.New(),
		SenderID:   in.SenderID,
		ReceiverID: in.ReceiverID,
		Body:       in.Body,
		SentAt:     time.Now().UTC(),
	}
	if err := s.messages.Create(ctx, m); err != nil {
		return message.Message{}, ErrInternal
	}

	if s.notifier != nil {
		s.notifier.MessageCreated(m)
	}
	return m, nil
}

func (s *Service) Conversation(ctx context.Context, userID, otherID uuid.UUID) ([]message.Message, error) {
	if userID == otherID {
		return nil, ErrInvalidInput
	}
	list, err := s.messages.Conversation(ctx, userID, otherID, conversationLimit)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}
