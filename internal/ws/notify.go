package ws

import (
	"encoding/json"
	"time"

	"alumni-connect/internal/domain/message"

	"github.com/google/uuid"
)

// MessageCreatedEvent carries ids only; recipients fetch the conversation
// over HTTP.
type MessageCreatedEvent struct {
	Type       string    `json:"type"`
	MessageID  uuid.UUID `json:"message_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	ReceiverID uuid.UUID `json:"receiver_id"`
	Timestamp  string    `json:"timestamp"`
}

// Notifier adapts the hub to the message usecase's notification hook.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) MessageCreated(m message.Message) {
	if n == nil || n.hub == nil {
		return
	}

	evt := MessageCreatedEvent{
		Type:       "message_created",
		MessageID:  m.ID,
		SenderID:   m.SenderID,
		ReceiverID: m.ReceiverID,
		Timestamp:  m.SentAt.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	n.hub.Broadcast(b)
}
