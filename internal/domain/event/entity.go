package event

import (
	"time"

	"github.com/google/uuid"
)

type Event struct {
	ID              uuid.UUID
	Title           string
	Date            time.Time
	Location        string
	ImageURL        string
	Description     string
	HasRegistration bool
}

type Registration struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	EventID      uuid.UUID
	Name         string
	Email        string
	Phone        string
	AttendDinner bool
	CreatedAt    time.Time
}
