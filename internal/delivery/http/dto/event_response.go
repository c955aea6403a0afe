package dto

import (
	"alumni-connect/internal/domain/event"

	"github.com/google/uuid"
)

type EventResponse struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Date            string    `json:"date"`
	Location        string    `json:"location"`
	Image           string    `json:"image"`
	Description     string    `json:"description"`
	HasRegistration bool      `json:"has_registration"`
}

func NewEventResponse(e event.Event) EventResponse {
	return EventResponse{
		ID:              e.ID,
		Title:           e.Title,
		Date:            e.Date.Format("2006-01-02"),
		Location:        e.Location,
		Image:           e.ImageURL,
		Description:     e.Description,
		HasRegistration: e.HasRegistration,
	}
}

func NewEventListResponse(events []event.Event) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, NewEventResponse(e))
	}
	return out
}
