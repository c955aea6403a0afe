package handler

import (
	"errors"

	"alumni-connect/internal/delivery/http/dto"
	"alumni-connect/internal/delivery/http/middleware"
	"alumni-connect/internal/domain/event"
	"alumni-connect/internal/domain/user"
	"alumni-connect/internal/pkg/response"
	ucevent "alumni-connect/internal/usecase/event"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type EventHandler struct {
	uc *ucevent.Service
}

type eventRegistrationRequest struct {
	EventID      uuid.UUID `json:"event_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	AttendDinner bool      `json:"attend_dinner"`
}

func NewEventHandler(uc *ucevent.Service) *EventHandler {
	return &EventHandler{uc: uc}
}

func (h *EventHandler) List(c fiber.Ctx) error {
	events, err := h.uc.List(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewEventListResponse(events))
}

func (h *EventHandler) Register(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req eventRegistrationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	err := h.uc.Register(c.Context(), ucevent.RegisterInput{
		UserID:       userID,
		EventID:      req.EventID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		AttendDinner: req.AttendDinner,
	})
	if err != nil {
		if errors.Is(err, ucevent.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		if errors.Is(err, event.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "Event not found", nil, err)
		}
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Registration Successful!", map[string]any{"success": true})
}
