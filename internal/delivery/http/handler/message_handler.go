package handler

import (
	"errors"

	"alumni-connect/internal/delivery/http/dto"
	"alumni-connect/internal/delivery/http/middleware"
	"alumni-connect/internal/domain/user"
	"alumni-connect/internal/pkg/response"
	ucmessage "alumni-connect/internal/usecase/message"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MessageHandler struct {
	uc *ucmessage.Service
}

type sendMessageRequest struct {
	ReceiverID uuid.UUID `json:"receiver_id"`
	Message    string    `json:"message"`
}

func NewMessageHandler(uc *ucmessage.Service) *MessageHandler {
	return &MessageHandler{uc: uc}
}

func (h *MessageHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/messages", h.Send)
	r.Get("/messages/:user_id", h.Conversation)
}

func (h *MessageHandler) Send(c fiber.Ctx) error {
	senderID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req sendMessageRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	m, err := h.uc.Send(c.Context(), ucmessage.SendInput{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Body:       req.Message,
	})
	if err != nil {
		if errors.Is(err, ucmessage.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMessageResponse(m))
}

func (h *MessageHandler) Conversation(c fiber.Ctx) error {
	callerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	userID, err := uuid.Parse(c.Params("user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}
	if callerID != userID {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}

	otherID, err := uuid.Parse(c.Query("other_user_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid other_user_id", nil, err)
	}

	msgs, err := h.uc.Conversation(c.Context(), userID, otherID)
	if err != nil {
		if errors.Is(err, ucmessage.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMessageListResponse(msgs))
}
