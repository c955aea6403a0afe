package handler

import (
	"errors"

	"alumni-connect/internal/delivery/http/middleware"
	"alumni-connect/internal/pkg/response"
	ucfeedback "alumni-connect/internal/usecase/feedback"

	"github.com/gofiber/fiber/v3"
)

type FeedbackHandler struct {
	uc *ucfeedback.Service
}

type feedbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func NewFeedbackHandler(uc *ucfeedback.Service) *FeedbackHandler {
	return &FeedbackHandler{uc: uc}
}

func (h *FeedbackHandler) Submit(c fiber.Ctx) error {
	var req feedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	_, err := h.uc.Submit(c.Context(), ucfeedback.SubmitInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, ucfeedback.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, "Thank you for your feedback!", nil)
}
