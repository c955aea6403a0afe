package handler

import (
	"errors"

	"alumni-connect/internal/delivery/http/dto"
	"alumni-connect/internal/delivery/http/middleware"
	"alumni-connect/internal/domain/user"
	"alumni-connect/internal/pkg/response"
	ucdonation "alumni-connect/internal/usecase/donation"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type DonationHandler struct {
	uc *ucdonation.Service
}

type donationRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Amount  float64 `json:"amount"`
	Purpose string  `json:"purpose"`
	Message *string `json:"message"`
}

func NewDonationHandler(uc *ucdonation.Service) *DonationHandler {
	return &DonationHandler{uc: uc}
}

func (h *DonationHandler) Donate(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req donationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	d, err := h.uc.Create(c.Context(), ucdonation.CreateInput{
		UserID:  userID,
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Amount:  req.Amount,
		Purpose: req.Purpose,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, ucdonation.ErrAmountOutOfRange) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Donation amount must be between $10 and $10,000", nil, err)
		}
		if errors.Is(err, ucdonation.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewDonationResponse(d))
}
