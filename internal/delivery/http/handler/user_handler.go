package handler

import (
	"errors"

	"alumni-connect/internal/delivery/http/dto"
	"alumni-connect/internal/delivery/http/middleware"
	"alumni-connect/internal/domain/user"
	"alumni-connect/internal/pkg/response"
	ucuser "alumni-connect/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type UserHandler struct {
	uc *ucuser.Service
}

type updateProfileRequest struct {
	FullName       *string `json:"full_name"`
	Location       *string `json:"location"`
	Company        *string `json:"company"`
	Domain         *string `json:"domain"`
	Phone          *string `json:"phone"`
	ProfilePicture *string `json:"profile_picture"`
}

func NewUserHandler(uc *ucuser.Service) *UserHandler {
	return &UserHandler{uc: uc}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/user/:id", h.GetUser)
	r.Put("/user/:id", h.UpdateUser)
	r.Get("/alumni", h.ListAlumni)
}

func (h *UserHandler) GetUser(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	snap, err := h.uc.GetUser(c.Context(), id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(snap))
}

func (h *UserHandler) UpdateUser(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid user id", nil, err)
	}

	callerID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	if callerID != id {
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid request payload", nil, err)
	}

	snap, err := h.uc.UpdateProfile(c.Context(), id, ucuser.UpdateProfileInput{
		FullName:       req.FullName,
		Location:       req.Location,
		Company:        req.Company,
		Domain:         req.Domain,
		Phone:          req.Phone,
		ProfilePicture: req.ProfilePicture,
	})
	if err != nil {
		if errors.Is(err, ucuser.ErrInvalidInput) {
			return middleware.NewAppError(fiber.StatusBadRequest, "No fields to update", nil, err)
		}
		if errors.Is(err, user.ErrNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(snap))
}

func (h *UserHandler) ListAlumni(c fiber.Ctx) error {
	list, err := h.uc.ListAlumni(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}

	out := make([]dto.AlumniResponse, 0, len(list))
	for _, u := range list {
		out = append(out, dto.NewAlumniResponse(u))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
