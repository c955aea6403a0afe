package handler

import (
	"alumni-connect/internal/delivery/http/middleware"
	"alumni-connect/internal/pkg/response"
	ucstats "alumni-connect/internal/usecase/stats"

	"github.com/gofiber/fiber/v3"
)

type StatsHandler struct {
	uc *ucstats.Service
}

func NewStatsHandler(uc *ucstats.Service) *StatsHandler {
	return &StatsHandler{uc: uc}
}

func (h *StatsHandler) Overview(c fiber.Ctx) error {
	out, err := h.uc.Overview(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}
