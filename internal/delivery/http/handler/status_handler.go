package handler

import (
	"pad2skills/internal/pkg/response"
	"pad2skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type StatusHandler struct {
	uc usecase.StatusUsecase
}

func NewStatusHandler(uc usecase.StatusUsecase) *StatusHandler {
	return &StatusHandler{uc: uc}
}

func (h *StatusHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/status", h.Get)
	r.Post("/status/reload", h.Reload)
}

func (h *StatusHandler) Get(c fiber.Ctx) error {
	st, err := h.uc.GetStatus(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}

// Reload drops loaded tables and memoized aggregates so replaced CSV files
// take effect, then answers with the fresh status.
func (h *StatusHandler) Reload(c fiber.Ctx) error {
	st, err := h.uc.Reload(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, st)
}
