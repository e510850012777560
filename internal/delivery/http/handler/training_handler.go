package handler

import (
	"pad2skills/internal/pkg/response"
	"pad2skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type TrainingHandler struct {
	uc usecase.TrainingUsecase
}

func NewTrainingHandler(uc usecase.TrainingUsecase) *TrainingHandler {
	return &TrainingHandler{uc: uc}
}

func (h *TrainingHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/training-bundles", h.List)
}

// List returns bundle rows as loaded. The companion file is optional, so a
// missing file answers 404 with a short message rather than failing.
func (h *TrainingHandler) List(c fiber.Ctx) error {
	bundles, err := h.uc.ListBundles(c.Context())
	if err != nil {
		if usecase.IsDataUnavailable(err) {
			return response.Error(c, fiber.StatusNotFound, "Training program data is not available.", nil)
		}
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, bundles)
}
