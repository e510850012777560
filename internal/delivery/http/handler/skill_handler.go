package handler

import (
	"pad2skills/internal/chart"
	"pad2skills/internal/delivery/http/middleware"
	"pad2skills/internal/domain/skill"
	"pad2skills/internal/pkg/response"
	"pad2skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// SkillHandler serves the skills-by-level page: the preparation-by-category
// heatmap, example skills, the filterable details table and the static
// job-preparation reference.
type SkillHandler struct {
	uc usecase.SkillsUsecase
}

func NewSkillHandler(uc usecase.SkillsUsecase) *SkillHandler {
	return &SkillHandler{uc: uc}
}

func (h *SkillHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/skills")
	grp.Get("/filters", h.Filters)
	grp.Get("/heatmap", h.Heatmap)
	grp.Get("/category-bar", h.CategoryBar)
	grp.Get("/examples", h.Examples)
	grp.Get("/details", h.Details)
	grp.Get("/details/export", h.ExportDetails)
	grp.Get("/preparation-reference", h.PreparationReference)
}

func (h *SkillHandler) Filters(c fiber.Ctx) error {
	filters, err := h.uc.Filters(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, filters)
}

// Heatmap degrades in place on load failures, like the donut endpoint.
func (h *SkillHandler) Heatmap(c fiber.Ctx) error {
	spec, err := h.uc.Heatmap(c.Context(), c.Query("project"), c.Query("industry"), queryBool(c, "top_five"))
	if err != nil {
		if usecase.IsDataUnavailable(err) {
			return response.Success(c, fiber.StatusOK, response.MessageOK, chart.NoData(usecase.UserMessage(err)))
		}
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, spec)
}

func (h *SkillHandler) CategoryBar(c fiber.Ctx) error {
	spec, err := h.uc.CategoryBar(c.Context(), c.Query("project"), c.Query("industry"), queryBool(c, "top_five"))
	if err != nil {
		if usecase.IsDataUnavailable(err) {
			return response.Success(c, fiber.StatusOK, response.MessageOK, chart.NoData(usecase.UserMessage(err)))
		}
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, spec)
}

func (h *SkillHandler) Examples(c fiber.Ctx) error {
	rows, err := h.uc.ExampleSkills(c.Context(), c.Query("project"), c.Query("industry"), queryBool(c, "top_five"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rows)
}

func (h *SkillHandler) Details(c fiber.Ctx) error {
	params, err := h.detailsParams(c)
	if err != nil {
		return err
	}

	details, err := h.uc.Details(c.Context(), params)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, details)
}

func (h *SkillHandler) ExportDetails(c fiber.Ctx) error {
	params, err := h.detailsParams(c)
	if err != nil {
		return err
	}

	data, filename, err := h.uc.ExportDetails(c.Context(), params)
	if err != nil {
		return err
	}
	return response.CSVAttachment(c, filename, data)
}

func (h *SkillHandler) PreparationReference(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"markdown": skill.PreparationReference,
	})
}

func (h *SkillHandler) detailsParams(c fiber.Ctx) (usecase.SkillDetailsParams, error) {
	page, err := queryPage(c)
	if err != nil {
		return usecase.SkillDetailsParams{}, middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	return usecase.SkillDetailsParams{
		Project:       c.Query("project"),
		Industry:      c.Query("industry"),
		TopFive:       queryBool(c, "top_five"),
		PrepLabel:     c.Query("preparation"),
		SkillCategory: c.Query("category"),
		Page:          page,
	}, nil
}
