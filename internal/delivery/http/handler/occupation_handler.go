package handler

import (
	"strconv"

	"pad2skills/internal/chart"
	"pad2skills/internal/delivery/http/middleware"
	"pad2skills/internal/pkg/response"
	"pad2skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// OccupationHandler serves the occupations overview page: the industry
// donut, example jobs and the paginated details table with CSV export.
type OccupationHandler struct {
	uc usecase.OverviewUsecase
}

func NewOccupationHandler(uc usecase.OverviewUsecase) *OccupationHandler {
	return &OccupationHandler{uc: uc}
}

func (h *OccupationHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/occupations")
	grp.Get("/industry-donut", h.IndustryDonut)
	grp.Get("/examples", h.Examples)
	grp.Get("/details", h.Details)
	grp.Get("/details/export", h.ExportDetails)
}

// IndustryDonut degrades in place: a load failure answers 200 with the
// no-data placeholder carrying the short message, so the chart slot renders
// the message instead of an error screen.
func (h *OccupationHandler) IndustryDonut(c fiber.Ctx) error {
	donut, err := h.uc.IndustryDonut(c.Context(), c.Query("project"))
	if err != nil {
		if usecase.IsDataUnavailable(err) {
			return response.Success(c, fiber.StatusOK, response.MessageOK, usecase.IndustryDonut{
				Chart: chart.NoData(usecase.UserMessage(err)),
			})
		}
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, donut)
}

func (h *OccupationHandler) Examples(c fiber.Ctx) error {
	rows, err := h.uc.ExampleJobs(c.Context(), c.Query("project"), c.Query("industry"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, rows)
}

func (h *OccupationHandler) Details(c fiber.Ctx) error {
	page, err := queryPage(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, err)
	}

	details, err := h.uc.Details(c.Context(), c.Query("project"), c.Query("industry"), page)
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, details)
}

func (h *OccupationHandler) ExportDetails(c fiber.Ctx) error {
	data, filename, err := h.uc.ExportDetails(c.Context(), c.Query("project"), c.Query("industry"))
	if err != nil {
		return err
	}
	return response.CSVAttachment(c, filename, data)
}

func queryPage(c fiber.Ctx) (int, error) {
	s := c.Query("page")
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}

func queryBool(c fiber.Ctx, key string) bool {
	v, err := strconv.ParseBool(c.Query(key))
	return err == nil && v
}
