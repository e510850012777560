package handler

import (
	"pad2skills/internal/pkg/response"
	"pad2skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProjectHandler struct {
	uc usecase.OverviewUsecase
}

type projectListResponse struct {
	Options  []string `json:"options"`
	Projects []string `json:"projects"`
}

func NewProjectHandler(uc usecase.OverviewUsecase) *ProjectHandler {
	return &ProjectHandler{uc: uc}
}

func (h *ProjectHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	grp := r.Group("/projects")
	grp.Get("/", h.List)
	grp.Get("/info", h.Info)
}

// List returns the selector options: ALL first, then project titles sorted
// ascending, optionally narrowed by ?search=.
func (h *ProjectHandler) List(c fiber.Ctx) error {
	projects, err := h.uc.Projects(c.Context(), c.Query("search"))
	if err != nil {
		return err
	}

	options := make([]string, 0, len(projects)+1)
	options = append(options, "ALL")
	options = append(options, projects...)

	return response.Success(c, fiber.StatusOK, response.MessageOK, projectListResponse{
		Options:  options,
		Projects: projects,
	})
}

func (h *ProjectHandler) Info(c fiber.Ctx) error {
	info, err := h.uc.ProjectInfo(c.Context(), c.Query("title"))
	if err != nil {
		return err
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, info)
}
