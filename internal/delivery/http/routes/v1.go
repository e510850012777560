package routes

import (
	"pad2skills/internal/delivery/http/handler"
	"pad2skills/internal/repository"
	"pad2skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// RegisterV1 wires the dataset repositories into usecases and mounts every
// page's endpoints under the versioned group.
func RegisterV1(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	occRepo := repository.NewDatasetOccupationRepository(deps.Loader, deps.Paths.ProjectOccupation)
	skillRepo := repository.NewDatasetSkillRepository(deps.Loader, deps.Paths.ProjectOccupationSkill)
	trainingRepo := repository.NewDatasetTrainingRepository(deps.Loader, deps.Paths.TrainingProgramBundles)

	overviewUC := usecase.NewOverviewUsecase(occRepo, deps.Cache)
	skillsUC := usecase.NewSkillsUsecase(skillRepo, occRepo, deps.Cache)
	trainingUC := usecase.NewTrainingUsecase(trainingRepo)
	statusUC := usecase.NewStatusUsecase(occRepo, skillRepo, trainingRepo, deps.Loader, deps.Paths, deps.Status)

	handler.NewProjectHandler(overviewUC).RegisterRoutes(r)
	handler.NewOccupationHandler(overviewUC).RegisterRoutes(r)
	handler.NewSkillHandler(skillsUC).RegisterRoutes(r)
	handler.NewTrainingHandler(trainingUC).RegisterRoutes(r)
	handler.NewChatHandler().RegisterRoutes(r)
	handler.NewStatusHandler(statusUC).RegisterRoutes(r)
}
