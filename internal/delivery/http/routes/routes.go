package routes

import (
	"log"

	"pad2skills/internal/chat"
	"pad2skills/internal/dataset"
	"pad2skills/internal/delivery/http/handler"
	"pad2skills/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps is everything route registration needs from the bootstrap.
type Deps struct {
	Loader  *dataset.Loader
	Paths   dataset.Paths
	Cache   usecase.AggregateCache
	Status  usecase.StatusCache
	ChatHub *chat.Hub
	Logger  *log.Logger
}

type Registry struct {
	health *handler.HealthHandler
}

func NewRegistry() *Registry {
	return &Registry{health: handler.NewHealthHandler()}
}

func (r *Registry) Register(app *fiber.App, deps Deps) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	api := app.Group("/api")
	RegisterV1(api.Group("/v1"), deps)

	chatHandler := chat.NewHandler(deps.ChatHub, deps.Logger)
	app.Get("/ws/chat", chatHandler.HandleChatWS)
}
