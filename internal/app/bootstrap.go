package app

import (
	"fmt"
	"log"
	"strings"

	"pad2skills/internal/config"
	"pad2skills/internal/delivery/http/middleware"
	"pad2skills/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func New(cfg config.Config, logger *log.Logger) *App {
	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})

	container := NewContainer(cfg, logger)

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, container)

	return &App{Fiber: f, Container: container}
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	app := New(cfg, logger)
	return app, app.Container.Close, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	routes.NewRegistry().Register(app, routes.Deps{
		Loader:  c.Loader,
		Paths:   c.Paths,
		Cache:   c.Cache,
		Status:  c.Cache,
		ChatHub: c.ChatHub,
		Logger:  c.Logger,
	})
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
