package app

import (
	"log"

	"pad2skills/internal/chat"
	"pad2skills/internal/config"
	"pad2skills/internal/dataset"
	"pad2skills/internal/infrastructure/cache"
)

// Container holds the process-wide dependencies: the table loader, the
// aggregate cache and the chat hub.
type Container struct {
	Config  config.Config
	Loader  *dataset.Loader
	Paths   dataset.Paths
	Cache   *cache.Redis
	ChatHub *chat.Hub
	Logger  *log.Logger
}

func NewContainer(cfg config.Config, logger *log.Logger) *Container {
	return &Container{
		Config:  cfg,
		Loader:  dataset.NewLoader(logger),
		Paths:   dataset.PathsIn(cfg.Data.Dir),
		Cache:   cache.NewRedis(logger),
		ChatHub: chat.NewHub(logger),
		Logger:  logger,
	}
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
