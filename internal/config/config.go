package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

type Config struct {
	App  AppConfig
	Data DataConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

// DataConfig points at the static CSV files. Paths are the only data
// configuration the dashboard takes.
type DataConfig struct {
	Dir string
}

const defaultDataDir = "data"

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Data = DataConfig{
		Dir: opt("DATA_DIR", defaultDataDir),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
