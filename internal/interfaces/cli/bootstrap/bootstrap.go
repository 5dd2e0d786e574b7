// Package bootstrap loads configuration, logging and the database for the
// one-shot CLI commands.
package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/inkfolio/inkfolio/internal/infrastructure/config"
	"github.com/inkfolio/inkfolio/internal/infrastructure/database"
	"github.com/inkfolio/inkfolio/internal/shared/constants"
	"github.com/inkfolio/inkfolio/internal/shared/logger"
)

type Env struct {
	Config *config.Config
	Log    logger.Interface
	DB     *gorm.DB
}

// Open loads config for env, initializes the logger and opens the database.
// Callers must Close the result.
func Open(env string) (*Env, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, MapEnvToGinMode(env)); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	db, err := database.New(&cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Env{Config: cfg, Log: log, DB: db}, nil
}

func (e *Env) Close() {
	if err := database.Close(e.DB); err != nil {
		e.Log.Warnw("failed to close database", "error", err)
	}
}

// MapEnvToGinMode maps a deployment environment to a gin mode.
func MapEnvToGinMode(environment string) string {
	switch environment {
	case constants.EnvProduction, "prod", "release":
		return "release"
	case constants.EnvTest, "testing":
		return "test"
	default:
		return "debug"
	}
}
