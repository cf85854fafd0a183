// Package bootstrap holds the startup sequence shared by the CLI commands.
package bootstrap

import (
	"fmt"
	"os"

	"github.com/orris-inc/estatehub/internal/infrastructure/config"
	"github.com/orris-inc/estatehub/internal/infrastructure/database"
	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// ResolveEnv lets the ENV variable override the --env flag.
func ResolveEnv(flagValue string) string {
	if envVar := os.Getenv("ENV"); envVar != "" {
		return envVar
	}
	return flagValue
}

// Init loads configuration, installs the global logger and opens the database.
// Callers close the database with database.Close.
func Init(env string) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, env == "development"); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return cfg, log, nil
}
