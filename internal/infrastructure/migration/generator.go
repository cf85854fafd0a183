package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/orris-inc/estatehub/internal/shared/logger"
)

// Generator handles creation of new migration files
type Generator struct {
	scriptsPath string
	logger      logger.Interface
	now         func() time.Time
}

// NewGenerator creates a new migration generator
func NewGenerator(scriptsPath string) *Generator {
	return &Generator{
		scriptsPath: scriptsPath,
		logger:      logger.NewLogger().With("component", "migration.generator"),
		now:         time.Now,
	}
}

// CreateMigration writes an empty up/down script pair and returns their paths
func (g *Generator) CreateMigration(name string) (string, string, error) {
	if name == "" {
		return "", "", fmt.Errorf("migration name is required")
	}

	timestamp := g.now().UTC().Format("20060102150405")
	upFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.up.sql", timestamp, name))
	downFilePath := filepath.Join(g.scriptsPath, fmt.Sprintf("%s_%s.down.sql", timestamp, name))

	if err := os.MkdirAll(g.scriptsPath, 0o755); err != nil {
		return "", "", fmt.Errorf("failed to create scripts directory: %w", err)
	}

	header := fmt.Sprintf("-- Migration: %s\n-- Created: %s\n\n", name, g.now().UTC().Format(time.DateTime))
	if err := os.WriteFile(upFilePath, []byte(header), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create up migration file: %w", err)
	}
	if err := os.WriteFile(downFilePath, []byte("-- Rollback "+header[3:]), 0o644); err != nil {
		return "", "", fmt.Errorf("failed to create down migration file: %w", err)
	}

	g.logger.Infow("migration files created successfully",
		"up_file", upFilePath,
		"down_file", downFilePath)

	return upFilePath, downFilePath, nil
}
