package migration

import (
	"fmt"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/orris-inc/estatehub/internal/shared/logger"
)

const (
	StrategyAuto = "auto"
	StrategySQL  = "sql"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager picks the strategy configured by database.migration_strategy
func NewManager(strategyName, scriptsPath string) (*Manager, error) {
	var strategy Strategy
	switch strategyName {
	case StrategyAuto, "":
		strategy = NewGormAutoMigrateStrategy()
	case StrategySQL:
		absPath, err := filepath.Abs(scriptsPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve migrations path: %w", err)
		}
		strategy = NewGolangMigrateStrategy(absPath)
	default:
		return nil, fmt.Errorf("unknown migration strategy %q", strategyName)
	}

	return NewManagerWithStrategy(strategy), nil
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB) error {
	m.logger.Infow("starting database migration", "strategy", m.strategy.GetName())

	if err := m.strategy.Migrate(db); err != nil {
		m.logger.Errorw("migration failed", "strategy", m.strategy.GetName(), "error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully", "strategy", m.strategy.GetName())
	return nil
}

func (m *Manager) Status(db *gorm.DB) (string, error) {
	return m.strategy.Status(db)
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
