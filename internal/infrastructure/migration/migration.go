package migration

import (
	"fmt"
	"path/filepath"
	"strings"

	"gorm.io/gorm"

	"warsztat/internal/shared/config"
	"warsztat/internal/shared/constants"
	"warsztat/internal/shared/logger"
)

// Manager handles database migrations with different strategies
type Manager struct {
	strategy Strategy
	logger   logger.Interface
}

// NewManager selects a strategy from configuration, falling back to an
// environment-based choice when none is configured.
func NewManager(environment string, cfg *config.MigrationConfig) *Manager {
	scriptsPath, _ := filepath.Abs(cfg.ScriptsPath)

	var strategy Strategy
	switch strings.ToLower(cfg.Strategy) {
	case "goose":
		strategy = NewGooseStrategy(scriptsPath)
	case "golang_migrate":
		strategy = NewGolangMigrateStrategy(scriptsPath)
	case "gorm_auto_migrate":
		strategy = NewGormAutoMigrateStrategy()
	default:
		if strings.ToLower(environment) == constants.EnvDevelopment {
			strategy = NewGormAutoMigrateStrategy()
		} else {
			strategy = NewGooseStrategy(scriptsPath)
		}
	}

	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// NewManagerWithStrategy creates a new migration manager with a specific strategy
func NewManagerWithStrategy(strategy Strategy) *Manager {
	return &Manager{
		strategy: strategy,
		logger:   logger.NewLogger().With("component", "migration.manager"),
	}
}

// Migrate executes the configured migration strategy
func (m *Manager) Migrate(db *gorm.DB, models ...interface{}) error {
	m.logger.Infow("starting database migration",
		"strategy", m.strategy.GetName(),
		"models_count", len(models))

	if err := m.strategy.Migrate(db, models...); err != nil {
		m.logger.Errorw("migration failed",
			"strategy", m.strategy.GetName(),
			"error", err)
		return fmt.Errorf("migration failed with strategy %s: %w", m.strategy.GetName(), err)
	}

	m.logger.Infow("database migration completed successfully",
		"strategy", m.strategy.GetName())

	return nil
}

// GetStrategy returns the current migration strategy
func (m *Manager) GetStrategy() Strategy {
	return m.strategy
}
