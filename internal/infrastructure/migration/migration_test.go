package migration

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"warsztat/internal/shared/config"
)

type stubStrategy struct {
	name       string
	migrations int
	failWith   error
}

func (s *stubStrategy) Migrate(db *gorm.DB, models ...interface{}) error {
	s.migrations++
	return s.failWith
}

func (s *stubStrategy) GetName() string {
	return s.name
}

func TestNewManager_StrategySelection(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		strategy    string
		expected    string
	}{
		{name: "goose configured", environment: "production", strategy: "goose", expected: "goose"},
		{name: "golang-migrate configured", environment: "production", strategy: "golang_migrate", expected: "golang_migrate"},
		{name: "auto-migrate configured", environment: "production", strategy: "gorm_auto_migrate", expected: "gorm_auto_migrate"},
		{name: "case insensitive", environment: "production", strategy: "GOOSE", expected: "goose"},
		{name: "unconfigured development defaults to auto-migrate", environment: "development", strategy: "", expected: "gorm_auto_migrate"},
		{name: "unconfigured production defaults to goose", environment: "production", strategy: "", expected: "goose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manager := NewManager(tt.environment, &config.MigrationConfig{
				Strategy:    tt.strategy,
				ScriptsPath: "./scripts",
			})

			require.NotNil(t, manager.GetStrategy())
			assert.Equal(t, tt.expected, manager.GetStrategy().GetName())
		})
	}
}

func TestManager_MigrateDelegatesToStrategy(t *testing.T) {
	strategy := &stubStrategy{name: "stub"}
	manager := NewManagerWithStrategy(strategy)

	require.NoError(t, manager.Migrate(nil))
	assert.Equal(t, 1, strategy.migrations)
	assert.Same(t, strategy, manager.GetStrategy().(*stubStrategy))
}

func TestManager_MigrateWrapsStrategyError(t *testing.T) {
	strategy := &stubStrategy{name: "stub", failWith: errors.New("table locked")}
	manager := NewManagerWithStrategy(strategy)

	err := manager.Migrate(nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stub")
	assert.Contains(t, err.Error(), "table locked")
}
