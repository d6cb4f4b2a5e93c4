package migration

import (
	"fmt"

	"gorm.io/gorm"

	"warsztat/internal/infrastructure/persistence/models"
	"warsztat/internal/shared/logger"
)

// GormAutoMigrateStrategy derives the schema from the model structs. Suitable
// for development only; the role CHECK constraint and login foreign keys live
// in the SQL scripts, so production environments use goose or golang-migrate.
type GormAutoMigrateStrategy struct {
	logger logger.Interface
}

func NewGormAutoMigrateStrategy() *GormAutoMigrateStrategy {
	return &GormAutoMigrateStrategy{
		logger: logger.NewLogger().With("component", "migration.gorm-automigrate"),
	}
}

func (s *GormAutoMigrateStrategy) Migrate(db *gorm.DB, modelList ...interface{}) error {
	s.logger.Infow("starting GORM AutoMigrate", "models_count", len(modelList))

	if err := db.AutoMigrate(modelList...); err != nil {
		s.logger.Errorw("AutoMigrate failed", "error", err)
		return fmt.Errorf("failed to auto-migrate models: %w", err)
	}

	s.logger.Infow("AutoMigrate completed successfully")
	return nil
}

func (s *GormAutoMigrateStrategy) GetName() string {
	return "gorm_auto_migrate"
}

// AutoMigrateModels returns every persistence model the schema contains.
func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.AccountModel{},
		&models.ServiceRequestModel{},
		&models.ArchivedRequestModel{},
		&models.ScheduleSlotModel{},
	}
}
