package seeds

import (
	"fmt"

	"gorm.io/gorm"

	"warsztat/internal/infrastructure/persistence/models"
	"warsztat/internal/shared/authorization"
	"warsztat/internal/shared/constants"
	"warsztat/internal/shared/logger"
)

// PasswordHasher is the subset of the hashing service the seed needs.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// SeedAdminAccount ensures the bootstrap admin account exists. An existing
// account is left untouched so a changed configuration password never
// silently overwrites a hash that was rotated through the application.
func SeedAdminAccount(db *gorm.DB, hasher PasswordHasher, password string) error {
	var count int64
	if err := db.
		Model(&models.AccountModel{}).
		Where("login = ?", constants.BootstrapAdminLogin).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}

	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.AccountModel{
		Login:        constants.BootstrapAdminLogin,
		PasswordHash: hash,
		Role:         authorization.RoleAdmin.String(),
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("bootstrap admin account created", "login", constants.BootstrapAdminLogin)
	return nil
}
