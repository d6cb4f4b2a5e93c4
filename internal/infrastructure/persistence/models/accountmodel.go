package models

import "warsztat/internal/shared/constants"

// AccountModel is the persistence model for user accounts.
// This is the anti-corruption layer between domain and database.
// The role enumeration is additionally guarded by a CHECK constraint in the
// SQL migration scripts.
type AccountModel struct {
	ID           uint   `gorm:"primaryKey"`
	Login        string `gorm:"uniqueIndex;size:64;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Role         string `gorm:"size:20;not null"`
}

func (AccountModel) TableName() string {
	return constants.TableAccounts
}
