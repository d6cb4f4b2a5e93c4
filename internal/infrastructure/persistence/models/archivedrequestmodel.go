package models

import (
	"time"

	"warsztat/internal/shared/constants"
)

// ArchivedRequestModel is the persistence model for archived service requests.
// Rows are written once by the archive transaction and never updated.
type ArchivedRequestModel struct {
	ID         uint      `gorm:"primaryKey"`
	CreatedAt  time.Time `gorm:"not null"`
	FirstName  string    `gorm:"size:100;not null"`
	LastName   string    `gorm:"size:100;not null"`
	Login      *string   `gorm:"size:64;index"`
	Phone      string    `gorm:"size:32;not null"`
	Slot       string    `gorm:"size:64;not null"`
	Subject    string    `gorm:"type:text;not null"`
	ArchivedAt time.Time `gorm:"not null;index"`

	Account *AccountModel `gorm:"foreignKey:Login;references:Login;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (ArchivedRequestModel) TableName() string {
	return constants.TableArchivedRequests
}
