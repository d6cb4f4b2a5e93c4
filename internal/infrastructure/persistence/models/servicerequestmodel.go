package models

import (
	"time"

	"warsztat/internal/shared/constants"
)

// ServiceRequestModel is the persistence model for active service requests.
// CreatedAt is written explicitly by the mapper; the archive flow depends on
// the original timestamp being preserved rather than regenerated.
type ServiceRequestModel struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"not null;index"`
	FirstName string    `gorm:"size:100;not null"`
	LastName  string    `gorm:"size:100;not null"`
	Login     *string   `gorm:"size:64;index"`
	Phone     string    `gorm:"size:32;not null"`
	Slot      string    `gorm:"size:64;not null"`
	Subject   string    `gorm:"type:text;not null"`

	// Declared for schema generation only; never preloaded or auto-saved.
	// ON UPDATE CASCADE keeps the reference following a renamed login,
	// ON DELETE SET NULL orphans the request instead of removing it.
	Account *AccountModel `gorm:"foreignKey:Login;references:Login;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
}

func (ServiceRequestModel) TableName() string {
	return constants.TableServiceRequests
}
