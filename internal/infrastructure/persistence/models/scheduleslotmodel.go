package models

import (
	"time"

	"warsztat/internal/shared/constants"
)

// ScheduleSlotModel is the workshop schedule table. The table is part of the
// schema contract but no operation writes to it yet; requests carry their
// desired slot as free text until scheduling is built out.
type ScheduleSlotModel struct {
	ID       uint      `gorm:"primaryKey"`
	StartsAt time.Time `gorm:"not null;index"`
	Capacity int       `gorm:"not null;default:1"`
}

func (ScheduleSlotModel) TableName() string {
	return constants.TableScheduleSlots
}
