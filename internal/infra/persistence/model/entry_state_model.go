package model

import (
	"time"

	"github.com/google/uuid"
)

// EntryStateModel is the GORM-specific struct for the 'entry_states' table.
type EntryStateModel struct {
	SubscriptionID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SubjectUserID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Inside         bool      `gorm:"not null;default:false"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName explicitly sets the table name for GORM.
func (EntryStateModel) TableName() string {
	return "entry_states"
}
