package model

import (
	"time"

	"github.com/google/uuid"
)

// MembershipModel is the GORM-specific struct for the 'memberships' table.
type MembershipModel struct {
	CircleID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MembershipModel) TableName() string {
	return "memberships"
}
