package model

import (
	"time"

	"github.com/google/uuid"
)

// RadiusSubscriptionModel is the GORM-specific struct for the 'radius_subscriptions' table.
// A subscription watches every other member of its circle.
type RadiusSubscriptionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CircleID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;not null;index"`
	CenterLat   float64   `gorm:"type:double precision;not null"`
	CenterLng   float64   `gorm:"type:double precision;not null"`
	RadiusM     float64   `gorm:"column:radius_m;type:double precision;not null"`
	Active      bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (RadiusSubscriptionModel) TableName() string {
	return "radius_subscriptions"
}

// RelevantSubscriptionRow is a row returned by get_relevant_radius_subscriptions.
type RelevantSubscriptionRow struct {
	SubscriptionID uuid.UUID `gorm:"column:subscription_id"`
	OwnerUserID    uuid.UUID `gorm:"column:owner_user_id"`
	CenterLat      float64   `gorm:"column:center_lat"`
	CenterLng      float64   `gorm:"column:center_lng"`
	RadiusM        float64   `gorm:"column:radius_m"`
}
