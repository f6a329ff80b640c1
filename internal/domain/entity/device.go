// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// DeviceToken represents an installed application instance registered for push notifications.
// A user may own many tokens.
type DeviceToken struct {
	UserID uuid.UUID `json:"user_id"` // The ID of the user who owns this device.
	Token  string    `json:"token"`   // Opaque push token addressed by the gateway.
}
