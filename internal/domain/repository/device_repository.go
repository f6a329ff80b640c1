// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"circlecheck/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceTokenRepository defines read access to the device-token registry.
type DeviceTokenRepository interface {
	// FindTokensByUser retrieves every registered token of a user.
	FindTokensByUser(ctx context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error)

	// DeleteTokens removes tokens the push gateway reported as no longer registered.
	DeleteTokens(ctx context.Context, tokens []string) error
}
