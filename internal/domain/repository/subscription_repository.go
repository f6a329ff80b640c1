// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"circlecheck/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when state is recorded for a subscription that no longer exists.
	ErrSubscriptionNotFound = errors.New("radius subscription not found")
)

// SubscriptionResolver finds the radius subscriptions that may watch a given subject.
type SubscriptionResolver interface {
	// FindRelevantSubscriptions returns the subscriptions whose owners are allowed to watch the subject,
	// typically because they share a circle. An empty result is not an error.
	FindRelevantSubscriptions(ctx context.Context, subjectUserID uuid.UUID) ([]*entity.RadiusSubscription, error)
}
