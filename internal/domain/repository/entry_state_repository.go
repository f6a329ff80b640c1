// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"circlecheck/internal/domain/entity"

	"github.com/google/uuid"
)

// EntryStateRepository persists the last inside/outside flag per (subscription, subject) pair.
type EntryStateRepository interface {
	// Read returns the stored inside flag. found is false when no row exists for the pair.
	Read(ctx context.Context, subscriptionID, subjectUserID uuid.UUID) (inside bool, found bool, err error)

	// Write upserts the state, overwriting any prior row for the same pair.
	Write(ctx context.Context, state *entity.EntryState) error

	// ApplyTransition stores the state and reports the transition from the previously stored flag
	// as one indivisible operation, so concurrent writers for the same pair observe each edge once.
	ApplyTransition(ctx context.Context, state *entity.EntryState) (entity.Transition, error)
}
