package memory

import (
	"context"

	"circlecheck/internal/domain/entity"
	"circlecheck/internal/domain/repository"

	"github.com/google/uuid"
)

type subscriptionResolver struct {
	store *Store
}

// NewSubscriptionResolver creates a resolver backed by the store.
func NewSubscriptionResolver(store *Store) repository.SubscriptionResolver {
	return &subscriptionResolver{store: store}
}

// FindRelevantSubscriptions mirrors get_relevant_radius_subscriptions.
func (r *subscriptionResolver) FindRelevantSubscriptions(_ context.Context, subjectUserID uuid.UUID) ([]*entity.RadiusSubscription, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]*entity.RadiusSubscription, 0)
	seen := make(map[uuid.UUID]struct{})

	for _, stored := range r.store.subscriptions {
		if stored.subscription.OwnerUserID == subjectUserID {
			continue
		}
		if _, member := r.store.members[stored.circleID][subjectUserID]; !member {
			continue
		}
		if _, dup := seen[stored.subscription.ID]; dup {
			continue
		}

		seen[stored.subscription.ID] = struct{}{}
		sub := stored.subscription
		result = append(result, &sub)
	}

	return result, nil
}
