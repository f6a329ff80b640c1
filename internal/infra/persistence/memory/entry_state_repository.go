package memory

import (
	"context"

	"circlecheck/internal/domain/entity"
	"circlecheck/internal/domain/repository"

	"github.com/google/uuid"
)

type entryStateRepository struct {
	store *Store
}

// NewEntryStateRepository creates an entry state store backed by the store.
func NewEntryStateRepository(store *Store) repository.EntryStateRepository {
	return &entryStateRepository{store: store}
}

func (r *entryStateRepository) Read(_ context.Context, subscriptionID, subjectUserID uuid.UUID) (bool, bool, error) {
	state, found := r.store.State(subscriptionID, subjectUserID)

	return state.Inside, found, nil
}

func (r *entryStateRepository) Write(_ context.Context, state *entity.EntryState) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.states[pairKey{state.SubscriptionID, state.SubjectUserID}] = *state

	return nil
}

// ApplyTransition reads and writes under one lock.
func (r *entryStateRepository) ApplyTransition(_ context.Context, state *entity.EntryState) (entity.Transition, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := pairKey{state.SubscriptionID, state.SubjectUserID}
	prior := r.store.states[key]
	r.store.states[key] = *state

	return entity.TransitionBetween(prior.Inside, state.Inside), nil
}
