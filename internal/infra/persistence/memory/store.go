// Package memory keeps circles, subscriptions, device tokens and entry states in process memory.
// It serves local runs and tests with the same semantics as the PostgreSQL adapters.
package memory

import (
	"sync"

	"circlecheck/internal/domain/entity"

	"github.com/google/uuid"
)

type pairKey struct {
	subscriptionID uuid.UUID
	subjectUserID  uuid.UUID
}

type storedSubscription struct {
	subscription entity.RadiusSubscription
	circleID     uuid.UUID
}

// Store is a mutex-protected in-memory dataset.
type Store struct {
	mu sync.RWMutex

	members       map[uuid.UUID]map[uuid.UUID]struct{} // circle -> users
	subscriptions []storedSubscription
	tokens        map[string]uuid.UUID // token -> user
	states        map[pairKey]entity.EntryState
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		members: make(map[uuid.UUID]map[uuid.UUID]struct{}),
		tokens:  make(map[string]uuid.UUID),
		states:  make(map[pairKey]entity.EntryState),
	}
}

// AddMember puts a user into a circle.
func (s *Store) AddMember(circleID, userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.members[circleID] == nil {
		s.members[circleID] = make(map[uuid.UUID]struct{})
	}
	s.members[circleID][userID] = struct{}{}
}

// AddSubscription registers a geofence watching the members of a circle.
func (s *Store) AddSubscription(circleID uuid.UUID, sub *entity.RadiusSubscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscriptions = append(s.subscriptions, storedSubscription{subscription: *sub, circleID: circleID})
}

// AddDeviceToken registers a push token. Re-registering a token moves it to userID.
func (s *Store) AddDeviceToken(userID uuid.UUID, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[token] = userID
}

// State returns a copy of the stored state of a pair.
func (s *Store) State(subscriptionID, subjectUserID uuid.UUID) (entity.EntryState, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[pairKey{subscriptionID, subjectUserID}]

	return state, ok
}
