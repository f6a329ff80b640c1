package memory

import (
	"context"
	"sort"

	"circlecheck/internal/domain/entity"
	"circlecheck/internal/domain/repository"

	"github.com/google/uuid"
)

type deviceTokenRepository struct {
	store *Store
}

// NewDeviceTokenRepository creates a device-token registry backed by the store.
func NewDeviceTokenRepository(store *Store) repository.DeviceTokenRepository {
	return &deviceTokenRepository{store: store}
}

func (r *deviceTokenRepository) FindTokensByUser(_ context.Context, userID uuid.UUID) ([]*entity.DeviceToken, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	tokens := make([]*entity.DeviceToken, 0)
	for token, owner := range r.store.tokens {
		if owner == userID {
			tokens = append(tokens, &entity.DeviceToken{UserID: owner, Token: token})
		}
	}

	// Map iteration order is random
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Token < tokens[j].Token })

	return tokens, nil
}

func (r *deviceTokenRepository) DeleteTokens(_ context.Context, tokens []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, token := range tokens {
		delete(r.store.tokens, token)
	}

	return nil
}
