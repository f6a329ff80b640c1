package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"circlecheck/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscriptionResolver_FindRelevantSubscriptions(t *testing.T) {
	store := NewStore()
	resolver := NewSubscriptionResolver(store)
	ctx := context.Background()

	circle := uuid.New()
	otherCircle := uuid.New()
	subject := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()

	store.AddMember(circle, subject)
	store.AddMember(circle, owner)
	store.AddMember(otherCircle, stranger)

	watching := &entity.RadiusSubscription{ID: uuid.New(), OwnerUserID: owner, CenterLat: 37, CenterLng: -122, RadiusMeters: 100}
	own := &entity.RadiusSubscription{ID: uuid.New(), OwnerUserID: subject, CenterLat: 37, CenterLng: -122, RadiusMeters: 100}
	foreign := &entity.RadiusSubscription{ID: uuid.New(), OwnerUserID: stranger, CenterLat: 37, CenterLng: -122, RadiusMeters: 100}

	store.AddSubscription(circle, watching)
	store.AddSubscription(circle, own)
	store.AddSubscription(otherCircle, foreign)

	subs, err := resolver.FindRelevantSubscriptions(ctx, subject)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, watching.ID, subs[0].ID)

	subs, err = resolver.FindRelevantSubscriptions(ctx, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, subs)
}

func TestDeviceTokenRepository(t *testing.T) {
	store := NewStore()
	repo := NewDeviceTokenRepository(store)
	ctx := context.Background()

	user := uuid.New()
	other := uuid.New()
	store.AddDeviceToken(user, "token-b")
	store.AddDeviceToken(user, "token-a")
	store.AddDeviceToken(other, "token-c")

	tokens, err := repo.FindTokensByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "token-a", tokens[0].Token)
	assert.Equal(t, "token-b", tokens[1].Token)

	require.NoError(t, repo.DeleteTokens(ctx, []string{"token-a", "unknown"}))

	tokens, err = repo.FindTokensByUser(ctx, user)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "token-b", tokens[0].Token)
}

func TestEntryStateRepository_ReadWrite(t *testing.T) {
	repo := NewEntryStateRepository(NewStore())
	ctx := context.Background()

	subID := uuid.New()
	subject := uuid.New()

	inside, found, err := repo.Read(ctx, subID, subject)
	require.NoError(t, err)
	assert.False(t, inside)
	assert.False(t, found)

	require.NoError(t, repo.Write(ctx, &entity.EntryState{SubscriptionID: subID, SubjectUserID: subject, Inside: true, UpdatedAt: time.Now()}))

	inside, found, err = repo.Read(ctx, subID, subject)
	require.NoError(t, err)
	assert.True(t, inside)
	assert.True(t, found)

	require.NoError(t, repo.Write(ctx, &entity.EntryState{SubscriptionID: subID, SubjectUserID: subject, Inside: false, UpdatedAt: time.Now()}))

	inside, _, err = repo.Read(ctx, subID, subject)
	require.NoError(t, err)
	assert.False(t, inside)
}

func TestEntryStateRepository_ApplyTransition(t *testing.T) {
	store := NewStore()
	repo := NewEntryStateRepository(store)
	ctx := context.Background()

	subID := uuid.New()
	subject := uuid.New()
	apply := func(inside bool) entity.Transition {
		transition, err := repo.ApplyTransition(ctx, &entity.EntryState{
			SubscriptionID: subID,
			SubjectUserID:  subject,
			Inside:         inside,
			UpdatedAt:      time.Now(),
		})
		require.NoError(t, err)

		return transition
	}

	assert.Equal(t, entity.TransitionNone, apply(false), "first outside observation")
	assert.Equal(t, entity.TransitionEnter, apply(true))
	assert.Equal(t, entity.TransitionNone, apply(true))
	assert.Equal(t, entity.TransitionExit, apply(false))
	assert.Equal(t, entity.TransitionNone, apply(false))
	assert.Equal(t, entity.TransitionEnter, apply(true))

	state, ok := store.State(subID, subject)
	require.True(t, ok)
	assert.True(t, state.Inside)
}

func TestEntryStateRepository_ConcurrentEnterReportedOnce(t *testing.T) {
	repo := NewEntryStateRepository(NewStore())
	ctx := context.Background()

	subID := uuid.New()
	subject := uuid.New()

	const workers = 32
	var (
		wg     sync.WaitGroup
		enters atomic.Int32
	)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			transition, err := repo.ApplyTransition(ctx, &entity.EntryState{
				SubscriptionID: subID,
				SubjectUserID:  subject,
				Inside:         true,
				UpdatedAt:      time.Now(),
			})
			assert.NoError(t, err)

			if transition == entity.TransitionEnter {
				enters.Add(1)
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, int32(1), enters.Load())
}
