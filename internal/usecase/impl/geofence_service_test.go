package impl

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"circlecheck/config"
	"circlecheck/internal/domain/constants"
	"circlecheck/internal/domain/entity"
	mockRepo "circlecheck/internal/mocks/repository"
	mockService "circlecheck/internal/mocks/service"
	mockUsecase "circlecheck/internal/mocks/usecase"
	"circlecheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type geofenceServiceMocks struct {
	resolver   *mockRepo.MockSubscriptionResolver
	stateRepo  *mockRepo.MockEntryStateRepository
	dispatcher *mockUsecase.MockNotificationDispatcher
}

func newTestGeofenceService(t *testing.T, geofenceCfg *config.GeofenceConfig) (usecase.GeofenceUsecase, *geofenceServiceMocks) {
	t.Helper()

	mocks := &geofenceServiceMocks{
		resolver:   mockRepo.NewMockSubscriptionResolver(t),
		stateRepo:  mockRepo.NewMockEntryStateRepository(t),
		dispatcher: mockUsecase.NewMockNotificationDispatcher(t),
	}

	svc := NewGeofenceService(GeofenceServiceParams{
		Config:     &config.Config{Geofence: geofenceCfg},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError})),
		Resolver:   mocks.resolver,
		StateRepo:  mocks.stateRepo,
		Dispatcher: mocks.dispatcher,
	})

	return svc, mocks
}

func newTestSubscription(lat, lng, radius float64) *entity.RadiusSubscription {
	return &entity.RadiusSubscription{
		ID:           uuid.New(),
		OwnerUserID:  uuid.New(),
		CenterLat:    lat,
		CenterLng:    lng,
		RadiusMeters: radius,
	}
}

func stateFor(sub *entity.RadiusSubscription, subject uuid.UUID, inside bool) interface{} {
	return mock.MatchedBy(func(state *entity.EntryState) bool {
		return state.SubscriptionID == sub.ID &&
			state.SubjectUserID == subject &&
			state.Inside == inside &&
			!state.UpdatedAt.IsZero()
	})
}

func TestGeofenceService_EnterTransitionDispatchesOnce(t *testing.T) {
	svc, mocks := newTestGeofenceService(t, nil)
	ctx := context.Background()

	subject := uuid.New()
	sub := newTestSubscription(37.0, -122.0, 100)
	event := entity.NewLocationUpdateEvent(subject, 37.0, -122.0, time.Now())

	mocks.resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).
		Return([]*entity.RadiusSubscription{sub}, nil)
	mocks.stateRepo.EXPECT().ApplyTransition(ctx, stateFor(sub, subject, true)).
		Return(entity.TransitionEnter, nil)
	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(requests []usecase.DispatchRequest) bool {
			return len(requests) == 1 &&
				requests[0].Transition == entity.TransitionEnter &&
				requests[0].Evaluation.Subscription == sub &&
				requests[0].Evaluation.DistanceRoundedMeters == 0 &&
				requests[0].Event == event
		})).
		Return(&usecase.DispatchResult{MessagesBuilt: 1, MessagesSent: 1})

	result, err := svc.ProcessLocationUpdate(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.SubscriptionsEvaluated)
	assert.Equal(t, 1, result.EnterTransitions)
	assert.Equal(t, 1, result.MessagesSent)
}

func TestGeofenceService_StayingInsideDoesNotDispatch(t *testing.T) {
	svc, mocks := newTestGeofenceService(t, nil)
	ctx := context.Background()

	subject := uuid.New()
	sub := newTestSubscription(37.0, -122.0, 100)
	event := entity.NewLocationUpdateEvent(subject, 37.0, -122.0, time.Now())

	mocks.resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).
		Return([]*entity.RadiusSubscription{sub}, nil)
	mocks.stateRepo.EXPECT().ApplyTransition(ctx, stateFor(sub, subject, true)).
		Return(entity.TransitionNone, nil)

	result, err := svc.ProcessLocationUpdate(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 0, result.EnterTransitions)
	assert.Equal(t, 0, result.MessagesBuilt)
	mocks.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestGeofenceService_ExitIsSilentByDefault(t *testing.T) {
	svc, mocks := newTestGeofenceService(t, nil)
	ctx := context.Background()

	subject := uuid.New()
	sub := newTestSubscription(37.0, -122.0, 500)
	event := entity.NewLocationUpdateEvent(subject, 37.0+2000/metersPerDegreeLat, -122.0, time.Now())

	mocks.resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).
		Return([]*entity.RadiusSubscription{sub}, nil)
	mocks.stateRepo.EXPECT().ApplyTransition(ctx, stateFor(sub, subject, false)).
		Return(entity.TransitionExit, nil)

	result, err := svc.ProcessLocationUpdate(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.ExitTransitions)
	assert.Equal(t, 0, result.MessagesBuilt)
	mocks.dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestGeofenceService_ExitNotifiesWhenEnabled(t *testing.T) {
	svc, mocks := newTestGeofenceService(t, &config.GeofenceConfig{NotifyOnExit: true})
	ctx := context.Background()

	subject := uuid.New()
	sub := newTestSubscription(37.0, -122.0, 500)
	event := entity.NewLocationUpdateEvent(subject, 37.0+2000/metersPerDegreeLat, -122.0, time.Now())

	mocks.resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).
		Return([]*entity.RadiusSubscription{sub}, nil)
	mocks.stateRepo.EXPECT().ApplyTransition(ctx, stateFor(sub, subject, false)).
		Return(entity.TransitionExit, nil)
	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(requests []usecase.DispatchRequest) bool {
			return len(requests) == 1 && requests[0].Transition == entity.TransitionExit
		})).
		Return(&usecase.DispatchResult{MessagesBuilt: 2, MessagesSent: 2})

	result, err := svc.ProcessLocationUpdate(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, result.MessagesSent)
}

func TestGeofenceService_ReadWriteStrategy(t *testing.T) {
	tests := []struct {
		name           string
		stored         bool
		found          bool
		latitude       float64
		expectInside   bool
		expectEnter    int
		expectExit     int
		expectDispatch bool
	}{
		{name: "absent then inside", stored: false, found: false, latitude: 37.0, expectInside: true, expectEnter: 1, expectDispatch: true},
		{name: "outside then inside", stored: false, found: true, latitude: 37.0, expectInside: true, expectEnter: 1, expectDispatch: true},
		{name: "inside then inside", stored: true, found: true, latitude: 37.0, expectInside: true},
		{name: "inside then outside", stored: true, found: true, latitude: 37.1, expectInside: false, expectExit: 1},
		{name: "absent then outside", stored: false, found: false, latitude: 37.1, expectInside: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mocks := newTestGeofenceService(t, &config.GeofenceConfig{
				StateStrategy: constants.StateStrategyReadWrite,
			})
			ctx := context.Background()

			subject := uuid.New()
			sub := newTestSubscription(37.0, -122.0, 500)
			event := entity.NewLocationUpdateEvent(subject, tt.latitude, -122.0, time.Now())

			mocks.resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).
				Return([]*entity.RadiusSubscription{sub}, nil)
			mocks.stateRepo.EXPECT().Read(ctx, sub.ID, subject).Return(tt.stored, tt.found, nil)
			mocks.stateRepo.EXPECT().Write(ctx, stateFor(sub, subject, tt.expectInside)).Return(nil)

			if tt.expectDispatch {
				mocks.dispatcher.EXPECT().Dispatch(ctx, mock.Anything).
					Return(&usecase.DispatchResult{})
			}

			result, err := svc.ProcessLocationUpdate(ctx, event)
			require.NoError(t, err)
			assert.Equal(t, tt.expectEnter, result.EnterTransitions)
			assert.Equal(t, tt.expectExit, result.ExitTransitions)
		})
	}
}

func TestGeofenceService_NoSubscriptions(t *testing.T) {
	svc, mocks := newTestGeofenceService(t, nil)
	ctx := context.Background()

	subject := uuid.New()
	event := entity.NewLocationUpdateEvent(subject, 37.0, -122.0, time.Now())

	mocks.resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).
		Return([]*entity.RadiusSubscription{}, nil)

	result, err := svc.ProcessLocationUpdate(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, usecase.ProcessResult{}, *result)
}

func TestGeofenceService_ResolverError(t *testing.T) {
	svc, mocks := newTestGeofenceService(t, nil)
	ctx := context.Background()

	subject := uuid.New()
	event := entity.NewLocationUpdateEvent(subject, 37.0, -122.0, time.Now())
	resolverErr := errors.New("connection refused")

	mocks.resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).Return(nil, resolverErr)

	result, err := svc.ProcessLocationUpdate(ctx, event)
	require.Error(t, err)
	assert.ErrorIs(t, err, resolverErr)
	assert.Nil(t, result)
}

func TestGeofenceService_StateErrorSkipsPair(t *testing.T) {
	svc, mocks := newTestGeofenceService(t, nil)
	ctx := context.Background()

	subject := uuid.New()
	failing := newTestSubscription(37.0, -122.0, 100)
	healthy := newTestSubscription(37.0, -122.0, 200)
	event := entity.NewLocationUpdateEvent(subject, 37.0, -122.0, time.Now())

	mocks.resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).
		Return([]*entity.RadiusSubscription{failing, healthy}, nil)
	mocks.stateRepo.EXPECT().ApplyTransition(ctx, stateFor(failing, subject, true)).
		Return(entity.TransitionNone, errors.New("deadlock detected"))
	mocks.stateRepo.EXPECT().ApplyTransition(ctx, stateFor(healthy, subject, true)).
		Return(entity.TransitionEnter, nil)
	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(requests []usecase.DispatchRequest) bool {
			return len(requests) == 1 && requests[0].Evaluation.Subscription == healthy
		})).
		Return(&usecase.DispatchResult{MessagesBuilt: 1, MessagesSent: 1})

	result, err := svc.ProcessLocationUpdate(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, result.StateErrors)
	assert.Equal(t, 1, result.EnterTransitions)
}

func TestGeofenceService_SkipsInvalidRadius(t *testing.T) {
	svc, mocks := newTestGeofenceService(t, nil)
	ctx := context.Background()

	subject := uuid.New()
	event := entity.NewLocationUpdateEvent(subject, 37.0, -122.0, time.Now())

	mocks.resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).
		Return([]*entity.RadiusSubscription{newTestSubscription(37.0, -122.0, 0)}, nil)

	result, err := svc.ProcessLocationUpdate(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 0, result.SubscriptionsEvaluated)
	mocks.stateRepo.AssertNotCalled(t, "ApplyTransition", mock.Anything, mock.Anything)
}

func TestGeofenceService_BatchesAllTransitionsIntoOneDispatch(t *testing.T) {
	svc, mocks := newTestGeofenceService(t, nil)
	ctx := context.Background()

	subject := uuid.New()
	first := newTestSubscription(37.0, -122.0, 100)
	second := newTestSubscription(37.0005, -122.0, 100)
	event := entity.NewLocationUpdateEvent(subject, 37.0, -122.0, time.Now())

	mocks.resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).
		Return([]*entity.RadiusSubscription{first, second}, nil)
	mocks.stateRepo.EXPECT().ApplyTransition(ctx, mock.Anything).Return(entity.TransitionEnter, nil).Times(2)
	mocks.dispatcher.EXPECT().
		Dispatch(ctx, mock.MatchedBy(func(requests []usecase.DispatchRequest) bool {
			return len(requests) == 2
		})).
		Return(&usecase.DispatchResult{MessagesBuilt: 2, MessagesSent: 2}).
		Once()

	result, err := svc.ProcessLocationUpdate(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 2, result.EnterTransitions)
	assert.Equal(t, 2, result.MessagesBuilt)
}

func TestGeofenceService_RecordsMetrics(t *testing.T) {
	resolver := mockRepo.NewMockSubscriptionResolver(t)
	metrics := mockService.NewMockMetricsRecorder(t)

	svc := NewGeofenceService(GeofenceServiceParams{
		Config:     &config.Config{},
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Resolver:   resolver,
		StateRepo:  mockRepo.NewMockEntryStateRepository(t),
		Dispatcher: mockUsecase.NewMockNotificationDispatcher(t),
		Metrics:    metrics,
	})

	ctx := context.Background()
	subject := uuid.New()

	resolver.EXPECT().FindRelevantSubscriptions(ctx, subject).Return(nil, nil)
	metrics.EXPECT().RecordEvent(outcomeNoSubscriptions).Return()
	metrics.EXPECT().RecordProcessingLatency(mock.AnythingOfType("time.Duration")).Return()

	_, err := svc.ProcessLocationUpdate(ctx, entity.NewLocationUpdateEvent(subject, 1, 1, time.Now()))
	require.NoError(t, err)
}
