package impl

import (
	"context"
	"log/slog"
	"time"

	"circlecheck/config"
	deliverycontext "circlecheck/internal/delivery/context"
	"circlecheck/internal/domain/constants"
	"circlecheck/internal/domain/entity"
	"circlecheck/internal/domain/repository"
	"circlecheck/internal/domain/service"
	"circlecheck/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Event outcomes reported to the metrics recorder
const (
	outcomeResolverError   = "resolver_error"
	outcomeNoSubscriptions = "no_subscriptions"
	outcomeProcessed       = "processed"
)

// GeofenceServiceParams holds the dependencies of the geofence service
type GeofenceServiceParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	Resolver   repository.SubscriptionResolver
	StateRepo  repository.EntryStateRepository
	Dispatcher usecase.NotificationDispatcher
	Metrics    service.MetricsRecorder `optional:"true"`
}

type geofenceService struct {
	resolver     repository.SubscriptionResolver
	stateRepo    repository.EntryStateRepository
	dispatcher   usecase.NotificationDispatcher
	metrics      service.MetricsRecorder
	logger       *slog.Logger
	notifyOnExit bool
	atomicState  bool
	now          func() time.Time
}

// NewGeofenceService creates a new geofence service instance
func NewGeofenceService(params GeofenceServiceParams) usecase.GeofenceUsecase {
	notifyOnExit := false
	atomicState := true

	if params.Config != nil && params.Config.Geofence != nil {
		notifyOnExit = params.Config.Geofence.NotifyOnExit
		atomicState = params.Config.Geofence.StateStrategy != constants.StateStrategyReadWrite
	}

	return &geofenceService{
		resolver:     params.Resolver,
		stateRepo:    params.StateRepo,
		dispatcher:   params.Dispatcher,
		metrics:      params.Metrics,
		logger:       params.Logger,
		notifyOnExit: notifyOnExit,
		atomicState:  atomicState,
		now:          time.Now,
	}
}

// ProcessLocationUpdate runs the resolver, evaluates every subscription and dispatches enter alerts
func (s *geofenceService) ProcessLocationUpdate(ctx context.Context, event *entity.LocationUpdateEvent) (*usecase.ProcessResult, error) {
	startTime := s.now()
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("subjectUserID", event.SubjectUserID.String()),
	)
	defer s.recordLatency(startTime)

	subscriptions, err := s.resolver.FindRelevantSubscriptions(ctx, event.SubjectUserID)
	if err != nil {
		s.recordEvent(outcomeResolverError)

		return nil, errors.Wrap(err, "failed to resolve subscriptions")
	}

	result := &usecase.ProcessResult{SubscriptionsResolved: len(subscriptions)}
	if len(subscriptions) == 0 {
		s.recordEvent(outcomeNoSubscriptions)
		logger.Debug("[Geofence] No relevant subscriptions")

		return result, nil
	}

	requests := make([]usecase.DispatchRequest, 0)

	for _, sub := range subscriptions {
		if !isValidSubscription(sub) {
			logger.Warn("[Geofence] Skipping invalid subscription",
				slog.Any("subscription", sub),
			)

			continue
		}

		evaluation := EvaluateGeofence(event.Position, sub)
		result.SubscriptionsEvaluated++

		transition, err := s.applyState(ctx, sub, event, evaluation.Inside)
		if err != nil {
			result.StateErrors++
			logger.Error("[Geofence] Failed to record entry state",
				slog.String("subscriptionID", sub.ID.String()),
				slog.Any("error", err),
			)

			continue
		}

		switch transition {
		case entity.TransitionEnter:
			result.EnterTransitions++
		case entity.TransitionExit:
			result.ExitTransitions++
		case entity.TransitionNone:
			continue
		}

		s.recordTransition(transition)
		logger.Info("[Geofence] Transition detected",
			slog.String("subscriptionID", sub.ID.String()),
			slog.String("transition", transition.String()),
			slog.Int64("distanceM", evaluation.DistanceRoundedMeters),
			slog.Float64("radiusM", sub.RadiusMeters),
		)

		if transition == entity.TransitionEnter || s.notifyOnExit {
			requests = append(requests, usecase.DispatchRequest{
				Event:      event,
				Evaluation: evaluation,
				Transition: transition,
			})
		}
	}

	if len(requests) > 0 {
		dispatched := s.dispatcher.Dispatch(ctx, requests)
		result.MessagesBuilt = dispatched.MessagesBuilt
		result.MessagesSent = dispatched.MessagesSent
		result.MessagesFailed = dispatched.MessagesFailed
	}

	s.recordEvent(outcomeProcessed)

	return result, nil
}

// applyState records the new inside flag and reports the transition it caused
func (s *geofenceService) applyState(
	ctx context.Context,
	sub *entity.RadiusSubscription,
	event *entity.LocationUpdateEvent,
	inside bool,
) (entity.Transition, error) {
	state := &entity.EntryState{
		SubscriptionID: sub.ID,
		SubjectUserID:  event.SubjectUserID,
		Inside:         inside,
		UpdatedAt:      s.now().UTC(),
	}

	if s.atomicState {
		transition, err := s.stateRepo.ApplyTransition(ctx, state)
		if err != nil {
			return entity.TransitionNone, errors.Wrap(err, "failed to apply transition")
		}

		return transition, nil
	}

	wasInside, _, err := s.stateRepo.Read(ctx, sub.ID, event.SubjectUserID)
	if err != nil {
		return entity.TransitionNone, errors.Wrap(err, "failed to read entry state")
	}

	if err := s.stateRepo.Write(ctx, state); err != nil {
		return entity.TransitionNone, errors.Wrap(err, "failed to write entry state")
	}

	return entity.TransitionBetween(wasInside, inside), nil
}

func (s *geofenceService) recordEvent(outcome string) {
	if s.metrics != nil {
		s.metrics.RecordEvent(outcome)
	}
}

func (s *geofenceService) recordTransition(transition entity.Transition) {
	if s.metrics != nil {
		s.metrics.RecordTransition(transition.String())
	}
}

func (s *geofenceService) recordLatency(startTime time.Time) {
	if s.metrics != nil {
		s.metrics.RecordProcessingLatency(s.now().Sub(startTime))
	}
}
