package impl

import (
	"context"
	"log/slog"
	"time"

	"circlecheck/config"
	deliverycontext "circlecheck/internal/delivery/context"
	"circlecheck/internal/domain/entity"
	"circlecheck/internal/domain/repository"
	"circlecheck/internal/domain/service"
	"circlecheck/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	pushTitle     = "Circle Check"
	pushBodyEnter = "A circle member just entered your alert area."
	pushBodyExit  = "A circle member just left your alert area."
)

// NotificationDispatcherParams holds the dependencies of the notification dispatcher
type NotificationDispatcherParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	DeviceRepo repository.DeviceTokenRepository
	Gateway    service.PushGateway
	Metrics    service.MetricsRecorder `optional:"true"`
}

type notificationDispatcher struct {
	deviceRepo    repository.DeviceTokenRepository
	gateway       service.PushGateway
	metrics       service.MetricsRecorder
	logger        *slog.Logger
	cleanupTokens bool
}

// NewNotificationDispatcher creates a dispatcher that delivers transition alerts to subscription owners
func NewNotificationDispatcher(params NotificationDispatcherParams) usecase.NotificationDispatcher {
	cleanup := false
	if params.Config != nil && params.Config.Push != nil {
		cleanup = params.Config.Push.CleanupInvalidTokens
	}

	return &notificationDispatcher{
		deviceRepo:    params.DeviceRepo,
		gateway:       params.Gateway,
		metrics:       params.Metrics,
		logger:        params.Logger,
		cleanupTokens: cleanup,
	}
}

// Dispatch builds messages for every request and submits them in a single gateway batch
func (d *notificationDispatcher) Dispatch(ctx context.Context, requests []usecase.DispatchRequest) *usecase.DispatchResult {
	logger := deliverycontext.GetLoggerOrDefault(ctx, d.logger)
	result := &usecase.DispatchResult{}

	if len(requests) == 0 {
		return result
	}

	// An owner with several transitioning subscriptions is looked up once per dispatch
	tokenCache := make(map[uuid.UUID][]*entity.DeviceToken)
	messages := make([]*entity.PushMessage, 0, len(requests))

	for _, req := range requests {
		sub := req.Evaluation.Subscription
		if sub == nil {
			continue
		}

		tokens, cached := tokenCache[sub.OwnerUserID]
		if !cached {
			found, err := d.deviceRepo.FindTokensByUser(ctx, sub.OwnerUserID)
			if err != nil {
				logger.Error("[Geofence] Failed to load device tokens",
					slog.String("ownerUserID", sub.OwnerUserID.String()),
					slog.String("subscriptionID", sub.ID.String()),
					slog.Any("error", err),
				)

				continue
			}

			tokens = found
			tokenCache[sub.OwnerUserID] = tokens
		}

		if len(tokens) == 0 {
			logger.Debug("[Geofence] Owner has no device tokens",
				slog.String("ownerUserID", sub.OwnerUserID.String()),
			)

			continue
		}

		for _, token := range tokens {
			messages = append(messages, buildPushMessage(token.Token, req))
		}
	}

	result.MessagesBuilt = len(messages)
	if len(messages) == 0 {
		return result
	}

	receipts, err := d.gateway.SendBatch(ctx, messages)
	if err != nil {
		logger.Error("[Geofence] Push batch failed",
			slog.Int("messages", len(messages)),
			slog.Any("error", err),
		)
	}

	var invalidTokens []string
	for _, receipt := range receipts {
		if !receipt.Failed() {
			result.MessagesSent++

			continue
		}

		result.MessagesFailed++
		logger.Warn("[Geofence] Push ticket rejected",
			slog.String("errorCode", receipt.ErrorCode),
			slog.String("message", receipt.Message),
		)

		if receipt.Unregistered() {
			invalidTokens = append(invalidTokens, receipt.Token)
		}
	}

	// Messages without a receipt never reached the gateway
	if unanswered := len(messages) - len(receipts); unanswered > 0 {
		result.MessagesFailed += unanswered
	}

	if d.metrics != nil {
		d.metrics.RecordPushResult(result.MessagesSent, result.MessagesFailed)
	}

	if d.cleanupTokens && len(invalidTokens) > 0 {
		d.cleanupInvalidTokens(ctx, logger, invalidTokens)
	}

	logger.Info("[Geofence] Push batch submitted",
		slog.Int("built", result.MessagesBuilt),
		slog.Int("sent", result.MessagesSent),
		slog.Int("failed", result.MessagesFailed),
	)

	return result
}

// cleanupInvalidTokens removes tokens the gateway reported as no longer registered
func (d *notificationDispatcher) cleanupInvalidTokens(ctx context.Context, logger *slog.Logger, tokens []string) {
	if err := d.deviceRepo.DeleteTokens(ctx, tokens); err != nil {
		logger.Warn("[Geofence] Failed to clean up invalid tokens",
			slog.Int("count", len(tokens)),
			slog.Any("error", err),
		)

		return
	}

	logger.Info("[Geofence] Cleaned up invalid tokens", slog.Int("count", len(tokens)))
}

func buildPushMessage(token string, req usecase.DispatchRequest) *entity.PushMessage {
	sub := req.Evaluation.Subscription

	data := map[string]any{
		"subject_user_id": req.Event.SubjectUserID.String(),
		"subscription_id": sub.ID.String(),
		"center_lat":      sub.CenterLat,
		"center_lng":      sub.CenterLng,
		"radius_m":        sub.RadiusMeters,
		"distance_m":      req.Evaluation.DistanceRoundedMeters,
		"observed_at":     req.Event.ObservedAt.UTC().Format(time.RFC3339),
	}

	body := pushBodyEnter
	if req.Transition == entity.TransitionExit {
		body = pushBodyExit
		data["transition"] = req.Transition.String()
	}

	return &entity.PushMessage{
		To:    token,
		Title: pushTitle,
		Body:  body,
		Data:  data,
		Sound: entity.PushSoundDefault,
	}
}
