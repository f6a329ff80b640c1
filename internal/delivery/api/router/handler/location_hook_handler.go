package handler

import (
	"log/slog"
	"net/http"
	"time"

	"circlecheck/config"
	"circlecheck/internal/delivery/api/response"
	deliverycontext "circlecheck/internal/delivery/context"
	"circlecheck/internal/domain/constants"
	"circlecheck/internal/domain/entity"
	"circlecheck/internal/domain/service"
	"circlecheck/internal/errors"
	"circlecheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/bytes"
	"go.uber.org/fx"
)

// Acknowledgment statuses returned by the location hook
const (
	HookStatusOK              = "ok"
	HookStatusNoRecord        = "no_record"
	HookStatusNoSubscriptions = "no_subscriptions"
	HookStatusResolverError   = "resolver_error"
	HookStatusQueued          = "queued"
	HookStatusPublishError    = "publish_error"
)

// Layouts accepted for updated_at, most specific first
var observedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07",
	"2006-01-02T15:04:05.999999999",
}

// LocationHookRequest is the database webhook payload for a location row change
type LocationHookRequest struct {
	Type   string          `json:"type"`
	Table  string          `json:"table"`
	Record *LocationRecord `json:"record" validate:"required"`
}

// LocationRecord is the changed location row
type LocationRecord struct {
	UserID    string   `json:"user_id" validate:"required,uuid"`
	Lat       *float64 `json:"lat" validate:"required,finite,min=-90,max=90"`
	Lng       *float64 `json:"lng" validate:"required,finite,min=-180,max=180"`
	UpdatedAt string   `json:"updated_at"`
}

// HookAck is the acknowledgment body of the location hook
type HookAck struct {
	Status string                 `json:"status"`
	Result *usecase.ProcessResult `json:"result,omitempty"`
}

// LocationHookHandlerParams holds dependencies for LocationHookHandler, injected by Fx.
type LocationHookHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	GeofenceUC usecase.GeofenceUsecase
	Publisher  service.EventPublisher `optional:"true"`
}

// LocationHookHandler turns location webhooks into geofence evaluations
type LocationHookHandler struct {
	geofenceUC   usecase.GeofenceUsecase
	publisher    service.EventPublisher
	logger       *slog.Logger
	async        bool
	maxBodyBytes int64
	now          func() time.Time
}

// NewLocationHookHandler is the constructor for LocationHookHandler
func NewLocationHookHandler(params LocationHookHandlerParams) *LocationHookHandler {
	async := params.Config != nil && params.Config.Hook != nil &&
		params.Config.Hook.Mode == constants.HookModePubSub

	return &LocationHookHandler{
		geofenceUC:   params.GeofenceUC,
		publisher:    params.Publisher,
		logger:       params.Logger,
		async:        async && params.Publisher != nil,
		maxBodyBytes: hookBodyLimit(params.Config, params.Logger),
		now:          time.Now,
	}
}

// hookBodyLimit parses http.maxRequestBodySize; zero means unlimited
func hookBodyLimit(cfg *config.Config, logger *slog.Logger) int64 {
	if cfg == nil || cfg.HTTP.MaxRequestBodySize == "" {
		return 0
	}

	limit, err := bytes.Parse(cfg.HTTP.MaxRequestBodySize)
	if err != nil {
		logger.Warn("[Hook] Invalid maxRequestBodySize, body size is unlimited",
			slog.String("maxRequestBodySize", cfg.HTTP.MaxRequestBodySize),
			slog.Any("error", err),
		)

		return 0
	}

	return limit
}

// HandleLocationUpdate processes one location row change.
// Every outcome past authentication is acknowledged with 200 so the webhook is never retried.
func (h *LocationHookHandler) HandleLocationUpdate(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	receivedAt := h.now()

	var req LocationHookRequest
	if err := h.decode(c, &req); err != nil {
		logger.Info("[Hook] Ignoring unparseable payload", slog.Any("error", err))

		return h.ack(c, HookStatusNoRecord, nil)
	}

	if err := c.Validate(&req); err != nil {
		logger.Info("[Hook] Ignoring payload without a usable record", slog.Any("error", err))

		return h.ack(c, HookStatusNoRecord, nil)
	}

	event, err := req.Record.toEvent(receivedAt)
	if err != nil {
		logger.Info("[Hook] Ignoring record with invalid subject", slog.Any("error", err))

		return h.ack(c, HookStatusNoRecord, nil)
	}

	if h.async {
		wire := service.NewLocationEvent(deliverycontext.GetRequestIDFromContext(ctx), event)
		if err := h.publisher.PublishLocationEvent(ctx, wire); err != nil {
			logger.Error("[Hook] Failed to publish location event",
				slog.String("subjectUserID", wire.SubjectUserID),
				slog.Any("error", err),
			)

			return h.ack(c, HookStatusPublishError, nil)
		}

		return h.ack(c, HookStatusQueued, nil)
	}

	result, err := h.geofenceUC.ProcessLocationUpdate(ctx, event)
	if err != nil {
		logger.Error("[Hook] Failed to resolve subscriptions",
			slog.String("subjectUserID", event.SubjectUserID.String()),
			slog.Any("error", err),
		)

		return h.ack(c, HookStatusResolverError, nil)
	}

	if result.SubscriptionsResolved == 0 {
		return h.ack(c, HookStatusNoSubscriptions, result)
	}

	return h.ack(c, HookStatusOK, result)
}

// decode reads the body as JSON whatever the Content-Type, within the body limit
func (h *LocationHookHandler) decode(c echo.Context, req *LocationHookRequest) error {
	httpReq := c.Request()
	if h.maxBodyBytes > 0 {
		if httpReq.ContentLength > h.maxBodyBytes {
			return errors.Errorf("body of %d bytes exceeds limit of %d", httpReq.ContentLength, h.maxBodyBytes)
		}
		httpReq.Body = http.MaxBytesReader(c.Response(), httpReq.Body, h.maxBodyBytes)
	}

	return errors.WithStack(c.Echo().JSONSerializer.Deserialize(c, req))
}

func (h *LocationHookHandler) ack(c echo.Context, status string, result *usecase.ProcessResult) error {
	return response.Success(c, http.StatusOK, HookAck{Status: status, Result: result})
}

func (r *LocationRecord) toEvent(receivedAt time.Time) (*entity.LocationUpdateEvent, error) {
	subjectID, err := uuid.Parse(r.UserID)
	if err != nil {
		return nil, err
	}

	return entity.NewLocationUpdateEvent(subjectID, *r.Lat, *r.Lng, parseObservedAt(r.UpdatedAt, receivedAt)), nil
}

// parseObservedAt falls back to the receive time when updated_at is missing or unparseable
func parseObservedAt(value string, fallback time.Time) time.Time {
	if value == "" {
		return fallback
	}

	for _, layout := range observedAtLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}

	return fallback
}
