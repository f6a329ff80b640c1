package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"circlecheck/config"
	deliverycontext "circlecheck/internal/delivery/context"
	"circlecheck/internal/domain/constants"
	"circlecheck/internal/domain/entity"
	"circlecheck/internal/domain/service"
	mockUsecase "circlecheck/internal/mocks/usecase"
	"circlecheck/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

var workerReceivedAt = time.Date(2025, 4, 2, 9, 0, 0, 0, time.UTC)

func newTestPushHandler(t *testing.T, cfg *config.Config) (*PushHandler, *mockUsecase.MockGeofenceUsecase) {
	t.Helper()

	geofenceUC := mockUsecase.NewMockGeofenceUsecase(t)
	if cfg == nil {
		cfg = &config.Config{}
	}

	h := NewPushHandler(PushHandlerParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		GeofenceUC: geofenceUC,
	})
	h.now = func() time.Time { return workerReceivedAt }

	return h, geofenceUC
}

func pushEnvelope(t *testing.T, event *service.LocationEvent, attributes map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg PubSubMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attributes
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "projects/p/subscriptions/geo"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()

	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestPushHandler_ProcessesLocationEvent(t *testing.T) {
	h, geofenceUC := newTestPushHandler(t, nil)
	subject := uuid.New()

	geofenceUC.EXPECT().
		ProcessLocationUpdate(mock.Anything, mock.MatchedBy(func(e *entity.LocationUpdateEvent) bool {
			return e.SubjectUserID == subject &&
				e.Lat() == 25.04 && e.Lng() == 121.51 &&
				e.ObservedAt.Equal(time.Date(2025, 4, 2, 8, 59, 0, 0, time.UTC))
		})).
		RunAndReturn(func(ctx context.Context, _ *entity.LocationUpdateEvent) (*usecase.ProcessResult, error) {
			assert.Equal(t, "req-from-attributes", deliverycontext.GetRequestIDFromContext(ctx))

			return &usecase.ProcessResult{SubscriptionsResolved: 1, EnterTransitions: 1, MessagesSent: 1}, nil
		}).
		Once()

	body := pushEnvelope(t, &service.LocationEvent{
		RequestID:     "req-from-event",
		SubjectUserID: subject.String(),
		Latitude:      25.04,
		Longitude:     121.51,
		ObservedAt:    "2025-04-02T08:59:00Z",
	}, map[string]string{"request_id": "req-from-attributes"})

	rec := servePush(h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_MalformedEnvelope(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `{"message":`},
		{name: "data not base64", body: `{"message":{"data":"%%%"}}`},
		{name: "data not an event", body: `{"message":{"data":"` + base64.StdEncoding.EncodeToString([]byte("[1,2")) + `"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, nil)

			rec := servePush(h, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestPushHandler_UnusableEventIsAcknowledged(t *testing.T) {
	subject := uuid.NewString()

	tests := []struct {
		name  string
		event *service.LocationEvent
	}{
		{name: "invalid subject", event: &service.LocationEvent{SubjectUserID: "nobody", Latitude: 1, Longitude: 1}},
		{name: "latitude out of range", event: &service.LocationEvent{SubjectUserID: subject, Latitude: 91, Longitude: 1}},
		{name: "longitude out of range", event: &service.LocationEvent{SubjectUserID: subject, Latitude: 1, Longitude: -180.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// mocks fail the test on any unexpected call, so nothing is evaluated
			h, _ := newTestPushHandler(t, nil)

			rec := servePush(h, pushEnvelope(t, tt.event, nil), nil)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestPushHandler_ProcessingErrorIsAcknowledged(t *testing.T) {
	h, geofenceUC := newTestPushHandler(t, nil)

	geofenceUC.EXPECT().
		ProcessLocationUpdate(mock.Anything, mock.MatchedBy(func(e *entity.LocationUpdateEvent) bool {
			// unparseable observed_at falls back to the receive time
			return e.ObservedAt.Equal(workerReceivedAt)
		})).
		Return(nil, errors.New("resolver down")).
		Once()

	body := pushEnvelope(t, &service.LocationEvent{
		SubjectUserID: uuid.NewString(),
		Latitude:      1,
		Longitude:     1,
		ObservedAt:    "garbage",
	}, nil)
	rec := servePush(h, body, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, nil)

	withAttr := &PubSubMessage{}
	withAttr.Message.Attributes = map[string]string{"request_id": "attr"}

	tests := []struct {
		name  string
		ctx   context.Context
		msg   *PubSubMessage
		event *service.LocationEvent
		want  string
	}{
		{name: "attribute wins", ctx: context.Background(), msg: withAttr, event: &service.LocationEvent{RequestID: "event"}, want: "attr"},
		{name: "event field", ctx: context.Background(), msg: &PubSubMessage{}, event: &service.LocationEvent{RequestID: "event"}, want: "event"},
		{name: "context", ctx: deliverycontext.WithRequestID(context.Background(), "ctx"), msg: &PubSubMessage{}, event: &service.LocationEvent{}, want: "ctx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.extractRequestID(tt.ctx, tt.msg, tt.event))
		})
	}

	generated := h.extractRequestID(context.Background(), &PubSubMessage{}, &service.LocationEvent{})
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
}

func TestPushHandler_VerifiesPubSubToken(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvProduction

	tests := []struct {
		name       string
		header     string
		payload    *idtoken.Payload
		validErr   error
		wantStatus int
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "validation failure", header: "Bearer tok", validErr: errors.New("bad signature"), wantStatus: http.StatusUnauthorized},
		{name: "wrong issuer", header: "Bearer tok", payload: &idtoken.Payload{Issuer: "evil.example.com"}, wantStatus: http.StatusUnauthorized},
		{
			name:       "unverified email",
			header:     "Bearer tok",
			payload:    &idtoken.Payload{Issuer: "accounts.google.com", Claims: map[string]any{"email_verified": false}},
			wantStatus: http.StatusUnauthorized,
		},
		{name: "valid", header: "Bearer tok", payload: &idtoken.Payload{Issuer: "https://accounts.google.com"}, wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, cfg)
			require.True(t, h.verifyPushAuth)

			h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "tok", token)
				assert.Equal(t, "http://example.com/push", audience)

				return tt.payload, tt.validErr
			}

			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}

			// verified requests go on to envelope decoding, which rejects this body
			rec := servePush(h, `{"message":{"data":"%%%"}}`, header)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestNewPushHandler_SkipsVerificationInDevelop(t *testing.T) {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
	cfg.Env.Env = constants.EnvDevelop

	h, _ := newTestPushHandler(t, cfg)

	assert.False(t, h.verifyPushAuth)
}
