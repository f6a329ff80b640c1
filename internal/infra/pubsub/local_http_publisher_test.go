package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"circlecheck/config"
	deliverycontext "circlecheck/internal/delivery/context"
	"circlecheck/internal/domain/constants"
	"circlecheck/internal/domain/entity"
	"circlecheck/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPPublisher_PublishLocationEvent(t *testing.T) {
	subject := uuid.New()
	observedAt := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
	event := service.NewLocationEvent("req-1", entity.NewLocationUpdateEvent(subject, 25.04, 121.51, observedAt))

	var received PubSubPushMessage
	var requestIDHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestIDHeader = r.Header.Get(deliverycontext.HeaderXRequestID)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	require.NoError(t, publisher.PublishLocationEvent(context.Background(), event))

	assert.Equal(t, "req-1", requestIDHeader)
	assert.Equal(t, subject.String(), received.Message.Attributes["subject_user_id"])
	assert.Equal(t, "req-1", received.Message.Attributes["request_id"])
	assert.NotEmpty(t, received.Message.MessageID)

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.LocationEvent
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, *event, decoded)

	roundTrip, err := decoded.ToDomain(time.Now())
	require.NoError(t, err)
	assert.Equal(t, subject, roundTrip.SubjectUserID)
	assert.True(t, observedAt.Equal(roundTrip.ObservedAt))
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, discardLogger())
	err := publisher.PublishLocationEvent(context.Background(), &service.LocationEvent{SubjectUserID: uuid.NewString()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}

func TestNewEventPublisher(t *testing.T) {
	tests := []struct {
		name    string
		pubsub  *config.PubSubConfig
		wantErr bool
		wantTyp any
	}{
		{name: "not configured", pubsub: nil, wantTyp: &noopPublisher{}},
		{name: "empty provider", pubsub: &config.PubSubConfig{}, wantTyp: &noopPublisher{}},
		{name: "local", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal, LocalEndpoint: "http://localhost:8081/push"}, wantTyp: &localHTTPPublisher{}},
		{name: "local without endpoint", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, wantErr: true},
		{name: "google without project", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, wantErr: true},
		{name: "google without topic", pubsub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, wantErr: true},
		{name: "unknown provider", pubsub: &config.PubSubConfig{Provider: "kafka"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := fxtest.NewLifecycle(t)

			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.pubsub},
				Logger: discardLogger(),
			})

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.IsType(t, tt.wantTyp, publisher)
			assert.NoError(t, publisher.Close())
		})
	}
}
