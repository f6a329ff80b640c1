package service

import (
	"context"
	"time"

	"circlecheck/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LocationEvent is the wire form of a location update forwarded to the geo worker
type LocationEvent struct {
	RequestID     string  `json:"request_id,omitempty"` // For distributed tracing
	SubjectUserID string  `json:"subject_user_id"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ObservedAt    string  `json:"observed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLocationEvent publishes a location update for async processing
	PublishLocationEvent(ctx context.Context, event *LocationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// NewLocationEvent converts a domain event into its wire form.
func NewLocationEvent(requestID string, event *entity.LocationUpdateEvent) *LocationEvent {
	return &LocationEvent{
		RequestID:     requestID,
		SubjectUserID: event.SubjectUserID.String(),
		Latitude:      event.Lat(),
		Longitude:     event.Lng(),
		ObservedAt:    event.ObservedAt.UTC().Format(time.RFC3339Nano),
	}
}

// ToDomain parses the wire form back into a domain event.
// An unparseable ObservedAt falls back to fallback; out-of-range coordinates are rejected.
func (e *LocationEvent) ToDomain(fallback time.Time) (*entity.LocationUpdateEvent, error) {
	subjectID, err := uuid.Parse(e.SubjectUserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject_user_id")
	}

	if !entity.ValidCoordinate(e.Latitude, e.Longitude) {
		return nil, errors.Errorf("coordinate out of range: lat=%v lng=%v", e.Latitude, e.Longitude)
	}

	observedAt, err := time.Parse(time.RFC3339Nano, e.ObservedAt)
	if err != nil {
		observedAt = fallback
	}

	return entity.NewLocationUpdateEvent(subjectID, e.Latitude, e.Longitude, observedAt), nil
}
