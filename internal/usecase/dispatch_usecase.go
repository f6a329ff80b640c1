package usecase

import (
	"context"

	"circlecheck/internal/domain/entity"
)

// DispatchRequest describes one transition that should reach the subscription owner's devices
type DispatchRequest struct {
	Event      *entity.LocationUpdateEvent
	Evaluation entity.GeofenceEvaluation
	Transition entity.Transition
}

// DispatchResult summarizes a dispatched batch
type DispatchResult struct {
	MessagesBuilt  int
	MessagesSent   int
	MessagesFailed int
}

// NotificationDispatcher turns transitions into push messages and submits them as one batch
type NotificationDispatcher interface {
	// Dispatch never fails: lookup and delivery errors are logged and counted.
	Dispatch(ctx context.Context, requests []DispatchRequest) *DispatchResult
}
