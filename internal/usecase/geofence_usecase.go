package usecase

import (
	"context"

	"circlecheck/internal/domain/entity"
)

// ProcessResult summarizes one pass of the geofence pipeline for a single location update
type ProcessResult struct {
	SubscriptionsResolved  int `json:"subscriptions_resolved"`
	SubscriptionsEvaluated int `json:"subscriptions_evaluated"`
	EnterTransitions       int `json:"enter_transitions"`
	ExitTransitions        int `json:"exit_transitions"`
	StateErrors            int `json:"state_errors"`
	MessagesBuilt          int `json:"messages_built"`
	MessagesSent           int `json:"messages_sent"`
	MessagesFailed         int `json:"messages_failed"`
}

// GeofenceUsecase defines the geofence transition detection and notification pipeline
type GeofenceUsecase interface {
	// ProcessLocationUpdate evaluates every relevant subscription for the subject of the event,
	// records the new inside/outside states and dispatches push notifications for enter transitions.
	// Only a failure to resolve subscriptions is returned as an error; all later collaborator
	// failures are logged and reflected in the result.
	ProcessLocationUpdate(ctx context.Context, event *entity.LocationUpdateEvent) (*ProcessResult, error)
}
