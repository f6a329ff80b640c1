// Package entity contains the core business objects of the project.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// LocationUpdateEvent represents a single position report for a subject.
// Position follows orb's convention: X is longitude, Y is latitude.
type LocationUpdateEvent struct {
	SubjectUserID uuid.UUID `json:"subject_user_id"` // The user whose position changed.
	Position      orb.Point `json:"position"`        // The reported position as [lng, lat].
	ObservedAt    time.Time `json:"observed_at"`     // When the position was observed by the client.
}

// NewLocationUpdateEvent builds an event from raw latitude and longitude.
func NewLocationUpdateEvent(subjectUserID uuid.UUID, lat, lng float64, observedAt time.Time) *LocationUpdateEvent {
	return &LocationUpdateEvent{
		SubjectUserID: subjectUserID,
		Position:      orb.Point{lng, lat},
		ObservedAt:    observedAt,
	}
}

// Lat returns the latitude of the reported position.
func (e *LocationUpdateEvent) Lat() float64 {
	return e.Position.Lat()
}

// Lng returns the longitude of the reported position.
func (e *LocationUpdateEvent) Lng() float64 {
	return e.Position.Lon()
}

// ValidCoordinate reports whether lat and lng are finite and within geographic bounds.
func ValidCoordinate(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
