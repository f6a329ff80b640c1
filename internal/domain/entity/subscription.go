// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// RadiusSubscription represents an owner's geofence watch over the members of a circle.
type RadiusSubscription struct {
	ID           uuid.UUID `json:"subscription_id"` // The Global Unique Identifier (GUID) for the subscription.
	OwnerUserID  uuid.UUID `json:"owner_user_id"`   // The user who receives alerts for this geofence.
	CenterLat    float64   `json:"center_lat"`      // Latitude of the geofence center.
	CenterLng    float64   `json:"center_lng"`      // Longitude of the geofence center.
	RadiusMeters float64   `json:"radius_m"`        // Radius of the geofence in meters.
}

// Center returns the geofence center as an orb point.
func (s *RadiusSubscription) Center() orb.Point {
	return orb.Point{s.CenterLng, s.CenterLat}
}
