package impl

import (
	"math"

	"circlecheck/internal/domain/entity"

	"github.com/paulmach/orb"
)

// earthRadiusMeters is the mean Earth radius used for great-circle distances
const earthRadiusMeters = 6371000.0

// HaversineMeters calculates the great circle distance between two points in meters
func HaversineMeters(a, b orb.Point) float64 {
	lat1Rad := a.Lat() * math.Pi / 180
	lat2Rad := b.Lat() * math.Pi / 180
	deltaLat := (b.Lat() - a.Lat()) * math.Pi / 180
	deltaLng := (b.Lon() - a.Lon()) * math.Pi / 180

	sinLat := math.Sin(deltaLat / 2)
	sinLng := math.Sin(deltaLng / 2)
	h := sinLat*sinLat + math.Cos(lat1Rad)*math.Cos(lat2Rad)*sinLng*sinLng

	// Floating point error can push h marginally above 1 for antipodal points
	h = math.Min(h, 1)

	return 2 * earthRadiusMeters * math.Asin(math.Sqrt(h))
}

// EvaluateGeofence classifies a position against a subscription. The boundary is inside.
func EvaluateGeofence(position orb.Point, sub *entity.RadiusSubscription) entity.GeofenceEvaluation {
	distance := HaversineMeters(position, sub.Center())

	return entity.GeofenceEvaluation{
		Subscription:          sub,
		DistanceMeters:        distance,
		DistanceRoundedMeters: int64(math.Round(distance)),
		Inside:                distance <= sub.RadiusMeters,
	}
}

// isValidSubscription rejects geofences that can never be evaluated meaningfully
func isValidSubscription(sub *entity.RadiusSubscription) bool {
	if sub == nil || !(sub.RadiusMeters > 0) || math.IsInf(sub.RadiusMeters, 0) {
		return false
	}

	return entity.ValidCoordinate(sub.CenterLat, sub.CenterLng)
}

