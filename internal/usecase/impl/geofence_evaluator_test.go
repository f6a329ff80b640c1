package impl

import (
	"math"
	"testing"

	"circlecheck/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

// metersPerDegreeLat is the length of one degree of latitude on the mean Earth sphere
const metersPerDegreeLat = earthRadiusMeters * math.Pi / 180

func TestHaversineMeters(t *testing.T) {
	tests := []struct {
		name     string
		a        orb.Point
		b        orb.Point
		expected float64
		delta    float64
	}{
		{
			name:     "identical points",
			a:        orb.Point{-122.0, 37.0},
			b:        orb.Point{-122.0, 37.0},
			expected: 0,
			delta:    0,
		},
		{
			name:     "one degree of latitude",
			a:        orb.Point{0, 0},
			b:        orb.Point{0, 1},
			expected: metersPerDegreeLat,
			delta:    0.001,
		},
		{
			name:     "one degree of longitude on the equator",
			a:        orb.Point{0, 0},
			b:        orb.Point{1, 0},
			expected: metersPerDegreeLat,
			delta:    0.001,
		},
		{
			name:     "antipodal points",
			a:        orb.Point{0, 0},
			b:        orb.Point{180, 0},
			expected: math.Pi * earthRadiusMeters,
			delta:    0.001,
		},
		{
			name:     "taipei to kaohsiung",
			a:        orb.Point{121.5654, 25.0330},
			b:        orb.Point{120.3014, 22.6273},
			expected: 297000,
			delta:    3000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, HaversineMeters(tt.a, tt.b), tt.delta)
		})
	}
}

func TestHaversineMeters_Symmetric(t *testing.T) {
	points := []orb.Point{
		{-122.0, 37.0},
		{-122.01, 37.02},
		{121.5654, 25.0330},
		{0, 0},
		{-179.9, -89.9},
		{179.9, 89.9},
	}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, HaversineMeters(a, b), HaversineMeters(b, a))
		}
	}
}

func TestEvaluateGeofence_AtCenter(t *testing.T) {
	sub := &entity.RadiusSubscription{
		ID:           uuid.New(),
		OwnerUserID:  uuid.New(),
		CenterLat:    37.0,
		CenterLng:    -122.0,
		RadiusMeters: 100,
	}

	evaluation := EvaluateGeofence(orb.Point{-122.0, 37.0}, sub)

	assert.True(t, evaluation.Inside)
	assert.Equal(t, 0.0, evaluation.DistanceMeters)
	assert.Equal(t, int64(0), evaluation.DistanceRoundedMeters)
	assert.Same(t, sub, evaluation.Subscription)
}

func TestEvaluateGeofence_BoundaryIsInside(t *testing.T) {
	position := orb.Point{-122.0, 37.01}
	sub := &entity.RadiusSubscription{
		ID:          uuid.New(),
		OwnerUserID: uuid.New(),
		CenterLat:   37.0,
		CenterLng:   -122.0,
	}

	// Radius equal to the exact distance sits on the boundary
	sub.RadiusMeters = HaversineMeters(position, sub.Center())
	assert.True(t, EvaluateGeofence(position, sub).Inside)

	sub.RadiusMeters = math.Nextafter(sub.RadiusMeters, 0)
	assert.False(t, EvaluateGeofence(position, sub).Inside)
}

func TestEvaluateGeofence_Outside(t *testing.T) {
	sub := &entity.RadiusSubscription{
		ID:           uuid.New(),
		OwnerUserID:  uuid.New(),
		CenterLat:    37.0,
		CenterLng:    -122.0,
		RadiusMeters: 500,
	}
	position := orb.Point{-122.0, 37.0 + 2000/metersPerDegreeLat}

	evaluation := EvaluateGeofence(position, sub)

	assert.False(t, evaluation.Inside)
	assert.Equal(t, int64(2000), evaluation.DistanceRoundedMeters)
}

func TestEvaluateGeofence_InsideMatchesDistance(t *testing.T) {
	center := orb.Point{121.5, 25.0}
	radii := []float64{1, 50, 250, 1000, 5000}
	offsets := []float64{0, 0.0001, 0.001, 0.005, 0.02, 0.1}

	for _, radius := range radii {
		for _, offset := range offsets {
			sub := &entity.RadiusSubscription{
				ID:           uuid.New(),
				CenterLat:    center.Lat(),
				CenterLng:    center.Lon(),
				RadiusMeters: radius,
			}
			position := orb.Point{center.Lon() + offset, center.Lat() - offset}

			evaluation := EvaluateGeofence(position, sub)
			assert.Equal(t, HaversineMeters(position, center) <= radius, evaluation.Inside)
		}
	}
}

func TestIsValidSubscription(t *testing.T) {
	tests := []struct {
		name     string
		sub      *entity.RadiusSubscription
		expected bool
	}{
		{name: "nil", sub: nil, expected: false},
		{name: "zero radius", sub: &entity.RadiusSubscription{CenterLat: 1, CenterLng: 1}, expected: false},
		{name: "negative radius", sub: &entity.RadiusSubscription{RadiusMeters: -5}, expected: false},
		{name: "nan radius", sub: &entity.RadiusSubscription{RadiusMeters: math.NaN()}, expected: false},
		{name: "center out of range", sub: &entity.RadiusSubscription{CenterLat: 91, RadiusMeters: 10}, expected: false},
		{name: "valid", sub: &entity.RadiusSubscription{CenterLat: 37, CenterLng: -122, RadiusMeters: 10}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isValidSubscription(tt.sub))
		})
	}
}
