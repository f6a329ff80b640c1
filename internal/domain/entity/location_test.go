package entity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidCoordinate(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     bool
	}{
		{name: "origin", lat: 0, lng: 0, want: true},
		{name: "bounds inclusive", lat: -90, lng: 180, want: true},
		{name: "latitude too high", lat: 90.0001, lng: 0, want: false},
		{name: "longitude too low", lat: 0, lng: -180.5, want: false},
		{name: "nan", lat: math.NaN(), lng: 0, want: false},
		{name: "infinite", lat: 0, lng: math.Inf(1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidCoordinate(tt.lat, tt.lng))
		})
	}
}
