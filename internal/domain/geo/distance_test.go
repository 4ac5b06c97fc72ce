package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a        *entity.Location
		b        *entity.Location
		expected float64
		delta    float64
	}{
		{
			name:     "same point",
			a:        &entity.Location{Lat: 20, Lng: 78},
			b:        &entity.Location{Lat: 20, Lng: 78},
			expected: 0,
		},
		{
			name:     "origin is a real coordinate",
			a:        &entity.Location{Lat: 0, Lng: 0},
			b:        &entity.Location{Lat: 0, Lng: 1},
			expected: 111.19,
			delta:    0.01,
		},
		{
			name:     "taipei to kaohsiung",
			a:        &entity.Location{Lat: 25.0330, Lng: 121.5654},
			b:        &entity.Location{Lat: 22.6273, Lng: 120.3014},
			expected: 297.0,
			delta:    2.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Distance(tt.a, tt.b), tt.delta)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	points := []*entity.Location{
		{Lat: 20, Lng: 78},
		{Lat: -33.8688, Lng: 151.2093},
		{Lat: 51.5074, Lng: -0.1278},
		{Lat: 0, Lng: 0},
		{Lat: 89.9, Lng: 179.9},
	}

	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, Distance(a, b), Distance(b, a))
		}
		assert.Equal(t, 0.0, Distance(a, a))
	}
}

func TestDistance_MissingLocation(t *testing.T) {
	p := &entity.Location{Lat: 20, Lng: 78}

	assert.True(t, math.IsInf(Distance(nil, p), 1))
	assert.True(t, math.IsInf(Distance(p, nil), 1))
	assert.True(t, math.IsInf(Distance(nil, nil), 1))
	assert.True(t, math.IsInf(Distance(p, &entity.Location{Lat: math.NaN(), Lng: 78}), 1))
}

func TestMapsLink(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps?q=20.5,78.25", MapsLink(&entity.Location{Lat: 20.5, Lng: 78.25}))
	assert.Equal(t, "https://www.google.com/maps?q=0,0", MapsLink(&entity.Location{}))
	assert.Empty(t, MapsLink(nil))
}

func TestFormatKm(t *testing.T) {
	assert.Equal(t, "14.9 km", FormatKm(14.94))
	assert.Equal(t, "unknown", FormatKm(math.Inf(1)))
}
