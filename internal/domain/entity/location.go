package entity

import (
	"math"

	"github.com/paulmach/orb"
)

// Location is a WGS84 coordinate in degrees. A nil *Location means "not set".
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NewLocation returns a location pointer, or nil when either coordinate is absent.
func NewLocation(lat, lng *float64) *Location {
	if lat == nil || lng == nil {
		return nil
	}

	return &Location{Lat: *lat, Lng: *lng}
}

// IsValid reports whether both coordinates are finite numbers.
func (l *Location) IsValid() bool {
	if l == nil {
		return false
	}

	return !math.IsNaN(l.Lat) && !math.IsNaN(l.Lng) && !math.IsInf(l.Lat, 0) && !math.IsInf(l.Lng, 0)
}

// Point converts the location into an orb point (lng, lat order).
func (l *Location) Point() orb.Point {
	return orb.Point{l.Lng, l.Lat}
}

// Clone returns a copy of the location, preserving nil.
func (l *Location) Clone() *Location {
	if l == nil {
		return nil
	}
	c := *l

	return &c
}

// LatPtr returns the latitude as a pointer, nil for a nil location.
func (l *Location) LatPtr() *float64 {
	if l == nil {
		return nil
	}
	v := l.Lat

	return &v
}

// LngPtr returns the longitude as a pointer, nil for a nil location.
func (l *Location) LngPtr() *float64 {
	if l == nil {
		return nil
	}
	v := l.Lng

	return &v
}
