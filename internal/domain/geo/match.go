package geo

import (
	"math"
	"sort"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

// distanceToleranceKm absorbs floating point noise at the radius boundary.
const distanceToleranceKm = 1e-9

// boundPadding widens the pre-screen box. orb uses a larger Earth radius and a
// flat approximation for longitude, so the box must never be tighter than the circle.
const boundPadding = 1.1

// maxPrefilterLat disables the box near the poles where it degenerates.
const maxPrefilterLat = 80.0

// MatchState describes the outcome of a proximity filter.
type MatchState string

const (
	MatchStateMatches          MatchState = "matches"
	MatchStateLocationRequired MatchState = "location_required"
	MatchStateNoMatches        MatchState = "no_matches"
)

// Located is anything that may carry a coordinate.
type Located interface {
	GetLocation() *entity.Location
}

// Match pairs an item with its distance from the viewer.
type Match[T Located] struct {
	Item       T       `json:"item"`
	DistanceKm float64 `json:"distance_km"`
}

// MatchResult is the ranked outcome of FilterWithinRadius.
type MatchResult[T Located] struct {
	State   MatchState `json:"state"`
	Matches []Match[T] `json:"matches"`
}

// FilterWithinRadius keeps items no farther than radiusKm from viewer, nearest first.
// Items with equal distance keep their input order.
func FilterWithinRadius[T Located](viewer *entity.Location, items []T, radiusKm float64) MatchResult[T] {
	if viewer == nil || !viewer.IsValid() {
		return MatchResult[T]{State: MatchStateLocationRequired, Matches: []Match[T]{}}
	}

	inBox := prefilter(viewer, radiusKm)
	matches := make([]Match[T], 0, len(items))
	for _, item := range items {
		loc := item.GetLocation()
		if loc == nil || !loc.IsValid() || !inBox(loc.Point()) {
			continue
		}
		d := Distance(viewer, loc)
		if d <= radiusKm+distanceToleranceKm {
			matches = append(matches, Match[T]{Item: item, DistanceKm: d})
		}
	}

	if len(matches) == 0 {
		return MatchResult[T]{State: MatchStateNoMatches, Matches: matches}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	return MatchResult[T]{State: MatchStateMatches, Matches: matches}
}

// prefilter returns a cheap bounding-box test around the viewer. It accepts
// everything when the box would be unreliable.
func prefilter(viewer *entity.Location, radiusKm float64) func(orb.Point) bool {
	if math.Abs(viewer.Lat) > maxPrefilterLat || radiusKm <= 0 || math.IsInf(radiusKm, 0) {
		return func(orb.Point) bool { return true }
	}

	meters := radiusKm * 1000 * boundPadding
	bound := orbgeo.NewBoundAroundPoint(viewer.Point(), meters)
	if bound.Min.Lon() < -180 || bound.Max.Lon() > 180 {
		return func(orb.Point) bool { return true }
	}

	return bound.Contains
}
