package geo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance in kilometres between a and b.
// A missing location, or one with a NaN coordinate, is infinitely far away.
func Distance(a, b *entity.Location) float64 {
	if a == nil || b == nil || !a.IsValid() || !b.IsValid() {
		return math.Inf(1)
	}

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	// clamp rounding noise so Asin never sees a value above 1
	h = math.Min(1, math.Max(0, h))

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// MapsLink builds a Google Maps link for the location, or "" when it is nil.
func MapsLink(loc *entity.Location) string {
	if loc == nil {
		return ""
	}

	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s",
		strconv.FormatFloat(loc.Lat, 'f', -1, 64),
		strconv.FormatFloat(loc.Lng, 'f', -1, 64))
}

// FormatKm renders a distance with one decimal for display.
func FormatKm(km float64) string {
	if math.IsInf(km, 0) || math.IsNaN(km) {
		return "unknown"
	}

	return strconv.FormatFloat(km, 'f', 1, 64) + " km"
}
