// Package geo holds the spherical-Earth math every proximity predicate goes through.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean radius used for all great-circle distances.
const EarthRadiusMeters = 6371000.0

// boundPaddingDeg widens computed bounds so float rounding never drops a point on the circle edge.
const boundPaddingDeg = 1e-9

// Distance returns the great-circle distance in meters between two [lng, lat] points.
// The result is symmetric, zero for identical points and never NaN for finite inputs.
func Distance(p1, p2 orb.Point) float64 {
	lat1Rad := degToRad(p1.Lat())
	lng1Rad := degToRad(p1.Lon())
	lat2Rad := degToRad(p2.Lat())
	lng2Rad := degToRad(p2.Lon())

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	sinLat := math.Sin(deltaLat / 2)
	sinLng := math.Sin(deltaLng / 2)
	a := sinLat*sinLat + math.Cos(lat1Rad)*math.Cos(lat2Rad)*sinLng*sinLng

	// rounding can push a a hair outside [0, 1] for antipodal or identical points
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// BoundAround returns a box containing every point within radiusMeters of center.
// ok is false when the circle reaches a pole or crosses the antimeridian; callers
// must then scan without a box. The box is only a pre-filter: Distance decides.
func BoundAround(center orb.Point, radiusMeters float64) (bound orb.Bound, ok bool) {
	if radiusMeters <= 0 || math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) {
		return orb.Bound{}, false
	}

	angular := radiusMeters / EarthRadiusMeters
	latRad := degToRad(center.Lat())

	dLat := radToDeg(angular)
	minLat := center.Lat() - dLat
	maxLat := center.Lat() + dLat
	if minLat <= -90 || maxLat >= 90 {
		return orb.Bound{}, false
	}

	ratio := math.Sin(angular) / math.Cos(latRad)
	if ratio >= 1 {
		return orb.Bound{}, false
	}
	dLng := radToDeg(math.Asin(ratio))
	minLng := center.Lon() - dLng
	maxLng := center.Lon() + dLng
	if minLng <= -180 || maxLng >= 180 {
		return orb.Bound{}, false
	}

	return orb.Bound{
		Min: orb.Point{minLng - boundPaddingDeg, minLat - boundPaddingDeg},
		Max: orb.Point{maxLng + boundPaddingDeg, maxLat + boundPaddingDeg},
	}, true
}

// ValidLatitude reports whether lat is a finite value in [-90, 90].
func ValidLatitude(lat float64) bool {
	return !math.IsNaN(lat) && lat >= -90 && lat <= 90
}

// ValidLongitude reports whether lng is a finite value in [-180, 180].
func ValidLongitude(lng float64) bool {
	return !math.IsNaN(lng) && lng >= -180 && lng <= 180
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

func radToDeg(r float64) float64 {
	return r * 180 / math.Pi
}
