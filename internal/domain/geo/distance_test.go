package geo

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance_KnownPairs(t *testing.T) {
	tests := []struct {
		name string
		p1   orb.Point
		p2   orb.Point
		want float64
		tol  float64
	}{
		{"Paris to London", orb.Point{2.3522, 48.8566}, orb.Point{-0.1278, 51.5074}, 343556, 5},
		{"Stade Jean Bouin to Piscine Molitor", orb.Point{2.2530, 48.8415}, orb.Point{2.2516, 48.8476}, 685.98, 0.5},
		{"one degree of latitude", orb.Point{0, 0}, orb.Point{0, 1}, 111194.93, 0.5},
		{"antipodal on the equator", orb.Point{0, 0}, orb.Point{180, 0}, math.Pi * EarthRadiusMeters, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.p1, tt.p2), tt.tol)
		})
	}
}

func TestDistance_IdenticalPointsIsZero(t *testing.T) {
	points := []orb.Point{
		{2.2530, 48.8415},
		{0, 90},
		{-180, -90},
		{179.9999, 0.0001},
	}

	for _, p := range points {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]orb.Point{
		{{2.2530, 48.8415}, {2.4364, 48.8466}},
		{{-73.9857, 40.7484}, {139.6917, 35.6895}},
		{{179.5, -10}, {-179.5, 10}},
	}

	for _, pair := range pairs {
		d1 := Distance(pair[0], pair[1])
		d2 := Distance(pair[1], pair[0])
		assert.InDelta(t, d1, d2, 1e-6)
		assert.False(t, math.IsNaN(d1))
		assert.GreaterOrEqual(t, d1, 0.0)
	}
}

func TestBoundAround_ContainsCircle(t *testing.T) {
	center := orb.Point{2.2530, 48.8415}
	radius := 5000.0

	bound, ok := BoundAround(center, radius)
	require.True(t, ok)
	assert.True(t, bound.Contains(center))

	// Walk the circle edge and make sure every point lands inside the box.
	for deg := 0; deg < 360; deg += 5 {
		bearing := float64(deg) * math.Pi / 180
		edge := destination(center, bearing, radius)
		assert.True(t, bound.Contains(edge), "edge point at bearing %d outside bound", deg)
	}
}

func TestBoundAround_RejectsPolesAndAntimeridian(t *testing.T) {
	_, ok := BoundAround(orb.Point{0, 89.99}, 5000)
	assert.False(t, ok)

	_, ok = BoundAround(orb.Point{179.99, 0}, 5000)
	assert.False(t, ok)

	_, ok = BoundAround(orb.Point{0, 0}, 0)
	assert.False(t, ok)

	_, ok = BoundAround(orb.Point{0, 0}, math.NaN())
	assert.False(t, ok)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, ValidLatitude(90))
	assert.True(t, ValidLatitude(-90))
	assert.False(t, ValidLatitude(90.0001))
	assert.False(t, ValidLatitude(math.NaN()))

	assert.True(t, ValidLongitude(180))
	assert.True(t, ValidLongitude(-180))
	assert.False(t, ValidLongitude(-180.5))
	assert.False(t, ValidLongitude(math.NaN()))
}

// destination returns the point reached from p after distance meters on the given bearing.
func destination(p orb.Point, bearing, distance float64) orb.Point {
	angular := distance / EarthRadiusMeters
	lat1 := degToRad(p.Lat())
	lng1 := degToRad(p.Lon())

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(angular) + math.Cos(lat1)*math.Sin(angular)*math.Cos(bearing))
	lng2 := lng1 + math.Atan2(
		math.Sin(bearing)*math.Sin(angular)*math.Cos(lat1),
		math.Cos(angular)-math.Sin(lat1)*math.Sin(lat2),
	)

	return orb.Point{radToDeg(lng2), radToDeg(lat2)}
}
