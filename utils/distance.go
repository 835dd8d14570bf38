package utils

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// Distance returns the great-circle distance in meters between two (lon, lat) points.
func Distance(a, b orb.Point) float64 {
	return geo.DistanceHaversine(a, b)
}

// TravelSeconds converts a distance in meters covered at speedKMH into
// seconds, rounded half to even.
func TravelSeconds(meters, speedKMH float64) int {
	return Round(meters * 3.6 / speedKMH)
}

// Round rounds half to even, the rounding the export format was defined with.
func Round(v float64) int {
	return int(math.RoundToEven(v))
}
