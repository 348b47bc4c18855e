package spatial

import "github.com/golang/geo/s2"

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
)

// HaversineDistance calculates the great-circle distance between two points in meters
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Centroid returns the spherical centroid of a set of coordinate pairs.
// Each element of coords is {lat, lng} in degrees.
func Centroid(coords [][2]float64) (lat, lng float64) {
	if len(coords) == 0 {
		return 0, 0
	}

	var sum s2.Point
	for _, c := range coords {
		p := s2.PointFromLatLng(s2.LatLngFromDegrees(c[0], c[1]))
		sum.X += p.X
		sum.Y += p.Y
		sum.Z += p.Z
	}

	center := s2.LatLngFromPoint(s2.Point{Vector: sum.Normalize()})
	return center.Lat.Degrees(), center.Lng.Degrees()
}
