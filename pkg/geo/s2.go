package geo

import (
	"github.com/golang/geo/s2"
)

// ExactDistance returns the geodesic distance in km between two points,
// computed on the s2 unit sphere. used to refine bounding box candidates
// from the spatial index into true distances.
func ExactDistance(latOne, lonOne, latTwo, lonTwo float64) float64 {
	pointOne := s2.LatLngFromDegrees(latOne, lonOne)
	pointTwo := s2.LatLngFromDegrees(latTwo, lonTwo)
	return pointOne.Distance(pointTwo).Radians() * earthRadiusKM
}
