package geo

import (
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes coords as a google encoded polyline string.
func PolylineFromCoords(coords []Coordinate) string {
	latLons := make([][]float64, len(coords))
	for i, c := range coords {
		latLons[i] = []float64{c.GetLat(), c.GetLon()}
	}
	return string(polyline.EncodeCoords(latLons))
}
