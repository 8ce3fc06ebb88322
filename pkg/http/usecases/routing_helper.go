package usecases

import (
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/geo"
)

// legPolylines encodes the straight line geometry of every plan leg. legs
// touching an implicit station keep an empty string, implicit stations
// carry no coordinates to encode.
func (rs *RoutingService) legPolylines(plan *datastructure.RoutePlan) []string {
	network := rs.engine.GetNetwork()

	polylines := make([]string, len(plan.GetLegs()))
	for i, leg := range plan.GetLegs() {
		from, okFrom := network.GetStation(leg.GetFrom())
		to, okTo := network.GetStation(leg.GetTo())
		if !okFrom || !okTo {
			continue
		}

		polylines[i] = geo.PolylineFromCoords([]geo.Coordinate{
			geo.NewCoordinate(from.GetLat(), from.GetLon()),
			geo.NewCoordinate(to.GetLat(), to.GetLon()),
		})
	}
	return polylines
}
