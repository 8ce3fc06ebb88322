package usecases

import (
	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/spatialindex"
)

type RoutingEngine interface {
	FindOptimalRoute(start, end string,
		preferences map[pkg.TransportType]float64) (*datastructure.RoutePlan, error)
	GetNetwork() *datastructure.TransitNetwork
}

type SpatialIndex interface {
	NearbyStations(lat, lon, radiusKM float64) []spatialindex.StationNeighbor
	NearestStation(lat, lon, radiusKM float64) (spatialindex.StationPoint, float64, bool)
}
