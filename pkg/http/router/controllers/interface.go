package controllers

import (
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/metrics"
	"github.com/lintang-b-s/transitx/pkg/spatialindex"
)

type RoutingService interface {
	FindRoute(start, end string, preferences map[string]float64) (*datastructure.RoutePlan, []string, bool, error)
	NearestStations(lat, lon, radiusKM float64) ([]spatialindex.StationNeighbor, error)
	NetworkStats() metrics.NetworkStats
}
