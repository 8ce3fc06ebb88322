package usecases

import (
	"errors"

	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/metrics"
	"github.com/lintang-b-s/transitx/pkg/spatialindex"
	"github.com/lintang-b-s/transitx/pkg/util"
	"go.uber.org/zap"
)

var (
	ErrUnknownTransportMode = errors.New("unknown transport mode")
	ErrNoNearbyStation      = errors.New("no station nearby")
)

type RoutingService struct {
	log          *zap.Logger
	engine       RoutingEngine
	spatialIndex SpatialIndex
	searchRadius float64
}

// NewRoutingService wires the route engine and the spatial index behind the
// http and websocket controllers. searchRadius (km) is the nearest station
// radius used when a query does not name one.
func NewRoutingService(log *zap.Logger, engine RoutingEngine, spatialindex SpatialIndex,
	searchRadius float64) *RoutingService {
	return &RoutingService{
		log:          log,
		engine:       engine,
		spatialIndex: spatialindex,
		searchRadius: searchRadius,
	}
}

// FindRoute runs one preference weighted route query. preferences are keyed
// by transport mode name, an empty map rides on the default multipliers. the
// second result carries one encoded polyline per plan leg, empty for legs
// whose stations have no coordinates.
func (rs *RoutingService) FindRoute(start, end string,
	preferences map[string]float64) (*datastructure.RoutePlan, []string, bool, error) {
	multipliers, err := rs.preferenceMultipliers(preferences)
	if err != nil {
		return nil, nil, false, err
	}

	plan, err := rs.engine.FindOptimalRoute(start, end, multipliers)
	if err != nil {
		return nil, nil, false, err
	}

	return plan, rs.legPolylines(plan), true, nil
}

// preferenceMultipliers converts mode name keyed multipliers into transport
// type keyed ones. nil means ride on the engine defaults.
func (rs *RoutingService) preferenceMultipliers(
	preferences map[string]float64) (map[pkg.TransportType]float64, error) {
	if len(preferences) == 0 {
		return nil, nil
	}

	multipliers := make(map[pkg.TransportType]float64, len(preferences))
	for mode, multiplier := range preferences {
		transportType := pkg.GetTransportType(mode)
		if transportType == pkg.UNKNOWN_TRANSPORT {
			return nil, util.WrapErrorf(ErrUnknownTransportMode, util.ErrBadParamInput,
				"unknown transport mode in preferences: %s. must be one of %s, %s, %s",
				mode, pkg.METRO_NAME, pkg.BUS_NAME, pkg.TRAIN_NAME)
		}
		if multiplier <= 0 {
			return nil, util.WrapErrorf(ErrUnknownTransportMode, util.ErrBadParamInput,
				"preference multiplier for %s must be positive, got %f", mode, multiplier)
		}
		multipliers[transportType] = multiplier
	}
	return multipliers, nil
}

// NearestStations returns the indexed stations within radiusKM of the query
// point, nearest first. radiusKM <= 0 falls back to the service default.
func (rs *RoutingService) NearestStations(lat, lon,
	radiusKM float64) ([]spatialindex.StationNeighbor, error) {
	if radiusKM <= 0 {
		radiusKM = rs.searchRadius
	}

	neighbors := rs.spatialIndex.NearbyStations(lat, lon, radiusKM)
	if len(neighbors) == 0 {
		return nil, util.WrapErrorf(ErrNoNearbyStation, util.ErrNotFound,
			"no station within %.2f km of %f,%f", radiusKM, lat, lon)
	}

	return neighbors, nil
}

func (rs *RoutingService) NetworkStats() metrics.NetworkStats {
	return metrics.CollectNetworkStats(rs.engine.GetNetwork())
}
