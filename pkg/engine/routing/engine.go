package routing

import (
	"fmt"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/costfunction"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
	met "github.com/lintang-b-s/transitx/pkg/metrics"
	"go.uber.org/zap"
)

// PlanCacheKey identifies one route query: endpoints plus the canonical
// form of the preference map. the network is read only after construction,
// so cached plans never go stale.
type PlanCacheKey struct {
	start       string
	end         string
	preferences string
}

func NewPlanCacheKey(start, end string, preferences map[pkg.TransportType]float64) PlanCacheKey {
	return PlanCacheKey{
		start:       start,
		end:         end,
		preferences: canonicalPreferences(preferences),
	}
}

// canonicalPreferences serializes a preference map in fixed transport type
// order so equal maps always produce the same key.
func canonicalPreferences(preferences map[pkg.TransportType]float64) string {
	var sb strings.Builder
	for _, transportType := range pkg.TransportTypes() {
		if multiplier, ok := preferences[transportType]; ok {
			fmt.Fprintf(&sb, "%s=%s;", transportType,
				strconv.FormatFloat(multiplier, 'f', -1, 64))
		}
	}
	return sb.String()
}

type RouteEngine struct {
	network   *da.TransitNetwork
	logger    *zap.Logger
	planCache *lru.Cache[PlanCacheKey, *da.RoutePlan]
}

func NewRouteEngine(network *da.TransitNetwork, logger *zap.Logger,
	planCache *lru.Cache[PlanCacheKey, *da.RoutePlan]) *RouteEngine {
	return &RouteEngine{
		network:   network,
		logger:    logger,
		planCache: planCache,
	}
}

func (re *RouteEngine) GetNetwork() *da.TransitNetwork {
	return re.network
}

// FindOptimalRoute searches the minimum weighted cost route between start
// and end under the given preference multipliers, nil means the defaults.
// the returned plan reports total time and transfers derived from the raw
// minimum travel time connection per hop, not from the weighted cost the
// search minimized.
func (re *RouteEngine) FindOptimalRoute(start, end string,
	preferences map[pkg.TransportType]float64) (*da.RoutePlan, error) {
	if preferences == nil {
		preferences = costfunction.DefaultPreferences()
	}

	key := NewPlanCacheKey(start, end, preferences)
	if plan, ok := re.planCache.Get(key); ok {
		return plan, nil
	}

	dijkstra := NewDijkstra(re.network, costfunction.NewPreferenceCostFunction(preferences))
	path, weightedCost, err := dijkstra.ShortestPath(start, end)
	if err != nil {
		return nil, err
	}

	plan := da.NewRoutePlan(path,
		met.CalculateTotalTime(re.network, path),
		met.CountTransfers(re.network, path),
		met.DeriveLegs(re.network, path))

	re.logger.Debug("route query settled",
		zap.String("start", start), zap.String("end", end),
		zap.Float64("weighted_cost", weightedCost),
		zap.Float64("total_time", plan.GetTotalTime()),
		zap.Int32("transfers", plan.GetTransfers()),
		zap.Int("settled_nodes", dijkstra.GetNumSettledNodes()))

	re.planCache.Add(key, plan)
	return plan, nil
}
