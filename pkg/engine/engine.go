package engine

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/engine/routing"
	"go.uber.org/zap"
)

type Engine struct {
	routeEngine *routing.RouteEngine
}

func (e *Engine) GetRoutingEngine() *routing.RouteEngine {
	return e.routeEngine
}

func NewEngine(network *datastructure.TransitNetwork, logger *zap.Logger) (*Engine, error) {
	logger.Info("Starting transit route query engine...",
		zap.Int("stations", network.NumberOfStations()),
		zap.Int("connections", network.NumberOfConnections()))

	planCache, err := lru.New[routing.PlanCacheKey, *datastructure.RoutePlan](1 << 16) // 65536
	if err != nil {
		return nil, err
	}

	return &Engine{
		routeEngine: routing.NewRouteEngine(network, logger, planCache),
	}, nil
}

func NewEngineFromSnapshot(snapshotPath string, logger *zap.Logger) (*Engine, error) {
	logger.Info("Reading transit network from ", zap.String("snapshotPath", snapshotPath))
	network, err := datastructure.ReadNetwork(snapshotPath)
	if err != nil {
		return nil, err
	}

	return NewEngine(network, logger)
}
