package main

import (
	"fmt"
	"os"

	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/engine"
	"github.com/lintang-b-s/transitx/pkg/logger"
	"github.com/lintang-b-s/transitx/pkg/netbuilder"
	"go.uber.org/zap"
)

// demo pipeline: build the sample network, answer two route queries and
// round trip the network through its snapshot file.
func main() {
	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	network, err := netbuilder.SampleNetwork()
	if err != nil {
		panic(err)
	}

	transitEngine, err := engine.NewEngine(network, log)
	if err != nil {
		panic(err)
	}
	routeEngine := transitEngine.GetRoutingEngine()

	plan, err := routeEngine.FindOptimalRoute("West", "Airport", nil)
	if err != nil {
		panic(err)
	}
	logPlan(log, "West", "Airport", plan)

	preferences := map[pkg.TransportType]float64{
		pkg.METRO: 1.0,
		pkg.BUS:   2.0,
		pkg.TRAIN: 1.1,
	}
	plan, err = routeEngine.FindOptimalRoute("Ramsis_square", "Airport", preferences)
	if err != nil {
		panic(err)
	}
	logPlan(log, "Ramsis_square", "Airport", plan)

	if err := os.MkdirAll("./data", 0o755); err != nil {
		panic(err)
	}
	if err := network.WriteNetwork("./data/transit.graph"); err != nil {
		panic(err)
	}

	restored, err := datastructure.ReadNetwork("./data/transit.graph")
	if err != nil {
		panic(err)
	}
	if restored.NumberOfStations() != network.NumberOfStations() ||
		restored.NumberOfConnections() != network.NumberOfConnections() {
		panic("snapshot round trip lost stations or connections")
	}
	log.Info("snapshot round trip ok",
		zap.String("snapshot", "./data/transit.graph"),
		zap.Int("stations", restored.NumberOfStations()),
		zap.Int("connections", restored.NumberOfConnections()))
}

func logPlan(log *zap.Logger, start, end string, plan *datastructure.RoutePlan) {
	legs := make([]string, 0, len(plan.GetLegs()))
	for _, leg := range plan.GetLegs() {
		legs = append(legs, fmt.Sprintf("%s->%s (%s, %.2f min)",
			leg.GetFrom(), leg.GetTo(), leg.GetTransportType(), leg.GetTravelTime()))
	}

	log.Info("route plan",
		zap.String("start", start),
		zap.String("end", end),
		zap.Strings("path", plan.GetPath()),
		zap.Float64("total_time", plan.GetTotalTime()),
		zap.Int32("transfers", plan.GetTransfers()),
		zap.Strings("legs", legs))
}
