package main

import (
	"context"
	"errors"
	"flag"

	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/engine"
	"github.com/lintang-b-s/transitx/pkg/http"
	"github.com/lintang-b-s/transitx/pkg/http/usecases"
	"github.com/lintang-b-s/transitx/pkg/logger"
	"github.com/lintang-b-s/transitx/pkg/netbuilder"
	"github.com/lintang-b-s/transitx/pkg/osmparser"
	"github.com/lintang-b-s/transitx/pkg/spatialindex"
	"github.com/lintang-b-s/transitx/pkg/util"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	snapshotPath          = flag.String("snapshot", "", "transit network snapshot file (bzip2)")
	gtfsPath              = flag.String("gtfs", "", "GTFS static feed (zip archive)")
	osmPath               = flag.String("osm", "", "OpenStreetMap extract (osm.pbf)")
	leafBoundingBoxRadius = flag.Float64("leaf_bounding_box_radius", 0.05, "leaf node (r-tree) bounding box radius in km")
	useRateLimit          = flag.Bool("rate_limit", false, "rate limit the http api per client ip")
)

func main() {
	flag.Parse()
	logger, err := logger.New()
	if err != nil {
		panic(err)
	}

	if err := util.ReadConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(err)
		}
	}

	network, err := loadNetwork(logger)
	if err != nil {
		panic(err)
	}

	transitEngine, err := engine.NewEngine(network, logger)
	if err != nil {
		panic(err)
	}

	rtree := spatialindex.NewRtree()
	rtree.Build(network, *leafBoundingBoxRadius, logger)

	api := http.NewServer(logger)

	routingService := usecases.NewRoutingService(logger, transitEngine.GetRoutingEngine(), rtree, 5.0)
	ctx, cleanup, err := NewContext()
	if err != nil {
		panic(err)
	}
	if _, err := api.Use(ctx, logger, *useRateLimit, routingService); err != nil {
		panic(err)
	}

	signal := http.GracefulShutdown()

	logger.Info("Transitx Route Planner Server Stopped", zap.String("signal", signal.String()))
	cleanup()
}

// loadNetwork builds the transit network from the first source named on the
// command line, the bundled sample network when none is.
func loadNetwork(log *zap.Logger) (*datastructure.TransitNetwork, error) {
	switch {
	case *snapshotPath != "":
		return datastructure.ReadNetwork(*snapshotPath)
	case *gtfsPath != "":
		return netbuilder.NewGTFSImporter(log).ImportGTFS(*gtfsPath)
	case *osmPath != "":
		return osmparser.NewTransitParser(log).Parse(*osmPath)
	default:
		return netbuilder.SampleNetwork()
	}
}

func NewContext() (context.Context, func(), error) {
	ctx, cancel := context.WithCancel(context.Background())
	cb := func() {
		cancel()
	}

	return ctx, cb, nil
}
