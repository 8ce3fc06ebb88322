package osmparser

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/geo"
	"github.com/lintang-b-s/transitx/pkg/util"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"go.uber.org/zap"
)

// cruising speeds used to estimate hop travel times from stop distances,
// in km/h.
var modeSpeedKMH = map[string]float64{
	pkg.METRO_NAME: 35,
	pkg.TRAIN_NAME: 60,
	pkg.BUS_NAME:   20,
}

type stopNode struct {
	name string
	lat  float64
	lon  float64
}

type transitRoute struct {
	name     string
	mode     string
	stopRefs []int64
}

// TransitParser builds a transit network from the public transport route
// relations of an openstreetmap pbf extract. stops are the node members of
// type=route relations (role "stop" and its variants, or no role), named
// stops with the same name merge into one station. hop travel times are
// estimated from the stop distance at the cruising speed of the mode.
type TransitParser struct {
	log       *zap.Logger
	routes    []transitRoute
	stopRefs  map[int64]struct{}
	stopNodes map[int64]stopNode
}

func NewTransitParser(log *zap.Logger) *TransitParser {
	return &TransitParser{
		log:       log,
		stopRefs:  make(map[int64]struct{}),
		stopNodes: make(map[int64]stopNode),
	}
}

// Parse scans mapFile twice, first for the route relations, then for the
// coordinates of their stop nodes, and builds the network from them.
func (p *TransitParser) Parse(mapFile string) (*datastructure.TransitNetwork, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput,
			"cannot open osm pbf file %s", mapFile)
	}
	defer f.Close()

	scanner := osmpbf.New(context.Background(), f, 0)
	// must not be parallel
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeRelation {
			continue
		}

		relation := o.(*osm.Relation)
		if relation.Tags.Find("type") != "route" {
			continue
		}
		mode, ok := routeModeToTransportMode(relation.Tags.Find("route"))
		if !ok {
			continue
		}

		route := transitRoute{
			name: relation.Tags.Find("name"),
			mode: mode,
		}
		for _, member := range relation.Members {
			if member.Type != osm.TypeNode {
				continue
			}
			if member.Role != "" && !strings.HasPrefix(member.Role, "stop") {
				continue
			}
			route.stopRefs = append(route.stopRefs, member.Ref)
			p.stopRefs[member.Ref] = struct{}{}
		}

		if len(route.stopRefs) >= 2 {
			p.routes = append(p.routes, route)
		}
	}
	scanner.Close()

	p.log.Info("scanned openstreetmap route relations",
		zap.Int("routes", len(p.routes)), zap.Int("stop_nodes", len(p.stopRefs)))

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError,
			"cannot rewind osm pbf file %s", mapFile)
	}

	scanner = osmpbf.New(context.Background(), f, 0)
	defer scanner.Close()
	for scanner.Scan() {
		o := scanner.Object()
		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}

		node := o.(*osm.Node)
		if _, ok := p.stopRefs[int64(node.ID)]; !ok {
			continue
		}
		p.stopNodes[int64(node.ID)] = stopNode{
			name: node.Tags.Find("name"),
			lat:  node.Lat,
			lon:  node.Lon,
		}
	}

	return p.buildNetwork()
}

func (p *TransitParser) buildNetwork() (*datastructure.TransitNetwork, error) {
	tn := datastructure.NewTransitNetwork()

	skippedHops := 0
	for _, route := range p.routes {
		for i := 0; i+1 < len(route.stopRefs); i++ {
			from, okFrom := p.stopNodes[route.stopRefs[i]]
			to, okTo := p.stopNodes[route.stopRefs[i+1]]
			if !okFrom || !okTo {
				// stop node outside the extract
				skippedHops++
				continue
			}

			fromID := stationID(route.stopRefs[i], from)
			toID := stationID(route.stopRefs[i+1], to)
			if fromID == toID {
				continue
			}

			tn.AddStation(fromID, pkg.DEFAULT_STATION_CAPACITY, from.lat, from.lon)
			tn.AddStation(toID, pkg.DEFAULT_STATION_CAPACITY, to.lat, to.lon)

			travelTime := estimateTravelTime(from, to, route.mode)
			if err := addMinConnection(tn, fromID, toID, route.mode, travelTime); err != nil {
				return nil, err
			}
		}
	}

	p.log.Info("built transit network from openstreetmap",
		zap.Int("stations", tn.NumberOfStations()),
		zap.Int("connections", tn.NumberOfConnections()),
		zap.Int("skipped_hops", skippedHops))

	return tn, nil
}

// stationID merges stops by name, unnamed stops keep their osm node id.
func stationID(ref int64, stop stopNode) string {
	if stop.name != "" {
		return stop.name
	}
	return fmt.Sprintf("osm:%d", ref)
}

// estimateTravelTime returns the estimated hop time in minutes at the
// cruising speed of mode.
func estimateTravelTime(from, to stopNode, mode string) float64 {
	distKM := geo.CalculateHaversineDistance(from.lat, from.lon, to.lat, to.lon)
	return distKM / modeSpeedKMH[mode] * 60.0
}

// addMinConnection keeps the smallest estimate when several routes share
// the same hop and mode.
func addMinConnection(tn *datastructure.TransitNetwork, from, to, mode string,
	travelTime float64) error {
	for _, conn := range tn.ConnectionsBetween(from, to) {
		if conn.GetTransportType() == pkg.GetTransportType(mode) &&
			conn.GetTravelTime() <= travelTime {
			return nil
		}
	}

	_, err := tn.AddConnection(from, to, mode, travelTime, nil)
	return err
}

// routeModeToTransportMode maps an osm route tag value onto a transport
// mode name. rail like city modes count as metro, heavy rail as train.
func routeModeToTransportMode(routeTag string) (string, bool) {
	switch routeTag {
	case "subway", "tram", "light_rail", "monorail":
		return pkg.METRO_NAME, true
	case "train", "rail", "railway":
		return pkg.TRAIN_NAME, true
	case "bus", "trolleybus":
		return pkg.BUS_NAME, true
	default:
		return "", false
	}
}
