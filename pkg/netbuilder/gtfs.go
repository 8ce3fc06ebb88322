package netbuilder

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jamespfennell/gtfs"
	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/util"
	"go.uber.org/zap"
)

// GTFSImporter builds a transit network from a static gtfs feed. every stop
// becomes a station and every consecutive stop time pair of a trip becomes
// an undirected connection of the trip's transport mode, aggregated to the
// minimum observed travel time per (station pair, mode) with the union of
// observed departure times as timetable.
type GTFSImporter struct {
	log *zap.Logger
}

func NewGTFSImporter(log *zap.Logger) *GTFSImporter {
	return &GTFSImporter{
		log: log,
	}
}

// ImportGTFS reads and parses the zipped gtfs feed at path and builds the
// network from it.
func (gi *GTFSImporter) ImportGTFS(path string) (*datastructure.TransitNetwork, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "cannot read gtfs feed %s", path)
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "cannot parse gtfs feed %s", path)
	}

	return gi.FromGTFSStatic(staticData)
}

type hopKey struct {
	from string
	to   string
	mode string
}

// newHopKey normalizes the endpoint order, connections are undirected so
// trips running either way aggregate into one hop.
func newHopKey(a, b, mode string) hopKey {
	if b < a {
		a, b = b, a
	}
	return hopKey{from: a, to: b, mode: mode}
}

type hopAgg struct {
	travelTime float64
	departures map[string]struct{}
}

// FromGTFSStatic builds the network from already parsed static gtfs data.
func (gi *GTFSImporter) FromGTFSStatic(staticData *gtfs.Static) (*datastructure.TransitNetwork, error) {
	tn := datastructure.NewTransitNetwork()

	skippedStops := 0
	for _, stop := range staticData.Stops {
		if stop.Latitude == nil || stop.Longitude == nil {
			skippedStops++
			continue
		}
		tn.AddStation(stop.Id, pkg.DEFAULT_STATION_CAPACITY, *stop.Latitude, *stop.Longitude)
	}

	hops := make(map[hopKey]*hopAgg)
	skippedTrips := 0
	for _, trip := range staticData.Trips {
		if trip.Route == nil {
			skippedTrips++
			continue
		}
		mode, ok := routeTypeToTransportMode(int(trip.Route.Type))
		if !ok {
			skippedTrips++
			continue
		}

		stopTimes := trip.StopTimes
		for i := 0; i+1 < len(stopTimes); i++ {
			cur, next := stopTimes[i], stopTimes[i+1]
			if cur.Stop == nil || next.Stop == nil {
				continue
			}

			travelTime := (next.ArrivalTime - cur.DepartureTime).Minutes()
			if travelTime <= 0 {
				continue
			}

			key := newHopKey(cur.Stop.Id, next.Stop.Id, mode)
			agg, ok := hops[key]
			if !ok {
				agg = &hopAgg{
					travelTime: pkg.INF_WEIGHT,
					departures: make(map[string]struct{}),
				}
				hops[key] = agg
			}
			if travelTime < agg.travelTime {
				agg.travelTime = travelTime
			}
			agg.departures[departureClock(cur.DepartureTime)] = struct{}{}
		}
	}

	keys := make([]hopKey, 0, len(hops))
	for key := range hops {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].from != keys[j].from {
			return keys[i].from < keys[j].from
		}
		if keys[i].to != keys[j].to {
			return keys[i].to < keys[j].to
		}
		return keys[i].mode < keys[j].mode
	})

	for _, key := range keys {
		agg := hops[key]

		timetable := make([]string, 0, len(agg.departures))
		for dep := range agg.departures {
			timetable = append(timetable, dep)
		}
		sort.Strings(timetable)

		if _, err := tn.AddConnection(key.from, key.to, key.mode,
			agg.travelTime, timetable); err != nil {
			return nil, err
		}
	}

	gi.log.Info("imported gtfs static feed",
		zap.Int("stations", tn.NumberOfStations()),
		zap.Int("connections", tn.NumberOfConnections()),
		zap.Int("skipped_stops", skippedStops),
		zap.Int("skipped_trips", skippedTrips))

	return tn, nil
}

// routeTypeToTransportMode maps a numeric gtfs route type onto a transport
// mode name. tram, subway and monorail count as metro, rail as train, bus
// and trolleybus as bus. every other route type reports false.
func routeTypeToTransportMode(routeType int) (string, bool) {
	switch routeType {
	case 0, 1, 12:
		return pkg.METRO_NAME, true
	case 2:
		return pkg.TRAIN_NAME, true
	case 3, 11:
		return pkg.BUS_NAME, true
	default:
		return "", false
	}
}

// departureClock formats a gtfs departure offset since midnight as hh:mm.
// services past midnight keep their gtfs convention, 25:30 stays 25:30.
func departureClock(departure time.Duration) string {
	minutes := int(departure.Minutes())
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
