package spatialindex

import (
	"math"
	"sort"

	"github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/geo"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"
)

type Rtree struct {
	tr *rtree.RTreeG[StationPoint]
}

// StationPoint is one indexed station position. only explicitly added
// stations are indexed, implicit stations carry no coordinates.
type StationPoint struct {
	id  string
	lat float64
	lon float64
}

func (sp StationPoint) GetID() string {
	return sp.id
}

func (sp StationPoint) GetLat() float64 {
	return sp.lat
}

func (sp StationPoint) GetLon() float64 {
	return sp.lon
}

func NewStationPoint(id string, lat, lon float64) StationPoint {
	return StationPoint{
		id:  id,
		lat: lat,
		lon: lon,
	}
}

func NewRtree() *Rtree {
	var tr rtree.RTreeG[StationPoint]
	return &Rtree{
		tr: &tr,
	}
}

// Build. build r-tree over the station positions of network, with each leaf
// having bounding box with radius boundingBoxRadius (in km)
func (rt *Rtree) Build(network *datastructure.TransitNetwork, boundingBoxRadius float64, log *zap.Logger) {
	log.Info("Building R-tree spatial index...")

	indexed := 0
	network.ForStations(func(station *datastructure.Station) {
		lat, lon := station.GetLat(), station.GetLon()

		lowerLat, lowerLon := geo.GetDestinationPoint(lat, lon, 225, boundingBoxRadius)
		upperLat, upperLon := geo.GetDestinationPoint(lat, lon, 45, boundingBoxRadius)

		minLat := math.Min(lowerLat, upperLat)
		minLon := math.Min(lowerLon, upperLon)
		maxLat := math.Max(lowerLat, upperLat)
		maxLon := math.Max(lowerLon, upperLon)

		rt.tr.Insert([2]float64{minLon, minLat}, [2]float64{maxLon, maxLat},
			NewStationPoint(station.GetID(), lat, lon))
		indexed++
	})

	log.Info("R-tree spatial index built.", zap.Int("stations", indexed))
}

// SearchWithinRadius search for all stations within radius (in km) from the
// query point (qLat, qLon). bounding box prefilter only, refine with
// geo.ExactDistance on the caller side.
func (rt *Rtree) SearchWithinRadius(qLat, qLon, radius float64) []StationPoint {
	lowerLat, lowerLon := geo.GetDestinationPoint(qLat, qLon, 225, radius)
	upperLat, upperLon := geo.GetDestinationPoint(qLat, qLon, 45, radius)

	results := make([]StationPoint, 0, 10)
	rt.tr.Search([2]float64{lowerLon, lowerLat}, [2]float64{upperLon, upperLat},
		func(min, max [2]float64, data StationPoint) bool {
			results = append(results, data)
			if len(results) >= 20 {
				return false
			}
			return true
		})
	return results
}

// StationNeighbor pairs an indexed station with its exact spherical
// distance and initial bearing from the query point.
type StationNeighbor struct {
	station    StationPoint
	distanceKM float64
	bearing    float64
}

func NewStationNeighbor(station StationPoint, distanceKM, bearing float64) StationNeighbor {
	return StationNeighbor{
		station:    station,
		distanceKM: distanceKM,
		bearing:    bearing,
	}
}

func (sn StationNeighbor) GetStation() StationPoint {
	return sn.station
}

func (sn StationNeighbor) GetDistanceKM() float64 {
	return sn.distanceKM
}

func (sn StationNeighbor) GetBearing() float64 {
	return sn.bearing
}

// NearbyStations returns the stations within radius km of (qLat, qLon)
// ordered by exact spherical distance, nearest first. bounding box
// candidates farther than radius are dropped.
func (rt *Rtree) NearbyStations(qLat, qLon, radius float64) []StationNeighbor {
	candidates := rt.SearchWithinRadius(qLat, qLon, radius)

	neighbors := make([]StationNeighbor, 0, len(candidates))
	for _, candidate := range candidates {
		dist := geo.ExactDistance(qLat, qLon, candidate.GetLat(), candidate.GetLon())
		if dist > radius {
			continue
		}
		neighbors = append(neighbors, StationNeighbor{
			station:    candidate,
			distanceKM: dist,
			bearing:    geo.BearingTo(qLat, qLon, candidate.GetLat(), candidate.GetLon()),
		})
	}

	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].distanceKM < neighbors[j].distanceKM
	})
	return neighbors
}

// NearestStation returns the station closest to (qLat, qLon) among the
// candidates within radius. the second result is the distance in km, ok
// reports whether any candidate was found.
func (rt *Rtree) NearestStation(qLat, qLon, radius float64) (StationPoint, float64, bool) {
	neighbors := rt.NearbyStations(qLat, qLon, radius)
	if len(neighbors) == 0 {
		return StationPoint{}, 0, false
	}
	return neighbors[0].GetStation(), neighbors[0].GetDistanceKM(), true
}
