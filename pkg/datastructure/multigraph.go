package datastructure

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/schedule"
	"github.com/lintang-b-s/transitx/pkg/util"
)

type Index uint32

var ErrInvalidTransportType = errors.New("invalid transport type")

// TransitNetwork is an undirected multigraph of stations. connections live
// in one arena slice, a connection id is its arena slot. adjacency keeps the
// incident connection ids of every station in insertion order, so every
// traversal over the network is deterministic. a station is part of the
// network as soon as it appears in adjacency, either through AddStation or
// as an endpoint of a connection (implicit station, no Station record).
type TransitNetwork struct {
	stations     map[string]*Station
	connections  []*Connection
	adjacency    map[string][]Index
	pairIndex    map[StationPair]map[pkg.TransportType]Index
	stationOrder []string
}

func NewTransitNetwork() *TransitNetwork {
	return &TransitNetwork{
		stations:     make(map[string]*Station),
		connections:  make([]*Connection, 0),
		adjacency:    make(map[string][]Index),
		pairIndex:    make(map[StationPair]map[pkg.TransportType]Index),
		stationOrder: make([]string, 0),
	}
}

// registerStation marks id as part of the network, keeping first-seen order.
func (tn *TransitNetwork) registerStation(id string) {
	if _, ok := tn.adjacency[id]; !ok {
		tn.adjacency[id] = make([]Index, 0)
		tn.stationOrder = append(tn.stationOrder, id)
	}
}

// AddStation inserts a station with explicit coordinates, or overwrites the
// capacity and coordinates of an already known one.
func (tn *TransitNetwork) AddStation(id string, capacity int32, lat, lon float64) *Station {
	tn.registerStation(id)

	if station, ok := tn.stations[id]; ok {
		station.SetCapacity(capacity)
		station.SetCoordinates(lat, lon)
		return station
	}

	station := NewStation(id, capacity, lat, lon)
	tn.stations[id] = station
	return station
}

// AddStationRandomCoords inserts a station placed at a pseudo random point
// in the unit square, for networks that only care about topology.
func (tn *TransitNetwork) AddStationRandomCoords(id string, capacity int32) *Station {
	return tn.AddStation(id, capacity, rand.Float64(), rand.Float64())
}

// AddConnection links from and to with an undirected connection of the given
// transport mode. endpoints never seen before become implicit stations, no
// prior AddStation required. a nil timetable gets the default synthesized
// one. adding a connection for a (pair, transport type) that already exists
// overwrites the travel time and timetable of the existing connection in
// place, keeping its id, so at most one connection per transport type links
// any station pair.
func (tn *TransitNetwork) AddConnection(from, to string, transportMode string,
	travelTime float64, timetable []string) (Index, error) {
	transportType := pkg.GetTransportType(transportMode)
	if transportType == pkg.UNKNOWN_TRANSPORT {
		return 0, util.WrapErrorf(ErrInvalidTransportType, util.ErrBadParamInput,
			"invalid transport type: %s. must be one of %s, %s, %s", transportMode,
			pkg.METRO_NAME, pkg.BUS_NAME, pkg.TRAIN_NAME)
	}

	if timetable == nil {
		timetable = schedule.DefaultTimetable()
	}

	pair := NewStationPair(from, to)
	if byType, ok := tn.pairIndex[pair]; ok {
		if connID, ok := byType[transportType]; ok {
			conn := tn.connections[connID]
			conn.SetTravelTime(travelTime)
			conn.SetTimetable(timetable)
			return connID, nil
		}
	}

	connID := Index(len(tn.connections))
	conn := NewConnection(connID, from, to, transportType, travelTime, timetable)
	tn.connections = append(tn.connections, conn)

	tn.registerStation(from)
	tn.registerStation(to)
	tn.adjacency[from] = append(tn.adjacency[from], connID)
	if to != from {
		tn.adjacency[to] = append(tn.adjacency[to], connID)
	}

	if tn.pairIndex[pair] == nil {
		tn.pairIndex[pair] = make(map[pkg.TransportType]Index)
	}
	tn.pairIndex[pair][transportType] = connID

	return connID, nil
}

// HasStation reports whether id is part of the network, explicitly added
// or implicit.
func (tn *TransitNetwork) HasStation(id string) bool {
	_, ok := tn.adjacency[id]
	return ok
}

// GetStation returns the station record of id. implicit stations have no
// record and report false.
func (tn *TransitNetwork) GetStation(id string) (*Station, bool) {
	station, ok := tn.stations[id]
	return station, ok
}

func (tn *TransitNetwork) GetConnection(id Index) *Connection {
	return tn.connections[id]
}

// ConnectionsBetween returns the parallel connections linking u and v in
// arena order, empty when the pair is not linked.
func (tn *TransitNetwork) ConnectionsBetween(u, v string) []*Connection {
	byType, ok := tn.pairIndex[NewStationPair(u, v)]
	if !ok {
		return []*Connection{}
	}

	ids := make([]Index, 0, len(byType))
	for _, id := range byType {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		conns = append(conns, tn.connections[id])
	}
	return conns
}

// ForConnectionsOf visits every connection incident to station in insertion
// order.
func (tn *TransitNetwork) ForConnectionsOf(station string, fn func(*Connection)) {
	for _, id := range tn.adjacency[station] {
		fn(tn.connections[id])
	}
}

func (tn *TransitNetwork) ConnectionsOf(station string) []*Connection {
	ids := tn.adjacency[station]
	conns := make([]*Connection, 0, len(ids))
	for _, id := range ids {
		conns = append(conns, tn.connections[id])
	}
	return conns
}

// NeighborsOf returns the distinct stations adjacent to station in
// first-seen order.
func (tn *TransitNetwork) NeighborsOf(station string) []string {
	seen := make(map[string]struct{})
	neighbors := make([]string, 0)
	for _, id := range tn.adjacency[station] {
		other := tn.connections[id].OtherEndpoint(station)
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		neighbors = append(neighbors, other)
	}
	return neighbors
}

// ForConnections visits every connection in the arena in id order.
func (tn *TransitNetwork) ForConnections(fn func(*Connection)) {
	for _, conn := range tn.connections {
		fn(conn)
	}
}

// ForStations visits every explicitly added station in first-seen order.
// implicit stations are skipped, they carry no record.
func (tn *TransitNetwork) ForStations(fn func(*Station)) {
	for _, id := range tn.stationOrder {
		if station, ok := tn.stations[id]; ok {
			fn(station)
		}
	}
}

func (tn *TransitNetwork) NumberOfStations() int {
	return len(tn.stationOrder)
}

func (tn *TransitNetwork) NumberOfConnections() int {
	return len(tn.connections)
}

// StationIDs returns every station id, explicit and implicit, in first-seen
// order.
func (tn *TransitNetwork) StationIDs() []string {
	ids := make([]string, len(tn.stationOrder))
	copy(ids, tn.stationOrder)
	return ids
}

func (tn *TransitNetwork) OutDegree(station string) int {
	return len(tn.adjacency[station])
}
