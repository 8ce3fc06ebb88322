package metrics

import (
	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/costfunction"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
)

// route metrics are derived from the raw minimum travel time connection of
// every hop, selected under the neutral time cost function. the preference
// weighting the route search minimized plays no part in what gets reported
// here, so the reported total can belong to a different parallel connection
// than the one the search priced the hop with.

var rawTime costfunction.CostFunction = costfunction.NewTimeCostFunction()

// minTravelTimeConnection picks the parallel connection between u and v with
// the smallest raw travel time, first inserted wins ties. reports false when
// the pair is not linked at all.
func minTravelTimeConnection(tn *da.TransitNetwork, u, v string) (*da.Connection, bool) {
	conns := tn.ConnectionsBetween(u, v)
	if len(conns) == 0 {
		return nil, false
	}

	best := conns[0]
	for _, conn := range conns[1:] {
		if rawTime.GetWeight(conn) < rawTime.GetWeight(best) {
			best = conn
		}
	}
	return best, true
}

// CalculateTotalTime sums the raw minimum travel time of every hop along
// path. a hop without any connection contributes zero, which keeps the
// function total for arbitrary station sequences. paths shorter than two
// stations cost zero.
func CalculateTotalTime(tn *da.TransitNetwork, path []string) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		if conn, ok := minTravelTimeConnection(tn, path[i], path[i+1]); ok {
			total += conn.GetTravelTime()
		}
	}
	return total
}

// CountTransfers counts the interior stations of path where the arriving
// and the departing hop ride different transport types. the compared
// connection per hop is the raw minimum travel time one. paths with at most
// one hop have no interior station and count zero.
func CountTransfers(tn *da.TransitNetwork, path []string) int32 {
	if len(path) <= 2 {
		return 0
	}

	transfers := int32(0)
	for i := 1; i+1 < len(path); i++ {
		arrive, okArrive := minTravelTimeConnection(tn, path[i-1], path[i])
		depart, okDepart := minTravelTimeConnection(tn, path[i], path[i+1])
		if !okArrive || !okDepart {
			continue
		}
		if arrive.GetTransportType() != depart.GetTransportType() {
			transfers++
		}
	}
	return transfers
}

// DeriveLegs materializes the reported connection of every hop along path.
// hops without a connection yield no leg. consistent by construction with
// CalculateTotalTime and CountTransfers.
func DeriveLegs(tn *da.TransitNetwork, path []string) []da.RouteLeg {
	if len(path) < 2 {
		return []da.RouteLeg{}
	}

	legs := make([]da.RouteLeg, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		conn, ok := minTravelTimeConnection(tn, path[i], path[i+1])
		if !ok {
			continue
		}
		legs = append(legs, da.NewRouteLeg(path[i], path[i+1],
			conn.GetTransportType(), conn.GetTravelTime()))
	}
	return legs
}

// NetworkStats summarizes a network: station count (explicit and implicit)
// and connection counts broken down per transport type.
type NetworkStats struct {
	stations          int
	connections       int
	connectionsByType map[pkg.TransportType]int
}

func (ns NetworkStats) GetStations() int {
	return ns.stations
}

func (ns NetworkStats) GetConnections() int {
	return ns.connections
}

func (ns NetworkStats) GetConnectionsOfType(transportType pkg.TransportType) int {
	return ns.connectionsByType[transportType]
}

func CollectNetworkStats(tn *da.TransitNetwork) NetworkStats {
	stats := NetworkStats{
		stations:          tn.NumberOfStations(),
		connections:       tn.NumberOfConnections(),
		connectionsByType: make(map[pkg.TransportType]int),
	}
	tn.ForConnections(func(conn *da.Connection) {
		stats.connectionsByType[conn.GetTransportType()]++
	})
	return stats
}
