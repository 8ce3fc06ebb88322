package routing

import (
	"errors"

	"github.com/lintang-b-s/transitx/pkg"
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
	"github.com/lintang-b-s/transitx/pkg/util"
)

var (
	ErrUnknownStation = errors.New("unknown station")
	ErrNoPathFound    = errors.New("no path found")
)

// Dijkstra is a single query unidirectional search over the transit
// multigraph. the hop cost between two adjacent stations is the minimum of
// the weighted parallel connections linking them, realized by relaxing each
// parallel connection on its own. adjacency is visited in insertion order,
// so equal-cost candidates resolve to the first discovered path and repeated
// queries are deterministic.
type Dijkstra struct {
	network      *da.TransitNetwork
	costFunction CostFunction

	forwardInfo map[string]*stationInfo
	pq          *da.MinHeap[string]

	numSettledNodes int
}

func NewDijkstra(network *da.TransitNetwork, costFunction CostFunction) *Dijkstra {
	return &Dijkstra{
		network:      network,
		costFunction: costFunction,
		forwardInfo:  make(map[string]*stationInfo),
		pq:           da.NewFourAryHeap[string](),
	}
}

// ShortestPath searches the minimum weighted cost route from start to end.
// it returns the station path and its total weighted cost. querying a
// station for itself is the degenerate single station path with zero cost,
// no search runs. unknown endpoints fail with ErrUnknownStation, exhausting
// the queue before reaching end fails with ErrNoPathFound.
func (d *Dijkstra) ShortestPath(start, end string) ([]string, float64, error) {
	if !d.network.HasStation(start) {
		return nil, 0, util.WrapErrorf(ErrUnknownStation, util.ErrNotFound,
			"unknown station: %s", start)
	}
	if !d.network.HasStation(end) {
		return nil, 0, util.WrapErrorf(ErrUnknownStation, util.ErrNotFound,
			"unknown station: %s", end)
	}

	if start == end {
		return []string{start}, 0, nil
	}

	d.preallocate()

	shNode := da.NewPriorityQueueNode(0, start)
	d.pq.Insert(shNode)
	d.forwardInfo[start] = newStationInfo(0, shNode)

	for !d.pq.IsEmpty() {
		node, err := d.pq.ExtractMin()
		if err != nil {
			break
		}

		u := node.GetItem()
		uInfo := d.forwardInfo[u]
		uInfo.scan()
		d.numSettledNodes++

		if u == end {
			return d.reconstructPath(start, end), uInfo.getTravelTime(), nil
		}

		d.relaxConnectionsOf(u, uInfo)
	}

	return nil, 0, util.WrapErrorf(ErrNoPathFound, util.ErrNotFound,
		"no path found between %s and %s", start, end)
}

// relaxConnectionsOf relaxes every connection incident to u. relaxing each
// parallel connection separately settles every neighbor at the minimum
// weighted parallel cost.
func (d *Dijkstra) relaxConnectionsOf(u string, uInfo *stationInfo) {
	d.network.ForConnectionsOf(u, func(conn *da.Connection) {
		v := conn.OtherEndpoint(u)
		if v == u {
			// self loop never improves a shortest path
			return
		}

		newTravelTime := uInfo.getTravelTime() + d.costFunction.GetWeight(conn)
		if da.Ge(newTravelTime, pkg.INF_WEIGHT) {
			return
		}

		vInfo, vAlreadyLabelled := d.forwardInfo[v]
		if vAlreadyLabelled && vInfo.isScanned() {
			return
		}
		if vAlreadyLabelled && da.Ge(newTravelTime, vInfo.getTravelTime()) {
			// newTravelTime is not better, do nothing
			return
		}

		if vAlreadyLabelled {
			vInfo.updateTravelTime(newTravelTime)
			vInfo.updateParent(u)
			d.pq.DecreaseKey(vInfo.getHeapNode(), newTravelTime)
		} else {
			vhNode := da.NewPriorityQueueNode(newTravelTime, v)
			vInfo = newStationInfo(newTravelTime, vhNode)
			vInfo.updateParent(u)
			d.forwardInfo[v] = vInfo
			d.pq.Insert(vhNode)
		}
	})
}

func (d *Dijkstra) reconstructPath(start, end string) []string {
	invPath := make([]string, 0)

	cur := end
	for {
		invPath = append(invPath, cur)
		if cur == start {
			break
		}
		parent, ok := d.forwardInfo[cur].getParent()
		if !ok {
			break
		}
		cur = parent
	}

	return util.ReverseG(invPath)
}

func (d *Dijkstra) preallocate() {
	n := d.network.NumberOfStations()
	d.forwardInfo = make(map[string]*stationInfo, n)
	d.pq.Preallocate(n)
}

func (d *Dijkstra) GetNumSettledNodes() int {
	return d.numSettledNodes
}
