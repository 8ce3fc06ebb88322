package routing

import (
	da "github.com/lintang-b-s/transitx/pkg/datastructure"
)

// stationInfo is the search label of one station: accumulated weighted cost
// from the source, the parent station the label came from and the heap node
// tracking it in the priority queue.
type stationInfo struct {
	travelTime float64
	parent     string
	hasParent  bool
	scanned    bool
	heapNode   *da.PriorityQueueNode[string]
}

func newStationInfo(travelTime float64, heapNode *da.PriorityQueueNode[string]) *stationInfo {
	return &stationInfo{
		travelTime: travelTime,
		heapNode:   heapNode,
	}
}

func (si *stationInfo) getTravelTime() float64 {
	return si.travelTime
}

func (si *stationInfo) updateTravelTime(tt float64) {
	si.travelTime = tt
}

func (si *stationInfo) getParent() (string, bool) {
	return si.parent, si.hasParent
}

func (si *stationInfo) updateParent(parent string) {
	si.parent = parent
	si.hasParent = true
}

func (si *stationInfo) scan() {
	si.scanned = true
}

func (si *stationInfo) isScanned() bool {
	return si.scanned
}

func (si *stationInfo) getHeapNode() *da.PriorityQueueNode[string] {
	return si.heapNode
}
