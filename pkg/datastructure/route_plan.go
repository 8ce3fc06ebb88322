package datastructure

import (
	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/util"
)

// RouteLeg is one hop of a returned route: the connection actually reported
// for the hop, which is the minimum raw travel time one regardless of the
// preference weighting used by the search.
type RouteLeg struct {
	from          string
	to            string
	transportType pkg.TransportType
	travelTime    float64
}

func NewRouteLeg(from, to string, transportType pkg.TransportType, travelTime float64) RouteLeg {
	return RouteLeg{
		from:          from,
		to:            to,
		transportType: transportType,
		travelTime:    util.RoundFloat(travelTime, 2),
	}
}

func (l *RouteLeg) GetFrom() string {
	return l.from
}

func (l *RouteLeg) GetTo() string {
	return l.to
}

func (l *RouteLeg) GetTransportType() pkg.TransportType {
	return l.transportType
}

func (l *RouteLeg) GetTravelTime() float64 {
	return l.travelTime
}

// RoutePlan is the result of one route query. totalTime and transfers are
// derived from the raw minimum travel time connection per hop, not from the
// weighted cost the search minimized.
type RoutePlan struct {
	path      []string
	totalTime float64
	transfers int32
	legs      []RouteLeg
}

func NewRoutePlan(path []string, totalTime float64, transfers int32, legs []RouteLeg) *RoutePlan {
	return &RoutePlan{
		path:      path,
		totalTime: totalTime,
		transfers: transfers,
		legs:      legs,
	}
}

func (rp *RoutePlan) GetPath() []string {
	return rp.path
}

func (rp *RoutePlan) GetTotalTime() float64 {
	return rp.totalTime
}

func (rp *RoutePlan) GetTransfers() int32 {
	return rp.transfers
}

func (rp *RoutePlan) GetLegs() []RouteLeg {
	return rp.legs
}
