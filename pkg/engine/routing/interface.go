package routing

import (
	"github.com/lintang-b-s/transitx/pkg"
	"github.com/lintang-b-s/transitx/pkg/costfunction"
	"github.com/lintang-b-s/transitx/pkg/datastructure"
)

type CostFunction interface {
	GetWeight(c costfunction.ConnectionAttributes) float64
}

type Router interface {
	FindOptimalRoute(start, end string,
		preferences map[pkg.TransportType]float64) (*datastructure.RoutePlan, error)
}
