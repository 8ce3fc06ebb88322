package costfunction

import (
	"github.com/lintang-b-s/transitx/pkg"
)

type ConnectionAttributes interface {
	GetTravelTime() float64
	GetTransportType() pkg.TransportType
}

type CostFunction interface {
	GetWeight(c ConnectionAttributes) float64
}

// DefaultPreferences is the multiplier map used when a route query carries
// none: metro rides at face value, bus and train are penalized.
func DefaultPreferences() map[pkg.TransportType]float64 {
	return map[pkg.TransportType]float64{
		pkg.METRO: pkg.METRO_MULTIPLIER_DEFAULT,
		pkg.BUS:   pkg.BUS_MULTIPLIER_DEFAULT,
		pkg.TRAIN: pkg.TRAIN_MULTIPLIER_DEFAULT,
	}
}
