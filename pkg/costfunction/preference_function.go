package costfunction

import (
	"github.com/lintang-b-s/transitx/pkg"
)

// PreferenceFunction weighs a connection by its travel time scaled with the
// multiplier of its transport type.
type PreferenceFunction struct {
	multipliers map[pkg.TransportType]float64
}

func NewPreferenceCostFunction(multipliers map[pkg.TransportType]float64) *PreferenceFunction {
	if multipliers == nil {
		multipliers = DefaultPreferences()
	}
	return &PreferenceFunction{multipliers: multipliers}
}

// GetWeight returns travelTime * multiplier. a transport type missing from
// the preference map rides at multiplier 1.0, never an error.
func (pf *PreferenceFunction) GetWeight(c ConnectionAttributes) float64 {
	multiplier, ok := pf.multipliers[c.GetTransportType()]
	if !ok {
		multiplier = 1.0
	}
	return c.GetTravelTime() * multiplier
}
