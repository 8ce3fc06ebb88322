package costfunction

// TimeFunction weighs a connection by its raw travel time, no preference
// multiplier. route metrics derive their per-hop connection choice under
// this function.
type TimeFunction struct {
}

func NewTimeCostFunction() *TimeFunction {
	return &TimeFunction{}
}

func (tf *TimeFunction) GetWeight(c ConnectionAttributes) float64 {
	return c.GetTravelTime()
}
