package model

// WeightSchedule returns DurationHours+1 token-A weights interpolated
// linearly from StartWeight to EndWeight, endpoints exact. Hour 0 carries
// StartWeight and the final hour carries EndWeight; the schedule is
// monotonic in between.
func (p PoolParams) WeightSchedule() []float64 {
	n := p.DurationHours + 1
	weights := make([]float64, n)
	if n == 1 {
		weights[0] = p.StartWeight
		return weights
	}
	step := (p.EndWeight - p.StartWeight) / float64(n-1)
	for i := range weights {
		weights[i] = p.StartWeight + float64(i)*step
	}
	// Pin the endpoint; the incremental sum can drift by an ulp or two.
	weights[n-1] = p.EndWeight
	return weights
}
