package analysis

import (
	"math"
	"sort"

	"lbp-sim/internal/model"
	"lbp-sim/internal/sim"
)

// SaleSummary is a run-level summary of an LBP simulation: the headline
// numbers a seller cares about plus raw price stats over the series.
type SaleSummary struct {
	TokenASymbol string
	TokenBSymbol string

	Hours int

	TotalProceedsTokenB float64
	TokensSold          float64
	AvgSalePrice        float64
	FinalPrice          float64

	MinPrice  float64
	MaxPrice  float64
	MeanPrice float64
	P05Price  float64
	P95Price  float64

	// FinalFDV is TotalSupply * FinalPrice; zero when no supply is configured.
	FinalFDV float64
}

func ComputeSaleSummary(params model.PoolParams, res *sim.Result) SaleSummary {
	s := SaleSummary{
		TokenASymbol: params.TokenASymbol,
		TokenBSymbol: params.TokenBSymbol,
	}
	if res == nil || len(res.Series) == 0 {
		return s
	}
	s.Hours = len(res.Series) - 1
	s.TotalProceedsTokenB = res.TotalProceedsTokenB
	s.TokensSold = res.TotalTokenASold
	if s.TokensSold > 0 {
		s.AvgSalePrice = s.TotalProceedsTokenB / s.TokensSold
	}
	s.FinalPrice = res.Series[len(res.Series)-1].Price

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, len(res.Series))
	for _, row := range res.Series {
		v := row.Price
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	sort.Float64s(vals)
	s.MinPrice = minv
	s.MaxPrice = maxv
	s.MeanPrice = sum / float64(len(vals))
	s.P05Price = percentileSorted(vals, 0.05)
	s.P95Price = percentileSorted(vals, 0.95)

	if params.TotalSupply > 0 {
		s.FinalFDV = params.TotalSupply * s.FinalPrice
	}
	return s
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
