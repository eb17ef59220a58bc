package analysis

import (
	"testing"

	"lbp-sim/internal/model"
	"lbp-sim/internal/sim"

	"github.com/stretchr/testify/assert"
)

func TestComputeSaleSummary(t *testing.T) {
	params := model.PoolParams{
		TokenASymbol: "TKN",
		TokenBSymbol: "USDC",
		TotalSupply:  1_000_000,
	}
	res := &sim.Result{
		Series: []sim.Row{
			{Hour: 0, Price: 4},
			{Hour: 1, Price: 2},
			{Hour: 2, Price: 1},
		},
		TotalProceedsTokenB: 300,
		TotalTokenASold:     150,
	}

	s := ComputeSaleSummary(params, res)
	assert.Equal(t, "TKN", s.TokenASymbol)
	assert.Equal(t, 2, s.Hours)
	assert.Equal(t, 300.0, s.TotalProceedsTokenB)
	assert.Equal(t, 150.0, s.TokensSold)
	assert.Equal(t, 2.0, s.AvgSalePrice)
	assert.Equal(t, 1.0, s.FinalPrice)
	assert.Equal(t, 1.0, s.MinPrice)
	assert.Equal(t, 4.0, s.MaxPrice)
	assert.InDelta(t, 7.0/3.0, s.MeanPrice, 1e-12)
	assert.Equal(t, 1_000_000.0, s.FinalFDV)
}

func TestComputeSaleSummaryEmpty(t *testing.T) {
	s := ComputeSaleSummary(model.PoolParams{}, nil)
	assert.Equal(t, 0, s.Hours)
	assert.Equal(t, 0.0, s.TotalProceedsTokenB)

	s = ComputeSaleSummary(model.PoolParams{}, &sim.Result{})
	assert.Equal(t, 0.0, s.FinalPrice)
}

func TestComputeSaleSummaryNoSales(t *testing.T) {
	res := &sim.Result{Series: []sim.Row{{Price: 1}, {Price: 1}}}
	s := ComputeSaleSummary(model.PoolParams{}, res)
	assert.Equal(t, 0.0, s.AvgSalePrice)
	assert.Equal(t, 0.0, s.FinalFDV)
}

func TestPercentileSorted(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}
	assert.Equal(t, 1.0, percentileSorted(vals, 0))
	assert.Equal(t, 5.0, percentileSorted(vals, 1))
	assert.Equal(t, 3.0, percentileSorted(vals, 0.5))
	// pos = 0.05*4 = 0.2 -> between 1 and 2.
	assert.InDelta(t, 1.2, percentileSorted(vals, 0.05), 1e-12)
	assert.InDelta(t, 4.8, percentileSorted(vals, 0.95), 1e-12)
	assert.Equal(t, 0.0, percentileSorted(nil, 0.5))
}

func TestRankByProceeds(t *testing.T) {
	runs := []RankedRun{
		{Name: "low", SaleSummary: SaleSummary{TotalProceedsTokenB: 10}},
		{Name: "high", SaleSummary: SaleSummary{TotalProceedsTokenB: 100}},
		{Name: "mid", SaleSummary: SaleSummary{TotalProceedsTokenB: 50}},
	}
	ranked := RankByProceeds(runs)
	assert.Equal(t, []string{"high", "mid", "low"}, []string{ranked[0].Name, ranked[1].Name, ranked[2].Name})
	// Input order untouched.
	assert.Equal(t, "low", runs[0].Name)
}
