package sim

import "lbp-sim/internal/model"

// Row is one hour of simulation output.
// Convention: a row records the state *entering* its hour. Balances, price
// and cumulative proceeds are pre-swap; TokenASold/TokenBGained are that
// hour's fill, folded into the next row's state.
type Row struct {
	Hour int

	Price float64

	TokenABalance float64
	TokenBBalance float64

	TokenAWeight float64
	TokenBWeight float64

	Action model.Action

	TokenASold   float64
	TokenBGained float64

	CumProceedsTokenB float64
}

type Result struct {
	Series []Row

	// Run-level totals include every hour's fill, final hour included.
	TotalProceedsTokenB float64
	TotalTokenASold     float64
}
