package sim

import (
	"fmt"

	"lbp-sim/internal/amm"
	"lbp-sim/internal/model"
	"lbp-sim/internal/strategy"
)

// DrainEpsilon is the remaining token A balance below which the pool is
// treated as exhausted: fills that would cross it are zeroed.
const DrainEpsilon = 1e-9

type Engine struct{}

func New() *Engine { return &Engine{} }

// Run executes an LBP simulation over the pool's weight schedule.
//
// The loop is a deterministic fold: hour 0 is the starting state with no
// trade, each later hour quotes the strategy against pre-swap state, and
// updates are folded in after the row is recorded. Degenerate numerics
// (zero price, drained pool) resolve to zero fills, never errors; only
// structurally invalid inputs fail.
func (e *Engine) Run(pool *model.Pool, strat strategy.Strategy) (*Result, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is nil")
	}
	if strat == nil {
		return nil, fmt.Errorf("strategy is nil")
	}
	weights := pool.Params.WeightSchedule()
	if len(weights) < 2 {
		return nil, fmt.Errorf("weight schedule has %d points, need at least 2", len(weights))
	}

	series := make([]Row, 0, len(weights))
	cum := 0.0
	totalSold := 0.0
	totalGained := 0.0

	for hour, weightA := range weights {
		weightB := 1 - weightA
		price := amm.SpotPrice(pool.State.TokenABalance, pool.State.TokenBBalance, weightA, weightB)

		var fill model.Fill
		if hour > 0 {
			fill = strat.Quote(strategy.Context{
				Hour:          hour,
				TokenABalance: pool.State.TokenABalance,
				TokenBBalance: pool.State.TokenBBalance,
				TokenAWeight:  weightA,
				TokenBWeight:  weightB,
				Price:         price,
			})
			// Drain guard: once the pool is effectively empty, no further
			// net selling is recorded even though the weights keep moving.
			if fill.TokenAOut <= 0 || pool.State.TokenABalance-fill.TokenAOut < DrainEpsilon {
				fill = model.Fill{}
			}
		}

		series = append(series, Row{
			Hour:              hour,
			Price:             price,
			TokenABalance:     pool.State.TokenABalance,
			TokenBBalance:     pool.State.TokenBBalance,
			TokenAWeight:      weightA,
			TokenBWeight:      weightB,
			Action:            model.ActionFromFill(fill.TokenAOut),
			TokenASold:        fill.TokenAOut,
			TokenBGained:      fill.TokenBIn,
			CumProceedsTokenB: cum,
		})

		totalSold += fill.TokenAOut
		totalGained += fill.TokenBIn

		// The final row has no hour after it; its fill stays unapplied.
		if hour < len(weights)-1 {
			pool.ApplyFill(fill)
			cum += fill.TokenBIn
		}
	}

	return &Result{
		Series:              series,
		TotalProceedsTokenB: totalGained,
		TotalTokenASold:     totalSold,
	}, nil
}
