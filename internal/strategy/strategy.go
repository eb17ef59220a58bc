package strategy

import "lbp-sim/internal/model"

// Context is everything a strategy sees for one hour: the pre-swap pool
// state, the hour's weights, and the spot price computed from them.
type Context struct {
	Hour int

	TokenABalance float64
	TokenBBalance float64
	TokenAWeight  float64
	TokenBWeight  float64

	// Price is the spot price before any trade this hour. Zero means the
	// pool is degenerate and the hour is a no-trade region.
	Price float64
}

// Strategy decides how much collateral the market spends in one hour and
// how much of the sale token that buys. The simulation loop owns the drain
// guard and all balance updates; strategies are pure quoting logic.
type Strategy interface {
	Name() string
	Quote(ctx Context) model.Fill
}
