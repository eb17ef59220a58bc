package strategy

import (
	"fmt"

	"lbp-sim/internal/amm"
	"lbp-sim/internal/model"
)

// DemandPolicy selects how the hourly token B demand is determined.
type DemandPolicy string

const (
	// DemandPriceGated spends DemandPerHourTokenB only while the spot price
	// is at or below MaxPrice; above the ceiling demand drops to zero.
	DemandPriceGated DemandPolicy = "price_gated"

	// DemandUnconditional spends DemandPerHourTokenB every hour regardless
	// of price.
	DemandUnconditional DemandPolicy = "unconditional"
)

// SwapModel selects how a token B spend converts into token A bought.
type SwapModel string

const (
	// SwapLinear divides the spend by the spot price, ignoring fees and
	// invariant curvature.
	SwapLinear SwapModel = "linear"

	// SwapInvariant uses the weighted-invariant swap-output formula with
	// the fixed input fee.
	SwapInvariant SwapModel = "invariant"
)

// MarketParams configures a constant-demand market taker. The two source
// generations of this tool correspond to the presets below, but the policy
// and model axes are independently selectable.
type MarketParams struct {
	DemandPerHourTokenB float64
	MaxPrice            float64 // only consulted by DemandPriceGated
	Policy              DemandPolicy
	Model               SwapModel
}

// MarketStrategy simulates aggregate buy pressure: a fixed hourly budget of
// collateral, optionally gated by a price ceiling, filled at either the
// linear approximation or the exact invariant curve.
type MarketStrategy struct {
	Params MarketParams
}

func NewMarketStrategy(params MarketParams) (*MarketStrategy, error) {
	switch params.Policy {
	case DemandPriceGated, DemandUnconditional:
	default:
		return nil, fmt.Errorf("unknown demand policy %q", params.Policy)
	}
	switch params.Model {
	case SwapLinear, SwapInvariant:
	default:
		return nil, fmt.Errorf("unknown swap model %q", params.Model)
	}
	return &MarketStrategy{Params: params}, nil
}

func (s *MarketStrategy) Name() string {
	return fmt.Sprintf("market/%s+%s", s.Params.Policy, s.Params.Model)
}

func (s *MarketStrategy) Quote(ctx Context) model.Fill {
	demand := s.Params.DemandPerHourTokenB
	if s.Params.Policy == DemandPriceGated && ctx.Price > s.Params.MaxPrice {
		demand = 0
	}
	if demand <= 0 {
		return model.Fill{}
	}

	var bought float64
	switch s.Params.Model {
	case SwapInvariant:
		bought = amm.SwapOutput(demand, ctx.TokenABalance, ctx.TokenBBalance, ctx.TokenAWeight, ctx.TokenBWeight)
	default:
		bought = amm.LinearSwapOutput(demand, ctx.Price)
	}

	return model.Fill{TokenBIn: demand, TokenAOut: bought}
}

// Preset names for the two strategy generations.
const (
	PresetClassic   = "classic"   // price-gated demand, linear fills
	PresetInvariant = "invariant" // unconditional demand, invariant fills
)

// NewPreset builds a MarketStrategy for a named preset.
func NewPreset(name string, demandPerHour, maxPrice float64) (*MarketStrategy, error) {
	switch name {
	case PresetClassic:
		return NewMarketStrategy(MarketParams{
			DemandPerHourTokenB: demandPerHour,
			MaxPrice:            maxPrice,
			Policy:              DemandPriceGated,
			Model:               SwapLinear,
		})
	case PresetInvariant:
		return NewMarketStrategy(MarketParams{
			DemandPerHourTokenB: demandPerHour,
			Policy:              DemandUnconditional,
			Model:               SwapInvariant,
		})
	default:
		return nil, fmt.Errorf("unsupported strategy: %q", name)
	}
}
