package strategy

import (
	"testing"

	"lbp-sim/internal/amm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ctxAt(price float64) Context {
	return Context{
		Hour:          1,
		TokenABalance: 1_000_000,
		TokenBBalance: 500_000,
		TokenAWeight:  0.8,
		TokenBWeight:  0.2,
		Price:         price,
	}
}

func TestPriceGatedLinear(t *testing.T) {
	s, err := NewMarketStrategy(MarketParams{
		DemandPerHourTokenB: 1000,
		MaxPrice:            2,
		Policy:              DemandPriceGated,
		Model:               SwapLinear,
	})
	require.NoError(t, err)

	// Above the ceiling: no demand at all.
	assert.Equal(t, 0.0, s.Quote(ctxAt(2.5)).TokenBIn)
	assert.Equal(t, 0.0, s.Quote(ctxAt(2.5)).TokenAOut)

	// At or below: full spend at the linear fill.
	fill := s.Quote(ctxAt(2))
	assert.Equal(t, 1000.0, fill.TokenBIn)
	assert.Equal(t, 500.0, fill.TokenAOut)
}

func TestUnconditionalIgnoresCeiling(t *testing.T) {
	s, err := NewMarketStrategy(MarketParams{
		DemandPerHourTokenB: 1000,
		MaxPrice:            0.0001,
		Policy:              DemandUnconditional,
		Model:               SwapLinear,
	})
	require.NoError(t, err)

	fill := s.Quote(ctxAt(2.5))
	assert.Equal(t, 1000.0, fill.TokenBIn)
	assert.Greater(t, fill.TokenAOut, 0.0)
}

func TestInvariantModelMatchesSwapOutput(t *testing.T) {
	s, err := NewMarketStrategy(MarketParams{
		DemandPerHourTokenB: 1000,
		Policy:              DemandUnconditional,
		Model:               SwapInvariant,
	})
	require.NoError(t, err)

	ctx := ctxAt(0.125)
	fill := s.Quote(ctx)
	want := amm.SwapOutput(1000, ctx.TokenABalance, ctx.TokenBBalance, ctx.TokenAWeight, ctx.TokenBWeight)
	assert.Equal(t, want, fill.TokenAOut)
	assert.Equal(t, 1000.0, fill.TokenBIn)
}

func TestZeroDemandQuotesNothing(t *testing.T) {
	s, err := NewMarketStrategy(MarketParams{
		Policy: DemandUnconditional,
		Model:  SwapInvariant,
	})
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Quote(ctxAt(1)).TokenBIn)
}

func TestNewMarketStrategyRejectsUnknownAxes(t *testing.T) {
	_, err := NewMarketStrategy(MarketParams{Policy: "sometimes", Model: SwapLinear})
	assert.Error(t, err)

	_, err = NewMarketStrategy(MarketParams{Policy: DemandUnconditional, Model: "quadratic"})
	assert.Error(t, err)
}

func TestPresets(t *testing.T) {
	classic, err := NewPreset(PresetClassic, 100, 5)
	require.NoError(t, err)
	assert.Equal(t, DemandPriceGated, classic.Params.Policy)
	assert.Equal(t, SwapLinear, classic.Params.Model)
	assert.Equal(t, "market/price_gated+linear", classic.Name())

	inv, err := NewPreset(PresetInvariant, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, DemandUnconditional, inv.Params.Policy)
	assert.Equal(t, SwapInvariant, inv.Params.Model)

	_, err = NewPreset("oracle", 100, 0)
	assert.Error(t, err)
}
