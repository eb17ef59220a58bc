package config

import (
	"os"
	"path/filepath"
	"testing"

	"lbp-sim/internal/strategy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const poolYAML = `pool:
  name: Test pool
  token_a: TKN
  token_b: USDC
  initial_token_a: 7500000
  initial_token_b: 1333333
  start_weight: 0.99
  end_weight: 0.30
  duration_hours: 72
`

func TestLoadInlinePool(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", poolYAML+`strategy:
  name: invariant
  params:
    demand_per_hour_token_b: 16666.67
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7_500_000.0, cfg.Pool.InitialTokenA)
	assert.Equal(t, 72, cfg.Pool.DurationHours)
	assert.Equal(t, "invariant", cfg.Strategy.Name)
}

func TestLoadMergesPoolFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "pools/test.yaml", poolYAML)
	path := writeFile(t, dir, "config.yaml", `pool_file: pools/test.yaml
pool:
  duration_hours: 48
  total_supply: 1000000000
strategy:
  name: classic
  params:
    demand_per_day_token_b: 400000
    max_price: 15.0
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	// Preset fields survive; overrides win.
	assert.Equal(t, "TKN", cfg.Pool.TokenA)
	assert.Equal(t, 7_500_000.0, cfg.Pool.InitialTokenA)
	assert.Equal(t, 48, cfg.Pool.DurationHours)
	assert.Equal(t, 1_000_000_000.0, cfg.Pool.TotalSupply)
}

func TestApplyDefaultsDayConversion(t *testing.T) {
	p := PoolConfig{DurationDays: 3}
	p.ApplyDefaults()
	assert.Equal(t, 72, p.DurationHours)

	// Explicit hours win over days.
	p = PoolConfig{DurationHours: 10, DurationDays: 3}
	p.ApplyDefaults()
	assert.Equal(t, 10, p.DurationHours)
}

func TestApplyDefaultsFDVSizing(t *testing.T) {
	p := PoolConfig{
		InitialTokenA: 7_500_000,
		StartWeight:   0.99,
		TotalSupply:   1_000_000_000,
		InitialFDV:    100_000_000,
	}
	p.ApplyDefaults()
	// Target price 0.10 -> B = 0.1 * (A/0.99) * 0.01
	assert.InDelta(t, 7575.757575757576, p.InitialTokenB, 1e-9)

	// An explicit deposit is never overwritten.
	p = PoolConfig{InitialTokenB: 5, TotalSupply: 1, InitialFDV: 1}
	p.ApplyDefaults()
	assert.Equal(t, 5.0, p.InitialTokenB)
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	dir := t.TempDir()

	// Missing strategy name.
	path := writeFile(t, dir, "a.yaml", poolYAML)
	_, err := Load(path)
	assert.Error(t, err)

	// Invalid pool.
	path = writeFile(t, dir, "b.yaml", `pool:
  initial_token_a: 0
  initial_token_b: 100
  start_weight: 0.5
  end_weight: 0.5
  duration_hours: 24
strategy:
  name: invariant
`)
	_, err = Load(path)
	assert.Error(t, err)

	// Unknown strategy.
	path = writeFile(t, dir, "c.yaml", poolYAML+`strategy:
  name: oracle
`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestBuildStrategyDayDemandConversion(t *testing.T) {
	cfg := &Config{
		Strategy: StrategyConfig{
			Name: strategy.PresetClassic,
			Params: map[string]any{
				"demand_per_day_token_b": 400000,
				"max_price":              15.0,
			},
		},
	}
	strat, err := cfg.BuildStrategy()
	require.NoError(t, err)

	market, ok := strat.(*strategy.MarketStrategy)
	require.True(t, ok)
	assert.InDelta(t, 400_000.0/24, market.Params.DemandPerHourTokenB, 1e-9)
	assert.Equal(t, 15.0, market.Params.MaxPrice)
}

func TestBuildStrategyMarketAxes(t *testing.T) {
	cfg := &Config{
		Strategy: StrategyConfig{
			Name: "market",
			Params: map[string]any{
				"demand_per_hour_token_b": 100,
				"demand_policy":           "price_gated",
				"swap_model":              "linear",
				"max_price":               2.0,
			},
		},
	}
	strat, err := cfg.BuildStrategy()
	require.NoError(t, err)

	market := strat.(*strategy.MarketStrategy)
	assert.Equal(t, strategy.DemandPriceGated, market.Params.Policy)
	assert.Equal(t, strategy.SwapLinear, market.Params.Model)
}

func TestBuildStrategyMarketDefaults(t *testing.T) {
	cfg := &Config{
		Strategy: StrategyConfig{
			Name:   "market",
			Params: map[string]any{"demand_per_hour_token_b": 100},
		},
	}
	strat, err := cfg.BuildStrategy()
	require.NoError(t, err)

	market := strat.(*strategy.MarketStrategy)
	assert.Equal(t, strategy.DemandUnconditional, market.Params.Policy)
	assert.Equal(t, strategy.SwapInvariant, market.Params.Model)
}
