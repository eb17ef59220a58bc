package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lbp-sim/internal/model"
	"lbp-sim/internal/strategy"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// Optional: load pool parameters from a separate YAML (e.g. examples/pools/*.yaml).
	// If both PoolFile and Pool are provided, Pool overrides PoolFile.
	PoolFile string         `yaml:"pool_file"`
	Pool     PoolConfig     `yaml:"pool"`
	Strategy StrategyConfig `yaml:"strategy"`
}

type PoolConfig struct {
	Name string `yaml:"name"`

	TokenA string `yaml:"token_a"`
	TokenB string `yaml:"token_b"`

	InitialTokenA float64 `yaml:"initial_token_a"`
	InitialTokenB float64 `yaml:"initial_token_b"`

	StartWeight float64 `yaml:"start_weight"`
	EndWeight   float64 `yaml:"end_weight"`
	StartPrice  float64 `yaml:"start_price"`
	EndPrice    float64 `yaml:"end_price"`

	DurationHours int `yaml:"duration_hours"`
	DurationDays  int `yaml:"duration_days"` // convenience; ignored when duration_hours is set

	// FDV sizing: when initial_token_b is omitted, it is derived from the
	// target start price initial_fdv/total_supply.
	TotalSupply float64 `yaml:"total_supply"`
	InitialFDV  float64 `yaml:"initial_fdv"`
}

type StrategyConfig struct {
	Name   string         `yaml:"name"`
	Params map[string]any `yaml:"params"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.Pool.ApplyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it or apply
// defaults. Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If pool_file is set, load it and merge in any explicit overrides from c.Pool.
	if c.PoolFile != "" {
		poolPath := c.PoolFile
		if !filepath.IsAbs(poolPath) {
			// Prefer interpreting relative paths as relative to the config file directory,
			// but fall back to the provided path (relative to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), poolPath)
			if _, err := os.Stat(cand); err == nil {
				poolPath = cand
			}
		}
		loaded, err := LoadPoolFile(poolPath)
		if err != nil {
			return nil, err
		}
		c.Pool = MergePool(loaded, c.Pool)
	}
	return &c, nil
}

// ApplyDefaults resolves the convenience inputs: day-based duration and
// FDV-based collateral sizing.
func (p *PoolConfig) ApplyDefaults() {
	if p.DurationHours == 0 && p.DurationDays > 0 {
		p.DurationHours = p.DurationDays * 24
	}
	if p.InitialTokenB == 0 && p.TotalSupply > 0 && p.InitialFDV > 0 {
		targetPrice := p.InitialFDV / p.TotalSupply
		p.InitialTokenB = model.CollateralForTargetPrice(targetPrice, p.InitialTokenA, p.StartWeight)
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Strategy.Name == "" {
		return errors.New("strategy.name is required")
	}
	// Validate pool params by constructing a model.Pool.
	if _, err := model.NewPool(c.Pool.ToModelParams()); err != nil {
		return fmt.Errorf("pool config invalid: %w", err)
	}
	if _, err := c.BuildStrategy(); err != nil {
		return fmt.Errorf("strategy config invalid: %w", err)
	}
	return nil
}

func (p PoolConfig) ToModelParams() model.PoolParams {
	return model.PoolParams{
		TokenASymbol:  p.TokenA,
		TokenBSymbol:  p.TokenB,
		InitialTokenA: p.InitialTokenA,
		InitialTokenB: p.InitialTokenB,
		StartWeight:   p.StartWeight,
		EndWeight:     p.EndWeight,
		StartPrice:    p.StartPrice,
		EndPrice:      p.EndPrice,
		DurationHours: p.DurationHours,
		TotalSupply:   p.TotalSupply,
	}
}

// BuildStrategy constructs the configured strategy. Named presets
// ("classic", "invariant") cover the two source generations; "market"
// exposes the demand-policy and swap-model axes independently.
func (c *Config) BuildStrategy() (strategy.Strategy, error) {
	params := c.Strategy.Params
	demandPerHour := mustNum(params, "demand_per_hour_token_b", 0)
	if demandPerHour == 0 {
		// Day-based convenience input, spread evenly over 24 hours.
		demandPerHour = mustNum(params, "demand_per_day_token_b", 0) / 24
	}
	maxPrice := mustNum(params, "max_price", 0)

	switch c.Strategy.Name {
	case strategy.PresetClassic, strategy.PresetInvariant:
		return strategy.NewPreset(c.Strategy.Name, demandPerHour, maxPrice)
	case "market":
		policy := strategy.DemandPolicy(mustStr(params, "demand_policy", string(strategy.DemandUnconditional)))
		swapModel := strategy.SwapModel(mustStr(params, "swap_model", string(strategy.SwapInvariant)))
		return strategy.NewMarketStrategy(strategy.MarketParams{
			DemandPerHourTokenB: demandPerHour,
			MaxPrice:            maxPrice,
			Policy:              policy,
			Model:               swapModel,
		})
	default:
		return nil, fmt.Errorf("unsupported strategy: %q", c.Strategy.Name)
	}
}

type poolFileWrapper struct {
	Pool PoolConfig `yaml:"pool"`
}

// LoadPoolFile reads a standalone pool preset YAML (a `pool:` block).
func LoadPoolFile(path string) (PoolConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return PoolConfig{}, err
	}
	var w poolFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return PoolConfig{}, err
	}
	return w.Pool, nil
}

// MergePool overlays non-zero fields from override onto base.
// This is used when loading a pool preset and then applying overrides from
// the run config or an API request.
func MergePool(base, override PoolConfig) PoolConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.TokenA != "" {
		out.TokenA = override.TokenA
	}
	if override.TokenB != "" {
		out.TokenB = override.TokenB
	}
	if override.InitialTokenA != 0 {
		out.InitialTokenA = override.InitialTokenA
	}
	if override.InitialTokenB != 0 {
		out.InitialTokenB = override.InitialTokenB
	}
	if override.StartWeight != 0 {
		out.StartWeight = override.StartWeight
	}
	if override.EndWeight != 0 {
		out.EndWeight = override.EndWeight
	}
	if override.StartPrice != 0 {
		out.StartPrice = override.StartPrice
	}
	if override.EndPrice != 0 {
		out.EndPrice = override.EndPrice
	}
	if override.DurationHours != 0 {
		out.DurationHours = override.DurationHours
	}
	if override.DurationDays != 0 {
		out.DurationDays = override.DurationDays
	}
	if override.TotalSupply != 0 {
		out.TotalSupply = override.TotalSupply
	}
	if override.InitialFDV != 0 {
		out.InitialFDV = override.InitialFDV
	}
	return out
}

func mustNum(m map[string]any, key string, def float64) float64 {
	if v, ok := m[key]; ok && v != nil {
		switch x := v.(type) {
		case float64:
			return x
		case int:
			return float64(x)
		}
	}
	return def
}

func mustStr(m map[string]any, key string, def string) string {
	if v, ok := m[key]; ok && v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return def
}
