package models

// SimulateRequest represents the request body for running a simulation
type SimulateRequest struct {
	Config  RunConfig       `json:"config" binding:"required"`
	Options SimulateOptions `json:"options,omitempty"`
}

// RunConfig contains pool and strategy configuration
type RunConfig struct {
	PoolFile string         `json:"pool_file,omitempty"`
	Pool     PoolConfig     `json:"pool,omitempty"`
	Strategy StrategyConfig `json:"strategy" binding:"required"`
}

// PoolConfig defines LBP pool parameters
type PoolConfig struct {
	Name          string  `json:"name,omitempty"`
	TokenA        string  `json:"token_a,omitempty"`
	TokenB        string  `json:"token_b,omitempty"`
	InitialTokenA float64 `json:"initial_token_a"`
	InitialTokenB float64 `json:"initial_token_b,omitempty"`
	StartWeight   float64 `json:"start_weight,omitempty"`
	EndWeight     float64 `json:"end_weight,omitempty"`
	StartPrice    float64 `json:"start_price,omitempty"`
	EndPrice      float64 `json:"end_price,omitempty"`
	DurationHours int     `json:"duration_hours,omitempty"`
	DurationDays  int     `json:"duration_days,omitempty"`
	TotalSupply   float64 `json:"total_supply,omitempty"`
	InitialFDV    float64 `json:"initial_fdv,omitempty"`
}

// StrategyConfig defines strategy and its parameters
type StrategyConfig struct {
	Name   string         `json:"name" binding:"required"`
	Params map[string]any `json:"params,omitempty"`
}

// SimulateOptions contains optional simulation parameters
type SimulateOptions struct {
	LimitHours    int  `json:"limit_hours,omitempty"`    // 0 = full duration
	IncludeSeries bool `json:"include_series,omitempty"` // default: false
}

// CompareRequest represents a request to compare multiple simulations
type CompareRequest struct {
	BaseConfig RunConfig   `json:"base_config" binding:"required"`
	Variations []Variation `json:"variations" binding:"required"`
}

// Variation defines a variation to simulate
type Variation struct {
	Name   string    `json:"name" binding:"required"`
	Config RunConfig `json:"config" binding:"required"`
}
