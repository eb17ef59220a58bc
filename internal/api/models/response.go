package models

// SimulateResponse represents the response from a simulation run
type SimulateResponse struct {
	Status  string      `json:"status"`
	Summary SaleSummary `json:"summary"`
	Series  []SeriesRow `json:"series,omitempty"`
}

// SaleSummary contains aggregated simulation results
type SaleSummary struct {
	TokenA string `json:"token_a,omitempty"`
	TokenB string `json:"token_b,omitempty"`

	Hours int `json:"hours"`

	TotalProceedsTokenB float64 `json:"total_proceeds_token_b"`
	TokensSold          float64 `json:"tokens_sold"`
	AvgSalePrice        float64 `json:"avg_sale_price"`
	FinalPrice          float64 `json:"final_price"`

	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
	MeanPrice float64 `json:"mean_price"`
	P05Price  float64 `json:"p05_price"`
	P95Price  float64 `json:"p95_price"`

	FinalFDV float64 `json:"final_fdv,omitempty"`
}

// SeriesRow represents one hour of the simulation series
type SeriesRow struct {
	Hour              int     `json:"hour"`
	Price             float64 `json:"price"`
	TokenABalance     float64 `json:"token_a_balance"`
	TokenBBalance     float64 `json:"token_b_balance"`
	TokenAWeight      float64 `json:"token_a_weight"`
	TokenBWeight      float64 `json:"token_b_weight"`
	Action            string  `json:"action"` // "SELL", "IDLE"
	TokenASold        float64 `json:"token_a_sold"`
	TokenBGained      float64 `json:"token_b_gained"`
	CumProceedsTokenB float64 `json:"cum_proceeds_token_b"`
}

// CompareResponse represents the response from a comparison
type CompareResponse struct {
	Comparison []ComparisonResult `json:"comparison"`
}

// ComparisonResult contains results for one variation, ranked by proceeds
type ComparisonResult struct {
	Rank    int         `json:"rank"`
	Name    string      `json:"name"`
	Summary SaleSummary `json:"summary"`
}

// PoolInfo represents information about a pool preset
type PoolInfo struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	File  string    `json:"file"`
	Specs PoolSpecs `json:"specs"`
}

// PoolSpecs contains pool preset specifications
type PoolSpecs struct {
	TokenA        string  `json:"token_a"`
	TokenB        string  `json:"token_b"`
	InitialTokenA float64 `json:"initial_token_a"`
	InitialTokenB float64 `json:"initial_token_b"`
	StartWeight   float64 `json:"start_weight"`
	EndWeight     float64 `json:"end_weight"`
	DurationHours int     `json:"duration_hours"`
}

// StrategyInfo represents information about a strategy
type StrategyInfo struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterInfo `json:"parameters"`
}

// ParameterInfo describes a strategy parameter
type ParameterInfo struct {
	Name        string      `json:"name"`
	Type        string      `json:"type"` // "float", "int", "string"
	Description string      `json:"description"`
	Default     interface{} `json:"default,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
