package handlers

import (
	"net/http"

	"lbp-sim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// StrategyHandler handles strategy-related requests
type StrategyHandler struct{}

// NewStrategyHandler creates a new strategy handler
func NewStrategyHandler() *StrategyHandler {
	return &StrategyHandler{}
}

// ListStrategies handles GET /api/v1/strategies
func (h *StrategyHandler) ListStrategies(c *gin.Context) {
	strategies := []models.StrategyInfo{
		{
			Name:        "classic",
			Description: "Price-gated constant demand with linear fills. Demand is spent in full while the spot price is at or below max_price, and converts at spend/price.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "demand_per_hour_token_b",
					Type:        "float",
					Description: "Collateral the market spends per hour",
				},
				{
					Name:        "demand_per_day_token_b",
					Type:        "float",
					Description: "Day-based alternative to demand_per_hour_token_b, spread over 24 hours",
				},
				{
					Name:        "max_price",
					Type:        "float",
					Description: "Price ceiling; demand drops to zero above it",
				},
			},
		},
		{
			Name:        "invariant",
			Description: "Unconditional constant demand filled on the weighted-invariant curve with the fixed 0.15% input fee.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "demand_per_hour_token_b",
					Type:        "float",
					Description: "Collateral the market spends per hour",
				},
				{
					Name:        "demand_per_day_token_b",
					Type:        "float",
					Description: "Day-based alternative to demand_per_hour_token_b, spread over 24 hours",
				},
			},
		},
		{
			Name:        "market",
			Description: "Fully configurable market taker: pick the demand policy and swap model independently.",
			Parameters: []models.ParameterInfo{
				{
					Name:        "demand_per_hour_token_b",
					Type:        "float",
					Description: "Collateral the market spends per hour",
				},
				{
					Name:        "max_price",
					Type:        "float",
					Description: "Price ceiling (price_gated policy only)",
				},
				{
					Name:        "demand_policy",
					Type:        "string",
					Description: "price_gated or unconditional",
					Default:     "unconditional",
				},
				{
					Name:        "swap_model",
					Type:        "string",
					Description: "linear or invariant",
					Default:     "invariant",
				},
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"strategies": strategies})
}
