package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"lbp-sim/internal/analysis"
	"lbp-sim/internal/api/models"
	"lbp-sim/internal/config"
	"lbp-sim/internal/model"
	"lbp-sim/internal/sim"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SimulateHandler handles simulation-related requests
type SimulateHandler struct {
	log *zap.Logger
}

// NewSimulateHandler creates a new simulation handler
func NewSimulateHandler(log *zap.Logger) *SimulateHandler {
	return &SimulateHandler{log: log}
}

// RunSimulation handles POST /api/v1/simulate
func (h *SimulateHandler) RunSimulation(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	cfg, err := h.buildConfig(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_CONFIG",
				Message: err.Error(),
			},
		})
		return
	}

	result, params, err := h.runOne(cfg, req.Options.LimitHours)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "SIMULATION_ERROR",
				Message: err.Error(),
			},
		})
		return
	}

	response := models.SimulateResponse{
		Status:  "completed",
		Summary: h.buildSummary(params, result),
	}
	if req.Options.IncludeSeries {
		response.Series = h.convertSeries(result.Series)
	}

	c.JSON(http.StatusOK, response)
}

// CompareSimulations handles POST /api/v1/simulate/compare
func (h *SimulateHandler) CompareSimulations(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_REQUEST",
				Message: err.Error(),
			},
		})
		return
	}

	runs := make([]analysis.RankedRun, 0, len(req.Variations))
	for _, variation := range req.Variations {
		merged := h.mergeConfig(req.BaseConfig, variation.Config)

		cfg, err := h.buildConfig(merged)
		if err != nil {
			h.log.Warn("skipping variation with invalid config",
				zap.String("variation", variation.Name), zap.Error(err))
			continue
		}

		result, params, err := h.runOne(cfg, 0)
		if err != nil {
			h.log.Warn("skipping failed variation",
				zap.String("variation", variation.Name), zap.Error(err))
			continue
		}

		runs = append(runs, analysis.RankedRun{
			Name:        variation.Name,
			SaleSummary: analysis.ComputeSaleSummary(params, result),
		})
	}

	ranked := analysis.RankByProceeds(runs)
	comparison := make([]models.ComparisonResult, len(ranked))
	for i, r := range ranked {
		comparison[i] = models.ComparisonResult{
			Rank:    i + 1,
			Name:    r.Name,
			Summary: summaryToModel(r.SaleSummary),
		}
	}

	c.JSON(http.StatusOK, models.CompareResponse{Comparison: comparison})
}

// Helper methods

func (h *SimulateHandler) buildConfig(req models.RunConfig) (*config.Config, error) {
	cfg := &config.Config{
		PoolFile: req.PoolFile,
		Pool:     poolToConfig(req.Pool),
		Strategy: config.StrategyConfig{
			Name:   req.Strategy.Name,
			Params: req.Strategy.Params,
		},
	}

	// If pool_file is set, it names a preset in the pool directory
	// (e.g. "fair_launch"); the request config overrides it field-wise.
	if cfg.PoolFile != "" {
		poolPath := filepath.Join(PoolDir(), cfg.PoolFile+".yaml")
		loaded, err := config.LoadPoolFile(poolPath)
		if err != nil {
			h.log.Warn("failed to load pool preset", zap.String("path", poolPath), zap.Error(err))
		} else {
			cfg.Pool = config.MergePool(loaded, cfg.Pool)
		}
	}

	cfg.Pool.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (h *SimulateHandler) mergeConfig(base, override models.RunConfig) models.RunConfig {
	merged := base
	if override.PoolFile != "" {
		merged.PoolFile = override.PoolFile
	}
	merged.Pool = poolFromConfig(config.MergePool(poolToConfig(base.Pool), poolToConfig(override.Pool)))
	if override.Strategy.Name != "" {
		merged.Strategy = override.Strategy
	}
	return merged
}

func poolToConfig(p models.PoolConfig) config.PoolConfig {
	return config.PoolConfig{
		Name:          p.Name,
		TokenA:        p.TokenA,
		TokenB:        p.TokenB,
		InitialTokenA: p.InitialTokenA,
		InitialTokenB: p.InitialTokenB,
		StartWeight:   p.StartWeight,
		EndWeight:     p.EndWeight,
		StartPrice:    p.StartPrice,
		EndPrice:      p.EndPrice,
		DurationHours: p.DurationHours,
		DurationDays:  p.DurationDays,
		TotalSupply:   p.TotalSupply,
		InitialFDV:    p.InitialFDV,
	}
}

func poolFromConfig(p config.PoolConfig) models.PoolConfig {
	return models.PoolConfig{
		Name:          p.Name,
		TokenA:        p.TokenA,
		TokenB:        p.TokenB,
		InitialTokenA: p.InitialTokenA,
		InitialTokenB: p.InitialTokenB,
		StartWeight:   p.StartWeight,
		EndWeight:     p.EndWeight,
		StartPrice:    p.StartPrice,
		EndPrice:      p.EndPrice,
		DurationHours: p.DurationHours,
		DurationDays:  p.DurationDays,
		TotalSupply:   p.TotalSupply,
		InitialFDV:    p.InitialFDV,
	}
}

func (h *SimulateHandler) runOne(cfg *config.Config, limitHours int) (*sim.Result, model.PoolParams, error) {
	params := cfg.Pool.ToModelParams()
	if limitHours > 0 && limitHours < params.DurationHours {
		params.DurationHours = limitHours
	}

	pool, err := model.NewPool(params)
	if err != nil {
		return nil, params, err
	}

	strat, err := cfg.BuildStrategy()
	if err != nil {
		return nil, params, err
	}

	engine := sim.New()
	result, err := engine.Run(pool, strat)
	if err != nil {
		return nil, params, err
	}
	return result, pool.Params, nil
}

func (h *SimulateHandler) buildSummary(params model.PoolParams, result *sim.Result) models.SaleSummary {
	return summaryToModel(analysis.ComputeSaleSummary(params, result))
}

func summaryToModel(s analysis.SaleSummary) models.SaleSummary {
	return models.SaleSummary{
		TokenA:              s.TokenASymbol,
		TokenB:              s.TokenBSymbol,
		Hours:               s.Hours,
		TotalProceedsTokenB: s.TotalProceedsTokenB,
		TokensSold:          s.TokensSold,
		AvgSalePrice:        s.AvgSalePrice,
		FinalPrice:          s.FinalPrice,
		MinPrice:            s.MinPrice,
		MaxPrice:            s.MaxPrice,
		MeanPrice:           s.MeanPrice,
		P05Price:            s.P05Price,
		P95Price:            s.P95Price,
		FinalFDV:            s.FinalFDV,
	}
}

func (h *SimulateHandler) convertSeries(series []sim.Row) []models.SeriesRow {
	result := make([]models.SeriesRow, len(series))
	for i, row := range series {
		result[i] = models.SeriesRow{
			Hour:              row.Hour,
			Price:             row.Price,
			TokenABalance:     row.TokenABalance,
			TokenBBalance:     row.TokenBBalance,
			TokenAWeight:      row.TokenAWeight,
			TokenBWeight:      row.TokenBWeight,
			Action:            string(row.Action),
			TokenASold:        row.TokenASold,
			TokenBGained:      row.TokenBGained,
			CumProceedsTokenB: row.CumProceedsTokenB,
		}
	}
	return result
}

// PoolDir resolves the pool preset directory (POOL_DIR, default examples/pools).
func PoolDir() string {
	if dir := os.Getenv("POOL_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "./examples/pools"
	}
	return filepath.Join(wd, "examples", "pools")
}
