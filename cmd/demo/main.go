package main

import (
	"flag"
	"fmt"

	"lbp-sim/internal/analysis"
	"lbp-sim/internal/config"
	"lbp-sim/internal/model"
	"lbp-sim/internal/sim"
	"lbp-sim/internal/strategy"
)

// Demo:
// - Build the canonical 72-hour fair-launch pool
// - Run the classic price-gated market against it
// - Print the first hours and the run summary to show how the pieces fit
func main() {
	cfgPath := flag.String("config", "", "Path to YAML run config (optional)")
	n := flag.Int("n", 12, "Number of hours to print")
	outCSV := flag.String("out", "", "Optional path to write series CSV (e.g. results/series.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config): a 3-day sale of 7.5M TKN
	// against ~1.33M USDC, weights gliding 99% -> 30%.
	params := model.PoolParams{
		TokenASymbol:  "TKN",
		TokenBSymbol:  "USDC",
		InitialTokenA: 7_500_000,
		InitialTokenB: 1_333_333,
		StartWeight:   0.99,
		EndWeight:     0.30,
		DurationHours: 72,
		TotalSupply:   1_000_000_000,
	}

	var strat strategy.Strategy
	strat, err := strategy.NewPreset(strategy.PresetClassic, 400_000.0/24, 15.0)
	if err != nil {
		panic(err)
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		params = cfg.Pool.ToModelParams()
		strat, err = cfg.BuildStrategy()
		if err != nil {
			panic(err)
		}
	}

	pool, err := model.NewPool(params)
	if err != nil {
		panic(err)
	}

	engine := sim.New()
	result, err := engine.Run(pool, strat)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Simulated %d hours of %s/%s\n", len(result.Series)-1, symbol(params.TokenASymbol), symbol(params.TokenBSymbol))
	fmt.Printf("Strategy=%s\n", strat.Name())
	fmt.Printf("Opening price=%.4f\n\n", result.Series[0].Price)

	for i := 0; i < min(*n, len(result.Series)); i++ {
		r := result.Series[i]
		fmt.Printf(
			"h=%3d  price=%8.4f  wA=%.4f  action=%-5s  sold=%12.2f  gained=%12.2f  cum=%14.2f\n",
			r.Hour,
			r.Price,
			r.TokenAWeight,
			string(r.Action),
			r.TokenASold,
			r.TokenBGained,
			r.CumProceedsTokenB,
		)
	}

	if *outCSV != "" {
		if err := sim.WriteSeriesCSV(*outCSV, result.Series); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	summary := analysis.ComputeSaleSummary(pool.Params, result)
	fmt.Printf("\nDone. Proceeds=%.2f  Sold=%.0f  Avg price=%.4f  Final price=%.4f\n",
		summary.TotalProceedsTokenB, summary.TokensSold, summary.AvgSalePrice, summary.FinalPrice)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func symbol(s string) string {
	if s == "" {
		return "tokens"
	}
	return s
}
