package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lbp-sim/internal/analysis"
	"lbp-sim/internal/config"
	"lbp-sim/internal/model"
	"lbp-sim/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "rank":
		cmdRank(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config examples/config.yaml --out results/series.csv")
	fmt.Println("  cli rank --configs examples/scenarios")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate outputs one CSV row per hour with price/balances/weights/fills")
	fmt.Println("  - rank runs every config and sorts by total collateral proceeds")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML run config")
	outPath := fs.String("out", "results/series.csv", "Output CSV path")
	n := fs.Int("n", 0, "Optional: limit to first N hours (0=full duration)")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	params := cfg.Pool.ToModelParams()
	if *n > 0 && *n < params.DurationHours {
		params.DurationHours = *n
	}

	pool, err := model.NewPool(params)
	if err != nil {
		panic(err)
	}

	strat, err := cfg.BuildStrategy()
	if err != nil {
		panic(err)
	}

	engine := sim.New()
	res, err := engine.Run(pool, strat)
	if err != nil {
		panic(err)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := sim.WriteSeriesCSV(*outPath, res.Series); err != nil {
		panic(err)
	}

	summary := analysis.ComputeSaleSummary(pool.Params, res)
	fmt.Printf("Wrote %d rows to %s\n", len(res.Series), *outPath)
	fmt.Printf("Proceeds=%.2f %s  Sold=%.0f %s  Avg price=%.4f  Final price=%.4f\n",
		summary.TotalProceedsTokenB, symbol(pool.Params.TokenBSymbol),
		summary.TokensSold, symbol(pool.Params.TokenASymbol),
		summary.AvgSalePrice, summary.FinalPrice)
	if summary.FinalFDV > 0 {
		fmt.Printf("Final FDV=%.0f\n", summary.FinalFDV)
	}
}

func cmdRank(args []string) {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	cfgPaths := fs.String("configs", "", "Comma-separated YAML config paths or a directory")
	_ = fs.Parse(args)

	if *cfgPaths == "" {
		fmt.Println("--configs is required")
		os.Exit(2)
	}

	var runs []analysis.RankedRun
	for _, p := range splitPaths(*cfgPaths) {
		info, err := os.Stat(p)
		if err != nil {
			panic(err)
		}
		if info.IsDir() {
			entries, err := os.ReadDir(p)
			if err != nil {
				panic(err)
			}
			for _, e := range entries {
				if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
					continue
				}
				runs = append(runs, runNamed(filepath.Join(p, e.Name())))
			}
		} else {
			runs = append(runs, runNamed(p))
		}
	}

	ranked := analysis.RankByProceeds(runs)
	fmt.Printf("%-4s %-24s %-6s %-14s %-12s %-10s %-10s\n", "rank", "config", "hours", "proceeds", "sold", "avg$", "final$")
	for i, r := range ranked {
		fmt.Printf(
			"%-4d %-24s %-6d %-14.2f %-12.0f %-10.4f %-10.4f\n",
			i+1,
			r.Name,
			r.Hours,
			r.TotalProceedsTokenB,
			r.TokensSold,
			r.AvgSalePrice,
			r.FinalPrice,
		)
	}
}

func runNamed(path string) analysis.RankedRun {
	cfg, err := config.Load(path)
	if err != nil {
		panic(err)
	}
	pool, err := model.NewPool(cfg.Pool.ToModelParams())
	if err != nil {
		panic(err)
	}
	strat, err := cfg.BuildStrategy()
	if err != nil {
		panic(err)
	}
	res, err := sim.New().Run(pool, strat)
	if err != nil {
		panic(err)
	}
	name := strings.TrimSuffix(filepath.Base(path), ".yaml")
	return analysis.RankedRun{
		Name:        name,
		SaleSummary: analysis.ComputeSaleSummary(pool.Params, res),
	}
}

func splitPaths(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func symbol(s string) string {
	if s == "" {
		return "tokens"
	}
	return s
}
