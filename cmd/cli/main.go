package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"solar-yield/internal/config"
	"solar-yield/internal/export"
	"solar-yield/internal/sampler"
	"solar-yield/internal/search"
	"solar-yield/internal/sim"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "simulate":
		cmdSimulate(os.Args[2:])
	case "tilt":
		cmdTilt(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli simulate --config run.yaml --out results/monthly.csv [--xlsx results/report.xlsx]")
	fmt.Println("  cli tilt --config run.yaml")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - simulate compares tracking, optimal-fixed and (if configured) custom-fixed over one year")
	fmt.Println("  - tilt runs only the fixed-tilt search and prints the optimum")
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML run config")
	outPath := fs.String("out", "results/monthly.csv", "Output CSV path")
	xlsxPath := fs.String("xlsx", "", "Optional xlsx workbook path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}

	engine := sim.New()
	engine.Bounds, engine.Resolution, engine.Workers = cfg.SearchOptions()

	report, err := engine.Run(context.Background(), cfg.ToSimulation())
	if err != nil {
		fatal(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		fatal(err)
	}
	if err := export.WriteMonthlyCSV(*outPath, report); err != nil {
		fatal(err)
	}
	fmt.Printf("Wrote monthly rows to %s\n", *outPath)

	if *xlsxPath != "" {
		if err := export.WriteWorkbook(*xlsxPath, cfg.Location.Name, report); err != nil {
			fatal(err)
		}
		fmt.Printf("Wrote workbook to %s\n", *xlsxPath)
	}

	if report.OptimalTilt != nil {
		fmt.Printf("Optimal fixed tilt: east-west %.1f°, north-south %.1f°\n",
			report.OptimalTilt.EastWestDeg, report.OptimalTilt.NorthSouthDeg)
	} else {
		fmt.Printf("Optimal fixed strategy absent: %s\n", report.OptimalFixedError)
	}
	for _, res := range report.Results {
		line := fmt.Sprintf("%-14s annual=%.2f kWh", res.StrategyLabel, res.AnnualTotalKWh)
		if ratio, ok := report.EfficiencyRatios[res.StrategyLabel]; ok {
			line += fmt.Sprintf(" (%.1f%% of tracking)", ratio*100)
		}
		fmt.Println(line)
	}
}

func cmdTilt(args []string) {
	fs := flag.NewFlagSet("tilt", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML run config")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fatal(err)
	}
	simCfg := cfg.ToSimulation()

	ticks, err := sampler.New(simCfg.Location, simCfg.Year).Ticks()
	if err != nil {
		fatal(err)
	}

	bounds, res, workers := cfg.SearchOptions()
	outcome, err := search.Find(context.Background(), ticks, simCfg.PanelAreaM2, simCfg.PanelEfficiency, bounds, res, workers)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Optimal fixed tilt for %s (%d): east-west %.1f°, north-south %.1f°\n",
		cfg.Location.Name, cfg.Year, outcome.Tilt.EastWestDeg, outcome.Tilt.NorthSouthDeg)
	fmt.Printf("Annual yield at optimum: %.2f kWh\n", outcome.Totals.AnnualKWh)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
