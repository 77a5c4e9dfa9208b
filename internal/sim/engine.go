// Package sim orchestrates one full comparison run: tracking, the
// searched optimal fixed tilt, and an optional user-specified fixed
// tilt, integrated over a year and assembled into a ComparisonReport.
package sim

import (
	"context"
	"errors"

	"solar-yield/internal/energy"
	"solar-yield/internal/model"
	"solar-yield/internal/sampler"
	"solar-yield/internal/search"
	"solar-yield/internal/strategy"
)

// Engine holds the run-independent knobs. The zero value is not useful;
// construct with New.
type Engine struct {
	Bounds     search.Bounds
	Resolution search.Resolution

	// Workers bounds the tilt-search pool; <= 0 means one per CPU.
	Workers int
}

func New() *Engine {
	return &Engine{
		Bounds:     search.DefaultBounds(),
		Resolution: search.DefaultResolution(),
	}
}

// Run validates eagerly, then executes every requested strategy and
// builds the report. The engine performs no file or console I/O; the
// context is only consulted between search candidates, and correctness
// never depends on cancellation.
func (e *Engine) Run(ctx context.Context, cfg model.SimulationConfig) (*model.ComparisonReport, error) {
	if cfg.PanelAreaM2 == 0 {
		cfg.PanelAreaM2 = model.DefaultPanelAreaM2
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ticks, err := sampler.New(cfg.Location, cfg.Year).Ticks()
	if err != nil {
		return nil, err
	}

	report := &model.ComparisonReport{
		EfficiencyRatios: map[string]float64{},
	}

	tracking := e.evaluate(ticks, cfg, strategy.Tracking())
	report.Results = append(report.Results, tracking)

	outcome, err := search.Find(ctx, ticks, cfg.PanelAreaM2, cfg.PanelEfficiency, e.Bounds, e.Resolution, e.Workers)
	switch {
	case err == nil:
		tilt := outcome.Tilt
		report.OptimalTilt = &tilt
		report.Results = append(report.Results, annualResult(strategy.OptimalFixed(tilt), outcome.Totals))
	case errors.Is(err, model.ErrOptimizationFailure):
		// The optimal-fixed strategy is reported absent; the others
		// still complete.
		report.OptimalFixedError = err.Error()
	default:
		return nil, err
	}

	if cfg.CustomTilt != nil {
		custom := e.evaluate(ticks, cfg, strategy.CustomFixed(*cfg.CustomTilt))
		report.Results = append(report.Results, custom)
	}

	if tracking.AnnualTotalKWh > 0 {
		for _, res := range report.Results {
			if res.StrategyLabel == strategy.LabelTracking {
				continue
			}
			report.EfficiencyRatios[res.StrategyLabel] = res.AnnualTotalKWh / tracking.AnnualTotalKWh
		}
	}

	return report, nil
}

func (e *Engine) evaluate(ticks []sampler.Tick, cfg model.SimulationConfig, s strategy.Strategy) model.AnnualResult {
	totals := energy.Evaluate(ticks, s.Orientation, cfg.PanelAreaM2, cfg.PanelEfficiency)
	return annualResult(s, totals)
}

func annualResult(s strategy.Strategy, t energy.Totals) model.AnnualResult {
	return model.AnnualResult{
		StrategyLabel:   s.Label,
		Monthly:         t.Monthly,
		AnnualTotalKWh:  t.AnnualKWh,
		OrientationUsed: s.Orientation,
	}
}
