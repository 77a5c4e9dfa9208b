package model

// MonthlyEnergy is the panel's electrical yield for one calendar month.
type MonthlyEnergy struct {
	Month     int     `json:"month"`
	EnergyKWh float64 `json:"energy_kwh"`
}

// AnnualResult is one strategy's full-year outcome. Monthly always has
// twelve entries in calendar order, zero months included.
type AnnualResult struct {
	StrategyLabel   string            `json:"strategy_label"`
	Monthly         [12]MonthlyEnergy `json:"monthly_energy"`
	AnnualTotalKWh  float64           `json:"annual_total_kwh"`
	OrientationUsed PanelOrientation  `json:"orientation_used"`
}

// ComparisonReport is the engine's single output: per-strategy annual
// results plus cross-strategy ratios. Built once per run and handed to
// export/GUI collaborators as-is.
type ComparisonReport struct {
	Results []AnnualResult `json:"results"`

	// OptimalTilt is the orientation found by the search, nil when the
	// optimal-fixed strategy could not run.
	OptimalTilt *Tilt `json:"optimal_tilt_found,omitempty"`

	// OptimalFixedError marks the optimal-fixed strategy as absent
	// (rather than silently omitted) when the search failed.
	OptimalFixedError string `json:"optimal_fixed_error,omitempty"`

	// EfficiencyRatios maps each fixed strategy's label to its annual
	// total as a fraction of the tracking total.
	EfficiencyRatios map[string]float64 `json:"efficiency_ratios"`
}

// Result returns the AnnualResult carrying the given strategy label.
func (r *ComparisonReport) Result(label string) (AnnualResult, bool) {
	for _, res := range r.Results {
		if res.StrategyLabel == label {
			return res, true
		}
	}
	return AnnualResult{}, false
}
