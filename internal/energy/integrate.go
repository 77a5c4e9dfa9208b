// Package energy integrates plane-of-array irradiance series into
// monthly and annual electrical yield.
package energy

import (
	"gonum.org/v1/gonum/floats"

	"solar-yield/internal/model"
	"solar-yield/internal/panel"
	"solar-yield/internal/sampler"
)

// Totals is the integrated yield of one strategy over one year. Monthly
// always carries twelve entries in calendar order.
type Totals struct {
	Monthly   [12]model.MonthlyEnergy
	AnnualKWh float64
}

// Accumulator folds an irradiance sample stream into per-month watt-hour
// buckets. The rule is a rectangular Riemann sum over the uniform tick
// grid: Wh = irradiance × area × efficiency × (10/60).
type Accumulator struct {
	areaM2     float64
	efficiency float64
	monthWh    [12]float64
}

func NewAccumulator(areaM2, efficiency float64) *Accumulator {
	return &Accumulator{areaM2: areaM2, efficiency: efficiency}
}

// Add attributes one sample to its local calendar month.
func (a *Accumulator) Add(s model.IrradianceSample) {
	wh := s.PlaneOfArray * a.areaM2 * a.efficiency * sampler.SampleHours
	a.monthWh[int(s.Instant.Month())-1] += wh
}

func (a *Accumulator) Totals() Totals {
	var t Totals
	for i, wh := range a.monthWh {
		t.Monthly[i] = model.MonthlyEnergy{Month: i + 1, EnergyKWh: wh / 1000}
	}
	t.AnnualKWh = floats.Sum(a.monthWh[:]) / 1000
	return t
}

// Evaluate integrates one orientation over a precomputed tick grid.
// This is the hot path of the tilt search: the expensive ephemeris work
// lives in the ticks, leaving only the projection per candidate.
func Evaluate(ticks []sampler.Tick, o model.PanelOrientation, areaM2, efficiency float64) Totals {
	acc := NewAccumulator(areaM2, efficiency)
	for i := range ticks {
		acc.Add(model.IrradianceSample{
			Instant:      ticks[i].Instant,
			PlaneOfArray: panel.PlaneOfArray(ticks[i].Sun, ticks[i].Sky, o),
		})
	}
	return acc.Totals()
}
