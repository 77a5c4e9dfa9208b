// Package search finds the fixed tilt pair maximizing annual yield.
//
// The search is a coarse grid scan over the two-dimensional tilt space
// followed by a fine scan in a window around the coarse optimum.
// Candidates are independent full-year evaluations, fanned out across a
// bounded worker pool and folded deterministically.
package search

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"

	"solar-yield/internal/energy"
	"solar-yield/internal/model"
	"solar-yield/internal/sampler"
)

// Bounds delimit the candidate tilt space, degrees, each axis within
// [-90, 90].
type Bounds struct {
	EastWestMin   float64 `yaml:"east_west_min"`
	EastWestMax   float64 `yaml:"east_west_max"`
	NorthSouthMin float64 `yaml:"north_south_min"`
	NorthSouthMax float64 `yaml:"north_south_max"`
}

func DefaultBounds() Bounds {
	return Bounds{EastWestMin: -90, EastWestMax: 90, NorthSouthMin: -90, NorthSouthMax: 90}
}

// Resolution controls the coarse-to-fine refinement. A FineStepDeg or
// FineSpanDeg of zero disables the fine pass, leaving a single
// exhaustive scan at the coarse step.
type Resolution struct {
	CoarseStepDeg float64 `yaml:"coarse_step_deg"`
	FineStepDeg   float64 `yaml:"fine_step_deg"`
	FineSpanDeg   float64 `yaml:"fine_span_deg"`
}

func DefaultResolution() Resolution {
	return Resolution{CoarseStepDeg: 5, FineStepDeg: 1, FineSpanDeg: 5}
}

// Outcome is the winning orientation and its integrated yield.
type Outcome struct {
	Tilt   model.Tilt
	Totals energy.Totals
}

// Find runs the two-pass grid search over a precomputed tick grid.
// Identical inputs always return the identical outcome: evaluation
// order may vary across workers but the fold is sequential.
func Find(ctx context.Context, ticks []sampler.Tick, areaM2, efficiency float64, b Bounds, r Resolution, workers int) (Outcome, error) {
	coarse, err := candidates(b, r.CoarseStepDeg)
	if err != nil {
		return Outcome{}, err
	}

	best, err := scan(ctx, ticks, areaM2, efficiency, coarse, workers, nil)
	if err != nil {
		return Outcome{}, err
	}

	if r.FineStepDeg > 0 && r.FineSpanDeg > 0 {
		fineBounds := Bounds{
			EastWestMin:   math.Max(-90, best.Tilt.EastWestDeg-r.FineSpanDeg),
			EastWestMax:   math.Min(90, best.Tilt.EastWestDeg+r.FineSpanDeg),
			NorthSouthMin: math.Max(-90, best.Tilt.NorthSouthDeg-r.FineSpanDeg),
			NorthSouthMax: math.Min(90, best.Tilt.NorthSouthDeg+r.FineSpanDeg),
		}
		fine, err := candidates(fineBounds, r.FineStepDeg)
		if err != nil {
			return Outcome{}, err
		}
		best, err = scan(ctx, ticks, areaM2, efficiency, fine, workers, best)
		if err != nil {
			return Outcome{}, err
		}
	}

	return *best, nil
}

// candidates enumerates the grid row-major: east-west outer, north-south
// inner, both ascending.
func candidates(b Bounds, stepDeg float64) ([]model.Tilt, error) {
	if stepDeg <= 0 {
		return nil, fmt.Errorf("%w: step %.2f must be positive", model.ErrOptimizationFailure, stepDeg)
	}
	if b.EastWestMin > b.EastWestMax || b.NorthSouthMin > b.NorthSouthMax {
		return nil, fmt.Errorf("%w: inverted bounds ew[%.1f, %.1f] ns[%.1f, %.1f]",
			model.ErrOptimizationFailure, b.EastWestMin, b.EastWestMax, b.NorthSouthMin, b.NorthSouthMax)
	}

	const eps = 1e-9
	var out []model.Tilt
	for ew := b.EastWestMin; ew <= b.EastWestMax+eps; ew += stepDeg {
		for ns := b.NorthSouthMin; ns <= b.NorthSouthMax+eps; ns += stepDeg {
			out = append(out, model.Tilt{EastWestDeg: ew, NorthSouthDeg: ns})
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: empty candidate set", model.ErrOptimizationFailure)
	}
	return out, nil
}

// scan evaluates every candidate and folds the best, seeded with a
// carry-in from a previous pass when non-nil.
func scan(ctx context.Context, ticks []sampler.Tick, areaM2, efficiency float64, cands []model.Tilt, workers int, carry *Outcome) (*Outcome, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]energy.Totals, len(cands))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range cands {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o := model.FixedTilt(cands[i].EastWestDeg, cands[i].NorthSouthDeg)
			results[i] = energy.Evaluate(ticks, o, areaM2, efficiency)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	best := carry
	for i := range cands {
		if best == nil || better(cands[i], results[i].AnnualKWh, best.Tilt, best.Totals.AnnualKWh) {
			best = &Outcome{Tilt: cands[i], Totals: results[i]}
		}
	}
	return best, nil
}

// better reports whether candidate a beats b: strictly more energy, or
// on a tie the orientation closer to horizontal, then the
// lexicographically smaller pair. The total order makes the fold
// deterministic regardless of grid shape.
func better(a model.Tilt, aKWh float64, b model.Tilt, bKWh float64) bool {
	if aKWh != bKWh {
		return aKWh > bKWh
	}
	aFlat := math.Abs(a.EastWestDeg) + math.Abs(a.NorthSouthDeg)
	bFlat := math.Abs(b.EastWestDeg) + math.Abs(b.NorthSouthDeg)
	if aFlat != bFlat {
		return aFlat < bFlat
	}
	if a.EastWestDeg != b.EastWestDeg {
		return a.EastWestDeg < b.EastWestDeg
	}
	return a.NorthSouthDeg < b.NorthSouthDeg
}
