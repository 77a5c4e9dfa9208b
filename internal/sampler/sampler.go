// Package sampler walks a calendar year of a location's civil time at a
// fixed 10-minute cadence, driving the ephemeris per tick.
package sampler

import (
	"time"

	"solar-yield/internal/ephemeris"
	"solar-yield/internal/model"
	"solar-yield/internal/panel"
)

// TickInterval is the sampling cadence. Every instant of the year is
// attributed to exactly one tick; the final partial day of a leap year
// is covered by the calendar arithmetic, not special-cased.
const TickInterval = 10 * time.Minute

// SampleHours is one tick expressed in hours, the integration step.
const SampleHours = 1.0 / 6.0

// Tick is one precomputed instant of the year: sun position plus
// clear-sky irradiance. Orientation-independent, so a single pass can
// be shared across many candidate orientations.
type Tick struct {
	Instant time.Time
	Sun     model.SunVector
	Sky     model.ClearSkyIrradiance
}

// Series generates the tick grid for one location-year. Iteration is
// deterministic: same location and year always produce the identical
// sequence.
type Series struct {
	loc  model.Location
	year int
}

func New(loc model.Location, year int) *Series {
	return &Series{loc: loc, year: year}
}

// Len returns the number of ticks in the year (52560, or 52704 in a
// leap year).
func (s *Series) Len() int {
	start, end := s.span()
	return int(end.Sub(start) / TickInterval)
}

func (s *Series) span() (start, end time.Time) {
	zone := s.loc.TimeZone()
	start = time.Date(s.year, time.January, 1, 0, 0, 0, 0, zone)
	end = time.Date(s.year+1, time.January, 1, 0, 0, 0, 0, zone)
	return start, end
}

// Ticks evaluates the ephemeris once per tick and returns the full
// year. The slice is safe to share read-only across workers.
func (s *Series) Ticks() ([]Tick, error) {
	prov, err := ephemeris.New(s.loc)
	if err != nil {
		return nil, err
	}

	start, end := s.span()
	ticks := make([]Tick, 0, s.Len())
	for t := start; t.Before(end); t = t.Add(TickInterval) {
		sun, sky := prov.At(t)
		ticks = append(ticks, Tick{Instant: t, Sun: sun, Sky: sky})
	}
	return ticks, nil
}

// Samples streams the plane-of-array series for one orientation,
// calling fn once per tick in chronological order. The sequence is lazy
// and restartable: each call walks the year afresh.
func (s *Series) Samples(o model.PanelOrientation, fn func(model.IrradianceSample) error) error {
	prov, err := ephemeris.New(s.loc)
	if err != nil {
		return err
	}

	start, end := s.span()
	for t := start; t.Before(end); t = t.Add(TickInterval) {
		sun, sky := prov.At(t)
		sample := model.IrradianceSample{
			Instant:      t,
			PlaneOfArray: panel.PlaneOfArray(sun, sky, o),
		}
		if err := fn(sample); err != nil {
			return err
		}
	}
	return nil
}
