// Package panel converts a sun position and a panel orientation into
// plane-of-array irradiance.
package panel

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"solar-yield/internal/ephemeris"
	"solar-yield/internal/model"
)

// Normal returns the unit normal of a fixed panel: the vertical (0,0,1)
// rotated about the north axis by the east-west tilt, then about the
// east axis by the north-south tilt. Frame is east/north/up.
func Normal(tilt model.Tilt) r3.Vec {
	ew := rad(tilt.EastWestDeg)
	ns := rad(tilt.NorthSouthDeg)
	return r3.Vec{
		X: math.Sin(ew),
		Y: -math.Sin(ns) * math.Cos(ew),
		Z: math.Cos(ns) * math.Cos(ew),
	}
}

// PlaneOfArray returns the irradiance incident on the panel plane, W/m².
//
// Tracking captures the full beam (zero angle of incidence) plus the
// whole diffuse sky. Fixed projects the beam through the angle of
// incidence, clamped at zero past 90°, and sees the isotropic diffuse
// sky scaled by (1+cos(tilt))/2. A sun at or below the horizon yields
// exactly zero for every orientation.
func PlaneOfArray(sun model.SunVector, sky model.ClearSkyIrradiance, o model.PanelOrientation) float64 {
	if sun.ElevationDeg <= 0 {
		return 0
	}
	if o.IsTracking() {
		return sky.DirectNormal + sky.DiffuseHorizontal
	}

	n := Normal(o.Tilt)
	cosAOI := r3.Dot(ephemeris.Direction(sun), n)
	if cosAOI < 0 {
		cosAOI = 0
	}
	if cosAOI > 1 {
		cosAOI = 1
	}

	// n.Z is the cosine of the panel's total tilt from horizontal.
	diffuse := sky.DiffuseHorizontal * (1 + n.Z) / 2

	return sky.DirectNormal*cosAOI + diffuse
}

func rad(d float64) float64 { return d * math.Pi / 180 }
