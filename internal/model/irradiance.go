package model

import "time"

// SunVector is the sun's apparent position at one instant. Elevation is
// degrees above the horizon (negative when the sun is down); azimuth is
// degrees clockwise from north (90 = east).
type SunVector struct {
	ElevationDeg float64   `json:"elevation_deg"`
	AzimuthDeg   float64   `json:"azimuth_deg"`
	Instant      time.Time `json:"instant"`
}

// ClearSkyIrradiance is the modeled cloudless irradiance decomposition
// at one instant, in W/m². All components are zero while the sun is at
// or below the horizon.
type ClearSkyIrradiance struct {
	DirectNormal      float64 `json:"direct_normal"`
	DiffuseHorizontal float64 `json:"diffuse_horizontal"`
	GlobalHorizontal  float64 `json:"global_horizontal"`
}

// IrradianceSample is one tick of the plane-of-array series. Night-time
// ticks carry zero, never a negative value.
type IrradianceSample struct {
	Instant      time.Time `json:"instant"`
	PlaneOfArray float64   `json:"plane_of_array_irradiance"`
}
