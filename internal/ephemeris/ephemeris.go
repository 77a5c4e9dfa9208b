// Package ephemeris computes the sun's apparent position and the
// clear-sky irradiance decomposition for a fixed site.
//
// Position uses the NOAA low-accuracy solar formulation on a Julian-date
// base. Irradiance is a Bras-style attenuation of the extraterrestrial
// normal irradiance through a Kasten airmass with a fixed turbidity
// factor, plus an isotropic diffuse fraction. Both are closed-form in
// (location, instant): no weather input, no wall-clock dependency.
package ephemeris

import (
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"gonum.org/v1/gonum/spatial/r3"

	"solar-yield/internal/model"
)

const (
	// SolarConstant is the extraterrestrial irradiance at 1 AU, W/m².
	SolarConstant = 1367.0

	// turbidity is the Bras atmospheric attenuation factor. 2 is very
	// clear, 4-5 smoggy; 3 is a reasonable clear-sky default.
	turbidity = 3.0

	// diffuseFraction sizes the isotropic diffuse component relative to
	// the beam projected on the horizontal.
	diffuseFraction = 0.10
)

// Provider computes ephemerides for one validated location.
type Provider struct {
	lat float64
	lon float64
}

func New(loc model.Location) (*Provider, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}
	return &Provider{lat: loc.Latitude, lon: loc.Longitude}, nil
}

// At returns the sun's apparent position and the clear-sky irradiance
// for the given instant. A sun below the horizon is a valid result with
// all irradiance components exactly zero, not an error.
func (p *Provider) At(t time.Time) (model.SunVector, model.ClearSkyIrradiance) {
	elevDeg, azDeg, sunEarthAU := position(p.lat, p.lon, t)

	sun := model.SunVector{
		ElevationDeg: elevDeg,
		AzimuthDeg:   azDeg,
		Instant:      t,
	}
	if elevDeg <= 0 {
		return sun, model.ClearSkyIrradiance{}
	}
	return sun, clearSky(elevDeg, sunEarthAU)
}

// Direction returns the sun's unit vector in the local east/north/up
// frame. Only meaningful while the sun is above the horizon.
func Direction(sun model.SunVector) r3.Vec {
	zen := rad(90 - sun.ElevationDeg)
	az := rad(sun.AzimuthDeg)
	return r3.Vec{
		X: math.Sin(zen) * math.Sin(az),
		Y: math.Sin(zen) * math.Cos(az),
		Z: math.Cos(zen),
	}
}

// position returns apparent elevation, azimuth (degrees clockwise from
// north) and the sun-earth distance in AU.
func position(lat, lon float64, t time.Time) (elevDeg, azDeg, distAU float64) {
	jd := julian.TimeToJD(t.UTC())
	T := (jd - 2451545.0) / 36525.0

	meanLong := wrapDeg(280.46646 + T*(36000.76983+T*0.0003032))
	meanAnom := wrapDeg(357.52911 + T*(35999.05029-T*0.0001537))
	ecc := 0.016708634 - T*(0.000042037+T*0.0000001267)

	center := math.Sin(rad(meanAnom))*(1.914602-T*(0.004817+T*0.000014)) +
		math.Sin(rad(2*meanAnom))*(0.019993-T*0.000101) +
		math.Sin(rad(3*meanAnom))*0.000289
	trueLong := meanLong + center
	node := 125.04 - 1934.136*T
	appLong := trueLong - 0.00569 - 0.00478*math.Sin(rad(node))

	obliq := 23 + (26+(21.448-T*(46.815+T*(0.00059-T*0.001813)))/60)/60
	decl := math.Asin(math.Sin(rad(obliq)) * math.Sin(rad(appLong)))

	y := math.Tan(rad(obliq) / 2)
	y *= y
	eqTimeMin := 4 * deg(y*math.Sin(2*rad(meanLong))-
		2*ecc*math.Sin(rad(meanAnom))+
		4*ecc*y*math.Sin(rad(meanAnom))*math.Cos(2*rad(meanLong))-
		0.5*y*y*math.Sin(4*rad(meanLong))-
		1.25*ecc*ecc*math.Sin(2*rad(meanAnom)))

	ut := t.UTC()
	utcMin := float64(ut.Hour()*60+ut.Minute()) + float64(ut.Second())/60
	// Hour angle wrapped into [-180, 180): negative before local solar
	// noon. The wrap matters when UTC time plus longitude pushes true
	// solar time past the day boundary.
	trueSolarMin := utcMin + 4*lon + eqTimeMin
	haDeg := wrapDeg(trueSolarMin/4) - 180
	haRad := rad(haDeg)

	latRad := rad(lat)
	cosZen := math.Sin(latRad)*math.Sin(decl) + math.Cos(latRad)*math.Cos(decl)*math.Cos(haRad)
	cosZen = clamp(cosZen, -1, 1)
	zenRad := math.Acos(cosZen)
	elevDeg = 90 - deg(zenRad)
	elevDeg += refractionCorrection(elevDeg)

	// Azimuth from north, undefined at the exact zenith.
	sinZen := math.Sin(zenRad)
	if sinZen > 1e-9 {
		cosAz := clamp((math.Sin(decl)-math.Sin(latRad)*cosZen)/(math.Cos(latRad)*sinZen), -1, 1)
		azDeg = deg(math.Acos(cosAz))
		if haDeg > 0 {
			azDeg = 360 - azDeg
		}
	}

	// Sun-earth distance from the eccentric anomaly.
	manRad := rad(meanAnom)
	eAnom := manRad + ecc*math.Sin(manRad)*(1+ecc*math.Cos(manRad))
	trueAnom := 2 * math.Atan(math.Sqrt((1+ecc)/(1-ecc))*math.Tan(eAnom/2))
	distAU = (1 - ecc*ecc) / (1 + ecc*math.Cos(trueAnom))

	return elevDeg, azDeg, distAU
}

// refractionCorrection is the NOAA atmospheric refraction lift in
// degrees: about 0.5° at the horizon, vanishing above 85° elevation.
func refractionCorrection(elevDeg float64) float64 {
	if elevDeg > 85 {
		return 0
	}
	tanElev := math.Tan(rad(elevDeg))
	var arcsec float64
	switch {
	case elevDeg > 5:
		arcsec = 58.1/tanElev - 0.07/math.Pow(tanElev, 3) + 0.000086/math.Pow(tanElev, 5)
	case elevDeg > -0.575:
		arcsec = 1735 + elevDeg*(-518.2+elevDeg*(103.4+elevDeg*(-12.79+elevDeg*0.711)))
	default:
		arcsec = -20.774 / tanElev
	}
	return arcsec / 3600
}

// clearSky attenuates the extraterrestrial beam through the atmosphere.
// Kasten airmass, Bras one-layer attenuation, isotropic diffuse.
func clearSky(elevDeg, distAU float64) model.ClearSkyIrradiance {
	sinElev := math.Sin(rad(elevDeg))
	cosZen := sinElev

	extraterrestrial := SolarConstant / (distAU * distAU)
	airmass := 1.0 / (cosZen + 0.15*math.Pow(elevDeg+3.885, -1.253))
	a1 := 0.128 - 0.054*math.Log10(airmass)

	dni := extraterrestrial * math.Exp(-turbidity*a1*airmass)
	if dni < 0 {
		dni = 0
	}
	dhi := diffuseFraction * dni * sinElev
	ghi := dni*sinElev + dhi

	return model.ClearSkyIrradiance{
		DirectNormal:      dni,
		DiffuseHorizontal: dhi,
		GlobalHorizontal:  ghi,
	}
}

func rad(d float64) float64 { return d * math.Pi / 180 }
func deg(r float64) float64 { return r * 180 / math.Pi }

func wrapDeg(a float64) float64 { return a - 360*math.Floor(a/360) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
