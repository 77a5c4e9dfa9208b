package ephemeris

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-yield/internal/model"
)

var istanbul = model.Location{
	Name:           "Istanbul",
	Latitude:       41.0082,
	Longitude:      28.9784,
	UTCOffsetHours: 3,
}

func TestNewRejectsOutOfRangeLatitude(t *testing.T) {
	loc := istanbul
	loc.Latitude = 95

	_, err := New(loc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidLocation))
}

func TestNewRejectsOutOfRangeLongitude(t *testing.T) {
	loc := istanbul
	loc.Longitude = 200

	_, err := New(loc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrInvalidLocation))
}

func TestSummerNoonAboveHorizon(t *testing.T) {
	prov, err := New(istanbul)
	require.NoError(t, err)

	// Local solar noon in Istanbul is around 13:04 UTC+3.
	noon := time.Date(2025, time.June, 21, 13, 0, 0, 0, istanbul.TimeZone())
	sun, sky := prov.At(noon)

	assert.Greater(t, sun.ElevationDeg, 60.0)
	assert.Greater(t, sky.DirectNormal, 500.0)
	assert.Greater(t, sky.DiffuseHorizontal, 0.0)
	assert.Greater(t, sky.GlobalHorizontal, sky.DirectNormal*0.8)
	assert.Less(t, sky.DirectNormal, SolarConstant)
}

func TestMidnightBelowHorizonYieldsZeroIrradiance(t *testing.T) {
	prov, err := New(istanbul)
	require.NoError(t, err)

	midnight := time.Date(2025, time.June, 21, 1, 0, 0, 0, istanbul.TimeZone())
	sun, sky := prov.At(midnight)

	assert.Less(t, sun.ElevationDeg, 0.0)
	assert.Zero(t, sky.DirectNormal)
	assert.Zero(t, sky.DiffuseHorizontal)
	assert.Zero(t, sky.GlobalHorizontal)
}

func TestWinterNoonLowerThanSummerNoon(t *testing.T) {
	prov, err := New(istanbul)
	require.NoError(t, err)

	summer, _ := prov.At(time.Date(2025, time.June, 21, 13, 0, 0, 0, istanbul.TimeZone()))
	winter, _ := prov.At(time.Date(2025, time.December, 21, 13, 0, 0, 0, istanbul.TimeZone()))

	assert.Greater(t, summer.ElevationDeg, winter.ElevationDeg)
	assert.Greater(t, winter.ElevationDeg, 0.0)
}

func TestNoonSunRoughlySouthInNorthernHemisphere(t *testing.T) {
	prov, err := New(istanbul)
	require.NoError(t, err)

	sun, _ := prov.At(time.Date(2025, time.June, 21, 13, 0, 0, 0, istanbul.TimeZone()))
	assert.InDelta(t, 180.0, sun.AzimuthDeg, 20.0)
}

func TestMorningAzimuthEastAtFarEasternLongitude(t *testing.T) {
	// A morning instant east of UTC+7.5 puts true solar time past the
	// UTC day boundary; the wrapped hour angle must still read it as
	// morning, with the sun east of south.
	tokyo := model.Location{
		Name:           "Tokyo",
		Latitude:       35.6762,
		Longitude:      139.6503,
		UTCOffsetHours: 9,
	}
	prov, err := New(tokyo)
	require.NoError(t, err)

	sun, _ := prov.At(time.Date(2025, time.June, 21, 8, 0, 0, 0, tokyo.TimeZone()))

	assert.Greater(t, sun.ElevationDeg, 0.0)
	assert.Greater(t, sun.AzimuthDeg, 45.0)
	assert.Less(t, sun.AzimuthDeg, 135.0)
}

func TestRefractionDecaysWithElevation(t *testing.T) {
	assert.Zero(t, refractionCorrection(86))

	// Roughly half a degree at the horizon, near nothing overhead.
	assert.InDelta(t, 0.48, refractionCorrection(0), 0.05)
	assert.Greater(t, refractionCorrection(1), refractionCorrection(10))
	assert.Greater(t, refractionCorrection(10), refractionCorrection(45))
	assert.Less(t, refractionCorrection(45), 0.02)
}

func TestDeterminism(t *testing.T) {
	prov, err := New(istanbul)
	require.NoError(t, err)

	at := time.Date(2025, time.March, 10, 9, 40, 0, 0, istanbul.TimeZone())
	sun1, sky1 := prov.At(at)
	sun2, sky2 := prov.At(at)

	assert.Equal(t, sun1, sun2)
	assert.Equal(t, sky1, sky2)
}

func TestDirectionIsUnitVector(t *testing.T) {
	sun := model.SunVector{ElevationDeg: 35, AzimuthDeg: 145}
	v := Direction(sun)

	assert.InDelta(t, 1.0, v.X*v.X+v.Y*v.Y+v.Z*v.Z, 1e-12)
	// Elevation 35° puts the vertical component at sin(35°).
	assert.InDelta(t, 0.5736, v.Z, 1e-3)
}

func TestDirectionPointsEastAtAzimuth90(t *testing.T) {
	sun := model.SunVector{ElevationDeg: 0, AzimuthDeg: 90}
	v := Direction(sun)

	assert.InDelta(t, 1.0, v.X, 1e-12)
	assert.InDelta(t, 0.0, v.Y, 1e-12)
	assert.InDelta(t, 0.0, v.Z, 1e-12)
}
