package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationValidate(t *testing.T) {
	ok := Location{Name: "Istanbul", Latitude: 41.0082, Longitude: 28.9784, UTCOffsetHours: 3}
	assert.NoError(t, ok.Validate())

	cases := []Location{
		{Latitude: 95},
		{Latitude: -91},
		{Longitude: 181},
		{UTCOffsetHours: 20},
	}
	for _, loc := range cases {
		err := loc.Validate()
		require.Error(t, err, "%+v", loc)
		assert.True(t, errors.Is(err, ErrInvalidLocation))
	}
}

func TestLocationTimeZoneFixedOffset(t *testing.T) {
	loc := Location{UTCOffsetHours: 3}
	at := time.Date(2025, time.June, 1, 12, 0, 0, 0, loc.TimeZone())
	assert.Equal(t, time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC).Unix(), at.Unix())

	half := Location{UTCOffsetHours: 5.5}
	_, offset := time.Date(2025, time.June, 1, 0, 0, 0, 0, half.TimeZone()).Zone()
	assert.Equal(t, int(5.5*3600), offset)
}

func TestSimulationConfigValidate(t *testing.T) {
	base := SimulationConfig{
		Location:        Location{Latitude: 41, Longitude: 29, UTCOffsetHours: 3},
		Year:            2025,
		PanelAreaM2:     1.0,
		PanelEfficiency: 0.2,
	}
	assert.NoError(t, base.Validate())

	missingYear := base
	missingYear.Year = 0
	assert.True(t, errors.Is(missingYear.Validate(), ErrIncompleteConfiguration))

	badEfficiency := base
	badEfficiency.PanelEfficiency = 1.5
	assert.True(t, errors.Is(badEfficiency.Validate(), ErrIncompleteConfiguration))

	badTilt := base
	badTilt.CustomTilt = &Tilt{EastWestDeg: 120}
	assert.True(t, errors.Is(badTilt.Validate(), ErrIncompleteConfiguration))

	badLoc := base
	badLoc.Location.Latitude = 95
	assert.True(t, errors.Is(badLoc.Validate(), ErrInvalidLocation))
}

func TestOrientationVariants(t *testing.T) {
	tr := Tracking()
	assert.True(t, tr.IsTracking())
	assert.Equal(t, "tracking", tr.String())

	fx := FixedTilt(0, 30)
	assert.False(t, fx.IsTracking())
	assert.Equal(t, "fixed(0, 30)", fx.String())
	assert.Equal(t, 30.0, fx.Tilt.NorthSouthDeg)
}

func TestReportResultLookup(t *testing.T) {
	r := ComparisonReport{Results: []AnnualResult{
		{StrategyLabel: "tracking"},
		{StrategyLabel: "optimal-fixed"},
	}}

	res, ok := r.Result("optimal-fixed")
	assert.True(t, ok)
	assert.Equal(t, "optimal-fixed", res.StrategyLabel)

	_, ok = r.Result("custom-fixed")
	assert.False(t, ok)
}
