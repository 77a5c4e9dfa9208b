package model

import "fmt"

// OrientationMode distinguishes a sun-following panel from one bolted at
// a fixed tilt pair. Keep these values stable; they appear in CSV and
// JSON output.
type OrientationMode string

const (
	OrientationTracking OrientationMode = "TRACKING"
	OrientationFixed    OrientationMode = "FIXED"
)

// Tilt is a fixed panel attitude: rotation toward the east (positive)
// or west (negative), and toward the equator-facing horizon. 0/0 is
// horizontal. Both angles are bounded by [-90, 90].
type Tilt struct {
	EastWestDeg   float64 `json:"east_west_deg" yaml:"east_west_deg"`
	NorthSouthDeg float64 `json:"north_south_deg" yaml:"north_south_deg"`
}

func (t Tilt) Validate() error {
	if t.EastWestDeg < -90 || t.EastWestDeg > 90 {
		return fmt.Errorf("%w: east-west tilt %.2f out of range [-90, 90]", ErrIncompleteConfiguration, t.EastWestDeg)
	}
	if t.NorthSouthDeg < -90 || t.NorthSouthDeg > 90 {
		return fmt.Errorf("%w: north-south tilt %.2f out of range [-90, 90]", ErrIncompleteConfiguration, t.NorthSouthDeg)
	}
	return nil
}

// PanelOrientation is the tagged variant the orientation model dispatches
// on: Tracking carries no parameters, Fixed carries the tilt pair.
type PanelOrientation struct {
	Mode OrientationMode `json:"mode"`
	Tilt Tilt            `json:"tilt,omitempty"`
}

func Tracking() PanelOrientation {
	return PanelOrientation{Mode: OrientationTracking}
}

func FixedTilt(eastWestDeg, northSouthDeg float64) PanelOrientation {
	return PanelOrientation{
		Mode: OrientationFixed,
		Tilt: Tilt{EastWestDeg: eastWestDeg, NorthSouthDeg: northSouthDeg},
	}
}

func (o PanelOrientation) IsTracking() bool { return o.Mode == OrientationTracking }

func (o PanelOrientation) String() string {
	if o.IsTracking() {
		return "tracking"
	}
	return fmt.Sprintf("fixed(%g, %g)", o.Tilt.EastWestDeg, o.Tilt.NorthSouthDeg)
}
