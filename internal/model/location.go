package model

import (
	"fmt"
	"math"
	"time"
)

// Location is a fixed geographic site for a simulation run.
// All angles are in degrees; UTCOffsetHours is the civil-time offset
// (e.g. 3 for UTC+3, -5.5 for UTC-5:30).
type Location struct {
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	UTCOffsetHours float64 `json:"utc_offset_hours"`
}

func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("%w: latitude %.4f out of range [-90, 90]", ErrInvalidLocation, l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("%w: longitude %.4f out of range [-180, 180]", ErrInvalidLocation, l.Longitude)
	}
	if l.UTCOffsetHours < -12 || l.UTCOffsetHours > 14 {
		return fmt.Errorf("%w: utc offset %.2f out of range [-12, 14]", ErrInvalidLocation, l.UTCOffsetHours)
	}
	return nil
}

// TimeZone returns the fixed-offset zone of the location's civil time.
// A fixed offset keeps the tick grid free of DST discontinuities.
func (l Location) TimeZone() *time.Location {
	seconds := int(math.Round(l.UTCOffsetHours * 3600))
	return time.FixedZone(fmt.Sprintf("UTC%+g", l.UTCOffsetHours), seconds)
}
