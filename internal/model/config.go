package model

import "fmt"

// DefaultPanelAreaM2 is the canonical panel size; all comparisons are
// per square metre of panel.
const DefaultPanelAreaM2 = 1.0

// SimulationConfig is the full input to one comparison run. Constructed
// once from user input and read-only thereafter.
type SimulationConfig struct {
	Location        Location `json:"location"`
	Year            int      `json:"year"`
	PanelAreaM2     float64  `json:"panel_area_m2"`
	PanelEfficiency float64  `json:"panel_efficiency"`

	// CustomTilt enables the third, user-specified fixed strategy.
	CustomTilt *Tilt `json:"custom_tilt,omitempty"`
}

func (c SimulationConfig) Validate() error {
	if c.Year == 0 {
		return fmt.Errorf("%w: year is unset", ErrIncompleteConfiguration)
	}
	if c.Year < 1950 || c.Year > 2100 {
		return fmt.Errorf("%w: year %d out of range [1950, 2100]", ErrIncompleteConfiguration, c.Year)
	}
	if c.PanelEfficiency <= 0 || c.PanelEfficiency > 1 {
		return fmt.Errorf("%w: panel efficiency %.4f must be in (0, 1]", ErrIncompleteConfiguration, c.PanelEfficiency)
	}
	if c.PanelAreaM2 <= 0 {
		return fmt.Errorf("%w: panel area %.4f must be positive", ErrIncompleteConfiguration, c.PanelAreaM2)
	}
	if err := c.Location.Validate(); err != nil {
		return err
	}
	if c.CustomTilt != nil {
		if err := c.CustomTilt.Validate(); err != nil {
			return err
		}
	}
	return nil
}
