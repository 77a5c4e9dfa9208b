package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"solar-yield/internal/model"
	"solar-yield/internal/search"
)

// Config is the on-disk run configuration shape (YAML).
type Config struct {
	Location        LocationConfig `yaml:"location"`
	Year            int            `yaml:"year"`
	PanelAreaM2     float64        `yaml:"panel_area_m2"`
	PanelEfficiency float64        `yaml:"panel_efficiency"`

	// Optional: enables the custom-fixed strategy.
	CustomTilt *model.Tilt `yaml:"custom_tilt"`

	// Optional: overrides the tilt-search space and refinement.
	Search *SearchConfig `yaml:"search"`
}

type LocationConfig struct {
	Name           string  `yaml:"name"`
	Latitude       float64 `yaml:"latitude"`
	Longitude      float64 `yaml:"longitude"`
	UTCOffsetHours float64 `yaml:"utc_offset_hours"`
}

type SearchConfig struct {
	Bounds     *search.Bounds     `yaml:"bounds"`
	Resolution *search.Resolution `yaml:"resolution"`
	Workers    int                `yaml:"workers"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.ToSimulation().Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and applies defaults, but does not validate.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.PanelAreaM2 == 0 {
		c.PanelAreaM2 = model.DefaultPanelAreaM2
	}
	return &c, nil
}

func (c *Config) ToSimulation() model.SimulationConfig {
	return model.SimulationConfig{
		Location: model.Location{
			Name:           c.Location.Name,
			Latitude:       c.Location.Latitude,
			Longitude:      c.Location.Longitude,
			UTCOffsetHours: c.Location.UTCOffsetHours,
		},
		Year:            c.Year,
		PanelAreaM2:     c.PanelAreaM2,
		PanelEfficiency: c.PanelEfficiency,
		CustomTilt:      c.CustomTilt,
	}
}

// SearchOptions returns the configured bounds/resolution/workers, with
// defaults where the config is silent.
func (c *Config) SearchOptions() (search.Bounds, search.Resolution, int) {
	bounds := search.DefaultBounds()
	res := search.DefaultResolution()
	workers := 0
	if c.Search != nil {
		if c.Search.Bounds != nil {
			bounds = *c.Search.Bounds
		}
		if c.Search.Resolution != nil {
			res = *c.Search.Resolution
		}
		workers = c.Search.Workers
	}
	return bounds, res, workers
}
