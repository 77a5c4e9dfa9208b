// Package strategy names the placement strategies the engine compares.
package strategy

import "solar-yield/internal/model"

// Stable labels; they key the efficiency-ratio map and appear in CSV,
// JSON and spreadsheet output.
const (
	LabelTracking     = "tracking"
	LabelOptimalFixed = "optimal-fixed"
	LabelCustomFixed  = "custom-fixed"
)

// Strategy binds a label to the panel orientation it evaluates.
type Strategy struct {
	Label       string
	Orientation model.PanelOrientation
}

func Tracking() Strategy {
	return Strategy{Label: LabelTracking, Orientation: model.Tracking()}
}

func OptimalFixed(t model.Tilt) Strategy {
	return Strategy{Label: LabelOptimalFixed, Orientation: model.FixedTilt(t.EastWestDeg, t.NorthSouthDeg)}
}

func CustomFixed(t model.Tilt) Strategy {
	return Strategy{Label: LabelCustomFixed, Orientation: model.FixedTilt(t.EastWestDeg, t.NorthSouthDeg)}
}

// Info describes a strategy for discovery endpoints.
type Info struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func Catalog() []Info {
	return []Info{
		{Name: LabelTracking, Description: "Panel normal follows the sun at every tick; full beam capture."},
		{Name: LabelOptimalFixed, Description: "Single fixed tilt pair maximizing annual yield, found by grid search."},
		{Name: LabelCustomFixed, Description: "User-specified fixed east-west/north-south tilt pair."},
	}
}
