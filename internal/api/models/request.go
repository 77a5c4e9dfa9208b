package models

// SimulateRequest is the request body for running a comparison.
type SimulateRequest struct {
	Location        LocationPayload `json:"location" binding:"required"`
	Year            int             `json:"year" binding:"required"`
	PanelEfficiency float64         `json:"panel_efficiency" binding:"required"`
	PanelAreaM2     float64         `json:"panel_area_m2,omitempty"` // default: 1.0
	CustomTilt      *TiltPayload    `json:"custom_tilt,omitempty"`
}

// LocationPayload mirrors model.Location over the wire.
type LocationPayload struct {
	Name           string  `json:"name"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`
	UTCOffsetHours float64 `json:"utc_offset_hours"`
}

// TiltPayload is a fixed east-west/north-south tilt pair in degrees.
type TiltPayload struct {
	EastWestDeg   float64 `json:"east_west_deg"`
	NorthSouthDeg float64 `json:"north_south_deg"`
}
