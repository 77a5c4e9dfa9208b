package models

import "solar-yield/internal/model"

// SimulateResponse wraps the engine's report for the wire.
type SimulateResponse struct {
	Status string                  `json:"status"`
	Report *model.ComparisonReport `json:"report"`
}

// ErrorResponse is the envelope for all error bodies.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine code plus a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
