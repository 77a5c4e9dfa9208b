package model

import "errors"

// Sentinel errors for the failure taxonomy. Callers classify with
// errors.Is; the wrapped message carries the specifics.
var (
	// ErrInvalidLocation means latitude/longitude/offset are out of range.
	// Fatal to the run, surfaced before any sampling.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrIncompleteConfiguration means a required simulation field is
	// unset or unusable. Surfaced before any computation starts.
	ErrIncompleteConfiguration = errors.New("incomplete configuration")

	// ErrOptimizationFailure means the tilt search bounds produced an
	// empty candidate set. Fatal to the optimal-fixed strategy only.
	ErrOptimizationFailure = errors.New("optimization failure")
)
