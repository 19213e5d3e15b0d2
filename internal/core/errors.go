package core

import "errors"

// Sentinel errors shared by every pipeline stage. Callers match them with
// errors.Is; stages wrap them with context via fmt.Errorf and %w.
var (
	// ErrInvalidParameter marks out-of-range or otherwise unusable input.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidSize marks a grid dimension incompatible with the chosen algorithm.
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrMissingParameter marks a required option absent for the selected algorithm.
	ErrMissingParameter = errors.New("missing parameter")
	// ErrFitConvergence marks an optimizer that exhausted its budget without converging.
	ErrFitConvergence = errors.New("fit did not converge")
	// ErrNumericalInstability marks NaN/Inf contamination mid-simulation.
	ErrNumericalInstability = errors.New("numerical instability")
)
