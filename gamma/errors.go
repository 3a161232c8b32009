package gamma

import "errors"

// Sentinel errors. Every message is prefixed with "gamma: ".
var (
	// ErrBadVariable indicates an index outside [1, MaxVariables].
	ErrBadVariable = errors.New("gamma: variable index out of range")

	// ErrMixedDimension indicates letters of different dimensions in one expression.
	ErrMixedDimension = errors.New("gamma: mixed dimensions")

	// ErrNotDelta indicates a conversion to delta of a letter that is not 2-dimensional.
	ErrNotDelta = errors.New("gamma: letter is not a variable difference")
)
