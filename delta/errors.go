package delta

import "errors"

// Sentinel errors. Every message is prefixed with "delta: ".
var (
	// ErrBadVariable indicates a variable index outside [1, MaxDimension].
	ErrBadVariable = errors.New("delta: variable index out of range")

	// ErrBadPointCount indicates an unsupported number of points.
	ErrBadPointCount = errors.New("delta: bad number of points")

	// ErrWeightTooLow indicates a weight below the minimum for the point count.
	ErrWeightTooLow = errors.New("delta: weight too low")
)
