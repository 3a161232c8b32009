package linear

import "errors"

// Sentinel errors. Every message is prefixed with "linear: ".
//
// ErrCoeffOverflow and ErrEmptyProduct are fatal: the container panics with an
// error wrapping them. The rest are returned as regular errors.
var (
	// ErrCoeffOverflow indicates that an integer coefficient left the range of int.
	ErrCoeffOverflow = errors.New("linear: coefficient overflow")

	// ErrInexactDivision indicates DivInt hit a coefficient not divisible by the divisor.
	ErrInexactDivision = errors.New("linear: inexact coefficient division")

	// ErrDivisionByZero indicates DivInt was called with a zero divisor.
	ErrDivisionByZero = errors.New("linear: division by zero")

	// ErrEmptyProduct indicates an n-ary product was called with no factors.
	ErrEmptyProduct = errors.New("linear: product of zero factors")

	// ErrNotHomogeneous indicates that an expression mixes monomials of different weight.
	ErrNotHomogeneous = errors.New("linear: expression is not homogeneous")
)
