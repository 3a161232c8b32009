package codec

import "errors"

// Sentinel errors. Every message is prefixed with "codec: ".
var (
	// ErrMalformed indicates a message that does not describe a valid
	// expression: zero coefficients, bad part counts.
	ErrMalformed = errors.New("codec: malformed expression")

	// ErrKindMismatch indicates a co-product message decoded as a word
	// expression or vice versa.
	ErrKindMismatch = errors.New("codec: expression kind mismatch")
)
