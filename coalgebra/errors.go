package coalgebra

import "errors"

// Sentinel errors. Every message is prefixed with "coalgebra: ".
var (
	// ErrBadForm indicates a comultiplication form that does not match the weight.
	ErrBadForm = errors.New("coalgebra: form does not match weight")

	// ErrMalformedKey indicates a co-key not produced by this package.
	ErrMalformedKey = errors.New("coalgebra: malformed key")
)
