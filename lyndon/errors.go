package lyndon

import "errors"

// ErrInvariant indicates a broken algebraic invariant during reduction: the
// shuffle of the Lyndon factors of a word did not contain the word exactly
// once. It always signals a bug and is raised by panic.
var ErrInvariant = errors.New("lyndon: reduction invariant violated")
