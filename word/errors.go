package word

import "errors"

// Sentinel errors. Every message is prefixed with "word: ".
var (
	// ErrWordTooLong indicates a word exceeds the codec capacity.
	ErrWordTooLong = errors.New("word: word too long")

	// ErrMalformedKey indicates a key that is not a valid letter encoding.
	ErrMalformedKey = errors.New("word: malformed key")

	// ErrBadCapacity indicates a non-positive codec capacity.
	ErrBadCapacity = errors.New("word: capacity must be positive")
)
