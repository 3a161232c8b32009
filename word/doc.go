// Package word provides the word monomial: an ordered sequence of integer
// letters, together with its compact hashable key form.
//
// A Word is the object form ([]int). A Key is the canonical key form: the
// letters encoded one after another as zigzag varints inside a Go string.
// The encoding is self-delimiting, so
//
//	Concat(Encode(u), Encode(v)) == Encode(append(u, v...))
//
// which makes tensor products and letter appends plain string concatenation.
//
// Word length is bounded where words enter from object form: Codec.Encode
// reports words longer than Codec.MaxLen with ErrWordTooLong, and the Plain
// param panics instead, treating such input as a programming error. Keys
// computed from other keys (tensor products, shuffles, Concat, Append) are
// not bounded: the product of two admissible words is always admissible.
//
// Letter orders are pluggable through Order. Natural is the usual integer
// order, Reversed its mirror; OrderFunc adapts any less function.
package word
