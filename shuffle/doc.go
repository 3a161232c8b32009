// Package shuffle computes shuffle products of words and of word expressions.
//
// The shuffle product of two words is the sum over all interleavings that
// keep the internal order of each input. It is defined by the recursion
//
//	ua ⧢ vb = (ua ⧢ v)b + (u ⧢ vb)a,   w ⧢ ∅ = ∅ ⧢ w = w.
//
// Small inputs (both lengths summing to at most MaxUnrolledLen) are served
// from a table of interleaving masks built once on first use. The table is
// consulted at every recursive step and is only a shortcut: disabling it with
// WithUnrolled(false) yields identical results.
//
// Quasi computes the quasi-shuffle (stuffle) product, where colliding letters
// may also be merged by a caller supplied glue function. It is deliberately a
// separate code path.
package shuffle
