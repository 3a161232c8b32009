// Package lyndon implements Lyndon words and the Lyndon basis of the shuffle
// algebra.
//
// Factorize computes the Chen–Fox–Lyndon factorization of a word with Duval's
// single pass algorithm. ToBasis rewrites any expression of words as the
// unique equivalent combination of Lyndon words, replacing every non-Lyndon
// word by the shuffle of its factors minus itself. Two expressions are equal
// modulo shuffle relations iff ToBasis of their difference is zero.
//
// Orders are pluggable (word.Order). The default is word.Natural.
package lyndon
