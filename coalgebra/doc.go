// Package coalgebra builds co-expressions: linear combinations of pairs of
// words, the elements of a tensor square of the word algebra.
//
// Coproduct is the Lie flavour: both sides are reduced to the Lyndon basis
// and the result is normalized so that the shorter side comes first and equal
// length sides are ordered (x ∧ y = -y ∧ x, x ∧ x = 0). HopfCoproduct is the
// plain tensor product of the two sides.
//
// Comultiply applies the (a, b) component of the Lie cobracket to a word
// expression term by term.
package coalgebra
