// Package delta implements symbols whose letters are differences of
// variables, Delta(a, b) = x_a - x_b, and the polylogarithm symbols built
// from them.
//
// Delta letters are stored as plain word letters through a fixed alphabet
// mapping: the pair a < b gets code (b-1)(b-2)/2 + (a-1). The natural integer
// order on codes is therefore the (b, a) order on pairs, and it is the order
// used by lyndon.ToBasis on these expressions.
//
// Building blocks:
//
//	D, CrossRatio, NegCrossRatio, NegInvCrossRatio - weight one symbols.
//	Lido, LidoNeg, LidoSymm - iterated symbols on an even number of points.
//	Substitute, ProjectOn - changes of variables and projection to plain words.
//
// Lido on points 1..n is memoized per (weight, n); other point lists are
// obtained by substitution.
package delta
