package shuffle

import (
	"slices"

	"github.com/katalvlaran/polylog/word"
)

// Quasi returns the quasi-shuffle of u and v as a list of words, repeated
// according to multiplicity:
//
//	ua * vb = (u * vb)a + (ua * v)b + (u * v)glue(a, b).
func Quasi[T any](u, v []T, glue func(a, b T) T) [][]T {
	if len(u) == 0 {
		return [][]T{slices.Clone(v)}
	}
	if len(v) == 0 {
		return [][]T{slices.Clone(u)}
	}
	a, b := u[len(u)-1], v[len(v)-1]
	u0, v0 := u[:len(u)-1], v[:len(v)-1]
	var ret [][]T
	for _, w := range Quasi(u0, v, glue) {
		ret = append(ret, append(w, a))
	}
	for _, w := range Quasi(u, v0, glue) {
		ret = append(ret, append(w, b))
	}
	g := glue(a, b)
	for _, w := range Quasi(u0, v0, glue) {
		ret = append(ret, append(w, g))
	}
	return ret
}

// QuasiProduct is Quasi on word keys, collected into an expression.
func QuasiProduct(u, v word.Key, glue func(a, b int) int) word.Expr {
	var ret word.Expr
	for _, w := range Quasi(word.Decode(u), word.Decode(v), glue) {
		ret.AddToKey(word.Encode(w...), 1)
	}
	return ret
}
