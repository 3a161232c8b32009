package delta

import (
	"fmt"

	"github.com/katalvlaran/polylog/linear"
	"github.com/katalvlaran/polylog/word"
)

// Substitute replaces every variable x_i by x_points[i-1]. Terms that acquire
// a nil letter vanish. It panics with ErrBadVariable if a variable has no
// image in points.
func Substitute(e Expr, points []int) Expr {
	ret := linear.MapKeysExpanding(e, func(k word.Key) Expr {
		w := word.Decode(k)
		for i, l := range w {
			d := FromCode(l)
			if d.B > len(points) {
				panic(fmt.Errorf("%w: x%d has no substitute among %d points", ErrBadVariable, d.B, len(points)))
			}
			nd := NewDelta(points[d.A-1], points[d.B-1])
			if nd.IsNil() {
				return Expr{}
			}
			w[i] = nd.Code()
		}
		return linear.SingleKey(word.Encode(w...))
	})
	return ret.WithoutAnnotations()
}

// ProjectOn maps every letter Delta(axis, b) to the plain letter b and drops
// the terms having a letter without axis.
func ProjectOn(axis int, e Expr) word.Expr {
	ret := linear.MapKeysExpanding(e, func(k word.Key) word.Expr {
		w := word.Decode(k)
		for i, l := range w {
			d := FromCode(l)
			if !d.Contains(axis) {
				return word.Expr{}
			}
			w[i] = d.Other(axis)
		}
		return linear.SingleKey(word.Encode(w...))
	})
	return ret.WithoutAnnotations()
}

// TermsWithNumDistinctVariables keeps the projected terms using exactly n
// distinct letters.
func TermsWithNumDistinctVariables(e word.Expr, n int) word.Expr {
	return e.FilteredKey(func(k word.Key) bool { return numDistinct(k) == n })
}

// TermsWithMinDistinctVariables keeps the projected terms using at least n
// distinct letters.
func TermsWithMinDistinctVariables(e word.Expr, n int) word.Expr {
	return e.FilteredKey(func(k word.Key) bool { return numDistinct(k) >= n })
}

func numDistinct(k word.Key) int {
	seen := make(map[int]struct{})
	for _, l := range word.Decode(k) {
		seen[l] = struct{}{}
	}
	return len(seen)
}

// TermsContainingNumVariables keeps the terms whose letters mention exactly n
// distinct variables.
func TermsContainingNumVariables(e Expr, n int) Expr {
	return linear.Filtered[[]Delta, word.Key](Param{}, e, func(ds []Delta) bool {
		return len(variables(ds)) == n
	})
}

// TermsContainingOnlyVariables keeps the terms whose letters only mention
// the given variables.
func TermsContainingOnlyVariables(e Expr, vars ...int) Expr {
	allowed := make(map[int]bool, len(vars))
	for _, v := range vars {
		allowed[v] = true
	}
	return linear.Filtered[[]Delta, word.Key](Param{}, e, func(ds []Delta) bool {
		for _, d := range ds {
			if !allowed[d.A] || !allowed[d.B] {
				return false
			}
		}
		return true
	})
}

// KeepConnectedGraphs keeps the terms whose letters, read as edges between
// variables, form a connected graph.
func KeepConnectedGraphs(e Expr) Expr {
	return linear.Filtered[[]Delta, word.Key](Param{}, e, isConnected)
}

func variables(ds []Delta) map[int]struct{} {
	ret := make(map[int]struct{}, 2*len(ds))
	for _, d := range ds {
		ret[d.A] = struct{}{}
		ret[d.B] = struct{}{}
	}
	return ret
}

// isConnected runs union-find over the edges of ds.
func isConnected(ds []Delta) bool {
	if len(ds) == 0 {
		return true
	}
	vars := variables(ds)
	parent := make(map[int]int, len(vars))
	for v := range vars {
		parent[v] = v
	}
	// Iterative find with path halving.
	find := func(u int) int {
		for parent[u] != u {
			parent[u] = parent[parent[u]]
			u = parent[u]
		}
		return u
	}
	components := len(vars)
	for _, d := range ds {
		if ra, rb := find(d.A), find(d.B); ra != rb {
			parent[ra] = rb
			components--
		}
	}
	return components == 1
}
