package gamma

import (
	"fmt"

	"github.com/katalvlaran/polylog/delta"
	"github.com/katalvlaran/polylog/linear"
	"github.com/katalvlaran/polylog/word"
)

// mapLetters rewrites every letter with fn; a nil image kills the term.
func mapLetters(e Expr, fn func(Gamma) Gamma) Expr {
	return linear.MapKeysExpanding(e, func(k word.Key) Expr {
		w := word.Decode(k)
		for i, l := range w {
			g := fn(Gamma(l))
			if g.IsNil() {
				return Expr{}
			}
			w[i] = int(g)
		}
		return linear.SingleKey(word.Encode(w...))
	}).WithoutAnnotations()
}

// Substitute replaces column i by newPoints[i-1] in every minor. Minors that
// acquire a repeated column vanish together with their term.
func Substitute(e Expr, newPoints []int) Expr {
	return mapLetters(e, func(g Gamma) Gamma {
		vars := g.Vars()
		for i, v := range vars {
			if v > len(newPoints) {
				panic(fmt.Errorf("%w: column %d has no substitute among %d points", ErrBadVariable, v, len(newPoints)))
			}
			vars[i] = newPoints[v-1]
		}
		return New(vars...)
	})
}

// ProjectOn keeps the terms whose every minor contains column axis and
// removes axis from them.
func ProjectOn(axis int, e Expr) Expr {
	bit := New(axis)
	return mapLetters(e, func(g Gamma) Gamma {
		if g&bit == 0 {
			return 0
		}
		return g &^ bit
	})
}

// Pullback adds the bonus columns to every minor. Minors already containing
// a bonus column vanish.
func Pullback(e Expr, bonus []int) Expr {
	extra := New(bonus...)
	return mapLetters(e, func(g Gamma) Gamma {
		if g&extra != 0 {
			return 0
		}
		return g | extra
	})
}

// PluckerDual replaces every minor by its complement within universe.
func PluckerDual(e Expr, universe []int) Expr {
	all := New(universe...)
	return mapLetters(e, func(g Gamma) Gamma {
		if g&^all != 0 {
			panic(fmt.Errorf("%w: %s is not inside %s", ErrBadVariable, g, all))
		}
		return all &^ g
	})
}

// FromDelta converts every Delta(a, b) letter into the minor {a, b}.
func FromDelta(e delta.Expr) Expr {
	return linear.MapKeys(e, func(k word.Key) word.Key {
		w := word.Decode(k)
		for i, l := range w {
			d := delta.FromCode(l)
			w[i] = int(New(d.A, d.B))
		}
		return word.Encode(w...)
	})
}

// ToDelta converts a dimension 2 expression into a delta expression.
func ToDelta(e Expr) (delta.Expr, error) {
	var ret delta.Expr
	for k, c := range e.All() {
		w := word.Decode(k)
		for i, l := range w {
			g := Gamma(l)
			if g.Dimension() != 2 {
				return delta.Expr{}, fmt.Errorf("%w: %s", ErrNotDelta, g)
			}
			vars := g.Vars()
			w[i] = delta.NewDelta(vars[0], vars[1]).Code()
		}
		ret.AddToKey(word.Encode(w...), c)
	}
	return ret.CopyAnnotations(e.Annotations()), nil
}

// AreWeaklySeparated reports whether minors g1 and g2 are weakly separated:
// no chord between two columns of g1\g2 crosses a chord between two columns
// of g2\g1 when the columns are drawn on a circle.
func AreWeaklySeparated(g1, g2 Gamma) bool {
	a, b := g1&^g2, g2&^g1
	if a == 0 || b == 0 {
		return true
	}
	last, changes := 0, 0
	for p := 0; p < MaxVariables; p++ {
		color := 0
		switch {
		case a&(1<<p) != 0:
			color = 1
		case b&(1<<p) != 0:
			color = 2
		}
		if color != 0 && color != last {
			changes++
			last = color
		}
	}
	return changes <= 3
}

// IsWeaklySeparated reports whether all minors of a term are pairwise weakly
// separated.
func IsWeaklySeparated(gs []Gamma) bool {
	for i := range gs {
		for j := 0; j < i; j++ {
			if !AreWeaklySeparated(gs[i], gs[j]) {
				return false
			}
		}
	}
	return true
}

// KeepNonWeaklySeparated keeps the terms that are not weakly separated.
func KeepNonWeaklySeparated(e Expr) Expr {
	return linear.Filtered[[]Gamma, word.Key](Param{}, e, func(gs []Gamma) bool {
		return !IsWeaklySeparated(gs)
	})
}
