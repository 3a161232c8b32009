package coalgebra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/polylog/linear"
	"github.com/katalvlaran/polylog/lyndon"
	"github.com/katalvlaran/polylog/word"
)

// HopfCoproduct returns lhs ⊗ rhs as a co-expression.
func HopfCoproduct(lhs, rhs word.Expr) Expr {
	return linear.OuterProduct(lhs, rhs, func(a, b word.Key) Key { return NewKey(a, b) })
}

// Coproduct returns the normalized Lie coproduct lhs ∧ rhs. Both sides are
// reduced to the Lyndon basis first.
func Coproduct(lhs, rhs word.Expr, opts ...lyndon.Option) Expr {
	return Normalize(HopfCoproduct(lyndon.ToBasis(lhs, opts...), lyndon.ToBasis(rhs, opts...)), opts...)
}

// Normalize rewrites every two-part co-monomial x ∧ y so that the shorter
// part comes first and equal length parts are in increasing order under
// the letter order of opts (natural by default). x ∧ x vanishes.
// Annotations are kept.
func Normalize(e Expr, opts ...lyndon.Option) Expr {
	o := lyndon.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	var ret Expr
	for k, c := range e.All() {
		parts := k.Parts()
		if len(parts) != 2 {
			panic(fmt.Errorf("%w: %d parts, want 2", ErrMalformedKey, len(parts)))
		}
		a, b := parts[0], parts[1]
		la, lb := a.Len(), b.Len()
		switch {
		case la < lb:
			ret.AddToKey(k, c)
		case la > lb:
			ret.AddToKey(NewKey(b, a), -c)
		default:
			switch word.Compare(word.Decode(a), word.Decode(b), o.Order) {
			case -1:
				ret.AddToKey(k, c)
			case 1:
				ret.AddToKey(NewKey(b, a), -c)
			}
		}
	}
	return ret.CopyAnnotations(e.Annotations())
}

// Comultiply applies the form (a, b) component of the cobracket to e: every
// word w = uv with |u| = a is sent to u ∧ v, and when a != b the split at b
// is subtracted. Annotations are kept with a "Δ" prefix.
func Comultiply(e word.Expr, form [2]int, opts ...lyndon.Option) (Expr, error) {
	if e.IsZero() {
		return Expr{}, nil
	}
	weight, err := word.Weight(e)
	if err != nil {
		return Expr{}, fmt.Errorf("Comultiply: %w", err)
	}
	if form[0] < 1 || form[1] < 1 || form[0]+form[1] != weight {
		return Expr{}, fmt.Errorf("%w: %v for weight %d", ErrBadForm, form, weight)
	}
	first, second := min(form[0], form[1]), max(form[0], form[1])

	copart := func(w word.Word) word.Expr {
		return lyndon.ToBasis(linear.SingleKey(word.Encode(w...)), opts...)
	}
	var ret Expr
	for k, c := range e.All() {
		w := word.Decode(k)
		ret.Accumulate(Coproduct(copart(w[:first]), copart(w[first:]), opts...), c)
		if first != second {
			ret.Accumulate(Coproduct(copart(w[second:]), copart(w[:second]), opts...), -c)
		}
	}
	return ret.CopyAnnotationsMapped(e.Annotations(), func(s string) string { return "Δ" + s }), nil
}

// FilterSide keeps the terms whose part at index side satisfies pred.
func FilterSide(e Expr, side int, pred func(word.Word) bool) Expr {
	return e.FilteredKey(func(k Key) bool {
		parts := k.Parts()
		return side < len(parts) && pred(word.Decode(parts[side]))
	})
}

// FilterSideEqual keeps the terms whose part at index side equals w.
func FilterSideEqual(e Expr, side int, w word.Word) Expr {
	return FilterSide(e, side, func(x word.Word) bool { return slices.Equal(x, w) })
}
