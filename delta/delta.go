package delta

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/polylog/linear"
	"github.com/katalvlaran/polylog/word"
)

// MaxDimension is the largest variable index a Delta can hold.
const MaxDimension = 20

// Delta is the letter x_A - x_B, normalized so that A <= B.
// A Delta with A == B is nil and never stored in an expression.
type Delta struct {
	A, B int
}

// NewDelta returns the normalized Delta(a, b). It panics with ErrBadVariable
// if either index is outside [1, MaxDimension].
func NewDelta(a, b int) Delta {
	checkVariable(a)
	checkVariable(b)
	if a > b {
		a, b = b, a
	}
	return Delta{A: a, B: b}
}

func checkVariable(x int) {
	if x < 1 || x > MaxDimension {
		panic(fmt.Errorf("%w: %d", ErrBadVariable, x))
	}
}

// IsNil reports whether d is x_a - x_a.
func (d Delta) IsNil() bool { return d.A == d.B }

// Contains reports whether x is one of the two variables of d.
func (d Delta) Contains(x int) bool { return d.A == x || d.B == x }

// Other returns the variable of d that is not x. The result is undefined if
// d does not contain x.
func (d Delta) Other(x int) int {
	if d.A == x {
		return d.B
	}
	return d.A
}

func (d Delta) String() string { return fmt.Sprintf("(x%d - x%d)", d.A, d.B) }

// Code returns the alphabet letter of a non-nil d.
func (d Delta) Code() int {
	za, zb := d.A-1, d.B-1
	return zb*(zb-1)/2 + za
}

var codeToDelta = func() []Delta {
	ret := make([]Delta, MaxDimension*(MaxDimension-1)/2)
	for b := 1; b <= MaxDimension; b++ {
		for a := 1; a < b; a++ {
			d := Delta{A: a, B: b}
			ret[d.Code()] = d
		}
	}
	return ret
}()

// FromCode is the inverse of Code. It panics on letters outside the alphabet.
func FromCode(code int) Delta {
	if code < 0 || code >= len(codeToDelta) {
		panic(fmt.Errorf("%w: letter %d", ErrBadVariable, code))
	}
	return codeToDelta[code]
}

// Expr is a linear combination of tensor products of Delta letters.
type Expr = word.Expr

// Param is the linear.Param of Delta expressions.
type Param struct{}

var (
	_ linear.Param[[]Delta, word.Key] = Param{}
	_ linear.TensorParam[word.Key]    = Param{}
)

func (Param) ObjectToKey(ds []Delta) word.Key {
	w := make(word.Word, len(ds))
	for i, d := range ds {
		if d.IsNil() {
			panic(fmt.Errorf("%w: nil letter %s", ErrBadVariable, d))
		}
		w[i] = d.Code()
	}
	return word.DefaultCodec.MustEncode(w)
}

func (Param) KeyToObject(k word.Key) []Delta {
	w := word.Decode(k)
	ret := make([]Delta, len(w))
	for i, l := range w {
		ret[i] = FromCode(l)
	}
	return ret
}

func (Param) ObjectToString(ds []Delta) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = d.String()
	}
	return strings.Join(parts, " ⊗ ")
}

func (Param) MonomTensorProduct(a, b word.Key) word.Key { return a + b }

func (Param) ObjectWeight(ds []Delta) int { return len(ds) }

// D returns the one-letter expression x_a - x_b, or zero if a == b.
func D(a, b int) Expr {
	d := NewDelta(a, b)
	if d.IsNil() {
		return Expr{}
	}
	return linear.SingleKey(word.EncodeLetter(d.Code()))
}

// Single returns the expression of one tensor product of letters.
func Single(ds ...Delta) Expr {
	return linear.Single[[]Delta, word.Key](Param{}, ds)
}

// Tensor returns the tensor product of the given expressions.
func Tensor(exprs ...Expr) Expr {
	return linear.TensorProductMany[word.Key](Param{}, exprs...)
}

// Format renders e with letters printed as (xa - xb).
func Format(e Expr) string {
	return linear.Format[[]Delta, word.Key](Param{}, e)
}

// ForEach calls fn with the letters of every term of e.
func ForEach(e Expr, fn func(ds []Delta, c int)) {
	linear.ForEach[[]Delta, word.Key](Param{}, e, fn)
}
