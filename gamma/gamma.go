package gamma

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/katalvlaran/polylog/linear"
	"github.com/katalvlaran/polylog/word"
)

// MaxVariables is the largest column index.
const MaxVariables = 30

// Gamma is a minor given by its set of columns. Bit i-1 stands for column i.
// The zero Gamma is nil.
type Gamma uint32

// New returns the minor on vars. Repeated indices make the minor vanish, so
// the result is nil. It panics with ErrBadVariable on out of range indices.
func New(vars ...int) Gamma {
	var g Gamma
	for _, v := range vars {
		if v < 1 || v > MaxVariables {
			panic(fmt.Errorf("%w: %d", ErrBadVariable, v))
		}
		bit := Gamma(1) << (v - 1)
		if g&bit != 0 {
			return 0
		}
		g |= bit
	}
	return g
}

// IsNil reports whether g is the empty (vanishing) minor.
func (g Gamma) IsNil() bool { return g == 0 }

// Dimension returns the number of columns of g.
func (g Gamma) Dimension() int { return bits.OnesCount32(uint32(g)) }

// Contains reports whether column v belongs to g.
func (g Gamma) Contains(v int) bool {
	return v >= 1 && v <= MaxVariables && g&(1<<(v-1)) != 0
}

// Vars returns the columns of g in increasing order.
func (g Gamma) Vars() []int {
	ret := make([]int, 0, g.Dimension())
	for x := uint32(g); x != 0; x &= x - 1 {
		ret = append(ret, bits.TrailingZeros32(x)+1)
	}
	return ret
}

func (g Gamma) String() string {
	vars := g.Vars()
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = strconv.Itoa(v)
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Expr is a linear combination of tensor products of minors.
type Expr = word.Expr

// Param is the linear.Param of Gamma expressions.
type Param struct{}

var (
	_ linear.Param[[]Gamma, word.Key] = Param{}
	_ linear.TensorParam[word.Key]    = Param{}
)

func (Param) ObjectToKey(gs []Gamma) word.Key {
	w := make(word.Word, len(gs))
	for i, g := range gs {
		w[i] = int(g)
	}
	return word.DefaultCodec.MustEncode(w)
}

func (Param) KeyToObject(k word.Key) []Gamma {
	w := word.Decode(k)
	ret := make([]Gamma, len(w))
	for i, l := range w {
		ret[i] = Gamma(l)
	}
	return ret
}

func (Param) ObjectToString(gs []Gamma) string {
	parts := make([]string, len(gs))
	for i, g := range gs {
		parts[i] = g.String()
	}
	return strings.Join(parts, " ⊗ ")
}

func (Param) MonomTensorProduct(a, b word.Key) word.Key { return a + b }

func (Param) ObjectWeight(gs []Gamma) int { return len(gs) }

// G returns the one-letter expression of the minor on vars, or zero if the
// minor is nil.
func G(vars ...int) Expr {
	g := New(vars...)
	if g.IsNil() {
		return Expr{}
	}
	return linear.SingleKey(word.EncodeLetter(int(g)))
}

// Plucker is G annotated with the standard notation |1,2,3|.
func Plucker(vars ...int) Expr {
	g := New(vars...)
	if g.IsNil() {
		return Expr{}
	}
	text := strings.Trim(g.String(), "()")
	return linear.SingleKey(word.EncodeLetter(int(g))).Annotate("|" + text + "|")
}

// Single returns the expression of one tensor product of minors.
func Single(gs ...Gamma) Expr {
	return linear.Single[[]Gamma, word.Key](Param{}, gs)
}

// Tensor returns the tensor product of the given expressions.
func Tensor(exprs ...Expr) Expr {
	return linear.TensorProductMany[word.Key](Param{}, exprs...)
}

// Format renders e with minors printed as (1,2,3).
func Format(e Expr) string {
	return linear.Format[[]Gamma, word.Key](Param{}, e)
}

// Dimension returns the common dimension of all letters of e. A zero
// expression has dimension 0.
func Dimension(e Expr) (int, error) {
	ret := 0
	for k := range e.All() {
		for _, l := range word.Decode(k) {
			d := Gamma(l).Dimension()
			if ret == 0 {
				ret = d
			} else if d != ret {
				return 0, fmt.Errorf("%w: %d and %d", ErrMixedDimension, ret, d)
			}
		}
	}
	return ret, nil
}

// KeyDimension returns the dimension of the first letter of k, or 0 for the
// empty word. It plugs into space.WithDimension.
func KeyDimension(k word.Key) int {
	w := word.Decode(k)
	if len(w) == 0 {
		return 0
	}
	return Gamma(w[0]).Dimension()
}
