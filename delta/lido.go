package delta

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/polylog/internal/memo"
)

type nodeKind int

const (
	nodePos nodeKind = iota
	nodeNeg
)

func (k nodeKind) name() string {
	if k == nodeNeg {
		return "LidoNeg"
	}
	return "Lido"
}

// node is the weight one symbol attached to four consecutive points.
func (k nodeKind) node(p []int) Expr {
	f := NegCrossRatio
	if k == nodeNeg {
		f = NegInvCrossRatio
	}
	if p[0]%2 == 1 {
		return f(p[0], p[1], p[2], p[3])
	}
	return f(p[1], p[2], p[3], p[0]).Neg()
}

var lidoCache = memo.New[Expr]("lido", 128)

// Lido returns the symbol Lido_weight(points...). It panics on invalid
// arguments; see LidoChecked.
func Lido(weight int, points ...int) Expr {
	return mustLido(nodePos, weight, points)
}

// LidoNeg is Lido with 1 - 1/cross ratio at the four-point nodes.
func LidoNeg(weight int, points ...int) Expr {
	return mustLido(nodeNeg, weight, points)
}

// LidoChecked is Lido that reports invalid arguments as an error.
func LidoChecked(weight int, points ...int) (Expr, error) {
	if err := validateLido(weight, points); err != nil {
		return Expr{}, fmt.Errorf("Lido: %w", err)
	}
	return lido(nodePos, weight, points), nil
}

// LidoSymm returns Lido(x1..x6) - Lido(x1..x4) - Lido(x3..x6) - Lido(x5,x6,x1,x2).
// Exactly six points are supported.
func LidoSymm(weight int, points ...int) Expr {
	if len(points) != 6 {
		panic(fmt.Errorf("LidoSymm: %w: %d, want 6", ErrBadPointCount, len(points)))
	}
	x1, x2, x3, x4, x5, x6 := points[0], points[1], points[2], points[3], points[4], points[5]
	ret := Lido(weight, x1, x2, x3, x4, x5, x6).
		Sub(Lido(weight, x1, x2, x3, x4)).
		Sub(Lido(weight, x3, x4, x5, x6)).
		Sub(Lido(weight, x5, x6, x1, x2))
	return ret.WithoutAnnotations().AnnotateWithFunction(fmt.Sprintf("LidoSymm%d", weight), intsToAny(points)...)
}

func mustLido(kind nodeKind, weight int, points []int) Expr {
	if err := validateLido(weight, points); err != nil {
		panic(fmt.Errorf("%s: %w", kind.name(), err))
	}
	return lido(kind, weight, points)
}

func validateLido(weight int, points []int) error {
	n := len(points)
	if n < 4 || n%2 != 0 {
		return fmt.Errorf("%w: %d", ErrBadPointCount, n)
	}
	if n > MaxDimension {
		return fmt.Errorf("%w: %d exceeds %d", ErrBadPointCount, n, MaxDimension)
	}
	if minWeight := (n - 2) / 2; weight < minWeight {
		return fmt.Errorf("%w: %d < %d for %d points", ErrWeightTooLow, weight, minWeight, n)
	}
	for _, x := range points {
		if x < 1 || x > MaxDimension {
			return fmt.Errorf("%w: %d", ErrBadVariable, x)
		}
	}
	return nil
}

func lido(kind nodeKind, weight int, points []int) Expr {
	n := len(points)
	key := fmt.Sprintf("%d/%d/%d", kind, weight, n)
	asc := lidoCache.Lookup(key, func() Expr {
		return lidoImpl(kind, weight, seq(1, n))
	})
	return Substitute(asc, points).
		AnnotateWithFunction(fmt.Sprintf("%s%d", kind.name(), weight), intsToAny(points)...)
}

func lidoImpl(kind nodeKind, weight int, points []int) Expr {
	n := len(points)
	minWeight := (n - 2) / 2
	subsums := func() Expr {
		var ret Expr
		for i := 0; i+3 < n; i++ {
			foundation := slices.Concat(points[:i+1], points[i+3:])
			ret.Accumulate(Tensor(kind.node(points[i:i+4]), lidoImpl(kind, weight-1, foundation)), 1)
		}
		return ret
	}
	if weight == minWeight {
		if n == 4 {
			return kind.node(points)
		}
		return subsums()
	}
	ret := Tensor(CrossRatio(points...), lidoImpl(kind, weight-1, points))
	if n > 4 {
		ret.Accumulate(subsums(), 1)
	}
	return ret
}

func seq(from, to int) []int {
	ret := make([]int, 0, to-from+1)
	for i := from; i <= to; i++ {
		ret = append(ret, i)
	}
	return ret
}

func intsToAny(xs []int) []any {
	ret := make([]any, len(xs))
	for i, x := range xs {
		ret[i] = x
	}
	return ret
}
