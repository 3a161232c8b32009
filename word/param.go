package word

import "github.com/katalvlaran/polylog/linear"

// Expr is a linear combination of plain integer words.
type Expr = linear.Linear[Key]

// Plain is the param of integer words: letters are printed as integers and
// tensor product is concatenation.
type Plain struct{}

var (
	_ linear.Param[Word, Key] = Plain{}
	_ linear.TensorParam[Key] = Plain{}
)

func (Plain) ObjectToKey(w Word) Key { return DefaultCodec.MustEncode(w) }
func (Plain) KeyToObject(k Key) Word { return Decode(k) }
func (Plain) ObjectToString(w Word) string { return w.String() }
func (Plain) MonomTensorProduct(a, b Key) Key { return a + b }
func (Plain) ObjectWeight(w Word) int { return len(w) }

// New returns the sum of the given words, each with coefficient 1.
func New(words ...Word) Expr {
	return linear.FromObjects[Word, Key](Plain{}, words...)
}

// Single returns 1·w.
func Single(w ...int) Expr {
	return linear.SingleKey(DefaultCodec.MustEncode(w))
}

// Weight returns the common length of all words in e.
func Weight(e Expr) (int, error) {
	return linear.Homogeneous(e, Key.Len)
}

// Format renders e with words printed as "(1, 2, 3)".
func Format(e Expr) string {
	return linear.Format[Word, Key](Plain{}, e)
}

// Tensor returns the concatenation product of the given expressions.
func Tensor(exprs ...Expr) Expr {
	return linear.TensorProductMany[Key](Plain{}, exprs...)
}
