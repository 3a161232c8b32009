package linear_test

import (
	"testing"

	"github.com/katalvlaran/polylog/linear"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOuterProductTwo(t *testing.T) {
	lhs := terms("a", 1, "b", -1)
	rhs := terms("c", 1, "d", 3)
	got := linear.OuterProduct(lhs, rhs, concat)
	want := terms("ac", 1, "ad", 3, "bc", -1, "bd", -3)
	assert.True(t, got.Equal(want), got.String())
}

func TestOuterProductThree(t *testing.T) {
	exprs := []linear.Linear[string]{
		terms("a", 1, "b", -1),
		terms("c", 1, "d", 3),
		terms("e", 2, "f", 1),
	}
	got := linear.OuterProductMany(exprs, concat)
	want := terms(
		"ace", 2, "acf", 1, "ade", 6, "adf", 3,
		"bce", -2, "bcf", -1, "bde", -6, "bdf", -3,
	)
	assert.True(t, got.Equal(want), got.String())
	assert.True(t, linear.TensorProductMany(sp, exprs...).Equal(want))
}

func TestOuterProductBilinear(t *testing.T) {
	x := terms("a", 2, "b", -1)
	y := terms("a", 1, "c", 4)
	z := terms("d", -3, "e", 1)

	left := linear.TensorProduct(sp, x.Add(y), z)
	right := linear.TensorProduct(sp, x, z).Add(linear.TensorProduct(sp, y, z))
	assert.True(t, left.Equal(right))

	scaled := linear.TensorProduct(sp, x.Scale(5), z)
	assert.True(t, scaled.Equal(linear.TensorProduct(sp, x, z).Scale(5)))
}

func TestOuterProductWithZero(t *testing.T) {
	var zero linear.Linear[string]
	assert.True(t, linear.OuterProduct(zero, terms("a", 1), concat).IsZero())
	assert.Panics(t, func() { linear.OuterProductMany[string](nil, concat) })
}

func TestOuterProductExpanding(t *testing.T) {
	lhs := terms("a", 2)
	rhs := terms("b", 1, "c", -1)
	got := linear.OuterProductExpanding(lhs, rhs, func(x, y string) linear.Linear[string] {
		return terms(x+y, 1, y+x, 1)
	})
	require.Equal(t, 4, got.NumTerms())
	assert.Equal(t, 2, got.CoeffForKey("ab"))
	assert.Equal(t, -2, got.CoeffForKey("ca"))
}

func TestOuterProductDropsAnnotations(t *testing.T) {
	got := linear.TensorProduct(sp, terms("a", 1).Annotate("A"), terms("b", 1))
	assert.True(t, got.Annotations().IsZero())
}
