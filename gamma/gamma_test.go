package gamma_test

import (
	"testing"

	"github.com/katalvlaran/polylog/delta"
	"github.com/katalvlaran/polylog/gamma"
	"github.com/katalvlaran/polylog/lyndon"
	"github.com/katalvlaran/polylog/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGammaBasics(t *testing.T) {
	g := gamma.New(3, 1, 2)
	assert.Equal(t, 3, g.Dimension())
	assert.Equal(t, []int{1, 2, 3}, g.Vars())
	assert.Equal(t, "(1,2,3)", g.String())
	assert.True(t, g.Contains(2))
	assert.False(t, g.Contains(4))

	assert.True(t, gamma.New(1, 2, 1).IsNil())
	assert.Panics(t, func() { gamma.New(0) })
	assert.Panics(t, func() { gamma.New(gamma.MaxVariables + 1) })
}

func TestGAndPlucker(t *testing.T) {
	assert.True(t, gamma.G(1, 1).IsZero())
	assert.True(t, gamma.G(2, 1).Equal(gamma.G(1, 2)))

	p := gamma.Plucker(3, 1, 2)
	assert.True(t, p.Equal(gamma.G(1, 2, 3)))
	assert.Equal(t, 1, p.Annotations().Coeff("|1,2,3|"))
	assert.True(t, gamma.Plucker(1, 1).IsZero())
}

func TestDimension(t *testing.T) {
	e := gamma.Tensor(gamma.G(1, 2, 3), gamma.G(2, 3, 4)).Add(gamma.G(1, 4, 5))
	d, err := gamma.Dimension(e)
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	_, err = gamma.Dimension(e.Add(gamma.G(1, 2)))
	assert.ErrorIs(t, err, gamma.ErrMixedDimension)

	for k := range e.All() {
		assert.Equal(t, 3, gamma.KeyDimension(k))
	}
	assert.Equal(t, 0, gamma.KeyDimension(word.Empty))
}

func TestFormat(t *testing.T) {
	e := gamma.Tensor(gamma.G(1, 2), gamma.G(3, 4)).Scale(2)
	assert.Equal(t, "+2 (1,2) ⊗ (3,4)", gamma.Format(e))
}

func TestSubstitute(t *testing.T) {
	e := gamma.Tensor(gamma.G(1, 2), gamma.G(2, 3)).Add(gamma.G(1, 3))
	got := gamma.Substitute(e, []int{5, 6, 5})
	want := gamma.Tensor(gamma.G(5, 6), gamma.G(5, 6))
	assert.True(t, want.Equal(got), gamma.Format(got))
}

func TestProjectAndPullback(t *testing.T) {
	e := gamma.Tensor(gamma.G(1, 2, 3), gamma.G(1, 3, 4)).Add(gamma.Tensor(gamma.G(1, 2, 3), gamma.G(2, 3, 4)))
	got := gamma.ProjectOn(1, e)
	assert.True(t, gamma.Tensor(gamma.G(2, 3), gamma.G(3, 4)).Equal(got), gamma.Format(got))

	back := gamma.Pullback(got, []int{1})
	assert.True(t, gamma.Tensor(gamma.G(1, 2, 3), gamma.G(1, 3, 4)).Equal(back))
	assert.True(t, gamma.Pullback(got, []int{3}).IsZero())
}

func TestPluckerDual(t *testing.T) {
	e := gamma.Tensor(gamma.G(1, 2), gamma.G(2, 5))
	got := gamma.PluckerDual(e, []int{1, 2, 3, 4, 5})
	assert.True(t, gamma.Tensor(gamma.G(3, 4, 5), gamma.G(1, 3, 4)).Equal(got))
	assert.Panics(t, func() { gamma.PluckerDual(e, []int{1, 2, 3}) })
}

func TestDeltaConversion(t *testing.T) {
	d := delta.Lido(2, 1, 2, 3, 4)
	g := gamma.FromDelta(d)
	dim, err := gamma.Dimension(g)
	require.NoError(t, err)
	assert.Equal(t, 2, dim)

	back, err := gamma.ToDelta(g)
	require.NoError(t, err)
	assert.True(t, d.Equal(back))

	_, err = gamma.ToDelta(gamma.G(1, 2, 3))
	assert.ErrorIs(t, err, gamma.ErrNotDelta)
}

func TestDeltaConversionPreservesLyndonOrder(t *testing.T) {
	d := delta.Lido(3, 1, 2, 3, 4, 5, 6)
	lhs := gamma.FromDelta(lyndon.ToBasis(d))
	rhs := lyndon.ToBasis(gamma.FromDelta(d))
	assert.True(t, lhs.Equal(rhs))
}

func TestWeakSeparation(t *testing.T) {
	// {1,3} and {2,4} cross on a square
	assert.False(t, gamma.AreWeaklySeparated(gamma.New(1, 3), gamma.New(2, 4)))
	assert.True(t, gamma.AreWeaklySeparated(gamma.New(1, 2), gamma.New(3, 4)))
	assert.True(t, gamma.AreWeaklySeparated(gamma.New(1, 2, 3), gamma.New(1, 2)))

	e := gamma.Tensor(gamma.G(1, 3), gamma.G(2, 4)).Add(gamma.Tensor(gamma.G(1, 2), gamma.G(3, 4)))
	got := gamma.KeepNonWeaklySeparated(e)
	assert.True(t, gamma.Tensor(gamma.G(1, 3), gamma.G(2, 4)).Equal(got))
	assert.True(t, gamma.IsWeaklySeparated([]gamma.Gamma{gamma.New(1, 2), gamma.New(2, 3)}))
}
