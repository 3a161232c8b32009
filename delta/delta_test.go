package delta_test

import (
	"testing"

	"github.com/katalvlaran/polylog/delta"
	"github.com/katalvlaran/polylog/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaNormalization(t *testing.T) {
	d := delta.NewDelta(5, 2)
	assert.Equal(t, delta.Delta{A: 2, B: 5}, d)
	assert.Equal(t, "(x2 - x5)", d.String())
	assert.True(t, delta.NewDelta(3, 3).IsNil())
	assert.Panics(t, func() { delta.NewDelta(0, 1) })
	assert.Panics(t, func() { delta.NewDelta(1, delta.MaxDimension+1) })
}

func TestCodesRoundTrip(t *testing.T) {
	prev := -1
	// codes enumerate pairs in (b, a) order
	for b := 2; b <= delta.MaxDimension; b++ {
		for a := 1; a < b; a++ {
			d := delta.NewDelta(a, b)
			c := d.Code()
			assert.Equal(t, prev+1, c)
			assert.Equal(t, d, delta.FromCode(c))
			prev = c
		}
	}
	assert.Panics(t, func() { delta.FromCode(prev + 1) })
}

func TestD(t *testing.T) {
	assert.True(t, delta.D(4, 4).IsZero())
	assert.True(t, delta.D(1, 2).Equal(delta.D(2, 1)))
	assert.Equal(t, "+ (x1 - x2)", delta.Format(delta.D(2, 1)))
}

func TestCrossRatio(t *testing.T) {
	got := delta.CrossRatio(1, 2, 3, 4)
	want := delta.D(1, 2).Add(delta.D(3, 4)).Sub(delta.D(2, 3)).Sub(delta.D(4, 1))
	assert.True(t, want.Equal(got))

	assert.True(t, delta.NegCrossRatio(1, 2, 3, 4).Equal(delta.CrossRatio(1, 3, 2, 4)))
	assert.True(t, delta.NegInvCrossRatio(1, 2, 3, 4).Equal(delta.CrossRatio(1, 3, 4, 2)))
}

func TestTensorAndFormat(t *testing.T) {
	e := delta.Tensor(delta.D(1, 2), delta.D(3, 4).Scale(-2))
	assert.Equal(t, "-2 (x1 - x2) ⊗ (x3 - x4)", delta.Format(e))
	assert.True(t, e.Equal(delta.Single(delta.NewDelta(1, 2), delta.NewDelta(3, 4)).Scale(-2)))

	seen := 0
	delta.ForEach(e, func(ds []delta.Delta, c int) {
		require.Len(t, ds, 2)
		assert.Equal(t, -2, c)
		seen++
	})
	assert.Equal(t, 1, seen)

	w, err := word.Weight(e)
	require.NoError(t, err)
	assert.Equal(t, 2, w)
}

func TestSingleRejectsNilLetter(t *testing.T) {
	assert.Panics(t, func() { delta.Single(delta.Delta{A: 2, B: 2}) })
}
