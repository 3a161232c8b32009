package word_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polylog/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTrip(t *testing.T) {
	cases := []word.Word{
		{},
		{0},
		{1, 2, 3},
		{-1, 0, 1},
		{63, 64, -64, -65, 1000, -1000},
		{math.MaxInt32, math.MinInt32},
	}
	for _, w := range cases {
		k, err := word.DefaultCodec.Encode(w)
		require.NoError(t, err)
		assert.Equal(t, len(w), k.Len(), "%v", w)
		got := word.Decode(k)
		assert.True(t, w.Equal(got), "%v != %v", w, got)
	}
}

func TestConcatIsWordConcat(t *testing.T) {
	u := word.Word{1, 200, -3}
	v := word.Word{0, 70000}
	joined := word.Concat(word.Encode(u...), word.Encode(v...))
	assert.Equal(t, word.Encode(1, 200, -3, 0, 70000), joined)
	assert.Equal(t, word.Encode(1, 200, -3, 9), word.Append(word.Encode(u...), 9))
	assert.Equal(t, word.Empty, word.Concat())
}

func TestSplit(t *testing.T) {
	k := word.Encode(5, -300, 0)
	parts := k.Split()
	require.Len(t, parts, 3)
	assert.Equal(t, word.EncodeLetter(-300), parts[1])
	assert.Empty(t, word.Empty.Split())
}

func TestCapacity(t *testing.T) {
	c := word.NewCodec(3)
	_, err := c.Encode(word.Word{1, 2, 3})
	require.NoError(t, err)
	_, err = c.Encode(word.Word{1, 2, 3, 4})
	assert.ErrorIs(t, err, word.ErrWordTooLong)
	assert.Panics(t, func() { c.MustEncode(word.Word{1, 2, 3, 4}) })
	assert.Panics(t, func() { word.NewCodec(0) })
}

func TestDecodeMalformed(t *testing.T) {
	_, err := word.DecodeChecked(word.Key([]byte{0x80}))
	assert.ErrorIs(t, err, word.ErrMalformedKey)
	assert.Panics(t, func() { word.Decode(word.Key([]byte{0xff, 0xff})) })
}

func TestCompare(t *testing.T) {
	nat := word.Natural{}
	assert.Equal(t, -1, word.Compare(word.Word{1, 2}, word.Word{1, 3}, nat))
	assert.Equal(t, -1, word.Compare(word.Word{1, 2}, word.Word{1, 2, 0}, nat))
	assert.Equal(t, 0, word.Compare(word.Word{4}, word.Word{4}, nat))
	assert.Equal(t, 1, word.Compare(word.Word{1, 2}, word.Word{1, 3}, word.Reversed{}))
	byAbs := word.OrderFunc(func(a, b int) bool { return a*a < b*b })
	assert.Equal(t, -1, word.Compare(word.Word{-1}, word.Word{2}, byAbs))
}

func TestPlainParam(t *testing.T) {
	e := word.New(word.Word{1, 2}, word.Word{3, 4}, word.Word{1, 2})
	assert.Equal(t, 2, e.CoeffForKey(word.Encode(1, 2)))
	assert.Equal(t, "+2 (1, 2)\n+ (3, 4)", word.Format(e))

	w, err := word.Weight(e)
	require.NoError(t, err)
	assert.Equal(t, 2, w)

	_, err = word.Weight(e.Add(word.Single(7)))
	assert.Error(t, err)

	prod := word.Tensor(word.Single(1), word.Single(2, 3).Scale(2))
	assert.True(t, prod.Equal(word.Single(1, 2, 3).Scale(2)))
}

func TestWordString(t *testing.T) {
	assert.Equal(t, "(1, -2, 3)", word.Word{1, -2, 3}.String())
	assert.Equal(t, "()", word.Word{}.String())
	assert.Equal(t, "(7)", word.Encode(7).String())
}
