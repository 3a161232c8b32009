package linear_test

import (
	"testing"

	"github.com/katalvlaran/polylog/linear"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	e := terms("b", -1, "a", 2, "c", 1)
	assert.Equal(t, "+2 [a]\n- [b]\n+ [c]", linear.Format(sp, e))
	assert.Equal(t, "0", linear.Format(sp, linear.Linear[string]{}))
	assert.Equal(t, "+ [a]\n~ f(1)", linear.Format(sp, terms("a", 1).AnnotateWithFunction("f", 1)))
}

func TestObjectHelpers(t *testing.T) {
	e := linear.FromObjects(sp, "x", "y", "x")
	assert.Equal(t, 2, linear.Coeff(sp, e, "x"))

	linear.AddTo(sp, &e, "y", -1)
	assert.True(t, e.Equal(linear.Single(sp, "x").Scale(2)))

	doubled := linear.MappedSame(sp, e, func(s string) string { return s + s })
	assert.Equal(t, 2, doubled.CoeffForKey("xx"))

	seen := map[string]int{}
	linear.ForEach(sp, e, func(o string, c int) { seen[o] = c })
	assert.Equal(t, map[string]int{"x": 2}, seen)

	exp := linear.MappedExpanding(sp, e, func(o string) linear.Linear[string] {
		return linear.FromObjects(sp, o+"1", o+"2")
	})
	assert.Equal(t, 2, exp.CoeffForKey("x2"))

	assert.True(t, linear.Filtered(sp, exp, func(o string) bool { return o == "x1" }).Equal(terms("x1", 2)))

	ts := linear.SortedTerms(sp, exp)
	assert.Equal(t, "[x1]", ts[0].Text)
}
