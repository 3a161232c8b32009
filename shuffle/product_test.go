package shuffle_test

import (
	"testing"

	"github.com/katalvlaran/polylog/linear"
	"github.com/katalvlaran/polylog/shuffle"
	"github.com/katalvlaran/polylog/word"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func w(letters ...int) word.Key { return word.Encode(letters...) }

func requireExprEqual(t *testing.T, want, got word.Expr) {
	t.Helper()
	require.True(t, want.Equal(got), "want:\n%s\ngot:\n%s", word.Format(want), word.Format(got))
}

func TestProductGoldens(t *testing.T) {
	cases := []struct {
		name string
		u, v word.Key
		want word.Expr
	}{
		{"empty_empty", w(), w(), word.Single()},
		{"empty_1", w(), w(5), word.Single(5)},
		{"1_1", w(1), w(2), word.New(word.Word{1, 2}, word.Word{2, 1})},
		{"2_1", w(1, 2), w(3), word.New(word.Word{1, 2, 3}, word.Word{1, 3, 2}, word.Word{3, 1, 2})},
		{"2_2", w(1, 2), w(3, 4), word.New(
			word.Word{1, 2, 3, 4}, word.Word{1, 3, 2, 4}, word.Word{1, 3, 4, 2},
			word.Word{3, 1, 2, 4}, word.Word{3, 1, 4, 2}, word.Word{3, 4, 1, 2},
		)},
		{"1_1_equal", w(7), w(7), word.Single(7, 7).Scale(2)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			requireExprEqual(t, tc.want, shuffle.Product(tc.u, tc.v))
			requireExprEqual(t, tc.want, shuffle.Product(tc.u, tc.v, shuffle.WithUnrolled(false)))
		})
	}
}

func TestProductThreeWords(t *testing.T) {
	want := linear.FromTerms(
		linear.Term[word.Key]{Key: w(0, 1, 0, 1, 0, 1), Coeff: 2},
		linear.Term[word.Key]{Key: w(0, 1, 0, 1, 1, 0), Coeff: 4},
		linear.Term[word.Key]{Key: w(0, 1, 1, 0, 0, 1), Coeff: 4},
		linear.Term[word.Key]{Key: w(0, 1, 1, 0, 1, 0), Coeff: 8},
		linear.Term[word.Key]{Key: w(0, 1, 1, 1, 0, 0), Coeff: 12},
		linear.Term[word.Key]{Key: w(1, 0, 0, 1, 0, 1), Coeff: 2},
		linear.Term[word.Key]{Key: w(1, 0, 0, 1, 1, 0), Coeff: 4},
		linear.Term[word.Key]{Key: w(1, 0, 1, 0, 0, 1), Coeff: 2},
		linear.Term[word.Key]{Key: w(1, 0, 1, 0, 1, 0), Coeff: 6},
		linear.Term[word.Key]{Key: w(1, 0, 1, 1, 0, 0), Coeff: 8},
		linear.Term[word.Key]{Key: w(1, 1, 0, 0, 1, 0), Coeff: 4},
		linear.Term[word.Key]{Key: w(1, 1, 0, 1, 0, 0), Coeff: 4},
	)
	words := []word.Key{w(0, 1, 0), w(1, 0), w(1)}
	requireExprEqual(t, want, shuffle.ProductMany(words))

	// any grouping and order gives the same sum
	reordered := []word.Key{w(1), w(0, 1, 0), w(1, 0)}
	requireExprEqual(t, want, shuffle.ProductMany(reordered))
	nested := shuffle.ProductExpr(
		linear.SingleKey(w(0, 1, 0)),
		shuffle.Product(w(1, 0), w(1)),
	)
	requireExprEqual(t, want, nested)
}

func TestProductManyEmpty(t *testing.T) {
	requireExprEqual(t, word.Single(), shuffle.ProductMany(nil))
	requireExprEqual(t, word.Single(3, 4), shuffle.ProductMany([]word.Key{w(3, 4)}))
}

// The table must agree with the recursion on every shape it covers.
func TestUnrolledMatchesRecursion(t *testing.T) {
	for n := 1; n < shuffle.MaxUnrolledLen; n++ {
		for m := 1; n+m <= shuffle.MaxUnrolledLen; m++ {
			distinctU := make(word.Word, n)
			distinctV := make(word.Word, m)
			repU := make(word.Word, n)
			repV := make(word.Word, m)
			for i := range distinctU {
				distinctU[i] = i + 1
				repU[i] = i % 2
			}
			for i := range distinctV {
				distinctV[i] = 100 + i
				repV[i] = (i + 1) % 2
			}
			for _, pair := range [][2]word.Word{{distinctU, distinctV}, {repU, repV}} {
				fast := shuffle.ProductWords(pair[0], pair[1])
				slow := shuffle.ProductWords(pair[0], pair[1], shuffle.WithUnrolled(false))
				require.True(t, fast.Equal(slow), "shape %d_%d %v %v", n, m, pair[0], pair[1])
			}
		}
	}
}

func TestProductCoefficientSum(t *testing.T) {
	binom := func(n, k int) int {
		return linear.Factorial(n) / (linear.Factorial(k) * linear.Factorial(n-k))
	}
	for n := 0; n <= 6; n++ {
		for m := 0; m <= 6; m++ {
			u := make(word.Word, n)
			v := make(word.Word, m)
			for i := range u {
				u[i] = i
			}
			for i := range v {
				v[i] = i
			}
			sum := 0
			shuffle.ProductWords(u, v).ForEachKey(func(_ word.Key, c int) {
				assert.Positive(t, c)
				sum += c
			})
			assert.Equal(t, binom(n+m, n), sum, "%d_%d", n, m)
		}
	}
}

func TestProductAssociative(t *testing.T) {
	a := linear.SingleKey(w(1, 2))
	b := linear.SingleKey(w(2, 3, 1))
	c := word.Single(4).Sub(word.Single(1, 1))
	left := shuffle.ProductExpr(shuffle.ProductExpr(a, b), c)
	right := shuffle.ProductExpr(a, shuffle.ProductExpr(b, c))
	requireExprEqual(t, left, right)
	requireExprEqual(t, shuffle.ProductExpr(a, b), shuffle.ProductExpr(b, a))
}

func TestProductLongWords(t *testing.T) {
	u := word.Word{1, 2, 3, 4, 5, 6}
	v := word.Word{7, 8, 9, 10, 11}
	got := shuffle.ProductWords(u, v)
	assert.Equal(t, 462, got.NumTerms())
	requireExprEqual(t, got, shuffle.ProductWords(u, v, shuffle.WithUnrolled(false)))
}

func TestPower(t *testing.T) {
	got := shuffle.Power(word.Single(1, 1), 3)
	requireExprEqual(t, word.Single(1, 1, 1, 1, 1, 1).Scale(15*6), got)
	requireExprEqual(t, word.Single(), shuffle.Power(word.Single(1, 1), 0))
}

func TestProductExprDropsAnnotations(t *testing.T) {
	got := shuffle.ProductExpr(word.Single(1).Annotate("x"), word.Single(2))
	assert.True(t, got.Annotations().IsZero())
}
