package shuffle_test

import (
	"testing"

	"github.com/katalvlaran/polylog/shuffle"
	"github.com/katalvlaran/polylog/word"
)

func benchmarkProduct(b *testing.B, unrolled bool) {
	u := word.Word{1, 2, 3, 4, 5}
	v := word.Word{6, 7, 8, 9, 10}
	opt := shuffle.WithUnrolled(unrolled)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = shuffle.ProductWords(u, v, opt)
	}
}

func BenchmarkProductUnrolled(b *testing.B)  { benchmarkProduct(b, true) }
func BenchmarkProductRecursive(b *testing.B) { benchmarkProduct(b, false) }
