package lyndon_test

import (
	"testing"

	"github.com/katalvlaran/polylog/lyndon"
	"github.com/katalvlaran/polylog/word"
)

func BenchmarkToBasis(b *testing.B) {
	var e word.Expr
	for _, w := range allWords(3, 6) {
		e.AddToKey(word.Encode(w...), 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = lyndon.ToBasis(e)
	}
}
