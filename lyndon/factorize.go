package lyndon

import (
	"github.com/katalvlaran/polylog/word"
)

// Factorize returns the Lyndon factors L1 >= L2 >= ... >= Lk of w, whose
// concatenation is w. The empty word has no factors. The returned slices alias w.
//
// Implementation:
//   - Stage 1: Duval's scan keeps the current factor start, a comparison
//     index k and a lookahead m over w.
//   - Stage 2: when w[m] < w[k] (or w ends) the repeated prefix is cut into
//     factors of length m-k and the scan restarts after them.
//
// Complexity:
//   - Time O(n) comparisons, Space O(1) beyond the result.
func Factorize[T any](w []T, less func(a, b T) bool) [][]T {
	var ret [][]T
	n := len(w)
	start, k, m := 0, 0, 1
	for k < n {
		switch {
		case m >= n || less(w[m], w[k]):
			l := m - k
			ret = append(ret, w[start:start+l])
			start += l
			k, m = start, start+1
		case less(w[k], w[m]):
			k = start
			m++
		default:
			k++
			m++
		}
	}
	if start < n {
		ret = append(ret, w[start:n])
	}
	return ret
}

// FactorizeWord is Factorize on integer words.
func FactorizeWord(w word.Word, ord word.Order) []word.Word {
	parts := Factorize([]int(w), ord.Less)
	ret := make([]word.Word, len(parts))
	for i, p := range parts {
		ret[i] = word.Word(p)
	}
	return ret
}

// IsLyndon reports whether w is strictly smaller than each of its proper
// non-empty suffixes. The empty word is considered Lyndon.
func IsLyndon[T any](w []T, less func(a, b T) bool) bool {
	for i := 1; i < len(w); i++ {
		if word.CompareFunc(w, w[i:], less) >= 0 {
			return false
		}
	}
	return true
}

// Words returns all Lyndon words of length n over the alphabet {0, ..., k-1}
// in increasing lexicographic order. Words(k, 0) holds just the empty word.
func Words(k, n int) []word.Word {
	if n == 0 {
		return []word.Word{{}}
	}
	if k <= 0 {
		return nil
	}
	var ret []word.Word
	// Duval's generation: iterate Lyndon words of length <= n in order.
	w := word.Word{0}
	for len(w) > 0 {
		if len(w) == n {
			ret = append(ret, w.Clone())
		}
		m := len(w)
		for len(w) < n {
			w = append(w, w[len(w)-m])
		}
		for len(w) > 0 && w[len(w)-1] == k-1 {
			w = w[:len(w)-1]
		}
		if len(w) > 0 {
			w[len(w)-1]++
		}
	}
	return ret
}
