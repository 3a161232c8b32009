package shuffle

import (
	"github.com/katalvlaran/polylog/linear"
	"github.com/katalvlaran/polylog/word"
)

// Product returns u ⧢ v. The shuffle of two empty words is the empty word.
//
// Implementation:
//   - Stage 1: decode both keys.
//   - Stage 2: recurse on the last letters, (ua ⧢ vb) = (ua ⧢ v)b + (u ⧢ vb)a,
//     with closed forms for small lengths when unrolling is enabled.
//
// Complexity:
//   - Time O(C(n+m, n)·(n+m)), Space O(C(n+m, n)) for |u| = n, |v| = m.
func Product(u, v word.Key, opts ...Option) word.Expr {
	o := buildOptions(opts)
	return product(word.Decode(u), word.Decode(v), o.Unrolled)
}

// ProductWords is Product on object form words.
func ProductWords(u, v word.Word, opts ...Option) word.Expr {
	o := buildOptions(opts)
	return product(u, v, o.Unrolled)
}

// ProductMany returns w1 ⧢ w2 ⧢ ... ⧢ wn folded left to right. The shuffle of
// no words is the identity: the empty word with coefficient 1.
//
// Implementation:
//   - Stage 1: start from the identity.
//   - Stage 2: shuffle each key into the running expression.
//
// Complexity:
//   - Time O(N!/(n1!...nk!)·N) for total length N, Space of the same order
//     as the result.
func ProductMany(keys []word.Key, opts ...Option) word.Expr {
	o := buildOptions(opts)
	ret := linear.SingleKey(word.Empty)
	for _, k := range keys {
		ret = productExpr(ret, linear.SingleKey(k), o.Unrolled)
	}
	return ret
}

// ProductExpr is the bilinear extension of Product to expressions.
// Annotations are not carried over.
func ProductExpr(lhs, rhs word.Expr, opts ...Option) word.Expr {
	o := buildOptions(opts)
	return productExpr(lhs, rhs, o.Unrolled)
}

// ProductExprMany folds ProductExpr left to right; no factors give the identity.
func ProductExprMany(exprs []word.Expr, opts ...Option) word.Expr {
	o := buildOptions(opts)
	ret := linear.SingleKey(word.Empty)
	for _, e := range exprs {
		ret = productExpr(ret, e, o.Unrolled)
	}
	return ret
}

// Power returns the n-fold shuffle power of e. Power(e, 0) is the identity.
func Power(e word.Expr, n int, opts ...Option) word.Expr {
	o := buildOptions(opts)
	ret := linear.SingleKey(word.Empty)
	for i := 0; i < n; i++ {
		ret = productExpr(ret, e, o.Unrolled)
	}
	return ret
}

func productExpr(lhs, rhs word.Expr, unrolled bool) word.Expr {
	return linear.OuterProductExpanding(lhs, rhs, func(a, b word.Key) word.Expr {
		switch {
		case a.IsEmpty():
			return linear.SingleKey(b)
		case b.IsEmpty():
			return linear.SingleKey(a)
		}
		return product(word.Decode(a), word.Decode(b), unrolled)
	})
}

// product splits on the last letters of u and v.
//
// Complexity:
//   - Time O(C(n+m, n)·(n+m)), Space O(n+m) recursion depth plus the result.
func product(u, v word.Word, unrolled bool) word.Expr {
	switch {
	case len(u) == 0:
		return linear.SingleKey(word.Encode(v...))
	case len(v) == 0:
		return linear.SingleKey(word.Encode(u...))
	}
	if unrolled {
		if ret, ok := unrolledProduct(u, v); ok {
			return ret
		}
	}
	a, b := u[len(u)-1], v[len(v)-1]
	ret := appendLetter(product(u, v[:len(v)-1], unrolled), b)
	ret.Accumulate(appendLetter(product(u[:len(u)-1], v, unrolled), a), 1)
	return ret
}

func appendLetter(e word.Expr, l int) word.Expr {
	suffix := word.EncodeLetter(l)
	return e.MappedKey(func(k word.Key) word.Key { return k + suffix })
}
