package linear

import "fmt"

// OuterProduct returns the bilinear extension of fn:
//
//	(Σ a_i x_i) ⊗ (Σ b_j y_j) = Σ a_i b_j fn(x_i, y_j).
//
// Annotations are not carried over.
//
// Implementation:
//   - Stage 1: iterate every pair of terms (x_i, y_j).
//   - Stage 2: add a_i·b_j at fn(x_i, y_j); colliding keys cancel or merge.
//
// Complexity:
//   - Time O(|lhs|·|rhs|) calls to fn, Space O(|lhs|·|rhs|).
func OuterProduct[K1, K2, K3 comparable](lhs Linear[K1], rhs Linear[K2], fn func(K1, K2) K3) Linear[K3] {
	var ret Linear[K3]
	for k1, c1 := range lhs.data {
		for k2, c2 := range rhs.data {
			ret.AddToKey(fn(k1, k2), mulCoeff(c1, c2))
		}
	}
	return ret
}

// OuterProductExpanding is OuterProduct for a monomial product that yields an
// expression rather than a single monomial.
func OuterProductExpanding[K1, K2, K3 comparable](lhs Linear[K1], rhs Linear[K2], fn func(K1, K2) Linear[K3]) Linear[K3] {
	var ret Linear[K3]
	for k1, c1 := range lhs.data {
		for k2, c2 := range rhs.data {
			ret.Accumulate(fn(k1, k2).WithoutAnnotations(), mulCoeff(c1, c2))
		}
	}
	return ret
}

// OuterProductMany folds OuterProduct left to right. It panics with
// ErrEmptyProduct when exprs is empty.
func OuterProductMany[K comparable](exprs []Linear[K], fn func(K, K) K) Linear[K] {
	if len(exprs) == 0 {
		panic(fmt.Errorf("%w: OuterProductMany", ErrEmptyProduct))
	}
	ret := exprs[0].WithoutAnnotations()
	for _, e := range exprs[1:] {
		ret = OuterProduct(ret, e, fn)
	}
	return ret
}

// OuterProductExpandingMany folds OuterProductExpanding left to right.
func OuterProductExpandingMany[K comparable](exprs []Linear[K], fn func(K, K) Linear[K]) Linear[K] {
	if len(exprs) == 0 {
		panic(fmt.Errorf("%w: OuterProductExpandingMany", ErrEmptyProduct))
	}
	ret := exprs[0].WithoutAnnotations()
	for _, e := range exprs[1:] {
		ret = OuterProductExpanding(ret, e, fn)
	}
	return ret
}

// TensorProduct is OuterProduct with the flavour's own monomial concatenation.
func TensorProduct[K comparable](p TensorParam[K], lhs, rhs Linear[K]) Linear[K] {
	return OuterProduct(lhs, rhs, p.MonomTensorProduct)
}

// TensorProductMany folds TensorProduct left to right.
func TensorProductMany[K comparable](p TensorParam[K], exprs ...Linear[K]) Linear[K] {
	return OuterProductMany(exprs, p.MonomTensorProduct)
}
