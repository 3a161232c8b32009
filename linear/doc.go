// Package linear implements sparse formal ℤ-linear combinations of monomials.
//
// A Linear[K] maps a canonical monomial key K to a non-zero integer
// coefficient. Keys are produced from a semantic object form by a Param
// policy (one per monomial flavour), so the same container serves plain
// integer words, Grassmannian minors, co-products and anything else that
// has a comparable canonical encoding.
//
// What lives here:
//
//	Linear[K]     - the container: AddToKey, Add, Sub, Scale, Neg, DivInt,
//	                IsZero, NumTerms, L1Norm, ForEachKey, MappedKey, FilteredKey.
//	Annotations   - a signed multiset of human-readable provenance strings.
//	                Annotations never take part in Equal or in any algebra.
//	Param[O, K]   - object <-> key bijection plus printing.
//	Single, Mapped, MappedExpanding, Filtered, ForEach
//	              - object-level helpers parameterized by a Param.
//	OuterProduct, OuterProductExpanding, TensorProduct
//	              - bilinear extensions of a monomial product.
//
// Coefficients are exact Go ints. Overflow is never silently wrapped: it
// panics with ErrCoeffOverflow, the same way other invariant violations do.
//
// Concurrency: a Linear is a plain value with no hidden shared state. Distinct
// values may be used from different goroutines freely; a single value must not
// be mutated (AddToKey, Accumulate) concurrently with any other access.
//
// Quick example:
//
//	e := linear.SingleKey("a").Add(linear.SingleKey("b").Scale(3))
//	e.CoeffForKey("b") // 3
package linear
