package linear

// Param is the policy that ties a monomial flavour's semantic object form O to
// its canonical, comparable key form K.
//
// ObjectToKey and KeyToObject must be mutually inverse. ObjectToKey may panic
// on malformed objects (out-of-range letters, too long words): such input is a
// programming error, not an expected runtime condition.
type Param[O any, K comparable] interface {
	ObjectToKey(obj O) K
	KeyToObject(key K) O
	ObjectToString(obj O) string
}

// TensorParam is implemented by flavours whose monomials can be concatenated.
// MonomTensorProduct must be associative.
type TensorParam[K comparable] interface {
	MonomTensorProduct(lhs, rhs K) K
}

// WeightParam is implemented by flavours with a notion of weight (word length).
type WeightParam[O any] interface {
	ObjectWeight(obj O) int
}

// DimensionParam is implemented by flavours with a notion of dimension
// (e.g. the size of a Grassmannian minor).
type DimensionParam[O any] interface {
	ObjectDimension(obj O) int
}

// Linear is a sparse formal ℤ-linear combination of monomials keyed by K.
//
// Invariant: every stored coefficient is non-zero. The zero value is the zero
// expression and is ready to use.
//
// Linear has value semantics for every method that returns a Linear: the
// result owns fresh maps. Only AddToKey and Accumulate mutate the receiver;
// they exist for the "build a sum term by term" pattern.
type Linear[K comparable] struct {
	data map[K]int
	ann  Annotations
}

// Term is one (key, coefficient) pair of an expression.
type Term[K comparable] struct {
	Key   K
	Coeff int
}
