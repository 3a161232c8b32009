package linear

import (
	"fmt"
	"iter"
	"maps"
	"math"
)

// SingleKey returns 1·key.
func SingleKey[K comparable](key K) Linear[K] {
	return Linear[K]{data: map[K]int{key: 1}}
}

// FromKeys returns the sum of the given keys, repetitions accumulating.
func FromKeys[K comparable](keys ...K) Linear[K] {
	var ret Linear[K]
	for _, k := range keys {
		ret.AddToKey(k, 1)
	}
	return ret
}

// FromTerms builds an expression from explicit (key, coefficient) pairs.
// Coefficients of equal keys are summed and zero sums dropped.
func FromTerms[K comparable](terms ...Term[K]) Linear[K] {
	var ret Linear[K]
	for _, t := range terms {
		ret.AddToKey(t.Key, t.Coeff)
	}
	return ret
}

// CoeffForKey returns the coefficient of key, 0 if absent.
func (e Linear[K]) CoeffForKey(key K) int { return e.data[key] }

// AddToKey adds c to the coefficient of key, removing the entry if it cancels.
func (e *Linear[K]) AddToKey(key K, c int) {
	if c == 0 {
		return
	}
	if e.data == nil {
		e.data = make(map[K]int)
	}
	v := addCoeff(e.data[key], c)
	if v == 0 {
		delete(e.data, key)
		return
	}
	e.data[key] = v
}

// Accumulate adds scalar·other into e in place, annotations included.
//
// Implementation:
//   - Stage 1: add scalar·c to every key of other, dropping zeros.
//   - Stage 2: merge the annotations with the same scalar.
//
// Complexity:
//   - Time O(|other|) amortized map operations, Space O(|other|).
//
// Notes:
//   - Panics with ErrCoeffOverflow when a coefficient leaves the int range.
func (e *Linear[K]) Accumulate(other Linear[K], scalar int) {
	if scalar == 0 {
		return
	}
	for k, c := range other.data {
		e.AddToKey(k, mulCoeff(c, scalar))
	}
	e.ann.accumulate(other.ann, scalar)
}

// Add returns e + other.
func (e Linear[K]) Add(other Linear[K]) Linear[K] {
	ret := e.Clone()
	ret.Accumulate(other, 1)
	return ret
}

// Sub returns e - other.
func (e Linear[K]) Sub(other Linear[K]) Linear[K] {
	ret := e.Clone()
	ret.Accumulate(other, -1)
	return ret
}

// Scale returns c·e. Scaling by zero also clears annotations.
func (e Linear[K]) Scale(c int) Linear[K] {
	var ret Linear[K]
	ret.Accumulate(e, c)
	return ret
}

// Neg returns -e.
func (e Linear[K]) Neg() Linear[K] { return e.Scale(-1) }

// DivInt returns e/d, or an error wrapping ErrInexactDivision if some
// coefficient is not divisible by d. Annotations are kept unchanged.
//
// Notes:
//   - math.MinInt / -1 does not fit into int; it panics with ErrCoeffOverflow
//     like every other coefficient overflow.
//
// Complexity:
//   - Time O(n), Space O(n) for n terms.
func (e Linear[K]) DivInt(d int) (Linear[K], error) {
	if d == 0 {
		return Linear[K]{}, ErrDivisionByZero
	}
	ret := Linear[K]{ann: e.ann.clone()}
	for k, c := range e.data {
		if d == -1 && c == math.MinInt {
			panic(fmt.Errorf("%w: %d / %d", ErrCoeffOverflow, c, d))
		}
		if c%d != 0 {
			return Linear[K]{}, fmt.Errorf("%w: coefficient %d by %d", ErrInexactDivision, c, d)
		}
		ret.AddToKey(k, c/d)
	}
	return ret, nil
}

// MustDivInt is DivInt that panics on error. Use it when exactness is a
// mathematical certainty (e.g. dividing a shuffle by symmetry factorials).
func (e Linear[K]) MustDivInt(d int) Linear[K] {
	ret, err := e.DivInt(d)
	if err != nil {
		panic(err)
	}
	return ret
}

// IsZero reports whether e has no terms. Annotations are ignored.
func (e Linear[K]) IsZero() bool { return len(e.data) == 0 }

// NumTerms returns the number of non-zero terms.
func (e Linear[K]) NumTerms() int { return len(e.data) }

// L1Norm returns the sum of absolute values of coefficients.
func (e Linear[K]) L1Norm() int {
	var sum int
	for _, c := range e.data {
		if c < 0 {
			c = -c
		}
		sum = addCoeff(sum, c)
	}
	return sum
}

// ForEachKey calls fn for every term in unspecified order.
func (e Linear[K]) ForEachKey(fn func(key K, c int)) {
	for k, c := range e.data {
		fn(k, c)
	}
}

// All iterates over (key, coefficient) pairs in unspecified order.
func (e Linear[K]) All() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		for k, c := range e.data {
			if !yield(k, c) {
				return
			}
		}
	}
}

// Keys returns the keys of e in unspecified order.
func (e Linear[K]) Keys() []K {
	ret := make([]K, 0, len(e.data))
	for k := range e.data {
		ret = append(ret, k)
	}
	return ret
}

// Clone returns a deep copy of e.
func (e Linear[K]) Clone() Linear[K] {
	ret := Linear[K]{ann: e.ann.clone()}
	if e.data != nil {
		ret.data = maps.Clone(e.data)
	}
	return ret
}

// Equal reports whether e and other have identical terms.
// Annotations are not compared.
func (e Linear[K]) Equal(other Linear[K]) bool {
	return maps.Equal(e.data, other.data)
}

// MappedKey applies fn to every key, merging coefficients of colliding images.
// Annotations are preserved.
func (e Linear[K]) MappedKey(fn func(K) K) Linear[K] {
	return MapKeys(e, fn)
}

// MappedKeyExpanding replaces every key by the expression fn(key), scaled by
// the key's coefficient. Annotations are preserved.
func (e Linear[K]) MappedKeyExpanding(fn func(K) Linear[K]) Linear[K] {
	return MapKeysExpanding(e, fn)
}

// FilteredKey keeps only the terms whose key satisfies pred.
func (e Linear[K]) FilteredKey(pred func(K) bool) Linear[K] {
	ret := Linear[K]{ann: e.ann.clone()}
	for k, c := range e.data {
		if pred(k) {
			ret.AddToKey(k, c)
		}
	}
	return ret
}

// MapKeys is the cross-type variant of MappedKey.
func MapKeys[K1, K2 comparable](e Linear[K1], fn func(K1) K2) Linear[K2] {
	ret := Linear[K2]{ann: e.ann.clone()}
	for k, c := range e.data {
		ret.AddToKey(fn(k), c)
	}
	return ret
}

// MapKeysExpanding is the cross-type variant of MappedKeyExpanding.
// Annotations of the images are dropped; those of e are kept.
func MapKeysExpanding[K1, K2 comparable](e Linear[K1], fn func(K1) Linear[K2]) Linear[K2] {
	var ret Linear[K2]
	for k, c := range e.data {
		img := fn(k)
		for k2, c2 := range img.data {
			ret.AddToKey(k2, mulCoeff(c, c2))
		}
	}
	ret.ann = e.ann.clone()
	return ret
}

// Annotations returns the annotations attached to e.
func (e Linear[K]) Annotations() Annotations { return e.ann }

// Annotate returns a copy of e with text added once to its annotations.
func (e Linear[K]) Annotate(text string) Linear[K] {
	ret := e.Clone()
	ret.ann.add(text, 1)
	return ret
}

// AnnotateWithFunction annotates e with "name(arg1,arg2,...)".
func (e Linear[K]) AnnotateWithFunction(name string, args ...any) Linear[K] {
	return e.Annotate(FunctionName(name, args...))
}

// WithAnnotations returns a copy of e with a added to its annotations.
func (e Linear[K]) WithAnnotations(a Annotations) Linear[K] {
	ret := e.Clone()
	ret.ann.accumulate(a, 1)
	return ret
}

// CopyAnnotations returns a copy of e whose annotations are replaced by a.
func (e Linear[K]) CopyAnnotations(a Annotations) Linear[K] {
	ret := e.WithoutAnnotations()
	ret.ann = a.clone()
	return ret
}

// CopyAnnotationsMapped is CopyAnnotations with every text passed through fn.
func (e Linear[K]) CopyAnnotationsMapped(a Annotations, fn func(string) string) Linear[K] {
	return e.CopyAnnotations(a.Mapped(fn))
}

// WithoutAnnotations returns a copy of e with no annotations.
func (e Linear[K]) WithoutAnnotations() Linear[K] {
	ret := Linear[K]{}
	if e.data != nil {
		ret.data = maps.Clone(e.data)
	}
	return ret
}

// FunctionName renders "name(a,b,c)".
func FunctionName(name string, args ...any) string {
	s := name + "("
	for i, a := range args {
		if i > 0 {
			s += ","
		}
		s += fmt.Sprint(a)
	}
	return s + ")"
}
