package linear

import "fmt"

// Single returns 1·obj.
func Single[O any, K comparable](p Param[O, K], obj O) Linear[K] {
	return SingleKey(p.ObjectToKey(obj))
}

// FromObjects returns the sum of objs.
func FromObjects[O any, K comparable](p Param[O, K], objs ...O) Linear[K] {
	var ret Linear[K]
	for _, o := range objs {
		ret.AddToKey(p.ObjectToKey(o), 1)
	}
	return ret
}

// Coeff returns the coefficient of obj in e.
func Coeff[O any, K comparable](p Param[O, K], e Linear[K], obj O) int {
	return e.CoeffForKey(p.ObjectToKey(obj))
}

// AddTo adds c·obj to e in place.
func AddTo[O any, K comparable](p Param[O, K], e *Linear[K], obj O, c int) {
	e.AddToKey(p.ObjectToKey(obj), c)
}

// ForEach calls fn with the decoded object of every term.
func ForEach[O any, K comparable](p Param[O, K], e Linear[K], fn func(obj O, c int)) {
	for k, c := range e.data {
		fn(p.KeyToObject(k), c)
	}
}

// Mapped maps every object through fn, re-encoding with the target param.
// Images that collide are merged. Annotations are preserved.
func Mapped[O1 any, K1 comparable, O2 any, K2 comparable](
	from Param[O1, K1], to Param[O2, K2], e Linear[K1], fn func(O1) O2,
) Linear[K2] {
	return MapKeys(e, func(k K1) K2 {
		return to.ObjectToKey(fn(from.KeyToObject(k)))
	})
}

// MappedSame is Mapped with the same param on both sides.
func MappedSame[O any, K comparable](p Param[O, K], e Linear[K], fn func(O) O) Linear[K] {
	return Mapped(p, p, e, fn)
}

// MappedExpanding replaces every object by the expression fn(obj), scaled by
// its coefficient.
func MappedExpanding[O any, K1, K2 comparable](p Param[O, K1], e Linear[K1], fn func(O) Linear[K2]) Linear[K2] {
	return MapKeysExpanding(e, func(k K1) Linear[K2] {
		return fn(p.KeyToObject(k))
	})
}

// Filtered keeps the terms whose object satisfies pred.
func Filtered[O any, K comparable](p Param[O, K], e Linear[K], pred func(O) bool) Linear[K] {
	return e.FilteredKey(func(k K) bool { return pred(p.KeyToObject(k)) })
}

// Homogeneous returns the common value of fn over the keys of e, e.g. the
// weight or dimension of every term. A zero expression yields 0. Mixed values
// produce an error wrapping ErrNotHomogeneous.
func Homogeneous[K comparable](e Linear[K], fn func(K) int) (int, error) {
	ret, first := 0, true
	for k := range e.data {
		v := fn(k)
		if first {
			ret, first = v, false
			continue
		}
		if v != ret {
			return 0, fmt.Errorf("%w: %d vs %d", ErrNotHomogeneous, ret, v)
		}
	}
	return ret, nil
}
