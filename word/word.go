package word

import (
	"slices"
	"strconv"
	"strings"
)

// Word is the object form of a word monomial.
type Word []int

// String renders w as "(1, 2, 3)".
func (w Word) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, l := range w {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.Itoa(l))
	}
	sb.WriteByte(')')
	return sb.String()
}

// Equal reports whether w and other are the same sequence.
func (w Word) Equal(other Word) bool { return slices.Equal(w, other) }

// Clone returns a copy of w.
func (w Word) Clone() Word { return slices.Clone(w) }

// Compare orders words lexicographically under ord; a proper prefix is smaller.
// It returns -1, 0 or +1.
func Compare(a, b Word, ord Order) int {
	return CompareFunc(a, b, ord.Less)
}

// CompareFunc is Compare over any letter type.
func CompareFunc[T any](a, b []T, less func(x, y T) bool) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		switch {
		case less(a[i], b[i]):
			return -1
		case less(b[i], a[i]):
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}
