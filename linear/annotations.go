package linear

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Annotations is a signed multiset of human-readable strings describing how an
// expression was derived, e.g. "Lido4(1,2,3,4,5,6)".
//
// Annotations follow the expression through + and - (with sign) and through
// scalar multiplication (scaled), but they carry no semantic weight: Equal,
// IsZero and every algebraic result ignore them.
type Annotations struct {
	data map[string]int
}

// Annotation is one entry of an Annotations multiset.
type Annotation struct {
	Text  string
	Coeff int
}

// NewAnnotations builds a multiset from entries; repeated texts accumulate.
func NewAnnotations(entries ...Annotation) Annotations {
	var ret Annotations
	for _, entry := range entries {
		ret.add(entry.Text, entry.Coeff)
	}
	return ret
}

// IsZero reports whether there are no annotations.
func (a Annotations) IsZero() bool { return len(a.data) == 0 }

// Len returns the number of distinct annotation strings.
func (a Annotations) Len() int { return len(a.data) }

// Coeff returns the multiplicity of text (0 if absent).
func (a Annotations) Coeff(text string) int { return a.data[text] }

// List returns all annotations sorted by text.
func (a Annotations) List() []Annotation {
	keys := slices.Sorted(maps.Keys(a.data))
	ret := make([]Annotation, 0, len(keys))
	for _, k := range keys {
		ret = append(ret, Annotation{Text: k, Coeff: a.data[k]})
	}
	return ret
}

// Mapped returns a copy with every annotation text replaced by fn(text).
func (a Annotations) Mapped(fn func(string) string) Annotations {
	var ret Annotations
	for text, c := range a.data {
		ret.add(fn(text), c)
	}
	return ret
}

// String renders the annotations as a one-liner: "A + 2 B - C".
func (a Annotations) String() string {
	var sb strings.Builder
	for i, entry := range a.List() {
		c := entry.Coeff
		switch {
		case i == 0 && c == 1:
		case i == 0 && c == -1:
			sb.WriteString("-")
		case i == 0:
			fmt.Fprintf(&sb, "%d ", c)
		case c == 1:
			sb.WriteString(" + ")
		case c == -1:
			sb.WriteString(" - ")
		case c > 0:
			fmt.Fprintf(&sb, " + %d ", c)
		default:
			fmt.Fprintf(&sb, " - %d ", -c)
		}
		sb.WriteString(entry.Text)
	}
	return sb.String()
}

func (a *Annotations) add(text string, c int) {
	if c == 0 {
		return
	}
	if a.data == nil {
		a.data = make(map[string]int)
	}
	v := addCoeff(a.data[text], c)
	if v == 0 {
		delete(a.data, text)
		return
	}
	a.data[text] = v
}

// accumulate adds scalar*other into a.
func (a *Annotations) accumulate(other Annotations, scalar int) {
	if scalar == 0 {
		return
	}
	for text, c := range other.data {
		a.add(text, mulCoeff(c, scalar))
	}
}

func (a Annotations) clone() Annotations {
	if a.data == nil {
		return Annotations{}
	}
	return Annotations{data: maps.Clone(a.data)}
}
