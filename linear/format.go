package linear

import (
	"fmt"
	"slices"
	"strings"
)

// ObjectTerm is a decoded term used for printing and inspection.
type ObjectTerm[O any] struct {
	Obj   O
	Coeff int
	Text  string
}

// SortedTerms decodes e and returns its terms sorted by their printed form.
func SortedTerms[O any, K comparable](p Param[O, K], e Linear[K]) []ObjectTerm[O] {
	ret := make([]ObjectTerm[O], 0, len(e.data))
	for k, c := range e.data {
		obj := p.KeyToObject(k)
		ret = append(ret, ObjectTerm[O]{Obj: obj, Coeff: c, Text: p.ObjectToString(obj)})
	}
	slices.SortFunc(ret, func(a, b ObjectTerm[O]) int { return strings.Compare(a.Text, b.Text) })
	return ret
}

// Format renders e one term per line as "+2 (1, 2)". The zero expression
// renders as "0". Non-empty annotations are appended after a "~" line.
func Format[O any, K comparable](p Param[O, K], e Linear[K]) string {
	if e.IsZero() {
		if e.ann.IsZero() {
			return "0"
		}
		return "0\n~ " + e.ann.String()
	}
	var sb strings.Builder
	for i, t := range SortedTerms(p, e) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(formatCoeff(t.Coeff))
		sb.WriteByte(' ')
		sb.WriteString(t.Text)
	}
	if !e.ann.IsZero() {
		sb.WriteString("\n~ ")
		sb.WriteString(e.ann.String())
	}
	return sb.String()
}

// String renders e with keys printed by fmt, sorted.
func (e Linear[K]) String() string {
	if e.IsZero() {
		return "0"
	}
	type line struct{ key, coeff string }
	lines := make([]line, 0, len(e.data))
	for k, c := range e.data {
		lines = append(lines, line{key: fmt.Sprintf("%v", k), coeff: formatCoeff(c)})
	}
	slices.SortFunc(lines, func(a, b line) int { return strings.Compare(a.key, b.key) })
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.coeff + " " + l.key
	}
	return strings.Join(out, "\n")
}

func formatCoeff(c int) string {
	switch c {
	case 1:
		return "+"
	case -1:
		return "-"
	}
	if c > 0 {
		return fmt.Sprintf("+%d", c)
	}
	return fmt.Sprintf("%d", c)
}
