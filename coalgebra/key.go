package coalgebra

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/katalvlaran/polylog/linear"
	"github.com/katalvlaran/polylog/word"
)

// Key is the canonical form of a sequence of word keys: every part is
// prefixed with its byte length.
type Key string

// Expr is a linear combination of co-monomials.
type Expr = linear.Linear[Key]

// NewKey joins parts into a co-key.
func NewKey(parts ...word.Key) Key {
	var buf []byte
	for _, p := range parts {
		buf = binary.AppendUvarint(buf, uint64(len(p)))
		buf = append(buf, p...)
	}
	return Key(buf)
}

// Parts splits k back into word keys. It panics with ErrMalformedKey on
// foreign input.
func (k Key) Parts() []word.Key {
	var ret []word.Key
	s := string(k)
	for len(s) > 0 {
		n, m := binary.Uvarint([]byte(s))
		if m <= 0 || uint64(len(s)-m) < n {
			panic(fmt.Errorf("%w: %q", ErrMalformedKey, string(k)))
		}
		ret = append(ret, word.Key(s[m:m+int(n)]))
		s = s[m+int(n):]
	}
	return ret
}

// Weight returns the total number of letters in k.
func (k Key) Weight() int {
	ret := 0
	for _, p := range k.Parts() {
		ret += p.Len()
	}
	return ret
}

// String renders k with plain word parts.
func (k Key) String() string {
	parts := k.Parts()
	s := make([]string, len(parts))
	for i, p := range parts {
		s[i] = p.String()
	}
	return strings.Join(s, " ∧ ")
}

// Param lifts a word flavour param to co-monomials: the object of a
// co-monomial is the list of its part objects. Parts are printed with Part
// and joined by Sep.
type Param[O any] struct {
	Part linear.Param[O, word.Key]
	Sep  string
}

func (p Param[O]) ObjectToKey(parts []O) Key {
	keys := make([]word.Key, len(parts))
	for i, o := range parts {
		keys[i] = p.Part.ObjectToKey(o)
	}
	return NewKey(keys...)
}

func (p Param[O]) KeyToObject(k Key) []O {
	keys := k.Parts()
	ret := make([]O, len(keys))
	for i, part := range keys {
		ret[i] = p.Part.KeyToObject(part)
	}
	return ret
}

func (p Param[O]) ObjectToString(parts []O) string {
	s := make([]string, len(parts))
	for i, o := range parts {
		s[i] = p.Part.ObjectToString(o)
	}
	return strings.Join(s, p.Sep)
}

// Plain prints co-monomials of integer words as "(1, 2) ∧ (3)".
var Plain = Param[word.Word]{Part: word.Plain{}, Sep: " ∧ "}

// Format renders e using Plain.
func Format(e Expr) string {
	return linear.Format[[]word.Word, Key](Plain, e)
}

// FormatWith renders e with parts printed by part.
func FormatWith[O any](part linear.Param[O, word.Key], e Expr) string {
	return linear.Format[[]O, Key](Param[O]{Part: part, Sep: " ∧ "}, e)
}
