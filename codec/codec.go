package codec

import (
	"fmt"
	"slices"

	"github.com/gogo/protobuf/proto"

	"github.com/katalvlaran/polylog/coalgebra"
	"github.com/katalvlaran/polylog/linear"
	"github.com/katalvlaran/polylog/word"
)

// Marshal encodes a word expression together with its annotations.
func Marshal(e word.Expr) ([]byte, error) {
	b, err := proto.Marshal(FromExpr(e))
	if err != nil {
		return nil, fmt.Errorf("codec: Marshal: %w", err)
	}
	return b, nil
}

// Unmarshal decodes bytes produced by Marshal.
func Unmarshal(b []byte) (word.Expr, error) {
	var m Expression
	if err := proto.Unmarshal(b, &m); err != nil {
		return word.Expr{}, fmt.Errorf("codec: Unmarshal: %w", err)
	}
	return ToExpr(&m)
}

// MarshalCo encodes a co-product expression together with its annotations.
func MarshalCo(e coalgebra.Expr) ([]byte, error) {
	b, err := proto.Marshal(FromCoExpr(e))
	if err != nil {
		return nil, fmt.Errorf("codec: MarshalCo: %w", err)
	}
	return b, nil
}

// UnmarshalCo decodes bytes produced by MarshalCo.
func UnmarshalCo(b []byte) (coalgebra.Expr, error) {
	var m Expression
	if err := proto.Unmarshal(b, &m); err != nil {
		return coalgebra.Expr{}, fmt.Errorf("codec: UnmarshalCo: %w", err)
	}
	return ToCoExpr(&m)
}

// FromExpr converts e to a message. Terms are sorted by key.
func FromExpr(e word.Expr) *Expression {
	keys := e.Keys()
	slices.Sort(keys)
	m := &Expression{Terms: make([]*Term, 0, len(keys))}
	for _, k := range keys {
		m.Terms = append(m.Terms, &Term{
			Parts: []*Word{fromKey(k)},
			Coeff: int64(e.CoeffForKey(k)),
		})
	}
	m.Annotations = fromAnnotations(e.Annotations())
	return m
}

// ToExpr converts a message back to an expression. Repeated keys
// accumulate.
func ToExpr(m *Expression) (word.Expr, error) {
	if m.Coproduct {
		return word.Expr{}, fmt.Errorf("%w: got a co-product, want a word expression", ErrKindMismatch)
	}
	var ret word.Expr
	for i, t := range m.Terms {
		if len(t.Parts) != 1 {
			return word.Expr{}, fmt.Errorf("%w: term %d has %d parts", ErrMalformed, i, len(t.Parts))
		}
		k, err := toKey(t.Parts[0])
		if err != nil {
			return word.Expr{}, fmt.Errorf("%w: term %d: %w", ErrMalformed, i, err)
		}
		if t.Coeff == 0 {
			return word.Expr{}, fmt.Errorf("%w: term %d has zero coefficient", ErrMalformed, i)
		}
		ret.AddToKey(k, int(t.Coeff))
	}
	return ret.CopyAnnotations(toAnnotations(m.Annotations)), nil
}

// FromCoExpr converts a co-product expression to a message.
func FromCoExpr(e coalgebra.Expr) *Expression {
	keys := e.Keys()
	slices.Sort(keys)
	m := &Expression{Terms: make([]*Term, 0, len(keys)), Coproduct: true}
	for _, k := range keys {
		parts := k.Parts()
		t := &Term{Parts: make([]*Word, len(parts)), Coeff: int64(e.CoeffForKey(k))}
		for i, p := range parts {
			t.Parts[i] = fromKey(p)
		}
		m.Terms = append(m.Terms, t)
	}
	m.Annotations = fromAnnotations(e.Annotations())
	return m
}

// ToCoExpr converts a message back to a co-product expression.
func ToCoExpr(m *Expression) (coalgebra.Expr, error) {
	if !m.Coproduct {
		return coalgebra.Expr{}, fmt.Errorf("%w: got a word expression, want a co-product", ErrKindMismatch)
	}
	var ret coalgebra.Expr
	for i, t := range m.Terms {
		if len(t.Parts) == 0 {
			return coalgebra.Expr{}, fmt.Errorf("%w: term %d has no parts", ErrMalformed, i)
		}
		if t.Coeff == 0 {
			return coalgebra.Expr{}, fmt.Errorf("%w: term %d has zero coefficient", ErrMalformed, i)
		}
		parts := make([]word.Key, len(t.Parts))
		for j, p := range t.Parts {
			k, err := toKey(p)
			if err != nil {
				return coalgebra.Expr{}, fmt.Errorf("%w: term %d part %d: %w", ErrMalformed, i, j, err)
			}
			parts[j] = k
		}
		ret.AddToKey(coalgebra.NewKey(parts...), int(t.Coeff))
	}
	return ret.CopyAnnotations(toAnnotations(m.Annotations)), nil
}

func fromKey(k word.Key) *Word {
	w := word.Decode(k)
	ret := &Word{Letters: make([]int64, len(w))}
	for i, l := range w {
		ret.Letters[i] = int64(l)
	}
	return ret
}

// toKey accepts words of any length, so every expression Marshal can
// write is readable again.
func toKey(m *Word) (word.Key, error) {
	if m == nil {
		return word.Empty, nil
	}
	w := make([]int, len(m.Letters))
	for i, l := range m.Letters {
		if int64(int(l)) != l {
			return word.Empty, fmt.Errorf("letter %d out of range", l)
		}
		w[i] = int(l)
	}
	return word.Encode(w...), nil
}

func fromAnnotations(a linear.Annotations) []*Annotation {
	list := a.List()
	if len(list) == 0 {
		return nil
	}
	ret := make([]*Annotation, len(list))
	for i, entry := range list {
		ret[i] = &Annotation{Text: entry.Text, Coeff: int64(entry.Coeff)}
	}
	return ret
}

func toAnnotations(ms []*Annotation) linear.Annotations {
	entries := make([]linear.Annotation, 0, len(ms))
	for _, m := range ms {
		entries = append(entries, linear.Annotation{Text: m.Text, Coeff: int(m.Coeff)})
	}
	return linear.NewAnnotations(entries...)
}
