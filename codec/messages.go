package codec

import "github.com/gogo/protobuf/proto"

// Word is a sequence of letters.
type Word struct {
	Letters []int64 `protobuf:"zigzag64,1,rep,packed,name=letters,proto3" json:"letters,omitempty"`
}

func (m *Word) Reset() { *m = Word{} }
func (m *Word) String() string { return proto.CompactTextString(m) }
func (*Word) ProtoMessage() {}

// Term is one monomial with its coefficient.
type Term struct {
	Parts []*Word `protobuf:"bytes,1,rep,name=parts,proto3" json:"parts,omitempty"`
	Coeff int64   `protobuf:"zigzag64,2,opt,name=coeff,proto3" json:"coeff,omitempty"`
}

func (m *Term) Reset() { *m = Term{} }
func (m *Term) String() string { return proto.CompactTextString(m) }
func (*Term) ProtoMessage() {}

// Annotation is one entry of an annotation multiset.
type Annotation struct {
	Text  string `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	Coeff int64  `protobuf:"zigzag64,2,opt,name=coeff,proto3" json:"coeff,omitempty"`
}

func (m *Annotation) Reset() { *m = Annotation{} }
func (m *Annotation) String() string { return proto.CompactTextString(m) }
func (*Annotation) ProtoMessage() {}

// Expression is a whole linear combination.
type Expression struct {
	Terms       []*Term       `protobuf:"bytes,1,rep,name=terms,proto3" json:"terms,omitempty"`
	Annotations []*Annotation `protobuf:"bytes,2,rep,name=annotations,proto3" json:"annotations,omitempty"`
	Coproduct   bool          `protobuf:"varint,3,opt,name=coproduct,proto3" json:"coproduct,omitempty"`
}

func (m *Expression) Reset() { *m = Expression{} }
func (m *Expression) String() string { return proto.CompactTextString(m) }
func (*Expression) ProtoMessage() {}

var (
	_ proto.Message = (*Word)(nil)
	_ proto.Message = (*Term)(nil)
	_ proto.Message = (*Annotation)(nil)
	_ proto.Message = (*Expression)(nil)
)
