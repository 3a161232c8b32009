package word

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// DefaultMaxLen is the word capacity of DefaultCodec.
const DefaultMaxLen = 16

// Key is the canonical hashable form of a word.
type Key string

// Empty is the key of the empty word.
const Empty Key = ""

// Codec encodes words into keys with a length limit.
type Codec struct {
	MaxLen int
}

// DefaultCodec is the codec used by the Plain param.
var DefaultCodec = Codec{MaxLen: DefaultMaxLen}

// NewCodec returns a codec with capacity maxLen. It panics with ErrBadCapacity
// if maxLen is not positive.
func NewCodec(maxLen int) Codec {
	if maxLen <= 0 {
		panic(fmt.Errorf("%w: %d", ErrBadCapacity, maxLen))
	}
	return Codec{MaxLen: maxLen}
}

// Encode returns the key of w, or ErrWordTooLong if w exceeds the capacity.
func (c Codec) Encode(w Word) (Key, error) {
	if len(w) > c.MaxLen {
		return Empty, fmt.Errorf("%w: %d letters, capacity %d", ErrWordTooLong, len(w), c.MaxLen)
	}
	return encode(w), nil
}

// MustEncode is Encode that panics on error.
func (c Codec) MustEncode(w Word) Key {
	k, err := c.Encode(w)
	if err != nil {
		panic(err)
	}
	return k
}

// Encode encodes w without a capacity check.
func Encode(w ...int) Key { return encode(w) }

func encode(w []int) Key {
	buf := make([]byte, 0, len(w)*2)
	for _, l := range w {
		buf = binary.AppendVarint(buf, int64(l))
	}
	return Key(buf)
}

// EncodeLetter returns the key of the one-letter word (l).
func EncodeLetter(l int) Key {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutVarint(buf[:], int64(l))
	return Key(buf[:n])
}

// Decode returns the word of k. It panics with ErrMalformedKey on input not
// produced by this package.
func Decode(k Key) Word {
	w, err := DecodeChecked(k)
	if err != nil {
		panic(err)
	}
	return w
}

// DecodeChecked is Decode that reports malformed keys as an error.
func DecodeChecked(k Key) (Word, error) {
	w := make(Word, 0, len(k))
	s := []byte(k)
	for len(s) > 0 {
		v, n := binary.Varint(s)
		if n <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedKey, string(k))
		}
		w = append(w, int(v))
		s = s[n:]
	}
	return w, nil
}

// Len returns the number of letters in k.
func (k Key) Len() int {
	n := 0
	for i := 0; i < len(k); i++ {
		if k[i] < 0x80 {
			n++
		}
	}
	return n
}

// Weight is Len; it lets word keys take part in generic weight checks.
func (k Key) Weight() int { return k.Len() }

// IsEmpty reports whether k is the empty word.
func (k Key) IsEmpty() bool { return k == Empty }

// Split returns the key of every letter of k, in order.
func (k Key) Split() []Key {
	ret := make([]Key, 0, len(k))
	start := 0
	for i := 0; i < len(k); i++ {
		if k[i] < 0x80 {
			ret = append(ret, k[start:i+1])
			start = i + 1
		}
	}
	return ret
}

// String renders k as its decoded word.
func (k Key) String() string { return Decode(k).String() }

// Concat returns the key of the concatenation of the given words.
func Concat(keys ...Key) Key {
	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(string(k))
	}
	return Key(sb.String())
}

// Append returns the key of k followed by letter l.
func Append(k Key, l int) Key { return k + EncodeLetter(l) }
