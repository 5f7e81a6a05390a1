package bencode

import (
	"io"
	"math/big"
	"sort"
	"strconv"
	"unicode/utf8"
)

// Encoder writes canonical bencode values to an io.Writer.
//
// The zero value of Encoder is not usable; construct with NewEncoder.
type Encoder struct {
	w    io.Writer
	opts Options
}

// NewEncoder returns a new Encoder that writes to w under opts.
func NewEncoder(w io.Writer, opts Options) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the canonical bencode representation of v to the underlying
// writer.
//
// Supported value types: *big.Int, the signed/unsigned integer kinds, bool
// (coerced to 0/1), []byte, string, []any, Tuple, map[string]any, and
// *PreEncoded (spliced verbatim, unvalidated). In TextUTF8 mode, string
// values are validated as UTF-8 before emission; in TextOff mode they are
// emitted as raw bytes with no validation, matching how []byte is handled.
// map[string]any keys are always emitted sorted by raw byte value,
// regardless of iteration or insertion order. Any other type returns
// ErrTypeError.
func (e *Encoder) Encode(v any) error {
	return e.encode(v, 0)
}

func (e *Encoder) encode(v any, depth int) error {
	if depth > e.opts.MaxDepth {
		return recursionLimitf("nesting depth exceeded %d", e.opts.MaxDepth)
	}

	switch x := v.(type) {
	case *PreEncoded:
		_, err := e.w.Write(x.Data)
		return err
	case *big.Int:
		return e.encodeBigInt(x)
	case bool:
		if x {
			return e.encodeInt64(1)
		}
		return e.encodeInt64(0)
	case int:
		return e.encodeInt64(int64(x))
	case int8:
		return e.encodeInt64(int64(x))
	case int16:
		return e.encodeInt64(int64(x))
	case int32:
		return e.encodeInt64(int64(x))
	case int64:
		return e.encodeInt64(x)
	case uint:
		return e.encodeUint(uint64(x))
	case uint8:
		return e.encodeUint(uint64(x))
	case uint16:
		return e.encodeUint(uint64(x))
	case uint32:
		return e.encodeUint(uint64(x))
	case uint64:
		return e.encodeUint(x)
	case []byte:
		return e.encodeBytes(x)
	case string:
		return e.encodeStringValue(x)
	case Tuple:
		return e.encodeSlice([]any(x), depth)
	case []any:
		return e.encodeSlice(x, depth)
	case map[string]any:
		return e.encodeDict(x, depth)
	default:
		return typeErrorf("bencode: unsupported type %T", v)
	}
}

func (e *Encoder) encodeBigInt(n *big.Int) error {
	if _, err := e.w.Write([]byte{TokenInteger.Byte()}); err != nil {
		return err
	}
	if _, err := io.WriteString(e.w, n.String()); err != nil {
		return err
	}
	_, err := e.w.Write([]byte{TokenEnding.Byte()})
	return err
}

func (e *Encoder) encodeInt64(n int64) error {
	if _, err := e.w.Write([]byte{TokenInteger.Byte()}); err != nil {
		return err
	}

	var buf [32]byte
	b := strconv.AppendInt(buf[:0], n, 10)
	if _, err := e.w.Write(b); err != nil {
		return err
	}

	_, err := e.w.Write([]byte{TokenEnding.Byte()})
	return err
}

func (e *Encoder) encodeUint(u uint64) error {
	if _, err := e.w.Write([]byte{TokenInteger.Byte()}); err != nil {
		return err
	}

	var buf [32]byte
	b := strconv.AppendUint(buf[:0], u, 10)
	if _, err := e.w.Write(b); err != nil {
		return err
	}

	_, err := e.w.Write([]byte{TokenEnding.Byte()})
	return err
}

// encodeStringValue handles a Go string value. In TextOff mode it is raw
// bytes, same as []byte — Go has no separate bytes/text type split, so
// there's nothing to validate. In TextUTF8 mode it must actually be valid
// UTF-8, since that mode's whole point is round-tripping text.
func (e *Encoder) encodeStringValue(s string) error {
	if e.opts.Text == TextUTF8 && !utf8.ValidString(s) {
		return transcodingErrorf("string is not valid UTF-8")
	}
	return e.encodeBytes([]byte(s))
}

func (e *Encoder) encodeBytes(b []byte) error {
	var buf [20]byte
	n := strconv.AppendInt(buf[:0], int64(len(b)), 10)
	if _, err := e.w.Write(n); err != nil {
		return err
	}
	if _, err := e.w.Write([]byte{TokenStringSeparator.Byte()}); err != nil {
		return err
	}
	_, err := e.w.Write(b)
	return err
}

func (e *Encoder) encodeSlice(xs []any, depth int) error {
	if _, err := e.w.Write([]byte{TokenList.Byte()}); err != nil {
		return err
	}

	for _, v := range xs {
		if err := e.encode(v, depth+1); err != nil {
			return err
		}
	}

	_, err := e.w.Write([]byte{TokenEnding.Byte()})
	return err
}

// encodeDict writes a dictionary: 'd' <key><value> ... 'e'. Keys are sorted
// by raw byte value before emission — map[string]any's key type already
// guarantees a key is a byte string, so unlike the encoder this codec traces
// back to, there's no runtime "non-byte-string key" case to reject.
func (e *Encoder) encodeDict(m map[string]any, depth int) error {
	if _, err := e.w.Write([]byte{TokenDict.Byte()}); err != nil {
		return err
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := e.encodeBytes([]byte(k)); err != nil {
			return err
		}
		if err := e.encode(m[k], depth+1); err != nil {
			return err
		}
	}

	_, err := e.w.Write([]byte{TokenEnding.Byte()})
	return err
}
