package bencode

import (
	"bufio"
	"bytes"
	"io"
	"math/big"
	"strconv"
	"unicode/utf8"
)

// maxLengthDigits bounds the number of base-10 digits a byte-string length
// prefix may have, independent of Options.MaxStringLen. It exists so a
// pathological length prefix (hundreds of digits) fails fast instead of
// being handed to a parser.
const maxLengthDigits = 19

// Token identifies syntactic markers in the bencode stream.
type Token byte

// Byte returns the wire byte for t.
func (t Token) Byte() byte { return byte(t) }

const (
	// TokenDict begins a dictionary: 'd'
	TokenDict Token = 'd'
	// TokenInteger begins an integer: 'i'
	TokenInteger Token = 'i'
	// TokenEnding terminates a list, dictionary, or integer: 'e'
	TokenEnding Token = 'e'
	// TokenList begins a list: 'l'
	TokenList Token = 'l'
	// TokenStringSeparator separates a string length from its data ':'
	TokenStringSeparator Token = ':'
)

// Decoder reads a single bencoded value from an in-memory byte slice.
//
// A Decoder is safe for use by a single goroutine at a time; distinct
// Decoders over distinct buffers may run concurrently without coordination.
type Decoder struct {
	r    *bufio.Reader
	opts Options
}

// NewDecoder returns a Decoder reading data under opts. The Decoder is
// independent of data once constructed: every byte string it materializes
// is a fresh copy, never an alias into data's backing array.
func NewDecoder(data []byte, opts Options) *Decoder {
	return &Decoder{
		r:    bufio.NewReader(bytes.NewReader(data)),
		opts: opts,
	}
}

// Decode parses and returns the single bencoded value at the front of the
// input. It does not check for trailing data; callers that need the
// exact-consumption invariant should use Unmarshal, which wraps Decode with
// that check.
//
// Decode returns a value built from: *big.Int, []byte (or string, under
// TextUTF8 mode), []any (or Tuple, under ListTuple mode), and
// map[string]any. Decode never returns a *PreEncoded — that type exists only
// for the encoder.
func (d *Decoder) Decode() (any, error) { return d.decode(0) }

func (d *Decoder) decode(depth int) (any, error) {
	if depth > d.opts.MaxDepth {
		return nil, recursionLimitf("nesting depth exceeded %d", d.opts.MaxDepth)
	}

	b, err := d.r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return nil, malformed("unexpected end of input")
		}
		return nil, err
	}

	switch b {
	case TokenDict.Byte():
		return d.decodeDict(depth)
	case TokenList.Byte():
		return d.decodeList(depth)
	case TokenInteger.Byte():
		return d.decodeInteger()
	case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		if err := d.r.UnreadByte(); err != nil {
			return nil, err
		}
		return d.decodeString()
	default:
		return nil, malformedf("unexpected lead byte %q", b)
	}
}

// decodeDict parses a dictionary at nesting level depth and returns it as
// map[string]any. Keys must be byte-string literals and must appear in
// strictly ascending byte-lexicographic order; a key that is not greater
// than the previous one (duplicate or misordered) is rejected.
func (d *Decoder) decodeDict(depth int) (map[string]any, error) {
	dict := make(map[string]any, 8)

	haveLast := false
	var lastKey string

	for {
		next, err := d.r.Peek(1)
		if err != nil {
			if err == io.EOF {
				return nil, malformed("unterminated dict")
			}
			return nil, err
		}
		if next[0] == TokenEnding.Byte() {
			if _, err := d.r.ReadByte(); err != nil {
				return nil, err
			}
			return dict, nil
		}
		if next[0] < '0' || next[0] > '9' {
			return nil, malformed("dict key must be a byte-string literal")
		}

		key, err := d.decodeDictKey()
		if err != nil {
			return nil, err
		}
		if haveLast && lastKey >= key {
			return nil, malformed("dict keys must be strictly ascending")
		}
		lastKey, haveLast = key, true

		val, err := d.decode(depth + 1)
		if err != nil {
			return nil, err
		}
		dict[key] = val
	}
}

// decodeDictKey decodes a byte-string literal and returns it as a Go string
// regardless of the configured TextMode: a dict key is always used as a Go
// map key, so it is always materialized as string — there is no distinct
// "ByteString vs TextString" split for a key the way there is for a value.
func (d *Decoder) decodeDictKey() (string, error) {
	v, err := d.decodeString()
	if err != nil {
		return "", err
	}
	switch s := v.(type) {
	case string:
		return s, nil
	case []byte:
		return string(s), nil
	default:
		return "", malformed("dict key must be a byte-string literal")
	}
}

// decodeList parses a list at nesting level depth and returns it as []any,
// or as Tuple if the Decoder is configured with ListTag == ListTuple.
func (d *Decoder) decodeList(depth int) (any, error) {
	list := make([]any, 0)

	for {
		next, err := d.r.Peek(1)
		if err != nil {
			if err == io.EOF {
				return nil, malformed("unterminated list")
			}
			return nil, err
		}
		if next[0] == TokenEnding.Byte() {
			if _, err := d.r.ReadByte(); err != nil {
				return nil, err
			}
			break
		}

		v, err := d.decode(depth + 1)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}

	if d.opts.ListTag == ListTuple {
		return Tuple(list), nil
	}
	return list, nil
}

// decodeInteger parses an integer literal 'i' <digits> 'e', already past the
// leading 'i', and returns it as *big.Int with no magnitude limit beyond
// Options.MaxIntegerDigits.
func (d *Decoder) decodeInteger() (*big.Int, error) {
	raw, err := d.readUntil(TokenEnding.Byte())
	if err != nil {
		return nil, err
	}

	neg, digits, err := splitCanonicalDigits(raw, true)
	if err != nil {
		return nil, err
	}
	if len(digits) > d.opts.MaxIntegerDigits {
		return nil, malformedf("invalid integer: %d digits exceeds configured maximum", len(digits))
	}

	n := new(big.Int)
	if _, ok := n.SetString(string(digits), 10); !ok {
		return nil, malformed("invalid integer: unparsable digits")
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}

// decodeString parses a byte-string literal <len> ':' <bytes> and returns it
// as []byte, or as a UTF-8-validated string if the Decoder is configured
// with Text == TextUTF8.
func (d *Decoder) decodeString() (any, error) {
	n, err := d.readLength()
	if err != nil {
		return nil, err
	}
	if n > d.opts.MaxStringLen {
		return nil, malformedf("invalid string: length %d exceeds configured maximum", n)
	}
	if n == 0 {
		if d.opts.Text == TextUTF8 {
			return "", nil
		}
		return []byte{}, nil
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, malformedf("read string: declared length %d exceeds remaining input", n)
	}

	if d.opts.Text == TextUTF8 {
		if !utf8.Valid(buf) {
			return nil, transcodingErrorf("byte string is not valid UTF-8")
		}
		return string(buf), nil
	}
	return buf, nil
}

// readLength reads the decimal length prefix of a byte-string literal,
// terminated by ':'. A sign is never permitted here (unlike in an 'i'
// literal). Input such as "-1:x" never reaches readLength: decode only
// dispatches to a byte string on a digit lead byte, so its default case
// rejects the '-'.
func (d *Decoder) readLength() (int64, error) {
	raw, err := d.readUntil(TokenStringSeparator.Byte())
	if err != nil {
		return 0, err
	}

	_, digits, err := splitCanonicalDigits(raw, false)
	if err != nil {
		return 0, err
	}
	if len(digits) > maxLengthDigits {
		return 0, malformed("invalid string: length has too many digits")
	}

	n, err := strconv.ParseInt(string(digits), 10, 64)
	if err != nil {
		return 0, malformedf("invalid string: length %q out of range", digits)
	}
	return n, nil
}

// readUntil reads and returns the bytes up to (excluding) delim, consuming
// delim from the stream. It has no size limit on the slice it returns — a
// giant integer literal is rejected by its own digit-count check, not by a
// fixed internal buffer size, so multi-hundred-digit integers still decode.
func (d *Decoder) readUntil(delim byte) ([]byte, error) {
	raw, err := d.r.ReadBytes(delim)
	if err != nil {
		if err == io.EOF {
			return nil, malformed("unexpected end of input")
		}
		return nil, err
	}
	return raw[:len(raw)-1], nil
}

// splitCanonicalDigits validates the canonical-form rules shared by integer
// literals and length prefixes: no empty body, only digits after an
// optional sign, no leading zero unless the body is exactly "0", and (when
// allowSign) no negative zero and no lone '-'. It returns whether the body
// was negatively signed and the digit run with any sign stripped.
func splitCanonicalDigits(body []byte, allowSign bool) (neg bool, digits []byte, err error) {
	if len(body) == 0 {
		return false, nil, malformed("invalid integer: empty")
	}

	if body[0] == '-' {
		if !allowSign {
			return false, nil, malformed("invalid length: sign not allowed")
		}
		if len(body) == 1 {
			return false, nil, malformed("invalid integer: lone '-'")
		}
		digits, neg = body[1:], true
	} else {
		digits = body
	}

	for _, c := range digits {
		if c < '0' || c > '9' {
			return false, nil, malformed("invalid integer: non-digit character")
		}
	}

	if len(digits) > 1 && digits[0] == '0' {
		return false, nil, malformed("invalid integer: leading zero")
	}
	if neg && digits[0] == '0' {
		return false, nil, malformed("invalid integer: negative zero")
	}

	return neg, digits, nil
}
