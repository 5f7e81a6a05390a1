package bencode

// ListTag selects how the decoder tags a bencode list when materializing it.
type ListTag int

const (
	// ListPlain decodes lists as []any — the default.
	ListPlain ListTag = iota
	// ListTuple decodes lists as Tuple, signaling "decoder produced this"
	// to callers that want to treat the result as an immutable sequence.
	ListTuple
)

// TextMode selects whether byte-string payloads are transcoded at the
// decode/encode boundary.
type TextMode int

const (
	// TextOff leaves byte strings as raw []byte (decode) and accepts
	// []byte or string as raw bytes with no validation (encode).
	TextOff TextMode = iota
	// TextUTF8 transcodes byte strings to Go string on decode (failing
	// with ErrTranscodingError on invalid UTF-8) and, on encode,
	// validates string values as UTF-8 before emission.
	TextUTF8
)

// Options configures a Decoder or Encoder. The zero value is not
// DefaultOptions: its MaxDepth, MaxStringLen and MaxIntegerDigits are all 0,
// so start from DefaultOptions and override individual fields.
type Options struct {
	// ListTag selects List vs TupleList decoding. Unused by Encoder.
	ListTag ListTag

	// Text selects UTF-8 transcoding mode for both Decoder and Encoder.
	Text TextMode

	// MaxDepth bounds list/dict nesting. Exceeding it fails with
	// ErrRecursionLimitExceeded rather than exhausting the goroutine
	// stack. Spec default is "≥ 1000, ≤ 100 in test mode".
	MaxDepth int

	// MaxStringLen bounds a single byte-string payload's declared
	// length, independent of how much data remains in the buffer.
	MaxStringLen int64

	// MaxIntegerDigits bounds the number of base-10 digits an integer
	// literal's body may have (sign excluded). Generous enough that the
	// reference suite's 1000-digit fixture decodes, but still bounded so
	// a pathological input can't force unbounded allocation.
	MaxIntegerDigits int
}

// DefaultOptions returns the Options used by the package-level Decode,
// DecodeAsTuple, DecodeUTF8, Encode, and EncodeUTF8 functions.
func DefaultOptions() Options {
	return Options{
		ListTag:          ListPlain,
		Text:             TextOff,
		MaxDepth:         1000,
		MaxStringLen:     1 << 30, // 1 GiB
		MaxIntegerDigits: 4096,
	}
}

// testOptions is used by this package's own tests, matching the reference
// suite's practice of lowering the recursion limit to exercise
// ErrRecursionLimitExceeded without a pathologically large fixture.
func testOptions() Options {
	o := DefaultOptions()
	o.MaxDepth = 100
	return o
}
