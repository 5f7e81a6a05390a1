package bencode

// Tuple is a list produced by a Decoder configured with ListTag ==
// ListTuple. It carries the same elements a plain []any would; the distinct
// type exists purely so callers can tell "the decoder built this, don't
// mutate it" apart from a list literal they constructed themselves.
//
// Tuple encodes identically to []any: the wire format has no concept of
// tuple vs. list.
type Tuple []any

// PreEncoded wraps a byte sequence that is already valid bencode and should
// be spliced verbatim into an Encoder's output, bypassing re-encoding of
// whatever value it represents.
//
// This is the spec's "pre-encoded wrapper"; the Python implementation this
// codec traces back to calls the equivalent type Bencached. Typical use is a
// header or sub-structure repeated across many messages: encode it once,
// wrap the result, and reuse the wrapper everywhere that sub-structure
// recurs.
//
// The decoder never produces a PreEncoded value — it is purely a caller-side
// construction for the encoder.
type PreEncoded struct {
	Data []byte
}

// NewPreEncoded wraps data, which must already be a syntactically valid
// bencode message; this is not verified. NewPreEncoded copies data so the
// wrapper owns its payload independent of the caller's slice.
func NewPreEncoded(data []byte) *PreEncoded {
	return &PreEncoded{Data: append([]byte(nil), data...)}
}
