// Package bencode implements a strict, canonical codec for the Bencode wire
// format used by BitTorrent metainfo and related systems: signed integers of
// arbitrary magnitude, byte strings, ordered lists, and dictionaries with
// byte-string keys sorted by raw byte value.
//
// Decode is single-pass and rejects anything that isn't already canonical —
// leading zeros, negative zero, disordered or duplicate dict keys, and
// trailing bytes after the top-level value all fail. Encode always produces
// the unique canonical byte sequence for a given value: minimal integer and
// length representations, dict keys sorted by raw bytes regardless of
// insertion order.
//
// Both Decode and Encode are pure functions of their input: no I/O, no
// shared state, safe to call from any number of goroutines at once over
// disjoint buffers.
package bencode

import (
	"bytes"
	"io"
)

// Decode parses a single complete bencode value from data, decoding lists as
// []any and byte strings as []byte. It fails if data is malformed or has
// trailing bytes after the top-level value.
func Decode(data []byte) (any, error) {
	return Unmarshal(data, DefaultOptions())
}

// DecodeAsTuple is Decode, except lists are decoded as Tuple instead of
// []any.
func DecodeAsTuple(data []byte) (any, error) {
	opts := DefaultOptions()
	opts.ListTag = ListTuple
	return Unmarshal(data, opts)
}

// DecodeUTF8 is Decode, except byte strings are transcoded from UTF-8 into
// Go string values. A byte string that is not valid UTF-8 fails decoding
// with ErrTranscodingError.
func DecodeUTF8(data []byte) (any, error) {
	opts := DefaultOptions()
	opts.Text = TextUTF8
	return Unmarshal(data, opts)
}

// Encode returns the canonical bencode encoding of v.
//
// Accepted kinds: *big.Int and the built-in signed/unsigned integer types,
// bool (coerced to integer 0/1), []byte, string (treated as raw bytes),
// []any, Tuple, map[string]any (keys sorted by raw byte value on output),
// and *PreEncoded (spliced in verbatim). Anything else fails with
// ErrTypeError.
func Encode(v any) ([]byte, error) {
	return Marshal(v, DefaultOptions())
}

// EncodeUTF8 is Encode, except string values must be valid UTF-8 — they are
// validated, not just passed through as raw bytes, which is the symmetric
// counterpart of DecodeUTF8's transcoding.
func EncodeUTF8(v any) ([]byte, error) {
	opts := DefaultOptions()
	opts.Text = TextUTF8
	return Marshal(v, opts)
}

// Unmarshal parses a single complete bencode value from data under opts and
// enforces the exact-consumption invariant: any byte beyond the end of the
// top-level value is a hard error.
func Unmarshal(data []byte, opts Options) (any, error) {
	d := NewDecoder(data, opts)

	v, err := d.Decode()
	if err != nil {
		return nil, err
	}

	if _, err := d.r.Peek(1); err == nil {
		return nil, malformed("trailing data after top-level value")
	} else if err != io.EOF {
		return nil, err
	}

	return v, nil
}

// Marshal returns the canonical bencode encoding of v under opts.
func Marshal(v any, opts Options) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts)

	if err := e.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
