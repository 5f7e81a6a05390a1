package bencode

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the four failure kinds a codec operation can
// return. Callers classify a failure with errors.Is, not by inspecting
// message text.
var (
	// ErrMalformedInput covers every syntax or canonicalization violation
	// the decoder can find: bad integers, bad string lengths, disordered
	// or duplicate dict keys, truncated containers, trailing bytes.
	ErrMalformedInput = errors.New("bencode: malformed input")

	// ErrTypeError covers values the codec does not accept: an
	// unsupported Go kind passed to Encode, or a map whose key type is
	// not string. A string that fails UTF-8 validation in TextUTF8 mode
	// is reported as ErrTranscodingError, not ErrTypeError.
	ErrTypeError = errors.New("bencode: type error")

	// ErrRecursionLimitExceeded means nesting depth exceeded the
	// configured Options.MaxDepth during decode or encode.
	ErrRecursionLimitExceeded = errors.New("bencode: recursion limit exceeded")

	// ErrTranscodingError covers UTF-8 mode failures: bytes that are not
	// valid UTF-8 on decode, or (symmetrically, though this never
	// triggers for true UTF-8 text) text that cannot be re-encoded.
	ErrTranscodingError = errors.New("bencode: transcoding error")
)

// malformed wraps msg under ErrMalformedInput.
func malformed(msg string) error {
	return fmt.Errorf("%s: %w", msg, ErrMalformedInput)
}

// malformedf is malformed with Sprintf-style formatting.
func malformedf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrMalformedInput)...)
}

// typeErrorf wraps a formatted message under ErrTypeError.
func typeErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrTypeError)...)
}

// recursionLimitf wraps a formatted message under ErrRecursionLimitExceeded.
func recursionLimitf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrRecursionLimitExceeded)...)
}

// transcodingErrorf wraps a formatted message under ErrTranscodingError.
func transcodingErrorf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrTranscodingError)...)
}
