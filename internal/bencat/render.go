// Package bencat implements the subcommands behind the bencat command-line
// tool: decode, encode, and verify. It is the only part of this module that
// imports package bencode alongside logging and concurrency helpers — the
// codec package itself stays dependency-free. CLI flag parsing lives in
// cmd/bencat.
package bencat

import (
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/finch-dev/bencode/pkg/bencode"
)

// Render formats a decoded bencode value as indented, human-readable text.
// It recognizes every shape Decode can produce: *big.Int, []byte, string,
// []any, bencode.Tuple, and map[string]any.
func Render(v any) string {
	var b strings.Builder
	render(&b, v, 0)
	return b.String()
}

func render(b *strings.Builder, v any, depth int) {
	indent := strings.Repeat("  ", depth)

	switch x := v.(type) {
	case *big.Int:
		b.WriteString(x.String())
	case []byte:
		b.WriteString(quoteBytes(x))
	case string:
		b.WriteString(strconv.Quote(x))
	case bencode.Tuple:
		renderSeq(b, "tuple", []any(x), depth, indent)
	case []any:
		renderSeq(b, "list", x, depth, indent)
	case map[string]any:
		renderDict(b, x, depth, indent)
	default:
		fmt.Fprintf(b, "<unrecognized %T>", v)
	}
}

func renderSeq(b *strings.Builder, label string, xs []any, depth int, indent string) {
	if len(xs) == 0 {
		fmt.Fprintf(b, "%s()", label)
		return
	}

	fmt.Fprintf(b, "%s(\n", label)
	for _, v := range xs {
		b.WriteString(indent + "  ")
		render(b, v, depth+1)
		b.WriteString("\n")
	}
	b.WriteString(indent + ")")
}

func renderDict(b *strings.Builder, m map[string]any, depth int, indent string) {
	if len(m) == 0 {
		b.WriteString("dict()")
		return
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteString("dict(\n")
	for _, k := range keys {
		fmt.Fprintf(b, "%s  %s: ", indent, strconv.Quote(k))
		render(b, m[k], depth+1)
		b.WriteString("\n")
	}
	b.WriteString(indent + ")")
}

// quoteBytes renders a byte string the way a human reading decoded bencode
// output wants it: as a Go string literal when the bytes are printable, and
// as a hex dump otherwise (binary payloads like SHA-1 piece hashes are
// common in bencode and unreadable as text).
func quoteBytes(p []byte) string {
	if isPrintable(p) {
		return strconv.Quote(string(p))
	}
	return fmt.Sprintf("hex(%x)", p)
}

func isPrintable(p []byte) bool {
	for _, c := range p {
		if c < 0x20 || c >= 0x7f {
			return false
		}
	}
	return true
}
