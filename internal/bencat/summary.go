package bencat

import (
	"math/big"

	"github.com/finch-dev/bencode/pkg/bencode"
)

// Summary holds the decode-time statistics bencat reports alongside a
// rendered value.
type Summary struct {
	Depth    int
	NodeKind string
}

// Summarize walks v and reports its nesting depth and top-level kind.
func Summarize(v any) Summary {
	return Summary{Depth: depthOf(v), NodeKind: kindOf(v)}
}

func depthOf(v any) int {
	switch x := v.(type) {
	case bencode.Tuple:
		return 1 + maxChildDepth([]any(x))
	case []any:
		return 1 + maxChildDepth(x)
	case map[string]any:
		max := 0
		for _, child := range x {
			if d := depthOf(child); d > max {
				max = d
			}
		}
		return 1 + max
	default:
		return 0
	}
}

func maxChildDepth(xs []any) int {
	max := 0
	for _, v := range xs {
		if d := depthOf(v); d > max {
			max = d
		}
	}
	return max
}

func kindOf(v any) string {
	switch v.(type) {
	case *big.Int:
		return "integer"
	case []byte, string:
		return "byte string"
	case bencode.Tuple:
		return "tuple"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	default:
		return "unknown"
	}
}
