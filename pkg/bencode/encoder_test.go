package bencode

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestEncode_OK(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"bytes", []byte("spam"), "4:spam"},
		{"string", "spam", "4:spam"},
		{"empty-bytes", []byte{}, "0:"},
		{"int-zero", big.NewInt(0), "i0e"},
		{"int-neg", big.NewInt(-42), "i-42e"},
		{"int-pos", big.NewInt(42), "i42e"},
		{"bool-true", true, "i1e"},
		{"bool-false", false, "i0e"},
		{"plain-int", 7, "i7e"},
		{"plain-int64", int64(-9), "i-9e"},
		{"plain-uint", uint(9), "i9e"},
		{"list", []any{[]byte("spam"), big.NewInt(1)}, "l4:spami1ee"},
		{"tuple", Tuple{[]byte("spam"), big.NewInt(1)}, "l4:spami1ee"},
		{"empty-list", []any{}, "le"},
		{
			"dict-sorts-keys",
			map[string]any{"b": big.NewInt(2), "a": big.NewInt(1)},
			"d1:ai1e1:bi2ee",
		},
		{"empty-dict", map[string]any{}, "de"},
		{"long-int", bigFromString(t, "12345678901234567890"), "i12345678901234567890e"},
		{
			"nested",
			map[string]any{
				"info": map[string]any{
					"length": big.NewInt(1024),
					"name":   []byte("ubuntu.iso"),
				},
			},
			"d4:infod6:lengthi1024e4:name10:ubuntu.isoee",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Encode(tc.in)
			if err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			if string(got) != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestEncode_DictKeyOrderIndependentOfInsertion(t *testing.T) {
	m1 := map[string]any{"z": big.NewInt(1), "a": big.NewInt(2), "m": big.NewInt(3)}
	got, err := Encode(m1)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "d1:ai2e1:mi3e1:zi1ee"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncode_UTF8Mode(t *testing.T) {
	got, err := EncodeUTF8("spam")
	if err != nil {
		t.Fatalf("EncodeUTF8 error: %v", err)
	}
	if string(got) != "4:spam" {
		t.Fatalf("got %q, want %q", got, "4:spam")
	}

	_, err = EncodeUTF8(string([]byte{0xff, 0xfe}))
	if !errors.Is(err, ErrTranscodingError) {
		t.Fatalf("got %v, want ErrTranscodingError", err)
	}
}

func TestEncode_PreEncodedSplicedVerbatim(t *testing.T) {
	pre := NewPreEncoded([]byte("i9999e"))

	got, err := Encode(map[string]any{"cached": pre})
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "d6:cachedi9999ee"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestEncode_PreEncodedIgnoresPayloadValidity(t *testing.T) {
	// NewPreEncoded does not validate its payload — it is spliced in as-is,
	// even if it wouldn't itself be a well-formed bencode value.
	pre := NewPreEncoded([]byte("not-bencode"))

	got, err := Encode(pre)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if string(got) != "not-bencode" {
		t.Fatalf("got %q, want %q", got, "not-bencode")
	}
}

func TestEncode_TypeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"float", 3.14},
		{"struct", struct{ X int }{1}},
		{"channel", make(chan int)},
		{"nil", nil},
		{"map-non-string-key", map[int]any{1: "x"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.in)
			if !errors.Is(err, ErrTypeError) {
				t.Fatalf("got %v, want ErrTypeError", err)
			}
		})
	}
}

func TestEncode_RecursionLimit(t *testing.T) {
	opts := testOptions()

	var v any = []any{}
	for i := 0; i < opts.MaxDepth+10; i++ {
		v = []any{v}
	}

	_, err := Marshal(v, opts)
	if !errors.Is(err, ErrRecursionLimitExceeded) {
		t.Fatalf("got %v, want ErrRecursionLimitExceeded", err)
	}
}

func TestEncodeDecode_RoundTripsCanonically(t *testing.T) {
	tests := []string{
		"4:spam",
		"i42e",
		"i-42e",
		"i0e",
		"l4:spami1ee",
		"d1:ai1e1:bi2e1:cl1:xi3eee",
		"de",
		"le",
		"i12345678901234567890e",
	}

	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			v, err := Decode([]byte(in))
			if err != nil {
				t.Fatalf("Decode error: %v", err)
			}
			out, err := Encode(v)
			if err != nil {
				t.Fatalf("Encode error: %v", err)
			}
			if string(out) != in {
				t.Fatalf("got %q, want %q", out, in)
			}
		})
	}
}

func TestEncode_CanonicalizesNonCanonicalDictOrder(t *testing.T) {
	// A dict built out of insertion order must still encode sorted by key,
	// independent of how the map happened to be populated.
	m := map[string]any{}
	for _, k := range []string{"zebra", "apple", "mango"} {
		m[k] = []byte("v")
	}

	got, err := Encode(m)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "d5:apple1:v5:mango1:v5:zebra1:ve"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestMarshal_Errors(t *testing.T) {
	_, err := Marshal(3.14, DefaultOptions())
	if !errors.Is(err, ErrTypeError) {
		t.Fatalf("got %v, want ErrTypeError", err)
	}
}

func TestEncode_LargeIntegerStress(t *testing.T) {
	digits := strings.Repeat("9", 500)
	n := bigFromString(t, digits)

	got, err := Encode(n)
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	want := "i" + digits + "e"
	if string(got) != want {
		t.Fatalf("got len %d, want len %d", len(got), len(want))
	}
}
