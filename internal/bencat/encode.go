package bencat

import (
	"io"
	"log/slog"

	"github.com/finch-dev/bencode/pkg/bencode"
)

// EncodeBytes wraps data as a single bencode byte string and writes its
// canonical encoding to out. This is the simplest possible exercise of the
// encoder: no structure to build, just the length-prefix rule.
func EncodeBytes(out io.Writer, log *slog.Logger, data []byte) error {
	encoded, err := bencode.Encode(data)
	if err != nil {
		log.Error("encode failed", "error", err, "input_bytes", len(data))
		return err
	}

	log.Info("encoded value", "input_bytes", len(data), "output_bytes", len(encoded))

	_, err = out.Write(encoded)
	return err
}
