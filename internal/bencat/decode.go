package bencat

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/finch-dev/bencode/pkg/bencode"
	"golang.org/x/text/message"
)

// DecodeFile decodes the bencode value in data and writes its rendered form
// to out, logging a one-line summary via log.
func DecodeFile(out io.Writer, log *slog.Logger, p *message.Printer, data []byte) error {
	v, err := bencode.Decode(data)
	if err != nil {
		log.Error("decode failed", "error", err, "input_bytes", len(data))
		return err
	}

	summary := Summarize(v)
	log.Info("decoded value",
		"kind", summary.NodeKind,
		"depth", summary.Depth,
		"input_bytes", len(data),
	)

	if _, err := p.Fprintf(out, "# %s, depth %d, %d bytes\n", summary.NodeKind, summary.Depth, len(data)); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, Render(v))
	return err
}
