package bencat

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/finch-dev/bencode/pkg/bencode"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FileResult is one file's outcome from Verify.
type FileResult struct {
	Path      string
	Canonical bool
	Err       error
}

// Verify decodes and re-encodes every path concurrently — one goroutine per
// file, each calling bencode.Decode/bencode.Encode over its own disjoint
// byte slice with no shared state — and reports whether each file's bytes
// were already the canonical bencode encoding of their own decoded value.
//
// A file that fails to decode is reported with its error and does not
// abort the other goroutines: Verify's job is to audit a batch, not to
// fail fast on the first bad input.
func Verify(ctx context.Context, log *slog.Logger, paths []string, read func(string) ([]byte, error)) ([]FileResult, error) {
	runID := uuid.New()
	log = log.With("run_id", runID.String())
	log.Info("verify run starting", "files", len(paths))

	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			results[i] = verifyOne(log, path, read)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("verify run finished", "files", len(paths))
	return results, nil
}

func verifyOne(log *slog.Logger, path string, read func(string) ([]byte, error)) FileResult {
	data, err := read(path)
	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("read %s: %w", path, err)}
	}

	v, err := bencode.Decode(data)
	if err != nil {
		log.Warn("file failed to decode", "path", path, "error", err)
		return FileResult{Path: path, Err: err}
	}

	reencoded, err := bencode.Encode(v)
	if err != nil {
		log.Warn("decoded value failed to re-encode", "path", path, "error", err)
		return FileResult{Path: path, Err: err}
	}

	canonical := bytes.Equal(data, reencoded)
	log.Info("file verified", "path", path, "canonical", canonical, "bytes", len(data))

	return FileResult{Path: path, Canonical: canonical}
}
