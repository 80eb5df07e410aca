// Package loader reads JSON and JSON Lines files into stored documents,
// decompressing gzip and zstd input on the way.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/arjunguha/slopjson/internal/document"
	"github.com/arjunguha/slopjson/internal/store"
)

// Stdin is the file name that selects standard input.
const Stdin = "-"

var (
	ErrDecompress = errors.New("loader: cannot decompress input")
	ErrDecode     = errors.New("loader: cannot decode input")
)

// Options controls how input is interpreted.
type Options struct {
	// Lines forces JSON Lines decoding regardless of the file extension.
	Lines bool
	// Stdin is read when the name is "-". Defaults to os.Stdin.
	Stdin io.Reader
}

// Load opens name and decodes it. ".jsonl" and ".ndjson" files are decoded as
// JSON Lines; a trailing ".gz" or ".zst" is decompressed first.
func Load(ctx context.Context, name string, opts Options) (*store.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if name == Stdin {
		r := opts.Stdin
		if r == nil {
			r = os.Stdin
		}
		return Read(ctx, r, name, opts)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	return Read(ctx, f, name, opts)
}

// Read decodes r, using name only to pick compression and format.
func Read(ctx context.Context, r io.Reader, name string, opts Options) (*store.Document, error) {
	reader, base, closeFn, err := decompress(r, name)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if opts.Lines || IsLinesName(base) {
		values, err := document.DecodeLines(reader)
		if err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrDecode, name, err)
		}
		return store.NewLines(values), nil
	}

	value, err := document.Decode(reader)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrDecode, name, err)
	}
	return store.NewSingle(value), nil
}

// IsLinesName reports whether name has a JSON Lines extension.
func IsLinesName(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jsonl", ".ndjson":
		return true
	default:
		return false
	}
}

func decompress(r io.Reader, name string) (io.Reader, string, func(), error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	switch strings.ToLower(ext) {
	case ".gz":
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, "", nil, fmt.Errorf("%w %s: %v", ErrDecompress, name, err)
		}
		return gz, base, func() { _ = gz.Close() }, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, "", nil, fmt.Errorf("%w %s: %v", ErrDecompress, name, err)
		}
		return zr, base, zr.Close, nil
	default:
		return r, name, func() {}, nil
	}
}
