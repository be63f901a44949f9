package compress

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

type Codec int

const (
	NONE Codec = iota
	ZSTD
	GZIP
)

func (c Codec) String() string {
	switch c {
	case ZSTD:
		return "zstd"
	case GZIP:
		return "gzip"
	default:
		return "none"
	}
}

// DetectCodec returns the compression codec named by the last extension of path and the
// path with that extension removed.
func DetectCodec(path string) (Codec, string) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".zst", ".zstd":
		return ZSTD, strings.TrimSuffix(path, filepath.Ext(path))
	case ".gz", ".gzip":
		return GZIP, strings.TrimSuffix(path, filepath.Ext(path))
	}
	return NONE, path
}

type nopReadCloser struct {
	io.Reader
}

func (nopReadCloser) Close() error { return nil }

type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// NewReader wraps r so reads return decompressed bytes. Close releases the decoder,
// not r.
func NewReader(r io.Reader, codec Codec) (io.ReadCloser, error) {
	switch codec {
	case ZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("error when creating zstd reader: %w", err)
		}
		return zstdReadCloser{dec}, nil
	case GZIP:
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("error when creating gzip reader: %w", err)
		}
		return gz, nil
	default:
		return nopReadCloser{r}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewWriter wraps w so written bytes are compressed. Close flushes the compressor,
// it does not close w.
func NewWriter(w io.Writer, codec Codec) (io.WriteCloser, error) {
	switch codec {
	case ZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
		if err != nil {
			return nil, fmt.Errorf("error when creating zstd writer: %w", err)
		}
		return enc, nil
	case GZIP:
		return gzip.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}
