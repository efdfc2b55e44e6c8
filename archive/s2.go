package archive

import (
	"bytes"

	"github.com/valyala/gozstd"
)

// S2Codec is the container's fast-path alternative to MethodZstd: a
// streaming Zstd writer pinned to a low compression level, trading
// ratio for speed the way a dedicated S2 codec would. Kept as a
// distinct Method so callers can pick "fast" vs "small" without
// depending on a second compression library for marginal gain.
type S2Codec struct {
	level int
}

var _ Codec = S2Codec{}

// NewS2Codec returns an S2Codec using a fast compression level.
func NewS2Codec() S2Codec { return S2Codec{level: 1} }

// Compress compresses data with a streaming writer at the codec's level.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	w := gozstd.NewWriterLevel(&buf, c.level)
	if _, err := w.Write(data); err != nil {
		w.Release()
		return nil, err
	}
	if err := w.Close(); err != nil {
		w.Release()
		return nil, err
	}
	w.Release()
	return buf.Bytes(), nil
}

// Decompress reverses Compress.
func (S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}
	return gozstd.Decompress(nil, data)
}
