//go:build cgo

package codec

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/arloliu/codecbench/format"
)

// GozstdCodec provides Zstandard compression through the libzstd cgo binding.
//
// It is only registered in cgo builds and sits next to the pure-Go ZstdCodec so the
// two implementations of the same format can be compared on the same input.
type GozstdCodec struct {
	level int
}

var _ AppendCodec = (*GozstdCodec)(nil)

// NewGozstdCodec creates a new libzstd codec for the given compression level.
func NewGozstdCodec(level int) GozstdCodec {
	return GozstdCodec{level: level}
}

func (c GozstdCodec) Name() string                { return fmt.Sprintf("gozstd (level %d)", c.level) }
func (c GozstdCodec) Algorithm() format.Algorithm { return format.AlgorithmZstd }

// Compress compresses the input data using libzstd.
func (c GozstdCodec) Compress(data []byte) ([]byte, error) {
	return c.CompressAppend(nil, data)
}

func (c GozstdCodec) Decompress(data []byte) ([]byte, error) {
	return c.DecompressAppend(nil, data)
}

func (c GozstdCodec) CompressBound(n int) int {
	return zstdCompressBound(n)
}

func (c GozstdCodec) CompressAppend(dst, src []byte) ([]byte, error) {
	return gozstd.CompressLevel(dst[:0], src, c.level), nil
}

func (c GozstdCodec) DecompressAppend(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	out, err := gozstd.Decompress(dst[:0], src)
	if err != nil {
		return nil, fmt.Errorf("gozstd decompression failed: %w", err)
	}

	return out, nil
}

func cgoCodecs() []Codec {
	return []Codec{NewGozstdCodec(3)}
}
