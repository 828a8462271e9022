package codec

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/arloliu/codecbench/format"
)

// S2Codec wraps the S2 block format with default settings.
type S2Codec struct{}

var _ AppendCodec = (*S2Codec)(nil)

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

func (c S2Codec) Name() string                { return "s2" }
func (c S2Codec) Algorithm() format.Algorithm { return format.AlgorithmS2 }

// Compress compresses the input data using S2 compression.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	return c.CompressAppend(nil, data)
}

// Decompress decompresses the input data using S2 decompression.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	return c.DecompressAppend(nil, data)
}

// CompressBound returns s2.MaxEncodedLen(n).
func (c S2Codec) CompressBound(n int) int {
	return s2.MaxEncodedLen(n)
}

// CompressAppend encodes src into dst when dst can hold the worst case.
func (c S2Codec) CompressAppend(dst, src []byte) ([]byte, error) {
	if s2.MaxEncodedLen(len(src)) < 0 {
		return nil, fmt.Errorf("s2: input of %d bytes is too large", len(src))
	}

	return s2.Encode(dst[:cap(dst)], src), nil
}

// DecompressAppend decodes src into dst when dst can hold the decoded block.
func (c S2Codec) DecompressAppend(dst, src []byte) ([]byte, error) {
	out, err := s2.Decode(dst[:cap(dst)], src)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression failed: %w", err)
	}

	return out, nil
}
