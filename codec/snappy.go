package codec

import (
	"fmt"

	"github.com/klauspost/compress/snappy"

	"github.com/arloliu/codecbench/format"
)

// SnappyCodec wraps the Snappy block format.
type SnappyCodec struct{}

var _ AppendCodec = (*SnappyCodec)(nil)

// NewSnappyCodec creates a new Snappy codec.
func NewSnappyCodec() SnappyCodec {
	return SnappyCodec{}
}

func (c SnappyCodec) Name() string                { return "snappy" }
func (c SnappyCodec) Algorithm() format.Algorithm { return format.AlgorithmSnappy }

func (c SnappyCodec) Compress(data []byte) ([]byte, error) {
	return c.CompressAppend(nil, data)
}

func (c SnappyCodec) Decompress(data []byte) ([]byte, error) {
	return c.DecompressAppend(nil, data)
}

// CompressBound returns snappy.MaxEncodedLen(n).
func (c SnappyCodec) CompressBound(n int) int {
	return snappy.MaxEncodedLen(n)
}

func (c SnappyCodec) CompressAppend(dst, src []byte) ([]byte, error) {
	if snappy.MaxEncodedLen(len(src)) < 0 {
		return nil, fmt.Errorf("snappy: input of %d bytes is too large", len(src))
	}

	return snappy.Encode(dst[:cap(dst)], src), nil
}

func (c SnappyCodec) DecompressAppend(dst, src []byte) ([]byte, error) {
	out, err := snappy.Decode(dst[:cap(dst)], src)
	if err != nil {
		return nil, fmt.Errorf("snappy decompression failed: %w", err)
	}

	return out, nil
}
