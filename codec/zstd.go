package codec

import (
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/arloliu/codecbench/format"
)

// ZstdCodec provides Zstandard compression through the pure-Go klauspost/compress/zstd.
//
// The zstd level is mapped onto the library's speed presets with
// zstd.EncoderLevelFromZstd: 1 is SpeedFastest, 2-5 SpeedDefault,
// 6-10 SpeedBetterCompression and 11+ SpeedBestCompression.
//
// The encoder and decoder are created once and reused; EncodeAll and DecodeAll are
// stateless and safe for concurrent use. Both run single-threaded so the figures
// describe one core.
type ZstdCodec struct {
	level   int
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

var _ AppendCodec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec for the given zstd compression level.
//
// Returns:
//   - *ZstdCodec: New Zstd codec instance
//   - error: encoder or decoder construction error
//
// Example:
//
//	codec, err := NewZstdCodec(3)
//	if err != nil {
//		return err
//	}
//	compressed, err := codec.Compress(data)
func NewZstdCodec(level int) (*ZstdCodec, error) {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderCRC(false), // Disable CRC; the benchmark verifies round-trips itself
	)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder (level %d): %w", level, err)
	}

	decoder, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1), // Single-threaded for predictable performance
		zstd.WithDecoderLowmem(false),  // Use more memory for better performance
	)
	if err != nil {
		_ = encoder.Close()
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &ZstdCodec{level: level, encoder: encoder, decoder: decoder}, nil
}

func (c *ZstdCodec) Name() string                { return zstdName(c.level) }
func (c *ZstdCodec) Algorithm() format.Algorithm { return format.AlgorithmZstd }

// Compress compresses the input data using Zstandard compression.
func (c *ZstdCodec) Compress(data []byte) ([]byte, error) {
	return c.CompressAppend(nil, data)
}

// Decompress decompresses Zstd-compressed data.
//
// This method validates the input data format and returns an error if the
// data is corrupted or was not compressed with Zstd.
func (c *ZstdCodec) Decompress(data []byte) ([]byte, error) {
	return c.DecompressAppend(nil, data)
}

// CompressBound returns the worst-case Zstandard frame size for n input bytes.
func (c *ZstdCodec) CompressBound(n int) int {
	return zstdCompressBound(n)
}

// CompressAppend appends the compressed frame to dst[:0].
func (c *ZstdCodec) CompressAppend(dst, src []byte) ([]byte, error) {
	return c.encoder.EncodeAll(src, dst[:0]), nil
}

// DecompressAppend appends the decompressed data to dst[:0].
func (c *ZstdCodec) DecompressAppend(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}

	// Even if this call fails, the decoder can be reused for the next call
	out, err := c.decoder.DecodeAll(src, dst[:0])
	if err != nil {
		return nil, fmt.Errorf("zstd decompression failed: %w", err)
	}

	return out, nil
}

func zstdName(level int) string {
	return fmt.Sprintf("zstd (level %d)", level)
}

// zstdCompressBound mirrors ZSTD_COMPRESSBOUND from the reference implementation.
func zstdCompressBound(n int) int {
	const smallLimit = 128 << 10

	bound := n + n>>8
	if n < smallLimit {
		bound += (smallLimit - n) >> 11
	}

	return bound
}
