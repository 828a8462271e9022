package codec

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/codecbench/format"
)

// lz4MaxDecompressSize caps the adaptive buffer used when the decompressed size is unknown.
const lz4MaxDecompressSize = 128 * 1024 * 1024

// lz4CompressorPool pools lz4.Compressor instances for reuse.
// The lz4.Compressor maintains a hash table that benefits from reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec wraps the LZ4 block format with the fast compressor.
type LZ4Codec struct{}

var _ AppendCodec = (*LZ4Codec)(nil)

// NewLZ4Codec creates a new LZ4 block codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

func (c LZ4Codec) Name() string                { return "lz4" }
func (c LZ4Codec) Algorithm() format.Algorithm { return format.AlgorithmLZ4 }

// Compress compresses the input data using LZ4 block compression.
//
// Returns nil for empty input.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.CompressAppend(make([]byte, 0, lz4.CompressBlockBound(len(data))), data)
}

// Decompress decompresses an LZ4 block whose decompressed size is unknown.
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	return lz4DecompressAdaptive(data)
}

// CompressBound returns lz4.CompressBlockBound(n).
func (c LZ4Codec) CompressBound(n int) int {
	return lz4.CompressBlockBound(n)
}

// CompressAppend compresses src into dst using a pooled lz4.Compressor.
func (c LZ4Codec) CompressAppend(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}
	dst = lz4GrowBound(dst, len(src))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression failed: %w", err)
	}

	return dst[:n], nil
}

// DecompressAppend decompresses src into dst, falling back to an adaptive buffer
// when dst is too small.
func (c LZ4Codec) DecompressAppend(dst, src []byte) ([]byte, error) {
	return lz4DecompressInto(dst, src)
}

// LZ4HCCodec wraps the LZ4 block format with the high-compression compressor.
type LZ4HCCodec struct {
	level int
	pool  *sync.Pool
}

var _ AppendCodec = (*LZ4HCCodec)(nil)

// NewLZ4HCCodec creates a new LZ4 high-compression codec.
//
// Parameters:
//   - level: compression level from 1 to 9; values outside are clamped
//
// Returns:
//   - LZ4HCCodec: New LZ4HC codec instance
func NewLZ4HCCodec(level int) LZ4HCCodec {
	level = min(max(level, 1), 9)
	hcLevel := lz4LevelHC(level)

	return LZ4HCCodec{
		level: level,
		pool: &sync.Pool{
			New: func() any {
				return &lz4.CompressorHC{Level: hcLevel}
			},
		},
	}
}

func (c LZ4HCCodec) Name() string                { return fmt.Sprintf("lz4hc (level %d)", c.level) }
func (c LZ4HCCodec) Algorithm() format.Algorithm { return format.AlgorithmLZ4HC }

// Compress compresses the input data using LZ4HC block compression.
//
// Returns nil for empty input.
func (c LZ4HCCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return c.CompressAppend(make([]byte, 0, lz4.CompressBlockBound(len(data))), data)
}

// Decompress decompresses an LZ4 block; LZ4HC output uses the plain block format.
func (c LZ4HCCodec) Decompress(data []byte) ([]byte, error) {
	return lz4DecompressAdaptive(data)
}

func (c LZ4HCCodec) CompressBound(n int) int {
	return lz4.CompressBlockBound(n)
}

func (c LZ4HCCodec) CompressAppend(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}
	dst = lz4GrowBound(dst, len(src))

	hc, _ := c.pool.Get().(*lz4.CompressorHC)
	defer c.pool.Put(hc)

	n, err := hc.CompressBlock(src, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4hc compression failed: %w", err)
	}

	return dst[:n], nil
}

func (c LZ4HCCodec) DecompressAppend(dst, src []byte) ([]byte, error) {
	return lz4DecompressInto(dst, src)
}

// lz4LevelHC maps 1..9 onto the lz4 package's level constants.
func lz4LevelHC(level int) lz4.CompressionLevel {
	levels := [...]lz4.CompressionLevel{
		lz4.Level1, lz4.Level2, lz4.Level3, lz4.Level4, lz4.Level5,
		lz4.Level6, lz4.Level7, lz4.Level8, lz4.Level9,
	}

	return levels[level-1]
}

// lz4GrowBound returns dst resliced to its capacity, reallocated when the capacity
// is below the block bound. A destination below the bound lets CompressBlock
// report incompressible data as a zero-length result.
func lz4GrowBound(dst []byte, n int) []byte {
	bound := lz4.CompressBlockBound(n)
	if cap(dst) < bound {
		return make([]byte, bound)
	}

	return dst[:cap(dst)]
}

func lz4DecompressInto(dst, src []byte) ([]byte, error) {
	if len(src) == 0 {
		return dst[:0], nil
	}
	if cap(dst) == 0 {
		return lz4DecompressAdaptive(src)
	}

	n, err := lz4.UncompressBlock(src, dst[:cap(dst)])
	if err != nil {
		if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) {
			return lz4DecompressAdaptive(src)
		}

		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}

	return dst[:n], nil
}

// lz4DecompressAdaptive decompresses an LZ4 block of unknown decompressed size.
//
// This uses an adaptive buffer sizing strategy:
//  1. Start with a buffer 4x the compressed size (common expansion ratio)
//  2. On ErrInvalidSourceShortBuffer, double the buffer size (up to 128MB)
//  3. Return error if buffer exceeds the limit (prevents memory exhaustion)
func lz4DecompressAdaptive(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := min(len(data)*4, lz4MaxDecompressSize)
	for bufSize <= lz4MaxDecompressSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < lz4MaxDecompressSize {
				bufSize = min(bufSize*2, lz4MaxDecompressSize)
				continue
			}

			return nil, fmt.Errorf("lz4 decompression failed: %w", err)
		}

		return buf[:n], nil
	}

	// Buffer exceeded the limit - likely corrupted data or an extreme ratio
	return nil, lz4.ErrInvalidSourceShortBuffer
}
