package codec

import (
	"github.com/arloliu/codecbench/format"
)

// Codec is the uniform capability wrapper around one compression algorithm.
//
// Every configuration knob (level, window size, block format) is fixed when the
// codec is constructed, so two calls with the same input always do the same work.
type Codec interface {
	// Name returns the display name used in reports, e.g. "zstd (level 3)".
	Name() string

	// Algorithm returns the algorithm family wrapped by the codec.
	Algorithm() format.Algorithm

	// Compress compresses data and returns the result.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress.
	//
	// Memory management:
	//   - Returned slice is newly allocated and owned by the caller
	//   - Input slice is not modified
	Decompress(data []byte) ([]byte, error)
}

// AppendCodec is implemented by codecs that can write into caller-provided buffers.
//
// The benchmark runner uses it to size output buffers before a timed region starts,
// so allocation cost stays out of the measurement. Implementations reuse dst when
// its capacity is sufficient and fall back to growing it otherwise.
type AppendCodec interface {
	Codec

	// CompressBound returns the maximum compressed size for n input bytes.
	CompressBound(n int) int

	// CompressAppend compresses src into dst[:0] and returns the written slice.
	CompressAppend(dst, src []byte) ([]byte, error)

	// DecompressAppend decompresses src into dst[:0] and returns the written slice.
	// dst should have capacity for the whole decompressed output.
	DecompressAppend(dst, src []byte) ([]byte, error)
}

// Preparer is implemented by codecs that keep encoder or decoder state between calls.
//
// Prepare allocates that state and returns a single-use codec that reuses it, so a
// caller timing individual calls can build it ahead of the timed region.
type Preparer interface {
	Prepare() (AppendCodec, error)
}

// Default returns the registered codecs in their fixed registration order.
//
// A new list is built on every call; the slice and its codecs are owned by the caller.
// Codecs whose construction fails are kept in the list and report the construction
// error from every call, so the full registered set always reaches the report.
func Default() []Codec {
	codecs := []Codec{
		NewCopyCodec(),
		NewGzipCodec(6),
		NewSnappyCodec(),
		NewLZ4Codec(),
		zstdOrFailed(1),
		zstdOrFailed(3),
		zstdOrFailed(10),
		NewXZCodec(),
		NewLZMACodec(),
		NewDeflateCodec(6),
		NewLZ4HCCodec(9),
		NewZlibCodec(6),
		NewS2Codec(),
		NewBzip2Codec(6),
	}

	return append(codecs, cgoCodecs()...)
}

// zstdOrFailed builds a zstd codec, substituting a failing codec on construction error.
func zstdOrFailed(level int) Codec {
	c, err := NewZstdCodec(level)
	if err != nil {
		return newFailedCodec(zstdName(level), format.AlgorithmZstd, err)
	}

	return c
}
