// Package codec provides the uniform adapters that let very different compression
// libraries be driven identically by the benchmark harness.
//
// # Architecture
//
// Every adapter implements Codec:
//
//	type Codec interface {
//	    Name() string
//	    Algorithm() format.Algorithm
//	    Compress(data []byte) ([]byte, error)
//	    Decompress(data []byte) ([]byte, error)
//	}
//
// Adapters that can write into caller-provided buffers also implement AppendCodec.
// The harness sizes those buffers before starting its timer, which keeps
// allocation out of the measured region.
//
// # Registered Codecs
//
// Default returns the codecs in a fixed order so reports from different runs line up:
//
//	memcpy            copy baseline, measures the memory-copy floor
//	gzip (level 6)    klauspost/compress/gzip
//	snappy            klauspost/compress/snappy
//	lz4               pierrec/lz4/v4 block format
//	zstd (level 1)    klauspost/compress/zstd
//	zstd (level 3)    klauspost/compress/zstd
//	zstd (level 10)   klauspost/compress/zstd
//	xz                ulikunitz/xz
//	lzma              ulikunitz/xz/lzma
//	deflate (level 6) klauspost/compress/flate, raw stream
//	lz4hc (level 9)   pierrec/lz4/v4 high-compression block format
//	zlib (level 6)    klauspost/compress/zlib
//	s2                klauspost/compress/s2
//	bzip2 (level 6)   dsnet/compress/bzip2
//	gozstd (level 3)  valyala/gozstd, cgo builds only
//
// # Round-trip Law
//
// For every adapter and every input, Decompress(Compress(data)) equals data.
// Adapters never write to their input and always return memory the caller owns.
//
// # Thread Safety
//
// All adapters are safe for concurrent use. The harness nevertheless drives them
// strictly one call at a time so timings are not disturbed by contention.
package codec
