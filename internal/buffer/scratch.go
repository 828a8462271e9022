// Package buffer allocates the scratch buffers codec calls write into.
//
// Buffers are sized and pre-faulted before a timed region starts, so neither the
// allocation nor the first-touch page faults of fresh memory land in a sample.
package buffer

// pageSize is the stride used to touch fresh memory; 4 KiB is the smallest page
// size on supported platforms.
const pageSize = 4096

// Scratch holds the per-repetition output buffers for one codec.
type Scratch struct {
	// Compressed receives the compressor output. It has length 0 and capacity
	// for the codec's worst-case compressed size.
	Compressed []byte

	// Decompressed receives the decompressor output. It has length 0 and capacity
	// for the original size plus one spare byte.
	Decompressed []byte
}

// NewScratch allocates and pre-faults a Scratch.
//
// Parameters:
//   - compressedCap: capacity of the compressor destination
//   - originalSize: size of the uncompressed input
//
// Returns:
//   - *Scratch: buffers ready to be handed to a codec
func NewScratch(compressedCap, originalSize int) *Scratch {
	return &Scratch{
		Compressed:   Prepared(compressedCap),
		Decompressed: Prepared(originalSize + 1),
	}
}

// Prepared returns a zero-length slice with capacity n whose pages have been
// written once.
func Prepared(n int) []byte {
	if n <= 0 {
		return nil
	}

	buf := make([]byte, 0, n)
	Prefault(buf)

	return buf
}

// Prefault writes one byte per page over the spare capacity of buf.
//
// Only buf[len(buf):cap(buf)] is touched, so live data is never overwritten.
func Prefault(buf []byte) {
	spare := buf[len(buf):cap(buf)]
	for i := 0; i < len(spare); i += pageSize {
		spare[i] = 0
	}
	if n := len(spare); n > 0 {
		spare[n-1] = 0
	}
}
