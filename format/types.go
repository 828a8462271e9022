package format

// Algorithm identifies the compression algorithm family wrapped by a codec adapter.
type Algorithm uint8

const (
	AlgorithmCopy    Algorithm = 0x1 // AlgorithmCopy represents the memory-copy baseline.
	AlgorithmGzip    Algorithm = 0x2 // AlgorithmGzip represents gzip (DEFLATE with gzip framing).
	AlgorithmSnappy  Algorithm = 0x3 // AlgorithmSnappy represents the Snappy block format.
	AlgorithmLZ4     Algorithm = 0x4 // AlgorithmLZ4 represents the LZ4 block format.
	AlgorithmLZ4HC   Algorithm = 0x5 // AlgorithmLZ4HC represents the LZ4 block format, high compression.
	AlgorithmZstd    Algorithm = 0x6 // AlgorithmZstd represents Zstandard.
	AlgorithmXZ      Algorithm = 0x7 // AlgorithmXZ represents the xz container (LZMA2).
	AlgorithmLZMA    Algorithm = 0x8 // AlgorithmLZMA represents the legacy LZMA "alone" format.
	AlgorithmDeflate Algorithm = 0x9 // AlgorithmDeflate represents raw DEFLATE.
	AlgorithmZlib    Algorithm = 0xA // AlgorithmZlib represents DEFLATE with zlib framing.
	AlgorithmS2      Algorithm = 0xB // AlgorithmS2 represents S2, the Snappy extension.
	AlgorithmBzip2   Algorithm = 0xC // AlgorithmBzip2 represents bzip2.
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmCopy:
		return "Copy"
	case AlgorithmGzip:
		return "Gzip"
	case AlgorithmSnappy:
		return "Snappy"
	case AlgorithmLZ4:
		return "LZ4"
	case AlgorithmLZ4HC:
		return "LZ4HC"
	case AlgorithmZstd:
		return "Zstd"
	case AlgorithmXZ:
		return "XZ"
	case AlgorithmLZMA:
		return "LZMA"
	case AlgorithmDeflate:
		return "Deflate"
	case AlgorithmZlib:
		return "Zlib"
	case AlgorithmS2:
		return "S2"
	case AlgorithmBzip2:
		return "Bzip2"
	default:
		return "Unknown"
	}
}

// IsBaseline reports whether the algorithm performs no compression at all.
func (a Algorithm) IsBaseline() bool {
	return a == AlgorithmCopy
}
