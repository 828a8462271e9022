package codec

import "github.com/arloliu/codecbench/format"

// CopyCodec is the memory-copy baseline.
//
// Both directions are identity operations implemented as a plain copy into a new
// buffer, so its throughput is the measurement floor that real codec figures are
// read against, and its ratio is exactly 1.
type CopyCodec struct{}

var _ AppendCodec = (*CopyCodec)(nil)

// NewCopyCodec creates a new memory-copy baseline codec.
func NewCopyCodec() CopyCodec {
	return CopyCodec{}
}

// Name returns "memcpy".
func (c CopyCodec) Name() string { return "memcpy" }

// Algorithm returns format.AlgorithmCopy.
func (c CopyCodec) Algorithm() format.Algorithm { return format.AlgorithmCopy }

// Compress returns a copy of data.
//
// Unlike a pass-through, the returned slice never shares memory with data.
func (c CopyCodec) Compress(data []byte) ([]byte, error) {
	return c.CompressAppend(nil, data)
}

// Decompress returns a copy of data.
func (c CopyCodec) Decompress(data []byte) ([]byte, error) {
	return c.DecompressAppend(nil, data)
}

// CompressBound returns n.
func (c CopyCodec) CompressBound(n int) int { return n }

// CompressAppend copies src into dst[:0].
func (c CopyCodec) CompressAppend(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}

// DecompressAppend copies src into dst[:0].
func (c CopyCodec) DecompressAppend(dst, src []byte) ([]byte, error) {
	return append(dst[:0], src...), nil
}
