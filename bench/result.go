package bench

import (
	"time"

	"github.com/arloliu/codecbench/format"
)

// Direction is the codec operation a sample or failure belongs to.
type Direction uint8

const (
	DirectionCompress   Direction = 0x1 // DirectionCompress is the compress operation.
	DirectionDecompress Direction = 0x2 // DirectionDecompress is the decompress operation.
)

func (d Direction) String() string {
	switch d {
	case DirectionCompress:
		return "compress"
	case DirectionDecompress:
		return "decompress"
	default:
		return "unknown"
	}
}

// TrialResult is the outcome of benchmarking one codec against the input buffer.
//
// A successful result carries exactly one compress and one decompress sample per
// configured repetition. A failed result carries no samples and a non-nil Err;
// partial data is never kept.
type TrialResult struct {
	Name         string           // Codec display name
	Algorithm    format.Algorithm // Algorithm family of the codec
	OriginalSize int              // Input size in bytes

	// CompressedSize is the output size of the first timed repetition. Compression
	// is deterministic under a fixed configuration, so later repetitions are assumed
	// to produce the same size and are not re-checked.
	CompressedSize int

	CompressSamples   []time.Duration // One duration per repetition, in order
	DecompressSamples []time.Duration // One duration per repetition, in order

	Err error // Non-nil when the codec failed; the result has no usable figures
}

// Failed reports whether the trial was invalidated.
func (r TrialResult) Failed() bool {
	return r.Err != nil
}

// fail returns r marked as failed with every sample dropped.
func (r TrialResult) fail(err error) TrialResult {
	r.CompressedSize = 0
	r.CompressSamples = nil
	r.DecompressSamples = nil
	r.Err = err

	return r
}

// Report is the ordered outcome of one harness run.
//
// Results follow codec registration order, not performance, so repeated runs
// can be compared line by line.
type Report struct {
	OriginalSize int           // Input size in bytes
	Repetitions  int           // Configured repetitions per direction
	Results      []TrialResult // One entry per codec, in registration order
}
