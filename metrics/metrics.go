// Package metrics reduces trial results to ratio and throughput figures.
//
// Throughput follows a fixed order of operations: the durations of one direction
// are averaged first and the byte count is divided by that mean. Averaging the
// per-repetition throughputs instead gives a different number under variance
// and is never used.
package metrics

import (
	"time"

	"github.com/arloliu/codecbench/bench"
)

// mebibyte is the number of bytes in one MiB.
const mebibyte = 1 << 20

// Summary holds the reportable figures of one codec.
type Summary struct {
	Name            string
	Ratio           Figure // original size / compressed size
	CompressMiBps   Figure // original MiB / mean compress seconds
	DecompressMiBps Figure // compressed MiB / mean decompress seconds
	Err             error  // Failure cause when the trial failed
}

// Failed reports whether the summary comes from a failed trial.
func (s Summary) Failed() bool {
	return s.Err != nil
}

// Summarize reduces one trial result.
//
// A failed trial yields a summary with every figure unavailable.
func Summarize(r bench.TrialResult) Summary {
	s := Summary{Name: r.Name, Err: r.Err}
	if r.Failed() {
		return s
	}

	s.Ratio = Ratio(r.OriginalSize, r.CompressedSize)
	s.CompressMiBps = Throughput(r.OriginalSize, Mean(r.CompressSamples))
	s.DecompressMiBps = Throughput(r.CompressedSize, Mean(r.DecompressSamples))

	return s
}

// SummarizeAll reduces every result of a report, keeping its order.
func SummarizeAll(report bench.Report) []Summary {
	summaries := make([]Summary, 0, len(report.Results))
	for _, r := range report.Results {
		summaries = append(summaries, Summarize(r))
	}

	return summaries
}

// Ratio returns original/compressed, unavailable when compressed is not positive.
func Ratio(original, compressed int) Figure {
	if compressed <= 0 {
		return Unavailable()
	}

	return Available(float64(original) / float64(compressed))
}

// Throughput returns size in MiB divided by mean in seconds.
//
// The figure is unavailable when size or mean is not positive, since a zero-byte
// or zero-duration measurement carries no rate.
func Throughput(size int, mean float64) Figure {
	if size <= 0 || mean <= 0 {
		return Unavailable()
	}

	return Available(float64(size) / mebibyte / mean)
}

// Mean returns the arithmetic mean of samples in seconds, or 0 for no samples.
func Mean(samples []time.Duration) float64 {
	if len(samples) == 0 {
		return 0
	}

	var sum float64
	for _, s := range samples {
		sum += s.Seconds()
	}

	return sum / float64(len(samples))
}
