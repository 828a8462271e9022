// Package codecbench measures compression ratio and throughput of a fixed set of
// codecs against one input file.
//
// Every registered codec compresses and decompresses the same in-memory buffer
// a fixed number of times. Durations are averaged per direction and turned into
// MiB/s figures, and the results are printed as a table in registration order.
//
// # Basic Usage
//
// Benchmarking a file and printing the table:
//
//	if err := codecbench.RunFile(os.Stdout, "corpus.txt"); err != nil {
//	    log.Fatal(err)
//	}
//
// Benchmarking a buffer already in memory with more repetitions:
//
//	err := codecbench.Run(os.Stdout, "synthetic", data, bench.WithRepetitions(10))
//
// # Package Structure
//
// This package wires the building blocks together. For finer control use them
// directly:
//
//   - codec: the Codec interface, every adapter and the Default registry
//   - bench: the trial runner and harness
//   - metrics: ratio and throughput reduction
//   - report: table rendering
package codecbench

import (
	"io"

	"github.com/arloliu/codecbench/bench"
	"github.com/arloliu/codecbench/codec"
	"github.com/arloliu/codecbench/internal/input"
	"github.com/arloliu/codecbench/metrics"
	"github.com/arloliu/codecbench/report"
)

// RunFile loads the file at path and benchmarks it with Run.
//
// A load failure is returned before any codec runs and nothing is written to w.
func RunFile(w io.Writer, path string, opts ...bench.Option) error {
	data, err := input.Load(path)
	if err != nil {
		return err
	}

	return Run(w, path, data, opts...)
}

// Run benchmarks data with the default codec list and writes the table to w.
//
// source is the name printed in the table header. Codec failures show up as N/A
// rows and do not produce an error; only invalid options or a failing writer do.
func Run(w io.Writer, source string, data []byte, opts ...bench.Option) error {
	summaries, cfg, err := Benchmark(data, codec.Default(), opts...)
	if err != nil {
		return err
	}

	h := report.Header{
		Source:       source,
		OriginalSize: len(data),
		Repetitions:  cfg.Repetitions(),
	}

	return report.Write(w, h, summaries)
}

// Benchmark runs codecs against data and returns one summary per codec, in order,
// together with the effective configuration.
func Benchmark(data []byte, codecs []codec.Codec, opts ...bench.Option) ([]metrics.Summary, *bench.Config, error) {
	h, err := bench.NewHarness(opts...)
	if err != nil {
		return nil, nil, err
	}

	return metrics.SummarizeAll(h.Run(codecs, data)), h.Config(), nil
}
