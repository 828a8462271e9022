package bench

import (
	"fmt"
	"log/slog"

	"github.com/dsnet/golib/unitconv"

	"github.com/arloliu/codecbench/codec"
	"github.com/arloliu/codecbench/internal/hash"
)

// Harness benchmarks an ordered list of codecs against one shared input buffer.
//
// Codecs run strictly one after another on the calling goroutine; nothing is
// parallelised, so no codec competes with another for caches or cores.
type Harness struct {
	cfg    *Config
	runner *Runner
}

// NewHarness creates a Harness configured by opts.
func NewHarness(opts ...Option) (*Harness, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Harness{cfg: cfg, runner: &Runner{cfg: cfg}}, nil
}

// Config returns the harness configuration.
func (h *Harness) Config() *Config {
	return h.cfg
}

// Run benchmarks every codec in order and returns the report.
//
// Per-codec failures are recorded in the report and never stop the run. The input
// is fingerprinted before the first codec and re-checked after each one; when a
// codec has modified it, that codec and every codec after it are marked failed,
// since their figures would describe different data.
func (h *Harness) Run(codecs []codec.Codec, input []byte) Report {
	logger := h.cfg.logger
	digest := hash.Digest(input)

	report := Report{
		OriginalSize: len(input),
		Repetitions:  h.cfg.repetitions,
		Results:      make([]TrialResult, 0, len(codecs)),
	}

	var corrupted error
	for i, c := range codecs {
		if corrupted != nil {
			skipped := TrialResult{Name: c.Name(), Algorithm: c.Algorithm(), OriginalSize: len(input)}
			report.Results = append(report.Results, skipped.fail(fmt.Errorf("skipped: %w", corrupted)))

			continue
		}

		logger.Info("benchmarking codec",
			slog.String("codec", c.Name()),
			slog.Int("index", i+1),
			slog.Int("total", len(codecs)),
			slog.String("input", humanSize(len(input))),
			slog.Int("runs", h.cfg.repetitions),
		)

		result := h.runner.Run(c, input)
		if hash.Digest(input) != digest {
			corrupted = fmt.Errorf("%w by %s", ErrInputMutated, c.Name())
			result = result.fail(corrupted)
		}

		if result.Failed() {
			logger.Warn("codec failed", slog.String("codec", c.Name()), slog.Any("error", result.Err))
		}
		report.Results = append(report.Results, result)
	}

	return report
}

// humanSize formats n bytes with a binary prefix, e.g. "148.44KiB".
func humanSize(n int) string {
	return unitconv.FormatPrefix(float64(n), unitconv.Base1024, 2) + "B"
}
