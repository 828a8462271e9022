package bench

import (
	"bytes"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/arloliu/codecbench/codec"
	"github.com/arloliu/codecbench/internal/buffer"
)

// Runner executes the timed compress/decompress cycles for one codec at a time.
//
// Each repetition follows the same protocol:
//  1. Destination buffers and codec state are allocated before any timer starts
//  2. The timer brackets only the codec call
//  3. The elapsed duration is recorded as one sample
//  4. Decompression consumes the output of the same repetition's compression
//  5. The round-trip is verified after the decompress timer stops
//
// Repetitions never overlap. The first failure ends the trial for that codec.
type Runner struct {
	cfg *Config
}

// NewRunner creates a Runner configured by opts.
func NewRunner(opts ...Option) (*Runner, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}

	return &Runner{cfg: cfg}, nil
}

// Run benchmarks c against input and returns its trial result.
//
// input is only read. Codec failures, panics and round-trip mismatches are
// reported through TrialResult.Err and never returned as a Go error.
func (r *Runner) Run(c codec.Codec, input []byte) TrialResult {
	result := TrialResult{
		Name:         c.Name(),
		Algorithm:    c.Algorithm(),
		OriginalSize: len(input),
	}
	logger := r.cfg.logger.With(slog.String("codec", c.Name()))

	c, err := openSession(c)
	if err != nil {
		return result.fail(&TrialError{Codec: result.Name, Direction: DirectionCompress, Err: err})
	}

	if r.cfg.warmup {
		if _, err := r.cycle(c, input, 0); err != nil {
			return result.fail(err)
		}
	}

	// Collect garbage left by earlier codecs before anything is timed.
	runtime.GC()

	reps := r.cfg.repetitions
	compressSamples := make([]time.Duration, 0, reps)
	decompressSamples := make([]time.Duration, 0, reps)

	for rep := 1; rep <= reps; rep++ {
		s, err := r.cycle(c, input, rep)
		if err != nil {
			return result.fail(err)
		}
		if rep == 1 {
			result.CompressedSize = s.compressedSize
		}
		compressSamples = append(compressSamples, s.compress)
		decompressSamples = append(decompressSamples, s.decompress)

		logger.Info("run complete",
			slog.Int("run", rep),
			slog.String("compressed", humanSize(s.compressedSize)),
			slog.Duration("compress", s.compress),
			slog.Duration("decompress", s.decompress),
		)
	}

	result.CompressSamples = compressSamples
	result.DecompressSamples = decompressSamples

	return result
}

// cycleSample is the measurement of one compress/decompress repetition.
type cycleSample struct {
	compressedSize int
	compress       time.Duration
	decompress     time.Duration
}

// cycle runs one compress/decompress repetition; rep 0 is the warm-up.
func (r *Runner) cycle(c codec.Codec, input []byte, rep int) (cycleSample, error) {
	inv := prepare(c, len(input))

	compressed, compressTime, err := measure(inv.compress, input)
	if err != nil {
		return cycleSample{}, &TrialError{Codec: c.Name(), Repetition: rep, Direction: DirectionCompress, Err: err}
	}

	decompressed, decompressTime, err := measure(inv.decompress, compressed)
	if err != nil {
		return cycleSample{}, &TrialError{Codec: c.Name(), Repetition: rep, Direction: DirectionDecompress, Err: err}
	}

	if !bytes.Equal(decompressed, input) {
		return cycleSample{}, &TrialError{
			Codec:      c.Name(),
			Repetition: rep,
			Direction:  DirectionDecompress,
			Err:        fmt.Errorf("%w: got %d bytes, want %d", ErrRoundTrip, len(decompressed), len(input)),
		}
	}

	return cycleSample{
		compressedSize: len(compressed),
		compress:       compressTime,
		decompress:     decompressTime,
	}, nil
}

// invocation binds a codec to the destination buffers of one repetition.
type invocation struct {
	codec    codec.Codec
	appender codec.AppendCodec // nil when the codec cannot write into caller buffers
	scratch  *buffer.Scratch
}

// prepare allocates the repetition's buffers; it must run before the timer starts.
func prepare(c codec.Codec, originalSize int) *invocation {
	inv := &invocation{codec: c}
	if ac, ok := c.(codec.AppendCodec); ok {
		inv.appender = ac
		inv.scratch = buffer.NewScratch(ac.CompressBound(originalSize), originalSize)
	}

	return inv
}

// openSession returns the codec a trial drives. Codecs implementing
// codec.Preparer get one session per trial, built before the warm-up so that
// encoder and decoder state is allocated and sized outside every timed call.
func openSession(c codec.Codec) (codec.Codec, error) {
	p, ok := c.(codec.Preparer)
	if !ok {
		return c, nil
	}

	session, err := p.Prepare()
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}

	return session, nil
}

func (inv *invocation) compress(src []byte) ([]byte, error) {
	if inv.appender != nil {
		return inv.appender.CompressAppend(inv.scratch.Compressed, src)
	}

	return inv.codec.Compress(src)
}

func (inv *invocation) decompress(src []byte) ([]byte, error) {
	if inv.appender != nil {
		return inv.appender.DecompressAppend(inv.scratch.Decompressed, src)
	}

	return inv.codec.Decompress(src)
}

// measure times one codec call on a monotonic clock.
//
// The clock brackets only op; a panic inside op is returned as ErrCodecPanic.
func measure(op func([]byte) ([]byte, error), src []byte) (out []byte, elapsed time.Duration, err error) {
	defer func() {
		if p := recover(); p != nil {
			out, elapsed, err = nil, 0, fmt.Errorf("%w: %v", ErrCodecPanic, p)
		}
	}()

	start := time.Now()
	out, err = op(src)
	elapsed = time.Since(start)

	return out, elapsed, err
}
