package bench

import (
	"errors"
	"log/slog"

	"github.com/arloliu/codecbench/internal/options"
)

// DefaultRepetitions is the number of timed repetitions per codec and direction.
const DefaultRepetitions = 3

// Config holds the harness configuration. Build it with NewConfig.
type Config struct {
	repetitions int
	warmup      bool
	logger      *slog.Logger
}

// Option configures a Config.
type Option = options.Option[*Config]

// NewConfig creates a Config with defaults and applies opts in order.
//
// Defaults:
//   - repetitions: DefaultRepetitions
//   - warm-up: enabled
//   - logger: discards everything
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{
		repetitions: DefaultRepetitions,
		warmup:      true,
		logger:      slog.New(slog.DiscardHandler),
	}

	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Repetitions returns the number of timed repetitions per direction.
func (c *Config) Repetitions() int { return c.repetitions }

// Warmup reports whether an untimed warm-up cycle runs before the repetitions.
func (c *Config) Warmup() bool { return c.warmup }

// Logger returns the logger progress is reported to.
func (c *Config) Logger() *slog.Logger { return c.logger }

// WithRepetitions sets the number of timed repetitions; n must be at least 1.
func WithRepetitions(n int) Option {
	return options.New(func(c *Config) error {
		if n < 1 {
			return errors.New("repetitions must be at least 1")
		}
		c.repetitions = n

		return nil
	})
}

// WithWarmup enables or disables the untimed warm-up cycle.
func WithWarmup(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.warmup = enabled
	})
}

// WithLogger sets the progress logger. A nil logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *Config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	})
}
