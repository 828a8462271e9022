package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Runs    int
	Name    string
	Verbose bool
}

func withRuns(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n < 1 {
			return errors.New("runs must be at least 1")
		}
		c.Runs = n

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.Name = name
	})
}

func withVerbose() Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.Verbose = true
	})
}

func TestApply(t *testing.T) {
	t.Run("applies options in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withRuns(3), withName("first"), withName("second"), withVerbose())
		require.NoError(t, err)
		require.Equal(t, 3, cfg.Runs)
		require.Equal(t, "second", cfg.Name)
		require.True(t, cfg.Verbose)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("kept"), withRuns(0), withVerbose())
		require.Error(t, err)
		require.Contains(t, err.Error(), "runs must be at least 1")
		require.Equal(t, "kept", cfg.Name)
		require.False(t, cfg.Verbose)
	})

	t.Run("skips nil options", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withRuns(5), nil))
		require.Equal(t, 5, cfg.Runs)
	})

	t.Run("no options", func(t *testing.T) {
		cfg := &testConfig{Runs: 7}
		require.NoError(t, Apply(cfg))
		require.Equal(t, 7, cfg.Runs)
	})
}

func TestGenericsWithValueTypes(t *testing.T) {
	counter := 0
	opt := NoError(func(p *int) { *p += 2 })

	require.NoError(t, Apply(&counter, opt, opt))
	require.Equal(t, 4, counter)
}
