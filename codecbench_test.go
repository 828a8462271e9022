package codecbench

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/codecbench/bench"
	"github.com/arloliu/codecbench/codec"
)

func TestBenchmark_OneSummaryPerCodec(t *testing.T) {
	data := bytes.Repeat([]byte("abcdefgh"), 4096)
	codecs := []codec.Codec{codec.NewCopyCodec(), codec.NewS2Codec(), codec.NewLZ4Codec()}

	summaries, cfg, err := Benchmark(data, codecs, bench.WithRepetitions(2))
	require.NoError(t, err)
	require.Equal(t, 2, cfg.Repetitions())
	require.Len(t, summaries, len(codecs))

	require.Equal(t, "memcpy", summaries[0].Name)
	require.Equal(t, "1.00", summaries[0].Ratio.String())
	for _, s := range summaries[1:] {
		require.NoError(t, s.Err)
		v, ok := s.Ratio.Value()
		require.True(t, ok)
		require.Greater(t, v, 4.0, s.Name)
	}
}

func TestBenchmark_InvalidOption(t *testing.T) {
	_, _, err := Benchmark(nil, nil, bench.WithRepetitions(0))
	require.Error(t, err)
}

func TestRun_WritesTable(t *testing.T) {
	data := bytes.Repeat([]byte("lorem ipsum dolor sit amet "), 1024)

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, "lorem.txt", data, bench.WithRepetitions(1)))

	out := buf.String()
	require.Contains(t, out, "File: lorem.txt\n")
	require.Contains(t, out, "Number of runs per algorithm: 1\n")

	rows := 0
	for _, line := range strings.Split(out, "\n") {
		if strings.HasPrefix(line, "| ") && !strings.HasPrefix(line, "| Algorithm") && !strings.HasPrefix(line, "| ---") {
			rows++
		}
	}
	require.Equal(t, len(codec.Default()), rows)
}

func TestRunFile_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	err := RunFile(&buf, filepath.Join(t.TempDir(), "missing.bin"))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Zero(t, buf.Len())
}
