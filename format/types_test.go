package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAlgorithm_String(t *testing.T) {
	tests := []struct {
		name     string
		algo     Algorithm
		expected string
	}{
		{"copy", AlgorithmCopy, "Copy"},
		{"gzip", AlgorithmGzip, "Gzip"},
		{"snappy", AlgorithmSnappy, "Snappy"},
		{"lz4", AlgorithmLZ4, "LZ4"},
		{"lz4hc", AlgorithmLZ4HC, "LZ4HC"},
		{"zstd", AlgorithmZstd, "Zstd"},
		{"xz", AlgorithmXZ, "XZ"},
		{"lzma", AlgorithmLZMA, "LZMA"},
		{"deflate", AlgorithmDeflate, "Deflate"},
		{"zlib", AlgorithmZlib, "Zlib"},
		{"s2", AlgorithmS2, "S2"},
		{"bzip2", AlgorithmBzip2, "Bzip2"},
		{"unknown", Algorithm(0xFF), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.algo.String())
		})
	}
}

func TestAlgorithm_IsBaseline(t *testing.T) {
	require.True(t, AlgorithmCopy.IsBaseline())
	require.False(t, AlgorithmZstd.IsBaseline())
	require.False(t, Algorithm(0).IsBaseline())
}
