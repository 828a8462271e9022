package buffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrepared(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"zero", 0},
		{"negative", -5},
		{"smaller than a page", 100},
		{"exactly one page", pageSize},
		{"several pages", 3*pageSize + 17},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Prepared(tt.n)
			require.Empty(t, buf)
			require.Equal(t, max(tt.n, 0), cap(buf))
		})
	}
}

func TestPrefault_LeavesLengthUntouched(t *testing.T) {
	buf := make([]byte, 3, 2*pageSize)
	copy(buf, "abc")

	Prefault(buf)
	require.Equal(t, []byte("abc"), buf)
	require.Equal(t, 2*pageSize, cap(buf))
}

func TestPrefault_FullSliceUnchanged(t *testing.T) {
	buf := []byte("abcdef")

	Prefault(buf)
	require.Equal(t, []byte("abcdef"), buf)
}

func TestNewScratch(t *testing.T) {
	s := NewScratch(1024, 4096)
	require.Empty(t, s.Compressed)
	require.Empty(t, s.Decompressed)
	require.Equal(t, 1024, cap(s.Compressed))
	require.Equal(t, 4097, cap(s.Decompressed))

	empty := NewScratch(0, 0)
	require.Nil(t, empty.Compressed)
	require.Equal(t, 1, cap(empty.Decompressed))
}

func BenchmarkNewScratch(b *testing.B) {
	const size = 1024 * 1024
	b.SetBytes(size)
	for b.Loop() {
		_ = NewScratch(size+size/8, size)
	}
}
