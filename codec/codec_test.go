package codec

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/codecbench/format"
)

// generateTestData creates test inputs with different compressibility.
func generateTestData(size int, kind string) []byte {
	data := make([]byte, size)

	switch kind {
	case "zeros":
		// data already initialized to zeros
	case "repetitive":
		pattern := []byte("the quick brown fox jumps over the lazy dog. ")
		for i := range data {
			data[i] = pattern[i%len(pattern)]
		}
	case "single_byte":
		for i := range data {
			data[i] = 'a'
		}
	default:
		rng := rand.New(rand.NewSource(42)) //nolint: gosec
		_, _ = rng.Read(data)
	}

	return data
}

func TestDefault_RegistrationOrder(t *testing.T) {
	codecs := Default()

	expected := []string{
		"memcpy",
		"gzip (level 6)",
		"snappy",
		"lz4",
		"zstd (level 1)",
		"zstd (level 3)",
		"zstd (level 10)",
		"xz",
		"lzma",
		"deflate (level 6)",
		"lz4hc (level 9)",
		"zlib (level 6)",
		"s2",
		"bzip2 (level 6)",
	}

	require.GreaterOrEqual(t, len(codecs), len(expected))
	for i, name := range expected {
		require.Equal(t, name, codecs[i].Name(), "codec at position %d", i)
	}
	for _, c := range codecs[len(expected):] {
		require.Equal(t, format.AlgorithmZstd, c.Algorithm(), "only cgo zstd may follow the fixed list")
	}
	require.True(t, codecs[0].Algorithm().IsBaseline())
}

func TestDefault_FreshListPerCall(t *testing.T) {
	a := Default()
	b := Default()
	require.Len(t, b, len(a))

	a[0] = nil
	require.NotNil(t, b[0])
}

func TestCodecs_RoundTrip(t *testing.T) {
	inputs := map[string][]byte{
		"empty":       {},
		"nil":         nil,
		"one_byte":    {0x42},
		"zeros":       generateTestData(64*1024, "zeros"),
		"repetitive":  generateTestData(100*1000, "repetitive"),
		"single_byte": generateTestData(256*1024, "single_byte"),
		"random":      generateTestData(128*1024, "random"),
	}

	for _, c := range Default() {
		for inputName, input := range inputs {
			t.Run(c.Name()+"/"+inputName, func(t *testing.T) {
				original := bytes.Clone(input)

				compressed, err := c.Compress(input)
				require.NoError(t, err)
				require.Equal(t, original, input, "Compress must not modify its input")

				decompressed, err := c.Decompress(compressed)
				require.NoError(t, err)
				require.True(t, bytes.Equal(input, decompressed), "round-trip mismatch")
			})
		}
	}
}

func TestAppendCodecs_RoundTripWithPreparedBuffers(t *testing.T) {
	input := generateTestData(200*1000, "repetitive")

	for _, c := range Default() {
		ac, ok := c.(AppendCodec)
		if !ok {
			continue
		}

		t.Run(c.Name(), func(t *testing.T) {
			cbuf := make([]byte, 0, ac.CompressBound(len(input)))
			compressed, err := ac.CompressAppend(cbuf, input)
			require.NoError(t, err)
			require.LessOrEqual(t, len(compressed), ac.CompressBound(len(input)))

			dbuf := make([]byte, 0, len(input)+1)
			decompressed, err := ac.DecompressAppend(dbuf, compressed)
			require.NoError(t, err)
			require.Equal(t, input, decompressed)
		})
	}
}

func TestAppendCodecs_UndersizedBuffersGrow(t *testing.T) {
	input := generateTestData(50*1000, "random")

	for _, c := range Default() {
		ac, ok := c.(AppendCodec)
		if !ok {
			continue
		}

		t.Run(c.Name(), func(t *testing.T) {
			compressed, err := ac.CompressAppend(make([]byte, 0, 16), input)
			require.NoError(t, err)

			decompressed, err := ac.DecompressAppend(make([]byte, 0, 16), compressed)
			require.NoError(t, err)
			require.Equal(t, input, decompressed)
		})
	}
}

func TestCopyCodec_DoesNotAlias(t *testing.T) {
	c := NewCopyCodec()
	input := []byte("baseline payload")

	out, err := c.Compress(input)
	require.NoError(t, err)
	require.Equal(t, input, out)

	out[0] = 'X'
	require.Equal(t, byte('b'), input[0])
	require.Equal(t, c.CompressBound(123), 123)
}

func TestCodecs_CompressRepetitiveInput(t *testing.T) {
	input := generateTestData(1024*1024, "single_byte")

	for _, c := range Default() {
		if c.Algorithm().IsBaseline() {
			continue
		}

		t.Run(c.Name(), func(t *testing.T) {
			compressed, err := c.Compress(input)
			require.NoError(t, err)
			require.Less(t, len(compressed)*4, len(input), "expected a substantial reduction")
		})
	}
}

func TestCodecs_RandomInputRatioNearOne(t *testing.T) {
	input := generateTestData(1024*1024, "random")

	for _, c := range Default() {
		if c.Algorithm().IsBaseline() {
			continue
		}

		t.Run(c.Name(), func(t *testing.T) {
			compressed, err := c.Compress(input)
			require.NoError(t, err)
			require.NotEmpty(t, compressed)

			ratio := float64(len(input)) / float64(len(compressed))
			require.InDelta(t, 1.0, ratio, 0.05, "high-entropy input should neither shrink nor grow much")
		})
	}
}

func TestResetCodecs_SessionReuse(t *testing.T) {
	inputs := [][]byte{
		generateTestData(64*1024, "repetitive"),
		{},
		generateTestData(32*1024, "random"),
		generateTestData(128*1024, "zeros"),
	}

	for _, c := range []*ResetCodec{NewGzipCodec(6), NewZlibCodec(6), NewDeflateCodec(6), NewBzip2Codec(6)} {
		t.Run(c.Name(), func(t *testing.T) {
			var p Preparer = c
			session, err := p.Prepare()
			require.NoError(t, err)
			require.Equal(t, c.Name(), session.Name())
			require.Equal(t, c.Algorithm(), session.Algorithm())

			for i, input := range inputs {
				compressed, err := session.CompressAppend(make([]byte, 0, session.CompressBound(len(input))), input)
				require.NoError(t, err, "input %d", i)

				// Output of the session must match a one-shot encode.
				oneShot, err := c.Compress(input)
				require.NoError(t, err)
				require.Equal(t, oneShot, compressed, "input %d", i)

				decompressed, err := session.DecompressAppend(make([]byte, 0, len(input)+1), compressed)
				require.NoError(t, err, "input %d", i)
				require.True(t, bytes.Equal(input, decompressed), "input %d", i)
			}
		})
	}
}

func TestResetCodecs_SessionDecodeError(t *testing.T) {
	session, err := NewGzipCodec(6).Prepare()
	require.NoError(t, err)

	_, err = session.DecompressAppend(nil, []byte("not gzip"))
	require.Error(t, err)

	// A failed decode does not poison the session.
	input := generateTestData(10*1000, "repetitive")
	compressed, err := session.CompressAppend(nil, input)
	require.NoError(t, err)
	out, err := session.DecompressAppend(nil, compressed)
	require.NoError(t, err)
	require.Equal(t, input, out)
}

func TestCodecs_DecompressCorruptInput(t *testing.T) {
	garbage := []byte("definitely not a compressed stream, just some text bytes")

	for _, c := range Default() {
		switch c.Algorithm() {
		case format.AlgorithmCopy:
			continue
		case format.AlgorithmLZ4, format.AlgorithmLZ4HC:
			// Raw LZ4 blocks carry no header; arbitrary text may be a valid block.
			continue
		}

		t.Run(c.Name(), func(t *testing.T) {
			_, err := c.Decompress(garbage)
			require.Error(t, err)
		})
	}
}

func TestLZ4LevelHC_Clamps(t *testing.T) {
	require.Equal(t, "lz4hc (level 1)", NewLZ4HCCodec(0).Name())
	require.Equal(t, "lz4hc (level 9)", NewLZ4HCCodec(12).Name())
	require.Equal(t, "lz4hc (level 5)", NewLZ4HCCodec(5).Name())
}

func TestZstdCompressBound(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{0, 64},
		{1024, 1024 + 4 + 63},
		{128 * 1024, 128*1024 + 512},
		{1024 * 1024, 1024*1024 + 4096},
	}

	for _, tt := range tests {
		require.Equal(t, tt.expected, zstdCompressBound(tt.n), "n=%d", tt.n)
	}
}

func TestFailedCodec(t *testing.T) {
	cause := errors.New("encoder options rejected")
	c := newFailedCodec("zstd (level 99)", format.AlgorithmZstd, cause)

	require.Equal(t, "zstd (level 99)", c.Name())
	require.Equal(t, format.AlgorithmZstd, c.Algorithm())

	_, err := c.Compress([]byte("x"))
	require.ErrorIs(t, err, cause)
	_, err = c.Decompress([]byte("x"))
	require.ErrorIs(t, err, cause)
}
