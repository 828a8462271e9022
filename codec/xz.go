package codec

import (
	"io"

	"github.com/ulikunitz/xz"
	"github.com/ulikunitz/xz/lzma"

	"github.com/arloliu/codecbench/format"
)

// NewXZCodec creates an xz (LZMA2) codec with the library's default preset.
func NewXZCodec() *StreamCodec {
	return NewStreamCodec("xz", format.AlgorithmXZ,
		func(w io.Writer) (io.WriteCloser, error) {
			return xz.NewWriter(w)
		},
		func(r io.Reader) (io.ReadCloser, error) {
			xr, err := xz.NewReader(r)
			if err != nil {
				return nil, err
			}

			return io.NopCloser(xr), nil
		})
}

// NewLZMACodec creates a codec for the legacy LZMA "alone" format.
func NewLZMACodec() *StreamCodec {
	return NewStreamCodec("lzma", format.AlgorithmLZMA,
		func(w io.Writer) (io.WriteCloser, error) {
			return lzma.NewWriter(w)
		},
		func(r io.Reader) (io.ReadCloser, error) {
			lr, err := lzma.NewReader(r)
			if err != nil {
				return nil, err
			}

			return io.NopCloser(lr), nil
		})
}
