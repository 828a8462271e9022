package codec

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/arloliu/codecbench/format"
)

// NewGzipCodec creates a gzip codec with the given DEFLATE level (1-9).
func NewGzipCodec(level int) *ResetCodec {
	return NewResetCodec(fmt.Sprintf("gzip (level %d)", level), format.AlgorithmGzip,
		func(w io.Writer) (Encoder, error) {
			zw, err := gzip.NewWriterLevel(w, level)
			if err != nil {
				return nil, err
			}

			return encoderAdapter{WriteCloser: zw, reset: zw.Reset}, nil
		},
		func(r io.Reader) (Decoder, error) {
			return gzip.NewReader(r)
		})
}

// NewZlibCodec creates a zlib codec with the given DEFLATE level (1-9).
func NewZlibCodec(level int) *ResetCodec {
	return NewResetCodec(fmt.Sprintf("zlib (level %d)", level), format.AlgorithmZlib,
		func(w io.Writer) (Encoder, error) {
			zw, err := zlib.NewWriterLevel(w, level)
			if err != nil {
				return nil, err
			}

			return encoderAdapter{WriteCloser: zw, reset: zw.Reset}, nil
		},
		func(r io.Reader) (Decoder, error) {
			zr, err := zlib.NewReader(r)
			if err != nil {
				return nil, err
			}

			return newDictDecoder(zr)
		})
}

// NewDeflateCodec creates a raw DEFLATE codec (no framing, no checksum).
func NewDeflateCodec(level int) *ResetCodec {
	return NewResetCodec(fmt.Sprintf("deflate (level %d)", level), format.AlgorithmDeflate,
		func(w io.Writer) (Encoder, error) {
			fw, err := flate.NewWriter(w, level)
			if err != nil {
				return nil, err
			}

			return encoderAdapter{WriteCloser: fw, reset: fw.Reset}, nil
		},
		func(r io.Reader) (Decoder, error) {
			return newDictDecoder(flate.NewReader(r))
		})
}
