package codec

import (
	"fmt"
	"io"

	"github.com/dsnet/compress/bzip2"

	"github.com/arloliu/codecbench/format"
)

// NewBzip2Codec creates a bzip2 codec with the given block-size level (1-9).
func NewBzip2Codec(level int) *ResetCodec {
	return NewResetCodec(fmt.Sprintf("bzip2 (level %d)", level), format.AlgorithmBzip2,
		func(w io.Writer) (Encoder, error) {
			return bzip2.NewWriter(w, &bzip2.WriterConfig{Level: level})
		},
		func(r io.Reader) (Decoder, error) {
			return bzip2.NewReader(r, nil)
		})
}
