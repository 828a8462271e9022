package codec

import "github.com/arloliu/codecbench/format"

// failedCodec stands in for a codec that could not be constructed.
type failedCodec struct {
	name string
	algo format.Algorithm
	err  error
}

var _ Codec = (*failedCodec)(nil)

func newFailedCodec(name string, algo format.Algorithm, err error) *failedCodec {
	return &failedCodec{name: name, algo: algo, err: err}
}

func (c *failedCodec) Name() string                { return c.name }
func (c *failedCodec) Algorithm() format.Algorithm { return c.algo }

func (c *failedCodec) Compress([]byte) ([]byte, error) {
	return nil, c.err
}

func (c *failedCodec) Decompress([]byte) ([]byte, error) {
	return nil, c.err
}
