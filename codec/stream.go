package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/codecbench/format"
)

// WriterFunc opens a compressing writer on top of w with the codec's fixed settings.
type WriterFunc func(w io.Writer) (io.WriteCloser, error)

// ReaderFunc opens a decompressing reader on top of r.
type ReaderFunc func(r io.Reader) (io.ReadCloser, error)

// StreamCodec adapts a streaming compression library without Reset support.
//
// Every call opens a new writer or reader, so building the encoder state is part
// of each call; only the output buffer is supplied by the caller. Libraries whose
// writers and readers can be reset use ResetCodec instead.
type StreamCodec struct {
	name      string
	algo      format.Algorithm
	newWriter WriterFunc
	newReader ReaderFunc
}

var _ AppendCodec = (*StreamCodec)(nil)

// NewStreamCodec creates a codec from a writer and reader constructor pair.
func NewStreamCodec(name string, algo format.Algorithm, newWriter WriterFunc, newReader ReaderFunc) *StreamCodec {
	return &StreamCodec{
		name:      name,
		algo:      algo,
		newWriter: newWriter,
		newReader: newReader,
	}
}

func (c *StreamCodec) Name() string                { return c.name }
func (c *StreamCodec) Algorithm() format.Algorithm { return c.algo }

func (c *StreamCodec) Compress(data []byte) ([]byte, error) {
	return c.CompressAppend(nil, data)
}

func (c *StreamCodec) Decompress(data []byte) ([]byte, error) {
	return c.DecompressAppend(nil, data)
}

// CompressBound returns a generous estimate of the compressed size; stream
// formats add framing and may expand incompressible input slightly.
func (c *StreamCodec) CompressBound(n int) int {
	return streamCompressBound(n)
}

// CompressAppend writes the compressed stream into dst[:0].
func (c *StreamCodec) CompressAppend(dst, src []byte) ([]byte, error) {
	buf := bytes.NewBuffer(dst[:0])

	w, err := c.newWriter(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: open writer: %w", c.name, err)
	}
	if _, err := w.Write(src); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("%s: write: %w", c.name, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%s: close writer: %w", c.name, err)
	}

	return buf.Bytes(), nil
}

// DecompressAppend reads the whole decompressed stream into dst[:0].
//
// dst needs one spare byte beyond the decompressed size to observe io.EOF
// without growing.
func (c *StreamCodec) DecompressAppend(dst, src []byte) ([]byte, error) {
	r, err := c.newReader(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("%s: open reader: %w", c.name, err)
	}

	out, err := readAllInto(dst[:0], r)
	if cerr := r.Close(); err == nil && cerr != nil {
		err = cerr
	}
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w", c.name, err)
	}

	return out, nil
}

func streamCompressBound(n int) int {
	return n + n>>3 + 1024
}

// readAllInto reads r until EOF, appending to dst and growing it only when full.
func readAllInto(dst []byte, r io.Reader) ([]byte, error) {
	for {
		if len(dst) == cap(dst) {
			dst = append(dst, 0)[:len(dst)]
		}

		n, err := r.Read(dst[len(dst):cap(dst)])
		dst = dst[:len(dst)+n]
		if err != nil {
			if errors.Is(err, io.EOF) {
				return dst, nil
			}

			return nil, err
		}
	}
}
