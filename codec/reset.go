package codec

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/codecbench/format"
)

// Encoder is a compressing writer that can be retargeted without rebuilding its state.
type Encoder interface {
	io.WriteCloser

	// Reset discards buffered output and directs the next stream to w.
	Reset(w io.Writer) error
}

// Decoder is a decompressing reader that can be retargeted without rebuilding its state.
type Decoder interface {
	io.Reader

	// Reset discards the current stream and starts decoding r.
	Reset(r io.Reader) error
}

// EncoderFunc opens an Encoder on top of w with the codec's fixed settings.
type EncoderFunc func(w io.Writer) (Encoder, error)

// DecoderFunc opens a Decoder on top of r.
type DecoderFunc func(r io.Reader) (Decoder, error)

// primerPayload is compressed and decompressed once while preparing a session,
// so lazily allocated encoder and decoder tables exist before any timed call.
var primerPayload = []byte("codecbench primer: warm encoder and decoder state")

// ResetCodec adapts a streaming library whose writers and readers support Reset.
//
// The codec itself holds no encoder state. Prepare builds a session owning one
// encoder and one decoder; the session's calls only reset and reuse them, so the
// cost of building that state is paid outside the call.
type ResetCodec struct {
	name       string
	algo       format.Algorithm
	newEncoder EncoderFunc
	newDecoder DecoderFunc
}

var (
	_ AppendCodec = (*ResetCodec)(nil)
	_ Preparer    = (*ResetCodec)(nil)
)

// NewResetCodec creates a codec from an encoder and decoder constructor pair.
func NewResetCodec(name string, algo format.Algorithm, newEncoder EncoderFunc, newDecoder DecoderFunc) *ResetCodec {
	return &ResetCodec{
		name:       name,
		algo:       algo,
		newEncoder: newEncoder,
		newDecoder: newDecoder,
	}
}

func (c *ResetCodec) Name() string                { return c.name }
func (c *ResetCodec) Algorithm() format.Algorithm { return c.algo }

func (c *ResetCodec) Compress(data []byte) ([]byte, error) {
	return c.CompressAppend(nil, data)
}

func (c *ResetCodec) Decompress(data []byte) ([]byte, error) {
	return c.DecompressAppend(nil, data)
}

// CompressBound returns a generous estimate of the compressed size.
func (c *ResetCodec) CompressBound(n int) int {
	return streamCompressBound(n)
}

// CompressAppend compresses src with a freshly prepared session.
func (c *ResetCodec) CompressAppend(dst, src []byte) ([]byte, error) {
	s, err := c.prepare()
	if err != nil {
		return nil, err
	}

	return s.CompressAppend(dst, src)
}

// DecompressAppend decompresses src with a freshly prepared session.
func (c *ResetCodec) DecompressAppend(dst, src []byte) ([]byte, error) {
	s, err := c.prepare()
	if err != nil {
		return nil, err
	}

	return s.DecompressAppend(dst, src)
}

// Prepare builds a session with its encoder and decoder already allocated and
// exercised once.
//
// A session is single-goroutine; use one per repetition.
func (c *ResetCodec) Prepare() (AppendCodec, error) {
	return c.prepare()
}

func (c *ResetCodec) prepare() (*resetSession, error) {
	s := &resetSession{codec: c}

	enc, err := c.newEncoder(&s.out)
	if err != nil {
		return nil, fmt.Errorf("%s: open encoder: %w", c.name, err)
	}
	s.enc = enc

	// Decoder constructors may parse a stream header, so they need a real stream.
	primer, err := s.CompressAppend(nil, primerPayload)
	if err != nil {
		return nil, err
	}

	s.src.Reset(primer)
	dec, err := c.newDecoder(&s.src)
	if err != nil {
		return nil, fmt.Errorf("%s: open decoder: %w", c.name, err)
	}
	s.dec = dec

	out, err := readAllInto(make([]byte, 0, len(primerPayload)+1), dec)
	if err != nil {
		return nil, fmt.Errorf("%s: prime decoder: %w", c.name, err)
	}
	if !bytes.Equal(out, primerPayload) {
		return nil, fmt.Errorf("%s: prime decoder: output mismatch", c.name)
	}

	s.out.buf = nil
	s.src.Reset(nil)

	return s, nil
}

// resetSession owns one encoder and one decoder for a ResetCodec.
type resetSession struct {
	codec *ResetCodec
	enc   Encoder
	dec   Decoder
	out   appendWriter
	src   bytes.Reader
}

func (s *resetSession) Name() string                { return s.codec.name }
func (s *resetSession) Algorithm() format.Algorithm { return s.codec.algo }
func (s *resetSession) CompressBound(n int) int     { return streamCompressBound(n) }

func (s *resetSession) Compress(data []byte) ([]byte, error) {
	return s.CompressAppend(nil, data)
}

func (s *resetSession) Decompress(data []byte) ([]byte, error) {
	return s.DecompressAppend(nil, data)
}

// CompressAppend resets the encoder onto dst[:0] and writes one complete stream.
func (s *resetSession) CompressAppend(dst, src []byte) ([]byte, error) {
	name := s.codec.name
	s.out.buf = dst[:0]

	if err := s.enc.Reset(&s.out); err != nil {
		return nil, fmt.Errorf("%s: reset encoder: %w", name, err)
	}
	if _, err := s.enc.Write(src); err != nil {
		_ = s.enc.Close()
		return nil, fmt.Errorf("%s: write: %w", name, err)
	}
	if err := s.enc.Close(); err != nil {
		return nil, fmt.Errorf("%s: close encoder: %w", name, err)
	}

	out := s.out.buf
	s.out.buf = nil

	return out, nil
}

// DecompressAppend resets the decoder onto src and reads the stream into dst[:0].
func (s *resetSession) DecompressAppend(dst, src []byte) ([]byte, error) {
	name := s.codec.name
	s.src.Reset(src)

	if err := s.dec.Reset(&s.src); err != nil {
		return nil, fmt.Errorf("%s: reset decoder: %w", name, err)
	}

	out, err := readAllInto(dst[:0], s.dec)
	if err != nil {
		return nil, fmt.Errorf("%s: read: %w", name, err)
	}

	return out, nil
}

// appendWriter appends everything written to buf.
type appendWriter struct {
	buf []byte
}

func (w *appendWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	return len(p), nil
}

// encoderAdapter gives writers whose Reset returns nothing the Encoder signature.
type encoderAdapter struct {
	io.WriteCloser
	reset func(w io.Writer)
}

func (e encoderAdapter) Reset(w io.Writer) error {
	e.reset(w)

	return nil
}

// dictResetter matches the Reset method of flate and zlib readers.
type dictResetter interface {
	Reset(r io.Reader, dict []byte) error
}

// dictDecoder adapts a reader with a dictionary-taking Reset to Decoder.
type dictDecoder struct {
	io.Reader
	resetter dictResetter
}

func newDictDecoder(r io.Reader) (Decoder, error) {
	dr, ok := r.(dictResetter)
	if !ok {
		return nil, fmt.Errorf("reader %T cannot be reset", r)
	}

	return dictDecoder{Reader: r, resetter: dr}, nil
}

func (d dictDecoder) Reset(r io.Reader) error {
	return d.resetter.Reset(r, nil)
}
