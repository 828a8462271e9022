package bench

import (
	"errors"

	"github.com/arloliu/codecbench/format"
)

// fakeCodec is a scripted codec for exercising runner and harness failure paths.
type fakeCodec struct {
	name string

	compressErr   error
	decompressErr error
	panicOn       Direction
	failAfter     int  // fail compression from this call onwards; 0 never
	corrupt       bool // return output that does not round-trip
	mutate        bool // overwrite the first byte of the input during compression

	compressCalls   int
	decompressCalls int
}

func (f *fakeCodec) Name() string                { return f.name }
func (f *fakeCodec) Algorithm() format.Algorithm { return format.AlgorithmCopy }

func (f *fakeCodec) Compress(data []byte) ([]byte, error) {
	f.compressCalls++
	if f.panicOn == DirectionCompress {
		panic("compress exploded")
	}
	if f.compressErr != nil {
		return nil, f.compressErr
	}
	if f.failAfter > 0 && f.compressCalls >= f.failAfter {
		return nil, errFakeLate
	}
	if f.mutate && len(data) > 0 {
		data[0] = '#'
	}

	return append([]byte(nil), data...), nil
}

func (f *fakeCodec) Decompress(data []byte) ([]byte, error) {
	f.decompressCalls++
	if f.panicOn == DirectionDecompress {
		panic("decompress exploded")
	}
	if f.decompressErr != nil {
		return nil, f.decompressErr
	}
	out := append([]byte(nil), data...)
	if f.corrupt {
		out = append(out, 0x00)
	}

	return out, nil
}

var errFakeLate = errors.New("late failure")
