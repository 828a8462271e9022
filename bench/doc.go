// Package bench measures codecs against a shared in-memory input.
//
// A Harness walks an ordered codec list and hands each codec to a Runner, which
// performs an optional untimed warm-up cycle followed by a fixed number of timed
// compress/decompress repetitions. Only the codec call sits inside a timed region:
// destination buffers are prepared beforehand and round-trip verification happens
// afterwards.
//
// Failures stay local to the codec that caused them. A codec that errors, panics
// or fails to reproduce its input is recorded as failed and the harness moves on.
// The one exception is a codec that writes to the shared input buffer: every codec
// after it is marked failed as well, because the data they would measure is no
// longer the loaded file.
//
// Basic usage:
//
//	h, err := bench.NewHarness(bench.WithRepetitions(5))
//	if err != nil {
//		return err
//	}
//	report := h.Run(codec.Default(), data)
package bench
