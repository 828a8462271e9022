package bench

import (
	"errors"
	"fmt"
)

var (
	// ErrRoundTrip reports that decompressing a codec's output did not reproduce the input.
	ErrRoundTrip = errors.New("round-trip mismatch")

	// ErrCodecPanic reports that a codec call panicked.
	ErrCodecPanic = errors.New("codec panicked")

	// ErrInputMutated reports that a codec wrote to the shared input buffer.
	ErrInputMutated = errors.New("shared input buffer was modified")
)

// TrialError describes the failure that invalidated a codec's trial.
type TrialError struct {
	Codec      string    // Codec display name
	Repetition int       // 0 for the warm-up cycle, 1..R for timed repetitions
	Direction  Direction // Direction that failed
	Err        error     // Underlying cause
}

func (e *TrialError) Error() string {
	run := "warm-up"
	if e.Repetition > 0 {
		run = fmt.Sprintf("repetition %d", e.Repetition)
	}

	return fmt.Sprintf("%s: %s %s: %v", e.Codec, run, e.Direction, e.Err)
}

func (e *TrialError) Unwrap() error {
	return e.Err
}
