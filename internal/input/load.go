// Package input loads the benchmark input file into memory.
package input

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotRegularFile is returned when the input path names a directory or device.
var ErrNotRegularFile = errors.New("not a regular file")

// Load reads the whole file at path into memory.
//
// The returned slice is the only copy of the input; callers share it read-only.
// An empty file yields an empty, non-nil slice.
func Load(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("read input %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("read input %q: %w", path, ErrNotRegularFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input %q: %w", path, err)
	}
	if data == nil {
		data = []byte{}
	}

	return data, nil
}
