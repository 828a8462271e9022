package metrics

import (
	"math"
	"strconv"
)

// Placeholder is rendered in place of an unavailable figure.
const Placeholder = "N/A"

// Figure is a derived number that may be unavailable.
//
// The zero value is unavailable. A Figure never holds NaN or an infinity, so an
// arithmetic fault can never reach the report as a number.
type Figure struct {
	value float64
	valid bool
}

// Available returns a Figure holding v, or an unavailable Figure when v is not finite.
func Available(v float64) Figure {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Figure{}
	}

	return Figure{value: v, valid: true}
}

// Unavailable returns a Figure with no value.
func Unavailable() Figure {
	return Figure{}
}

// Value returns the number and whether it is available.
func (f Figure) Value() (float64, bool) {
	return f.value, f.valid
}

// Valid reports whether the figure holds a number.
func (f Figure) Valid() bool {
	return f.valid
}

// String formats the figure with two decimal places, or as Placeholder.
func (f Figure) String() string {
	if !f.valid {
		return Placeholder
	}

	return strconv.FormatFloat(f.value, 'f', 2, 64)
}
