// Package report renders summarized benchmark results as a text table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/arloliu/codecbench/metrics"
)

// Header describes the benchmarked input.
type Header struct {
	Source       string // Input file name as given by the user
	OriginalSize int    // Input size in bytes
	Repetitions  int    // Timed repetitions per codec and direction
}

// Column titles, in order.
var titles = []string{"Algorithm", "Ratio", "Compress (MiB/s)", "Decompress (MiB/s)"}

// minWidths are the narrowest each column gets.
var minWidths = []int{20, 6, 16, 18}

// Write renders h and one row per summary, in the order given.
//
// Output layout:
//
//	File: <source>
//	Original size: <n> bytes (<x.xx> MiB)
//	Number of runs per algorithm: <r>
//
//	| Algorithm            |  Ratio | Compress (MiB/s) | Decompress (MiB/s) |
//	| -------------------- | ------ | ---------------- | ------------------ |
//	| memcpy               |   1.00 |         11234.56 |           11012.34 |
//
// The Algorithm column is left-aligned; numeric columns are right-aligned and
// unavailable figures render as metrics.Placeholder.
func Write(w io.Writer, h Header, summaries []metrics.Summary) error {
	// Allocate the cell grid; row 0 holds the titles.
	cells := make([][]string, 1+len(summaries))
	cells[0] = titles
	for i, s := range summaries {
		cells[1+i] = []string{
			s.Name,
			s.Ratio.String(),
			s.CompressMiBps.String(),
			s.DecompressMiBps.String(),
		}
	}

	// Compute the column widths.
	widths := append([]int(nil), minWidths...)
	for _, row := range cells {
		for i, c := range row {
			widths[i] = max(widths[i], len(c))
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "File: %s\n", h.Source)
	fmt.Fprintf(&sb, "Original size: %d bytes (%.2f MiB)\n", h.OriginalSize, float64(h.OriginalSize)/(1<<20))
	fmt.Fprintf(&sb, "Number of runs per algorithm: %d\n\n", h.Repetitions)

	writeRow(&sb, widths, cells[0])
	rule := make([]string, len(widths))
	for i, n := range widths {
		rule[i] = strings.Repeat("-", n)
	}
	writeRule(&sb, rule)
	for _, row := range cells[1:] {
		writeRow(&sb, widths, row)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeRow(sb *strings.Builder, widths []int, row []string) {
	for i, c := range row {
		pad := strings.Repeat(" ", widths[i]-len(c))
		if i == 0 {
			sb.WriteString("| " + c + pad + " ")
		} else {
			sb.WriteString("| " + pad + c + " ")
		}
	}
	sb.WriteString("|\n")
}

func writeRule(sb *strings.Builder, rule []string) {
	for _, r := range rule {
		sb.WriteString("| " + r + " ")
	}
	sb.WriteString("|\n")
}
