// Package grid parsing: ParseDigits reads the contiguous-digit text format
// used for risk maps (one row per line, each cell a single digit '1'..'9').
package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseDigits reads a digit grid from r: one row per line, every cell a
// single digit '1'..'9' with no separators. Leading and trailing whitespace
// on a line is trimmed, and blank lines are skipped, so trailing newlines
// and CRLF input parse cleanly.
//
// Returns ErrBadDigit (with line and column context) on any non-digit cell,
// ErrEmptyGrid when r holds no rows, ErrNonRectangular on ragged rows, or a
// wrapped read error from the underlying reader.
// Complexity: O(W×H) time and memory.
func ParseDigits(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	var rows [][]int
	var line int
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue // skip blank lines between or after rows
		}
		row := make([]int, len(text))
		var col int
		var ch byte
		for col = 0; col < len(text); col++ {
			ch = text[col]
			if ch < '1' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d, column %d: %q", ErrBadDigit, line, col+1, ch)
			}
			row[col] = int(ch - '0')
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read input: %w", err)
	}

	// New revalidates shape: zero rows yield ErrEmptyGrid, ragged rows yield
	// ErrNonRectangular.
	return New(rows)
}

// ParseString parses a digit grid held in a string. See ParseDigits.
func ParseString(s string) (*Grid, error) {
	return ParseDigits(strings.NewReader(s))
}
