package layout

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse reads the textual layout syntax into a Layout.
//
// Syntax:
//
//	rows are separated by ';', cells within a row by any run of whitespace
//	(spaces, tabs, newlines). Every cell must be an integer; signs and
//	multi-digit values are accepted. A single trailing ';' is tolerated.
//
//	" 0  1  0;
//	  2  3  4;
//	  0  5  0"
//
// Errors (all match ErrMalformedLayout via errors.Is):
//   - ErrEmptyLayout when the text holds no cells.
//   - ErrNonRectangular when a row's cell count differs from the first row.
//   - a wrapped *strconv.NumError for a token that is not an integer.
//
// Parse does not look for duplicated channels; run HasDuplicateChannel first.
// Complexity: O(len(text)).
func Parse(text string) (*Layout, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyLayout
	}
	segments := strings.Split(text, RowSeparator)
	// "1 2; 3 4;" describes two rows, not three
	if n := len(segments); n > 1 && strings.TrimSpace(segments[n-1]) == "" {
		segments = segments[:n-1]
	}

	rows := make([][]int, len(segments))
	for i, seg := range segments {
		fields := strings.Fields(seg)
		row := make([]int, len(fields))
		for j, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, column %d: %w", ErrMalformedLayout, i, j, err)
			}
			row[j] = v
		}
		if i > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("%w (row %d has %d cells, row 0 has %d)",
				ErrNonRectangular, i, len(row), len(rows[0]))
		}
		rows[i] = row
	}

	return New(rows)
}

// HasDuplicateChannel reports whether any positive channel index appears
// more than once in the layout text. Tokens are delimited by any character
// that is neither a letter, a digit nor a sign, so "1 1", "1;1" and "1, 1"
// all repeat channel 1, while "1 11" does not.
// Tokens that are not integers, zero and negative values are ignored; Parse
// reports malformed tokens.
// Complexity: O(len(text)).
func HasDuplicateChannel(text string) bool {
	seen := make(map[int]struct{})
	for _, tok := range strings.FieldsFunc(text, isTokenBreak) {
		v, err := strconv.Atoi(tok)
		if err != nil || v <= Empty {
			continue
		}
		if _, dup := seen[v]; dup {
			return true
		}
		seen[v] = struct{}{}
	}
	return false
}

// isTokenBreak splits raw layout text into candidate integer tokens.
func isTokenBreak(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '+'
}

// CheckDuplicates is the grid counterpart of HasDuplicateChannel. It returns
// an error wrapping ErrDuplicateChannel that names the first repeated channel
// and both of its positions, or nil.
// Complexity: O(R×C).
func CheckDuplicates(grid [][]int) error {
	seen := make(map[int]Position)
	for r, row := range grid {
		for c, v := range row {
			if v <= Empty {
				continue
			}
			if first, dup := seen[v]; dup {
				return fmt.Errorf("%w: channel %d at %s and %s",
					ErrDuplicateChannel, v, first, Position{Row: r, Col: c})
			}
			seen[v] = Position{Row: r, Col: c}
		}
	}
	return nil
}
