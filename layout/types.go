// Package layout defines core types and sentinel errors for channel layouts.
package layout

import (
	"errors"
	"fmt"
)

// Sentinel errors for layout operations.
var (
	// ErrMalformedLayout is the umbrella for every textual or shape failure.
	ErrMalformedLayout = errors.New("layout: malformed layout")
	// ErrEmptyLayout indicates the grid has no rows or no columns.
	ErrEmptyLayout = fmt.Errorf("%w: layout must have at least one row and one column", ErrMalformedLayout)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformedLayout)
	// ErrDuplicateChannel indicates a channel index placed in more than one cell.
	ErrDuplicateChannel = errors.New("layout: duplicated channel index")
)

const (
	// RowSeparator splits the textual layout into rows.
	RowSeparator = ";"
	// Empty marks a grid cell without a channel.
	Empty = 0
)

// Position addresses a single grid cell, 0-based.
type Position struct {
	Row, Col int
}

// String renders the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Layout is a rectangular grid of channel indices. It is immutable once built:
// the cells are reachable only through At and Grid (a copy), so a *Layout can
// be shared with the mask it was built for.
// cells[row][col] holds the channel index (0 for an empty slot).
// neighborOffsets is precomputed in the fixed left, right, up, down order.
type Layout struct {
	height, width   int
	cells           [][]int
	neighborOffsets [4][2]int
}

// conn4 lists (dRow, dCol) offsets in the left, right, up, down order.
var conn4 = [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
