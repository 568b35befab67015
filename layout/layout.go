// Package layout provides the channel grid and its geometric queries:
//
//   - Construction from a pre-built grid (New) or from text (Parse)
//   - Channel lookup (Locate) and 4-connected neighbours (Neighbors)
//   - Contiguous electrode islands (Components)
//
// Cells equal to 0 are empty slots; every other value is a channel index.
package layout

import (
	"sort"
	"strconv"
	"strings"
)

// New constructs a Layout from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyLayout if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Duplicated channel indices are NOT checked here; see CheckDuplicates.
// Algorithmic complexity: O(R×C) time and memory.
func New(grid [][]int) (*Layout, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, ErrEmptyLayout
	}
	h, w := len(grid), len(grid[0])
	for _, row := range grid {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for r := 0; r < h; r++ {
		cells[r] = make([]int, w)
		copy(cells[r], grid[r])
	}

	return &Layout{
		height:          h,
		width:           w,
		cells:           cells,
		neighborOffsets: conn4,
	}, nil
}

// Rows returns the number of grid rows.
func (l *Layout) Rows() int { return l.height }

// Cols returns the number of grid columns.
func (l *Layout) Cols() int { return l.width }

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (l *Layout) InBounds(row, col int) bool {
	return row >= 0 && row < l.height && col >= 0 && col < l.width
}

// At returns the channel index stored at (row,col), or Empty when out of bounds.
func (l *Layout) At(row, col int) int {
	if !l.InBounds(row, col) {
		return Empty
	}
	return l.cells[row][col]
}

// Grid returns a deep copy of the cells, suitable for persistence or for
// feeding back into New.
func (l *Layout) Grid() [][]int {
	out := make([][]int, l.height)
	for r := range l.cells {
		out[r] = append([]int(nil), l.cells[r]...)
	}
	return out
}

// MaxChannel returns the largest value stored in the grid.
// For a grid holding only empty or negative cells the result is ≤ 0.
func (l *Layout) MaxChannel() int {
	hi := l.cells[0][0]
	for _, row := range l.cells {
		for _, v := range row {
			if v > hi {
				hi = v
			}
		}
	}
	return hi
}

// Channels returns every positive channel index in ascending order.
// A channel placed twice is reported twice.
func (l *Layout) Channels() []int {
	var out []int
	for _, row := range l.cells {
		for _, v := range row {
			if v > Empty {
				out = append(out, v)
			}
		}
	}
	sort.Ints(out)
	return out
}

// Locate scans the grid in row-major order and returns the first cell
// holding channel. The boolean is false when the channel has no position,
// which is a legitimate answer rather than an error.
// Complexity: O(R×C).
func (l *Layout) Locate(channel int) (Position, bool) {
	for r := 0; r < l.height; r++ {
		for c := 0; c < l.width; c++ {
			if l.cells[r][c] == channel {
				return Position{Row: r, Col: c}, true
			}
		}
	}
	return Position{}, false
}

// Neighbors returns the values of the non-empty cells adjacent to (row,col)
// in the fixed order left, right, up, down. Cells outside the grid and empty
// cells are skipped. Values are returned as stored; they are not checked
// against any channel count.
// Returns nil when (row,col) itself is out of bounds.
// Complexity: O(1).
func (l *Layout) Neighbors(row, col int) []int {
	if !l.InBounds(row, col) {
		return nil
	}
	out := make([]int, 0, len(l.neighborOffsets))
	for _, d := range l.neighborOffsets {
		nr, nc := row+d[0], col+d[1]
		if !l.InBounds(nr, nc) || l.cells[nr][nc] == Empty {
			continue
		}
		out = append(out, l.cells[nr][nc])
	}
	return out
}

// String renders the layout back into the textual syntax accepted by Parse,
// one row per line: "1 2 3;\n4 5 6".
func (l *Layout) String() string {
	var sb strings.Builder
	for r, row := range l.cells {
		for c, v := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(v))
		}
		if r < l.height-1 {
			sb.WriteString(RowSeparator + "\n")
		}
	}
	return sb.String()
}

// index maps (row,col) to a row-major index: row*width + col.
func (l *Layout) index(row, col int) int {
	return row*l.width + col
}
