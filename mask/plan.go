package mask

import (
	"fmt"

	"github.com/katalvlaran/laplacian/layout"
)

// Column describes how one mask column is filled.
//
// Fields:
//   - Channel: 1-based channel index (column Channel-1 of the mask).
//   - Found: false when the channel has no cell in the layout; the
//     column then stays zero.
//   - Position: first cell holding Channel (row-major), valid if Found.
//   - Neighbors: grid neighbours restricted to 1..N, in left, right, up,
//     down order.
type Column struct {
	Channel   int
	Found     bool
	Position  layout.Position
	Neighbors []int
}

// Degree returns the number of neighbours that receive a weight.
func (c Column) Degree() int { return len(c.Neighbors) }

// Weight returns the weight written for each neighbour, -1/Degree,
// or 0 for a degenerate column.
func (c Column) Weight() float64 {
	if len(c.Neighbors) == 0 {
		return 0
	}
	return -1. / float64(len(c.Neighbors))
}

// MaxChannels caps the mask dimension. Dense EEG caps stop at a few hundred
// electrodes.
const MaxChannels = 4096

// ValidateChannelCount checks 1 ≤ n ≤ MaxChannels.
// Complexity: O(1).
func ValidateChannelCount(n int) error {
	if n < 1 || n > MaxChannels {
		return fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidChannelCount, n, MaxChannels)
	}
	return nil
}

// Plan resolves every channel 1..n against the layout without allocating the
// mask itself. Build consumes it; hosts can use it for diagnostics.
//
// Errors:
//   - ErrNilLayout: l == nil.
//   - ErrInvalidChannelCount: n < 1 or n > MaxChannels.
//
// Complexity: O(n·R·C).
func Plan(l *layout.Layout, n int) ([]Column, error) {
	if l == nil {
		return nil, maskErrorf("Plan", ErrNilLayout)
	}
	if err := ValidateChannelCount(n); err != nil {
		return nil, maskErrorf("Plan", err)
	}

	cols := make([]Column, n)
	for ch := 1; ch <= n; ch++ {
		col := Column{Channel: ch}
		pos, ok := l.Locate(ch)
		if ok {
			col.Found = true
			col.Position = pos
			for _, k := range l.Neighbors(pos.Row, pos.Col) {
				if k < 1 || k > n {
					continue // no column/row for this index in an n×n mask
				}
				col.Neighbors = append(col.Neighbors, k)
			}
		}
		cols[ch-1] = col
	}
	return cols, nil
}
