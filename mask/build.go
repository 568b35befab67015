package mask

import (
	"github.com/katalvlaran/laplacian/layout"
	"gonum.org/v1/gonum/mat"
)

// Build computes the n×n Laplacian mask for layout l.
//
// Algorithm:
//  1. Allocate an n×n zero matrix.
//  2. For channel c = 1..n (see Plan):
//     – not in layout → leave column c-1 zero;
//     – otherwise mask[c-1][c-1] = 1, then for every neighbour k (left,
//     right, up, down; only 1 ≤ k ≤ n) mask[k-1][c-1] = -1/deg.
//  3. A channel with deg == 0 keeps only its self weight.
//
// Zero columns for channels missing from the layout are intentional: the
// filtered output of such a channel is identically 0.
//
// Errors:
//   - ErrNilLayout, ErrInvalidChannelCount (see Plan).
//
// Complexity: O(n·R·C + n²) time, O(n²) memory.
func Build(l *layout.Layout, n int) (*mat.Dense, error) {
	plan, err := Plan(l, n)
	if err != nil {
		return nil, maskErrorf("Build", err)
	}
	return fromPlan(plan), nil
}

// fromPlan materialises a mask from resolved columns.
func fromPlan(plan []Column) *mat.Dense {
	n := len(plan)
	m := mat.NewDense(n, n, nil)
	for _, col := range plan {
		if !col.Found {
			continue
		}
		j := col.Channel - 1
		m.Set(j, j, 1)
		w := col.Weight()
		for _, k := range col.Neighbors {
			m.Set(k-1, j, w)
		}
	}
	return m
}
