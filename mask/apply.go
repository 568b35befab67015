package mask

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Apply returns samples · m: every output column is the fixed linear
// combination of input channels described by the matching mask column.
// samples is T×N (time rows, channel columns); m is N×M (M == N for a
// mask produced by Build).
//
// Errors:
//   - ErrNilMatrix: either operand is nil.
//   - ErrDimensionMismatch: samples has a column count other than m's rows.
//
// Complexity: O(T·N·M).
func Apply(samples, m mat.Matrix) (*mat.Dense, error) {
	if samples == nil || m == nil {
		return nil, maskErrorf("Apply", ErrNilMatrix)
	}
	tr, tc := samples.Dims()
	mr, _ := m.Dims()
	if tr == 0 || tc != mr {
		return nil, maskErrorf("Apply", fmt.Errorf("%w: samples %dx%d, mask has %d rows",
			ErrDimensionMismatch, tr, tc, mr))
	}

	var out mat.Dense
	out.Mul(samples, m)
	return &out, nil
}
