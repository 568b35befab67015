// SPDX-License-Identifier: MIT
// Package: mask
//
// Purpose:
//  - Single source of truth for checks on masks coming from outside the
//    builder (injected, loaded from disk, calibrated offline).
//  - Return sentinel errors tagged with the validator name.
//
// Determinism:
//  - Pure, fixed column-major loops, no allocation beyond one column buffer.

package mask

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// DefaultEpsilon is the tolerance used when comparing column sums to 0 and
// self weights to 1.
const DefaultEpsilon = 1e-9

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m mat.Matrix) error {
	if m == nil {
		return maskErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSquare checks that m is non-nil and square.
// Complexity: O(1).
func ValidateSquare(m mat.Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return maskErrorf("ValidateSquare", err)
	}
	if r, c := m.Dims(); r != c {
		return maskErrorf("ValidateSquare", ErrNonSquare)
	}
	return nil
}

// ValidateFinite rejects any NaN or ±Inf entry.
// Complexity: O(r·c).
func ValidateFinite(m mat.Matrix) error {
	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return maskErrorf("ValidateFinite", fmt.Errorf("%w at (%d,%d)", ErrNaNInf, i, j))
			}
		}
	}
	return nil
}

// ColumnSums returns s where s[j] = Σ_i m[i,j].
// Complexity: O(r·c).
func ColumnSums(m mat.Matrix) []float64 {
	r, c := m.Dims()
	sums := make([]float64, c)
	buf := make([]float64, r)
	for j := 0; j < c; j++ {
		sums[j] = floats.Sum(mat.Col(buf, j, m))
	}
	return sums
}

// Verify checks that m has the shape of a Laplacian mask:
//
//   - square and finite;
//   - every column j is either all zero, or has m[j][j] == 1 and then is
//     either the unit self weight alone or sums to 0 (within DefaultEpsilon).
//
// Composite order: Square → Finite → per-column invariant.
// Complexity: O(n²).
func Verify(m mat.Matrix) error {
	if err := ValidateSquare(m); err != nil {
		return maskErrorf("Verify", err)
	}
	if err := ValidateFinite(m); err != nil {
		return maskErrorf("Verify", err)
	}
	n, _ := m.Dims()
	buf := make([]float64, n)
	for j := 0; j < n; j++ {
		col := mat.Col(buf, j, m)
		if isZero(col) {
			continue
		}
		if math.Abs(col[j]-1) > DefaultEpsilon {
			return maskErrorf("Verify", fmt.Errorf("%w: column %d self weight %g", ErrColumnInvariant, j, col[j]))
		}
		sum := floats.Sum(col)
		if math.Abs(sum) <= DefaultEpsilon || (math.Abs(sum-1) <= DefaultEpsilon && offDiagonalZero(col, j)) {
			continue
		}
		return maskErrorf("Verify", fmt.Errorf("%w: column %d sums to %g", ErrColumnInvariant, j, sum))
	}
	return nil
}

func isZero(v []float64) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

func offDiagonalZero(col []float64, j int) bool {
	for i, x := range col {
		if i != j && x != 0 {
			return false
		}
	}
	return true
}
