// SPDX-License-Identifier: MIT
// Package mask: sentinel error set.
// Every message is prefixed with "mask: ..." so it greps cleanly in host
// logs. Call sites wrap with fmt.Errorf("ctx: %w", ErrX); callers match with
// errors.Is.

package mask

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChannelCount is returned when the requested mask dimension is
	// < 1 or above MaxChannels.
	ErrInvalidChannelCount = errors.New("mask: channel count out of range")

	// ErrNilLayout indicates a nil *layout.Layout was passed to the builder.
	ErrNilLayout = errors.New("mask: layout is nil")

	// ErrNilMatrix indicates a nil matrix operand.
	ErrNilMatrix = errors.New("mask: nil matrix")

	// ErrNonSquare signals that a square mask was required but the input wasn't.
	ErrNonSquare = errors.New("mask: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf weight.
	ErrNaNInf = errors.New("mask: NaN or Inf encountered")

	// ErrColumnInvariant signals a column that is neither zero, a unit
	// self weight, nor a self weight balanced by its neighbour weights.
	ErrColumnInvariant = errors.New("mask: column violates Laplacian invariant")

	// ErrDimensionMismatch indicates samples whose column count differs from
	// the mask's row count.
	ErrDimensionMismatch = errors.New("mask: dimension mismatch")
)

// maskErrorf tags a sentinel with the operation that detected it.
func maskErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
