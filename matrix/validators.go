// SPDX-License-Identifier: MIT
// Package matrix: centralized validators.
// Each validator returns a sentinel-compatible error (wrapped with the caller's
// operation tag or carried in a *DimensionError) so the public surface reports
// failures uniformly.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/math3d/vector"
)

// ValidateNotNil ensures m is non-nil.
// Returns ErrNilMatrix wrapped with op.
func ValidateNotNil(op string, m *Dense) error {
	if m == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}

	return nil
}

// ValidateSquare ensures m is non-nil and Rows == Cols.
// A non-square matrix yields *DimensionError{What: "cols"} (expected == Rows).
func ValidateSquare(op string, m *Dense) error {
	if err := ValidateNotNil(op, m); err != nil {
		return err
	}
	if m.r != m.c {
		return &DimensionError{Op: op, What: "cols (square required)", Expected: m.r, Actual: m.c}
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil and share (Rows, Cols).
func ValidateSameShape(op string, a, b *Dense) error {
	if a == nil || b == nil {
		return matrixErrorf(op, ErrNilMatrix)
	}
	if a.r != b.r {
		return &DimensionError{Op: op, What: "rows", Expected: a.r, Actual: b.r}
	}
	if a.c != b.c {
		return &DimensionError{Op: op, What: "cols", Expected: a.c, Actual: b.c}
	}

	return nil
}

// ValidateVecLen ensures v is non-nil and has length n.
// A nil v yields vector.ErrNilVector wrapped with op.
func ValidateVecLen(op string, v *vector.Vector, n int) error {
	if v == nil {
		return fmt.Errorf("%s: %w", op, vector.ErrNilVector)
	}
	if v.Len() != n {
		return &DimensionError{Op: op, What: "vector length", Expected: n, Actual: v.Len()}
	}

	return nil
}
