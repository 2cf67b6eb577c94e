// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/math3d/vector"

// Augment returns the N×(N+Q) matrix [a | extra].
// a must be square N×N and extra must have N rows; both are copied.
//
// Errors:
//   - ErrNilMatrix; *DimensionError when a is not square or extra.Rows != N.
//
// Complexity: O(N*(N+Q)).
func Augment(a, extra *Dense) (*Dense, error) {
	if err := ValidateSquare(opAugment, a); err != nil {
		return nil, err
	}
	if err := ValidateNotNil(opAugment, extra); err != nil {
		return nil, err
	}
	if extra.r != a.r {
		return nil, &DimensionError{Op: opAugment, What: "rows of extra block", Expected: a.r, Actual: extra.r}
	}
	out := newDenseUnchecked(a.r, a.c+extra.c)
	// column-major: the two blocks are two contiguous runs
	copy(out.data, a.data)
	copy(out.data[len(a.data):], extra.data)

	return out, nil
}

// AugmentVector returns the N×(N+1) matrix [a | b].
// Errors mirror Augment, with ValidateVecLen on b.
func AugmentVector(a *Dense, b *vector.Vector) (*Dense, error) {
	if err := ValidateSquare(opAugmentVector, a); err != nil {
		return nil, err
	}
	if err := ValidateVecLen(opAugmentVector, b, a.r); err != nil {
		return nil, err
	}
	out := newDenseUnchecked(a.r, a.c+1)
	copy(out.data, a.data)
	copy(out.data[len(a.data):], b.Values())

	return out, nil
}
