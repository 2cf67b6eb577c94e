// SPDX-License-Identifier: MIT

package matrix

// Inverse returns m⁻¹ by Gauss-Jordan elimination on [m | I].
// MAIN DESCRIPTION:
//   - Forward pass: Triangularize([m | I]).
//   - Backward pass: clear the entries above each pivot, last column first.
//   - Normalize: divide every row by its pivot; the right block is m⁻¹.
//
// Implementation:
//   - Stage 1: ValidateSquare (ErrNilMatrix / *DimensionError).
//   - Stage 2: a := Augment(m, I_N); u := Triangularize(a).
//   - Stage 3: any diagonal |u(c,c)| < Tolerance → *SingularError{Kind: ErrNotInvertible}.
//   - Stage 4: for c = N-1..1, for r < c: row[r] -= (u(r,c)/u(c,c)) · row[c] over all 2N columns.
//   - Stage 5: row[r] /= u(r,r); Extract(0, N, N, N).
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Inverse(m *Dense) (*Dense, error) {
	if err := ValidateSquare(opInverse, m); err != nil {
		return nil, err
	}
	n := m.r
	id, err := NewIdentity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := Augment(m, id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	u, _, err := Triangularize(aug)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if c := firstZeroPivot(u); c >= 0 {
		return nil, &SingularError{Op: opInverse, Column: c, Kind: ErrNotInvertible}
	}

	var c, r int
	for c = n - 1; c > 0; c-- {
		pivot := u.at(c, c)
		for r = 0; r < c; r++ {
			if f := u.at(r, c); f != 0 {
				u.addScaledRow(r, c, -f/pivot)
			}
		}
	}
	for r = 0; r < n; r++ {
		u.scaleRow(r, 1/u.at(r, r))
	}

	return u.Extract(0, n, n, n)
}
