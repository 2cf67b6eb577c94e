// SPDX-License-Identifier: MIT

package matrix

import "math"

// Triangularize reduces a copy of m to upper-triangular form by Gaussian
// elimination with partial pivoting.
// MAIN DESCRIPTION:
//   - Input is N×K with K ≥ N: a square matrix, or an augmented [A | b] / [A | I].
//   - Row operations span all K columns, so augmented blocks follow along.
//   - Returns the reduced copy and the number of row swaps performed.
//
// Implementation:
//   - Stage 1: Validate m (ErrNilMatrix) and Rows ≤ Cols (ErrBadShape).
//   - Stage 2: Clone m; the input is never touched.
//   - Stage 3: For c = 0..N-2:
//     a) pivot row p = argmax_{r ∈ [c, N)} |u(r,c)|; ties keep the lowest r.
//     b) if |u(p,c)| < Tolerance, move on to the next column.
//     c) if p != c, swap rows c and p, swaps++.
//     d) for r > c: row[r] -= (u(r,c)/u(c,c)) · row[c].
//
// Behavior highlights:
//   - A degenerate column is skipped, never fatal: callers (Determinant,
//     Inverse, linsys.Solve) inspect the diagonal and decide.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape.
//
// Determinism:
//   - Fixed pivot scan order and tie rule; same input gives bit-identical output.
//
// Complexity:
//   - Time O(N²·K), Space O(N·K) for the copy.
func Triangularize(m *Dense) (*Dense, int, error) {
	if err := ValidateNotNil(opTriangularize, m); err != nil {
		return nil, 0, err
	}
	if m.r > m.c {
		return nil, 0, matrixErrorf(opTriangularize, ErrBadShape)
	}

	u := m.Clone()
	n := u.r
	swaps := 0
	var c, r, p int
	for c = 0; c < n-1; c++ {
		p = c
		best := math.Abs(u.at(c, c))
		for r = c + 1; r < n; r++ {
			if v := math.Abs(u.at(r, c)); v > best {
				best, p = v, r
			}
		}
		if best < Tolerance {
			continue
		}
		if p != c {
			u.swapRows(c, p)
			swaps++
		}
		pivot := u.at(c, c)
		for r = c + 1; r < n; r++ {
			if f := u.at(r, c); f != 0 {
				u.addScaledRow(r, c, -f/pivot)
			}
		}
	}

	return u, swaps, nil
}

// firstZeroPivot returns the first diagonal index of u (over its leading
// square block) whose magnitude is below Tolerance, or -1.
func firstZeroPivot(u *Dense) int {
	for i := 0; i < u.r; i++ {
		if math.Abs(u.at(i, i)) < Tolerance {
			return i
		}
	}

	return -1
}
