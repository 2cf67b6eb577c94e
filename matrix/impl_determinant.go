// SPDX-License-Identifier: MIT

package matrix

// Determinant returns det(m) for a square matrix.
// MAIN DESCRIPTION:
//   - det = Π diag(U) · (−1)^swaps, where U, swaps come from Triangularize.
//
// Implementation:
//   - Stage 1: ValidateSquare (ErrNilMatrix / *DimensionError).
//   - Stage 2: Triangularize a copy.
//   - Stage 3: first diagonal entry below Tolerance → *SingularError{Kind: ErrSingularMatrix}.
//   - Stage 4: multiply the diagonal and apply the swap parity.
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Determinant(m *Dense) (float64, error) {
	if err := ValidateSquare(opDeterminant, m); err != nil {
		return 0, err
	}
	u, swaps, err := Triangularize(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if c := firstZeroPivot(u); c >= 0 {
		return 0, &SingularError{Op: opDeterminant, Column: c, Kind: ErrSingularMatrix}
	}

	det := 1.0
	for i := 0; i < u.r; i++ {
		det *= u.at(i, i)
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det, nil
}
