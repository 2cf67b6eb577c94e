// SPDX-License-Identifier: MIT

package linsys

import (
	"fmt"
	"math"

	"github.com/katalvlaran/math3d/matrix"
	"github.com/katalvlaran/math3d/vector"
)

const (
	opSolve    = "Solve"
	opResidual = "Residual"
)

// Solve returns x with A·x = b.
// MAIN DESCRIPTION:
//   - a is square N×N, b has length N.
//
// Implementation:
//   - Stage 1: matrix.ValidateSquare(a), matrix.ValidateVecLen(b, N).
//   - Stage 2: u := Triangularize([a | b]).
//   - Stage 3: for i = N-1..0: x[i] = (u(i,N) − Σ_{j>i} u(i,j)·x[j]) / u(i,i);
//     |u(i,i)| < Tolerance → *PivotError{Row: i}.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, vector.ErrNilVector,
//     ErrNoSolution (via *PivotError).
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Solve(a *matrix.Dense, b *vector.Vector) (*vector.Vector, error) {
	if err := matrix.ValidateSquare(opSolve, a); err != nil {
		return nil, err
	}
	n := a.Rows()
	if err := matrix.ValidateVecLen(opSolve, b, n); err != nil {
		return nil, err
	}
	aug, err := matrix.AugmentVector(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	u, _, err := matrix.Triangularize(aug)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}

	// column-major: u(i,j) = raw[j*n+i]
	raw := u.Raw()
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		pivot := raw[i*n+i]
		if math.Abs(pivot) < matrix.Tolerance {
			return nil, &PivotError{Row: i, Value: pivot}
		}
		acc := raw[n*n+i]
		for j := i + 1; j < n; j++ {
			acc -= raw[j*n+i] * x[j]
		}
		x[i] = acc / pivot
	}

	return vector.FromValues(n, x...)
}

// Residual returns the Euclidean norm |A·x − b|.
// Errors mirror Solve's shape checks.
func Residual(a *matrix.Dense, x, b *vector.Vector) (float64, error) {
	if err := matrix.ValidateNotNil(opResidual, a); err != nil {
		return 0, err
	}
	if err := matrix.ValidateVecLen(opResidual, b, a.Rows()); err != nil {
		return 0, err
	}
	ax, err := a.MulVec(x)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}
	d, err := ax.Sub(b)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opResidual, err)
	}

	return d.Length(), nil
}
