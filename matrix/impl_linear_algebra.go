// SPDX-License-Identifier: MIT
// Package matrix - products, transpose and element-wise arithmetic.
//
// Purpose:
//   - Shape-checked kernels returning fresh matrices/vectors; operands are never mutated.
//
// Determinism:
//   - Fixed loop orders (j outer, i inner where storage allows).

package matrix

import (
	"github.com/katalvlaran/math3d/vector"
)

// Transpose returns the C×R matrix t with t(i,j) = m(j,i).
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	t := newDenseUnchecked(m.c, m.r)
	var i, j int
	for j = 0; j < m.c; j++ {
		for i = 0; i < m.r; i++ {
			t.set(j, i, m.at(i, j))
		}
	}

	return t
}

// MulVec returns m·v.
// MAIN DESCRIPTION:
//   - v has length Cols; the result has length Rows with out[i] = Σⱼ m(i,j)·v[j].
//
// Implementation:
//   - Stage 1: ValidateVecLen(v, Cols).
//   - Stage 2: accumulate column by column (axpy form) to walk storage contiguously.
//
// Errors:
//   - vector.ErrNilVector, *DimensionError.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func (m *Dense) MulVec(v *vector.Vector) (*vector.Vector, error) {
	if err := ValidateVecLen(opMulVec, v, m.c); err != nil {
		return nil, err
	}
	in := v.Values()
	out := make([]float64, m.r)
	var i, j int
	for j = 0; j < m.c; j++ {
		x := in[j]
		col := m.data[j*m.r : (j+1)*m.r]
		for i = 0; i < m.r; i++ {
			out[i] += col[i] * x
		}
	}

	return vector.FromValues(m.r, out...)
}

// Mul returns the product m·b of an R×K and a K×C matrix.
// MAIN DESCRIPTION:
//   - out(i,j) = Σₖ m(i,k)·b(k,j).
//
// Errors:
//   - ErrNilMatrix; *DimensionError{What: "rows of right operand"} when m.Cols != b.Rows.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func (m *Dense) Mul(b *Dense) (*Dense, error) {
	if err := ValidateNotNil(opMul, b); err != nil {
		return nil, err
	}
	if m.c != b.r {
		return nil, &DimensionError{Op: opMul, What: "rows of right operand", Expected: m.c, Actual: b.r}
	}
	out := newDenseUnchecked(m.r, b.c)
	var i, j, k int
	for j = 0; j < b.c; j++ {
		dst := out.data[j*m.r : (j+1)*m.r]
		for k = 0; k < m.c; k++ {
			bkj := b.at(k, j)
			if bkj == 0 {
				continue
			}
			src := m.data[k*m.r : (k+1)*m.r]
			for i = 0; i < m.r; i++ {
				dst[i] += src[i] * bkj
			}
		}
	}

	return out, nil
}

// addSub computes m + sign*b for sign ∈ {+1, -1}.
// Internal helper for Add/Sub sharing validation and allocation.
func (m *Dense) addSub(b *Dense, sign float64, op string) (*Dense, error) {
	if err := ValidateSameShape(op, m, b); err != nil {
		return nil, err
	}
	out := newDenseUnchecked(m.r, m.c)
	for k := range m.data {
		out.data[k] = m.data[k] + sign*b.data[k]
	}

	return out, nil
}

// Add returns m + b (same shape required).
func (m *Dense) Add(b *Dense) (*Dense, error) { return m.addSub(b, +1, opAdd) }

// Sub returns m - b (same shape required).
func (m *Dense) Sub(b *Dense) (*Dense, error) { return m.addSub(b, -1, opSub) }

// Scale returns k*m.
func (m *Dense) Scale(k float64) *Dense {
	out := newDenseUnchecked(m.r, m.c)
	for idx, x := range m.data {
		out.data[idx] = k * x
	}

	return out
}
