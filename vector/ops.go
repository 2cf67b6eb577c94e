// SPDX-License-Identifier: MIT
// Package vector - arithmetic kernels.
//
// Purpose:
//   - Element-wise arithmetic, products, norms and tolerance comparison.
//   - Every kernel validates operands first and returns a fresh Vector;
//     receivers and arguments are never mutated.
//
// Determinism:
//   - Fixed loop order 0..N-1 in every kernel.

package vector

import (
	"math"
)

// crossDim is the only dimension for which Cross is defined.
const crossDim = 3

// validatePair checks that o is non-nil and has the receiver's dimension.
func (v *Vector) validatePair(op string, o *Vector) error {
	if o == nil {
		return vectorErrorf(op, ErrNilVector)
	}
	if len(o.data) != len(v.data) {
		return &DimensionError{Op: op, Expected: len(v.data), Actual: len(o.data)}
	}

	return nil
}

// addSub computes out = v + sign*o for sign ∈ {+1, -1}.
// Internal helper for Add/Sub sharing validation and allocation.
// Complexity: O(N).
func (v *Vector) addSub(o *Vector, sign float64, op string) (*Vector, error) {
	if err := v.validatePair(op, o); err != nil {
		return nil, err
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] + sign*o.data[i]
	}

	return &Vector{data: out}, nil
}

// Add returns v + o. Fails with *DimensionError when lengths differ.
func (v *Vector) Add(o *Vector) (*Vector, error) { return v.addSub(o, +1, opAdd) }

// Sub returns v - o. Fails with *DimensionError when lengths differ.
func (v *Vector) Sub(o *Vector) (*Vector, error) { return v.addSub(o, -1, opSub) }

// Scale returns k*v.
// Complexity: O(N).
func (v *Vector) Scale(k float64) *Vector {
	out := make([]float64, len(v.data))
	for i, x := range v.data {
		out[i] = k * x
	}

	return &Vector{data: out}
}

// Negate returns -v.
func (v *Vector) Negate() *Vector { return v.Scale(-1) }

// Dot returns Σ vᵢ·oᵢ.
// Complexity: O(N).
func (v *Vector) Dot(o *Vector) (float64, error) {
	if err := v.validatePair(opDot, o); err != nil {
		return 0, err
	}
	var acc float64
	for i := range v.data {
		acc += v.data[i] * o.data[i]
	}

	return acc, nil
}

// Cross returns the right-handed cross product v × o.
// MAIN DESCRIPTION:
//   - Defined only when both operands are 3-dimensional.
//
// Implementation:
//   - Stage 1: receiver must be 3D; else ErrInvalidOperation.
//   - Stage 2: o must be non-nil and 3D; else ErrNilVector / *DimensionError.
//   - Stage 3: (v1·o2 − v2·o1, v2·o0 − v0·o2, v0·o1 − v1·o0).
//
// Complexity:
//   - Time O(1), Space O(1).
func (v *Vector) Cross(o *Vector) (*Vector, error) {
	if len(v.data) != crossDim {
		return nil, vectorErrorf(opCross, ErrInvalidOperation)
	}
	if err := v.validatePair(opCross, o); err != nil {
		return nil, err
	}
	a, b := v.data, o.data

	return &Vector{data: []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}}, nil
}

// Length returns the Euclidean norm √(Σvᵢ²).
// Complexity: O(N).
func (v *Vector) Length() float64 {
	var acc float64
	for _, x := range v.data {
		acc += x * x
	}

	return math.Sqrt(acc)
}

// Normalize returns v / Length().
// Returns ErrDegenerateVector when Length() < Tolerance; dividing by a
// near-zero length would produce noise or ±Inf instead of a direction.
// Complexity: O(N).
func (v *Vector) Normalize() (*Vector, error) {
	n := v.Length()
	if IsZero(n) {
		return nil, vectorErrorf(opNormalize, ErrDegenerateVector)
	}

	return v.Scale(1 / n), nil
}

// Equal reports whether o has the same dimension and every component is
// within Tolerance of v's.
func (v *Vector) Equal(o *Vector) bool { return v.ApproxEqual(o, Tolerance) }

// ApproxEqual is Equal with an explicit tolerance (|vᵢ − oᵢ| < tol for all i).
// A nil o or a dimension difference yields false.
func (v *Vector) ApproxEqual(o *Vector, tol float64) bool {
	if o == nil || len(o.data) != len(v.data) {
		return false
	}
	for i := range v.data {
		if math.Abs(v.data[i]-o.data[i]) >= tol {
			return false
		}
	}

	return true
}

// Perpendicular returns a vector orthogonal to v.
//   - N=2: (−y, x).
//   - N=3: the Y axis when v is the +Z direction (v·ẑ == 1 within Tolerance),
//     otherwise (−y, x, 0).
//   - other N: ErrInvalidOperation.
//
// The 3D rule assumes v is a unit vector, matching how callers use it for
// plane and axis construction.
func (v *Vector) Perpendicular() (*Vector, error) {
	switch len(v.data) {
	case 2:
		return &Vector{data: []float64{-v.data[1], v.data[0]}}, nil
	case 3:
		if AreEqual(v.data[2], 1) {
			return YAxis(), nil
		}

		return &Vector{data: []float64{-v.data[1], v.data[0], 0}}, nil
	default:
		return nil, vectorErrorf(opPerp, ErrInvalidOperation)
	}
}
