// SPDX-License-Identifier: MIT

// Package vector - Vector storage & safe accessors.
//
// Purpose:
//   - Own a flat []float64 of fixed length N (N ≥ MinDim).
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Expose named components (X, Y, Z, W) as plain accessors over the same slice.
//
// Complexity quicksheet:
//   - New/FromValues/Clone: O(N); At/Set/X/Y: O(1).

package vector

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- operation tags ----------

const (
	opNew        = "New"
	opFromValues = "FromValues"
	opOf         = "Of"
	opAt         = "At"
	opSet        = "Set"
	opZ          = "Z"
	opW          = "W"
	opAdd        = "Add"
	opSub        = "Sub"
	opDot        = "Dot"
	opCross      = "Cross"
	opNormalize  = "Normalize"
	opPerp       = "Perpendicular"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// Vector is an ordered fixed-length sequence of float64 scalars.
//   - data holds exactly N components; len(data) never changes.
//
// A Vector is used through *Vector. Copying the pointer shares storage;
// use Clone for an independent copy.
type Vector struct {
	data []float64 // components, len == N ≥ MinDim
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Vector)(nil)

// New returns an n-dimensional zero vector.
// Returns ErrBadShape when n < MinDim.
// Complexity: O(n).
func New(n int) (*Vector, error) {
	if n < MinDim {
		return nil, vectorErrorf(opNew, ErrBadShape)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// FromValues builds an n-dimensional vector from exactly n values.
// MAIN DESCRIPTION:
//   - Construct with an explicit, declared dimension; the supplied count must match.
//
// Implementation:
//   - Stage 1: validate n ≥ MinDim; else ErrBadShape.
//   - Stage 2: validate len(values) == n; else *DimensionError{Expected: n, Actual: len(values)}.
//   - Stage 3: copy values into a fresh buffer (caller's slice is not retained).
//
// Errors:
//   - ErrBadShape, ErrDimensionMismatch (via *DimensionError).
//
// Complexity:
//   - Time O(n), Space O(n).
func FromValues(n int, values ...float64) (*Vector, error) {
	if n < MinDim {
		return nil, vectorErrorf(opFromValues, ErrBadShape)
	}
	if len(values) != n {
		return nil, &DimensionError{Op: opFromValues, Expected: n, Actual: len(values)}
	}
	buf := make([]float64, n)
	copy(buf, values)

	return &Vector{data: buf}, nil
}

// Of builds a vector whose dimension is len(values).
// Returns ErrBadShape when fewer than MinDim values are given.
func Of(values ...float64) (*Vector, error) {
	if len(values) < MinDim {
		return nil, vectorErrorf(opOf, ErrBadShape)
	}

	return FromValues(len(values), values...)
}

// Len returns the dimension N.
func (v *Vector) Len() int { return len(v.data) }

// At returns component i or an *IndexError.
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, &IndexError{Op: opAt, Index: i, Len: len(v.data)}
	}

	return v.data[i], nil
}

// Set stores x at component i or returns an *IndexError.
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return &IndexError{Op: opSet, Index: i, Len: len(v.data)}
	}
	v.data[i] = x

	return nil
}

// X returns component 0. Always valid since N ≥ MinDim.
func (v *Vector) X() float64 { return v.data[0] }

// Y returns component 1. Always valid since N ≥ MinDim.
func (v *Vector) Y() float64 { return v.data[1] }

// Z returns component 2, or an *IndexError when N < 3.
func (v *Vector) Z() (float64, error) {
	if len(v.data) < 3 {
		return 0, &IndexError{Op: opZ, Index: 2, Len: len(v.data)}
	}

	return v.data[2], nil
}

// W returns component 3, or an *IndexError when N < 4.
func (v *Vector) W() (float64, error) {
	if len(v.data) < 4 {
		return 0, &IndexError{Op: opW, Index: 3, Len: len(v.data)}
	}

	return v.data[3], nil
}

// Values returns a copy of the components.
// Complexity: O(N).
func (v *Vector) Values() []float64 {
	out := make([]float64, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(N).
func (v *Vector) Clone() *Vector {
	return &Vector{data: v.Values()}
}

// String renders "[a, b, c]" with near-zero components snapped to 0.
// Diagnostic only; not a serialization format.
func (v *Vector) String() string {
	var b strings.Builder
	b.WriteString(_fmtOpen)
	for i, x := range v.data {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(strconv.FormatFloat(Snap(x), 'g', -1, 64))
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// XAxis returns a fresh (1, 0, 0).
func XAxis() *Vector { return &Vector{data: []float64{1, 0, 0}} }

// YAxis returns a fresh (0, 1, 0).
func YAxis() *Vector { return &Vector{data: []float64{0, 1, 0}} }

// ZAxis returns a fresh (0, 0, 1).
func ZAxis() *Vector { return &Vector{data: []float64{0, 0, 1}} }

// Origin returns a fresh (0, 0, 0).
func Origin() *Vector { return &Vector{data: []float64{0, 0, 0}} }
