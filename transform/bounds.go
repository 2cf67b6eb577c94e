// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/math3d/vector"
)

// Extent is a closed interval [Min, Max] along one axis.
type Extent struct {
	Min float64
	Max float64
}

// Length returns Max − Min.
func (e Extent) Length() float64 { return e.Max - e.Min }

// Center returns the midpoint of the interval.
func (e Extent) Center() float64 { return 0.5 * (e.Max + e.Min) }

// IsZero reports whether the extent has no length within vector.Tolerance.
func (e Extent) IsZero() bool { return vector.IsZero(math.Abs(e.Length())) }

// Bounds is an axis-aligned box given by one Extent per axis.
type Bounds struct {
	X Extent
	Y Extent
	Z Extent
}

// NewBounds builds Bounds from the lo (min) and hi (max) corners.
// Both corners have the same dimension, 2 or 3; a 2D box gets a zero Z extent.
func NewBounds(lo, hi *vector.Vector) (Bounds, error) {
	if lo == nil || hi == nil {
		return Bounds{}, transformErrorf(opNewBounds, vector.ErrNilVector)
	}
	if lo.Len() != hi.Len() {
		return Bounds{}, &vector.DimensionError{Op: opNewBounds, Expected: lo.Len(), Actual: hi.Len()}
	}
	if lo.Len() > 3 {
		return Bounds{}, transformErrorf(opNewBounds, vector.ErrInvalidOperation)
	}
	b := Bounds{
		X: Extent{Min: lo.X(), Max: hi.X()},
		Y: Extent{Min: lo.Y(), Max: hi.Y()},
	}
	if lo.Len() == 3 {
		zMin, _ := lo.Z()
		zMax, _ := hi.Z()
		b.Z = Extent{Min: zMin, Max: zMax}
	}

	return b, nil
}

// SymmetricBounds returns a cube of the given side centered on the origin.
func SymmetricBounds(side float64) Bounds {
	h := 0.5 * side
	e := Extent{Min: -h, Max: h}

	return Bounds{X: e, Y: e, Z: e}
}

// Min returns the min corner as a 3-vector.
func (b Bounds) Min() *vector.Vector { return vec3(b.X.Min, b.Y.Min, b.Z.Min) }

// Max returns the max corner as a 3-vector.
func (b Bounds) Max() *vector.Vector { return vec3(b.X.Max, b.Y.Max, b.Z.Max) }

// Center returns the box center as a 3-vector.
func (b Bounds) Center() *vector.Vector { return vec3(b.X.Center(), b.Y.Center(), b.Z.Center()) }

// Diagonal returns the length of the box diagonal.
func (b Bounds) Diagonal() float64 {
	return math.Sqrt(b.X.Length()*b.X.Length() + b.Y.Length()*b.Y.Length() + b.Z.Length()*b.Z.Length())
}

func (b Bounds) String() string {
	return fmt.Sprintf("Min:[%g,%g,%g] Max:[%g,%g,%g]",
		b.X.Min, b.Y.Min, b.Z.Min, b.X.Max, b.Y.Max, b.Z.Max)
}

// vec3 builds a 3-vector from known-good components.
func vec3(x, y, z float64) *vector.Vector {
	v, _ := vector.Of(x, y, z)

	return v
}
