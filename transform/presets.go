// SPDX-License-Identifier: MIT

package transform

import (
	"math"

	"github.com/katalvlaran/math3d/matrix"
	"github.com/katalvlaran/math3d/vector"
)

// ---------- operation tags ----------

const (
	opNewBounds    = "NewBounds"
	opRotation     = "Rotation"
	opOrthographic = "Orthographic"
	opApply        = "Apply"
)

// size is the homogeneous dimension of every preset.
const size = 4

// fromColumns builds a 4×4 Dense from 16 column-major values.
func fromColumns(data [size * size]float64) *matrix.Dense {
	m, err := matrix.NewFromFlat(size, size, data[:], matrix.ColumnMajor)
	if err != nil {
		// fixed 4×4 shape with 16 values; NewFromFlat cannot reject it
		panic(err)
	}

	return m
}

// identityColumns returns the column-major data of I₄.
func identityColumns() [size * size]float64 {
	return [size * size]float64{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Identity returns I₄.
func Identity() *matrix.Dense { return fromColumns(identityColumns()) }

// Scale returns diag(sx, sy, sz, 1).
func Scale(sx, sy, sz float64) *matrix.Dense {
	d := identityColumns()
	d[0], d[5], d[10] = sx, sy, sz

	return fromColumns(d)
}

// Translation returns the identity with (tx, ty, tz, 1) as the last column.
func Translation(tx, ty, tz float64) *matrix.Dense {
	d := identityColumns()
	d[12], d[13], d[14] = tx, ty, tz

	return fromColumns(d)
}

// Rotation returns the right-handed rotation by degrees about axis.
// MAIN DESCRIPTION:
//   - Rodrigues form R = cosθ·I + (1−cosθ)·aaᵀ + sinθ·[a]ₓ for the unit axis a.
//
// Implementation:
//   - Stage 1: axis must be a 3-vector (*vector.DimensionError otherwise).
//   - Stage 2: normalize it; a near-zero axis fails with vector.ErrDegenerateVector.
//   - Stage 3: fill the upper-left 3×3 block column by column.
//
// Complexity: O(1).
func Rotation(axis *vector.Vector, degrees float64) (*matrix.Dense, error) {
	if axis == nil {
		return nil, transformErrorf(opRotation, vector.ErrNilVector)
	}
	if axis.Len() != 3 {
		return nil, &vector.DimensionError{Op: opRotation, Expected: 3, Actual: axis.Len()}
	}
	a, err := axis.Normalize()
	if err != nil {
		return nil, transformErrorf(opRotation, err)
	}
	z, _ := a.Z()

	return rotation(a.X(), a.Y(), z, degrees), nil
}

// rotation fills the Rodrigues matrix for a unit axis (x, y, z).
func rotation(x, y, z, degrees float64) *matrix.Dense {
	theta := degrees * math.Pi / 180
	c, s := math.Cos(theta), math.Sin(theta)
	k := 1 - c

	d := identityColumns()
	// column 0
	d[0] = x*x*k + c
	d[1] = x*y*k + z*s
	d[2] = x*z*k - y*s
	// column 1
	d[4] = x*y*k - z*s
	d[5] = y*y*k + c
	d[6] = y*z*k + x*s
	// column 2
	d[8] = x*z*k + y*s
	d[9] = y*z*k - x*s
	d[10] = z*z*k + c

	return fromColumns(d)
}

// RotationX rotates by degrees about +X.
func RotationX(degrees float64) *matrix.Dense { return rotation(1, 0, 0, degrees) }

// RotationY rotates by degrees about +Y.
func RotationY(degrees float64) *matrix.Dense { return rotation(0, 1, 0, degrees) }

// RotationZ rotates by degrees about +Z.
func RotationZ(degrees float64) *matrix.Dense { return rotation(0, 0, 1, degrees) }

// Orthographic maps b onto [-1, 1]³.
// MAIN DESCRIPTION:
//   - m(0,0) = 2/len(X), m(1,1) = 2/len(Y), m(2,2) = ±2/len(Z) (negative with invertZ).
//   - last column: −(min+max)/len per axis, then 1.
//
// Errors:
//   - ErrInvalidBounds when any extent has zero length.
func Orthographic(b Bounds, invertZ bool) (*matrix.Dense, error) {
	if b.X.IsZero() || b.Y.IsZero() || b.Z.IsZero() {
		return nil, transformErrorf(opOrthographic, ErrInvalidBounds)
	}
	lx, ly, lz := b.X.Length(), b.Y.Length(), b.Z.Length()

	d := identityColumns()
	d[0] = 2 / lx
	d[5] = 2 / ly
	d[10] = 2 / lz
	if invertZ {
		d[10] = -d[10]
	}
	d[12] = -(b.X.Min + b.X.Max) / lx
	d[13] = -(b.Y.Min + b.Y.Max) / ly
	d[14] = -(b.Z.Min + b.Z.Max) / lz

	return fromColumns(d), nil
}

// Apply transforms the point p by m using homogeneous coordinates (w = 1)
// and returns the x, y, z part of the result.
//
// Errors:
//   - matrix.ErrNilMatrix, vector.ErrNilVector.
//   - *matrix.DimensionError when m is not 4×4.
//   - *vector.DimensionError when p is not a 3-vector.
func Apply(m *matrix.Dense, p *vector.Vector) (*vector.Vector, error) {
	if err := matrix.ValidateSquare(opApply, m); err != nil {
		return nil, err
	}
	if m.Rows() != size {
		return nil, &matrix.DimensionError{Op: opApply, What: "rows", Expected: size, Actual: m.Rows()}
	}
	if p == nil {
		return nil, transformErrorf(opApply, vector.ErrNilVector)
	}
	if p.Len() != 3 {
		return nil, &vector.DimensionError{Op: opApply, Expected: 3, Actual: p.Len()}
	}
	z, _ := p.Z()
	h, err := vector.Of(p.X(), p.Y(), z, 1)
	if err != nil {
		return nil, transformErrorf(opApply, err)
	}
	out, err := m.MulVec(h)
	if err != nil {
		return nil, transformErrorf(opApply, err)
	}
	oz, _ := out.Z()

	return vec3(out.X(), out.Y(), oz), nil
}
