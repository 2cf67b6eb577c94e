// SPDX-License-Identifier: MIT

package gonumx

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/math3d/matrix"
	"github.com/katalvlaran/math3d/vector"
)

// Compile-time assertions for gonum interface conformance.
var (
	_ mat.Matrix = (*denseView)(nil)
	_ mat.Vector = (*vecView)(nil)
)

// denseView is a live read-only window onto a *matrix.Dense.
type denseView struct {
	m *matrix.Dense
}

// View returns m as a gonum mat.Matrix. Writes to m are visible through the view.
func View(m *matrix.Dense) mat.Matrix { return &denseView{m: m} }

func (d *denseView) Dims() (int, int) { return d.m.Shape() }

func (d *denseView) At(i, j int) float64 {
	v, err := d.m.At(i, j)
	if err != nil {
		panic(mat.ErrIndexOutOfRange)
	}

	return v
}

func (d *denseView) T() mat.Matrix { return mat.Transpose{Matrix: d} }

// vecView is a live read-only column-vector window onto a *vector.Vector.
type vecView struct {
	v *vector.Vector
}

// VecView returns v as a gonum mat.Vector (an N×1 column).
func VecView(v *vector.Vector) mat.Vector { return &vecView{v: v} }

func (w *vecView) Dims() (int, int) { return w.v.Len(), 1 }

func (w *vecView) At(i, j int) float64 {
	if j != 0 {
		panic(mat.ErrColAccess)
	}

	return w.AtVec(i)
}

func (w *vecView) AtVec(i int) float64 {
	x, err := w.v.At(i)
	if err != nil {
		panic(mat.ErrVectorAccess)
	}

	return x
}

func (w *vecView) Len() int { return w.v.Len() }

func (w *vecView) T() mat.Matrix { return mat.TransposeVec{Vector: w} }

// ToDense copies m into a fresh gonum *mat.Dense.
func ToDense(m *matrix.Dense) *mat.Dense { return mat.DenseCopyOf(View(m)) }

// FromGonum copies any gonum matrix into a *matrix.Dense.
// Errors: matrix.ErrNilMatrix for a nil input, matrix.ErrBadShape for shapes below matrix.MinDim.
func FromGonum(m mat.Matrix) (*matrix.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("FromGonum: %w", matrix.ErrNilMatrix)
	}
	r, c := m.Dims()
	out, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}
	var i, j int
	for j = 0; j < c; j++ {
		for i = 0; i < r; i++ {
			if err = out.Set(i, j, m.At(i, j)); err != nil {
				return nil, fmt.Errorf("FromGonum: %w", err)
			}
		}
	}

	return out, nil
}

// VectorFromGonum copies a gonum vector into a *vector.Vector.
func VectorFromGonum(v mat.Vector) (*vector.Vector, error) {
	if v == nil {
		return nil, fmt.Errorf("VectorFromGonum: %w", vector.ErrNilVector)
	}
	vals := make([]float64, v.Len())
	for i := range vals {
		vals[i] = v.AtVec(i)
	}
	out, err := vector.Of(vals...)
	if err != nil {
		return nil, fmt.Errorf("VectorFromGonum: %w", err)
	}

	return out, nil
}
