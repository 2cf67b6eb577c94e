// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (column-major) & safe accessors.
//
// Purpose:
//   - Own a contiguous []float64 buffer of size r*c, column-major:
//     element (i,j) lives at data[j*r + i].
//   - Guarantee safety at the public surface: At/Set/Row/Col return errors
//     instead of panicking.
//   - Provide row kernels (swapRows, addScaledRow, scaleRow) for the
//     elimination engine; they are unchecked and package-private.
//
// Complexity quicksheet:
//   - NewDense/NewIdentity/Clone/Raw: O(r*c); At/Set: O(1); Row/Col: O(c)/O(r).

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/math3d/vector"
)

// Dense is a concrete R×C matrix of float64 values.
//   - r, c are fixed for the value's lifetime (both ≥ MinDim).
//   - data holds exactly r*c values in column-major order.
//
// A Dense is used through *Dense. Copying the pointer shares storage;
// use Clone for an independent copy.
type Dense struct {
	r, c int
	data []float64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Allocates a column-major buffer of r*c zeros.
//
// Errors:
//   - ErrBadShape when rows < MinDim or cols < MinDim.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < MinDim || cols < MinDim {
		return nil, matrixErrorf(opNewDense, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// newDenseUnchecked allocates without shape validation. Callers guarantee rows, cols ≥ MinDim.
func newDenseUnchecked(rows, cols int) *Dense {
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
}

// NewFromNested builds a rows×cols matrix from nested lists.
// MAIN DESCRIPTION:
//   - order == RowMajor: values holds `rows` lists, each of length `cols`.
//   - order == ColumnMajor: values holds `cols` lists, each of length `rows`.
//
// Implementation:
//   - Stage 1: validate the shape (ErrBadShape).
//   - Stage 2: validate the outer length against the major dimension.
//   - Stage 3: validate every inner length against the minor dimension.
//   - Stage 4: copy into column-major storage; input is not retained.
//
// Errors:
//   - ErrBadShape; *DimensionError naming the outer list or the specific inner list.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromNested(rows, cols int, values [][]float64, order Order) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewFromNested, ErrBadShape)
	}

	major, minor, outer, inner := rows, cols, "rows", "row"
	if order == ColumnMajor {
		major, minor, outer, inner = cols, rows, "columns", "column"
	}
	if len(values) != major {
		return nil, &DimensionError{Op: opNewFromNested, What: outer, Expected: major, Actual: len(values)}
	}
	for k, list := range values {
		if len(list) != minor {
			return nil, &DimensionError{
				Op:       opNewFromNested,
				What:     fmt.Sprintf("%s %d", inner, k),
				Expected: minor,
				Actual:   len(list),
			}
		}
	}

	var i, j int
	for i = 0; i < major; i++ {
		for j = 0; j < minor; j++ {
			if order == ColumnMajor {
				m.data[i*rows+j] = values[i][j]
			} else {
				m.data[j*rows+i] = values[i][j]
			}
		}
	}

	return m, nil
}

// NewFromFlat builds a rows×cols matrix from exactly rows*cols flat values
// laid out in the given order. The slice is copied.
func NewFromFlat(rows, cols int, data []float64, order Order) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opNewFromFlat, ErrBadShape)
	}
	if len(data) != rows*cols {
		return nil, &DimensionError{Op: opNewFromFlat, What: "values", Expected: rows * cols, Actual: len(data)}
	}
	if order == ColumnMajor {
		copy(m.data, data)

		return m, nil
	}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			m.data[j*rows+i] = data[i*cols+j]
		}
	}

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
// Errors: ErrBadShape when n < MinDim.
// Complexity: O(n²).
func NewIdentity(n int) (*Dense, error) {
	if n < MinDim {
		return nil, matrixErrorf(opNewIdentity, ErrBadShape)
	}
	m := newDenseUnchecked(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols).
func (m *Dense) Shape() (int, int) { return m.r, m.c }

// inBounds reports whether (i,j) is inside the declared shape.
func (m *Dense) inBounds(i, j int) bool {
	return i >= 0 && i < m.r && j >= 0 && j < m.c
}

// At returns m[i,j] or an *IndexError.
// Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	if !m.inBounds(i, j) {
		return 0, &IndexError{Op: opAt, Row: i, Col: j, Rows: m.r, Cols: m.c}
	}

	return m.data[j*m.r+i], nil
}

// Set stores v at m[i,j] or returns an *IndexError.
// Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	if !m.inBounds(i, j) {
		return &IndexError{Op: opSet, Row: i, Col: j, Rows: m.r, Cols: m.c}
	}
	m.data[j*m.r+i] = v

	return nil
}

// at is the unchecked accessor used by kernels after validation.
func (m *Dense) at(i, j int) float64 { return m.data[j*m.r+i] }

// set is the unchecked mutator used by kernels after validation.
func (m *Dense) set(i, j int, v float64) { m.data[j*m.r+i] = v }

// Row returns a copy of row i as a Vector of length Cols.
// Complexity: O(c).
func (m *Dense) Row(i int) (*vector.Vector, error) {
	if i < 0 || i >= m.r {
		return nil, &IndexError{Op: opRow, Row: i, Col: -1, Rows: m.r, Cols: m.c}
	}
	vals := make([]float64, m.c)
	for j := range vals {
		vals[j] = m.at(i, j)
	}

	return vector.FromValues(m.c, vals...)
}

// Col returns a copy of column j as a Vector of length Rows.
// Complexity: O(r).
func (m *Dense) Col(j int) (*vector.Vector, error) {
	if j < 0 || j >= m.c {
		return nil, &IndexError{Op: opCol, Row: -1, Col: j, Rows: m.r, Cols: m.c}
	}

	return vector.FromValues(m.r, m.data[j*m.r:(j+1)*m.r]...)
}

// SetRow replaces row i with v.
// Errors: vector.ErrNilVector for a nil v, *DimensionError when
// v.Len() != Cols, *IndexError for a bad row.
func (m *Dense) SetRow(i int, v *vector.Vector) error {
	if err := ValidateVecLen(opSetRow, v, m.c); err != nil {
		return err
	}
	if i < 0 || i >= m.r {
		return &IndexError{Op: opSetRow, Row: i, Col: -1, Rows: m.r, Cols: m.c}
	}
	for j, x := range v.Values() {
		m.set(i, j, x)
	}

	return nil
}

// SetCol replaces column j with v.
// Errors mirror SetRow with Rows as the required length.
func (m *Dense) SetCol(j int, v *vector.Vector) error {
	if err := ValidateVecLen(opSetCol, v, m.r); err != nil {
		return err
	}
	if j < 0 || j >= m.c {
		return &IndexError{Op: opSetCol, Row: -1, Col: j, Rows: m.r, Cols: m.c}
	}
	copy(m.data[j*m.r:(j+1)*m.r], v.Values())

	return nil
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(r*c).
func (m *Dense) Clone() *Dense {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return &Dense{r: m.r, c: m.c, data: buf}
}

// Raw returns a copy of the column-major buffer.
func (m *Dense) Raw() []float64 {
	buf := make([]float64, len(m.data))
	copy(buf, m.data)

	return buf
}

// Extract copies the rows×cols block whose top-left corner is (r0,c0).
// MAIN DESCRIPTION:
//   - Used by Inverse to take the right half of [A | I].
//
// Errors:
//   - ErrBadShape when rows or cols < MinDim.
//   - *IndexError when the block does not fit inside m (reports the far corner).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Extract(r0, c0, rows, cols int) (*Dense, error) {
	if rows < MinDim || cols < MinDim {
		return nil, matrixErrorf(opExtract, ErrBadShape)
	}
	if r0 < 0 || c0 < 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, &IndexError{Op: opExtract, Row: r0 + rows - 1, Col: c0 + cols - 1, Rows: m.r, Cols: m.c}
	}
	out := newDenseUnchecked(rows, cols)
	for j := 0; j < cols; j++ {
		src := (c0+j)*m.r + r0
		copy(out.data[j*rows:(j+1)*rows], m.data[src:src+rows])
	}

	return out, nil
}

// Equal reports whether o has the same shape and every element is within
// Tolerance of m's.
func (m *Dense) Equal(o *Dense) bool { return m.ApproxEqual(o, Tolerance) }

// ApproxEqual is Equal with an explicit tolerance (|mᵢⱼ − oᵢⱼ| < tol everywhere).
// A nil o or a shape difference yields false.
func (m *Dense) ApproxEqual(o *Dense, tol float64) bool {
	if o == nil || o.r != m.r || o.c != m.c {
		return false
	}
	for k := range m.data {
		if math.Abs(m.data[k]-o.data[k]) >= tol {
			return false
		}
	}

	return true
}

// ---------- row kernels (unchecked) ----------

// swapRows exchanges rows a and b across all columns.
// Complexity: O(c).
func (m *Dense) swapRows(a, b int) {
	if a == b {
		return
	}
	for j := 0; j < m.c; j++ {
		base := j * m.r
		m.data[base+a], m.data[base+b] = m.data[base+b], m.data[base+a]
	}
}

// addScaledRow performs row[dst] += factor * row[src] across all columns.
// Complexity: O(c).
func (m *Dense) addScaledRow(dst, src int, factor float64) {
	for j := 0; j < m.c; j++ {
		base := j * m.r
		m.data[base+dst] += factor * m.data[base+src]
	}
}

// scaleRow performs row[i] *= factor across all columns.
func (m *Dense) scaleRow(i int, factor float64) {
	for j := 0; j < m.c; j++ {
		m.data[j*m.r+i] *= factor
	}
}
