// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/math3d/vector"

// MinDim is the smallest legal row or column count.
const MinDim = 2

// Tolerance is the module-wide zero threshold, shared with package vector.
const Tolerance = vector.Tolerance

// Order selects how constructor input is laid out.
type Order int

const (
	// RowMajor: each inner list (or each run of Cols flat values) is one row.
	RowMajor Order = iota
	// ColumnMajor: each inner list (or each run of Rows flat values) is one column.
	ColumnMajor
)

// String returns "row-major" or "column-major".
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColumnMajor:
		return "column-major"
	default:
		return "unknown"
	}
}

// ---------- operation tags ----------

const (
	opNewDense       = "NewDense"
	opNewFromNested  = "NewFromNested"
	opNewFromFlat    = "NewFromFlat"
	opNewIdentity    = "NewIdentity"
	opAt             = "At"
	opSet            = "Set"
	opRow            = "Row"
	opCol            = "Col"
	opSetRow         = "SetRow"
	opSetCol         = "SetCol"
	opExtract        = "Extract"
	opTranspose      = "Transpose"
	opMulVec         = "MulVec"
	opMul            = "Mul"
	opAdd            = "Add"
	opSub            = "Sub"
	opAugment        = "Augment"
	opAugmentVector  = "AugmentVector"
	opTriangularize  = "Triangularize"
	opDeterminant    = "Determinant"
	opInverse        = "Inverse"
)
