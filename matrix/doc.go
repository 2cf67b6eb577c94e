// Package matrix provides Dense, a fixed-shape column-major matrix of float64
// values, and the Gaussian-elimination family built on it.
//
// 🚀 What is a Dense here?
//
//	A Dense has R×C values (R, C ≥ 2) stored in one contiguous buffer,
//	column-major: element (i,j) lives at offset j*R + i. The shape never
//	changes after construction. Rows and columns are extractable as
//	*vector.Vector copies.
//
// ✨ Key features:
//   - NewFromNested / NewFromFlat with an explicit RowMajor / ColumnMajor flag
//   - bounds-checked At / Set / Row / Col / SetRow / SetCol
//   - Transpose, MulVec, Mul, Add, Sub, Scale
//   - Augment / AugmentVector building [A | X] as an ordinary Dense
//   - Triangularize: partial-pivoting elimination with a swap count
//   - Determinant and Inverse (Gauss-Jordan) with typed singularity errors
//   - Format / String for fixed-width diagnostic dumps
//
// ⚙️ Usage:
//
//	a, _ := matrix.NewFromNested(3, 3, [][]float64{
//	  {2, 1, 3},
//	  {-3, -1, 2},
//	  {1, 2, 4},
//	}, matrix.RowMajor)
//	det, err := matrix.Determinant(a) // -17
//	if errors.Is(err, matrix.ErrSingularMatrix) {
//	  // *SingularError names the offending column
//	}
//
// Tolerance:
//
//	A single threshold, Tolerance = 1e-6 (shared with package vector), decides
//	pivot degeneracy, Equal and formatting snaps.
//
// Errors:
//
//	Sentinels live in errors.go. Size, index and singularity failures carry
//	their payload in *DimensionError, *IndexError and *SingularError; match
//	them with errors.As, or the sentinel with errors.Is.
package matrix
