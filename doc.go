// Package math3d is a small, fixed-dimension linear-algebra toolkit for
// 3D geometry: vectors, dense matrices and Gaussian elimination, plus the
// usual transform presets.
//
// 🚀 What is inside?
//
//	• vector/    - fixed-length vectors: arithmetic, dot & cross products, norms
//	• matrix/    - Dense matrices, partial-pivoting triangularization,
//	               determinant and Gauss–Jordan inverse
//	• linsys/    - A·x = b via augmented elimination + back substitution
//	• transform/ - 4×4 identity, scale, translation, axis-angle rotation and
//	               orthographic projection over Bounds
//	• gonumx/    - views that let gonum/mat consume Dense and Vector
//	• cmd/math3d - CLI that evaluates YAML job documents
//
// ✨ Conventions
//
//   - Values own their buffers; every operation returns a fresh result.
//   - Errors are sentinels per package ("matrix: ...", "linsys: ...")
//     matched with errors.Is, with payload types for errors.As.
//   - Zero tests use one tolerance, vector.Tolerance (1e-6).
//   - Library packages never log and never panic on user input.
//
// Quick start:
//
//	a, _ := matrix.NewFromNested(3, 3, [][]float64{
//		{2, 1, 3},
//		{-3, -1, 2},
//		{1, 2, 4},
//	}, matrix.RowMajor)
//	det, _ := matrix.Determinant(a) // -17
//
//	b, _ := vector.Of(1, 2, 3)
//	x, _ := linsys.Solve(a, b)
//	fmt.Println(x)
package math3d
