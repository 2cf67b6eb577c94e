// Package vector provides Vector, a fixed-length ordered sequence of float64
// scalars, together with the tolerance policy shared by the whole module.
//
// 🚀 What is a Vector here?
//
//	A Vector has N ≥ 2 components and N never changes after construction.
//	Every binary operation requires operands of the same N and returns a
//	fresh Vector; operands are never mutated.
//
// ✨ Key features:
//   - element-wise Add / Sub, Scale, Negate
//   - Dot for any N, Cross for N = 3 (right-handed)
//   - Length, Normalize (fails on near-zero length)
//   - tolerance-based Equal (1e-6) instead of exact float equality
//   - named accessors X, Y, Z, W over the same backing slice
//
// ⚙️ Usage:
//
//	a, _ := vector.FromValues(3, 5, 0, 0)
//	b, _ := vector.FromValues(3, 0, 5, 0)
//	c, err := a.Cross(b) // (0, 0, 25)
//	if err != nil {
//	  // handle ErrInvalidOperation
//	}
//	fmt.Println(c, c.Length()) // [0, 0, 25] 25
//
// Errors:
//
//	All failures are sentinel errors in errors.go. Size and index failures
//	carry their payload in *DimensionError and *IndexError; match with
//	errors.Is for the kind and errors.As for the details.
//
// Complexity:
//
//	Every operation is O(N) time; constructors and arithmetic allocate O(N).
package vector
