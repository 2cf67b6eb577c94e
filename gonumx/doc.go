// Package gonumx adapts math3d values to gonum.org/v1/gonum/mat.
//
// View and VecView expose a *matrix.Dense or *vector.Vector through gonum's
// read-only Matrix / Vector interfaces without copying, so any gonum routine
// (mat.Det, Dense.Inverse, VecDense.SolveVec, ...) can consume them.
// FromGonum and VectorFromGonum copy in the other direction.
//
// Views follow gonum's conventions: an out-of-range At panics with
// mat.ErrIndexOutOfRange.
package gonumx
