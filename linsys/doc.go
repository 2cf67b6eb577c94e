// Package linsys solves square linear systems A·x = b by Gaussian
// elimination with partial pivoting followed by back substitution.
//
// Solve builds the augmented matrix [A | b], reduces it with
// matrix.Triangularize and back-substitutes from the last row up. A pivot
// below matrix.Tolerance during back substitution means the system has no
// unique solution and Solve returns a *PivotError matching ErrNoSolution.
//
// Residual reports |A·x − b| so callers can check a solution.
package linsys
