// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set and structured error payloads.
// All operations return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. No operation panics on a
// user-triggered condition; panics are reserved for invalid functional options.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so failures are easy to grep.
// Payload types (DimensionError, IndexError, SingularError) unwrap to a
// sentinel, so errors.Is keeps working while errors.As exposes the details.
//
// ERROR PRIORITY (enforced in tests):
// nil -> shape -> dimension mismatch -> index -> numeric (singular / not invertible).

var (
	// ErrBadShape is returned when a requested shape is below MinDim in either
	// direction, or when an algorithm receives a shape it cannot handle
	// (e.g. Triangularize on a matrix with more rows than columns).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside the declared shape.
	// Public indexers (At/Set/Row/Col) return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand sizes, e.g. MulVec
	// with a vector whose length differs from Cols, or Determinant on a
	// non-square matrix.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrSingularMatrix is returned by Determinant when elimination leaves a
	// diagonal entry below Tolerance.
	ErrSingularMatrix = errors.New("matrix: singular matrix")

	// ErrNotInvertible is returned by Inverse when elimination leaves a
	// diagonal entry below Tolerance.
	ErrNotInvertible = errors.New("matrix: matrix not invertible")
)

// DimensionError reports an expected vs actual count.
// What names the measured quantity ("rows", "column 2", "vector length", ...).
// It unwraps to ErrDimensionMismatch.
type DimensionError struct {
	Op       string
	What     string
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	if e.What == "" {
		return fmt.Sprintf("matrix: %s: dimension mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
	}

	return fmt.Sprintf("matrix: %s: dimension mismatch: %s: expected %d, got %d", e.Op, e.What, e.Expected, e.Actual)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// IndexError reports out-of-range indices together with the declared shape.
// Col is -1 for row-only accessors, Row is -1 for column-only accessors.
// It unwraps to ErrOutOfRange.
type IndexError struct {
	Op         string
	Row, Col   int
	Rows, Cols int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("matrix: %s(%d,%d): index out of range for %dx%d", e.Op, e.Row, e.Col, e.Rows, e.Cols)
}

// Unwrap exposes ErrOutOfRange to errors.Is.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// SingularError reports the first column whose pivot fell below Tolerance.
// Kind is ErrSingularMatrix (Determinant) or ErrNotInvertible (Inverse).
type SingularError struct {
	Op     string
	Column int
	Kind   error
}

func (e *SingularError) Error() string {
	return fmt.Sprintf("%v: %s: zero pivot in column %d", e.Kind, e.Op, e.Column)
}

// Unwrap exposes Kind to errors.Is.
func (e *SingularError) Unwrap() error { return e.Kind }

// matrixErrorf wraps err with an operation tag, preserving the cause via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
