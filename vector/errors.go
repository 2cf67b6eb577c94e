// SPDX-License-Identifier: MIT
// Package vector: sentinel error set and structured error payloads.
// All operations return these sentinels (optionally wrapped with an operation
// tag); callers match them via errors.Is. Payload types unwrap to the sentinel
// so errors.As exposes the sizes/indices involved.

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when a requested dimension is below MinDim.
	ErrBadShape = errors.New("vector: invalid dimension")

	// ErrDimensionMismatch indicates operands (or constructor input) of incompatible length.
	ErrDimensionMismatch = errors.New("vector: dimension mismatch")

	// ErrOutOfRange indicates a component index outside [0, N).
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrInvalidOperation marks an operation undefined for the vector's dimension
	// (e.g., Cross on a non-3 vector).
	ErrInvalidOperation = errors.New("vector: invalid operation")

	// ErrDegenerateVector is returned when Normalize is requested on a vector
	// whose length is below Tolerance.
	ErrDegenerateVector = errors.New("vector: degenerate vector")

	// ErrNilVector indicates that a nil *Vector (receiver or argument) was used.
	ErrNilVector = errors.New("vector: nil vector")
)

// DimensionError reports an expected vs actual length.
// It unwraps to ErrDimensionMismatch.
type DimensionError struct {
	Op       string // operation tag (opAdd, opFromValues, ...)
	Expected int    // required length
	Actual   int    // supplied length
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("vector: %s: dimension mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

// Unwrap exposes ErrDimensionMismatch to errors.Is.
func (e *DimensionError) Unwrap() error { return ErrDimensionMismatch }

// IndexError reports an out-of-range component index together with the vector length.
// It unwraps to ErrOutOfRange.
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("vector: %s: index %d out of range for dimension %d", e.Op, e.Index, e.Len)
}

// Unwrap exposes ErrOutOfRange to errors.Is.
func (e *IndexError) Unwrap() error { return ErrOutOfRange }

// vectorErrorf wraps err with an operation tag, preserving the cause via %w.
// Use only when err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
