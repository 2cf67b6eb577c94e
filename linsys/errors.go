// SPDX-License-Identifier: MIT

package linsys

import (
	"errors"
	"fmt"
)

// ErrNoSolution is returned when back substitution meets a pivot below
// matrix.Tolerance: the system is singular or inconsistent.
var ErrNoSolution = errors.New("linsys: no unique solution")

// PivotError names the row whose pivot vanished and the pivot value found.
// It unwraps to ErrNoSolution.
type PivotError struct {
	Row   int
	Value float64
}

func (e *PivotError) Error() string {
	return fmt.Sprintf("linsys: no unique solution: pivot %g in row %d", e.Value, e.Row)
}

// Unwrap exposes ErrNoSolution to errors.Is.
func (e *PivotError) Unwrap() error { return ErrNoSolution }
