// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
)

// ErrInvalidBounds is returned when an extent needed by a projection has
// zero length (within matrix.Tolerance).
var ErrInvalidBounds = errors.New("transform: invalid bounds")

// transformErrorf wraps err with an operation tag. Use only when err != nil.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("transform: %s: %w", tag, err)
}
