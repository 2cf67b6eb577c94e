// SPDX-License-Identifier: MIT

package vector

import "math"

// Tolerance is the fixed threshold below which a magnitude is treated as zero.
// Every comparison in this module (Equal, pivot checks, formatting snaps) uses it.
const Tolerance = 1e-6

// MinDim is the smallest legal vector dimension.
const MinDim = 2

// IsZero reports whether |x| < Tolerance.
// Complexity: O(1).
func IsZero(x float64) bool { return math.Abs(x) < Tolerance }

// AreEqual reports whether a and b differ by less than Tolerance.
// Complexity: O(1).
func AreEqual(a, b float64) bool { return IsZero(a - b) }

// Snap returns 0 when x is within Tolerance of zero, x otherwise.
// Used by diagnostic formatting so numerical noise such as 1e-17 prints as 0.
func Snap(x float64) float64 {
	if IsZero(x) {
		return 0
	}

	return x
}
