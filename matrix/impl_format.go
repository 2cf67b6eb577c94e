// SPDX-License-Identifier: MIT

package matrix

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/math3d/vector"
)

// ---------- Formatting literals ----------
const (
	_fmtCellSep = " "
	_fmtRowEnd  = "\n"
)

// Format renders m in row-major visual order: one line per row, every value
// right-aligned in a fixed-width column, columns separated by one space.
// Values with |v| < Tolerance print as 0 so elimination noise does not show.
// Diagnostic only; not a serialization format.
//
// Complexity: O(r*c).
func (m *Dense) Format(opts ...FormatOption) string {
	o := gatherFormatOptions(opts...)

	var b strings.Builder
	b.Grow(m.r * m.c * (o.width + 1))
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtCellSep)
			}
			cell := strconv.FormatFloat(vector.Snap(m.at(i, j)), 'f', o.precision, 64)
			if pad := o.width - len(cell); pad > 0 {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(cell)
		}
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}

// String is Format with default options.
func (m *Dense) String() string { return m.Format() }
