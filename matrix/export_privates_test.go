// SPDX-License-Identifier: MIT

package matrix

// White-box bridge: exposes the unchecked row kernels to matrix_test only.
var (
	ExportedSwapRows     = (*Dense).swapRows
	ExportedAddScaledRow = (*Dense).addScaledRow
	ExportedScaleRow     = (*Dense).scaleRow
)
