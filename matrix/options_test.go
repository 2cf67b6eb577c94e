// Package matrix_test contains tests for formatting options and Format output.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/math3d/matrix"
)

func TestFormat_Defaults(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]float64{{1, -2.5}, {0, 10}})
	want := "  1.000000  -2.500000\n" +
		"  0.000000  10.000000\n"
	require.Equal(t, want, m.String())
	require.Equal(t, want, m.Format())
}

func TestFormat_Options(t *testing.T) {
	t.Parallel()
	id := Identity(t, 2)
	got := id.Format(matrix.WithWidth(4), matrix.WithPrecision(1))
	require.Equal(t, " 1.0  0.0\n 0.0  1.0\n", got)

	// a value wider than the column is printed in full
	wide := MustDense(t, [][]float64{{12345, 0}, {0, 1}})
	require.Equal(t, "12345 0\n0 1\n", wide.Format(matrix.WithWidth(1), matrix.WithPrecision(0)))
}

func TestFormat_SnapsNoise(t *testing.T) {
	t.Parallel()
	m := MustDense(t, [][]float64{{1e-9, -1e-12}, {-3, 2}})
	require.Equal(t, " 0.00  0.00\n-3.00  2.00\n", m.Format(matrix.WithWidth(5), matrix.WithPrecision(2)))
}

func TestFormat_RowMajorVisualOrder(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewFromNested(2, 3, [][]float64{{1, 4}, {2, 5}, {3, 6}}, matrix.ColumnMajor)
	require.NoError(t, err)
	require.Equal(t, "1 2 3\n4 5 6\n", m.Format(matrix.WithWidth(1), matrix.WithPrecision(0)))
}

func TestFormatOptions_PanicOnNonsense(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { matrix.WithWidth(0) })
	require.Panics(t, func() { matrix.WithWidth(65) })
	require.Panics(t, func() { matrix.WithPrecision(-1) })
	require.Panics(t, func() { matrix.WithPrecision(18) })
	require.NotPanics(t, func() { _ = Identity(t, 2).Format(nil) })
}
