// Package matrix_test: shared fixtures and assertions for matrix tests.
package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/math3d/matrix"
	"github.com/katalvlaran/math3d/vector"
)

// approx is the go-cmp option used for float comparisons at module tolerance.
var approx = cmpopts.EquateApprox(0, matrix.Tolerance)

// MustDense builds a matrix from row-major nested rows or fails the test.
func MustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, rows)
	m, err := matrix.NewFromNested(len(rows), len(rows[0]), rows, matrix.RowMajor)
	require.NoError(t, err)

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// MustVec builds a vector from its values or fails the test.
func MustVec(t testing.TB, vals ...float64) *vector.Vector {
	t.Helper()
	v, err := vector.Of(vals...)
	require.NoError(t, err)

	return v
}

// ToRows dumps m as row-major nested slices for cmp.Diff.
func ToRows(t testing.TB, m *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			out[i][j] = MustAt(t, m, i, j)
		}
	}

	return out
}

// RequireRowsApprox fails with a readable diff when got differs from want
// by more than tol in any cell.
func RequireRowsApprox(t testing.TB, want [][]float64, got *matrix.Dense, tol float64) {
	t.Helper()
	if diff := cmp.Diff(want, ToRows(t, got), cmpopts.EquateApprox(0, tol)); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// RandomDominant builds a deterministic n×n matrix with entries in U(-1,1)
// plus n on the diagonal, which keeps it comfortably invertible.
func RandomDominant(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Float64()*2 - 1
		}
		rows[i][i] += float64(n)
	}

	return MustDense(t, rows)
}

// Identity returns I_n or fails the test.
func Identity(t testing.TB, n int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}
