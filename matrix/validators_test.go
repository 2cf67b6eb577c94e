// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/math3d/matrix"
	"github.com/katalvlaran/math3d/vector"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	zeros := func(r, c int) *matrix.Dense {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    *matrix.Dense
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateSameShape("test", tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateSquare covers nil inputs, square and non-square cases.
func TestValidateSquare(t *testing.T) {
	t.Parallel()
	require.ErrorIs(t, matrix.ValidateSquare("test", nil), matrix.ErrNilMatrix)
	require.NoError(t, matrix.ValidateSquare("test", Identity(t, 3)))

	err := matrix.ValidateSquare("test", MustDense(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	var de *matrix.DimensionError
	require.True(t, errors.As(err, &de))
	require.Equal(t, 2, de.Expected)
	require.Equal(t, 3, de.Actual)
	require.Contains(t, err.Error(), "matrix: test: dimension mismatch")
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateVecLen("test", MustVec(t, 1, 2), 2))
	require.ErrorIs(t, matrix.ValidateVecLen("test", MustVec(t, 1, 2), 3), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateVecLen("test", nil, 3), vector.ErrNilVector)
}
