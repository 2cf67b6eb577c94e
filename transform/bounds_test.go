package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/math3d/transform"
	"github.com/katalvlaran/math3d/vector"
)

func TestExtent(t *testing.T) {
	t.Parallel()
	e := transform.Extent{Min: -2, Max: 6}
	require.Equal(t, 8.0, e.Length())
	require.Equal(t, 2.0, e.Center())
	require.False(t, e.IsZero())
	require.True(t, transform.Extent{Min: 3, Max: 3 + 1e-9}.IsZero())
}

func TestSymmetricBounds(t *testing.T) {
	t.Parallel()
	b := transform.SymmetricBounds(4)
	require.Equal(t, []float64{-2, -2, -2}, b.Min().Values())
	require.Equal(t, []float64{2, 2, 2}, b.Max().Values())
	require.True(t, b.Center().Equal(vector.Origin()))
	require.InDelta(t, math.Sqrt(48), b.Diagonal(), 1e-12)
	require.Equal(t, "Min:[-2,-2,-2] Max:[2,2,2]", b.String())
}

func TestNewBounds(t *testing.T) {
	t.Parallel()
	b, err := transform.NewBounds(vec(t, -10, -20, -30), vec(t, 10, 20, 30))
	require.NoError(t, err)
	require.Equal(t, transform.Extent{Min: -20, Max: 20}, b.Y)
	require.Equal(t, 60.0, b.Z.Length())

	flat, err := transform.NewBounds(vec(t, 0, 0), vec(t, 1, 1))
	require.NoError(t, err)
	require.True(t, flat.Z.IsZero())

	_, err = transform.NewBounds(vec(t, 0, 0), vec(t, 1, 1, 1))
	require.ErrorIs(t, err, vector.ErrDimensionMismatch)
	_, err = transform.NewBounds(vec(t, 0, 0, 0, 0), vec(t, 1, 1, 1, 1))
	require.ErrorIs(t, err, vector.ErrInvalidOperation)
	_, err = transform.NewBounds(nil, vec(t, 1, 1))
	require.ErrorIs(t, err, vector.ErrNilVector)
}
