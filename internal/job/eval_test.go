package job_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/math3d/internal/job"
	"github.com/katalvlaran/math3d/linsys"
	"github.com/katalvlaran/math3d/matrix"
)

func detJob(name string, rows [][]float64) *job.Job {
	return &job.Job{Name: name, Operation: job.OpDeterminant, Matrix: rows}
}

func TestEvaluate_Operations(t *testing.T) {
	a := [][]float64{{2, 1, 3}, {-3, -1, 2}, {1, 2, 4}}

	t.Run("det", func(t *testing.T) {
		res := job.Evaluate(detJob("d", a))
		require.NoError(t, res.Err)
		require.InDelta(t, -17, res.Det, 1e-9)
		require.Equal(t, "-17\n", res.Format())
	})

	t.Run("inverse", func(t *testing.T) {
		res := job.Evaluate(&job.Job{Name: "i", Operation: job.OpInverse, Matrix: [][]float64{{4, 7}, {2, 6}}})
		require.NoError(t, res.Err)
		require.Equal(t, "  0.60  -0.70\n -0.20   0.40\n",
			res.Format(matrix.WithWidth(6), matrix.WithPrecision(2)))
	})

	t.Run("solve", func(t *testing.T) {
		res := job.Evaluate(&job.Job{Name: "s", Operation: job.OpSolve,
			Matrix: [][]float64{{1, 1}, {1, -1}}, Vector: []float64{3, 1}})
		require.NoError(t, res.Err)
		require.Equal(t, "[2, 1]\n", res.Format())
	})

	t.Run("triangularize", func(t *testing.T) {
		res := job.Evaluate(&job.Job{Name: "t", Operation: job.OpTriangularize, Matrix: [][]float64{{1, 2}, {3, 4}}})
		require.NoError(t, res.Err)
		require.Equal(t, 1, res.Swaps)
		require.Contains(t, res.Format(matrix.WithWidth(4), matrix.WithPrecision(1)), "swaps: 1\n")
	})

	t.Run("transpose", func(t *testing.T) {
		res := job.Evaluate(&job.Job{Name: "x", Operation: job.OpTranspose, Matrix: [][]float64{{1, 2, 3}, {4, 5, 6}}})
		require.NoError(t, res.Err)
		require.Equal(t, "1 4\n2 5\n3 6\n", res.Format(matrix.WithWidth(1), matrix.WithPrecision(0)))
	})
}

func TestEvaluate_Failures(t *testing.T) {
	res := job.Evaluate(detJob("sing", [][]float64{{1, 0, 4}, {2, 0, 5}, {3, 0, 6}}))
	require.ErrorIs(t, res.Err, matrix.ErrSingularMatrix)
	require.Contains(t, res.Format(), "error: ")

	res = job.Evaluate(&job.Job{Name: "nosol", Operation: job.OpSolve,
		Matrix: [][]float64{{1, 2}, {2, 4}}, Vector: []float64{3, 6}})
	require.ErrorIs(t, res.Err, linsys.ErrNoSolution)

	res = job.Evaluate(&job.Job{Name: "bad", Operation: "qr", Matrix: [][]float64{{1, 0}, {0, 1}}})
	require.ErrorIs(t, res.Err, job.ErrUnknownOperation)
}

func TestRunAll_PreservesOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	const n = 40
	jobs := make([]*job.Job, n)
	for i := range jobs {
		k := float64(i + 1)
		jobs[i] = detJob(fmt.Sprintf("scale-%d", i), [][]float64{{k, 0}, {0, 2}})
	}

	results, err := job.RunAll(context.Background(), jobs, 4, zap.NewNop())
	require.NoError(t, err)
	require.Len(t, results, n)
	for i, r := range results {
		require.NoError(t, r.Err)
		require.Same(t, jobs[i], r.Job)
		require.InDelta(t, 2*float64(i+1), r.Det, 1e-9)
	}
	require.Zero(t, job.Failed(results))
}

func TestRunAll_FailuresDoNotStopBatch(t *testing.T) {
	defer goleak.VerifyNone(t)

	core, logs := observer.New(zapcore.WarnLevel)
	jobs := []*job.Job{
		detJob("ok-1", [][]float64{{1, 0}, {0, 1}}),
		detJob("singular", [][]float64{{1, 2}, {2, 4}}),
		detJob("ok-2", [][]float64{{3, 0}, {0, 1}}),
	}

	results, err := job.RunAll(context.Background(), jobs, 2, zap.New(core))
	require.NoError(t, err)
	require.Equal(t, 1, job.Failed(results))
	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, matrix.ErrSingularMatrix)
	require.InDelta(t, 3, results[2].Det, 1e-9)

	entries := logs.FilterMessage("Job failed").All()
	require.Len(t, entries, 1)
	require.Equal(t, "singular", entries[0].ContextMap()["job"])
}

func TestRunAll_Cancelled(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	jobs := []*job.Job{detJob("a", [][]float64{{1, 0}, {0, 1}}), detJob("b", [][]float64{{1, 0}, {0, 1}})}
	results, err := job.RunAll(ctx, jobs, 1, nil)
	require.True(t, errors.Is(err, context.Canceled))
	require.Len(t, results, 2)
	for _, r := range results {
		require.ErrorIs(t, r.Err, context.Canceled)
	}
}
