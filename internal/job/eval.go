// SPDX-License-Identifier: MIT

package job

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/math3d/linsys"
	"github.com/katalvlaran/math3d/matrix"
	"github.com/katalvlaran/math3d/vector"
)

// detDigits is the number of significant digits printed for a determinant.
const detDigits = 12

// Result is the outcome of one job. Exactly one of Det / Matrix / Vector is
// meaningful, depending on the operation; Err is set when the job failed.
type Result struct {
	Job    *Job
	Det    float64
	Swaps  int // triangularize only
	Matrix *matrix.Dense
	Vector *vector.Vector
	Err    error
}

// Format renders the result for terminal output.
func (r Result) Format(opts ...matrix.FormatOption) string {
	if r.Err != nil {
		return "error: " + r.Err.Error() + "\n"
	}
	switch r.Job.Operation {
	case OpDeterminant:
		return strconv.FormatFloat(vector.Snap(r.Det), 'g', detDigits, 64) + "\n"
	case OpSolve:
		return r.Vector.String() + "\n"
	case OpTriangularize:
		var b strings.Builder
		b.WriteString(r.Matrix.Format(opts...))
		fmt.Fprintf(&b, "swaps: %d\n", r.Swaps)
		return b.String()
	default:
		return r.Matrix.Format(opts...)
	}
}

// Evaluate builds the job's operands and runs its operation.
// Failures are reported in Result.Err, never as a panic.
func Evaluate(j *Job) Result {
	res := Result{Job: j}
	if err := j.Validate(); err != nil {
		res.Err = err
		return res
	}
	m, v, err := j.Build()
	if err != nil {
		res.Err = err
		return res
	}

	switch j.Operation {
	case OpDeterminant:
		res.Det, err = matrix.Determinant(m)
	case OpInverse:
		res.Matrix, err = matrix.Inverse(m)
	case OpSolve:
		res.Vector, err = linsys.Solve(m, v)
	case OpTriangularize:
		res.Matrix, res.Swaps, err = matrix.Triangularize(m)
	case OpTranspose:
		res.Matrix = m.Transpose()
	}
	if err != nil {
		res.Err = fmt.Errorf("job %q: %w", j.Name, err)
	}

	return res
}

// RunAll evaluates jobs concurrently, at most concurrency at a time, and
// returns one Result per job in input order.
// A failing job does not stop the batch; its Result carries the error.
// Cancelling ctx stops scheduling further jobs (their Results carry
// ctx.Err()); jobs already started run to completion. The returned error
// is ctx.Err().
func RunAll(ctx context.Context, jobs []*Job, concurrency int, logger *zap.Logger) ([]Result, error) {
	if concurrency < 1 {
		concurrency = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, j := range jobs {
		if err := gctx.Err(); err != nil {
			for k := i; k < len(jobs); k++ {
				results[k] = Result{Job: jobs[k], Err: err}
			}
			break
		}
		g.Go(func() error {
			start := time.Now()
			results[i] = Evaluate(j)
			if err := results[i].Err; err != nil {
				logger.Warn("Job failed",
					zap.String("job", j.Name),
					zap.String("operation", string(j.Operation)),
					zap.Error(err))
				return nil
			}
			logger.Debug("Job done",
				zap.String("job", j.Name),
				zap.String("operation", string(j.Operation)),
				zap.Duration("elapsed", time.Since(start)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, ctx.Err()
}

// Failed counts results with a non-nil Err.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}

	return n
}
