// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/math3d/internal/job"
)

// verb describes one single-operation subcommand.
type verb struct {
	op    job.Operation
	short string
}

var verbs = []verb{
	{job.OpDeterminant, "Print the determinant of each matrix"},
	{job.OpInverse, "Print the inverse of each matrix"},
	{job.OpSolve, "Solve A·x = b for each matrix/vector pair"},
	{job.OpTriangularize, "Print the upper-triangular form and the row-swap count"},
	{job.OpTranspose, "Print the transpose of each matrix"},
}

// newOperationCmds builds det, inverse, solve, triangularize and transpose.
// Each runs its own operation on every document of the given file,
// regardless of the document's operation field.
func newOperationCmds(a *app) []*cobra.Command {
	cmds := make([]*cobra.Command, 0, len(verbs))
	for _, v := range verbs {
		v := v
		cmds = append(cmds, &cobra.Command{
			Use:   string(v.op) + " <job.yaml>",
			Short: v.short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runOperation(cmd, a, v.op, args[0])
			},
		})
	}

	return cmds
}

// runOperation evaluates every document in path with op and prints the results.
func runOperation(cmd *cobra.Command, a *app, op job.Operation, path string) error {
	jobs, err := job.LoadFile(path, op)
	if err != nil {
		return err
	}
	a.logger.Debug("Loaded jobs", zap.String("path", path), zap.Int("count", len(jobs)))

	out := cmd.OutOrStdout()
	opts := a.cfg.FormatOptions()
	failed := 0
	for _, j := range jobs {
		j.Operation = op
		res := job.Evaluate(j)
		if len(jobs) > 1 {
			fmt.Fprintf(out, "== %s ==\n", j.Name)
		}
		fmt.Fprint(out, res.Format(opts...))
		if res.Err != nil {
			failed++
			a.logger.Warn("Job failed", zap.String("job", j.Name), zap.Error(res.Err))
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(jobs))
	}

	return nil
}
