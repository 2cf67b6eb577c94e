// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/math3d/internal/job"
)

// newRunCmd builds `math3d run`, which evaluates many documents concurrently.
func newRunCmd(a *app) *cobra.Command {
	var workers int
	cmd := &cobra.Command{
		Use:   "run <job.yaml>...",
		Short: "Evaluate job documents concurrently, each with its own operation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("jobs") {
				a.cfg.Batch.Concurrency = workers
			}
			if a.cfg.Batch.Concurrency < 1 {
				return fmt.Errorf("--jobs must be >= 1, got %d", a.cfg.Batch.Concurrency)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runBatch(ctx, cmd, a, args)
		},
	}
	cmd.Flags().IntVarP(&workers, "jobs", "j", 0, "Max jobs evaluated at once (default: batch.concurrency)")

	return cmd
}

// runBatch loads every file, evaluates all documents with job.RunAll and
// prints each result under its name, in input order.
func runBatch(ctx context.Context, cmd *cobra.Command, a *app, paths []string) error {
	var jobs []*job.Job
	for _, p := range paths {
		loaded, err := job.LoadFile(p, "")
		if err != nil {
			return err
		}
		jobs = append(jobs, loaded...)
	}
	a.logger.Info("Running batch",
		zap.Int("jobs", len(jobs)),
		zap.Int("concurrency", a.cfg.Batch.Concurrency))

	results, err := job.RunAll(ctx, jobs, a.cfg.Batch.Concurrency, a.logger)

	out := cmd.OutOrStdout()
	opts := a.cfg.FormatOptions()
	for _, r := range results {
		fmt.Fprintf(out, "== %s (%s) ==\n", r.Job.Name, r.Job.Operation)
		fmt.Fprint(out, r.Format(opts...))
	}
	if err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}
	if n := job.Failed(results); n > 0 {
		return fmt.Errorf("%d of %d jobs failed", n, len(results))
	}

	return nil
}
