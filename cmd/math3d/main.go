// SPDX-License-Identifier: MIT

// Command math3d evaluates matrix job documents: determinants, inverses,
// linear-system solves, triangularization and transposes.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/math3d/internal/config"
	"github.com/katalvlaran/math3d/matrix"
)

// app carries flag values, the loaded configuration and the logger for one
// command tree.
type app struct {
	// Global flags
	verbose    bool
	configPath string
	width      int
	precision  int

	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds the command tree. A non-nil a.logger is kept as is
// (tests inject zap.NewNop()).
func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "math3d",
		Short: "Fixed-dimension linear algebra on YAML job documents",
		Long: `math3d reads matrices (and vectors) from YAML job documents and runs
Gaussian-elimination based operations on them.

A job document looks like:

  name: example
  operation: solve        # det | inverse | solve | triangularize | transpose
  order: row-major        # or column-major
  matrix:
    - [2, 1, 3]
    - [-3, -1, 2]
    - [1, 2, 4]
  vector: [1, 2, 3]       # solve only

Several documents may share one file, separated by "---".`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("width") {
				cfg.Output.Width = a.width
			}
			if cmd.Flags().Changed("precision") {
				cfg.Output.Precision = a.precision
			}
			if a.verbose {
				cfg.Log.Level = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			a.cfg = cfg

			if a.logger != nil {
				return nil
			}
			// Initialize logger
			zc := zap.NewProductionConfig()
			level, err := zapcore.ParseLevel(cfg.Log.Level)
			if err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			zc.Level = zap.NewAtomicLevelAt(level)
			a.logger, err = zc.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file (YAML)")
	root.PersistentFlags().IntVar(&a.width, "width", matrix.DefaultWidth, "Column width for matrix output")
	root.PersistentFlags().IntVar(&a.precision, "precision", matrix.DefaultPrecision, "Fractional digits for matrix output")

	for _, c := range newOperationCmds(a) {
		root.AddCommand(c)
	}
	root.AddCommand(newRunCmd(a))

	return root
}

func main() {
	if err := newRootCmd(&app{}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
