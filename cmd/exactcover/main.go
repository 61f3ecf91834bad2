// Command exactcover solves exact-cover problems with dancing links.
//
// Problems load from YAML files (see `exactcover solve --help`) or from
// the built-in packing demo (`exactcover demo`).
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "exactcover",
	Short: "Exact-cover solver (Algorithm X / dancing links)",
	Long: `exactcover enumerates exact covers of sparse 0/1 matrices using
Knuth's Algorithm X over a dancing-links arena.

A problem is a set of columns (constraints) and rows (candidates); a
solution is a set of rows covering every primary column exactly once.
Problems load from a YAML file (solve) or from a built-in polyomino
packing demo (demo).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	solveCmd.Flags().BoolVar(&solveAll, "all", false, "enumerate every solution")
	solveCmd.Flags().IntVar(&solveMax, "max-solutions", 0, "stop after N solutions (0 = first only)")
	solveCmd.Flags().BoolVar(&solveStats, "stats", false, "log search statistics")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "abort the search after this duration")
	solveCmd.Flags().IntVar(&solveWorkers, "workers", 1, "fork top-level branches across N goroutines")
	rootCmd.AddCommand(solveCmd)

	demoCmd.Flags().BoolVar(&demoStats, "stats", false, "log search statistics")
	rootCmd.AddCommand(demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// logStats emits the solver diagnostics as structured fields.
func logStats(elapsed time.Duration, count int, operations int64, maxDepth int, exhausted, cancelled bool) {
	logger.Info("search finished",
		zap.Duration("elapsed", elapsed),
		zap.Int("solutions", count),
		zap.Int64("operations", operations),
		zap.Int("max_depth", maxDepth),
		zap.Bool("exhausted", exhausted),
		zap.Bool("cancelled", cancelled),
	)
}
