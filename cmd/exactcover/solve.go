package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/XhovaniM8/exactcover/dlx"
)

var (
	solveAll     bool
	solveMax     int
	solveStats   bool
	solveTimeout time.Duration
	solveWorkers int
)

// problemFile is the YAML schema of a solve input.
//
//	columns:
//	  - name: A
//	  - name: X
//	    secondary: true
//	rows:
//	  - label: r1
//	    columns: [A, X]
type problemFile struct {
	Columns []struct {
		Name      string `yaml:"name"`
		Secondary bool   `yaml:"secondary"`
	} `yaml:"columns"`
	Rows []struct {
		Label   string   `yaml:"label"`
		Columns []string `yaml:"columns"`
	} `yaml:"rows"`
}

var solveCmd = &cobra.Command{
	Use:   "solve FILE",
	Short: "Solve an exact-cover problem from a YAML file",
	Long: `Loads columns and rows from a YAML problem file, runs the search,
and prints each solution as its row labels in commit order.

By default only the first solution is reported; use --all or
--max-solutions to enumerate more.`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func runSolve(cmd *cobra.Command, args []string) error {
	// 1. Load and decode the problem file
	m, err := loadProblem(args[0])
	if err != nil {
		return err
	}
	logger.Debug("problem loaded",
		zap.String("file", args[0]),
		zap.Int("columns", m.ColumnCount()),
		zap.Int("rows", m.RowCount()),
		zap.Int("nodes", m.NodeCount()),
	)

	// 2. Assemble solver options from flags
	opts := []dlx.Option{dlx.WithOnSolution(func(s dlx.Solution) bool {
		fmt.Fprintln(cmd.OutOrStdout(), formatSolution(s))
		return true
	}), dlx.WithSolutionCollection(false)}
	switch {
	case solveAll:
		opts = append(opts, dlx.WithMode(dlx.All))
	case solveMax > 0:
		opts = append(opts, dlx.WithMaxSolutions(solveMax))
	}
	if solveWorkers > 1 {
		opts = append(opts, dlx.WithParallelFork(solveWorkers))
	}
	ctx := cmd.Context()
	if solveTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, solveTimeout)
		defer cancel()
	}
	opts = append(opts, dlx.WithContext(ctx))

	// 3. Run the search
	start := time.Now()
	res, err := dlx.Solve(m, opts...)
	if err != nil {
		return err
	}
	if solveStats {
		logStats(time.Since(start), res.SolutionCount, res.Operations, res.MaxDepth, res.Exhausted, res.Cancelled)
	}

	// 4. Report the outcome
	switch {
	case res.Cancelled:
		fmt.Fprintln(cmd.OutOrStdout(), "search cancelled")
	case !res.Solved:
		fmt.Fprintln(cmd.OutOrStdout(), "no solution")
	}

	return nil
}

// loadProblem reads a YAML problem file and builds its matrix.
func loadProblem(path string) (*dlx.Matrix, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read problem: %w", err)
	}
	var pf problemFile
	if err = yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("decode problem: %w", err)
	}

	nodes := 0
	for _, r := range pf.Rows {
		nodes += len(r.Columns)
	}
	b := dlx.NewBuilder(
		dlx.WithMaxNodes(nodes),
		dlx.WithMaxColumns(len(pf.Columns)),
	)
	for _, c := range pf.Columns {
		if c.Secondary {
			err = b.AddSecondaryColumn(c.Name)
		} else {
			err = b.AddColumn(c.Name)
		}
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
	}
	for _, r := range pf.Rows {
		if err = b.AddRow(dlx.RowLabel(r.Label), r.Columns...); err != nil {
			return nil, fmt.Errorf("row %q: %w", r.Label, err)
		}
	}

	return b.Build()
}

// formatSolution joins a solution's labels with spaces.
func formatSolution(s dlx.Solution) string {
	out := ""
	for i, l := range s {
		if i > 0 {
			out += " "
		}
		out += string(l)
	}

	return out
}
