package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/XhovaniM8/exactcover/dlx"
	"github.com/XhovaniM8/exactcover/polypack"
)

var demoStats bool

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Pack tetrominoes onto a small board",
	Long: `Encodes a fixed polyomino packing as an exact cover and renders
every tiling: an I bar and two O squares on a 4x3 board. Pieces
translate only, so the instance stays small enough to read.`,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	// 1. Build the packing instance
	tet := polypack.Tetrominoes()
	p := polypack.Problem{
		Width:  4,
		Height: 3,
		Pieces: []polypack.Piece{tet[0], tet[1], tet[1]}, // I, O, O
	}
	m, placements, err := p.BuildMatrix()
	if err != nil {
		return err
	}
	logger.Debug("demo matrix built",
		zap.Int("columns", m.ColumnCount()),
		zap.Int("rows", m.RowCount()),
		zap.Int("nodes", m.NodeCount()),
	)

	// 2. Enumerate every tiling
	start := time.Now()
	res, err := dlx.Solve(m, dlx.WithMode(dlx.All), dlx.WithContext(cmd.Context()))
	if err != nil {
		return err
	}
	if demoStats {
		logStats(time.Since(start), res.SolutionCount, res.Operations, res.MaxDepth, res.Exhausted, res.Cancelled)
	}

	// 3. Render each board
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d tiling(s) of a %dx%d board\n", res.SolutionCount, p.Width, p.Height)
	for i, sol := range res.Solutions {
		rows, rerr := polypack.Render(p, placements, sol)
		if rerr != nil {
			return rerr
		}
		fmt.Fprintf(out, "\n#%d\n", i+1)
		for _, row := range rows {
			fmt.Fprintln(out, row)
		}
	}

	return nil
}
