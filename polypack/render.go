package polypack

import (
	"strconv"
	"strings"

	"github.com/XhovaniM8/exactcover/dlx"
)

// Render draws a solved packing as ASCII art: one string per grid row,
// each piece filled with a letter derived from its index ('A' + i mod 26).
// The solution's labels must be placement indices into the table returned
// by BuildMatrix; anything else reports ErrUnknownPlacement.
func Render(p Problem, placements []Placement, sol dlx.Solution) ([]string, error) {
	// 1. Paint every placed piece onto a flat canvas
	canvas := make([]byte, p.Width*p.Height)
	for i := range canvas {
		canvas[i] = '.'
	}
	var (
		label dlx.RowLabel
		c     Cell
	)
	for _, label = range sol {
		idx, err := strconv.Atoi(string(label))
		if err != nil || idx < 0 || idx >= len(placements) {
			return nil, ErrUnknownPlacement
		}
		pl := placements[idx]
		letter := byte('A' + pl.Piece%26)
		for _, c = range p.Pieces[pl.Piece] {
			canvas[(pl.Y+c.Y)*p.Width+pl.X+c.X] = letter
		}
	}

	// 2. Slice the canvas into rows
	rows := make([]string, p.Height)
	var sb strings.Builder
	for y := 0; y < p.Height; y++ {
		sb.Reset()
		sb.Write(canvas[y*p.Width : (y+1)*p.Width])
		rows[y] = sb.String()
	}

	return rows, nil
}
