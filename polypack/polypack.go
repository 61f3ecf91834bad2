// Package polypack: placement enumeration and matrix construction.

package polypack

import (
	"fmt"
	"strconv"

	"github.com/XhovaniM8/exactcover/dlx"
)

// Placements enumerates every valid translation of every piece:
// piece-major, then top-to-bottom, then left-to-right. A placement is
// valid when all cells land in bounds and no cell repeats. The order is
// the matrix row order and therefore fixes solution determinism.
func (p Problem) Placements() ([]Placement, error) {
	// 1. Validate the problem shape
	if p.Width < 1 || p.Height < 1 {
		return nil, ErrEmptyGrid
	}
	if len(p.Pieces) == 0 {
		return nil, ErrNoPieces
	}

	// 2. Scan every anchor position for every piece
	var out []Placement
	var (
		idx, x, y int
		piece     Piece
	)
	for idx, piece = range p.Pieces {
		if len(piece) == 0 {
			return nil, ErrEmptyPiece
		}
		found := false
		for y = 0; y < p.Height; y++ {
			for x = 0; x < p.Width; x++ {
				if p.fits(piece, x, y) {
					out = append(out, Placement{Piece: idx, X: x, Y: y})
					found = true
				}
			}
		}
		if !found {
			return nil, ErrPieceTooLarge
		}
	}

	return out, nil
}

// fits reports whether piece, anchored at (x, y), lands fully in bounds
// without covering any cell twice.
func (p Problem) fits(piece Piece, x, y int) bool {
	seen := make(map[int]struct{}, len(piece))
	for _, c := range piece {
		nx, ny := x+c.X, y+c.Y
		if nx < 0 || nx >= p.Width || ny < 0 || ny >= p.Height {
			return false
		}
		cell := ny*p.Width + nx
		if _, dup := seen[cell]; dup {
			return false
		}
		seen[cell] = struct{}{}
	}

	return true
}

// BuildMatrix encodes the problem as an exact-cover matrix: one primary
// column per grid cell (covered exactly once ⇒ no gaps, no overlaps) and
// one primary column per piece (used exactly once). Each placement
// becomes a row whose label is the placement's index in the returned
// table.
//
// Arena capacities are derived from the enumeration, so the builder's
// limits are exact rather than hints.
func (p Problem) BuildMatrix() (*dlx.Matrix, []Placement, error) {
	// 1. Enumerate candidate rows first; they size the arena
	placements, err := p.Placements()
	if err != nil {
		return nil, nil, err
	}
	nodes := 0
	var pl Placement
	for _, pl = range placements {
		nodes += len(p.Pieces[pl.Piece]) + 1 // cells + the piece column
	}

	// 2. Declare columns: grid cells row-major, then pieces
	b := dlx.NewBuilder(
		dlx.WithMaxNodes(nodes),
		dlx.WithMaxColumns(p.Width*p.Height+len(p.Pieces)),
	)
	var x, y, i int
	for y = 0; y < p.Height; y++ {
		for x = 0; x < p.Width; x++ {
			if err = b.AddColumn(cellColumn(x, y)); err != nil {
				return nil, nil, err
			}
		}
	}
	for i = range p.Pieces {
		if err = b.AddColumn(pieceColumn(i)); err != nil {
			return nil, nil, err
		}
	}

	// 3. One row per placement, labeled by placement index
	cols := make([]string, 0, 8)
	for i, pl = range placements {
		cols = cols[:0]
		for _, c := range p.Pieces[pl.Piece] {
			cols = append(cols, cellColumn(pl.X+c.X, pl.Y+c.Y))
		}
		cols = append(cols, pieceColumn(pl.Piece))
		if err = b.AddRow(dlx.RowLabel(strconv.Itoa(i)), cols...); err != nil {
			return nil, nil, err
		}
	}

	m, err := b.Build()
	if err != nil {
		return nil, nil, err
	}

	return m, placements, nil
}

// cellColumn names the coverage constraint of grid cell (x, y).
func cellColumn(x, y int) string {
	return fmt.Sprintf("cell:%d,%d", x, y)
}

// pieceColumn names the use-exactly-once constraint of piece i.
func pieceColumn(i int) string {
	return fmt.Sprintf("piece:%d", i)
}
