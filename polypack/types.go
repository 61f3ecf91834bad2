// Package polypack defines core types and sentinel errors for the
// polyomino-packing front end of github.com/XhovaniM8/exactcover.
package polypack

// Cell is one grid offset of a piece, relative to the piece's anchor.
type Cell struct {
	X, Y int
}

// Piece is a polyomino: the set of cells it occupies, relative to an
// arbitrary anchor. Offsets may be negative; only their relative shape
// matters. Pieces translate across the grid but are never rotated.
type Piece []Cell

// Problem describes one packing instance: a Width×Height rectangular grid
// that must be covered completely, using every piece exactly once.
type Problem struct {
	Width, Height int
	Pieces        []Piece
}

// Placement is one candidate position: piece index plus the translation
// applied to its offsets. Placements double as the decode table for
// solutions — each matrix row label is the placement's index.
type Placement struct {
	Piece int
	X, Y  int
}
