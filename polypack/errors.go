package polypack

import "errors"

var (
	// ErrEmptyGrid indicates a non-positive grid width or height.
	ErrEmptyGrid = errors.New("polypack: grid must have positive width and height")
	// ErrNoPieces indicates a problem declared without any pieces.
	ErrNoPieces = errors.New("polypack: problem needs at least one piece")
	// ErrEmptyPiece indicates a piece with no cells.
	ErrEmptyPiece = errors.New("polypack: piece has no cells")
	// ErrPieceTooLarge indicates a piece that fits nowhere on the grid.
	ErrPieceTooLarge = errors.New("polypack: piece has no valid placement")
	// ErrUnknownPlacement indicates a solution row label outside the
	// placement table.
	ErrUnknownPlacement = errors.New("polypack: solution references unknown placement")
)
