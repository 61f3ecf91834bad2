// Package polypack turns polyomino-packing puzzles into exact-cover
// matrices for the dlx engine, and renders solved packings back into
// ASCII grids.
//
// What:
//
//   - Problem: a rectangular Width×Height grid plus a list of pieces,
//     each a set of cell offsets. Every piece must be used exactly once
//     and every grid cell must be covered exactly once.
//   - Placements: enumerates all in-bounds translations of every piece,
//     piece-major, then row-major — the candidate rows of the matrix.
//   - BuildMatrix: one primary column per grid cell plus one per piece,
//     one row per placement, with arena capacities sized exactly.
//   - Render: paints a dlx.Solution back onto the grid, lettering pieces
//     'A', 'B', 'C', … in declaration order.
//
// Why:
//   - Packing puzzles are the canonical exact-cover demonstration: the
//     encoding is tiny and every engine feature (enumeration modes,
//     determinism, unsolvable instances) is observable on a grid.
//
// Pieces translate only; rotations and reflections are the caller's job
// (declare each orientation as its own offsets, or as extra placements of
// the same piece by pre-expanding).
//
// Complexity:
//
//   - Placements: O(P·W·H·k) for P pieces of ≤k cells
//   - BuildMatrix: O(total placements · k)
//
// Errors:
//
//   - ErrEmptyGrid          non-positive grid dimension
//   - ErrNoPieces           problem without pieces
//   - ErrEmptyPiece         piece with no cells
//   - ErrPieceTooLarge      piece with no valid placement anywhere
//   - ErrUnknownPlacement   solution label outside the placement table
package polypack
