package polypack

// Tetrominoes returns the I, O, L and J tetrominoes in their canonical
// orientation. Placements translate only; rotations and reflections must
// be supplied as separate pieces if wanted.
func Tetrominoes() []Piece {
	return []Piece{
		{{0, 0}, {1, 0}, {2, 0}, {3, 0}}, // I
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, // O
		{{0, 0}, {1, 0}, {2, 0}, {2, 1}}, // L
		{{0, 0}, {1, 0}, {2, 0}, {0, 1}}, // J
	}
}

// SquareBlocks returns n identical 2×2 square pieces. Useful for small
// demos where the packing is trivially solvable and the solution count
// is easy to reason about.
func SquareBlocks(n int) []Piece {
	out := make([]Piece, n)
	for i := range out {
		out[i] = Piece{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	}

	return out
}
