// Package dlx: cover/uncover — the dual splicing operations at the heart
// of Dancing Links.
//
// cover removes a column from the header ring and unlinks every row that
// intersects it from all other columns; uncover replays the exact reverse
// splice sequence. The pair is the engine's central correctness property:
// uncover(cover(c)) leaves every ring, in all four link directions,
// bit-for-bit identical to the state before cover(c).
//
// Traversal order is load-bearing. cover walks the column top-to-bottom
// (down) and each row left-to-right starting just after the column's own
// cell (right); uncover walks bottom-to-top (up) and right-to-left (left).
// Both operations are total: misuse (double-cover, uncover-without-cover)
// is a programming error prevented by the driver's stack discipline, not a
// runtime-reported condition.

package dlx

// cover splices column c out of the header ring, then unlinks every node
// of every row intersecting c from that node's own vertical ring.
// A removed node keeps its own links intact — that is what makes the undo
// possible.
func (m *Matrix) cover(c Handle) {
	n := m.nodes
	m.ops++

	// 1. Unlink the header: the ring skips c, c still points at the ring.
	n[n[c].left].right = n[c].right
	n[n[c].right].left = n[c].left

	// 2. For each row top-to-bottom, unlink its other cells.
	var i, j Handle
	for i = n[c].down; i != c; i = n[i].down {
		for j = n[i].right; j != i; j = n[j].right {
			n[n[j].up].down = n[j].down
			n[n[j].down].up = n[j].up
			m.cols[n[j].col].size--
			m.ops++
		}
	}
}

// uncover is the exact inverse of cover: rows bottom-to-top, cells
// right-to-left, then the header is spliced back into the ring.
func (m *Matrix) uncover(c Handle) {
	n := m.nodes
	m.ops++

	// 1. For each row bottom-to-top, relink its other cells.
	var i, j Handle
	for i = n[c].up; i != c; i = n[i].up {
		for j = n[i].left; j != i; j = n[j].left {
			m.cols[n[j].col].size++
			n[n[j].up].down = j
			n[n[j].down].up = j
			m.ops++
		}
	}

	// 2. Relink the header; its own left/right still name the neighbors.
	n[n[c].left].right = c
	n[n[c].right].left = c
}
