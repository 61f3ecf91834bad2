package dlx

import (
	"fmt"
	"strings"
)

// snapshot renders every arena slot and every column's metadata into one
// canonical string. Two matrices with byte-identical snapshots are
// structurally indistinguishable by any ring traversal, which makes the
// snapshot the ground truth for the cover/uncover inverse law and the
// cancellation-safety checks.
func (m *Matrix) snapshot() string {
	var sb strings.Builder
	sb.Grow(len(m.nodes) * 32)

	var h int
	for h = range m.nodes {
		n := m.nodes[h]
		fmt.Fprintf(&sb, "n%d L%d R%d U%d D%d C%d r%d\n", h, n.left, n.right, n.up, n.down, n.col, n.row)
	}
	for h = 1; h < len(m.cols); h++ {
		fmt.Fprintf(&sb, "c%d %s size=%d sec=%t\n", h, m.cols[h].name, m.cols[h].size, m.cols[h].secondary)
	}

	return sb.String()
}
