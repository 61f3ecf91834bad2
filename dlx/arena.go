// Package dlx: arena — allocate-once, handle-stable storage for matrix
// cells and column headers.
//
// The four-way circular linked structure (left/right/up/down, each
// self-referential when its ring is empty) lives in a single node slice
// indexed by Handle. Handle 0 is the root header; the headers of all
// declared columns follow contiguously, then cell nodes in build order.
// Nodes are retired only by ring-unlinking, never freed, for the lifetime
// of a solve: uncover must restore them bit-for-bit.

package dlx

// node is one arena slot: a row/column intersection, a column header, or
// the root header. All six fields are handles except row, which indexes the
// matrix row-label table (rowNone for headers).
type node struct {
	left, right Handle
	up, down    Handle
	col         Handle
	row         int32
}

// colInfo carries the per-column metadata the rings do not encode. It is
// addressed by the column's header handle.
type colInfo struct {
	name      string
	size      int // live node count in the column's vertical ring
	secondary bool
}

// ColumnView is a read-only snapshot of one column, returned by accessors.
type ColumnView struct {
	Name      string
	Size      int
	Secondary bool
}

// Matrix is the built exact-cover structure. It exclusively owns all node
// and column storage; search drivers hold only handles into it. One Matrix
// supports one active solve at a time — Clone before forking branches.
type Matrix struct {
	nodes []node
	cols  []colInfo // indexed by header handle; slot 0 backs the root

	colIndex map[string]Handle // declaration name -> header handle
	rows     []RowLabel        // row index -> caller label

	primary  int // primary column count
	maxNodes int // cell-node capacity
	maxCols  int // column capacity

	ops int64 // splice counter for the active solve
}

// newMatrix allocates the arena with its root header in place.
func newMatrix(maxNodes, maxCols int) *Matrix {
	m := &Matrix{
		nodes:    make([]node, 1, 1+maxCols),
		cols:     make([]colInfo, 1, 1+maxCols),
		colIndex: make(map[string]Handle),
		maxNodes: maxNodes,
		maxCols:  maxCols,
	}
	// Root header: an empty header ring and empty vertical ring are both
	// self-links.
	m.nodes[root] = node{left: root, right: root, up: root, down: root, col: root, row: rowNone}

	return m
}

// allocColumn appends a column header. Primary columns are linked into the
// header ring immediately before root, preserving first-seen order;
// secondary columns stay outside the ring so they are never selected.
func (m *Matrix) allocColumn(name string, secondary bool) (Handle, error) {
	if len(m.cols)-1 >= m.maxCols {
		return 0, ErrCapacityExceeded
	}

	h := Handle(len(m.nodes))
	m.nodes = append(m.nodes, node{left: h, right: h, up: h, down: h, col: h, row: rowNone})
	m.cols = append(m.cols, colInfo{name: name, secondary: secondary})

	if !secondary {
		// Splice before root: root.left is the most recently declared column.
		last := m.nodes[root].left
		m.nodes[h].left = last
		m.nodes[h].right = root
		m.nodes[last].right = h
		m.nodes[root].left = h
		m.primary++
	}

	return h, nil
}

// allocNode appends a cell node for the given row, linked at the bottom of
// col's vertical ring (so top-to-bottom traversal matches row arrival
// order). Horizontal linking is the Builder's job.
func (m *Matrix) allocNode(row int32, col Handle) (Handle, error) {
	if len(m.nodes)-1-(len(m.cols)-1) >= m.maxNodes {
		return 0, ErrCapacityExceeded
	}

	h := Handle(len(m.nodes))
	bottom := m.nodes[col].up
	m.nodes = append(m.nodes, node{left: h, right: h, up: bottom, down: col, col: col, row: row})
	m.nodes[bottom].down = h
	m.nodes[col].up = h
	m.cols[col].size++

	return h, nil
}

// Handle returns the header handle of a declared column.
func (m *Matrix) Handle(name string) (Handle, error) {
	h, ok := m.colIndex[name]
	if !ok {
		return 0, ErrUnknownColumn
	}

	return h, nil
}

// Column returns a read-only view of the column addressed by h.
// Out-of-range or non-header handles fail with ErrInvalidHandle.
func (m *Matrix) Column(h Handle) (ColumnView, error) {
	if h < 1 || int(h) >= len(m.cols) {
		return ColumnView{}, ErrInvalidHandle
	}
	c := m.cols[h]

	return ColumnView{Name: c.name, Size: c.size, Secondary: c.secondary}, nil
}

// ColumnSize reports the current live node count of a declared column.
func (m *Matrix) ColumnSize(name string) (int, error) {
	h, err := m.Handle(name)
	if err != nil {
		return 0, err
	}

	return m.cols[h].size, nil
}

// Columns returns read-only views of every declared column, in declaration
// order. Sizes reflect the current rings, so a matrix observed mid-solve
// (from a solution hook) reports the covered state.
func (m *Matrix) Columns() []ColumnView {
	out := make([]ColumnView, 0, len(m.cols)-1)
	for h := 1; h < len(m.cols); h++ {
		c := m.cols[h]
		out = append(out, ColumnView{Name: c.name, Size: c.size, Secondary: c.secondary})
	}

	return out
}

// ColumnCount reports the number of declared columns (primary + secondary).
func (m *Matrix) ColumnCount() int { return len(m.cols) - 1 }

// PrimaryColumnCount reports the number of primary columns.
func (m *Matrix) PrimaryColumnCount() int { return m.primary }

// RowCount reports the number of rows added during the build.
func (m *Matrix) RowCount() int { return len(m.rows) }

// NodeCount reports the number of cell nodes in the arena (headers and the
// root excluded).
func (m *Matrix) NodeCount() int { return len(m.nodes) - len(m.cols) }

// Clone returns a deep structural copy of the matrix: an independent arena
// whose handles are identical to the original's. The column name index and
// row label table are immutable after build and are shared. Cloning is the
// only sound way to explore branches concurrently (branch forking).
func (m *Matrix) Clone() *Matrix {
	c := &Matrix{
		nodes:    make([]node, len(m.nodes)),
		cols:     make([]colInfo, len(m.cols)),
		colIndex: m.colIndex,
		rows:     m.rows,
		primary:  m.primary,
		maxNodes: m.maxNodes,
		maxCols:  m.maxCols,
	}
	copy(c.nodes, m.nodes)
	copy(c.cols, m.cols)

	return c
}
