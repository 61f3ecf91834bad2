// Package dlx: Builder — staged construction of an exact-cover Matrix.
//
// The Builder consumes an ordered sequence of column declarations followed
// by an ordered sequence of rows and populates the arena with the circular
// ring structure the search driver operates on. Errors are sticky: the
// first failure poisons the Builder, every later call reports it, and
// Build never hands out a partially-built Matrix.

package dlx

const (
	// DefaultMaxNodes caps cell-node allocation when no hint is given.
	DefaultMaxNodes = 1 << 20
	// DefaultMaxColumns caps column allocation when no hint is given.
	DefaultMaxColumns = 1 << 16
)

// BuildOption configures the Builder's arena capacities.
// Use with NewBuilder(opts...).
type BuildOption func(*BuildOptions)

// BuildOptions holds the arena capacity hints. Exceeding either limit
// during construction fails the build with ErrCapacityExceeded.
type BuildOptions struct {
	// MaxNodes caps the number of cell nodes (one per row/column
	// membership). Headers are not counted.
	MaxNodes int

	// MaxColumns caps the number of declared columns, primary and
	// secondary together.
	MaxColumns int
}

// DefaultBuildOptions returns a BuildOptions struct with the package
// default capacities.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{
		MaxNodes:   DefaultMaxNodes,
		MaxColumns: DefaultMaxColumns,
	}
}

// WithMaxNodes returns a BuildOption that caps cell-node allocation.
// Non-positive values leave the default.
func WithMaxNodes(n int) BuildOption {
	return func(o *BuildOptions) {
		if n > 0 {
			o.MaxNodes = n
		}
	}
}

// WithMaxColumns returns a BuildOption that caps column allocation.
// Non-positive values leave the default.
func WithMaxColumns(n int) BuildOption {
	return func(o *BuildOptions) {
		if n > 0 {
			o.MaxColumns = n
		}
	}
}

// Builder accumulates column declarations and rows, then freezes them into
// a Matrix. Declare every column before the rows that reference it; column
// declaration order is the header ring order and therefore the
// tie-break order of the search heuristic.
type Builder struct {
	m    *Matrix
	err  error // sticky first error
	done bool  // Build already called
}

// NewBuilder returns a Builder over a fresh arena.
func NewBuilder(opts ...BuildOption) *Builder {
	// 1. Apply capacity hints
	bopts := DefaultBuildOptions()
	var fn BuildOption
	for _, fn = range opts {
		fn(&bopts)
	}

	// 2. Allocate the arena with its root header
	return &Builder{m: newMatrix(bopts.MaxNodes, bopts.MaxColumns)}
}

// AddColumn declares a primary column: one that every solution must cover
// exactly once. Columns enter the header ring in first-seen order.
func (b *Builder) AddColumn(name string) error {
	return b.addColumn(name, false)
}

// AddSecondaryColumn declares a secondary column: one a solution may cover
// any number of times, including zero. Secondary columns are allocated but
// never linked into the header ring, so the driver never selects them.
func (b *Builder) AddSecondaryColumn(name string) error {
	return b.addColumn(name, true)
}

func (b *Builder) addColumn(name string, secondary bool) error {
	// 1. Lifecycle and sticky-error gates
	if err := b.gate(); err != nil {
		return err
	}

	// 2. Enforce the two-phase build: headers must precede all cell nodes
	// so they stay contiguous in the arena
	if len(b.m.rows) > 0 {
		return b.fail(ErrColumnAfterRow)
	}

	// 3. Reject redeclaration
	if _, ok := b.m.colIndex[name]; ok {
		return b.fail(ErrDuplicateColumn)
	}

	// 4. Allocate the header and link it
	h, err := b.m.allocColumn(name, secondary)
	if err != nil {
		return b.fail(err)
	}
	b.m.colIndex[name] = h

	return nil
}

// AddRow appends a row with the given opaque label and column memberships.
// Each membership becomes one cell node, linked circularly into its
// column's vertical ring (row-arrival order top to bottom) and into the
// row's horizontal ring (argument order left to right).
//
// Errors: ErrEmptyRow for no memberships, ErrUnknownColumn for an
// undeclared name, ErrDuplicateRowColumn for a repeated name, and
// ErrCapacityExceeded when the arena is full. Any of them poisons the
// Builder.
func (b *Builder) AddRow(label RowLabel, cols ...string) error {
	// 1. Lifecycle and sticky-error gates
	if err := b.gate(); err != nil {
		return err
	}

	// 2. Validate shape before touching the arena
	if len(cols) == 0 {
		return b.fail(ErrEmptyRow)
	}
	var (
		i, j int
		name string
	)
	for i, name = range cols {
		if _, ok := b.m.colIndex[name]; !ok {
			return b.fail(ErrUnknownColumn)
		}
		for j = 0; j < i; j++ {
			if cols[j] == name {
				return b.fail(ErrDuplicateRowColumn)
			}
		}
	}
	if b.m.NodeCount()+len(cols) > b.m.maxNodes {
		return b.fail(ErrCapacityExceeded)
	}

	// 3. Record the label; cells reference the row by index
	rowIdx := int32(len(b.m.rows))
	b.m.rows = append(b.m.rows, label)

	// 4. Allocate cells: vertical linking happens in allocNode, horizontal
	// ring is threaded here
	var first, prev, h Handle
	for _, name = range cols {
		h, _ = b.m.allocNode(rowIdx, b.m.colIndex[name]) // capacity pre-checked
		if first == 0 {
			first, prev = h, h
			continue
		}
		// Splice h after prev, closing the ring through first.
		b.m.nodes[h].left = prev
		b.m.nodes[h].right = first
		b.m.nodes[prev].right = h
		b.m.nodes[first].left = h
		prev = h
	}

	return nil
}

// Build freezes the accumulated structure into a Matrix. After a
// successful Build the Builder is consumed; after any earlier failure
// Build reports that failure and returns no Matrix.
func (b *Builder) Build() (*Matrix, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.done {
		return nil, ErrBuilderConsumed
	}
	b.done = true

	return b.m, nil
}

// gate enforces the sticky error and the consumed-builder lifecycle.
func (b *Builder) gate() error {
	if b.err != nil {
		return b.err
	}
	if b.done {
		b.err = ErrBuilderConsumed

		return b.err
	}

	return nil
}

// fail records the first error and returns it.
func (b *Builder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}

	return err
}
