// Package dlx: search driver — backtracking controller over the arena.
//
// The driver is a small state machine (select column → try row → backtrack)
// run on an explicit frame stack instead of the call stack, so search depth
// is bounded only by memory and cancellation unwinds as a plain pop loop.

package dlx

// frame records one committed level of the search: the covered column and
// the candidate cell currently being tried in its vertical ring. cur == col
// means no candidate has been tried yet.
type frame struct {
	col Handle
	cur Handle
}

// driver encapsulates the state of one solve over one Matrix.
type driver struct {
	m      *Matrix
	opts   Options
	limit  int     // stop threshold from the enumeration mode; 0 = unbounded
	floor  int     // stack depth owned by the caller (branch forking seeds 1)
	stack  []frame // one frame per covered selected column
	chosen []int32 // committed row indices, parallel to stack progress
	res    *Result
}

// Solve runs Algorithm X over m and returns the enumeration result.
//
// Column selection takes the primary column of minimum size, ties broken by
// declaration order. The enumeration mode decides when to stop; the
// OnSolution hook may stop earlier. Identical input and options produce an
// identical solution sequence.
//
// The matrix is restored to its pristine built state before Solve returns,
// whatever the termination mode. Cancellation is reported on the Result
// (Cancelled=true), not as an error.
//
// Errors: ErrNilMatrix, ErrBadLimit.
func Solve(m *Matrix, opts ...Option) (*Result, error) {
	// 1. Validate input matrix
	if m == nil {
		return nil, ErrNilMatrix
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.Mode == UpToN && o.MaxSolutions < 1 {
		return nil, ErrBadLimit
	}

	// 3. Route to the branch-fork extension when requested
	if o.Workers > 1 {
		return solveParallel(m, o)
	}

	// 4. Run the in-place search
	d := newDriver(m, o)
	d.run()
	d.finish()

	return d.res, nil
}

// newDriver prepares a driver with a zeroed operations counter.
func newDriver(m *Matrix, o Options) *driver {
	m.ops = 0

	return &driver{
		m:     m,
		opts:  o,
		limit: o.limit(),
		res:   &Result{},
	}
}

// Driver states. The hardware-style FSM collapses to two: selecting the
// next column for the current partial cover, and advancing the top frame to
// its next candidate row (which is also how every backtrack happens).
const (
	stateSelect = iota
	stateAdvance
)

// run executes the search loop until exhaustion, an enumeration stop, or
// cancellation. Early exits unwind every pending cover first.
func (d *driver) run() {
	state := stateSelect
	for {
		switch state {
		case stateSelect:
			// 1. Cancellation check, once per column selection
			select {
			case <-d.opts.Ctx.Done():
				d.unwind()
				d.res.Cancelled = true

				return
			default:
			}

			// 2. Terminal success: the header ring is empty
			if d.m.nodes[root].right == root {
				if !d.emit() {
					d.unwind()

					return
				}
				state = stateAdvance
				continue
			}

			// 3. Select the min-size column; a zero-size column is a dead
			// end and cannot be satisfied — backtrack without covering
			c := d.m.selectColumn()
			if d.m.cols[c].size == 0 {
				state = stateAdvance
				continue
			}
			d.m.cover(c)
			d.stack = append(d.stack, frame{col: c, cur: c})
			state = stateAdvance

		case stateAdvance:
			// 1. Nothing left to advance: the search space is exhausted
			if len(d.stack) == d.floor {
				d.res.Exhausted = true

				return
			}

			// 2. Retract the previous candidate, then step down the ring
			f := &d.stack[len(d.stack)-1]
			if f.cur != f.col {
				d.retractRow(f.cur)
			}
			f.cur = d.m.nodes[f.cur].down

			// 3. Ring exhausted: uncover the column and pop the frame
			if f.cur == f.col {
				d.m.uncover(f.col)
				d.stack = d.stack[:len(d.stack)-1]
				continue
			}

			// 4. Commit the candidate row and descend
			d.commitRow(f.cur)
			state = stateSelect
		}
	}
}

// selectColumn scans the header ring left to right for the column with the
// smallest size. The strict comparison keeps the earliest-declared column
// on ties; an exact zero short-circuits, since no column can beat it.
// Only primary columns live in the ring, so secondary columns are never
// candidates. Must not be called on an empty ring.
func (m *Matrix) selectColumn() Handle {
	n := m.nodes
	var (
		best     Handle
		bestSize = -1
		h        Handle
		sz       int
	)
	for h = n[root].right; h != root; h = n[h].right {
		if sz = m.cols[h].size; bestSize < 0 || sz < bestSize {
			best, bestSize = h, sz
			if sz == 0 {
				break
			}
		}
	}

	return best
}

// commitRow pushes r's row onto the solution stack and covers every other
// primary column r touches, left to right starting just after r.
// Secondary columns are never covered: they impose no exactly-once
// constraint, so rows sharing them remain mutually compatible.
func (d *driver) commitRow(r Handle) {
	d.chosen = append(d.chosen, d.m.nodes[r].row)
	if len(d.chosen) > d.res.MaxDepth {
		d.res.MaxDepth = len(d.chosen)
	}

	n := d.m.nodes
	for j := n[r].right; j != r; j = n[j].right {
		if !d.m.cols[n[j].col].secondary {
			d.m.cover(n[j].col)
		}
	}
}

// retractRow is the exact inverse of commitRow: uncover right to left, then
// pop the solution stack.
func (d *driver) retractRow(r Handle) {
	n := d.m.nodes
	for j := n[r].left; j != r; j = n[j].left {
		if !d.m.cols[n[j].col].secondary {
			d.m.uncover(n[j].col)
		}
	}
	d.chosen = d.chosen[:len(d.chosen)-1]
}

// emit records the current stack of chosen rows as a solution and reports
// whether the search should continue.
func (d *driver) emit() bool {
	sol := make(Solution, len(d.chosen))
	var (
		i int
		r int32
	)
	for i, r = range d.chosen {
		sol[i] = d.m.rows[r]
	}

	d.res.SolutionCount++
	if d.opts.CollectSolutions {
		d.res.Solutions = append(d.res.Solutions, sol)
	}
	if d.opts.OnSolution != nil && !d.opts.OnSolution(sol) {
		return false
	}

	return d.limit == 0 || d.res.SolutionCount < d.limit
}

// unwind pops every frame above the floor, undoing its pending covers in
// reverse order of application. After unwind the matrix is structurally
// identical to its state when the driver started.
func (d *driver) unwind() {
	var f frame
	for len(d.stack) > d.floor {
		f = d.stack[len(d.stack)-1]
		if f.cur != f.col {
			d.retractRow(f.cur)
		}
		d.m.uncover(f.col)
		d.stack = d.stack[:len(d.stack)-1]
	}
}

// finish derives the summary fields once the loop has returned.
func (d *driver) finish() {
	d.res.Solved = d.res.SolutionCount > 0
	d.res.Operations = d.m.ops
}
