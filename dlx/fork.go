// Package dlx: branch forking — the documented parallel extension.
//
// The in-place search is not parallelizable: cover/uncover mutate shared
// rings every frame depends on for correct undo. The only sound speedup is
// to fork at the first selected column: clone the whole arena per candidate
// row and run each clone's sub-search independently, with no shared mutable
// state. Branch results merge in candidate order, so the solution sequence
// is identical to the sequential one.

package dlx

import "golang.org/x/sync/errgroup"

// solveParallel explores the candidate rows of the first selected column on
// independent clones, at most o.Workers sub-searches at a time.
//
// Each branch searches eagerly up to the caller's own limit; the merge then
// replays emission in branch order, applying the enumeration policy and the
// OnSolution hook exactly as the sequential driver would. Parallel mode
// trades lazy delivery for throughput — the hook fires during the merge,
// after branch workers have finished.
func solveParallel(m *Matrix, o Options) (*Result, error) {
	// 1. Degenerate shapes never fork: run in place.
	if m.nodes[root].right == root {
		seq := o
		seq.Workers = 1
		d := newDriver(m, seq)
		d.run()
		d.finish()

		return d.res, nil
	}

	// 2. Pick the branching column and snapshot its candidate rows.
	c := m.selectColumn()
	var cands []Handle
	for r := m.nodes[c].down; r != c; r = m.nodes[r].down {
		cands = append(cands, r)
	}
	if len(cands) == 0 {
		// Dead end at the root of the tree: no row can cover c.
		return &Result{Exhausted: true}, nil
	}

	// 3. Fork: one clone per candidate. Handles are identical across
	// clones, so c and the candidate carry over unchanged.
	results := make([]*Result, len(cands))
	g, ctx := errgroup.WithContext(o.Ctx)
	g.SetLimit(o.Workers)
	for i, r := range cands {
		i, r := i, r
		g.Go(func() error {
			bo := o
			bo.Ctx = ctx
			bo.OnSolution = nil // hooks run in the merge, in order
			bo.CollectSolutions = true

			d := newDriver(m.Clone(), bo)
			d.floor = 1
			d.m.cover(c)
			d.stack = append(d.stack, frame{col: c, cur: r})
			d.commitRow(r)
			d.run()
			d.finish()
			results[i] = d.res

			return nil
		})
	}
	_ = g.Wait() // branch workers never return errors

	// 4. Merge in branch order, replaying the enumeration policy.
	return mergeBranches(o, results), nil
}

// mergeBranches folds per-branch results into one, preserving the
// sequential emission order and stop semantics.
func mergeBranches(o Options, results []*Result) *Result {
	var (
		out       = &Result{}
		limit     = o.limit()
		stopped   = false
		exhausted = true
	)
	var (
		br  *Result
		sol Solution
	)
	for _, br = range results {
		out.Operations += br.Operations
		if br.MaxDepth > out.MaxDepth {
			out.MaxDepth = br.MaxDepth
		}
		if br.Cancelled {
			out.Cancelled = true
		}
		if !br.Exhausted {
			exhausted = false
		}
		if stopped {
			continue
		}
		for _, sol = range br.Solutions {
			out.SolutionCount++
			if o.CollectSolutions {
				out.Solutions = append(out.Solutions, sol)
			}
			if o.OnSolution != nil && !o.OnSolution(sol) {
				stopped = true
				break
			}
			if limit > 0 && out.SolutionCount >= limit {
				stopped = true
				break
			}
		}
	}

	out.Solved = out.SolutionCount > 0
	out.Exhausted = exhausted && !stopped && !out.Cancelled

	return out
}
