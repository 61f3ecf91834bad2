// Package dlx defines the core types, enumeration modes, and solve options
// for the exact-cover engine of github.com/XhovaniM8/exactcover.
package dlx

import "context"

// Handle is an opaque integer reference into the arena, used instead of a
// memory address. Handle 0 is the root header; column headers and cell nodes
// follow in allocation order. Handles remain valid for the lifetime of the
// Matrix that issued them.
type Handle int32

// root is the reserved handle of the root header. It anchors the header ring
// of primary columns and is never covered.
const root Handle = 0

// rowNone marks header nodes, which belong to no row.
const rowNone int32 = -1

// RowLabel is the caller-supplied opaque label attached to a row. The engine
// never interprets it; solutions are reported as sets of these labels.
type RowLabel string

// Solution is one exact cover: the labels of the chosen rows in the order
// the search committed them. Treat it as an unordered set; the order is only
// meaningful for determinism guarantees.
type Solution []RowLabel

// Mode is the enumeration policy of a solve: FirstOnly, UpToN, or All.
type Mode int

const (
	// FirstOnly stops the search after the first solution.
	FirstOnly Mode = iota
	// UpToN stops after MaxSolutions solutions (see WithMaxSolutions).
	UpToN
	// All exhausts the entire search space and reports every solution.
	All
)

// Option configures optional behavior of Solve.
// Use with Solve(m, opts...).
type Option func(*Options)

// Options holds configurable parameters for an exact-cover solve.
// It controls cancellation, the enumeration policy, solution delivery,
// and the parallel branch-fork extension.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancellation is observed at every column-selection step, and the
	// driver fully unwinds its pending covers before returning.
	Ctx context.Context

	// Mode selects the enumeration policy. Default is FirstOnly.
	Mode Mode

	// MaxSolutions bounds the number of solutions under UpToN.
	// Ignored by the other modes.
	MaxSolutions int

	// OnSolution, if non-nil, is invoked synchronously for each solution as
	// it is found. Returning false stops the search; the matrix is restored
	// before Solve returns. The callback must not mutate the Matrix.
	OnSolution func(Solution) bool

	// CollectSolutions controls whether solutions are accumulated on the
	// Result. Default true. Disable for huge enumerations consumed purely
	// through OnSolution.
	CollectSolutions bool

	// Workers, when above one, enables the branch-fork extension: the first
	// selected column's candidate rows are explored on independent clones of
	// the matrix, at most Workers at a time. Results merge in branch order,
	// so enumeration stays deterministic. Default 1 (in-place search).
	Workers int
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - FirstOnly enumeration
//   - Solution collection enabled
//   - No solution hook
//   - Single-threaded in-place search (Workers = 1)
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Mode:             FirstOnly,
		MaxSolutions:     0,
		OnSolution:       nil,
		CollectSolutions: true,
		Workers:          1,
	}
}

// WithContext returns an Option that sets the Context for the solve.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMode returns an Option that selects the enumeration policy.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithMaxSolutions returns an Option that selects UpToN enumeration with the
// given limit. A limit below one is rejected by Solve with ErrBadLimit.
func WithMaxSolutions(n int) Option {
	return func(o *Options) {
		o.Mode = UpToN
		o.MaxSolutions = n
	}
}

// WithOnSolution returns an Option that installs fn as the solution hook.
// fn is called once per solution, in emission order; return false to stop.
func WithOnSolution(fn func(Solution) bool) Option {
	return func(o *Options) {
		o.OnSolution = fn
	}
}

// WithSolutionCollection returns an Option that enables or disables
// accumulating solutions on the Result.
func WithSolutionCollection(enabled bool) Option {
	return func(o *Options) {
		o.CollectSolutions = enabled
	}
}

// WithParallelFork returns an Option that runs the solve with the
// branch-fork extension on up to workers concurrent clones. Values below
// two leave the default in-place search.
func WithParallelFork(workers int) Option {
	return func(o *Options) {
		if workers > 1 {
			o.Workers = workers
		}
	}
}

// limit translates the enumeration mode into a stop threshold:
// 1 for FirstOnly, MaxSolutions for UpToN, and 0 (unbounded) for All.
func (o *Options) limit() int {
	switch o.Mode {
	case FirstOnly:
		return 1
	case UpToN:
		return o.MaxSolutions
	default:
		return 0
	}
}

// Result captures the outcome of a solve.
type Result struct {
	// Solutions holds each emitted solution in emission order, unless
	// collection was disabled. Under identical input and options the
	// sequence is fully deterministic.
	Solutions []Solution

	// Solved reports whether at least one solution was found.
	Solved bool

	// SolutionCount is the number of solutions emitted. Under All mode with
	// Exhausted=true it is the total number of exact covers.
	SolutionCount int

	// Exhausted reports that the entire search space was explored. It is
	// false when the enumeration policy or the solution hook stopped the
	// search early, and false on cancellation; this distinguishes "no
	// solution exists" from "search did not finish".
	Exhausted bool

	// Cancelled reports that the caller's context fired mid-search. The
	// matrix was still fully restored before Solve returned.
	Cancelled bool

	// Operations counts link splices plus cover/uncover invocations, the
	// engine's unit of structural work. Useful for benchmarks and for
	// comparing column-selection policies.
	Operations int64

	// MaxDepth is the deepest row-commitment stack reached.
	MaxDepth int
}
