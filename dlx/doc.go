// Package dlx implements Knuth's Algorithm X over Dancing Links: an
// exact-cover search engine built on an arena of circular doubly-linked
// rings addressed by integer handles.
//
// What:
//
//   - Builder: declares primary/secondary columns and membership rows,
//     then freezes them into an immutable-capacity Matrix. Supports:
//   - First-seen column order (header ring = declaration order)
//   - Secondary ("don't care") columns outside the header ring
//   - Capacity limits for nodes and columns
//   - Matrix: arena-backed sparse 0/1 matrix. Nodes are spliced out of
//     their rings during search and spliced back on backtrack; nothing is
//     ever freed, so every undo restores the structure bit-for-bit.
//   - Solve: explicit-stack backtracking driver with the min-size column
//     heuristic (ties broken by declaration order), configurable
//     enumeration policies and context cancellation.
//   - SolveParallel (via WithParallelFork): clone-per-branch search over
//     independent copies of the arena, merged deterministically.
//
// Why:
//   - Solve tiling, placement, scheduling and constraint puzzles that
//     reduce to exact cover (polyomino packing, sudoku, n-queens)
//   - Enumerate every solution reproducibly, or stop after the first
//   - Embed a cancellable combinatorial search in a larger pipeline
//
// Key Types & Constants:
//
//   - Handle: integer index into the arena (no pointers cross the API)
//   - Builder, BuildOption: staged matrix construction with capacities
//   - Matrix: the built structure; Clone for branch forking
//   - Option, Options: Solve configuration (mode, hook, context, workers)
//   - Mode: FirstOnly, UpToN, All enumeration policies
//   - Result: solutions, counts, exhaustion/cancellation flags, diagnostics
//
// Complexity:
//
//   - Build:         Time O(N) for N matrix cells, Memory O(N)
//   - Cover/Uncover: Time O(r·w) per call (r = rows in the column,
//     w = row width); exact inverses by construction
//   - Solve:         exponential in the worst case (exact cover is
//     NP-complete); the min-size heuristic minimizes branching in practice
//
// Errors:
//
//   - ErrCapacityExceeded        arena limit reached during build
//   - ErrDuplicateColumn         column name declared twice
//   - ErrUnknownColumn           row references an undeclared column
//   - ErrDuplicateRowColumn      row lists the same column twice
//   - ErrEmptyRow                row with no columns
//   - ErrColumnAfterRow          column declared after the first row
//   - ErrBuilderConsumed         builder reused after Build
//   - ErrNilMatrix               nil *Matrix passed to Solve
//   - ErrBadLimit                UpToN mode with a limit below one
//   - ErrInvalidHandle           out-of-range handle on an accessor
//
// Cancellation is not an error: a cancelled Solve unwinds every pending
// uncover, returns a Result with Cancelled=true and a nil error, and
// leaves the Matrix exactly as built.
package dlx
