// Package exactcover is an in-memory toolkit for modelling and solving
// exact-cover problems with Knuth's Algorithm X over Dancing Links.
//
// 🚀 What is exactcover?
//
//	A small, deterministic library that brings together:
//		• Sparse matrix core: arena-backed circular rings, integer handles
//		• Cover/Uncover: the self-undoing splice pair at the heart of DLX
//		• Search driver: explicit-stack backtracking with the min-size heuristic
//		• Enumeration policies: first solution, first N, or the full set
//		• Branch forking: clone-and-conquer parallel search over errgroup
//		• Polyomino packing: grid placements → exact-cover rows, ASCII renders
//
// ✨ Why choose exactcover?
//
//   - Deterministic – identical input order yields identical solution order
//   - Self-restoring – cover/uncover leave the matrix bit-for-bit intact
//   - Bounded depth – the driver runs on an explicit frame stack, not the
//     call stack, so deep instances cannot overflow
//   - Cancellable – context-aware search that always unwinds cleanly
//
// Under the hood, everything is organized under three subpackages:
//
//	dlx/      — arena, builder, cover/uncover engine & search driver
//	polypack/ — polyomino-packing front end (grid placements → matrices)
//	cmd/      — the exactcover CLI: YAML problems, demos, stats
//
// Quick ASCII example:
//
//	columns: A B          rows: 1 = {A,B}
//	                            2 = {A}
//	                            3 = {B}
//
//	two exact covers → {1} alone, or {2, 3}: either way A and B are each
//	covered exactly once.
//
// Dive into the dlx package docs for the full contract: invariants,
// enumeration modes, cancellation semantics and the parallel extension.
//
//	go get github.com/XhovaniM8/exactcover/dlx
package exactcover
