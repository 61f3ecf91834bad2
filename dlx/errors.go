// SPDX-License-Identifier: MIT
// Package dlx: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the dlx
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers (if any).

package dlx

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "dlx: ..." for consistency and to allow easy
// grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// builder lifecycle -> capacity -> input shape (unknown/duplicate/empty)
// -> solve preconditions -> accessor bounds.

var (
	// ErrCapacityExceeded is returned when an allocation would exceed the
	// arena's configured maximum node or column count. Fatal: it poisons the
	// Builder and aborts the build.
	ErrCapacityExceeded = errors.New("dlx: arena capacity exceeded")

	// ErrDuplicateColumn indicates a column name was declared more than once.
	ErrDuplicateColumn = errors.New("dlx: column declared twice")

	// ErrUnknownColumn indicates a row referenced a column name that was not
	// declared before the first AddRow.
	ErrUnknownColumn = errors.New("dlx: unknown column name")

	// ErrDuplicateRowColumn indicates a row listed the same column twice.
	ErrDuplicateRowColumn = errors.New("dlx: duplicate column in row")

	// ErrEmptyRow indicates a row with no column memberships. Such a row can
	// never satisfy any constraint and signals malformed input.
	ErrEmptyRow = errors.New("dlx: empty row")

	// ErrColumnAfterRow indicates a column declaration after the first
	// AddRow. Headers must stay contiguous in the arena, so the build is
	// strictly two-phase: all columns, then all rows.
	ErrColumnAfterRow = errors.New("dlx: column declared after rows")

	// ErrBuilderConsumed indicates the Builder was used again after Build.
	// A Builder hands its arena to exactly one Matrix.
	ErrBuilderConsumed = errors.New("dlx: builder already consumed by Build")

	// ErrNilMatrix indicates that a nil *Matrix was passed to Solve.
	ErrNilMatrix = errors.New("dlx: nil matrix")

	// ErrBadLimit indicates an UpToN enumeration limit below one.
	ErrBadLimit = errors.New("dlx: solution limit must be >= 1")

	// ErrInvalidHandle indicates an out-of-range handle on a public accessor.
	// Internal traversal never checks bounds: a correct Builder cannot
	// produce a dangling handle, so this surfacing means a defect.
	ErrInvalidHandle = errors.New("dlx: invalid handle")
)
