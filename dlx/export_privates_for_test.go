// SPDX-License-Identifier: MIT

package dlx

// Test-Bridge (White-Box) for Private Engine Operations
//
// Purpose:
//   - Expose UNEXPORTED cover/uncover, column selection and the structural
//     snapshot to dlx_test ONLY, without widening the prod API.
//   - cover/uncover misuse is a programming error by contract, so the
//     public surface never offers them; the inverse-law and size-invariant
//     properties still need direct access.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds while
//     granting the external test package white-box reach.
//
// Provided Surface:
//   - ExportedCover / ExportedUncover / ExportedSelectColumn / ExportedSnapshot
//   - Links_TestOnly: raw link fields of one arena slot
//   - Root_TestOnly: the reserved root handle

var (
	// ExportedCover exposes (*Matrix).cover for white-box tests.
	ExportedCover = (*Matrix).cover
	// ExportedUncover exposes (*Matrix).uncover for white-box tests.
	ExportedUncover = (*Matrix).uncover
	// ExportedSelectColumn exposes the min-size selection scan.
	ExportedSelectColumn = (*Matrix).selectColumn
	// ExportedSnapshot exposes the canonical structural dump.
	ExportedSnapshot = (*Matrix).snapshot
)

// Root_TestOnly returns the reserved root header handle.
func Root_TestOnly() Handle { return root }

// Links_TestOnly returns the raw link fields of the arena slot h, letting
// tests walk rings in all four directions without touching internals.
func (m *Matrix) Links_TestOnly(h Handle) (left, right, up, down, col Handle) {
	n := m.nodes[h]

	return n.left, n.right, n.up, n.down, n.col
}
