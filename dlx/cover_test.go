package dlx_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XhovaniM8/exactcover/dlx"
)

// buildKnuth constructs the matrix from Knuth's Dancing Links paper:
// columns A..G, rows r0={C,E,F}, r1={A,D,G}, r2={B,C,F}, r3={A,D},
// r4={B,G}, r5={D,E,G}. It admits exactly one exact cover: {r0, r3, r4}.
func buildKnuth(t testing.TB) *dlx.Matrix {
	t.Helper()
	b := dlx.NewBuilder()
	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		require.NoError(t, b.AddColumn(name))
	}
	rows := [][]string{
		{"C", "E", "F"},
		{"A", "D", "G"},
		{"B", "C", "F"},
		{"A", "D"},
		{"B", "G"},
		{"D", "E", "G"},
	}
	for i, cols := range rows {
		require.NoError(t, b.AddRow(dlx.RowLabel("r"+string(rune('0'+i))), cols...))
	}
	m, err := b.Build()
	require.NoError(t, err)

	return m
}

// ringSizes walks every column's vertical ring via raw links and returns
// the live node count per column name.
func ringSizes(t *testing.T, m *dlx.Matrix) map[string]int {
	t.Helper()
	sizes := make(map[string]int, m.ColumnCount())
	for h := dlx.Handle(1); int(h) <= m.ColumnCount(); h++ {
		col, err := m.Column(h)
		require.NoError(t, err)
		count := 0
		for cur := h; ; {
			_, _, _, cur, _ = m.Links_TestOnly(cur)
			if cur == h {
				break
			}
			count++
		}
		sizes[col.Name] = count
	}

	return sizes
}

func TestCoverUncover_InverseLaw(t *testing.T) {
	m := buildKnuth(t)
	before := dlx.ExportedSnapshot(m)

	for _, name := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		h, err := m.Handle(name)
		require.NoError(t, err)
		dlx.ExportedCover(m, h)
		dlx.ExportedUncover(m, h)
		if diff := cmp.Diff(before, dlx.ExportedSnapshot(m)); diff != "" {
			t.Fatalf("uncover(cover(%s)) is not the identity (-before +after):\n%s", name, diff)
		}
	}
}

func TestCoverUncover_InverseLaw_NestedStack(t *testing.T) {
	m := buildKnuth(t)

	// Snapshot each intermediate state, cover a chain of columns, then
	// uncover in exact reverse order, checking every state on the way back.
	chain := []string{"A", "C", "E", "B"}
	snaps := make([]string, 0, len(chain)+1)
	snaps = append(snaps, dlx.ExportedSnapshot(m))
	handles := make([]dlx.Handle, len(chain))
	for i, name := range chain {
		h, err := m.Handle(name)
		require.NoError(t, err)
		handles[i] = h
		dlx.ExportedCover(m, h)
		snaps = append(snaps, dlx.ExportedSnapshot(m))
	}
	for i := len(chain) - 1; i >= 0; i-- {
		dlx.ExportedUncover(m, handles[i])
		if diff := cmp.Diff(snaps[i], dlx.ExportedSnapshot(m)); diff != "" {
			t.Fatalf("state after uncovering %s diverged (-want +got):\n%s", chain[i], diff)
		}
	}
}

func TestCover_RemovesColumnFromHeaderRing(t *testing.T) {
	m := buildKnuth(t)
	rootH := dlx.Root_TestOnly()
	hA, err := m.Handle("A")
	require.NoError(t, err)

	inRing := func() bool {
		for h := rootH; ; {
			_, h, _, _, _ = m.Links_TestOnly(h)
			if h == rootH {
				return false
			}
			if h == hA {
				return true
			}
		}
	}

	require.True(t, inRing())
	dlx.ExportedCover(m, hA)
	assert.False(t, inRing(), "covered column must be skipped by the ring")
	dlx.ExportedUncover(m, hA)
	assert.True(t, inRing())
}

func TestCover_SizeInvariant(t *testing.T) {
	m := buildKnuth(t)

	check := func() {
		t.Helper()
		walked := ringSizes(t, m)
		for name, want := range walked {
			got, err := m.ColumnSize(name)
			require.NoError(t, err)
			assert.Equal(t, want, got, "column %s size vs ring walk", name)
		}
	}

	check()
	hD, err := m.Handle("D")
	require.NoError(t, err)
	dlx.ExportedCover(m, hD)
	check() // sizes track the live rings in the covered state too
	dlx.ExportedUncover(m, hD)
	check()
}

func TestCover_CountsStructuralWork(t *testing.T) {
	m := buildKnuth(t)

	res, err := dlx.Solve(m, dlx.WithMode(dlx.All))
	require.NoError(t, err)
	assert.Positive(t, res.Operations)
}

func TestSelectColumn_MinSizeDeclarationTieBreak(t *testing.T) {
	b := dlx.NewBuilder()
	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, b.AddColumn(name))
	}
	// A has two candidates, B and C one each: the tie between B and C must
	// resolve to B, the earlier declaration.
	require.NoError(t, b.AddRow("1", "A", "B"))
	require.NoError(t, b.AddRow("2", "A", "C"))
	m, err := b.Build()
	require.NoError(t, err)

	sel := dlx.ExportedSelectColumn(m)
	col, err := m.Column(sel)
	require.NoError(t, err)
	assert.Equal(t, "B", col.Name)
}
