package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/XhovaniM8/exactcover/dlx"
)

const simpleProblem = `columns:
  - name: A
  - name: B
rows:
  - label: "1"
    columns: [A, B]
  - label: "2"
    columns: [A]
  - label: "3"
    columns: [B]
`

func writeProblem(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadProblem(t *testing.T) {
	m, err := loadProblem(writeProblem(t, simpleProblem))
	require.NoError(t, err)

	assert.Equal(t, 2, m.ColumnCount())
	assert.Equal(t, 3, m.RowCount())
	assert.Equal(t, 4, m.NodeCount())
}

func TestLoadProblem_SecondaryColumn(t *testing.T) {
	m, err := loadProblem(writeProblem(t, `columns:
  - name: A
  - name: X
    secondary: true
rows:
  - label: r
    columns: [A, X]
`))
	require.NoError(t, err)

	assert.Equal(t, 2, m.ColumnCount())
	assert.Equal(t, 1, m.PrimaryColumnCount())
}

func TestLoadProblem_BadRow(t *testing.T) {
	_, err := loadProblem(writeProblem(t, `columns:
  - name: A
rows:
  - label: r
    columns: [A, MISSING]
`))
	assert.ErrorIs(t, err, dlx.ErrUnknownColumn)
}

func TestLoadProblem_MissingFile(t *testing.T) {
	_, err := loadProblem(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestRunSolve_All(t *testing.T) {
	logger = zap.NewNop()
	solveAll = true
	t.Cleanup(func() { solveAll = false })

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runSolve(cmd, []string{writeProblem(t, simpleProblem)})
	require.NoError(t, err)
	assert.Equal(t, "1\n2 3\n", buf.String())
}

func TestRunSolve_NoSolution(t *testing.T) {
	logger = zap.NewNop()
	path := writeProblem(t, `columns:
  - name: A
  - name: B
rows:
  - label: r
    columns: [A]
`)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runSolve(cmd, []string{path}))
	assert.Equal(t, "no solution\n", buf.String())
}

func TestFormatSolution(t *testing.T) {
	assert.Equal(t, "r3 r0 r4", formatSolution(dlx.Solution{"r3", "r0", "r4"}))
	assert.Equal(t, "", formatSolution(nil))
}
