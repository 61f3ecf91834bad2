package dlx_test

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"

	"github.com/XhovaniM8/exactcover/dlx"
)

// enumerationDump is the canonical serialization of a full enumeration,
// compared byte-for-byte against checked-in golden files. Any change to
// solution ordering is a behavior change and must show up here.
type enumerationDump struct {
	Solutions     [][]string `json:"solutions"`
	SolutionCount int        `json:"solution_count"`
	Exhausted     bool       `json:"exhausted"`
}

func dumpEnumeration(t *testing.T, m *dlx.Matrix) []byte {
	t.Helper()
	res, err := dlx.Solve(m, dlx.WithMode(dlx.All))
	require.NoError(t, err)

	d := enumerationDump{
		Solutions:     make([][]string, 0, len(res.Solutions)),
		SolutionCount: res.SolutionCount,
		Exhausted:     res.Exhausted,
	}
	for _, sol := range res.Solutions {
		row := make([]string, len(sol))
		for i, label := range sol {
			row[i] = string(label)
		}
		d.Solutions = append(d.Solutions, row)
	}

	data, err := json.MarshalIndent(d, "", "  ")
	require.NoError(t, err)

	return data
}

// Regenerate with: go test ./dlx -run TestGolden -update
func TestGolden_KnuthPaperMatrix(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "knuth_paper_matrix", dumpEnumeration(t, buildKnuth(t)))
}

func TestGolden_SimpleMatrix(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "simple_matrix", dumpEnumeration(t, buildSimple(t)))
}
