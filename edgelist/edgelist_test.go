package edgelist_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/edgelist"
)

func TestRead(t *testing.T) {
	src := `# Nodes: 4
# Edges: 3

1 2 7
2	3   0.5   # trailing comment
3 4 1e2
`
	g, err := edgelist.Read(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3", "4"}, g.Vertices())
	assert.Equal(t, 3, g.EdgeCount())
	w, err := g.Weight("3", "2")
	require.NoError(t, err)
	assert.Equal(t, 0.5, w)
	w, err = g.Weight("4", "3")
	require.NoError(t, err)
	assert.Equal(t, 100.0, w)
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
		line string
	}{
		{"two fields", "1 2 3\n1 2\n", edgelist.ErrSyntax, "line 2"},
		{"four fields", "# c\n1 2 3 4\n", edgelist.ErrSyntax, "line 2"},
		{"weight", "1 2 x\n", edgelist.ErrBadWeight, "line 1"},
		{"negative", "1 2 -1\n", core.ErrNegativeWeight, "line 1"},
		{"infinite", "1 2 Inf\n", core.ErrBadWeight, "line 1"},
		{"loop", "\n\n1 1 3\n", core.ErrLoopNotAllowed, "line 3"},
		{"duplicate", "1 2 3\n2 1 4\n", core.ErrMultiEdgeNotAllowed, "line 2"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := edgelist.Read(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
			assert.Contains(t, err.Error(), tc.line)
		})
	}
}

func TestRead_MultiEdgesOption(t *testing.T) {
	g, err := edgelist.Read(strings.NewReader("a b 3\nb a 1\n"), core.WithMultiEdges())
	require.NoError(t, err)
	assert.Equal(t, 2, g.EdgeCount())
}

func TestWrite(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("1", "2", 4)
	_, _ = g.AddEdge("2", "3", 2.5)

	var buf bytes.Buffer
	require.NoError(t, edgelist.Write(&buf, g))
	assert.Equal(t, "# Nodes: 3\n# Edges: 2\n# Density: 0.7\n1 2 4\n2 3 2.5\n", buf.String())
}

func TestFileRoundTrip(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(4), builder.WithIntWeight(1, 10), builder.WithOneBasedIDs()},
		builder.ForDensity(200, 0.5),
	)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), edgelist.FileName(200, 0.5))
	require.NoError(t, edgelist.WriteFile(path, g))
	back, err := edgelist.ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, g.Vertices(), back.Vertices())
	want, got := g.Edges(), back.Edges()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].From, got[i].From)
		assert.Equal(t, want[i].To, got[i].To)
		assert.Equal(t, want[i].Weight, got[i].Weight)
	}

	_, err = edgelist.ReadFile(filepath.Join(t.TempDir(), "missing.edgelist"))
	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "graph_990_1.0.edgelist", edgelist.FileName(990, 1))
	assert.Equal(t, "graph_1000_0.3.edgelist", edgelist.FileName(1000, 0.3))
}
