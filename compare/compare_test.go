package compare_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/compare"
	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/prim_kruskal"
)

func randomGraph(t *testing.T, m int, d float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(1, 10), builder.WithOneBasedIDs()},
		builder.ForDensity(m, d),
	)
	require.NoError(t, err)

	return g
}

func TestDefaultAlgorithms(t *testing.T) {
	algs := compare.DefaultAlgorithms()
	names := make([]string, 0, len(algs))
	for _, a := range algs {
		require.NotNil(t, a.Run, a.Name)
		assert.NotEmpty(t, a.Label, a.Name)
		names = append(names, a.Name)
	}
	assert.Equal(t, []string{
		"kruskal_sorted1", "kruskal_sorted2", "prim",
		"prim_2h", "prim_2h_nx", "prim_3h", "prim_3h_nx",
		"prim_binomial", "prim_binomial_nx", "prim_fibonacci", "prim_fibonacci_nx",
		"prim_lazy",
	}, names)
}

func TestSelect(t *testing.T) {
	all, err := compare.Select()
	require.NoError(t, err)
	assert.Len(t, all, len(compare.DefaultAlgorithms()))

	some, err := compare.Select("prim_lazy", "prim")
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "prim_lazy", some[0].Name)
	assert.Equal(t, "prim", some[1].Name)

	_, err = compare.Select("prim", "boruvka")
	assert.ErrorIs(t, err, compare.ErrUnknownAlgorithm)
}

func TestRunAgree(t *testing.T) {
	for _, d := range []float64{1.0, 0.6, 0.3} {
		g := randomGraph(t, 300, d, 11)
		rep := compare.Run(g, compare.DefaultAlgorithms())

		assert.Equal(t, g.VertexCount(), rep.Nodes)
		assert.Equal(t, 300, rep.Edges)
		require.Len(t, rep.Results, 12)
		for _, res := range rep.Results {
			require.NoError(t, res.Err, res.Name)
			assert.Equal(t, g.VertexCount()-1, res.Edges, res.Name)
		}
		assert.NoError(t, rep.Agree(1e-9))
	}
}

func TestRunRecordsErrors(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("c", "d", 1)

	rep := compare.Run(g, compare.DefaultAlgorithms())
	require.Len(t, rep.Results, 12)
	for _, res := range rep.Results {
		assert.ErrorIs(t, res.Err, prim_kruskal.ErrDisconnected, res.Name)
	}
	assert.ErrorIs(t, rep.Agree(0), prim_kruskal.ErrDisconnected)
}

func TestRunCatchesInvalidTree(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 2)
	bogus := compare.Algorithm{
		Name: "bogus",
		Run: func(*core.Graph, ...prim_kruskal.Option) ([]core.Edge, float64, error) {
			return []core.Edge{{From: "a", To: "b", Weight: 1}, {From: "b", To: "a", Weight: 1}}, 2, nil
		},
	}

	rep := compare.Run(g, []compare.Algorithm{bogus})
	require.Len(t, rep.Results, 1)
	assert.ErrorIs(t, rep.Results[0].Err, compare.ErrNotSpanningTree)
	assert.Contains(t, rep.Results[0].Err.Error(), "bogus")
}

func TestSetupRunsBeforeRun(t *testing.T) {
	g := randomGraph(t, 50, 0.5, 3)
	var setupDone bool
	alg := compare.Algorithm{
		Name: "probe",
		Setup: func(*core.Graph) []prim_kruskal.Option {
			setupDone = true
			return nil
		},
		Run: func(g *core.Graph, opts ...prim_kruskal.Option) ([]core.Edge, float64, error) {
			if !setupDone {
				return nil, 0, errors.New("setup skipped")
			}
			return prim_kruskal.Kruskal(g, opts...)
		},
	}
	rep := compare.Run(g, []compare.Algorithm{alg})
	assert.NoError(t, rep.Agree(0))
}

func TestValidate(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	idAB, _ := g.AddEdge("a", "b", 3)
	_, _ = g.AddEdge("a", "b", 1)
	_, _ = g.AddEdge("b", "c", 2)
	_, _ = g.AddEdge("a", "c", 5)
	_ = g.AddVertex("d")

	cases := []struct {
		name  string
		edges []core.Edge
	}{
		{"too few", []core.Edge{{From: "a", To: "b", Weight: 1}}},
		{"cycle", []core.Edge{{From: "a", To: "b", Weight: 1}, {From: "b", To: "c", Weight: 2}, {From: "c", To: "a", Weight: 5}}},
		{"missing edge", []core.Edge{{From: "a", To: "b", Weight: 1}, {From: "b", To: "c", Weight: 2}, {From: "c", To: "d", Weight: 1}}},
		{"wrong weight", []core.Edge{{From: "a", To: "b", Weight: 3}, {From: "b", To: "c", Weight: 2}, {From: "a", To: "c", Weight: 5}}},
		{"wrong id weight", []core.Edge{{ID: idAB, From: "a", To: "b", Weight: 1}, {From: "b", To: "c", Weight: 2}, {From: "a", To: "c", Weight: 5}}},
		{"loop", []core.Edge{{From: "a", To: "a", Weight: 0}, {From: "b", To: "c", Weight: 2}, {From: "a", To: "c", Weight: 5}}},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, compare.Validate(g, tc.edges), compare.ErrNotSpanningTree)
		})
	}

	// Without d the graph has the spanning tree a-b(1), b-c(2).
	h := core.NewGraph(core.WithMultiEdges())
	id, _ := h.AddEdge("a", "b", 3)
	_, _ = h.AddEdge("a", "b", 1)
	_, _ = h.AddEdge("b", "c", 2)
	assert.NoError(t, compare.Validate(h, []core.Edge{{From: "a", To: "b", Weight: 1}, {From: "b", To: "c", Weight: 2}}))
	assert.NoError(t, compare.Validate(h, []core.Edge{{ID: id, From: "a", To: "b", Weight: 3}, {From: "c", To: "b", Weight: 2}}))

	single := core.NewGraph()
	_ = single.AddVertex("x")
	assert.NoError(t, compare.Validate(single, nil))
}

func TestAgree(t *testing.T) {
	assert.ErrorIs(t, compare.Report{}.Agree(0), compare.ErrNoResults)

	rep := compare.Report{Results: []compare.Result{
		{Name: "a", Edges: 4, Weight: 10},
		{Name: "b", Edges: 4, Weight: 10.0000001},
	}}
	assert.NoError(t, rep.Agree(1e-6))
	err := rep.Agree(0)
	assert.ErrorIs(t, err, compare.ErrDisagreement)
	assert.Contains(t, err.Error(), "a wmst=10, b wmst=")

	rep.Results[1].Edges = 3
	err = rep.Agree(1)
	assert.ErrorIs(t, err, compare.ErrDisagreement)
	assert.Contains(t, err.Error(), "a |mst|=4, b |mst|=3")
}

func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, compare.WriteHeader(&buf))
	rep := compare.Report{Nodes: 45, Edges: 990, Density: 1, Results: []compare.Result{
		{Name: "prim", Duration: 1500 * time.Microsecond},
		{Name: "prim_lazy", Duration: 2 * time.Second},
	}}
	require.NoError(t, rep.WriteTSV(&buf, 0, "graph_990_1.0.edgelist"))

	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, compare.Header, lines[0])
	assert.Equal(t, "0\tgraph_990_1.0.edgelist\t45\t990\t1.0\tprim\t0.001500000", lines[1])
	assert.Equal(t, "0\tgraph_990_1.0.edgelist\t45\t990\t1.0\tprim_lazy\t2.000000000", lines[2])
	assert.Equal(t, "", lines[3])
	assert.Equal(t, "", lines[4])
}
