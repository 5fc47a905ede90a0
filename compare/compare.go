package compare

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/mstlab/core"
	"github.com/katalvlaran/mstlab/disjointset"
	"github.com/katalvlaran/mstlab/prim_kruskal"
)

var (
	// ErrDisagreement indicates two algorithms returned trees of different size or weight.
	ErrDisagreement = errors.New("compare: algorithms disagree")

	// ErrNotSpanningTree indicates an edge set that is not a spanning tree of the graph.
	ErrNotSpanningTree = errors.New("compare: not a spanning tree")

	// ErrUnknownAlgorithm indicates a name missing from DefaultAlgorithms.
	ErrUnknownAlgorithm = errors.New("compare: unknown algorithm")

	// ErrNoResults indicates an empty report.
	ErrNoResults = errors.New("compare: no results")
)

func unknownAlgorithm(name string) error {
	return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Header is the first line of a TSV report.
const Header = "Test\tFile\tNodes\tEdges\tDensity\tAlgorithm\tTime"

// Result is the outcome of one algorithm on one graph.
type Result struct {
	Name     string
	Duration time.Duration
	Edges    int
	Weight   float64
	Err      error
}

// Report collects the results of one batch over one graph.
type Report struct {
	Nodes   int
	Edges   int
	Density float64
	Results []Result
}

// Run executes every algorithm on g and validates what it returns. Only the
// Run call itself is timed. A failure is kept on the Result and the batch
// continues.
func Run(g *core.Graph, algs []Algorithm) Report {
	rep := Report{
		Nodes:   g.VertexCount(),
		Edges:   g.EdgeCount(),
		Density: g.Density(),
		Results: make([]Result, 0, len(algs)),
	}
	for _, a := range algs {
		rep.Results = append(rep.Results, runOne(g, a))
	}

	return rep
}

func runOne(g *core.Graph, a Algorithm) Result {
	opts := append([]prim_kruskal.Option(nil), a.Options...)
	if a.Setup != nil {
		opts = append(opts, a.Setup(g)...)
	}

	start := time.Now()
	edges, total, err := a.Run(g, opts...)
	res := Result{Name: a.Name, Duration: time.Since(start)}
	if err != nil {
		res.Err = err
		return res
	}
	res.Edges, res.Weight = len(edges), total
	if err := Validate(g, edges); err != nil {
		res.Err = fmt.Errorf("%s: %w", a.Name, err)
	}

	return res
}

// Validate checks that edges form a spanning tree of g: exactly |V|-1 edges,
// no cycle, every vertex covered, and every edge present in g with the
// weight it reports. Edges carrying an ID are checked against that edge;
// the others against the lightest edge between their endpoints.
//
// Complexity: O(V + E·α(V)).
func Validate(g *core.Graph, edges []core.Edge) error {
	vertices := g.Vertices()
	if want := max(len(vertices)-1, 0); len(edges) != want {
		return fmt.Errorf("%w: %d edges for %d vertices", ErrNotSpanningTree, len(edges), len(vertices))
	}

	ds := disjointset.New(vertices)
	covered := mapset.NewThreadUnsafeSet[string]()
	for _, e := range edges {
		if err := checkEdge(g, e); err != nil {
			return err
		}
		a, err := ds.Find(e.From)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNotSpanningTree, err)
		}
		b, err := ds.Find(e.To)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNotSpanningTree, err)
		}
		if a == b {
			return fmt.Errorf("%w: edge %s-%s closes a cycle", ErrNotSpanningTree, e.From, e.To)
		}
		ds.Merge(a, b)
		covered.Add(e.From)
		covered.Add(e.To)
	}
	if len(vertices) > 1 && covered.Cardinality() != len(vertices) {
		return fmt.Errorf("%w: %d of %d vertices covered", ErrNotSpanningTree, covered.Cardinality(), len(vertices))
	}

	return nil
}

func checkEdge(g *core.Graph, e core.Edge) error {
	if e.From == e.To {
		return fmt.Errorf("%w: loop at %s", ErrNotSpanningTree, e.From)
	}
	if e.ID != "" {
		ge, err := g.GetEdge(e.ID)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrNotSpanningTree, err)
		}
		if ge.Weight != e.Weight {
			return fmt.Errorf("%w: edge %s weight %g, graph has %g", ErrNotSpanningTree, e.ID, e.Weight, ge.Weight)
		}
		return nil
	}
	w, err := g.Weight(e.From, e.To)
	if err != nil {
		return fmt.Errorf("%w: %s-%s: %v", ErrNotSpanningTree, e.From, e.To, err)
	}
	if w != e.Weight {
		return fmt.Errorf("%w: edge %s-%s weight %g, graph has %g", ErrNotSpanningTree, e.From, e.To, e.Weight, w)
	}

	return nil
}

// Agree returns the first failed result, or ErrDisagreement when two results
// differ in edge count or in weight by more than tolerance. The first result
// is the reference.
func (r Report) Agree(tolerance float64) error {
	if len(r.Results) == 0 {
		return ErrNoResults
	}
	for _, res := range r.Results {
		if res.Err != nil {
			return res.Err
		}
	}
	ref := r.Results[0]
	for _, res := range r.Results[1:] {
		if res.Edges != ref.Edges {
			return fmt.Errorf("%w: %s |mst|=%d, %s |mst|=%d", ErrDisagreement, ref.Name, ref.Edges, res.Name, res.Edges)
		}
		if math.Abs(res.Weight-ref.Weight) > tolerance {
			return fmt.Errorf("%w: %s wmst=%g, %s wmst=%g", ErrDisagreement, ref.Name, ref.Weight, res.Name, res.Weight)
		}
	}

	return nil
}

// WriteHeader writes the TSV header line.
func WriteHeader(w io.Writer) error {
	_, err := io.WriteString(w, Header+"\n")
	return err
}

// WriteTSV writes one row per result, tagged with the repetition number and
// the file name, followed by a blank separator line. Time is in seconds.
func (r Report) WriteTSV(w io.Writer, rep int, file string) error {
	for _, res := range r.Results {
		_, err := fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%.1f\t%s\t%s\n",
			rep, file, r.Nodes, r.Edges, r.Density, res.Name,
			strconv.FormatFloat(res.Duration.Seconds(), 'f', 9, 64))
		if err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")

	return err
}
