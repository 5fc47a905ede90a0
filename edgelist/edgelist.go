package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/core"
)

var (
	// ErrSyntax indicates a line that is not "u v weight".
	ErrSyntax = errors.New("edgelist: malformed line")

	// ErrBadWeight indicates a weight field that is not a number.
	ErrBadWeight = errors.New("edgelist: invalid weight")
)

// commentPrefix starts a comment.
const commentPrefix = "#"

// Read parses an edge list into a new simple graph.
// Complexity: O(E) lines.
func Read(r io.Reader, opts ...core.GraphOption) (*core.Graph, error) {
	g := core.NewGraph(opts...)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, commentPrefix); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("line %d: %w: want 3 fields, got %d", line, ErrSyntax, len(fields))
		}
		w, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w: %q", line, ErrBadWeight, fields[2])
		}
		if _, err := g.AddEdge(fields[0], fields[1], w); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}

	return g, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	g, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Write emits a header with node count, edge count and density, then every edge
// in insertion order. Isolated vertices are not representable and are dropped.
func Write(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	n, m := g.VertexCount(), g.EdgeCount()
	fmt.Fprintf(bw, "%s Nodes: %d\n", commentPrefix, n)
	fmt.Fprintf(bw, "%s Edges: %d\n", commentPrefix, m)
	fmt.Fprintf(bw, "%s Density: %.1f\n", commentPrefix, builder.DensityOf(n, m))
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%s %s %s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return bw.Flush()
}

// WriteFile creates (or truncates) path and writes g to it.
func WriteFile(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	return Write(f, g)
}

// FileName returns the benchmark file name for a graph with m edges and
// density d, e.g. "graph_990_1.0.edgelist".
func FileName(m int, d float64) string {
	return fmt.Sprintf("graph_%d_%.1f.edgelist", m, d)
}
