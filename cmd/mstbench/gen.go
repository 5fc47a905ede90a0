package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/op/go-logging"

	"github.com/katalvlaran/mstlab/builder"
	"github.com/katalvlaran/mstlab/edgelist"
)

type genCmd struct {
	Edges     []int     `arg:"" help:"Edge counts, one graph per count and density."`
	Dir       string    `help:"Output directory." default:"." type:"path" env:"MSTBENCH_DIR"`
	Seed      int64     `help:"Random seed." default:"1" env:"MSTBENCH_SEED"`
	Densities []float64 `help:"Densities to generate." default:"1.0,0.9,0.8,0.7,0.6,0.5,0.4,0.3"`
	MinWeight int       `help:"Smallest edge weight." default:"1"`
	MaxWeight int       `help:"Largest edge weight." default:"10"`
}

// Run writes FileName(m, d) for every requested m and d into Dir.
func (c *genCmd) Run(log *logging.Logger) error {
	if c.MinWeight < 0 || c.MaxWeight < c.MinWeight {
		return fmt.Errorf("gen: bad weight range [%d, %d]", c.MinWeight, c.MaxWeight)
	}
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(c.Seed))
	opts := []builder.BuilderOption{
		builder.WithRand(rng),
		builder.WithIntWeight(c.MinWeight, c.MaxWeight),
		builder.WithOneBasedIDs(),
	}
	for _, m := range c.Edges {
		for _, d := range c.Densities {
			g, err := builder.BuildGraph(opts, builder.ForDensity(m, d))
			if err != nil {
				return fmt.Errorf("gen: %w", err)
			}
			path := filepath.Join(c.Dir, edgelist.FileName(m, d))
			if err := edgelist.WriteFile(path, g); err != nil {
				return fmt.Errorf("gen: %w", err)
			}
			log.Infof("wrote %s (nodes=%d edges=%d)", path, g.VertexCount(), g.EdgeCount())
		}
	}

	return nil
}
