// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// impl_density.go - density helpers and the ForDensity(m, d) constructor.
//
// The benchmark keeps the edge count m fixed and varies density, so the vertex
// count follows from m and d: n = ceil((1 + sqrt(1 + 8m/d)) / 2), the smallest n
// with n(n-1)/2 · d ≥ m.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstlab/core"
)

const methodForDensity = "ForDensity"

// DensitySteps returns the densities of a benchmark sequence: 1.0 down to 0.3 in 0.1 steps.
func DensitySteps() []float64 {
	out := make([]float64, 0, 8)
	for k := 10; k > 2; k-- {
		out = append(out, float64(k)/10)
	}

	return out
}

// NodesFor returns the vertex count of a graph with m edges and density d.
// Returns 0 if d is outside (0, 1] or m < 0.
func NodesFor(m int, d float64) int {
	if d <= 0 || d > 1 || m < 0 {
		return 0
	}
	disc := 1 + 8*float64(m)/d

	return int(math.Ceil((1 + math.Sqrt(disc)) / 2))
}

// DensityOf returns 2m / (n(n-1)) rounded up to one decimal, or 0 for n < 2.
func DensityOf(n, m int) float64 {
	if n < 2 {
		return 0
	}
	// 20m / (n(n-1)) is exact for integer inputs before the ceiling.
	q := float64(20*m) / float64(n*(n-1))

	return math.Ceil(q) / 10
}

// ForDensity returns a Constructor for a connected graph with m edges whose
// vertex count is NodesFor(m, d).
//
// Errors: ErrBadDensity for d outside (0, 1], plus every RandomConnected error.
func ForDensity(m int, d float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if math.IsNaN(d) || d <= 0 || d > 1 {
			return fmt.Errorf("%s: d=%g: %w", methodForDensity, d, ErrBadDensity)
		}
		n := NodesFor(m, d)
		if err := RandomConnected(n, m)(g, cfg); err != nil {
			return fmt.Errorf("%s(m=%d, d=%.1f): %w", methodForDensity, m, d, err)
		}

		return nil
	}
}
