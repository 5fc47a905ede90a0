// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = DefaultIDFn        ("0","1","2",...)
//   • rng      = nil                (pure/deterministic unless seeded)
//   • weightFn = DefaultWeightFn    (constant DefaultEdgeWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ids computes the vertex IDs for indices 0..n-1 once.
func (c builderConfig) ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = c.idFn(i)
	}

	return out
}
