// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// impl_random_connected.go - implementation of RandomConnected(n, m) constructor.
//
// Model:
//   - A random recursive spanning tree over a random permutation of the
//     vertices guarantees connectivity with n-1 edges.
//   - The remaining m-(n-1) edges are distinct non-tree pairs drawn uniformly.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - n-1 ≤ m (else ErrTooFewEdges) and m ≤ n(n-1)/2 (else ErrTooManyEdges).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Adds vertices via cfg.idFn in ascending index order (0..n-1).
//
// Complexity:
//   - Sparse targets (extra ≤ half of the free pairs): expected O(n + m) draws.
//   - Dense targets: O(n²) to enumerate and shuffle the free pairs.
//
// Determinism:
//   - Fixed draw order for a fixed seed; identical graphs per (n, m, seed, options).

package builder

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/mstlab/core"
)

const (
	methodRandomConnected      = "RandomConnected"
	minRandomConnectedVertices = 1
)

// pair is an unordered vertex index pair stored as (low, high).
type pair [2]int

func newPair(i, j int) pair {
	if i > j {
		i, j = j, i
	}

	return pair{i, j}
}

// MaxEdges returns n(n-1)/2, the edge count of K_n.
func MaxEdges(n int) int {
	if n < 2 {
		return 0
	}

	return n * (n - 1) / 2
}

// RandomConnected returns a Constructor that builds a connected simple graph
// with exactly n vertices and m edges.
func RandomConnected(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters (size, edge budget, rng).
		if n < minRandomConnectedVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomConnected, n, minRandomConnectedVertices, ErrTooFewVertices)
		}
		if m < n-1 {
			return fmt.Errorf("%s: m=%d < n-1=%d: %w", methodRandomConnected, m, n-1, ErrTooFewEdges)
		}
		if max := MaxEdges(n); m > max {
			return fmt.Errorf("%s: m=%d > n(n-1)/2=%d: %w", methodRandomConnected, m, max, ErrTooManyEdges)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, ErrNeedRandSource)
		}

		// 2) Vertices, then the spanning tree.
		ids := cfg.ids(n)
		if err := addVertices(methodRandomConnected, g, ids); err != nil {
			return err
		}
		used := mapset.NewThreadUnsafeSet[pair]()
		perm := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			u, v := perm[cfg.rng.Intn(i)], perm[i]
			used.Add(newPair(u, v))
			if err := addEdge(methodRandomConnected, g, cfg, ids[u], ids[v]); err != nil {
				return err
			}
		}

		// 3) Extra edges.
		extra := m - (n - 1)
		free := MaxEdges(n) - (n - 1)
		if extra == 0 {
			return nil
		}
		if extra*2 > free {
			return addDense(g, cfg, ids, used, extra)
		}
		for extra > 0 {
			i, j := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if i == j || !used.Add(newPair(i, j)) {
				continue // loop or already present
			}
			if err := addEdge(methodRandomConnected, g, cfg, ids[i], ids[j]); err != nil {
				return err
			}
			extra--
		}

		return nil
	}
}

// addDense enumerates every free pair, shuffles them and keeps the first extra.
func addDense(g *core.Graph, cfg builderConfig, ids []string, used mapset.Set[pair], extra int) error {
	n := len(ids)
	candidates := make([]pair, 0, MaxEdges(n)-used.Cardinality())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if p := (pair{i, j}); !used.Contains(p) {
				candidates = append(candidates, p)
			}
		}
	}
	cfg.rng.Shuffle(len(candidates), func(a, b int) {
		candidates[a], candidates[b] = candidates[b], candidates[a]
	})
	for _, p := range candidates[:extra] {
		if err := addEdge(methodRandomConnected, g, cfg, ids[p[0]], ids[p[1]]); err != nil {
			return err
		}
	}

	return nil
}
