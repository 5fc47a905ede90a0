// SPDX-License-Identifier: MIT
// Package: mstlab/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Constructors attach context with %w: "<Method>: <detail>: <sentinel>".
//   • Validation panics are confined to option constructors (WithX...).

package builder

import "errors"

// ErrTooFewVertices indicates that a vertex count is smaller than the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: too few vertices")

// ErrTooManyEdges indicates an edge count above n(n-1)/2, the size of K_n.
var ErrTooManyEdges = errors.New("builder: too many edges for a simple graph")

// ErrTooFewEdges indicates an edge count below n-1, which cannot connect n vertices.
var ErrTooFewEdges = errors.New("builder: too few edges to connect the graph")

// ErrBadDensity indicates a density outside the half-open interval (0, 1].
var ErrBadDensity = errors.New("builder: density out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a failed graph mutation.
var ErrConstructFailed = errors.New("builder: construction failed")
