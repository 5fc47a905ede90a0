// SPDX-License-Identifier: MIT
// Package matrix: sentinel errors and construction options.

package matrix

import (
	"errors"
	"math"
)

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrEmptyGraph indicates a graph without vertices; a 0×0 dense matrix cannot be allocated.
	ErrEmptyGraph = errors.New("matrix: graph has no vertices")

	// ErrUnknownVertex indicates that a referenced vertex ID is not present in the index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrBadSentinel indicates a "no edge" sentinel that does not exceed every edge weight.
	ErrBadSentinel = errors.New("matrix: unreachable sentinel must exceed every edge weight")
)

// DefaultUnreachable marks absent vertex pairs.
var DefaultUnreachable = math.Inf(1)

// Options configures adjacency construction.
type Options struct {
	// Unreachable is stored for every vertex pair without an edge.
	Unreachable float64
}

// Option mutates Options.
type Option func(*Options)

// WithUnreachable overrides the "no edge" sentinel.
// Panics if v is NaN, mirroring the panicking option constructors elsewhere.
func WithUnreachable(v float64) Option {
	if math.IsNaN(v) {
		panic(ErrBadSentinel.Error())
	}

	return func(o *Options) { o.Unreachable = v }
}

// DefaultOptions returns Options with Unreachable = +Inf.
func DefaultOptions() Options {
	return Options{Unreachable: DefaultUnreachable}
}
