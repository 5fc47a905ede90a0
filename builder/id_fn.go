// Package builder provides internal helper functions and types
// for configuring ID schemes in graph constructors.
package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a vertex identifier from its zero‐based index.
// It must be a pure, deterministic function: given the same idx, it always returns the same string.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Never panics.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// OneBasedIDFn returns the decimal string of idx+1, e.g. 0→"1". Edge list
// files produced by the benchmark graph generator number vertices from 1.
func OneBasedIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "v0", "v1", ...
// Panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithOneBasedIDs sets the ID scheme to OneBasedIDFn.
func WithOneBasedIDs() BuilderOption {
	return WithIDScheme(OneBasedIDFn)
}
