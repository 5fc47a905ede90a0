// SPDX-License-Identifier: MIT
// Package pq: Queue capability, Handle, sentinel errors, Kind and the New factory.

package pq

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// Sentinel errors returned by every Queue implementation.
var (
	// ErrEmptyQueue indicates ExtractMin or FindMin on a queue without items.
	ErrEmptyQueue = errors.New("pq: queue is empty")

	// ErrKeyIncrease indicates DecreaseKey was asked to raise a key.
	ErrKeyIncrease = errors.New("pq: new key is greater than current key")

	// ErrForeignHandle indicates a nil handle or one issued by another queue.
	ErrForeignHandle = errors.New("pq: handle does not belong to this queue")

	// ErrStaleHandle indicates a handle whose item has already been extracted.
	ErrStaleHandle = errors.New("pq: handle refers to an extracted item")

	// ErrBadArity indicates a d-ary heap with fewer than two children per node.
	ErrBadArity = errors.New("pq: arity must be at least 2")

	// ErrInvalidLink is the panic value (wrapped) used when two heap trees are
	// joined against the rank or key-order invariant.
	ErrInvalidLink = errors.New("pq: invalid tree link")

	// ErrUnknownKind indicates an unrecognised queue kind.
	ErrUnknownKind = errors.New("pq: unknown queue kind")
)

// Handle is an opaque reference to an inserted item. It remains valid until the
// item is extracted, whatever restructuring other operations trigger.
type Handle[K constraints.Ordered, V any] interface {
	// Key returns the item's current key.
	Key() K
	// Value returns the item's payload.
	Value() V

	sealed()
}

// Queue is a min-priority queue with decrease-key.
type Queue[K constraints.Ordered, V any] interface {
	// Insert adds (key, value) and returns its handle.
	Insert(key K, value V) Handle[K, V]
	// ExtractMin removes and returns the item with the minimum key.
	ExtractMin() (K, V, error)
	// FindMin returns the item with the minimum key without removing it.
	FindMin() (K, V, error)
	// DecreaseKey lowers the key of h to key and restores heap order.
	DecreaseKey(h Handle[K, V], key K) error
	// Len returns the number of items in the queue.
	Len() int
}

// Kind selects a Queue implementation.
type Kind int

const (
	// KindDary selects DaryHeap.
	KindDary Kind = iota
	// KindBinomial selects BinomialHeap.
	KindBinomial
	// KindFibonacci selects FibonacciHeap.
	KindFibonacci
)

var kindNames = [...]string{
	KindDary:      "dary",
	KindBinomial:  "binomial",
	KindFibonacci: "fibonacci",
}

// String returns the lower-case name of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// ParseKind maps "dary", "binomial" or "fibonacci" (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// DefaultArity is the branching factor used when none is configured.
const DefaultArity = 2

// Options configures New.
type Options struct {
	// Arity is the branching factor of a DaryHeap; ignored by other kinds.
	Arity int
}

// Option mutates Options.
type Option func(*Options)

// WithArity sets the DaryHeap branching factor.
func WithArity(d int) Option {
	return func(o *Options) { o.Arity = d }
}

// DefaultOptions returns Options with Arity = DefaultArity.
func DefaultOptions() Options {
	return Options{Arity: DefaultArity}
}

// New returns an empty Queue of the requested kind.
//
// Errors:
//   - ErrUnknownKind if kind is not one of KindDary, KindBinomial, KindFibonacci.
//   - ErrBadArity if kind == KindDary and the configured arity is below 2.
func New[K constraints.Ordered, V any](kind Kind, opts ...Option) (Queue[K, V], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	switch kind {
	case KindDary:
		h, err := NewDaryHeap[K, V](cfg.Arity)
		if err != nil {
			return nil, err
		}

		return h, nil
	case KindBinomial:
		return NewBinomialHeap[K, V](), nil
	case KindFibonacci:
		return NewFibonacciHeap[K, V](), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownKind, kind)
	}
}
