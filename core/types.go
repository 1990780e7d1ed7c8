// Package core: central types for the weak-edge graph container.
//
// This file declares NodeID, Resolution, Graph, the Option set, sentinel
// errors, and the New constructor. Method implementations live in
// methods.go (Graph) and node.go (Node).
package core

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced an id that this
	// graph never issued or whose node has been removed.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNodePoisoned indicates a previous lock holder panicked while
	// mutating the node; its payload can no longer be trusted.
	ErrNodePoisoned = errors.New("core: node lock poisoned")
)

// NodeID identifies a node within one Graph instance for its entire
// lifetime, and doubles as the weak reference stored in edge sets.
//
// It is an opaque, comparable value: an arena slot index plus the slot's
// generation at issue time, tagged with the issuing graph's instance id.
// The tag makes ids from one graph unresolvable in any other, and the
// generation makes an id unresolvable once its node is removed, even if
// the slot is later reoccupied.
type NodeID struct {
	graph uuid.UUID
	slot  uint32
	gen   uint32
}

// IsZero reports whether id is the zero NodeID, which no graph ever
// issues and which never resolves.
func (id NodeID) IsZero() bool { return id == NodeID{} }

// String renders the id's arena coordinate for diagnostics.
// The graph tag is elided; ids are only meaningful to their own graph.
func (id NodeID) String() string {
	return fmt.Sprintf("n%d@%d", id.slot, id.gen)
}

// Resolution is the outcome of upgrading one stored weak reference.
// Node is nil when the target no longer exists; that is an expected
// steady state for a mutating graph, not an error.
type Resolution[T any] struct {
	// Target is the weak reference that was resolved.
	Target NodeID

	// Node is the live strong handle, or nil if the target is gone.
	Node *Node[T]
}

// Live reports whether the resolution produced a strong handle.
func (r Resolution[T]) Live() bool { return r.Node != nil }

// Option configures a Graph at construction time.
type Option func(*config)

type config struct {
	dedup bool
}

// WithDedupEdges makes edge insertion idempotent per (source, target):
// adding an edge that is already present becomes a no-op. By default
// duplicate parallel edges are permitted and caller-managed.
func WithDedupEdges() Option {
	return func(c *config) { c.dedup = true }
}

// slot is one arena cell. gen is guarded by the Graph's structural lock
// and counts occupancies; node is the cell's current occupant, published
// atomically so resolution never takes the structural lock.
type slot[T any] struct {
	gen  uint32
	node atomic.Pointer[Node[T]]
}

// Graph is the exclusive long-lived strong owner of its node population.
//
// Nodes live in a slot arena. The structural RWMutex guards the slot
// table, free list, and count; it is held only across index mutation and
// never while a node's own lock is held. view is an atomically swapped
// snapshot of the slot table used by resolution.
type Graph[T any] struct {
	id uuid.UUID // instance tag baked into every issued NodeID

	mu    sync.RWMutex // structural lock: slots, free, count
	slots []*slot[T]
	free  []uint32 // recycled slot indices
	count int

	view atomic.Pointer[[]*slot[T]] // lock-free slot-table snapshot

	dedup bool
}

// New creates an empty Graph for payloads of type T.
// By default duplicate parallel edges are permitted; see WithDedupEdges.
// Complexity: O(len(opts)).
func New[T any](opts ...Option) *Graph[T] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	g := &Graph[T]{
		id:    uuid.New(),
		dedup: cfg.dedup,
	}
	empty := make([]*slot[T], 0)
	g.view.Store(&empty)

	return g
}
