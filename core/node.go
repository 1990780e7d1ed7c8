// Package core: Node, guarded access, and weak-reference resolution.
//
// A Node is one unit of shared mutable state: a payload of the caller's
// type plus the node's outgoing edge set. One mutex guards both, so a
// payload/edge-set snapshot taken under the lock is always consistent.
// The lock poisons on abnormal release: if a mutator panics inside Do,
// later acquisition attempts return ErrNodePoisoned.
package core

import "sync"

// Node holds one payload and its outgoing weak edge references.
// Nodes are created by Graph.AddNode and reached through Graph.Get;
// any caller-held *Node keeps the object alive after removal, but the
// graph stops resolving its id the moment removal commits.
type Node[T any] struct {
	id NodeID
	g  *Graph[T] // owning graph; needed to resolve this node's edges

	mu       sync.Mutex // guards payload, edges, poisoned
	poisoned bool
	payload  T
	edges    []NodeID // weak references; stale entries purged lazily
}

// ID returns the node's stable identity within its graph.
func (n *Node[T]) ID() NodeID { return n.id }

// NodeState is the guarded view of a node's payload and edge set.
// It is only valid for the duration of the Do callback that received it;
// retaining it (or the pointer from Payload) past the callback bypasses
// the lock.
type NodeState[T any] struct {
	n *Node[T]
}

// Do runs fn with exclusive access to the node's payload and edge set.
// The lock is released on every exit path. If fn panics, the panic
// propagates and the node is marked poisoned: all later lock attempts
// (Do, Value, SetValue, Edges, ResolveEdges, and Graph operations that
// lock this node) return ErrNodePoisoned.
//
// Do blocks while another holder has this node's lock; locks on other
// nodes are unaffected.
func (n *Node[T]) Do(fn func(s *NodeState[T])) error {
	n.mu.Lock()
	if n.poisoned {
		n.mu.Unlock()
		return ErrNodePoisoned
	}
	completed := false
	defer func() {
		// Reaching the unlock without the completion flag means fn
		// panicked mid-mutation; the payload can no longer be trusted.
		if !completed {
			n.poisoned = true
		}
		n.mu.Unlock()
	}()
	fn(&NodeState[T]{n: n})
	completed = true

	return nil
}

// Value returns a copy of the node's payload.
// Returns ErrNodePoisoned if a previous holder panicked mid-mutation.
func (n *Node[T]) Value() (T, error) {
	var v T
	err := n.Do(func(s *NodeState[T]) { v = s.n.payload })

	return v, err
}

// SetValue replaces the node's payload.
func (n *Node[T]) SetValue(v T) error {
	return n.Do(func(s *NodeState[T]) { s.n.payload = v })
}

// Edges returns a copy of the stored edge set, stale entries included.
func (n *Node[T]) Edges() ([]NodeID, error) {
	var out []NodeID
	err := n.Do(func(s *NodeState[T]) { out = s.Edges() })

	return out, err
}

// Degree returns the number of stored outgoing edges. Stale entries
// count until a resolution pass purges them.
func (n *Node[T]) Degree() (int, error) {
	var d int
	err := n.Do(func(s *NodeState[T]) { d = len(s.n.edges) })

	return d, err
}

// ResolveEdges attempts to upgrade every stored weak reference to a
// strong handle. The result is freshly computed on each call: one
// Resolution per stored edge, in storage order, with Node nil for
// targets that no longer exist. Stale entries are purged from the edge
// set as a side effect, so an absent target is reported at most once.
//
// Resolution reads the arena through an atomic snapshot: it holds only
// this node's lock and touches no target's lock, so it is safe to call
// concurrently with mutation of the targets.
func (n *Node[T]) ResolveEdges() ([]Resolution[T], error) {
	var out []Resolution[T]
	err := n.Do(func(s *NodeState[T]) {
		edges := s.n.edges
		out = make([]Resolution[T], 0, len(edges))
		kept := edges[:0]
		for _, id := range edges {
			target := n.g.resolve(id)
			out = append(out, Resolution[T]{Target: id, Node: target})
			if target != nil {
				kept = append(kept, id)
			}
		}
		s.n.edges = kept
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// Value returns the payload under the held lock.
func (s *NodeState[T]) Value() T { return s.n.payload }

// SetValue replaces the payload under the held lock.
func (s *NodeState[T]) SetValue(v T) { s.n.payload = v }

// Payload exposes the payload for in-place mutation. The pointer is only
// valid until the enclosing Do callback returns.
func (s *NodeState[T]) Payload() *T { return &s.n.payload }

// AddEdge inserts a weak reference to the target into the edge set.
// It always succeeds; the target is not checked for liveness here, and a
// reference that never resolves is harmless. With WithDedupEdges the
// insertion is a no-op when an identical reference is already stored.
func (s *NodeState[T]) AddEdge(to NodeID) {
	if s.n.g.dedup {
		for _, e := range s.n.edges {
			if e == to {
				return
			}
		}
	}
	s.n.edges = append(s.n.edges, to)
}

// RemoveEdge removes every stored reference matching the target identity
// and returns how many were removed. Zero matches is a no-op, not an
// error; stale references match like live ones.
func (s *NodeState[T]) RemoveEdge(to NodeID) int {
	kept := s.n.edges[:0]
	removed := 0
	for _, e := range s.n.edges {
		if e == to {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	s.n.edges = kept

	return removed
}

// Edges returns a copy of the stored edge set in storage order.
func (s *NodeState[T]) Edges() []NodeID {
	out := make([]NodeID, len(s.n.edges))
	copy(out, s.n.edges)

	return out
}

// Degree returns the number of stored outgoing edges.
func (s *NodeState[T]) Degree() int { return len(s.n.edges) }
