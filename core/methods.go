// Package core: Graph method implementations.
//
// Structural operations (AddNode, RemoveNode, Clear) mutate the slot
// arena under the structural write lock. Lookups and edge resolution go
// through resolve, which reads an atomically published snapshot of the
// slot table and therefore never contends with the structural lock nor
// with any node's own lock. The structural lock is never held while a
// node lock is taken, so there is no cross-level lock ordering to get
// wrong.
package core

// resolve attempts to upgrade id to a strong handle without taking any
// lock. It returns nil when the id belongs to another graph, names a
// slot this graph never filled, or names a generation that has been
// removed (including slots since reoccupied by a newer node).
func (g *Graph[T]) resolve(id NodeID) *Node[T] {
	if id.graph != g.id {
		return nil
	}
	view := *g.view.Load()
	if int(id.slot) >= len(view) {
		return nil
	}
	n := view[id.slot].node.Load()
	if n == nil || n.id != id {
		return nil
	}

	return n
}

// AddNode allocates a node owning the given payload, stores it in the
// arena (recycling a freed slot when one exists), and returns its id.
// The graph becomes the node's sole long-lived strong owner. Always
// succeeds. Complexity: O(1) amortized.
func (g *Graph[T]) AddNode(payload T) NodeID {
	g.mu.Lock()
	defer g.mu.Unlock()

	var idx uint32
	if k := len(g.free); k > 0 {
		idx = g.free[k-1]
		g.free = g.free[:k-1]
	} else {
		idx = uint32(len(g.slots))
		g.slots = append(g.slots, &slot[T]{})
		// Publish the grown table for lock-free resolution.
		snap := g.slots
		g.view.Store(&snap)
	}

	s := g.slots[idx]
	s.gen++ // generations start at 1, so the zero NodeID never resolves
	n := &Node[T]{
		id:      NodeID{graph: g.id, slot: idx, gen: s.gen},
		g:       g,
		payload: payload,
	}
	s.node.Store(n)
	g.count++

	return n.id
}

// Get returns a transient strong handle to the node, or false if the id
// was never issued by this graph or the node has been removed. Holding
// the handle keeps the node object alive even across a concurrent
// RemoveNode; the id itself stops resolving once removal commits.
// Complexity: O(1), lock-free.
func (g *Graph[T]) Get(id NodeID) (*Node[T], bool) {
	n := g.resolve(id)

	return n, n != nil
}

// RemoveNode drops the graph's strong reference to the node and reports
// whether a node was removed. Edges elsewhere that still name this id
// are not searched for or deleted; they become stale and are purged on
// their owners' next resolution pass. A caller still holding a handle
// from Get keeps the node object alive until that handle is released.
// Complexity: O(1).
func (g *Graph[T]) RemoveNode(id NodeID) bool {
	if id.graph != g.id {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if int(id.slot) >= len(g.slots) {
		return false
	}
	s := g.slots[id.slot]
	n := s.node.Load()
	if n == nil || n.id != id {
		return false
	}
	s.node.Store(nil)
	g.free = append(g.free, id.slot)
	g.count--

	return true
}

// AddEdge inserts a weak reference to 'to' into 'from's edge set.
// Returns ErrNodeNotFound if either endpoint is absent at call time, and
// ErrNodePoisoned if 'from's lock is poisoned. This is the only
// sanctioned way to link two nodes; it never creates a strong reference
// between them, which is what makes arbitrary cycles (self-loops
// included) safe to tear down. Complexity: O(1) (O(deg) with dedup).
func (g *Graph[T]) AddEdge(from, to NodeID) error {
	src := g.resolve(from)
	if src == nil {
		return ErrNodeNotFound
	}
	if g.resolve(to) == nil {
		return ErrNodeNotFound
	}

	return src.Do(func(s *NodeState[T]) { s.AddEdge(to) })
}

// RemoveEdge removes every edge from 'from' matching 'to'. Returns
// ErrNodeNotFound only when 'from' is absent; an absent target or no
// matching edge is a no-op, not an error. Complexity: O(deg(from)).
func (g *Graph[T]) RemoveEdge(from, to NodeID) error {
	src := g.resolve(from)
	if src == nil {
		return ErrNodeNotFound
	}

	return src.Do(func(s *NodeState[T]) { s.RemoveEdge(to) })
}

// HasEdge reports whether 'from' stores at least one edge to 'to' whose
// target is still alive. Returns ErrNodeNotFound when 'from' is absent.
// Complexity: O(deg(from)).
func (g *Graph[T]) HasEdge(from, to NodeID) (bool, error) {
	src := g.resolve(from)
	if src == nil {
		return false, ErrNodeNotFound
	}
	edges, err := src.Edges()
	if err != nil {
		return false, err
	}
	for _, e := range edges {
		if e == to && g.resolve(to) != nil {
			return true, nil
		}
	}

	return false, nil
}

// Neighbors resolves 'id's edge set and returns strong handles to the
// targets that are still alive, in storage order, silently skipping
// stale references (and purging them from the edge set). The slice is
// freshly computed per call; recomputing re-resolves the current edge
// set. Returns ErrNodeNotFound if 'id' is absent, ErrNodePoisoned if the
// node's lock is poisoned. Complexity: O(deg(id)).
func (g *Graph[T]) Neighbors(id NodeID) ([]*Node[T], error) {
	n := g.resolve(id)
	if n == nil {
		return nil, ErrNodeNotFound
	}
	rs, err := n.ResolveEdges()
	if err != nil {
		return nil, err
	}
	out := make([]*Node[T], 0, len(rs))
	for _, r := range rs {
		if r.Live() {
			out = append(out, r.Node)
		}
	}

	return out, nil
}

// NeighborValues resolves 'id's live neighbors and returns copies of
// their payloads. A poisoned neighbor surfaces as ErrNodePoisoned rather
// than being skipped: its payload cannot be trusted, and pretending it
// is absent would hide the fault. Complexity: O(deg(id)).
func (g *Graph[T]) NeighborValues(id NodeID) ([]T, error) {
	nbs, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(nbs))
	for _, nb := range nbs {
		v, err := nb.Value()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

// NodeCount returns the number of nodes currently owned by the graph.
// Complexity: O(1).
func (g *Graph[T]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.count
}

// NodeIDs returns the ids of all resident nodes in slot order. The slice
// is a snapshot; nodes added or removed afterwards are not reflected.
// Complexity: O(S) over the slot table.
func (g *Graph[T]) NodeIDs() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, g.count)
	for _, s := range g.slots {
		if n := s.node.Load(); n != nil {
			out = append(out, n.id)
		}
	}

	return out
}

// Clear removes every node from the graph. Slot generations are
// preserved, so ids issued before the clear never resolve again, even
// after their slots are recycled. Caller-held handles keep their node
// objects alive as usual. Complexity: O(S).
func (g *Graph[T]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, s := range g.slots {
		if s.node.Load() != nil {
			s.node.Store(nil)
			g.free = append(g.free, uint32(i))
		}
	}
	g.count = 0
}

// Compact runs a resolution pass over every resident node, purging stale
// edge references graph-wide, and returns the number of references
// dropped. Staleness is otherwise purged lazily, one node at a time, on
// that node's next resolution; Compact is for callers that want the
// purge now. Poisoned nodes are skipped and keep their edge sets.
// Complexity: O(V + E).
func (g *Graph[T]) Compact() int {
	dropped := 0
	for _, id := range g.NodeIDs() {
		n := g.resolve(id)
		if n == nil {
			continue // removed since the snapshot
		}
		rs, err := n.ResolveEdges()
		if err != nil {
			continue
		}
		for _, r := range rs {
			if !r.Live() {
				dropped++
			}
		}
	}

	return dropped
}
