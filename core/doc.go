// Package core provides a thread-safe in-memory graph container built
// around a single ownership rule: the Graph is the only long-lived strong
// owner of every node, and all links between nodes are non-owning weak
// references that must be resolved before use.
//
// Graphs are cyclic by nature (A can reach B while B reaches A), which is
// hostile to naive strong linking: a cycle of mutually-owning references
// can never be torn down from the outside. core sidesteps this by never
// letting one node hold a strong reference to another. An edge is just a
// NodeID stored in the source node's edge set, and a NodeID is an arena
// coordinate (slot, generation) tagged with its graph instance. Resolving
// a NodeID either upgrades it to a live *Node handle or reports absence;
// absence is an ordinary outcome, never an error.
//
// Ownership and lifetime:
//
//   - AddNode stores the node in the graph's slot arena and returns its
//     NodeID. The arena entry is the node's only long-lived strong
//     reference.
//   - Get returns a transient strong handle (*Node). A caller-held handle
//     keeps the node object alive after RemoveNode, but the id stops
//     resolving the moment removal commits.
//   - RemoveNode clears the slot and bumps nothing but bookkeeping: edges
//     elsewhere that still name the removed id are left in place and
//     simply fail to resolve. They are purged opportunistically on the
//     next resolution pass over their owning node.
//   - Removing both halves of a 2-cycle releases both nodes. Their mutual
//     edges are plain NodeID values and pin nothing.
//
// Locking model, two independent levels:
//
//   - Structural: a Graph-level RWMutex guards the slot table and free
//     list. It is held only across index mutation and is never held while
//     a node's lock is taken.
//   - Per-node: one sync.Mutex per Node guards that node's payload and
//     edge set together. Operations on distinct nodes never contend.
//     Resolution reads slot occupancy through an atomic pointer, so
//     walking one node's edges takes no target's lock and no structural
//     lock.
//
// A node's lock poisons: if the mutator passed to Do panics while holding
// the lock, the node is marked and every later lock attempt returns
// ErrNodePoisoned instead of exposing a half-mutated payload.
//
// Core methods:
//
//	// Graph
//	New[T](opts ...Option) *Graph[T]
//	AddNode(payload T) NodeID
//	Get(id NodeID) (*Node[T], bool)
//	RemoveNode(id NodeID) bool
//	AddEdge(from, to NodeID) error
//	RemoveEdge(from, to NodeID) error
//	HasEdge(from, to NodeID) (bool, error)
//	Neighbors(id NodeID) ([]*Node[T], error)
//	NeighborValues(id NodeID) ([]T, error)
//	NodeCount() int / NodeIDs() []NodeID / Clear() / Compact() int
//
//	// Node
//	ID() NodeID
//	Do(fn func(*NodeState[T])) error   // guarded payload+edge access
//	Value() (T, error) / SetValue(T) error
//	Edges() ([]NodeID, error) / Degree() (int, error)
//	ResolveEdges() ([]Resolution[T], error)
//
// Errors:
//
//	ErrNodeNotFound - operation referenced an id this graph never issued,
//	                  or whose node was removed.
//	ErrNodePoisoned - a previous lock holder panicked mid-mutation;
//	                  payload consistency cannot be assumed.
//
// Duplicate parallel edges are permitted by default; construct the graph
// with WithDedupEdges to make edge insertion idempotent per target.
package core
