// Package builder provides deterministic topology constructors layered
// on top of the core graph primitives.
//
// The core container deliberately stops at structural mutation; builder
// is the thin external layer that composes those primitives into common
// shapes for tests, fixtures, and examples. One orchestrator, Build,
// creates the graph, mints the requested nodes, and applies constructors
// in order; each Constructor links the minted nodes through public core
// operations only.
//
// Constructors:
//
//	Cycle[T]()    - ids[0] → ids[1] → … → ids[n-1] → ids[0] (n ≥ 1;
//	                a single node yields a self-loop)
//	Path[T]()     - ids[0] → ids[1] → … → ids[n-1] (n ≥ 1)
//	Star[T]()     - ids[0] → every other id (n ≥ 2)
//	Complete[T]() - every ordered pair (i ≠ j)    (n ≥ 2)
//
// Errors:
//
//	ErrTooFewNodes - the node count cannot express the requested shape.
//
// Determinism: the same count, payload function, options, and
// constructor order always produce an identical topology. Constructor
// errors are wrapped with the failing shape's name and match
// errors.Is(err, ErrTooFewNodes).
package builder
