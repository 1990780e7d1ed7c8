package builder

import (
	"errors"
	"fmt"

	"github.com/ovrelid/weakgraph/core"
)

// Sentinel errors for builder constructors.
var (
	// ErrTooFewNodes indicates the requested node count cannot express
	// the requested topology.
	ErrTooFewNodes = errors.New("builder: too few nodes for topology")
)

// Constructor applies one deterministic linking step to freshly minted
// nodes. Constructors must validate their minimum node count, go through
// public core operations only, and return sentinel errors rather than
// panic.
type Constructor[T any] func(g *core.Graph[T], ids []core.NodeID) error

// Build creates a new core.Graph with the given graph options, adds n
// nodes whose payloads come from payload(i) (zero values when payload is
// nil), and applies all constructors in order. The minted ids are
// returned in insertion order. A constructor error is wrapped with
// "Build:" and returned immediately; no partial cleanup is attempted.
func Build[T any](n int, payload func(i int) T, gopts []core.Option, cons ...Constructor[T]) (*core.Graph[T], []core.NodeID, error) {
	if n < 0 {
		return nil, nil, fmt.Errorf("Build: %w", ErrTooFewNodes)
	}
	g := core.New[T](gopts...)
	ids := make([]core.NodeID, n)
	for i := range ids {
		var v T
		if payload != nil {
			v = payload(i)
		}
		ids[i] = g.AddNode(v)
	}
	for _, c := range cons {
		if err := c(g, ids); err != nil {
			return nil, nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, ids, nil
}
