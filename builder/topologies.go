package builder

import (
	"fmt"

	"github.com/ovrelid/weakgraph/core"
)

// Cycle links the nodes into a single directed cycle:
// ids[i] → ids[(i+1) mod n]. A single node yields a self-loop.
// Requires n ≥ 1.
func Cycle[T any]() Constructor[T] {
	return func(g *core.Graph[T], ids []core.NodeID) error {
		if len(ids) < 1 {
			return fmt.Errorf("Cycle: %w", ErrTooFewNodes)
		}
		for i := range ids {
			if err := g.AddEdge(ids[i], ids[(i+1)%len(ids)]); err != nil {
				return fmt.Errorf("Cycle: %w", err)
			}
		}

		return nil
	}
}

// Path links the nodes into a directed path ids[0] → … → ids[n-1].
// A single node yields no edges. Requires n ≥ 1.
func Path[T any]() Constructor[T] {
	return func(g *core.Graph[T], ids []core.NodeID) error {
		if len(ids) < 1 {
			return fmt.Errorf("Path: %w", ErrTooFewNodes)
		}
		for i := 0; i+1 < len(ids); i++ {
			if err := g.AddEdge(ids[i], ids[i+1]); err != nil {
				return fmt.Errorf("Path: %w", err)
			}
		}

		return nil
	}
}

// Star links ids[0] to every other node. Requires n ≥ 2.
func Star[T any]() Constructor[T] {
	return func(g *core.Graph[T], ids []core.NodeID) error {
		if len(ids) < 2 {
			return fmt.Errorf("Star: %w", ErrTooFewNodes)
		}
		for _, spoke := range ids[1:] {
			if err := g.AddEdge(ids[0], spoke); err != nil {
				return fmt.Errorf("Star: %w", err)
			}
		}

		return nil
	}
}

// Complete links every ordered pair of distinct nodes, so every node
// reaches every other both ways. Requires n ≥ 2.
func Complete[T any]() Constructor[T] {
	return func(g *core.Graph[T], ids []core.NodeID) error {
		if len(ids) < 2 {
			return fmt.Errorf("Complete: %w", ErrTooFewNodes)
		}
		for i := range ids {
			for j := range ids {
				if i == j {
					continue
				}
				if err := g.AddEdge(ids[i], ids[j]); err != nil {
					return fmt.Errorf("Complete: %w", err)
				}
			}
		}

		return nil
	}
}
