// Package core_test verifies the defining ownership property: cyclic
// edges never keep node memory alive.
package core_test

import (
	"runtime"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ovrelid/weakgraph/core"
)

// probe is a payload whose collection we can observe via finalizer.
type probe struct {
	_ [64]byte
}

// TestTwoCycleRelease builds a 2-cycle (A→B and B→A), removes both
// nodes, and asserts that both payloads are actually reclaimed. The
// mutual edges are weak references and must not pin anything.
func TestTwoCycleRelease(t *testing.T) {
	g := core.New[*probe]()
	var released atomic.Int32

	// Build inside a helper so no local strong handles outlive it.
	buildAndRemove := func() {
		p1, p2 := &probe{}, &probe{}
		runtime.SetFinalizer(p1, func(*probe) { released.Add(1) })
		runtime.SetFinalizer(p2, func(*probe) { released.Add(1) })

		a := g.AddNode(p1)
		b := g.AddNode(p2)
		require.NoError(t, g.AddEdge(a, b))
		require.NoError(t, g.AddEdge(b, a))

		require.True(t, g.RemoveNode(a))
		require.True(t, g.RemoveNode(b))

		// The ids are dead even though each node still names the other.
		_, ok := g.Get(a)
		require.False(t, ok)
		_, ok = g.Get(b)
		require.False(t, ok)
	}
	buildAndRemove()

	require.Eventually(t, func() bool {
		runtime.GC()
		return released.Load() == 2
	}, 5*time.Second, 10*time.Millisecond,
		"cyclic nodes were not reclaimed after removal")
}

// TestHandleDelaysRelease checks the other half of the contract: a
// caller-held strong handle keeps its node's memory alive past
// RemoveNode, and release follows the last handle.
func TestHandleDelaysRelease(t *testing.T) {
	g := core.New[*probe]()
	var released atomic.Int32

	var held *core.Node[*probe]
	func() {
		p := &probe{}
		runtime.SetFinalizer(p, func(*probe) { released.Add(1) })
		id := g.AddNode(p)
		n, ok := g.Get(id)
		require.True(t, ok)
		held = n
		require.True(t, g.RemoveNode(id))
	}()

	// While the handle is held, the payload must survive GC.
	for i := 0; i < 5; i++ {
		runtime.GC()
	}
	require.Equal(t, int32(0), released.Load())
	v, err := held.Value()
	require.NoError(t, err)
	require.NotNil(t, v)
	v = nil

	// Dropping the last handle releases the node.
	held = nil
	require.Eventually(t, func() bool {
		runtime.GC()
		return released.Load() == 1
	}, 5*time.Second, 10*time.Millisecond)
}
