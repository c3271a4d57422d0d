package poly

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestViewMatchesPolygonContainerContract drives the same sequence of
// mutations through a flat Polygon and through a batch View sharing
// storage with an unrelated neighbor member, and requires them to stay
// in lockstep at every step — the batch's columnar storage must be
// invisible to anything driving the view through the ordinary container
// contract.
func TestViewMatchesPolygonContainerContract(t *testing.T) {
	flat := NewPolygon()

	b := NewBatch()
	b.AppendPolygon(NewPolygonFromSlice([]Point{{-1, -1}, {-2, -2}})) // unrelated neighbor
	b.AppendEmpty()
	view := b.Member(1)

	requireLockstep := func(step string) {
		require.Equal(t, flat.Len(), view.Len(), "Len mismatch at %s", step)
		for i := range flat.Len() {
			require.Equal(t, flat.Index(i), view.Index(i), "vertex %d mismatch at %s", i, step)
		}
	}

	for k := 0; k < 20; k++ {
		p := Point{X: Coordinate(k), Y: Coordinate(-k)}
		flat.PushBack(p)
		view.PushBack(p)
	}
	requireLockstep("after pushes")

	flat.Insert(3, Point{100, 100}, Point{101, 101})
	view.Insert(3, Point{100, 100}, Point{101, 101})
	requireLockstep("after insert")

	flat.Erase(5, 8)
	view.Erase(5, 8)
	requireLockstep("after erase")

	flat.ResizeFill(30, Point{9, 9})
	view.ResizeFill(30, Point{9, 9})
	requireLockstep("after grow-resize")

	flat.Resize(4)
	view.Resize(4)
	requireLockstep("after shrink-resize")

	flat.PopBack()
	view.PopBack()
	requireLockstep("after pop")

	// The neighbor member must be untouched by any of the above.
	neighbor := b.Member(0)
	require.Equal(t, 2, neighbor.Len())
	require.Equal(t, Point{-1, -1}, neighbor.Index(0))
	require.Equal(t, Point{-2, -2}, neighbor.Index(1))
}

func TestViewSwapSameBatchIsO1IndexExchange(t *testing.T) {
	b := NewBatch()
	b.AppendPolygon(NewPolygonFromSlice([]Point{{1, 1}}))
	b.AppendPolygon(NewPolygonFromSlice([]Point{{2, 2}, {3, 3}}))

	a, c := b.Member(0), b.Member(1)
	a.Swap(c)
	require.Equal(t, 2, a.Len())
	require.Equal(t, 1, c.Len())
	require.Equal(t, Point{2, 2}, a.Index(0))
	require.Equal(t, Point{1, 1}, c.Index(0))
}

func TestViewSwapWithPolygon(t *testing.T) {
	b := NewBatch()
	b.AppendPolygon(NewPolygonFromSlice([]Point{{1, 1}, {2, 2}}))
	v := b.Member(0)
	p := NewPolygonFromSlice([]Point{{9, 9}})

	v.SwapWithPolygon(p)
	require.Equal(t, 1, v.Len())
	require.Equal(t, Point{9, 9}, v.Index(0))
	require.Equal(t, 2, p.Len())
	require.Equal(t, Point{1, 1}, p.Index(0))
	require.Equal(t, Point{2, 2}, p.Index(1))
}
