// Package selfintersect finds every pair of non-adjacent edges of a
// polygon that cross, touch, or overlap, by pairwise edge enumeration.
// The upstream geometry library this was ported from never finished a
// device-side kernel for it, so this package has no offload backend;
// the public entry point always runs the parallel kernel.
package selfintersect

import (
	"sync"

	"github.com/ajroetker/apexgo/poly"
	"github.com/ajroetker/apexgo/poly/contrib/workerpool"
)

// edgeStart and edgeEnd return the two endpoints of edge i of a polygon
// of n vertices reached through index.
func edgeStart(index func(int) poly.Point, i int) poly.Point { return index(i) }
func edgeEnd(index func(int) poly.Point, i, n int) poly.Point {
	return index((i + 1) % n)
}

// representativeEdges flags each edge that either has non-zero length or
// is the first edge of a maximal run of zero-length (coincident-endpoint)
// edges. Only
// representative edges are checked against the rest of the polygon in
// the non-adjacent pass: every edge in a coincident run sits at the same
// location, so checking the run's representative once against an
// external edge e is equivalent to checking every edge in the run
// against e, and skipping the rest avoids reporting the same location
// once per redundant degenerate edge.
func representativeEdges(index func(int) poly.Point, n int) []bool {
	rep := make([]bool, n)
	for i := range n {
		a, b := edgeStart(index, i), edgeEnd(index, i, n)
		if !a.Equal(b) {
			rep[i] = true
			continue
		}
		prev := (i - 1 + n) % n
		pa, pb := edgeStart(index, prev), edgeEnd(index, prev, n)
		rep[i] = !(pa.Equal(pb) && pb.Equal(a))
	}
	return rep
}

// scanNonAdjacent checks every non-adjacent edge pair in [kStart, kEnd)
// of the fixed pairing enumeration and appends any intersection found to
// out, guarded by mu.
func scanNonAdjacent(index func(int) poly.Point, n int, rep []bool, kStart, kEnd int, out *[]poly.SelfIntersection, mu *sync.Mutex) {
	for k := kStart; k < kEnd; k++ {
		a, b := poly.EnumeratePair(n, k, false)
		if !rep[a] || !rep[b] {
			continue
		}
		a1, a2 := edgeStart(index, a), edgeEnd(index, a, n)
		b1, b2 := edgeStart(index, b), edgeEnd(index, b, n)
		loc, ok := poly.IntersectSegments(a1, a2, b1, b2)
		if !ok {
			continue
		}
		mu.Lock()
		*out = append(*out, poly.SelfIntersection{Location: loc, SegmentA: a, SegmentB: b})
		mu.Unlock()
	}
}

// scanAdjacent checks each adjacent edge pair (i, (i+1)%n) for a
// collinear overlap extending past their shared vertex — the only way
// two edges that already share an endpoint can have a second,
// independently meaningful intersection.
func scanAdjacent(index func(int) poly.Point, n int) []poly.SelfIntersection {
	var out []poly.SelfIntersection
	for i := range n {
		j := (i + 1) % n
		a1, a2 := edgeStart(index, i), edgeEnd(index, i, n)
		b1, b2 := edgeStart(index, j), edgeEnd(index, j, n)
		if poly.Orient(b2, a1, a2) != 0 {
			continue
		}
		onA := onSegmentExcl(b2, a1, a2)
		onB := onSegmentExcl(a1, b1, b2)
		if !onA && !onB {
			continue
		}
		out = append(out, poly.SelfIntersection{Location: a2, SegmentA: i, SegmentB: j})
	}
	return out
}

// onSegmentExcl reports whether p, known collinear with a-b, lies
// strictly within [a,b] rather than merely at one of its two endpoints —
// used to distinguish a genuine overlap from the trivial shared vertex
// every adjacent edge pair already has.
func onSegmentExcl(p, a, b poly.Point) bool {
	if p.Equal(a) || p.Equal(b) {
		return false
	}
	loX, hiX := a.X, b.X
	if loX > hiX {
		loX, hiX = hiX, loX
	}
	loY, hiY := a.Y, b.Y
	if loY > hiY {
		loY, hiY = hiY, loY
	}
	return p.X >= loX && p.X <= hiX && p.Y >= loY && p.Y <= hiY
}

// Scalar finds every self-intersection of a polygon of n vertices
// reached through index, in a single sequential pass. A 2-vertex polygon
// is a degenerate special case: its only two edges coincide, so it
// always reports exactly one self-intersection at vertex 0 between
// segments 0 and 1.
func Scalar(n int, index func(int) poly.Point) []poly.SelfIntersection {
	if n < 2 {
		return nil
	}
	if n == 2 {
		return []poly.SelfIntersection{{Location: index(0), SegmentA: 0, SegmentB: 1}}
	}
	rep := representativeEdges(index, n)
	var out []poly.SelfIntersection
	var mu sync.Mutex
	scanNonAdjacent(index, n, rep, 0, poly.PairCount(n, false), &out, &mu)
	out = append(out, scanAdjacent(index, n)...)
	return out
}

// nonAdjacentBatchSize is the number of pair indices each worker claims
// per atomic grab in Parallel's non-adjacent scan. Most pairs are
// rejected cheaply (their edges aren't representative, or they don't
// intersect), so batching amortises the work-stealing counter's atomic
// overhead across many pairs instead of paying it once per pair.
const nonAdjacentBatchSize = 256

// Parallel finds every self-intersection of a polygon of n vertices,
// splitting the non-adjacent pairing enumeration across the shared
// worker pool using atomic work-stealing (the cost of a pair varies a
// lot — most are skipped outright, some run a full segment-intersection
// test — so fixed contiguous chunks would leave some workers idle); the
// adjacent pass is cheap (O(n)) and stays sequential.
func Parallel(pool *workerpool.Pool, n int, index func(int) poly.Point) []poly.SelfIntersection {
	if n < 2 {
		return nil
	}
	if n == 2 {
		return []poly.SelfIntersection{{Location: index(0), SegmentA: 0, SegmentB: 1}}
	}
	rep := representativeEdges(index, n)
	total := poly.PairCount(n, false)
	var out []poly.SelfIntersection
	var mu sync.Mutex
	pool.ParallelForAtomicBatched(total, nonAdjacentBatchSize, func(start, end int) {
		scanNonAdjacent(index, n, rep, start, end, &out, &mu)
	})
	out = append(out, scanAdjacent(index, n)...)
	return out
}

var (
	pool     *workerpool.Pool
	poolOnce sync.Once
)

func sharedPool() *workerpool.Pool {
	poolOnce.Do(func() {
		pool = workerpool.New(0)
	})
	return pool
}

// SelfIntersections is the public entry point for a flat polygon: always
// parallel, regardless of size.
func SelfIntersections(p *poly.Polygon) []poly.SelfIntersection {
	return Parallel(sharedPool(), p.Len(), p.Index)
}

// ViewSelfIntersections is the public entry point for a batch member.
func ViewSelfIntersections(v *poly.View) []poly.SelfIntersection {
	return Parallel(sharedPool(), v.Len(), v.Index)
}
