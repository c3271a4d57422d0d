// Package area computes signed polygon area via the shoelace formula,
// dispatched across scalar, parallel and (when compiled in) accelerator
// backends by input size. Because the shoelace sum is accumulated in
// int64 and integer addition is exactly associative and commutative,
// every dispatch level produces bit-for-bit the same doubled sum before
// the final truncating halving — splitting the sum across workers or a
// device never perturbs it.
package area

import (
	"context"
	"sync"

	"github.com/ajroetker/apexgo/poly"
	"github.com/ajroetker/apexgo/poly/contrib/workerpool"
	"github.com/ajroetker/apexgo/poly/offload"
)

// Size thresholds for the public dispatch entry points, chosen so that
// the parallel and offload paths are only taken once their overhead is
// reliably amortised by the work they save.
const (
	scalarMaxPolygon  = 400  // n < this: Scalar
	offloadMinPolygon = 3000 // n >= this: Offload if available, else Parallel
	scalarMaxBatch    = 200  // m+s < this: Scalar, where m = member count, s = total vertices
)

var (
	pool     *workerpool.Pool
	poolOnce sync.Once

	backend     offload.Backend
	backendOnce sync.Once
)

func sharedPool() *workerpool.Pool {
	poolOnce.Do(func() {
		pool = workerpool.New(0)
	})
	return pool
}

// sharedBackend returns the process-wide offload backend, or nil if none
// is available. The attempt to create one is made exactly once; a
// failure (no GPU, driver error) is remembered and every subsequent call
// simply reports unavailable rather than retrying.
func sharedBackend() offload.Backend {
	backendOnce.Do(func() {
		if !offload.Available() {
			return
		}
		b, err := offload.New()
		if err == nil {
			backend = b
		}
	})
	return backend
}

// Scalar computes p's signed area with a single sequential pass.
func Scalar(p *poly.Polygon) poly.Area {
	return shoelace(p.Len(), p.Index)
}

// shoelace sums cross(v[i], v[i+1 mod n]) over the n edges described by
// index, and returns half of that sum, truncated toward zero.
func shoelace(n int, index func(int) poly.Point) poly.Area {
	if n < 3 {
		return 0
	}
	var sum poly.Area
	for i := range n {
		a := index(i)
		b := index((i + 1) % n)
		sum += poly.Cross(a, b)
	}
	return sum / 2
}

// Parallel computes p's signed area by splitting its edges across the
// shared worker pool and summing each worker's partial shoelace total.
func Parallel(p *poly.Polygon) poly.Area {
	n := p.Len()
	if n < 3 {
		return 0
	}
	partials := make([]poly.Area, sharedPool().NumWorkers())
	sharedPool().ParallelFor(n, func(start, end int) {
		var sum poly.Area
		for i := start; i < end; i++ {
			a := p.Index(i)
			b := p.Index((i + 1) % n)
			sum += poly.Cross(a, b)
		}
		partials[workerSlot(start, end, n, len(partials))] = sum
	})
	var total poly.Area
	for _, s := range partials {
		total += s
	}
	return total / 2
}

// workerSlot recovers which partial-sum slot a given [start,end) chunk
// owns. ParallelFor divides [0,n) into contiguous, non-overlapping
// ranges in worker order, so the chunk index is simply its position.
func workerSlot(start, end, n, numPartials int) int {
	if numPartials <= 1 {
		return 0
	}
	chunkSize := (n + numPartials - 1) / numPartials
	return start / chunkSize
}

// Offload ships p to the accelerator backend and returns its signed
// area. Callers must check offload.Available (or call Area, which does
// this automatically) before calling Offload.
func Offload(ctx context.Context, backend offload.Backend, p *poly.Polygon) (poly.Area, error) {
	n := p.Len()
	if n < 3 {
		return 0, nil
	}
	vertices := make([]offload.Point, n)
	for i, v := range p.Data() {
		vertices[i] = offload.Point{X: int32(v.X), Y: int32(v.Y)}
	}
	if err := backend.Ship(ctx, vertices, []int32{0}, []int32{int32(n)}); err != nil {
		return 0, err
	}
	areas, err := backend.Run(ctx)
	if err != nil {
		return 0, err
	}
	return poly.Area(areas[0]) / 2, nil
}

// Area computes p's signed area, automatically choosing a dispatch
// level by p's vertex count: Scalar below scalarMaxPolygon, Offload at
// or above offloadMinPolygon when a backend is compiled in and healthy
// (falling back to Parallel otherwise), and Parallel in between.
func Area(p *poly.Polygon) (poly.Area, poly.DispatchLevel) {
	n := p.Len()
	switch {
	case n < scalarMaxPolygon:
		return Scalar(p), poly.DispatchScalar
	case n >= offloadMinPolygon:
		if b := sharedBackend(); b != nil {
			if a, err := Offload(context.Background(), b, p); err == nil {
				return a, poly.DispatchOffload
			}
		}
		return Parallel(p), poly.DispatchParallel
	default:
		return Parallel(p), poly.DispatchParallel
	}
}

// BatchScalar computes the signed area of every member of b with a
// single sequential pass.
func BatchScalar(b *poly.Batch) []poly.Area {
	areas := make([]poly.Area, b.Len())
	for i := range areas {
		v := b.Member(i)
		areas[i] = shoelace(v.Len(), v.Index)
	}
	return areas
}

// BatchParallel computes the signed area of every member of b, spreading
// whole members across the shared worker pool. Member vertex counts
// within a batch are typically uneven, so this uses atomic work-stealing
// rather than fixed contiguous chunks: a worker that lands a run of
// small members finishes early and steals the next unclaimed member
// instead of idling while another worker churns through a large one.
func BatchParallel(b *poly.Batch) []poly.Area {
	areas := make([]poly.Area, b.Len())
	sharedPool().ParallelForAtomic(b.Len(), func(i int) {
		v := b.Member(i)
		areas[i] = shoelace(v.Len(), v.Index)
	})
	return areas
}

// BatchArea computes the signed area of every member of b, choosing
// Scalar when the combined member count and vertex extent falls below
// scalarMaxBatch, and Parallel otherwise. Batch area never offloads: the
// per-member span upload cost dominates for the member counts this
// threshold admits, unlike the single large polygon Offload targets.
func BatchArea(b *poly.Batch) ([]poly.Area, poly.DispatchLevel) {
	if b.Len()+b.SizeSubelements() < scalarMaxBatch {
		return BatchScalar(b), poly.DispatchScalar
	}
	return BatchParallel(b), poly.DispatchParallel
}
