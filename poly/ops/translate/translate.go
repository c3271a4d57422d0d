// Package translate adds a fixed delta to every vertex of a polygon or
// batch in place. It is the one operation in this library proven to
// preserve a polygon's properties cache — convexity, self-intersection
// status and winding orientation are all invariant under rigid
// translation — so every kernel here writes through the raw vertex slice
// rather than through Polygon.SetIndex/View.SetIndex, whose job is to
// invalidate that cache for everything else.
package translate

import (
	"context"
	"errors"

	"github.com/ajroetker/apexgo/poly"
	"github.com/ajroetker/apexgo/poly/contrib/workerpool"
	"github.com/ajroetker/apexgo/poly/offload"
)

// ErrOffloadUnsupported is returned by Offload: the offload.Backend
// contract only ships vertex spans and reads back a reduction (area), it
// has no elementwise ship-back-and-overwrite kernel translate needs, so
// there is no device path to run yet.
var ErrOffloadUnsupported = errors.New("translate: offload backend does not support an elementwise kernel")

// Scalar adds delta to every vertex of p with a single sequential loop.
func Scalar(p *poly.Polygon, delta poly.Point) {
	data := p.Data()
	for i, v := range data {
		data[i] = v.Add(delta)
	}
}

// Parallel adds delta to every vertex of p, splitting the vertex range
// across the given worker pool.
func Parallel(pool *workerpool.Pool, p *poly.Polygon, delta poly.Point) {
	data := p.Data()
	pool.ParallelFor(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = data[i].Add(delta)
		}
	})
}

// Offload would copy p's vertices to the device, apply delta, and copy
// the result back. offload.Backend only exposes an area-style reduction
// (Ship a span, Run reads back one sum per span), not an elementwise
// kernel that writes the vertices back, so there is no way to actually
// offload this operation yet; Offload returns ErrOffloadUnsupported
// rather than silently running Scalar under the offload's name. The
// signature is kept so a real backend can be wired in later without
// changing call sites.
func Offload(ctx context.Context, backend offload.Backend, p *poly.Polygon, delta poly.Point) error {
	return ErrOffloadUnsupported
}

// BatchScalar adds delta to every vertex of every member of b.
func BatchScalar(b *poly.Batch, delta poly.Point) {
	data := b.DataSubelements()
	for i, v := range data {
		data[i] = v.Add(delta)
	}
}

// BatchParallel adds delta to every vertex of every member of b,
// splitting the shared vertex buffer across the given worker pool. This
// is safe because translate never changes a member's length or
// capacity, only its vertices' values, so the index buffer is untouched
// throughout.
func BatchParallel(pool *workerpool.Pool, b *poly.Batch, delta poly.Point) {
	data := b.DataSubelements()
	pool.ParallelFor(len(data), func(start, end int) {
		for i := start; i < end; i++ {
			data[i] = data[i].Add(delta)
		}
	})
}

// Translate is the public entry point: always scalar, regardless of
// size. The parallel and offload kernels above remain available to
// benchmark harnesses that want to measure them directly.
func Translate(p *poly.Polygon, delta poly.Point) {
	Scalar(p, delta)
}

// BatchTranslate is the public entry point for batches: always scalar.
func BatchTranslate(b *poly.Batch, delta poly.Point) {
	BatchScalar(b, delta)
}
