// Package offload defines the accelerator backend contract used by the
// "offload" dispatch level of poly/ops/area. A backend ships vertex data
// to a device once and runs one compute dispatch over it; the only
// built-in backend is the OpenGL compute-shader implementation in
// offload_gpu.go (built with the "gpu" tag). Without that tag,
// Available reports false and area.Area runs the parallel kernel for
// polygons large enough to be offloaded.
package offload

import "context"

// Point mirrors poly.Point's layout without importing poly, so this
// package stays buildable (as the stub) even on platforms lacking a
// working OpenGL toolchain, without pulling in polygon semantics it does
// not need.
type Point struct {
	X, Y int32
}

// Backend ships polygon vertex data to a device and runs the signed-area
// kernel over it. A Backend is not safe for concurrent use: Ship and Run
// are a single request/response pair, matching the host-prep/device-
// dispatch staging of a single compute shader invocation.
type Backend interface {
	// Ship uploads the shared vertex buffer and each polygon's [start,
	// start+length) span within it.
	Ship(ctx context.Context, vertices []Point, starts, lengths []int32) error
	// Run dispatches the compute shader and reads back one signed area
	// per shipped span, in the order they were given to Ship.
	Run(ctx context.Context) ([]int64, error)
}

// New returns the compiled-in backend, or nil if none is available. Call
// Available first; New may be expensive (it may open a hidden window and
// an OpenGL context) and should only be called when a backend is about
// to be used.
func New() (Backend, error) {
	return newBackend()
}

// Available reports whether a real accelerator backend was compiled into
// this binary. Dispatch logic must treat it as one more input to the
// scalar/parallel/offload size thresholds, never as a guarantee: a build
// without the "gpu" tag reports false, and a build with it reports true
// even on a host without a usable GPU, in which case New returns an error.
func Available() bool {
	return available
}
