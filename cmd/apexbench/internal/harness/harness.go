// Package harness drives the timing loops behind apexbench's
// subcommands: a warm-up phase, a fixed number of timed repetitions per
// polygon size, and a doubling size sweep with a table printed at the
// end. It is an external collaborator of the core library — nothing
// under poly/ depends on it.
package harness

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/ajroetker/apexgo/internal/gen"
	"github.com/ajroetker/apexgo/poly"
	"github.com/ajroetker/apexgo/poly/contrib/workerpool"
	"github.com/ajroetker/apexgo/poly/offload"
	"github.com/ajroetker/apexgo/poly/ops/area"
	"github.com/ajroetker/apexgo/poly/ops/selfintersect"
	"github.com/ajroetker/apexgo/poly/ops/translate"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/cpu"
)

// sizes returns a doubling sweep of polygon sizes from min to max,
// inclusive.
func sizes(min, max int) []int {
	var out []int
	for n := min; n <= max; n *= 2 {
		out = append(out, n)
	}
	return out
}

// timeRepeated runs fn warmup times (discarded) then reps times, timed,
// and returns the mean duration per call.
func timeRepeated(fn func(), warmup, reps int) time.Duration {
	for range warmup {
		fn()
	}
	start := time.Now()
	for range reps {
		fn()
	}
	return time.Since(start) / time.Duration(reps)
}

// RunAreaSweep times Area across a size sweep, reporting which dispatch
// level the public entry point actually chose at each size, alongside
// the individually-forced scalar and parallel kernels for comparison.
func RunAreaSweep(w io.Writer, minSize, maxSize, warmup, reps int) error {
	fmt.Fprintf(w, "%8s  %10s  %12s  %12s  %10s\n", "n", "dispatch", "auto", "scalar", "parallel")
	for _, n := range sizes(minSize, maxSize) {
		p := poly.NewPolygonFromSlice(gen.Nagon(n, 1_000_000))

		var level poly.DispatchLevel
		auto := timeRepeated(func() {
			_, level = area.Area(p)
		}, warmup, reps)
		scalar := timeRepeated(func() { area.Scalar(p) }, warmup, reps)
		parallel := timeRepeated(func() { area.Parallel(p) }, warmup, reps)

		fmt.Fprintf(w, "%8d  %10s  %12s  %12s  %10s\n", n, level, auto, scalar, parallel)
	}
	return nil
}

// RunTranslateSweep times the translate kernels across a size sweep. The
// public entry is always scalar (per the dispatch contract), so this
// also times the parallel and, when compiled in, offload kernels
// directly, staging host preparation and device dispatch through
// errgroup, which waits for both stages and returns the first error
// either one reports; a failing stage does not cancel the other.
func RunTranslateSweep(w io.Writer, minSize, maxSize, warmup, reps int) error {
	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	fmt.Fprintf(w, "%8s  %12s  %12s  %12s\n", "n", "scalar", "parallel", "offload")
	for _, n := range sizes(minSize, maxSize) {
		delta := poly.Point{X: 1, Y: -1}

		pScalar := poly.NewPolygonFromSlice(gen.Nagon(n, 1_000_000))
		scalar := timeRepeated(func() { translate.Scalar(pScalar, delta) }, warmup, reps)

		pParallel := poly.NewPolygonFromSlice(gen.Nagon(n, 1_000_000))
		parallel := timeRepeated(func() { translate.Parallel(pool, pParallel, delta) }, warmup, reps)

		offloadResult := "n/a"
		if offload.Available() {
			dur, err := timeOffloadTranslate(n, delta, warmup, reps)
			if err == nil {
				offloadResult = dur.String()
			} else {
				offloadResult = "error: " + err.Error()
			}
		}

		fmt.Fprintf(w, "%8d  %12s  %12s  %12s\n", n, scalar, parallel, offloadResult)
	}
	return nil
}

func timeOffloadTranslate(n int, delta poly.Point, warmup, reps int) (time.Duration, error) {
	backend, err := offload.New()
	if err != nil {
		return 0, err
	}
	p := poly.NewPolygonFromSlice(gen.Nagon(n, 1_000_000))

	run := func() error {
		var g errgroup.Group
		g.Go(func() error {
			return nil // host-side prep: p's vertices are already resident
		})
		g.Go(func() error {
			return translate.Offload(context.Background(), backend, p, delta)
		})
		return g.Wait()
	}
	for range warmup {
		if err := run(); err != nil {
			return 0, err
		}
	}
	start := time.Now()
	for range reps {
		if err := run(); err != nil {
			return 0, err
		}
	}
	return time.Since(start) / time.Duration(reps), nil
}

// RunSelfIntersectSweep times the self-intersection kernels across a
// size sweep using star-shaped polygons (every other vertex pulled in
// toward the center). The "found" column is the scalar kernel's count;
// these inputs are simple polygons, so it is 0 at every size.
func RunSelfIntersectSweep(w io.Writer, minSize, maxSize, warmup, reps int) error {
	pool := workerpool.New(runtime.GOMAXPROCS(0))
	defer pool.Close()

	fmt.Fprintf(w, "%8s  %12s  %12s  %8s\n", "n", "scalar", "parallel", "found")
	for _, n := range sizes(minSize, maxSize) {
		pts := starPolygon(n)
		found := 0
		scalar := timeRepeated(func() {
			found = len(selfintersect.Scalar(len(pts), func(i int) poly.Point { return pts[i] }))
		}, warmup, reps)
		parallel := timeRepeated(func() {
			selfintersect.Parallel(pool, len(pts), func(i int) poly.Point { return pts[i] })
		}, warmup, reps)

		fmt.Fprintf(w, "%8d  %12s  %12s  %8d\n", n, scalar, parallel, found)
	}
	return nil
}

// starPolygon returns an n-vertex star: even indices on the outer
// radius, odd indices pulled to the inner radius. Every vertex keeps the
// angle of the regular n-gon, so the vertices run around the origin in
// order and the star does not self-intersect.
func starPolygon(n int) []poly.Point {
	outer := gen.Nagon(n, 1_000_000)
	inner := gen.Nagon(n, 300_000)
	pts := make([]poly.Point, n)
	for i := range n {
		if i%2 == 0 {
			pts[i] = outer[i]
		} else {
			pts[i] = inner[i]
		}
	}
	return pts
}

// HostCapabilities returns a one-line diagnostic of host SIMD features,
// for interpreting sweep results — it is informational only, never an
// input to any dispatch decision in poly/.
func HostCapabilities() string {
	switch runtime.GOARCH {
	case "amd64":
		return fmt.Sprintf("amd64: avx=%v avx2=%v fma=%v avx512=%v",
			cpu.X86.HasAVX, cpu.X86.HasAVX2, cpu.X86.HasFMA, cpu.X86.HasAVX512)
	case "arm64":
		return fmt.Sprintf("arm64: asimd=%v sve=%v", cpu.ARM64.HasASIMD, cpu.ARM64.HasSVE)
	default:
		return fmt.Sprintf("%s: no known SIMD capability bits", runtime.GOARCH)
	}
}
