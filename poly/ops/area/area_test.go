package area

import (
	"testing"

	"github.com/ajroetker/apexgo/poly"
)

// S1: unit-scaled square, area +1_000_000.
func TestScalarSquareArea(t *testing.T) {
	p := poly.NewPolygonFromSlice([]poly.Point{{0, 0}, {1000, 0}, {1000, 1000}, {0, 1000}})
	if got := Scalar(p); got != 1_000_000 {
		t.Errorf("Scalar area = %d, want 1000000", got)
	}
}

// S2: reversed square, area -1_000_000.
func TestScalarReversedSquareArea(t *testing.T) {
	p := poly.NewPolygonFromSlice([]poly.Point{{0, 0}, {0, 1000}, {1000, 1000}, {1000, 0}})
	if got := Scalar(p); got != -1_000_000 {
		t.Errorf("Scalar area = %d, want -1000000", got)
	}
}

func TestAreaDegenerateCases(t *testing.T) {
	point := poly.NewPolygonFromSlice([]poly.Point{{5, 5}})
	if got := Scalar(point); got != 0 {
		t.Errorf("single point area = %d, want 0", got)
	}
	line := poly.NewPolygonFromSlice([]poly.Point{{0, 0}, {10, 10}})
	if got := Scalar(line); got != 0 {
		t.Errorf("degenerate segment area = %d, want 0", got)
	}
}

// Invariant 4: area_scalar == area_parallel for every polygon.
func TestScalarParallelAgree(t *testing.T) {
	sizes := []int{2, 10, 399, 400, 1000, 3000, 4000}
	for _, n := range sizes {
		pts := make([]poly.Point, n)
		for i := range pts {
			pts[i] = poly.Point{X: poly.Coordinate(i % 97), Y: poly.Coordinate((i * 31) % 89)}
		}
		p := poly.NewPolygonFromSlice(pts)
		s := Scalar(p)
		par := Parallel(p)
		if s != par {
			t.Errorf("n=%d: scalar=%d parallel=%d disagree", n, s, par)
		}
	}
}

// Invariant 5: reversing negates the area; translation does not change it.
func TestAreaSignAndTranslationInvariance(t *testing.T) {
	p := poly.NewPolygonFromSlice([]poly.Point{{0, 0}, {0, 1000}, {1000, 1000}, {1000, 0}})
	forward := Scalar(p)

	reversed := poly.NewPolygon()
	for i := p.Len() - 1; i >= 0; i-- {
		reversed.PushBack(p.Index(i))
	}
	if Scalar(reversed) != -forward {
		t.Errorf("reversed area = %d, want %d", Scalar(reversed), -forward)
	}

	translated := p.Clone()
	data := translated.Data()
	for i, v := range data {
		data[i] = v.Add(poly.Point{X: 37, Y: -19})
	}
	if Scalar(translated) != forward {
		t.Errorf("translated area = %d, want %d", Scalar(translated), forward)
	}
}

// S4: batch area.
func TestBatchAreaScenario(t *testing.T) {
	b := poly.NewBatch()
	b.AppendPolygon(poly.NewPolygonFromSlice([]poly.Point{{0, 0}, {1000, 0}, {1000, 1000}, {0, 1000}}))
	b.AppendPolygon(poly.NewPolygonFromSlice([]poly.Point{{0, 0}, {0, 1000}, {1000, 1000}, {1000, 0}}))
	b.AppendPolygon(poly.NewPolygonFromSlice([]poly.Point{{5, 5}}))
	b.AppendPolygon(poly.NewPolygonFromSlice([]poly.Point{{0, 0}, {10, 10}}))

	got := BatchScalar(b)
	want := []poly.Area{1_000_000, -1_000_000, 0, 0}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("member %d area = %d, want %d", i, got[i], w)
		}
	}
}

// Invariant 6: batch area equals the elementwise polygon-form result.
func TestBatchAreaLinearity(t *testing.T) {
	members := [][]poly.Point{
		{{0, 0}, {0, 1000}, {1000, 1000}, {1000, 0}},
		{{0, 0}, {50, 0}, {50, 50}},
		{{1, 1}, {2, 2}, {3, 1}, {2, 0}},
	}
	b := poly.NewBatch()
	for _, m := range members {
		b.AppendPolygon(poly.NewPolygonFromSlice(m))
	}
	batchAreas := BatchScalar(b)
	for i, m := range members {
		want := Scalar(poly.NewPolygonFromSlice(m))
		if batchAreas[i] != want {
			t.Errorf("member %d: batch area %d != polygon-form area %d", i, batchAreas[i], want)
		}
	}
	parallelAreas := BatchParallel(b)
	for i := range members {
		if parallelAreas[i] != batchAreas[i] {
			t.Errorf("member %d: batch parallel %d != batch scalar %d", i, parallelAreas[i], batchAreas[i])
		}
	}
}

func TestAreaDispatchPicksScalarBelowThreshold(t *testing.T) {
	p := poly.NewPolygonFromSlice(make([]poly.Point, 10))
	_, level := Area(p)
	if level != poly.DispatchScalar {
		t.Errorf("level = %v, want Scalar", level)
	}
}

func TestAreaDispatchPicksParallelInMiddleRange(t *testing.T) {
	p := poly.NewPolygonFromSlice(make([]poly.Point, 1000))
	_, level := Area(p)
	if level != poly.DispatchParallel {
		t.Errorf("level = %v, want Parallel", level)
	}
}

func TestBatchAreaDispatchThreshold(t *testing.T) {
	small := poly.NewBatch()
	small.AppendPolygon(poly.NewPolygonFromSlice([]poly.Point{{0, 0}, {1, 0}, {1, 1}}))
	if _, level := BatchArea(small); level != poly.DispatchScalar {
		t.Errorf("small batch level = %v, want Scalar", level)
	}

	large := poly.NewBatch()
	for i := 0; i < 250; i++ {
		large.AppendPolygon(poly.NewPolygonFromSlice([]poly.Point{{0, 0}, {1, 0}, {1, 1}}))
	}
	if _, level := BatchArea(large); level != poly.DispatchParallel {
		t.Errorf("large batch level = %v, want Parallel", level)
	}
}
