package poly

import "testing"

func square() *Polygon {
	return NewPolygonFromSlice([]Point{{0, 0}, {0, 1000}, {1000, 1000}, {1000, 0}})
}

func TestPolygonPushBackPopBack(t *testing.T) {
	p := NewPolygon()
	p.PushBack(Point{1, 2})
	p.PushBack(Point{3, 4})
	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}
	if got := p.PopBack(); got != (Point{3, 4}) {
		t.Errorf("PopBack = %+v", got)
	}
	if p.Len() != 1 {
		t.Fatalf("Len after pop = %d, want 1", p.Len())
	}
}

func TestPolygonAt(t *testing.T) {
	p := square()
	if _, err := p.At(10); err == nil {
		t.Error("expected out-of-range error")
	}
	v, err := p.At(1)
	if err != nil || v != (Point{0, 1000}) {
		t.Errorf("At(1) = %+v, %v", v, err)
	}
}

func TestPolygonInsertErase(t *testing.T) {
	p := NewPolygonFromSlice([]Point{{0, 0}, {3, 0}})
	p.Insert(1, Point{1, 0}, Point{2, 0})
	want := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}
	for i, v := range want {
		if p.Index(i) != v {
			t.Fatalf("after insert, index %d = %+v, want %+v", i, p.Index(i), v)
		}
	}
	next := p.Erase(1, 3)
	if next != 1 {
		t.Errorf("Erase returned %d, want 1", next)
	}
	want = []Point{{0, 0}, {3, 0}}
	if p.Len() != len(want) {
		t.Fatalf("after erase, Len = %d, want %d", p.Len(), len(want))
	}
	for i, v := range want {
		if p.Index(i) != v {
			t.Fatalf("after erase, index %d = %+v, want %+v", i, p.Index(i), v)
		}
	}
}

func TestPolygonResizeFill(t *testing.T) {
	p := NewPolygonFromSlice([]Point{{1, 1}})
	p.ResizeFill(3, Point{9, 9})
	if p.Len() != 3 || p.Index(1) != (Point{9, 9}) || p.Index(2) != (Point{9, 9}) {
		t.Fatalf("ResizeFill grow wrong: %+v", p.Data())
	}
	p.Resize(1)
	if p.Len() != 1 || p.Index(0) != (Point{1, 1}) {
		t.Fatalf("Resize shrink wrong: %+v", p.Data())
	}
}

func TestPolygonReserveNeverShrinks(t *testing.T) {
	p := NewPolygon()
	p.Reserve(100)
	cap1 := p.Cap()
	p.Reserve(10)
	if p.Cap() != cap1 {
		t.Errorf("Reserve shrank capacity: %d -> %d", cap1, p.Cap())
	}
}

func TestPolygonGrowthFactorAtLeastOnePointFive(t *testing.T) {
	p := NewPolygon()
	prevCap := 0
	for i := 0; i < 1000; i++ {
		before := p.Cap()
		p.PushBack(Point{Coordinate(i), 0})
		after := p.Cap()
		if after != before {
			if before > 0 && float64(after) < float64(before)*1.5-1e-9 {
				t.Fatalf("growth factor too small: %d -> %d", before, after)
			}
			prevCap = after
		}
	}
	_ = prevCap
}

func TestPolygonEqualRotationInvariant(t *testing.T) {
	a := NewPolygonFromSlice([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	b := NewPolygonFromSlice([]Point{{1, 1}, {0, 1}, {0, 0}, {1, 0}})
	if !a.Equal(b) {
		t.Error("expected rotation-invariant equality")
	}
	if a.EqualElements(b) {
		t.Error("expected ordered elementwise equality to fail for rotated sequence")
	}
}

func TestPolygonSwap(t *testing.T) {
	a := NewPolygonFromSlice([]Point{{1, 1}})
	b := NewPolygonFromSlice([]Point{{2, 2}, {3, 3}})
	a.Swap(b)
	if a.Len() != 2 || b.Len() != 1 {
		t.Fatalf("Swap lengths wrong: a=%d b=%d", a.Len(), b.Len())
	}
	if a.Index(0) != (Point{2, 2}) || b.Index(0) != (Point{1, 1}) {
		t.Fatalf("Swap contents wrong")
	}
}

func TestPolygonSetIndexResetsProperties(t *testing.T) {
	p := square()
	p.SetProperties(p.Properties().SetConvexity(ConvexityConvex))
	if p.Properties().Convexity() != ConvexityConvex {
		t.Fatal("setup: properties not stored")
	}
	p.SetIndex(0, Point{5, 5})
	if p.Properties().Convexity() != ConvexityUnknown {
		t.Error("SetIndex should reset the properties cache")
	}
}
