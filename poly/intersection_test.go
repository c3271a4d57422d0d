package poly

import "testing"

func TestIntersectSegmentsProperCrossing(t *testing.T) {
	loc, ok := IntersectSegments(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	if !ok {
		t.Fatal("expected crossing")
	}
	if loc != (Point{5, 5}) {
		t.Errorf("crossing location = %+v, want (5,5)", loc)
	}
}

func TestIntersectSegmentsDisjoint(t *testing.T) {
	_, ok := IntersectSegments(Point{0, 0}, Point{1, 0}, Point{0, 5}, Point{1, 5})
	if ok {
		t.Error("expected no intersection for parallel disjoint segments")
	}
}

func TestIntersectSegmentsTJunction(t *testing.T) {
	loc, ok := IntersectSegments(Point{0, 0}, Point{10, 0}, Point{5, 0}, Point{5, 5})
	if !ok {
		t.Fatal("expected T-junction intersection")
	}
	if loc != (Point{5, 0}) {
		t.Errorf("T-junction location = %+v, want (5,0)", loc)
	}
}

func TestIntersectSegmentsCollinearOverlap(t *testing.T) {
	_, ok := IntersectSegments(Point{0, 0}, Point{10, 0}, Point{5, 0}, Point{15, 0})
	if !ok {
		t.Error("expected collinear overlap to be reported")
	}
}

func TestIntersectSegmentsSharedEndpointOnly(t *testing.T) {
	loc, ok := IntersectSegments(Point{0, 0}, Point{10, 0}, Point{10, 0}, Point{10, 10})
	if !ok {
		t.Fatal("expected touching at shared endpoint")
	}
	if loc != (Point{10, 0}) {
		t.Errorf("touch location = %+v, want (10,0)", loc)
	}
}
