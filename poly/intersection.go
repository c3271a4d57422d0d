package poly

// SelfIntersection records one point where two edges of a polygon cross,
// touch, or overlap: either two non-adjacent edges, or two adjacent edges
// that overlap beyond their shared vertex. SegmentA and SegmentB are the
// indices of the two edges (edge i runs from vertex i to vertex
// (i+1) mod n), with SegmentA < SegmentB except for an overlap between
// the last edge and edge 0, which is recorded as (n-1, 0).
type SelfIntersection struct {
	Location           Point
	SegmentA, SegmentB int
}

// onSegment reports whether p, already known to be collinear with the
// line through a and b, falls within the closed bounding box of segment
// a-b — i.e. whether p lies on the segment itself rather than merely on
// its infinite extension.
func onSegment(p, a, b Point) bool {
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

// IntersectSegments reports whether the closed segments a1-a2 and b1-b2
// share at least one point, and if so a representative location: the
// exact crossing point for a proper crossing (rounded to the nearest
// lattice point, ties away from zero, via RoundDivide), or one of the
// coincident endpoints for a T-junction or a collinear overlap.
func IntersectSegments(a1, a2, b1, b2 Point) (Point, bool) {
	o1 := Orient(b1, a1, a2)
	o2 := Orient(b2, a1, a2)
	o3 := Orient(a1, b1, b2)
	o4 := Orient(a2, b1, b2)

	if o1 != o2 && o3 != o4 {
		return intersectionPoint(a1, a2, b1, b2), true
	}
	if o1 == 0 && onSegment(b1, a1, a2) {
		return b1, true
	}
	if o2 == 0 && onSegment(b2, a1, a2) {
		return b2, true
	}
	if o3 == 0 && onSegment(a1, b1, b2) {
		return a1, true
	}
	if o4 == 0 && onSegment(a2, b1, b2) {
		return a2, true
	}
	return Point{}, false
}

// intersectionPoint computes the crossing point of lines a1-a2 and
// b1-b2, known in advance to be non-parallel, as an exact rational and
// rounds each coordinate independently to the nearest integer (ties away
// from zero) via RoundDivide.
func intersectionPoint(a1, a2, b1, b2 Point) Point {
	da := a2.Sub(a1)
	db := b2.Sub(b1)
	denom := Cross(da, db)
	numT := Cross(b1.Sub(a1), db)
	x := RoundDivide(Area(a1.X)*denom+numT*Area(da.X), denom)
	y := RoundDivide(Area(a1.Y)*denom+numT*Area(da.Y), denom)
	return Point{X: Coordinate(x), Y: Coordinate(y)}
}
