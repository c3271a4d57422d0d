package poly

import "iter"

// Polygon is an ordered, closed chain of vertices: edge i connects vertex i
// to vertex (i+1) mod Len(). The sequence may be empty, a single point, a
// degenerate segment, or self-intersecting — Polygon imposes no simplicity
// constraint and no normalisation of winding.
//
// Polygon owns its vertex storage and grows it geometrically (factor >=
// 1.5) as elements are appended, amortising reallocation the same way a
// Go slice would, but with an explicit policy so the growth factor is a
// documented guarantee rather than an implementation accident.
type Polygon struct {
	pts   []Point
	props Properties
}

// NewPolygon returns an empty polygon.
func NewPolygon() *Polygon {
	return &Polygon{}
}

// NewPolygonFilled returns a polygon of n copies of v.
func NewPolygonFilled(n int, v Point) *Polygon {
	p := &Polygon{pts: make([]Point, n)}
	for i := range p.pts {
		p.pts[i] = v
	}
	return p
}

// NewPolygonFromSlice returns a polygon holding a deep copy of pts.
func NewPolygonFromSlice(pts []Point) *Polygon {
	p := &Polygon{pts: make([]Point, len(pts))}
	copy(p.pts, pts)
	return p
}

// Clone returns a deep copy of p.
func (p *Polygon) Clone() *Polygon {
	return NewPolygonFromSlice(p.pts)
}

// Len returns the number of live vertices.
func (p *Polygon) Len() int {
	return len(p.pts)
}

// Cap returns the number of vertex slots currently reserved.
func (p *Polygon) Cap() int {
	return cap(p.pts)
}

// Empty reports whether the polygon has no vertices.
func (p *Polygon) Empty() bool {
	return len(p.pts) == 0
}

// Index returns the vertex at i without bounds checking beyond what Go's
// own slice indexing performs (it panics on an out-of-range index, the
// same as indexing the underlying array directly).
func (p *Polygon) Index(i int) Point {
	return p.pts[i]
}

// SetIndex overwrites the vertex at i without bounds checking. Since this
// changes the vertex sequence, it resets the properties cache.
func (p *Polygon) SetIndex(i int, v Point) {
	p.pts[i] = v
	p.props = p.props.Reset()
}

// Properties returns the polygon's cached geometric facts.
func (p *Polygon) Properties() Properties {
	return p.props
}

// SetProperties replaces the polygon's cached geometric facts. Callers
// computing convexity, self-intersection, or orientation should store
// the result here rather than recomputing it on every query.
func (p *Polygon) SetProperties(props Properties) {
	p.props = props
}

// At returns the vertex at i, or ErrOutOfRange if i is not a valid index.
func (p *Polygon) At(i int) (Point, error) {
	if i < 0 || i >= len(p.pts) {
		return Point{}, outOfRangeError(i, len(p.pts))
	}
	return p.pts[i], nil
}

// Front returns the first vertex. The polygon must be non-empty; Front
// panics otherwise, mirroring the documented precondition that callers
// must check emptiness themselves before calling it.
func (p *Polygon) Front() Point {
	return p.pts[0]
}

// Back returns the last vertex. The polygon must be non-empty; Back
// panics otherwise.
func (p *Polygon) Back() Point {
	return p.pts[len(p.pts)-1]
}

// Data returns the live vertices as a slice sharing the polygon's backing
// array. The slice is valid until the next operation that reallocates
// (any push/insert past capacity, Reserve, or ShrinkToFit).
func (p *Polygon) Data() []Point {
	return p.pts
}

// All iterates forward over (index, vertex) pairs.
func (p *Polygon) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i, v := range p.pts {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward iterates in reverse over (index, vertex) pairs.
func (p *Polygon) Backward() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		for i := len(p.pts) - 1; i >= 0; i-- {
			if !yield(i, p.pts[i]) {
				return
			}
		}
	}
}

// Reserve ensures the polygon can grow to n vertices without a further
// reallocation. It never shrinks capacity.
func (p *Polygon) Reserve(n int) {
	if n <= cap(p.pts) {
		return
	}
	grown := make([]Point, len(p.pts), growPolygonCapacity(cap(p.pts), n))
	copy(grown, p.pts)
	p.pts = grown
}

// ShrinkToFit may reduce capacity to the current length.
func (p *Polygon) ShrinkToFit() {
	if cap(p.pts) == len(p.pts) {
		return
	}
	fitted := make([]Point, len(p.pts))
	copy(fitted, p.pts)
	p.pts = fitted
}

// Clear removes all vertices, preserving capacity, and resets the
// properties cache.
func (p *Polygon) Clear() {
	p.pts = p.pts[:0]
	p.props = p.props.Reset()
}

// PushBack appends v, growing geometrically if needed, and resets the
// properties cache.
func (p *Polygon) PushBack(v Point) {
	p.Reserve(len(p.pts) + 1)
	p.pts = append(p.pts, v)
	p.props = p.props.Reset()
}

// PopBack removes and returns the last vertex, resetting the properties
// cache. The polygon must be non-empty.
func (p *Polygon) PopBack() Point {
	v := p.pts[len(p.pts)-1]
	p.pts = p.pts[:len(p.pts)-1]
	p.props = p.props.Reset()
	return v
}

// Resize truncates or extends the polygon to n vertices, filling any new
// vertices with the zero point.
func (p *Polygon) Resize(n int) {
	p.ResizeFill(n, Point{})
}

// ResizeFill truncates or extends the polygon to n vertices, filling any
// new vertices with v.
func (p *Polygon) ResizeFill(n int, v Point) {
	defer func() { p.props = p.props.Reset() }()
	if n <= len(p.pts) {
		p.pts = p.pts[:n]
		return
	}
	p.Reserve(n)
	for len(p.pts) < n {
		p.pts = append(p.pts, v)
	}
}

// Insert inserts vs starting at position i, shifting subsequent vertices
// right by len(vs).
func (p *Polygon) Insert(i int, vs ...Point) {
	if len(vs) == 0 {
		return
	}
	p.Reserve(len(p.pts) + len(vs))
	p.pts = append(p.pts, vs...)  // grow the slice; placeholder tail values
	copy(p.pts[i+len(vs):], p.pts[i:len(p.pts)-len(vs)])
	copy(p.pts[i:i+len(vs)], vs)
	p.props = p.props.Reset()
}

// Erase removes the vertices in [i, j), shifting subsequent vertices left,
// and returns the index of the element now at position i (the element
// after the erased range, or Len() if the range reached the end).
func (p *Polygon) Erase(i, j int) int {
	copy(p.pts[i:], p.pts[j:])
	p.pts = p.pts[:len(p.pts)-(j-i)]
	p.props = p.props.Reset()
	return i
}

// EraseOne removes the single vertex at i and returns the index of the
// element after it.
func (p *Polygon) EraseOne(i int) int {
	return p.Erase(i, i+1)
}

// Swap exchanges the contents of p and other in O(1), including each
// one's cached properties, which describe the vertex data that just
// changed hands.
func (p *Polygon) Swap(other *Polygon) {
	p.pts, other.pts = other.pts, p.pts
	p.props, other.props = other.props, p.props
}

// EqualElements reports whether p and other hold the same vertices in the
// same order — the ordered elementwise equality required by the generic
// container contract (used e.g. to compare a batch view against a flat
// polygon driven through the same operations).
func (p *Polygon) EqualElements(other *Polygon) bool {
	if len(p.pts) != len(other.pts) {
		return false
	}
	for i, v := range p.pts {
		if !v.Equal(other.pts[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether p and other describe the same closed polygonal
// chain, allowing the two vertex sequences to start at different offsets
// around the contour (rotation-invariant comparison).
func (p *Polygon) Equal(other *Polygon) bool {
	if len(p.pts) != len(other.pts) {
		return false
	}
	if len(p.pts) == 0 {
		return true
	}
	n := len(other.pts)
	for offset := range n {
		match := true
		for i, v := range p.pts {
			if !v.Equal(other.pts[(i+offset)%n]) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Less gives polygons a lexicographic order over their vertex sequences,
// with a shorter polygon ordering before a longer one that shares its
// prefix.
func (p *Polygon) Less(other *Polygon) bool {
	n := min(len(p.pts), len(other.pts))
	for i := range n {
		if p.pts[i].Equal(other.pts[i]) {
			continue
		}
		return p.pts[i].Less(other.pts[i])
	}
	return len(p.pts) < len(other.pts)
}
