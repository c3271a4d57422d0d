package poly

import "iter"

// View is a cursor onto one member polygon living inside a Batch. It
// impersonates a standalone polygon container — the same Len/Index/
// PushBack/Insert/Erase surface as Polygon — while every vertex it
// exposes actually lives in the batch's shared vertex buffer.
//
// A View refers to its member by position in the batch's member index,
// so it shows whichever member sits at that position: erasing or
// inserting members at or before it, or SwapMembers, changes which
// polygon it shows. Growing *other* members, or pushing/inserting into
// *this* one, never invalidates a View held elsewhere, since growth
// relocates at most the member being grown (see Batch.growMember).
type View struct {
	batch  *Batch
	member int
}

func (v *View) entry() memberEntry {
	return v.batch.members[v.member]
}

// Len returns the number of live vertices in this member.
func (v *View) Len() int {
	return v.entry().length
}

// Cap returns the number of vertex slots reserved to this member.
func (v *View) Cap() int {
	return v.entry().capacity
}

// Empty reports whether this member has no vertices.
func (v *View) Empty() bool {
	return v.Len() == 0
}

// Index returns the vertex at i without bounds checking.
func (v *View) Index(i int) Point {
	e := v.entry()
	return v.batch.vertices[e.start+i]
}

// SetIndex overwrites the vertex at i without bounds checking. Since
// this changes the vertex sequence, it resets the member's properties
// cache.
func (v *View) SetIndex(i int, p Point) {
	e := v.entry()
	v.batch.vertices[e.start+i] = p
	v.resetProps()
}

// Properties returns this member's cached geometric facts.
func (v *View) Properties() Properties {
	return v.entry().props
}

// SetProperties replaces this member's cached geometric facts.
func (v *View) SetProperties(props Properties) {
	v.batch.members[v.member].props = props
}

func (v *View) resetProps() {
	v.batch.members[v.member].props = v.entry().props.Reset()
}

// At returns the vertex at i, or ErrOutOfRange if i is not a valid index.
func (v *View) At(i int) (Point, error) {
	e := v.entry()
	if i < 0 || i >= e.length {
		return Point{}, outOfRangeError(i, e.length)
	}
	return v.batch.vertices[e.start+i], nil
}

// Front returns the first vertex. The member must be non-empty.
func (v *View) Front() Point {
	return v.Index(0)
}

// Back returns the last vertex. The member must be non-empty.
func (v *View) Back() Point {
	return v.Index(v.Len() - 1)
}

// Data returns this member's live vertices as a slice sharing the
// batch's vertex buffer. The slice is valid until the next operation
// that relocates this member (a push/insert past capacity, Reserve past
// capacity, or any batch-level ReserveSubelements/ShrinkToFit).
func (v *View) Data() []Point {
	e := v.entry()
	return v.batch.vertices[e.start : e.start+e.length]
}

// All iterates forward over (index, vertex) pairs.
func (v *View) All() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		data := v.Data()
		for i, p := range data {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Backward iterates in reverse over (index, vertex) pairs.
func (v *View) Backward() iter.Seq2[int, Point] {
	return func(yield func(int, Point) bool) {
		data := v.Data()
		for i := len(data) - 1; i >= 0; i-- {
			if !yield(i, data[i]) {
				return
			}
		}
	}
}

// Reserve ensures this member can grow to n vertices without its next
// push or insert needing to relocate it further, subject to the batch's
// bump rule (Batch.growMember): if this member's region is not the last
// one physically placed in the vertex buffer, Reserve itself may
// relocate it once, to the end of the buffer.
func (v *View) Reserve(n int) {
	v.batch.growMember(v.member, n)
}

// ShrinkToFit may reduce this member's own capacity to its current
// length. It never moves the member and never compacts the batch's
// vertex buffer as a whole; use Batch.ShrinkToFit to reclaim dead
// regions across every member.
func (v *View) ShrinkToFit() {
	v.batch.members[v.member].capacity = v.entry().length
}

// Clear removes this member's vertices, preserving its capacity, and
// resets its properties cache.
func (v *View) Clear() {
	v.batch.members[v.member].length = 0
	v.resetProps()
}

// PushBack appends p, growing via the batch's bump rule if needed, and
// resets the member's properties cache.
func (v *View) PushBack(p Point) {
	e := v.entry()
	v.batch.growMember(v.member, e.length+1)
	e = v.entry()
	v.batch.vertices[e.start+e.length] = p
	v.batch.members[v.member].length++
	v.resetProps()
}

// PopBack removes and returns the last vertex, resetting the member's
// properties cache. The member must be non-empty. Shrinkage never moves
// the member.
func (v *View) PopBack() Point {
	p := v.Back()
	v.batch.members[v.member].length--
	v.resetProps()
	return p
}

// Resize truncates or extends this member to n vertices, filling any new
// vertices with the zero point.
func (v *View) Resize(n int) {
	v.ResizeFill(n, Point{})
}

// ResizeFill truncates or extends this member to n vertices, filling any
// new vertices with p.
func (v *View) ResizeFill(n int, p Point) {
	defer v.resetProps()
	e := v.entry()
	if n <= e.length {
		v.batch.members[v.member].length = n
		return
	}
	v.batch.growMember(v.member, n)
	e = v.entry()
	for i := e.length; i < n; i++ {
		v.batch.vertices[e.start+i] = p
	}
	v.batch.members[v.member].length = n
}

// Insert inserts ps starting at position i, shifting this member's
// subsequent vertices right by len(ps). Growth, if needed, follows the
// batch's bump rule.
func (v *View) Insert(i int, ps ...Point) {
	if len(ps) == 0 {
		return
	}
	e := v.entry()
	v.batch.growMember(v.member, e.length+len(ps))
	e = v.entry()
	data := v.batch.vertices[e.start : e.start+e.length+len(ps) : e.start+e.capacity]
	copy(data[i+len(ps):], data[i:e.length])
	copy(data[i:i+len(ps)], ps)
	v.batch.members[v.member].length += len(ps)
	v.resetProps()
}

// Erase removes the vertices in [i, j) of this member, shifting
// subsequent vertices left, and returns the index of the element now at
// position i.
func (v *View) Erase(i, j int) int {
	e := v.entry()
	data := v.batch.vertices[e.start : e.start+e.length]
	copy(data[i:], data[j:])
	v.batch.members[v.member].length -= j - i
	v.resetProps()
	return i
}

// EraseOne removes the single vertex at i and returns the index of the
// element after it.
func (v *View) EraseOne(i int) int {
	return v.Erase(i, i+1)
}

// Swap exchanges the contents of v and other. When both views belong to
// the same batch this is O(1): only their index-buffer entries are
// exchanged, not their vertices. Otherwise it falls back to an O(length)
// elementwise exchange.
func (v *View) Swap(other *View) {
	if v.batch == other.batch {
		v.batch.SwapMembers(v.member, other.member)
		return
	}
	v.swapElementwise(other)
}

func (v *View) swapElementwise(other *View) {
	defer v.resetProps()
	defer other.resetProps()
	va, vb := v.Data(), other.Data()
	n := min(len(va), len(vb))
	for i := range n {
		va[i], vb[i] = vb[i], va[i]
	}
	switch {
	case len(va) > n:
		tail := append([]Point(nil), va[n:]...)
		v.Resize(n)
		other.Reserve(len(vb) + len(tail))
		other.Insert(n, tail...)
	case len(vb) > n:
		tail := append([]Point(nil), vb[n:]...)
		other.Resize(n)
		v.Reserve(len(va) + len(tail))
		v.Insert(n, tail...)
	}
}

// SwapWithPolygon exchanges the contents of v and other in O(length),
// since a flat Polygon cannot participate in the batch's O(1) index swap.
func (v *View) SwapWithPolygon(other *Polygon) {
	defer v.resetProps()
	other.props = other.props.Reset()
	vLen, oLen := v.Len(), other.Len()
	vData := append([]Point(nil), v.Data()...)
	oData := append([]Point(nil), other.pts...)
	other.pts = other.pts[:0]
	other.Reserve(vLen)
	other.pts = append(other.pts, vData...)
	v.Resize(0)
	v.Reserve(oLen)
	v.Insert(0, oData...)
}

// EqualElements reports whether v and other hold the same vertices in
// the same order.
func (v *View) EqualElements(other *View) bool {
	va, vb := v.Data(), other.Data()
	if len(va) != len(vb) {
		return false
	}
	for i, p := range va {
		if !p.Equal(vb[i]) {
			return false
		}
	}
	return true
}

// Equal reports whether v and other describe the same closed polygonal
// chain, allowing a different rotational starting offset.
func (v *View) Equal(other *View) bool {
	va, vb := v.Data(), other.Data()
	if len(va) != len(vb) {
		return false
	}
	if len(va) == 0 {
		return true
	}
	n := len(vb)
	for offset := range n {
		match := true
		for i, p := range va {
			if !p.Equal(vb[(i+offset)%n]) {
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
