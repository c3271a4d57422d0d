package poly

import "slices"

// memberEntry describes one polygon living inside a Batch's shared vertex
// buffer: the offset where its vertices begin, how many of them are live,
// and how many slots are reserved to it.
type memberEntry struct {
	start, length, capacity int
	props                   Properties
}

// Batch stores many variable-length polygons in one pair of contiguous
// buffers: a vertex buffer shared by every member, and an index buffer
// describing each member's range within it. This lets a whole batch be
// transferred to a parallel or offload backend in one shot instead of
// scattering many small allocations across the heap.
//
// Members are ordered in the index buffer by the caller's logical order,
// independent of where their vertices physically sit in the vertex
// buffer. Growing a member past its reserved capacity relocates only that
// member (the "bump rule", see Batch.growMember); other members are never
// touched, which is what lets outstanding views into them stay valid.
type Batch struct {
	vertices []Point
	members  []memberEntry
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// Len returns the number of member polygons.
func (b *Batch) Len() int {
	return len(b.members)
}

// Empty reports whether the batch has no members.
func (b *Batch) Empty() bool {
	return len(b.members) == 0
}

// Member returns a view onto member i, without bounds checking beyond
// what a later access through the view performs.
func (b *Batch) Member(i int) *View {
	return &View{batch: b, member: i}
}

// MemberAt returns a view onto member i, or ErrOutOfRange if i is not a
// valid member index.
func (b *Batch) MemberAt(i int) (*View, error) {
	if i < 0 || i >= len(b.members) {
		return nil, outOfRangeError(i, len(b.members))
	}
	return &View{batch: b, member: i}, nil
}

// Front returns a view onto the first member. The batch must be non-empty.
func (b *Batch) Front() *View {
	return b.Member(0)
}

// Back returns a view onto the last member. The batch must be non-empty.
func (b *Batch) Back() *View {
	return b.Member(len(b.members) - 1)
}

// ReserveMembers ensures the batch can grow to n members without a further
// reallocation of the member index. It never shrinks capacity and never
// touches the vertex buffer.
func (b *Batch) ReserveMembers(n int) {
	if n <= cap(b.members) {
		return
	}
	grown := make([]memberEntry, len(b.members), growPolygonCapacity(cap(b.members), n))
	copy(grown, b.members)
	b.members = grown
}

// ShrinkToFitMembers may reduce the member index's capacity to its
// current length. It does not compact the vertex buffer; use ShrinkToFit
// for that.
func (b *Batch) ShrinkToFitMembers() {
	if cap(b.members) == len(b.members) {
		return
	}
	fitted := make([]memberEntry, len(b.members))
	copy(fitted, b.members)
	b.members = fitted
}

// Clear removes every member. Member index capacity is preserved; the
// vertex buffer is left untouched (every live vertex becomes a dead
// region, reclaimed only by ShrinkToFit).
func (b *Batch) Clear() {
	b.members = b.members[:0]
}

// AppendPolygon appends a new member holding a copy of p's vertices and
// returns its index.
func (b *Batch) AppendPolygon(p *Polygon) int {
	return b.appendVertices(p.Data())
}

// AppendEmpty appends a new member with zero length and zero capacity and
// returns its index. Its first growth will be relocated to the end of the
// vertex buffer like any other capacity-exhausted member.
func (b *Batch) AppendEmpty() int {
	return b.appendVertices(nil)
}

func (b *Batch) appendVertices(pts []Point) int {
	start := len(b.vertices)
	b.vertices = append(b.vertices, pts...)
	b.ReserveMembers(len(b.members) + 1)
	b.members = append(b.members, memberEntry{start: start, length: len(pts), capacity: len(pts)})
	return len(b.members) - 1
}

// InsertMember inserts new members, each a copy of the corresponding
// polygon in ps, starting at member index i. Subsequent members shift
// right in the member index; the vertex buffer is only ever appended to,
// never shifted.
func (b *Batch) InsertMember(i int, ps ...*Polygon) {
	if len(ps) == 0 {
		return
	}
	entries := make([]memberEntry, len(ps))
	for k, p := range ps {
		start := len(b.vertices)
		b.vertices = append(b.vertices, p.Data()...)
		entries[k] = memberEntry{start: start, length: p.Len(), capacity: p.Len()}
	}
	b.ReserveMembers(len(b.members) + len(entries))
	b.members = append(b.members, entries...)
	copy(b.members[i+len(entries):], b.members[i:len(b.members)-len(entries)])
	copy(b.members[i:i+len(entries)], entries)
}

// EraseMember removes member i, shifting subsequent members left in the
// member index. Its reserved region in the vertex buffer becomes dead,
// reclaimed only by ShrinkToFit. Returns the index of the member now at
// position i.
func (b *Batch) EraseMember(i int) int {
	return b.EraseMembers(i, i+1)
}

// EraseMembers removes members [i, j), shifting subsequent members left.
func (b *Batch) EraseMembers(i, j int) int {
	copy(b.members[i:], b.members[j:])
	b.members = b.members[:len(b.members)-(j-i)]
	return i
}

// PopBackMember removes the last member.
func (b *Batch) PopBackMember() {
	b.members = b.members[:len(b.members)-1]
}

// SwapMembers exchanges members i and j of the same batch in O(1): only
// their index-buffer entries are exchanged, not their vertices.
func (b *Batch) SwapMembers(i, j int) {
	b.members[i], b.members[j] = b.members[j], b.members[i]
}

// Swap exchanges the entire contents of b and other in O(1).
func (b *Batch) Swap(other *Batch) {
	b.vertices, other.vertices = other.vertices, b.vertices
	b.members, other.members = other.members, b.members
}

// Equal reports whether b and other have the same members, in the same
// order, each compared with ordered elementwise vertex equality.
func (b *Batch) Equal(other *Batch) bool {
	if len(b.members) != len(other.members) {
		return false
	}
	for i := range b.members {
		va, vb := b.Member(i), other.Member(i)
		if va.Len() != vb.Len() {
			return false
		}
		for k := range va.Len() {
			if !va.Index(k).Equal(vb.Index(k)) {
				return false
			}
		}
	}
	return true
}

// SizeSubelements returns vertex_extent, the current length of the shared
// vertex buffer (live and dead vertices together).
func (b *Batch) SizeSubelements() int {
	return len(b.vertices)
}

// DataSubelements returns the shared vertex buffer. The slice is valid
// until the next subelement reallocation (ReserveSubelements with a
// larger target, or any member growth that relocates into fresh space).
func (b *Batch) DataSubelements() []Point {
	return b.vertices
}

// ReserveSubelements ensures vertex_extent is at least n by relocating
// every live vertex into a fresh contiguous buffer, preserving each
// member's start ordering and granting each member capacity equal to its
// current length plus an even share of the requested growth.
func (b *Batch) ReserveSubelements(n int) {
	if n <= len(b.vertices) {
		return
	}
	liveTotal := 0
	for _, m := range b.members {
		liveTotal += m.length
	}
	extraShare := 0
	if len(b.members) > 0 {
		extraShare = (n - liveTotal) / len(b.members)
	}
	order := make([]int, len(b.members))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(x, y int) int { return b.members[x].start - b.members[y].start })
	fresh := make([]Point, 0, n)
	for _, i := range order {
		m := b.members[i]
		newStart := len(fresh)
		fresh = append(fresh, b.vertices[m.start:m.start+m.length]...)
		newCap := m.length + extraShare
		for k := m.length; k < newCap; k++ {
			fresh = append(fresh, Point{})
		}
		b.members[i].start = newStart
		b.members[i].capacity = newCap
	}
	if pad := n - len(fresh); pad > 0 {
		fresh = append(fresh, make([]Point, pad)...)
		if len(order) > 0 {
			b.members[order[len(order)-1]].capacity += pad
		}
	}
	b.vertices = fresh
}

// ShrinkToFit may compact the vertex buffer so that every member's
// capacity equals its length and members lie back-to-back in their
// current order, reclaiming every dead region.
func (b *Batch) ShrinkToFit() {
	fresh := make([]Point, 0, len(b.vertices))
	for i, m := range b.members {
		newStart := len(fresh)
		fresh = append(fresh, b.vertices[m.start:m.start+m.length]...)
		b.members[i].start = newStart
		b.members[i].capacity = m.length
	}
	b.vertices = fresh
}

// growMember implements the batch's bump rule for a member that must grow
// past its current capacity: if the member's reserved region happens to
// be the last one physically placed in the vertex buffer, it is extended
// in place; otherwise the member's live vertices are relocated to the end
// of the vertex buffer (growing it as needed), its start is rewritten,
// and it is granted a fresh capacity that at least doubles its length.
// Other members are never touched, so their starts, lengths, capacities —
// and any outstanding view's validity — survive this call unchanged.
func (b *Batch) growMember(idx, neededLen int) {
	m := &b.members[idx]
	if neededLen <= m.capacity {
		return
	}
	newCap := growViewCapacity(m.length, neededLen)
	if m.start+m.capacity == len(b.vertices) {
		b.vertices = append(b.vertices, make([]Point, newCap-m.capacity)...)
		m.capacity = newCap
		return
	}
	newStart := len(b.vertices)
	b.vertices = append(b.vertices, make([]Point, newCap)...)
	copy(b.vertices[newStart:newStart+m.length], b.vertices[m.start:m.start+m.length])
	m.start = newStart
	m.capacity = newCap
}
