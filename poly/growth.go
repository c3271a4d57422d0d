package poly

// growPolygonCapacity computes a new capacity at least as big as needed,
// growing geometrically from current by a factor of at least 1.5 so that
// repeated pushes are amortised O(1) while over-allocation stays bounded
// by a constant factor.
func growPolygonCapacity(current, needed int) int {
	if needed <= current {
		return current
	}
	next := current
	for next < needed {
		next = next + next/2 + 1 // next *= 1.5, plus one to make progress from 0/1
	}
	return next
}

// growViewCapacity computes the capacity granted to a batch member whose
// live vertices must be relocated to the end of the vertex buffer (the
// "bump rule" of the batch container). The new capacity at least doubles
// the member's current length, per the contiguous batch's bump rule.
func growViewCapacity(length, needed int) int {
	next := length * 2
	if next < 1 {
		next = 1
	}
	for next < needed {
		next *= 2
	}
	return next
}
