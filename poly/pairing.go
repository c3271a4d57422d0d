package poly

import "math"

// PairCount returns the number of unique unordered pairs that can be drawn
// from n elements. When includeAdjacent is false, pairs of adjacent
// elements (and the wrap-around pair formed by element 0 and element n-1)
// are excluded.
func PairCount(n int, includeAdjacent bool) int {
	if n < 2 {
		return 0
	}
	if includeAdjacent {
		return n * (n - 1) / 2
	}
	if count := n * (n - 3) / 2; count > 0 {
		return count
	}
	return 0
}

// EnumeratePair returns the k-th unordered pair (a, b), a < b, out of the
// count(n, includeAdjacent) pairs over indices 0..n-1, under a fixed
// bijection. The bijection is total over 0 <= k < PairCount(n,
// includeAdjacent), never repeats a pair, and covers every eligible pair
// exactly once.
//
// The bijection enumerates pairs (a, b) with a < b in row-major order over
// a, i.e. all pairs with a=0 first, then all pairs with a=1, and so on.
// With adjacent pairs included, the row for a given k is found with the
// closed-form inverse of the triangular numbers. With adjacent pairs
// excluded, the rows are walked in order, subtracting each row's width
// from k until k falls inside a row, so that lookup takes O(n) steps.
func EnumeratePair(n, k int, includeAdjacent bool) (a, b int) {
	if includeAdjacent {
		return enumerateTriangular(n, k)
	}
	// Excluding adjacency removes, from each row a, the pair (a, a+1) and,
	// for a==0 only, the wrap-around pair (0, n-1). Map k back onto the
	// "include adjacent" index space by inserting those skipped slots.
	for a = 0; a < n; a++ {
		width := n - a - 1 // pairs (a, a+1) .. (a, n-1) in the adjacent-inclusive row
		rowWidth := width - 1
		if a == 0 {
			rowWidth-- // also exclude (0, n-1)
		}
		if rowWidth < 0 {
			rowWidth = 0
		}
		if k < rowWidth {
			// b starts at a+2 (skipping the excluded adjacent pair (a,a+1));
			// for a==0, rowWidth was already shrunk by one for the excluded
			// wrap-around pair (0,n-1), so b never reaches n-1 here.
			return a, a + 2 + k
		}
		k -= rowWidth
	}
	panic("poly: EnumeratePair: k out of range")
}

// enumerateTriangular enumerates all unordered pairs (a, b), a < b, over
// 0..n-1 in row-major order over a.
func enumerateTriangular(n, k int) (a, b int) {
	// Row a has (n-1-a) entries, starting at cumulative offset
	// a*(n-1) - a*(a-1)/2. Solve for the largest a such that the cumulative
	// offset is <= k, via the quadratic inverse, then correct for rounding.
	nf := float64(n)
	kf := float64(k)
	a = int(nf - 2 - math.Floor((math.Sqrt(4*nf*(nf-1)-8*kf-7)-1)/2))
	if a < 0 {
		a = 0
	}
	for rowStart(n, a) > k {
		a--
	}
	for a+1 < n && rowStart(n, a+1) <= k {
		a++
	}
	b = a + 1 + (k - rowStart(n, a))
	return a, b
}

// rowStart returns the cumulative number of pairs (a', b) with a' < a, in
// the row-major enumeration of all pairs over 0..n-1.
func rowStart(n, a int) int {
	// sum_{a'=0}^{a-1} (n-1-a') = a*(n-1) - a*(a-1)/2
	return a*(n-1) - a*(a-1)/2
}
