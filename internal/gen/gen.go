// Package gen synthesises regular n-gons for benchmarks and examples,
// at a scale the core library never needs a floating-point vertex for:
// every vertex is rotated in float64 and rounded back to the lattice
// with poly.RoundDivide, rather than left as a float.
package gen

import (
	"math"

	"github.com/ajroetker/apexgo/poly"
)

// Nagon returns the n vertices of a regular n-gon centered at the
// origin with the given radius, starting at angle zero and proceeding
// counter-clockwise. It returns nil if n < 3.
func Nagon(n int, radius poly.Coordinate) []poly.Point {
	if n < 3 {
		return nil
	}
	pts := make([]poly.Point, n)
	step := 2 * math.Pi / float64(n)
	r := float64(radius)
	for i := range n {
		theta := step * float64(i)
		pts[i] = poly.Point{
			X: roundCoord(r * math.Cos(theta)),
			Y: roundCoord(r * math.Sin(theta)),
		}
	}
	return pts
}

// roundCoord rounds a float64 to the nearest Coordinate, ties away from
// zero, via the same integer-only rounding rule the rest of the library
// uses for its own roundings — scaled by a power of two and fed through
// RoundDivide so the only place this package touches a non-integer is
// the unavoidable trigonometry above.
func roundCoord(f float64) poly.Coordinate {
	const scale = 1 << 16
	scaled := poly.Area(math.Round(f * scale)) // nearest int64 at fixed precision
	return poly.Coordinate(poly.RoundDivide(scaled, scale))
}

// NagonBatch appends n-gons of num[i] vertices and radius rad[i] as
// successive members of b.
func NagonBatch(b *poly.Batch, num []int, rad []poly.Coordinate) {
	for i, n := range num {
		p := poly.NewPolygonFromSlice(Nagon(n, rad[i]))
		b.AppendPolygon(p)
	}
}
