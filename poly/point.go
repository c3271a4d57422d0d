package poly

// Point is a pair of coordinates in 2D space. Points are plain data and
// trivially copyable.
type Point struct {
	X, Y Coordinate
}

// Add returns the componentwise sum of p and other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the componentwise difference of p and other.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Equal reports whether p and other have identical coordinates.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

// Less gives points a lexicographic (x-major) order.
func (p Point) Less(other Point) bool {
	if p.X != other.X {
		return p.X < other.X
	}
	return p.Y < other.Y
}

// Cross computes the 2D cross product a x b = a.X*b.Y - a.Y*b.X, with both
// factors promoted to Area before multiplying so the product cannot
// overflow a 32-bit register.
func Cross(a, b Point) Area {
	return Area(a.X)*Area(b.Y) - Area(a.Y)*Area(b.X)
}

// Orient evaluates the orientation of point p relative to the directed
// line from a to b: orient(p, a, b) = sign((b.X-a.X)*(p.Y-a.Y) -
// (b.Y-a.Y)*(p.X-a.X)). It returns -1, 0 or +1.
func Orient(p, a, b Point) int {
	value := Area(b.X-a.X)*Area(p.Y-a.Y) - Area(b.Y-a.Y)*Area(p.X-a.X)
	switch {
	case value > 0:
		return 1
	case value < 0:
		return -1
	default:
		return 0
	}
}
