package geom

import "fmt"

// An x/y position on the grid. Points are plain values: construct them
// freely, compare them with ==, never mutate one in place.
type Point struct {
	X int
	Y int
}

func New(x, y int) Point {
	return Point{X: x, Y: y}
}

// FromPair builds a Point from a raw [x, y] coordinate pair. Callers at the
// API boundary may hand us either representation, pairs are normalized to
// Points immediately.
func FromPair(pair [2]int) Point {
	return Point{X: pair[0], Y: pair[1]}
}

func (p Point) Pair() [2]int {
	return [2]int{p.X, p.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
