package geom

import "fmt"

var ErrInvalidBounds = fmt.Errorf("geom: corner must be >= origin on both axes")

// An axis-aligned rectangle over grid Points with inclusive bounds: a frame
// always covers at least its origin, so its area is never zero.
//
// Origin is the minimum corner (top-left), Corner the maximum (bottom-right).
// Construct through NewFrame so the Origin <= Corner invariant is checked up
// front rather than surfacing later as corrupted enumeration.
type Frame struct {
	Origin Point
	Corner Point
}

// NewFrame builds a frame from its two extreme points. A corner left of or
// above the origin is rejected with ErrInvalidBounds, not silently swapped,
// so that caller bugs show up at construction time.
func NewFrame(origin, corner Point) (Frame, error) {
	if corner.X < origin.X || corner.Y < origin.Y {
		return Frame{}, fmt.Errorf("%w: origin %v, corner %v", ErrInvalidBounds, origin, corner)
	}
	return Frame{Origin: origin, Corner: corner}, nil
}

// FrameAt returns the degenerate frame covering exactly one point.
func FrameAt(p Point) Frame {
	return Frame{Origin: p, Corner: p}
}

func (f Frame) Width() int {
	return f.Corner.X - f.Origin.X + 1
}

func (f Frame) Height() int {
	return f.Corner.Y - f.Origin.Y + 1
}

func (f Frame) Area() int {
	return f.Width() * f.Height()
}

// IsEmpty reports whether the frame denotes a single point. This is a
// semantic flag, not zero area: selection code uses it to tell "cursor
// only" apart from a dragged-out range. A frame never has zero area.
func (f Frame) IsEmpty() bool {
	return f.Origin == f.Corner
}

func (f Frame) ContainsPoint(p Point) bool {
	return p.X >= f.Origin.X && p.X <= f.Corner.X &&
		p.Y >= f.Origin.Y && p.Y <= f.Corner.Y
}

func (f Frame) ContainsPair(pair [2]int) bool {
	return f.ContainsPoint(FromPair(pair))
}

// ContainsFrame reports whether other lies entirely within f. Since both
// frames are normalized rectangles, checking the two extreme points is
// enough.
func (f Frame) ContainsFrame(other Frame) bool {
	return f.ContainsPoint(other.Origin) && f.ContainsPoint(other.Corner)
}

// Contains is the polymorphic boundary form of the containment checks.
// It accepts a Point, a *Point, a raw two-element coordinate pair ([2]int
// or []int), a Frame, or a *Frame, and reports containment. Anything else
// is simply not contained; this method never panics.
func (f Frame) Contains(target any) bool {
	switch t := target.(type) {
	case Point:
		return f.ContainsPoint(t)
	case *Point:
		return t != nil && f.ContainsPoint(*t)
	case [2]int:
		return f.ContainsPair(t)
	case []int:
		return len(t) == 2 && f.ContainsPoint(New(t[0], t[1]))
	case Frame:
		return f.ContainsFrame(t)
	case *Frame:
		return t != nil && f.ContainsFrame(*t)
	default:
		return false
	}
}

// Points returns every point the frame covers in row-major order: rows by
// ascending y, columns by ascending x within a row. Bulk load and extract
// on the data store address cells in exactly this order, so the ordering
// here is load-bearing.
//
// The slice is rebuilt on every call.
func (f Frame) Points() []Point {
	points := make([]Point, 0, f.Area())
	for y := f.Origin.Y; y <= f.Corner.Y; y++ {
		for x := f.Origin.X; x <= f.Corner.X; x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// ForEachRow invokes visit once per row, top to bottom, with the ordered
// coordinate pairs of that row.
func (f Frame) ForEachRow(visit func(row [][2]int)) {
	for y := f.Origin.Y; y <= f.Corner.Y; y++ {
		row := make([][2]int, 0, f.Width())
		for x := f.Origin.X; x <= f.Corner.X; x++ {
			row = append(row, [2]int{x, y})
		}
		visit(row)
	}
}

// MapRows walks f in the same row-major order as Frame.Points and collects
// transform's results grouped by row. It is a free function because Go
// methods cannot introduce type parameters.
func MapRows[T any](f Frame, transform func(p Point) T) [][]T {
	rows := make([][]T, 0, f.Height())
	for y := f.Origin.Y; y <= f.Corner.Y; y++ {
		row := make([]T, 0, f.Width())
		for x := f.Origin.X; x <= f.Corner.X; x++ {
			row = append(row, transform(Point{X: x, Y: y}))
		}
		rows = append(rows, row)
	}
	return rows
}

// Union returns the smallest frame enclosing both f and other. Renderers
// use this to accumulate several change notifications into one damaged
// region.
func (f Frame) Union(other Frame) Frame {
	return Frame{
		Origin: Point{X: min(f.Origin.X, other.Origin.X), Y: min(f.Origin.Y, other.Origin.Y)},
		Corner: Point{X: max(f.Corner.X, other.Corner.X), Y: max(f.Corner.Y, other.Corner.Y)},
	}
}

func (f Frame) String() string {
	return fmt.Sprintf("%v..%v", f.Origin, f.Corner)
}
