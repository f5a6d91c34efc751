package dataframe

import "github.com/hnimtadd/gridframe/grid/geom"

// MinFrame returns the tightest frame enclosing every present entry.
//
// With zero entries there is no meaningful min/max to take, so this fails
// with ErrEmptyStore rather than fabricating a degenerate frame; callers
// that cannot rule out an empty store must check the error.
func (d *DataFrame[V]) MinFrame() (geom.Frame, error) {
	if len(d.cells) == 0 {
		return geom.Frame{}, ErrEmptyStore
	}
	first := true
	var minX, minY, maxX, maxY int
	for p := range d.cells {
		if first {
			minX, maxX = p.X, p.X
			minY, maxY = p.Y, p.Y
			first = false
			continue
		}
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return geom.Frame{
		Origin: geom.New(minX, minY),
		Corner: geom.New(maxX, maxY),
	}, nil
}

// MinFrameFromOrigin is MinFrame anchored at the declared origin: the
// corner is the tight corner, the origin is the store's own top-left. It
// answers "how far does data extend from the true top-left", not "where
// does the first sparse value happen to sit". Same empty-store behavior as
// MinFrame.
func (d *DataFrame[V]) MinFrameFromOrigin() (geom.Frame, error) {
	tight, err := d.MinFrame()
	if err != nil {
		return geom.Frame{}, err
	}
	return geom.Frame{Origin: d.bounds.Origin, Corner: tight.Corner}, nil
}
