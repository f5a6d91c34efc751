package dataframe

import (
	"fmt"

	"github.com/hnimtadd/gridframe/grid/geom"
)

// normalizeLocation collapses the two location representations accepted at
// the API boundary, a geom.Point or a raw coordinate pair, into a Point.
// Everything downstream works on Points only.
func normalizeLocation(location any) (geom.Point, error) {
	switch loc := location.(type) {
	case geom.Point:
		return loc, nil
	case *geom.Point:
		if loc == nil {
			return geom.Point{}, fmt.Errorf("%w: nil point", ErrInvalidLocation)
		}
		return *loc, nil
	case [2]int:
		return geom.FromPair(loc), nil
	case []int:
		if len(loc) != 2 {
			return geom.Point{}, fmt.Errorf("%w: pair has %d elements", ErrInvalidLocation, len(loc))
		}
		return geom.New(loc[0], loc[1]), nil
	default:
		return geom.Point{}, fmt.Errorf("%w: %T", ErrInvalidLocation, location)
	}
}
