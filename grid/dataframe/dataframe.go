// Package dataframe implements the sparse cell store backing a grid
// widget: a fixed rectangular bounds (a geom.Frame) plus a map from point
// to value. Cells that were never written, or were written as absent, take
// no space; everything else is addressable through the frame's row-major
// coordinate scheme.
package dataframe

import (
	"fmt"

	"github.com/hnimtadd/gridframe/grid/geom"
	"github.com/hnimtadd/gridframe/grid/opt"
	"github.com/hnimtadd/gridframe/grid/utils"
)

var (
	ErrInvalidLocation = fmt.Errorf("dataframe: location is neither a point nor a coordinate pair")
	ErrOutOfBounds     = fmt.Errorf("dataframe: location outside declared bounds")
	ErrNotContained    = fmt.Errorf("dataframe: frame not contained in declared bounds")
	ErrEmptyStore      = fmt.Errorf("dataframe: no entries present")
	ErrRaggedRows      = fmt.Errorf("dataframe: input rows have unequal lengths")
)

// ChangeFunc receives the region affected by a mutation. Single-cell
// writes pass the degenerate frame of the written point; bulk operations
// pass the full region they touched, once, after all writes landed.
//
// The callback runs synchronously on the mutating goroutine. The store
// does not guard against a callback re-entering the same DataFrame; an
// owner that does that must handle its own reentrancy.
type ChangeFunc func(region geom.Frame)

// DataFrame is the sparse store. Bounds are fixed at construction and
// never change; only the cell map mutates. It is owned and mutated by one
// logical owner at a time, there is no internal locking.
type DataFrame[V any] struct {
	bounds geom.Frame

	// The present cells. An entry exists iff a non-absent value was last
	// written at that point; absent writes delete rather than storing a
	// marker.
	cells map[geom.Point]V

	// At most one subscriber, last write wins.
	onChange ChangeFunc
}

func New[V any](bounds geom.Frame) *DataFrame[V] {
	return &DataFrame[V]{
		bounds: bounds,
		cells:  make(map[geom.Point]V),
	}
}

// Bounds returns the frame limiting which coordinates reads accept.
func (d *DataFrame[V]) Bounds() geom.Frame {
	return d.bounds
}

func (d *DataFrame[V]) Area() int {
	return d.bounds.Area()
}

// Contains forwards to the bounds frame; see geom.Frame.Contains for the
// accepted target shapes.
func (d *DataFrame[V]) Contains(target any) bool {
	return d.bounds.Contains(target)
}

// SetOnChange registers the single change subscriber. Passing nil
// unregisters. There is no queue: whoever registers last is the one
// notified.
func (d *DataFrame[V]) SetOnChange(fn ChangeFunc) {
	d.onChange = fn
}

// PutAt writes a value at the given location (a geom.Point or a raw
// coordinate pair). Writing opt.None deletes any existing entry.
//
// PutAt deliberately performs no bounds check, asymmetrically to GetAt:
// bulk loads validate a whole region once instead of per cell, and owners
// may stage cells before their bounds are final. An out-of-bounds entry is
// stored but can never be read back through GetAt.
//
// The registered callback, if any, fires once after the mutation with the
// degenerate frame of the written point.
func (d *DataFrame[V]) PutAt(location any, value opt.Val[V]) error {
	p, err := normalizeLocation(location)
	if err != nil {
		return err
	}
	d.put(p, value)
	d.notify(geom.FrameAt(p))
	return nil
}

// put is the raw non-notifying write path shared by PutAt and the bulk
// loader.
func (d *DataFrame[V]) put(p geom.Point, value opt.Val[V]) {
	v, present := value.Get()
	if !present {
		delete(d.cells, p)
		return
	}
	d.cells[p] = v
}

// GetAt returns the value stored at the location, or opt.None for an
// in-bounds location with no entry. Unlike PutAt this does bounds-check:
// ErrOutOfBounds for a location outside the declared bounds,
// ErrInvalidLocation for an argument that is neither a point nor a pair.
// GetAt never mutates the store.
func (d *DataFrame[V]) GetAt(location any) (opt.Val[V], error) {
	p, err := normalizeLocation(location)
	if err != nil {
		return opt.None[V](), err
	}
	if !d.bounds.ContainsPoint(p) {
		return opt.None[V](), fmt.Errorf("%w: %v not in %v", ErrOutOfBounds, p, d.bounds)
	}
	v, ok := d.cells[p]
	if !ok {
		return opt.None[V](), nil
	}
	return opt.Some(v), nil
}

// Clear removes every entry and notifies once with the full declared
// bounds: "everything in this region may have changed", not a per-cell
// signal.
func (d *DataFrame[V]) Clear() {
	clear(d.cells)
	d.notify(d.bounds)
}

// Len is the number of present entries.
func (d *DataFrame[V]) Len() int {
	return len(d.cells)
}

// IsFull reports whether every cell inside the bounds holds a value. This
// is a cardinality comparison against Area, not a per-point scan; it
// relies on readers only ever observing in-bounds keys.
func (d *DataFrame[V]) IsFull() bool {
	return len(d.cells) == d.bounds.Area()
}

// AssertIntegrity panics if the store is in an inconsistent state. No-op
// cost in the happy path; used by tests and debugging, never as input
// validation.
func (d *DataFrame[V]) AssertIntegrity() {
	utils.Assert(d.cells != nil, "dataframe integrity violation: nil cell map")
	utils.Assertf(
		d.bounds.Corner.X >= d.bounds.Origin.X && d.bounds.Corner.Y >= d.bounds.Origin.Y,
		"dataframe integrity violation: malformed bounds %v", d.bounds,
	)
}

func (d *DataFrame[V]) notify(region geom.Frame) {
	if d.onChange != nil {
		d.onChange(region)
	}
}
