package dataframe

import (
	"fmt"

	"github.com/hnimtadd/gridframe/grid/geom"
	"github.com/hnimtadd/gridframe/grid/opt"
)

// LoadFromArray writes a row-major block of values anchored at origin:
// row index is the y offset, column index the x offset. The block is
// validated as a whole before any cell is written, so a failure leaves the
// store untouched.
//
// Fails with ErrOutOfBounds when the origin, or the frame the block would
// occupy, falls outside the declared bounds, and with ErrRaggedRows when
// the rows are not all the same length. Absent values in the block delete
// the corresponding entries.
//
// The change callback fires once at the end with the loaded frame, not per
// cell, a bulk paste should not trigger a notification storm.
func (d *DataFrame[V]) LoadFromArray(rows [][]opt.Val[V], origin any) error {
	at, err := normalizeLocation(origin)
	if err != nil {
		return err
	}
	if !d.bounds.ContainsPoint(at) {
		return fmt.Errorf("%w: origin %v not in %v", ErrOutOfBounds, at, d.bounds)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		// Nothing to write, nothing to notify.
		return nil
	}
	// First row's length is the authoritative column count.
	cols := len(rows[0])
	for y, row := range rows {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedRows, y, len(row), cols)
		}
	}
	region := geom.Frame{
		Origin: at,
		Corner: geom.New(at.X+cols-1, at.Y+len(rows)-1),
	}
	if !d.bounds.ContainsFrame(region) {
		return fmt.Errorf("%w: region %v not in %v", ErrOutOfBounds, region, d.bounds)
	}
	for y, row := range rows {
		for x, value := range row {
			d.put(geom.New(at.X+x, at.Y+y), value)
		}
	}
	d.notify(region)
	return nil
}

// DataArrayForFrame extracts the values covered by frame as a row-major
// row-grouped slice, opt.None where a cell is unset. The addressing is the
// exact inverse of LoadFromArray: loading the result back at frame.Origin
// reproduces the region.
//
// Fails with ErrNotContained when frame is not contained in the declared
// bounds.
func (d *DataFrame[V]) DataArrayForFrame(frame geom.Frame) ([][]opt.Val[V], error) {
	if !d.bounds.ContainsFrame(frame) {
		return nil, fmt.Errorf("%w: %v not in %v", ErrNotContained, frame, d.bounds)
	}
	return geom.MapRows(frame, func(p geom.Point) opt.Val[V] {
		if v, ok := d.cells[p]; ok {
			return opt.Some(v)
		}
		return opt.None[V]()
	}), nil
}

// ToArray extracts the written extent of the store: over MinFrame when
// strict, otherwise over MinFrameFromOrigin ("how far data reaches from
// the declared top-left"). Fails with ErrEmptyStore when nothing has been
// written.
func (d *DataFrame[V]) ToArray(strict bool) ([][]opt.Val[V], error) {
	var (
		frame geom.Frame
		err   error
	)
	if strict {
		frame, err = d.MinFrame()
	} else {
		frame, err = d.MinFrameFromOrigin()
	}
	if err != nil {
		return nil, err
	}
	return d.DataArrayForFrame(frame)
}

// HasCompleteDataForFrame reports whether every point in frame holds a
// present value, stopping at the first gap. Fails with ErrNotContained
// when frame is not contained in the declared bounds.
func (d *DataFrame[V]) HasCompleteDataForFrame(frame geom.Frame) (bool, error) {
	if !d.bounds.ContainsFrame(frame) {
		return false, fmt.Errorf("%w: %v not in %v", ErrNotContained, frame, d.bounds)
	}
	for y := frame.Origin.Y; y <= frame.Corner.Y; y++ {
		for x := frame.Origin.X; x <= frame.Corner.X; x++ {
			if _, ok := d.cells[geom.New(x, y)]; !ok {
				return false, nil
			}
		}
	}
	return true, nil
}
