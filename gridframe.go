// Package gridframe ties the sparse cell store to the owner side of a
// grid widget: it holds the store, subscribes to its change notifications,
// and accumulates them into a single damaged region a renderer can pick up
// on its next pass.
package gridframe

import (
	"github.com/hnimtadd/gridframe/grid/dataframe"
	"github.com/hnimtadd/gridframe/grid/geom"
	"github.com/hnimtadd/gridframe/grid/opt"
	"github.com/hnimtadd/gridframe/logger"
)

type Grid[V any] struct {
	// The abstract grid state. This is renderer-agnostic, it just stores
	// which cells hold which values inside fixed bounds.
	data *dataframe.DataFrame[V]

	// The damaged region accumulated since the last TakeDirty, the union
	// of every change notification received.
	dirty    geom.Frame
	hasDirty bool

	logger logger.Logger
}

type Options struct {
	Rows, Cols int
	Logger     logger.Logger
}

// NewGrid builds a grid with bounds (0,0) through (cols-1, rows-1). Fewer
// than one row or column fails with geom.ErrInvalidBounds.
func NewGrid[V any](opts Options) (*Grid[V], error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	bounds, err := geom.NewFrame(geom.New(0, 0), geom.New(opts.Cols-1, opts.Rows-1))
	if err != nil {
		return nil, err
	}
	g := &Grid[V]{
		data:   dataframe.New[V](bounds),
		logger: log,
	}
	g.data.SetOnChange(g.markDirty)
	return g, nil
}

func (g *Grid[V]) markDirty(region geom.Frame) {
	g.logger.Debug("grid region changed", "region", region.String())
	if g.hasDirty {
		g.dirty = g.dirty.Union(region)
		return
	}
	g.dirty = region
	g.hasDirty = true
}

// TakeDirty returns the region damaged since the previous call and resets
// it. The second return is false when nothing changed.
func (g *Grid[V]) TakeDirty() (geom.Frame, bool) {
	if !g.hasDirty {
		return geom.Frame{}, false
	}
	region := g.dirty
	g.dirty = geom.Frame{}
	g.hasDirty = false
	return region, true
}

func (g *Grid[V]) Bounds() geom.Frame {
	return g.data.Bounds()
}

// Data exposes the underlying store for callers that need the full
// surface (bulk loads with absent cells, min frames, completeness checks).
func (g *Grid[V]) Data() *dataframe.DataFrame[V] {
	return g.data
}

func (g *Grid[V]) SetCell(x, y int, v V) {
	// A typed point can never be an invalid location.
	_ = g.data.PutAt(geom.New(x, y), opt.Some(v))
}

// ClearCell removes the entry at (x, y), if any.
func (g *Grid[V]) ClearCell(x, y int) {
	_ = g.data.PutAt(geom.New(x, y), opt.None[V]())
}

func (g *Grid[V]) Cell(x, y int) (opt.Val[V], error) {
	return g.data.GetAt(geom.New(x, y))
}

// LoadRows bulk-writes a rectangular block of plain values anchored at
// (atX, atY), with the usual validate-then-write semantics of the store.
func (g *Grid[V]) LoadRows(rows [][]V, atX, atY int) error {
	wrapped := make([][]opt.Val[V], len(rows))
	for y, row := range rows {
		wrapped[y] = make([]opt.Val[V], len(row))
		for x, v := range row {
			wrapped[y][x] = opt.Some(v)
		}
	}
	return g.data.LoadFromArray(wrapped, geom.New(atX, atY))
}

// Rows extracts the written extent, see DataFrame.ToArray.
func (g *Grid[V]) Rows(strict bool) ([][]opt.Val[V], error) {
	return g.data.ToArray(strict)
}

func (g *Grid[V]) Clear() {
	g.data.Clear()
}

// Checksum of the current contents, for cheap change detection across a
// resync.
func (g *Grid[V]) Checksum() (uint64, error) {
	return g.data.Checksum()
}

// DumpString renders the grid contents as an aligned text table for
// debugging.
func (g *Grid[V]) DumpString() string {
	return g.data.String()
}
