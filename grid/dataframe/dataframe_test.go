package dataframe

import (
	"testing"

	"github.com/hnimtadd/gridframe/grid/geom"
	"github.com/hnimtadd/gridframe/grid/opt"
	"github.com/stretchr/testify/assert"
)

func frame(t *testing.T, ox, oy, cx, cy int) geom.Frame {
	t.Helper()
	f, err := geom.NewFrame(geom.New(ox, oy), geom.New(cx, cy))
	assert.NoError(t, err)
	return f
}

func newStore(t *testing.T, ox, oy, cx, cy int) *DataFrame[string] {
	t.Helper()
	return New[string](frame(t, ox, oy, cx, cy))
}

func TestPutAtGetAtRoundTrip(t *testing.T) {
	d := newStore(t, 0, 0, 4, 4)
	p := geom.New(2, 3)

	assert.NoError(t, d.PutAt(p, opt.Some("v")))
	got, err := d.GetAt(p)
	assert.NoError(t, err)
	assert.Equal(t, opt.Some("v"), got)

	// Raw pairs address the same cell as points.
	got, err = d.GetAt([2]int{2, 3})
	assert.NoError(t, err)
	assert.Equal(t, opt.Some("v"), got)

	assert.NoError(t, d.PutAt([]int{1, 1}, opt.Some("w")))
	got, err = d.GetAt(geom.New(1, 1))
	assert.NoError(t, err)
	assert.Equal(t, "w", got.MustGet())
}

func TestPutAtAbsentRemovesEntry(t *testing.T) {
	d := newStore(t, 0, 0, 2, 2)
	p := geom.New(1, 1)

	assert.NoError(t, d.PutAt(p, opt.Some("v")))
	assert.Equal(t, 1, d.Len())

	assert.NoError(t, d.PutAt(p, opt.None[string]()))
	assert.Equal(t, 0, d.Len(), "writing absent should delete, not store a marker")

	got, err := d.GetAt(p)
	assert.NoError(t, err, "reading an unset in-bounds cell is not an error")
	assert.False(t, got.Present())

	// Deleting an already-empty cell is fine too.
	assert.NoError(t, d.PutAt(p, opt.None[string]()))
	assert.Equal(t, 0, d.Len())
}

func TestGetAtBoundsAndLocationErrors(t *testing.T) {
	d := newStore(t, 0, 0, 2, 2)

	_, err := d.GetAt(geom.New(3, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = d.GetAt([2]int{0, -1})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = d.GetAt("not a location")
	assert.ErrorIs(t, err, ErrInvalidLocation)

	_, err = d.GetAt([]int{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidLocation)

	_, err = d.GetAt((*geom.Point)(nil))
	assert.ErrorIs(t, err, ErrInvalidLocation)
}

func TestPutAtDoesNotBoundsCheck(t *testing.T) {
	d := newStore(t, 0, 0, 2, 2)
	outside := geom.New(10, 10)

	assert.NoError(t, d.PutAt(outside, opt.Some("staged")), "writes outside bounds are accepted")
	assert.Equal(t, 1, d.Len())

	// The staged entry is unreachable through the checked read path.
	_, err := d.GetAt(outside)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestLoadFromArrayRoundTrip(t *testing.T) {
	d := newStore(t, 0, 0, 4, 4)
	data := [][]opt.Val[string]{
		{opt.Some("a"), opt.Some("b"), opt.None[string]()},
		{opt.Some("c"), opt.None[string](), opt.Some("d")},
	}

	assert.NoError(t, d.LoadFromArray(data, geom.New(1, 2)))

	got, err := d.DataArrayForFrame(frame(t, 1, 2, 3, 3))
	assert.NoError(t, err)
	assert.Equal(t, data, got, "extract should reproduce the loaded block exactly")

	// Individual cells landed at origin-relative offsets.
	v, err := d.GetAt(geom.New(3, 3))
	assert.NoError(t, err)
	assert.Equal(t, "d", v.MustGet())
}

func TestLoadFromArrayAbsentDeletes(t *testing.T) {
	d := newStore(t, 0, 0, 2, 2)
	assert.NoError(t, d.PutAt(geom.New(0, 0), opt.Some("old")))

	assert.NoError(t, d.LoadFromArray([][]opt.Val[string]{
		{opt.None[string](), opt.Some("new")},
	}, geom.New(0, 0)))

	got, err := d.GetAt(geom.New(0, 0))
	assert.NoError(t, err)
	assert.False(t, got.Present(), "an absent value in the block should delete the prior entry")
}

func TestLoadFromArrayValidatesBeforeWriting(t *testing.T) {
	d := newStore(t, 0, 0, 2, 2)
	assert.NoError(t, d.PutAt(geom.New(0, 0), opt.Some("keep")))

	before, err := d.DataArrayForFrame(d.Bounds())
	assert.NoError(t, err)

	// Region pokes past the corner.
	err = d.LoadFromArray([][]opt.Val[string]{
		{opt.Some("x"), opt.Some("y")},
		{opt.Some("x"), opt.Some("y")},
	}, geom.New(2, 1))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Origin itself out of bounds.
	err = d.LoadFromArray([][]opt.Val[string]{{opt.Some("x")}}, geom.New(5, 5))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Ragged rows fail before any write.
	err = d.LoadFromArray([][]opt.Val[string]{
		{opt.Some("x"), opt.Some("y")},
		{opt.Some("x")},
	}, geom.New(0, 0))
	assert.ErrorIs(t, err, ErrRaggedRows)

	after, err := d.DataArrayForFrame(d.Bounds())
	assert.NoError(t, err)
	assert.Equal(t, before, after, "a failed load must leave the store untouched")
}

func TestLoadFromArrayEmptyInput(t *testing.T) {
	d := newStore(t, 0, 0, 2, 2)
	notified := 0
	d.SetOnChange(func(geom.Frame) { notified++ })

	assert.NoError(t, d.LoadFromArray(nil, geom.New(0, 0)))
	assert.NoError(t, d.LoadFromArray([][]opt.Val[string]{}, geom.New(1, 1)))
	assert.Equal(t, 0, d.Len())
	assert.Equal(t, 0, notified, "an empty load should not notify")

	// The origin is still validated.
	assert.ErrorIs(t, d.LoadFromArray(nil, geom.New(9, 9)), ErrOutOfBounds)
}

func TestChangeNotifications(t *testing.T) {
	d := newStore(t, 0, 0, 3, 3)
	var regions []geom.Frame
	d.SetOnChange(func(region geom.Frame) {
		regions = append(regions, region)
	})

	assert.NoError(t, d.PutAt(geom.New(1, 2), opt.Some("v")))
	assert.Equal(t, []geom.Frame{geom.FrameAt(geom.New(1, 2))}, regions,
		"a single write should notify once with the degenerate frame of the point")

	regions = nil
	assert.NoError(t, d.LoadFromArray([][]opt.Val[string]{
		{opt.Some("a"), opt.Some("b")},
		{opt.Some("c"), opt.Some("d")},
	}, geom.New(0, 0)))
	assert.Equal(t, []geom.Frame{frame(t, 0, 0, 1, 1)}, regions,
		"a bulk load should notify exactly once with the loaded region")

	regions = nil
	d.Clear()
	assert.Equal(t, []geom.Frame{d.Bounds()}, regions,
		"clear should notify once with the full declared bounds")
}

func TestSetOnChangeLastWriteWins(t *testing.T) {
	d := newStore(t, 0, 0, 1, 1)
	first, second := 0, 0
	d.SetOnChange(func(geom.Frame) { first++ })
	d.SetOnChange(func(geom.Frame) { second++ })

	assert.NoError(t, d.PutAt(geom.New(0, 0), opt.Some("v")))
	assert.Equal(t, 0, first, "a replaced subscriber should no longer be invoked")
	assert.Equal(t, 1, second)

	d.SetOnChange(nil)
	assert.NoError(t, d.PutAt(geom.New(0, 0), opt.Some("w")))
	assert.Equal(t, 1, second, "nil should unregister the subscriber")
}

func TestIsFull(t *testing.T) {
	d := newStore(t, 0, 0, 1, 1)
	assert.False(t, d.IsFull())

	for _, p := range []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}} {
		assert.NoError(t, d.PutAt(p, opt.Some("v")))
	}
	assert.False(t, d.IsFull(), "3 of 4 cells is not full")

	assert.NoError(t, d.PutAt(geom.New(1, 1), opt.Some("v")))
	assert.True(t, d.IsFull())

	d.Clear()
	assert.False(t, d.IsFull())
	assert.Equal(t, 0, d.Len())
}

func TestHasCompleteDataForFrame(t *testing.T) {
	d := newStore(t, 0, 0, 2, 2)
	assert.NoError(t, d.PutAt(geom.New(0, 0), opt.Some("v")))
	assert.NoError(t, d.PutAt(geom.New(1, 0), opt.Some("v")))

	complete, err := d.HasCompleteDataForFrame(frame(t, 0, 0, 1, 0))
	assert.NoError(t, err)
	assert.True(t, complete)

	complete, err = d.HasCompleteDataForFrame(d.Bounds())
	assert.NoError(t, err)
	assert.False(t, complete, "unset cells inside the frame mean incomplete")

	_, err = d.HasCompleteDataForFrame(frame(t, 0, 0, 3, 0))
	assert.ErrorIs(t, err, ErrNotContained)
}

func TestDataArrayForFrameNotContained(t *testing.T) {
	d := newStore(t, 0, 0, 2, 2)
	_, err := d.DataArrayForFrame(frame(t, 1, 1, 3, 3))
	assert.ErrorIs(t, err, ErrNotContained)
}

func TestMinFrame(t *testing.T) {
	d := newStore(t, 0, 0, 9, 9)
	assert.NoError(t, d.PutAt(geom.New(2, 3), opt.Some("a")))
	assert.NoError(t, d.PutAt(geom.New(5, 1), opt.Some("b")))

	tight, err := d.MinFrame()
	assert.NoError(t, err)
	assert.Equal(t, frame(t, 2, 1, 5, 3), tight,
		"min frame should take the tight bound on each axis independently")

	anchored, err := d.MinFrameFromOrigin()
	assert.NoError(t, err)
	assert.Equal(t, frame(t, 0, 0, 5, 3), anchored,
		"anchored min frame should substitute the declared origin")
}

func TestMinFrameEmptyStore(t *testing.T) {
	d := newStore(t, 0, 0, 3, 3)

	_, err := d.MinFrame()
	assert.ErrorIs(t, err, ErrEmptyStore)

	_, err = d.MinFrameFromOrigin()
	assert.ErrorIs(t, err, ErrEmptyStore)

	_, err = d.ToArray(false)
	assert.ErrorIs(t, err, ErrEmptyStore, "extracting an empty store has no meaningful extent")
}

func TestToArray(t *testing.T) {
	d := newStore(t, 0, 0, 4, 4)
	assert.NoError(t, d.PutAt(geom.New(1, 1), opt.Some("a")))
	assert.NoError(t, d.PutAt(geom.New(2, 2), opt.Some("b")))

	strict, err := d.ToArray(true)
	assert.NoError(t, err)
	assert.Equal(t, [][]opt.Val[string]{
		{opt.Some("a"), opt.None[string]()},
		{opt.None[string](), opt.Some("b")},
	}, strict, "strict extraction should cover the tight frame only")

	loose, err := d.ToArray(false)
	assert.NoError(t, err)
	assert.Len(t, loose, 3, "loose extraction should reach down from the declared origin")
	assert.Len(t, loose[0], 3)
	assert.Equal(t, opt.Some("a"), loose[1][1])
	assert.Equal(t, opt.Some("b"), loose[2][2])
	assert.False(t, loose[0][0].Present())
}

func TestChecksum(t *testing.T) {
	a := newStore(t, 0, 0, 3, 3)
	b := newStore(t, 0, 0, 3, 3)

	// Same content written in different orders hashes the same.
	assert.NoError(t, a.PutAt(geom.New(0, 0), opt.Some("x")))
	assert.NoError(t, a.PutAt(geom.New(2, 1), opt.Some("y")))
	assert.NoError(t, b.PutAt(geom.New(2, 1), opt.Some("y")))
	assert.NoError(t, b.PutAt(geom.New(0, 0), opt.Some("x")))

	ha, err := a.Checksum()
	assert.NoError(t, err)
	hb, err := b.Checksum()
	assert.NoError(t, err)
	assert.Equal(t, ha, hb, "checksum should depend on content, not write order")

	assert.NoError(t, a.PutAt(geom.New(1, 1), opt.Some("z")))
	hc, err := a.Checksum()
	assert.NoError(t, err)
	assert.NotEqual(t, ha, hc, "checksum should change when content changes")
}

func TestAssertIntegrity(t *testing.T) {
	d := newStore(t, 0, 0, 2, 2)
	assert.NotPanics(t, func() { d.AssertIntegrity() })
}
