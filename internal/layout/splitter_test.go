package layout

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cursorLog struct {
	shapes []Cursor
}

func (c *cursorLog) SetCursor(v Cursor) {
	c.shapes = append(c.shapes, v)
}

func (c *cursorLog) last() Cursor {
	if len(c.shapes) == 0 {
		return CursorDefault
	}
	return c.shapes[len(c.shapes)-1]
}

type resizeLog struct {
	updates []ExtentUpdate
}

func (r *resizeLog) record(u ExtentUpdate) {
	r.updates = append(r.updates, u)
}

// fixedPair builds Rows{Row(prev), Splitter(split), Row(next)} and mounts it
// tall enough that nothing is squeezed.
func fixedPair(t *testing.T, prev, next, split int, prevOpts, nextOpts []PaneOption) (*Container, *Splitter, *Pane, *Pane, *cursorLog) {
	t.Helper()
	a := NewRow(append([]PaneOption{WithExtent(prev)}, prevOpts...)...)
	b := NewRow(append([]PaneOption{WithExtent(next)}, nextOpts...)...)
	s := NewSplitter(WithThickness(split))
	root := NewRows(a, s, b)
	cursor := &cursorLog{}
	require.NoError(t, root.Mount(Rect{Width: 80, Height: prev + next + split}, &Env{Pointer: NewPointerHub(cursor)}))
	return root, s, a, b, cursor
}

func TestSplitter_BindsBetweenRows(t *testing.T) {
	_, s, a, b, _ := fixedPair(t, 100, 200, 5, nil, nil)

	assert.Equal(t, Bound, s.State())
	assert.Equal(t, Vertical, s.Orientation())
	assert.Equal(t, 5, s.Size())
	prev, next := s.Neighbors()
	assert.Same(t, a, prev)
	assert.Same(t, b, next)
	assert.Equal(t, KindRow, s.Pane().Kind())
}

func TestSplitter_BindsBetweenCols(t *testing.T) {
	s := NewSplitter()
	root := NewCols(NewCol(WithExtent(10)), s, NewCol())
	require.NoError(t, root.Mount(Rect{Width: 40, Height: 3}, nil))

	assert.Equal(t, Horizontal, s.Orientation())
	assert.Equal(t, Rect{X: 10, Width: DefaultThickness, Height: 3}, s.Bounds())
	assert.Equal(t, CursorColResize, s.Orientation().Cursor())
}

func TestSplitter_MismatchedSiblingsIsFatal(t *testing.T) {
	s := NewSplitter()
	root := NewRows(NewRow(), s, NewCol())
	err := root.Mount(Rect{Width: 10, Height: 10}, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSiblingMismatch))
	var be *BindError
	require.True(t, errors.As(err, &be))
	assert.Equal(t, 1, be.Index)
	assert.Equal(t, "row", be.Prev)
	assert.Equal(t, "col", be.Next)
	assert.Equal(t, Unbound, s.State())
	assert.ErrorIs(t, s.Begin(Point{}), ErrNotBound)
}

func TestSplitter_MissingOrNonPaneSiblingIsFatal(t *testing.T) {
	tests := []struct {
		name     string
		children []Node
	}{
		{name: "first child", children: []Node{NewSplitter(), NewRow()}},
		{name: "last child", children: []Node{NewRow(), NewSplitter()}},
		{name: "two splitters", children: []Node{NewRow(), NewSplitter(), NewSplitter(), NewRow()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRows(tt.children...)
			err := root.Mount(Rect{Width: 10, Height: 20}, nil)
			assert.ErrorIs(t, err, ErrSiblingMismatch)
		})
	}
}

func TestSplitter_Mutability(t *testing.T) {
	tests := []struct {
		name               string
		prev, next         *Pane
		wantPrev, wantNext bool
		wantPrevFixed      bool
	}{
		{name: "both fixed", prev: NewRow(WithExtent(5)), next: NewRow(WithExtent(5)), wantPrev: true, wantNext: true, wantPrevFixed: true},
		{name: "prev flexible", prev: NewRow(), next: NewRow(WithExtent(5)), wantPrev: false, wantNext: true},
		{name: "next flexible", prev: NewRow(WithExtent(5)), next: NewRow(), wantPrev: true, wantNext: false, wantPrevFixed: true},
		{name: "both flexible", prev: NewRow(), next: NewRow(), wantPrev: true, wantNext: false, wantPrevFixed: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSplitter(WithThickness(1))
			root := NewRows(tt.prev, s, tt.next)
			require.NoError(t, root.Mount(Rect{Width: 10, Height: 21}, nil))

			p, n := s.Mutable()
			assert.Equal(t, tt.wantPrev, p, "prev mutable")
			assert.Equal(t, tt.wantNext, n, "next mutable")
			assert.Equal(t, tt.wantPrevFixed, !tt.prev.IsFlexible(), "prev fixed")
		})
	}
}

func TestSplitter_BothFlexibleFreezesPrevAtMeasuredExtent(t *testing.T) {
	a, b := NewRow(), NewRow()
	s := NewSplitter(WithThickness(1))
	root := NewRows(a, s, b)
	require.NoError(t, root.Mount(Rect{Width: 10, Height: 101}, nil))

	assert.False(t, a.IsFlexible())
	assert.Equal(t, 50, a.Extent())
	assert.True(t, b.IsFlexible())
	assert.Equal(t, 50, b.Extent())

	// A second bind sees a fixed prev and a flexible next; nothing else freezes.
	require.NoError(t, root.Resize(Rect{Width: 10, Height: 121}))
	assert.Equal(t, 50, a.Extent())
	assert.Equal(t, 70, b.Extent())
	assert.True(t, b.IsFlexible())
}

func TestSplitter_DragStartCapturesRanges(t *testing.T) {
	_, s, _, _, cursor := fixedPair(t, 100, 200, 5, nil, nil)

	require.NoError(t, s.Begin(Point{X: 3, Y: 102}))
	assert.Equal(t, Dragging, s.State())
	assert.Equal(t, CursorRowResize, cursor.last())

	prev, next, ok := s.Ranges()
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 300}, prev)
	assert.Equal(t, [2]int{0, 300}, next)
}

func TestSplitter_ReciprocalDrag(t *testing.T) {
	_, s, a, b, _ := fixedPair(t, 100, 200, 5, nil, nil)
	require.NoError(t, s.Begin(Point{X: 3, Y: 102}))

	assert.True(t, s.Move(Point{X: 3, Y: 152}))
	assert.Equal(t, 150, a.Extent())
	assert.Equal(t, 150, b.Extent())
}

func TestSplitter_ReciprocalInvariantHoldsAcrossMoves(t *testing.T) {
	_, s, a, b, _ := fixedPair(t, 100, 200, 5, []PaneOption{WithMin(10)}, []PaneOption{WithMin(30)})
	require.NoError(t, s.Begin(Point{Y: 100}))

	for _, y := range []int{90, 40, 2, 0, 130, 260, 275, 290, 301, 180} {
		s.Move(Point{Y: y})
		assert.Equal(t, 305, a.Extent()+b.Extent()+s.Size(), "after move to y=%d", y)
		assert.GreaterOrEqual(t, a.Extent(), 10)
		assert.GreaterOrEqual(t, b.Extent(), 30)
	}
}

func TestSplitter_OutOfRangeMoveIsIgnored(t *testing.T) {
	_, s, a, b, _ := fixedPair(t, 100, 200, 5, []PaneOption{WithMin(20)}, nil)
	require.NoError(t, s.Begin(Point{Y: 100}))

	// Candidate 19 is one below the minimum.
	assert.False(t, s.Move(Point{Y: 19}))
	assert.Equal(t, 100, a.Extent())
	assert.Equal(t, 200, b.Extent())

	// Candidate 20 is exactly the minimum.
	assert.True(t, s.Move(Point{Y: 20}))
	assert.Equal(t, 20, a.Extent())
	assert.Equal(t, 280, b.Extent())

	// Past the upper bound the last accepted state stays.
	assert.False(t, s.Move(Point{Y: 301}))
	assert.Equal(t, 20, a.Extent())
	assert.Equal(t, 280, b.Extent())
}

func TestSplitter_OnlyNextMutableAnchorsOnSplitter(t *testing.T) {
	prevLog, nextLog := &resizeLog{}, &resizeLog{}
	a := NewRow(WithResize(prevLog.record))
	b := NewRow(WithExtent(30), WithMin(5), WithResize(nextLog.record))
	s := NewSplitter(WithThickness(1))
	root := NewRows(a, s, b)
	require.NoError(t, root.Mount(Rect{Width: 10, Height: 100}, nil))

	p, n := s.Mutable()
	require.False(t, p)
	require.True(t, n)
	assert.Equal(t, 69, a.Extent())

	require.NoError(t, s.Begin(Point{Y: 69}))
	_, nr, _ := s.Ranges()
	assert.Equal(t, [2]int{5, 99}, nr)

	// Moving up by 10 grows the next pane by 10.
	assert.True(t, s.Move(Point{Y: 59}))
	assert.Equal(t, 40, b.Extent())
	assert.Equal(t, 59, a.Extent())
	assert.True(t, a.IsFlexible(), "the non-mutable side is never written")

	assert.Equal(t, []ExtentUpdate{{Kind: KindRow, Extent: 40}}, nextLog.updates)
	assert.Equal(t, []ExtentUpdate{{Kind: KindRow, Extent: 59}}, prevLog.updates)

	// Next would shrink below its minimum.
	assert.False(t, s.Move(Point{Y: 95}))
	assert.Equal(t, 40, b.Extent())
}

func TestSplitter_OnlyPrevMutable(t *testing.T) {
	a := NewCol(WithExtent(20))
	b := NewCol(WithMin(10))
	s := NewSplitter(WithThickness(2))
	root := NewCols(a, s, b)
	require.NoError(t, root.Mount(Rect{Width: 62, Height: 5}, nil))
	require.NoError(t, s.Begin(Point{X: 21}))

	pr, _, _ := s.Ranges()
	assert.Equal(t, [2]int{0, 50}, pr)

	assert.True(t, s.Move(Point{X: 31}))
	assert.Equal(t, 30, a.Extent())
	assert.Equal(t, 30, b.Extent())
	assert.True(t, b.IsFlexible())

	assert.False(t, s.Move(Point{X: 52}))
	assert.Equal(t, 30, a.Extent())
}

func TestSplitter_OnResizeOncePerChangedSide(t *testing.T) {
	prevLog, nextLog := &resizeLog{}, &resizeLog{}
	_, s, _, _, _ := fixedPair(t, 10, 10, 1,
		[]PaneOption{WithResize(prevLog.record)},
		[]PaneOption{WithResize(nextLog.record)})
	require.NoError(t, s.Begin(Point{Y: 10}))

	require.True(t, s.Move(Point{Y: 12}))
	assert.Equal(t, []ExtentUpdate{{Kind: KindRow, Extent: 12}}, prevLog.updates)
	assert.Equal(t, []ExtentUpdate{{Kind: KindRow, Extent: 8}}, nextLog.updates)

	// Same position again: accepted, but nothing changed.
	require.True(t, s.Move(Point{Y: 12}))
	assert.Len(t, prevLog.updates, 1)
	assert.Len(t, nextLog.updates, 1)

	// Rejected moves never call back.
	require.False(t, s.Move(Point{Y: 40}))
	assert.Len(t, prevLog.updates, 1)
}

func TestSplitter_MissingOnResizeIsNoop(t *testing.T) {
	_, s, a, _, _ := fixedPair(t, 10, 10, 1, nil, nil)
	require.NoError(t, s.Begin(Point{Y: 10}))
	assert.NotPanics(t, func() { s.Move(Point{Y: 14}) })
	assert.Equal(t, 14, a.Extent())
}

func TestSplitter_EndRestoresCursorAndReleasesPointer(t *testing.T) {
	root, s, _, _, cursor := fixedPair(t, 10, 10, 1, nil, nil)
	hub := root.pointer()
	require.NoError(t, s.Begin(Point{Y: 10}))
	assert.True(t, hub.Captured())

	s.End()
	assert.Equal(t, Bound, s.State())
	assert.False(t, hub.Captured())
	assert.Equal(t, []Cursor{CursorRowResize, CursorDefault}, cursor.shapes)

	// Moves after release do nothing.
	assert.False(t, s.Move(Point{Y: 15}))

	// End twice is harmless.
	s.End()
	assert.Equal(t, []Cursor{CursorRowResize, CursorDefault}, cursor.shapes)
}

func TestSplitter_PointerHubDrivesDrag(t *testing.T) {
	root, s, a, b, _ := fixedPair(t, 10, 10, 1, nil, nil)
	hub := root.pointer()
	require.NoError(t, s.Begin(Point{Y: 10}))

	assert.True(t, hub.Dispatch(PointerEvent{Action: PointerMove, Point: Point{Y: 6}}))
	assert.Equal(t, 6, a.Extent())
	assert.Equal(t, 14, b.Extent())

	assert.True(t, hub.Dispatch(PointerEvent{Action: PointerRelease, Point: Point{Y: 6}}))
	assert.Equal(t, Bound, s.State())
	assert.False(t, hub.Dispatch(PointerEvent{Action: PointerMove, Point: Point{Y: 8}}))
	assert.Equal(t, 6, a.Extent())
}

func TestSplitter_OnlyOneDragOwnsThePointer(t *testing.T) {
	s1, s2 := NewSplitter(WithThickness(1)), NewSplitter(WithThickness(1))
	root := NewRows(NewRow(WithExtent(10)), s1, NewRow(WithExtent(10)), s2, NewRow(WithExtent(10)))
	require.NoError(t, root.Mount(Rect{Width: 5, Height: 32}, nil))

	require.NoError(t, s1.Begin(Point{Y: 10}))
	assert.ErrorIs(t, s2.Begin(Point{Y: 21}), ErrPointerBusy)
	assert.Equal(t, Bound, s2.State())

	s1.End()
	assert.NoError(t, s2.Begin(Point{Y: 21}))
}

func TestSplitter_CaptureLossEndsDrag(t *testing.T) {
	root, s, _, _, cursor := fixedPair(t, 10, 10, 1, nil, nil)
	require.NoError(t, s.Begin(Point{Y: 10}))

	root.pointer().Cancel()
	assert.Equal(t, Bound, s.State())
	assert.False(t, root.pointer().Captured())
	assert.Equal(t, CursorDefault, cursor.last())
}

func TestSplitter_UnmountMidDragReleases(t *testing.T) {
	root, s, _, _, cursor := fixedPair(t, 10, 10, 1, nil, nil)
	hub := root.pointer()
	require.NoError(t, s.Begin(Point{Y: 10}))

	root.Unmount()
	assert.False(t, hub.Captured())
	assert.Equal(t, CursorDefault, cursor.last())
	assert.Equal(t, Unbound, s.State())
}

func TestSplitter_RebindMidDragEndsSession(t *testing.T) {
	root, s, _, _, _ := fixedPair(t, 10, 10, 1, nil, nil)
	require.NoError(t, s.Begin(Point{Y: 10}))

	require.NoError(t, root.Resize(Rect{Width: 80, Height: 40}))
	assert.Equal(t, Bound, s.State())
	assert.False(t, root.pointer().Captured())
}

func TestSplitter_DragStats(t *testing.T) {
	var got []DragStats
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	a, b := NewCol(WithExtent(10)), NewCol(WithExtent(10))
	s := NewSplitter(WithThickness(1))
	root := NewCols(a, s, b)
	env := &Env{
		OnDragEnd: func(st DragStats) { got = append(got, st) },
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	}
	require.NoError(t, root.Mount(Rect{Width: 21, Height: 1}, env))

	require.NoError(t, s.Begin(Point{X: 10}))
	s.Move(Point{X: 13})
	s.Move(Point{X: 40})
	s.End()

	require.Len(t, got, 1)
	st := got[0]
	assert.Equal(t, Horizontal, st.Orientation)
	assert.Equal(t, 10, st.PrevStart)
	assert.Equal(t, 10, st.NextStart)
	assert.Equal(t, 13, st.PrevEnd)
	assert.Equal(t, 7, st.NextEnd)
	assert.Equal(t, 1, st.Accepted)
	assert.Equal(t, 1, st.Rejected)
	assert.Equal(t, time.Second, st.Ended.Sub(st.Started))
}

func TestSplitter_RefreshBeforeMount(t *testing.T) {
	s := NewSplitter()
	NewRows(NewRow(), s, NewRow())
	assert.ErrorIs(t, s.Refresh(), ErrNotMounted)
}

func TestSplitter_ForwardsPaneOptions(t *testing.T) {
	s := NewSplitter(WithThickness(2), WithPaneOptions(WithClass("grip"), WithExtent(9)))
	assert.Equal(t, "grip", s.Pane().Class())
	assert.Equal(t, 2, s.Pane().Extent())
}
