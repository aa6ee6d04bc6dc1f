package layout

import "time"

// DefaultThickness is the extent of a splitter across its split.
const DefaultThickness = 3

// SplitterState is where a splitter is in its bind/drag cycle.
type SplitterState int

const (
	// Unbound: no valid neighbors yet, or the last bind failed.
	Unbound SplitterState = iota
	// Bound: orientation, neighbors and mutability are known.
	Bound
	// Dragging: a drag session holds the pointer.
	Dragging
)

func (s SplitterState) String() string {
	switch s {
	case Bound:
		return "bound"
	case Dragging:
		return "dragging"
	default:
		return "unbound"
	}
}

// SplitterOption configures a Splitter at construction.
type SplitterOption func(*Splitter)

// WithThickness overrides DefaultThickness.
func WithThickness(v int) SplitterOption {
	return func(s *Splitter) {
		s.pane.extent = max(v, 0)
	}
}

// WithPaneOptions applies pane options, such as WithClass, to the thin
// pane the splitter renders as. Extent options are overridden by the
// thickness.
func WithPaneOptions(opts ...PaneOption) SplitterOption {
	return func(s *Splitter) {
		thickness := s.pane.extent
		for _, o := range opts {
			o(s.pane)
		}
		s.pane.extent, s.pane.fixed = thickness, true
	}
}

// DragStats summarizes one drag session.
type DragStats struct {
	Orientation          Orientation
	PrevStart, NextStart int
	PrevEnd, NextEnd     int
	Accepted, Rejected   int
	Started, Ended       time.Time
}

// Splitter sits between two panes of the same kind and resizes them when
// dragged. It renders as a thin pane of that same kind.
type Splitter struct {
	pane   *Pane
	parent *Container
	index  int

	state      SplitterState
	orient     Orientation
	prev, next *Pane
	mutable    [2]bool
	size       int

	sess *session
}

var (
	_ Node         = (*Splitter)(nil)
	_ DragListener = (*Splitter)(nil)
)

// NewSplitter creates an unbound splitter.
func NewSplitter(opts ...SplitterOption) *Splitter {
	s := &Splitter{
		pane:  &Pane{extent: DefaultThickness, fixed: true, index: -1},
		index: -1,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns the current state.
func (s *Splitter) State() SplitterState {
	return s.state
}

// Orientation returns the orientation found at the last bind.
func (s *Splitter) Orientation() Orientation {
	return s.orient
}

// Neighbors returns the panes found at the last bind.
func (s *Splitter) Neighbors() (prev, next *Pane) {
	return s.prev, s.next
}

// Mutable reports which neighbors a drag writes to.
func (s *Splitter) Mutable() (prev, next bool) {
	return s.mutable[0], s.mutable[1]
}

// Pane returns the thin pane the splitter renders as.
func (s *Splitter) Pane() *Pane {
	return s.pane
}

// Size returns the splitter's own extent across the split.
func (s *Splitter) Size() int {
	return s.size
}

// Bounds returns where the splitter was last laid out.
func (s *Splitter) Bounds() Rect {
	return s.pane.bounds
}

func (s *Splitter) attach(c *Container, index int) {
	s.parent = c
	s.index = index
	s.pane.parent = c
	s.pane.index = index
	if s.pane.kind == KindNone {
		s.pane.kind = c.kind
	}
}

func (s *Splitter) box() *Pane {
	return s.pane
}

// Refresh re-derives the splitter's neighbors, orientation and mutability
// from the container. It runs after mount and after every structural
// update. A drag in progress is ended first since its captured extents no
// longer describe the tree.
//
// When both neighbors are flexible the previous one is frozen at its
// measured extent, so a drag resizes it against a fixed baseline while the
// next one absorbs the difference.
func (s *Splitter) Refresh() error {
	if s.parent == nil || !s.parent.mounted {
		return ErrNotMounted
	}
	s.End()

	pn, nn := s.parent.Neighbors(s.index)
	prev, _ := pn.(*Pane)
	next, _ := nn.(*Pane)
	if prev == nil || next == nil || prev.kind != next.kind {
		s.state = Unbound
		s.prev, s.next = nil, nil
		return &BindError{Index: s.index, Prev: describe(pn), Next: describe(nn)}
	}
	o, ok := orientationOf(prev.kind)
	if !ok {
		s.state = Unbound
		return &BindError{Index: s.index, Prev: describe(pn), Next: describe(nn)}
	}

	s.orient = o
	s.prev, s.next = prev, next
	if s.pane.kind != prev.kind {
		s.pane.kind = prev.kind
		s.parent.layout()
	}
	s.size = s.pane.Extent()

	prevFlex, nextFlex := prev.IsFlexible(), next.IsFlexible()
	switch {
	case prevFlex && nextFlex:
		prev.SetExtent(prev.FlexExtent())
		s.mutable = [2]bool{true, false}
	case !prevFlex && !nextFlex:
		s.mutable = [2]bool{true, true}
	case prevFlex:
		s.mutable = [2]bool{false, true}
	default:
		s.mutable = [2]bool{true, false}
	}
	s.state = Bound
	return nil
}

// Begin starts a drag at pt. It captures the neighbors' extents and the
// range each may take, and takes the global pointer for the session.
func (s *Splitter) Begin(pt Point) error {
	switch s.state {
	case Unbound:
		return ErrNotBound
	case Dragging:
		return nil
	}
	hub := s.parent.pointer()
	if hub == nil {
		return ErrNotMounted
	}
	release, err := hub.Capture(s, s.orient.Cursor())
	if err != nil {
		return err
	}

	prevStart, nextStart := s.prev.Extent(), s.next.Extent()
	full := s.size + prevStart + nextStart
	s.sess = &session{
		origin:    pt,
		prevStart: prevStart,
		nextStart: nextStart,
		full:      full,
		split:     s.size,
		prevRange: span{s.prev.MinExtent(), full - s.size - s.next.MinExtent()},
		nextRange: span{s.next.MinExtent(), full - s.size - s.prev.MinExtent()},
		started:   s.parent.now(),
		release:   release,
	}
	s.state = Dragging
	return nil
}

// Move applies a pointer position to the neighbors. It reports whether the
// move was accepted; a candidate extent outside the captured range leaves
// both neighbors untouched.
func (s *Splitter) Move(pt Point) bool {
	if s.state != Dragging || s.sess == nil {
		return false
	}
	ss := s.sess
	delta := s.orient.Coord(pt) - s.orient.Coord(ss.origin)
	prevBefore, nextBefore := s.prev.Extent(), s.next.Extent()

	switch {
	case s.mutable[0] && s.mutable[1]:
		v := ss.prevStart + delta
		if !ss.prevRange.contains(v) {
			ss.rejected++
			return false
		}
		s.prev.SetExtent(v)
		s.next.SetExtent(ss.full - ss.split - v)
	case s.mutable[0]:
		v := ss.prevStart + delta
		if !ss.prevRange.contains(v) {
			ss.rejected++
			return false
		}
		s.prev.SetExtent(v)
	case s.mutable[1]:
		// The next pane grows as the splitter moves back toward the
		// previous one, so its candidate runs against the delta.
		v := ss.nextStart - delta
		if !ss.nextRange.contains(v) {
			ss.rejected++
			return false
		}
		s.next.SetExtent(v)
	default:
		return false
	}

	ss.accepted++
	s.prev.resized(prevBefore)
	s.next.resized(nextBefore)
	return true
}

// End finishes the drag, restoring the cursor and releasing the pointer.
// It is safe to call at any time and more than once.
func (s *Splitter) End() {
	ss := s.sess
	if ss == nil {
		return
	}
	s.sess = nil
	ss.release()
	if s.state == Dragging {
		s.state = Bound
	}
	s.parent.dragEnded(DragStats{
		Orientation: s.orient,
		PrevStart:   ss.prevStart,
		NextStart:   ss.nextStart,
		PrevEnd:     s.prev.Extent(),
		NextEnd:     s.next.Extent(),
		Accepted:    ss.accepted,
		Rejected:    ss.rejected,
		Started:     ss.started,
		Ended:       s.parent.now(),
	})
}

// Ranges returns the admissible extents captured for the current drag.
func (s *Splitter) Ranges() (prev, next [2]int, ok bool) {
	if s.sess == nil {
		return prev, next, false
	}
	return s.sess.prevRange.pair(), s.sess.nextRange.pair(), true
}

// PointerMoved implements DragListener.
func (s *Splitter) PointerMoved(pt Point) {
	s.Move(pt)
}

// PointerReleased implements DragListener.
func (s *Splitter) PointerReleased(Point) {
	s.End()
}

// CaptureLost implements DragListener.
func (s *Splitter) CaptureLost() {
	s.End()
}
