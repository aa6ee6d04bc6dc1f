package layout

// PointerAction is what happened to the pointer.
type PointerAction int

const (
	PointerPress PointerAction = iota
	PointerMove
	PointerRelease
)

// PointerEvent is a pointer event in screen coordinates.
type PointerEvent struct {
	Action PointerAction
	Point
}

// DragListener receives the global pointer while it holds the capture.
type DragListener interface {
	PointerMoved(Point)
	PointerReleased(Point)
	CaptureLost()
}

// CursorSink shows a pointer shape. The terminal implementation lives in ui.
type CursorSink interface {
	SetCursor(Cursor)
}

// PointerHub routes global move and release events to at most one drag
// listener. It stands in for document-level listeners: a splitter attaches
// on drag start and the returned release func detaches it.
type PointerHub struct {
	sink   CursorSink
	holder DragListener
}

// NewPointerHub creates a hub. sink may be nil.
func NewPointerHub(sink CursorSink) *PointerHub {
	return &PointerHub{sink: sink}
}

// Capture gives l the pointer and shows cursor c. The returned func
// restores the default cursor and detaches l; calling it again does nothing.
func (h *PointerHub) Capture(l DragListener, c Cursor) (release func(), err error) {
	if h.holder != nil && h.holder != l {
		return nil, ErrPointerBusy
	}
	h.holder = l
	h.setCursor(c)
	done := false
	return func() {
		if done {
			return
		}
		done = true
		if h.holder == l {
			h.holder = nil
		}
		h.setCursor(CursorDefault)
	}, nil
}

// Captured reports whether a listener holds the pointer.
func (h *PointerHub) Captured() bool {
	return h.holder != nil
}

// Dispatch delivers ev to the holder. It reports false when nothing holds
// the pointer, leaving ev to ordinary hit testing.
func (h *PointerHub) Dispatch(ev PointerEvent) bool {
	l := h.holder
	if l == nil {
		return false
	}
	switch ev.Action {
	case PointerMove:
		l.PointerMoved(ev.Point)
	case PointerRelease:
		l.PointerReleased(ev.Point)
	}
	return true
}

// Cancel tells the holder it lost the pointer, for example when the
// terminal loses focus mid-drag.
func (h *PointerHub) Cancel() {
	if l := h.holder; l != nil {
		l.CaptureLost()
		if h.holder == l {
			h.holder = nil
			h.setCursor(CursorDefault)
		}
	}
}

func (h *PointerHub) setCursor(c Cursor) {
	if h.sink != nil {
		h.sink.SetCursor(c)
	}
}
