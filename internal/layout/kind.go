package layout

// Kind is the kind of a pane. A Row is sized by height and stacks inside
// Rows; a Col is sized by width and sits side by side inside Cols.
type Kind int

const (
	KindNone Kind = iota
	KindRow
	KindCol
)

func (k Kind) String() string {
	switch k {
	case KindRow:
		return "row"
	case KindCol:
		return "col"
	default:
		return "none"
	}
}

// span returns the extent of r along the axis a pane of kind k is sized on.
func (k Kind) span(r Rect) int {
	switch k {
	case KindRow:
		return r.Height
	case KindCol:
		return r.Width
	default:
		return 0
	}
}

// Orientation is the direction of a split. It is derived from the kind of
// the panes on either side of a splitter every time the splitter binds.
type Orientation int

const (
	// Vertical splits sit between two Rows; dragging changes heights.
	Vertical Orientation = iota + 1
	// Horizontal splits sit between two Cols; dragging changes widths.
	Horizontal
)

func orientationOf(k Kind) (Orientation, bool) {
	switch k {
	case KindRow:
		return Vertical, true
	case KindCol:
		return Horizontal, true
	}
	return 0, false
}

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return "unbound"
	}
}

// Kind returns the pane kind found on both sides of a split with this orientation.
func (o Orientation) Kind() Kind {
	switch o {
	case Vertical:
		return KindRow
	case Horizontal:
		return KindCol
	default:
		return KindNone
	}
}

// Coord returns the component of p that moves a split with this orientation.
func (o Orientation) Coord(p Point) int {
	if o == Vertical {
		return p.Y
	}
	return p.X
}

// Cursor returns the pointer shape shown while dragging.
func (o Orientation) Cursor() Cursor {
	switch o {
	case Vertical:
		return CursorRowResize
	case Horizontal:
		return CursorColResize
	default:
		return CursorDefault
	}
}

// Cursor is a pointer shape.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorRowResize
	CursorColResize
)

// String returns the CSS name of the cursor, which is also what terminals
// accept in a pointer shape request.
func (c Cursor) String() string {
	switch c {
	case CursorRowResize:
		return "row-resize"
	case CursorColResize:
		return "col-resize"
	default:
		return "default"
	}
}
