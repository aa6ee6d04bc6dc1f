package layout

// ExtentUpdate is passed to a pane's resize callback. Kind tells whether
// Extent is a height (KindRow) or a width (KindCol).
type ExtentUpdate struct {
	Kind   Kind
	Extent int
}

// Constraint is the min/max pair applied along a pane's axis, written as CSS
// lengths. Both are empty for a flexible pane; the cross axis is never
// constrained.
type Constraint struct {
	Min, Max string
}

// Node is a child of a Container: a *Pane or a *Splitter.
type Node interface {
	Bounds() Rect
	attach(c *Container, index int)
	box() *Pane
}

// PaneOption configures a Pane at construction.
type PaneOption func(*Pane)

// WithMin sets the minimum extent. Negative values are treated as 0.
func WithMin(v int) PaneOption {
	return func(p *Pane) {
		p.min = max(v, 0)
	}
}

// WithExtent gives the pane a fixed extent. Without it the pane is flexible.
func WithExtent(v int) PaneOption {
	return func(p *Pane) {
		p.extent = v
		p.fixed = true
	}
}

// WithResize registers a callback invoked with the new extent each time a
// splitter drag changes this pane.
func WithResize(fn func(ExtentUpdate)) PaneOption {
	return func(p *Pane) {
		p.onResize = fn
	}
}

// WithClass tags the pane with a class name for the renderer's styling.
func WithClass(name string) PaneOption {
	return func(p *Pane) {
		p.class = name
	}
}

// Pane is a rectangular region sized along one axis. A fixed pane keeps the
// extent it was given; a flexible pane takes whatever its container leaves
// over and reports that as its extent once mounted.
type Pane struct {
	kind     Kind
	min      int
	extent   int
	fixed    bool
	measured int
	bounds   Rect
	mounted  bool
	onResize func(ExtentUpdate)
	class    string

	parent *Container
	index  int
	inner  *Container
}

var _ Node = (*Pane)(nil)

// NewRow creates a pane sized by height.
func NewRow(opts ...PaneOption) *Pane {
	return newPane(KindRow, opts)
}

// NewCol creates a pane sized by width.
func NewCol(opts ...PaneOption) *Pane {
	return newPane(KindCol, opts)
}

func newPane(k Kind, opts []PaneOption) *Pane {
	p := &Pane{kind: k, index: -1}
	for _, o := range opts {
		o(p)
	}
	// A requested extent below the minimum is raised to it, not rejected.
	if p.fixed && p.extent < p.min {
		p.extent = p.min
	}
	return p
}

// Kind returns KindRow or KindCol.
func (p *Pane) Kind() Kind {
	return p.kind
}

// SetExtent fixes the pane's extent, raising v to the minimum if needed.
func (p *Pane) SetExtent(v int) {
	if v < p.min {
		v = p.min
	}
	p.extent = v
	p.fixed = true
	p.invalidate()
}

// ClearExtent makes the pane flexible again.
func (p *Pane) ClearExtent() {
	p.fixed = false
	p.invalidate()
}

// Extent returns the fixed extent, or the measured extent of a flexible
// pane. The measured extent is 0 until the pane has been laid out.
func (p *Pane) Extent() int {
	if p.fixed {
		return p.extent
	}
	return p.measured
}

// MinExtent returns the configured minimum.
func (p *Pane) MinExtent() int {
	return p.min
}

// IsFlexible reports whether no fixed extent is set.
func (p *Pane) IsFlexible() bool {
	return !p.fixed
}

// FlexExtent returns the extent the pane was last laid out at. Only
// meaningful while Mounted reports true.
func (p *Pane) FlexExtent() int {
	return p.measured
}

// Mounted reports whether the pane's container has mounted it, which is
// when FlexExtent becomes trustworthy.
func (p *Pane) Mounted() bool {
	return p.mounted
}

// Bounds returns the rectangle the pane was last laid out in.
func (p *Pane) Bounds() Rect {
	return p.bounds
}

// Class returns the class name given at construction.
func (p *Pane) Class() string {
	return p.class
}

// Constraint returns the min/max lengths along the pane's axis.
func (p *Pane) Constraint() Constraint {
	if !p.fixed {
		return Constraint{}
	}
	v := FormatPx(p.extent)
	return Constraint{Min: v, Max: v}
}

// Nest places a container inside the pane. The container is laid out in the
// pane's bounds every time the pane is.
func (p *Pane) Nest(c *Container) {
	p.inner = c
	c.owner = p
}

// Inner returns the nested container, or nil.
func (p *Pane) Inner() *Container {
	return p.inner
}

// Parent returns the container holding the pane, or nil.
func (p *Pane) Parent() *Container {
	return p.parent
}

func (p *Pane) attach(c *Container, index int) {
	p.parent = c
	p.index = index
}

func (p *Pane) box() *Pane {
	return p
}

func (p *Pane) place(r Rect) {
	p.bounds = r
	p.measured = p.kind.span(r)
	if p.inner != nil {
		p.inner.bounds = r
		p.inner.layout()
	}
}

func (p *Pane) invalidate() {
	if p.parent != nil && p.parent.mounted {
		p.parent.layout()
	}
}

func (p *Pane) resized(before int) {
	if p.onResize == nil {
		return
	}
	if after := p.Extent(); after != before {
		p.onResize(ExtentUpdate{Kind: p.kind, Extent: after})
	}
}
