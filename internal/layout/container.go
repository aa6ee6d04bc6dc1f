package layout

import "time"

// Env is what a mounted tree shares: the global pointer and an optional
// hook called when a drag session ends.
type Env struct {
	Pointer   *PointerHub
	OnDragEnd func(DragStats)
	Now       func() time.Time
}

// Container stacks panes and splitters along one axis. Rows stacks Row
// panes top to bottom; Cols places Col panes left to right.
type Container struct {
	kind      Kind
	children  []Node
	splitters []*Splitter
	bounds    Rect
	env       *Env
	mounted   bool
	owner     *Pane
}

// NewRows creates a container of Row panes.
func NewRows(children ...Node) *Container {
	return newContainer(KindRow, children)
}

// NewCols creates a container of Col panes.
func NewCols(children ...Node) *Container {
	return newContainer(KindCol, children)
}

func newContainer(k Kind, children []Node) *Container {
	c := &Container{kind: k}
	for _, n := range children {
		c.Append(n)
	}
	return c
}

// Kind returns the kind of pane the container stacks.
func (c *Container) Kind() Kind {
	return c.kind
}

// Append adds n at the end and hands it a reference to c. Appending to a
// mounted container is a structural change; call Resize afterwards to
// re-layout and rebind.
func (c *Container) Append(n Node) {
	n.attach(c, len(c.children))
	c.children = append(c.children, n)
}

// Children returns the children in order.
func (c *Container) Children() []Node {
	return c.children
}

// Neighbors returns the children immediately before and after index i.
// Either is nil at the ends.
func (c *Container) Neighbors(i int) (prev, next Node) {
	if i > 0 && i-1 < len(c.children) {
		prev = c.children[i-1]
	}
	if i >= 0 && i+1 < len(c.children) {
		next = c.children[i+1]
	}
	return prev, next
}

// AppendSplitter registers s for the refresh pass that follows mount.
// Registering the same splitter twice makes it refresh twice. Mount
// registers every child splitter that is not registered yet, so calling
// this before Mount is only needed for extra refreshes.
func (c *Container) AppendSplitter(s *Splitter) {
	c.splitters = append(c.splitters, s)
}

func (c *Container) registered(s *Splitter) bool {
	for _, r := range c.splitters {
		if r == s {
			return true
		}
	}
	return false
}

// Splitters returns the registered splitters.
func (c *Container) Splitters() []*Splitter {
	return c.splitters
}

// Bounds returns the rectangle the container was last laid out in.
func (c *Container) Bounds() Rect {
	return c.bounds
}

// Mounted reports whether Mount has completed.
func (c *Container) Mounted() bool {
	return c.mounted
}

// Mount lays the tree out in bounds, then binds every splitter. Binding
// needs measured extents, so it can only happen after the first layout.
// A splitter with mismatched siblings fails the mount.
func (c *Container) Mount(bounds Rect, env *Env) error {
	if env == nil {
		env = &Env{}
	}
	if env.Pointer == nil {
		env.Pointer = NewPointerHub(nil)
	}
	if env.Now == nil {
		env.Now = time.Now
	}
	c.setEnv(env)
	c.bounds = bounds
	c.layout()
	return c.mount()
}

// Resize re-lays the tree out in bounds and rebinds every splitter.
func (c *Container) Resize(bounds Rect) error {
	if !c.mounted {
		return ErrNotMounted
	}
	c.bounds = bounds
	c.layout()
	return c.refresh()
}

// Unmount ends any drag in progress and forgets measurements.
func (c *Container) Unmount() {
	for _, s := range c.splitters {
		s.End()
		s.state = Unbound
	}
	c.splitters = nil
	for _, n := range c.children {
		p := n.box()
		p.mounted = false
		if p.inner != nil {
			p.inner.Unmount()
		}
	}
	c.mounted = false
}

// SplitterAt returns the splitter whose bounds contain pt, searching nested
// containers too.
func (c *Container) SplitterAt(pt Point) *Splitter {
	for _, n := range c.children {
		if !n.Bounds().Contains(pt) {
			continue
		}
		switch v := n.(type) {
		case *Splitter:
			return v
		case *Pane:
			if v.inner != nil {
				return v.inner.SplitterAt(pt)
			}
		}
	}
	return nil
}

// PaneAt returns the innermost pane whose bounds contain pt. Splitters are
// not panes for this purpose.
func (c *Container) PaneAt(pt Point) *Pane {
	for _, n := range c.children {
		p, ok := n.(*Pane)
		if !ok || !p.bounds.Contains(pt) {
			continue
		}
		if p.inner != nil {
			if q := p.inner.PaneAt(pt); q != nil {
				return q
			}
		}
		return p
	}
	return nil
}

func (c *Container) setEnv(env *Env) {
	c.env = env
	for _, n := range c.children {
		if p := n.box(); p.inner != nil {
			p.inner.setEnv(env)
		}
	}
}

// mount runs children first, the way nested components finish mounting
// before their parent does.
func (c *Container) mount() error {
	for _, n := range c.children {
		if p, ok := n.(*Pane); ok && p.inner != nil {
			if err := p.inner.mount(); err != nil {
				return err
			}
		}
	}
	c.mounted = true
	for _, n := range c.children {
		n.box().mounted = true
		if s, ok := n.(*Splitter); ok && !c.registered(s) {
			c.AppendSplitter(s)
		}
	}
	for _, s := range c.splitters {
		if err := s.Refresh(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Container) refresh() error {
	for _, n := range c.children {
		if p, ok := n.(*Pane); ok && p.inner != nil {
			if err := p.inner.refresh(); err != nil {
				return err
			}
		}
	}
	for _, s := range c.splitters {
		if err := s.Refresh(); err != nil {
			return err
		}
	}
	return nil
}

// layout assigns every child its rectangle. Fixed panes and splitters get
// their extent; flexible panes split what is left evenly, never going below
// their minimum. A pane of the wrong kind for this container has no extent
// along the main axis and is treated as flexible.
func (c *Container) layout() {
	main := c.kind.span(c.bounds)
	sizes := make([]int, len(c.children))
	var flex []int
	used := 0
	for i, n := range c.children {
		p := n.box()
		if p.kind == c.kind && p.fixed {
			sizes[i] = p.extent
			used += p.extent
			continue
		}
		flex = append(flex, i)
	}

	if len(flex) > 0 {
		free := main - used
		share, rem := 0, 0
		if free > 0 {
			share, rem = free/len(flex), free%len(flex)
		}
		for j, i := range flex {
			s := share
			if j < rem {
				s++
			}
			p := c.children[i].box()
			if p.kind == c.kind {
				s = max(s, p.min)
			}
			sizes[i] = s
		}
	}

	pos := c.bounds.X
	if c.kind == KindRow {
		pos = c.bounds.Y
	}
	for i, n := range c.children {
		r := c.bounds
		if c.kind == KindRow {
			r.Y, r.Height = pos, sizes[i]
		} else {
			r.X, r.Width = pos, sizes[i]
		}
		n.box().place(r)
		pos += sizes[i]
	}
}

func (c *Container) pointer() *PointerHub {
	if c.env == nil {
		return nil
	}
	return c.env.Pointer
}

func (c *Container) now() time.Time {
	if c.env == nil || c.env.Now == nil {
		return time.Now()
	}
	return c.env.Now()
}

func (c *Container) dragEnded(st DragStats) {
	if c.env != nil && c.env.OnDragEnd != nil {
		c.env.OnDragEnd(st)
	}
}
