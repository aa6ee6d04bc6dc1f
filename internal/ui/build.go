package ui

import (
	"fmt"
	"log"
	"strconv"

	"panekit/internal/config"
	"panekit/internal/layout"
	"panekit/internal/pty"
)

// Deps are the outside pieces a built app uses. A nil Runner means
// pty.CreackPTY.
type Deps struct {
	Runner    pty.Runner
	Cursor    layout.CursorSink
	OnDragEnd func(layout.DragStats)
	// Actions are click handlers a document can name, on top of the
	// built-in "log" and "count".
	Actions map[string]func()
}

// Build creates the app described by doc.
func Build(doc *config.Document, deps Deps) (*AppModel, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if deps.Runner == nil {
		deps.Runner = &pty.CreackPTY{}
	}
	b := &builder{deps: deps}
	var (
		root *layout.Container
		err  error
	)
	if doc.Layout.Rows != nil {
		root, err = b.container(layout.KindRow, doc.Layout.Rows)
	} else {
		root, err = b.container(layout.KindCol, doc.Layout.Cols)
	}
	if err != nil {
		return nil, err
	}
	m := NewAppModel(root, b.panels, deps.Cursor)
	m.OnDragEnd = deps.OnDragEnd
	return m, nil
}

type builder struct {
	deps   Deps
	panels []*Panel
	seq    int
}

func (b *builder) container(k layout.Kind, nodes []config.Node) (*layout.Container, error) {
	c := layout.NewRows()
	if k == layout.KindCol {
		c = layout.NewCols()
	}
	for _, n := range nodes {
		switch {
		case n.Splitter != nil:
			var opts []layout.SplitterOption
			if n.Splitter.Thickness > 0 {
				opts = append(opts, layout.WithThickness(n.Splitter.Thickness))
			}
			if n.Splitter.Class != "" {
				opts = append(opts, layout.WithPaneOptions(layout.WithClass(n.Splitter.Class)))
			}
			c.Append(layout.NewSplitter(opts...))
		case n.Row != nil:
			p, err := b.pane(layout.KindRow, n.Row)
			if err != nil {
				return nil, err
			}
			c.Append(p)
		case n.Col != nil:
			p, err := b.pane(layout.KindCol, n.Col)
			if err != nil {
				return nil, err
			}
			c.Append(p)
		default:
			// A bare container inside a list becomes a flexible pane of
			// the list's kind holding it.
			p, err := b.pane(k, &config.Pane{Rows: n.Rows, Cols: n.Cols})
			if err != nil {
				return nil, err
			}
			c.Append(p)
		}
	}
	return c, nil
}

func (b *builder) pane(k layout.Kind, cfg *config.Pane) (*layout.Pane, error) {
	b.seq++
	id := cfg.ID
	if id == "" {
		id = k.String() + "-" + strconv.Itoa(b.seq)
	}
	panel := &Panel{ID: id}

	opts := []layout.PaneOption{
		layout.WithMin(cfg.Min),
		layout.WithClass(cfg.Class),
		layout.WithResize(func(u layout.ExtentUpdate) {
			log.Printf("ui: %s resized to %s", id, layout.FormatPx(u.Extent))
			if panel.View != nil {
				panel.syncSize()
			}
		}),
	}
	if v, ok, err := cfg.ExtentFor(k); err != nil {
		return nil, fmt.Errorf("%s: %w", id, err)
	} else if ok {
		opts = append(opts, layout.WithExtent(v))
	}
	p := layout.NewRow(opts...)
	if k == layout.KindCol {
		p = layout.NewCol(opts...)
	}
	panel.Pane = p

	switch {
	case cfg.Rows != nil:
		inner, err := b.container(layout.KindRow, cfg.Rows)
		if err != nil {
			return nil, err
		}
		p.Nest(inner)
		return p, nil
	case cfg.Cols != nil:
		inner, err := b.container(layout.KindCol, cfg.Cols)
		if err != nil {
			return nil, err
		}
		p.Nest(inner)
		return p, nil
	case len(cfg.Command) > 0:
		panel.View = NewCommandView(cfg.Command, b.deps.Runner)
	case cfg.Button != nil:
		btn, err := b.button(id, cfg.Button)
		if err != nil {
			return nil, err
		}
		panel.View = btn
	default:
		panel.View = NewTextView(cfg.Text)
	}
	b.panels = append(b.panels, panel)
	return p, nil
}

func (b *builder) button(id string, cfg *config.Button) (*Button, error) {
	btn := &Button{
		Label:    cfg.Label,
		Icon:     cfg.Icon,
		Class:    cfg.Class,
		Disabled: cfg.Disabled,
	}
	var err error
	if btn.OnClick, err = b.action(id, btn, cfg.Action); err != nil {
		return nil, err
	}
	if btn.OnIconClick, err = b.action(id, btn, cfg.IconAction); err != nil {
		return nil, err
	}
	return btn, nil
}

func (b *builder) action(id string, btn *Button, name string) (func(), error) {
	if name == "" {
		return nil, nil
	}
	if fn, ok := b.deps.Actions[name]; ok {
		return fn, nil
	}
	switch name {
	case "log":
		return func() { log.Printf("ui: %s clicked", id) }, nil
	case "count":
		label, n := btn.Label, 0
		return func() {
			n++
			btn.Label = fmt.Sprintf("%s %d", label, n)
		}, nil
	}
	return nil, fmt.Errorf("%s: unknown action %q", id, name)
}
