package ui

import (
	"fmt"
	"log"

	"panekit/internal/layout"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel is the root model. It mounts the layout on the first window
// size, routes the mouse to splitters and buttons, and draws every panel.
type AppModel struct {
	Root      *layout.Container
	Panels    []*Panel
	Spotlight *Spotlight
	Keys      KeyMap
	Help      help.Model
	Pointer   *layout.PointerHub
	OnDragEnd func(layout.DragStats)

	byPane   map[*layout.Pane]*Panel
	width    int
	height   int
	pressed  *Button
	dragging *layout.Splitter
	closed   bool
	err      error
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model. cursor receives pointer shape
// changes during drags and may be nil.
func NewAppModel(root *layout.Container, panels []*Panel, cursor layout.CursorSink) *AppModel {
	m := &AppModel{
		Root:    root,
		Panels:  panels,
		Keys:    DefaultKeyMap(),
		Help:    help.New(),
		Pointer: layout.NewPointerHub(cursor),
		byPane:  make(map[*layout.Pane]*Panel, len(panels)),
	}
	var buttons []*Button
	for _, p := range panels {
		m.byPane[p.Pane] = p
		if b, ok := p.View.(*Button); ok {
			buttons = append(buttons, b)
		}
	}
	m.Spotlight = NewSpotlight(buttons...)
	return m
}

// AsTeaModel returns the model for tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Err returns the error that stopped the program, if any.
func (m *AppModel) Err() error {
	return m.err
}

// Close ends any drag, releases every view and unmounts the layout.
func (m *AppModel) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.Root.Unmount()
	for _, p := range m.Panels {
		if c, ok := p.View.(Closer); ok {
			if err := c.Close(); err != nil {
				log.Printf("ui: close %s: %v", p.ID, err)
			}
		}
	}
}

// Panel returns the panel with id, or nil.
func (m *AppModel) Panel(id string) *Panel {
	for _, p := range m.Panels {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(a.Panels))
	for _, p := range a.Panels {
		cmds = append(cmds, p.View.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		return a, a.relayout()
	case tea.MouseMsg:
		a.handleMouse(msg)
		return a, nil
	case tea.BlurMsg:
		a.Pointer.Cancel()
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.Keys.Quit):
			a.Close()
			return a, tea.Quit
		case key.Matches(msg, a.Keys.Next):
			a.Spotlight.Next()
			return a, nil
		case key.Matches(msg, a.Keys.Prev):
			a.Spotlight.Prev()
			return a, nil
		case key.Matches(msg, a.Keys.Activate):
			return a, a.Spotlight.Activate()
		case key.Matches(msg, a.Keys.Help):
			a.Help.ShowAll = !a.Help.ShowAll
			return a, a.relayout()
		}
	}
	return a, a.broadcast(msg)
}

// relayout mounts the layout on first call and resizes it afterwards. A
// layout that fails to bind stops the program.
func (a *appModelAdapter) relayout() tea.Cmd {
	if a.closed || a.width == 0 {
		return nil
	}
	a.Help.Width = a.width
	body := layout.Rect{Width: a.width, Height: max(a.height-lipgloss.Height(a.footer()), 0)}
	var err error
	if a.Root.Mounted() {
		err = a.Root.Resize(body)
	} else {
		err = a.Root.Mount(body, &layout.Env{Pointer: a.Pointer, OnDragEnd: a.dragEnded})
	}
	if err != nil {
		a.err = err
		log.Printf("ui: layout: %v", err)
		a.Close()
		return tea.Quit
	}
	a.syncSizes()
	return nil
}

func (a *appModelAdapter) dragEnded(st layout.DragStats) {
	a.dragging = nil
	log.Printf("ui: drag %s: %s/%s -> %s/%s (%d moves, %d rejected)",
		st.Orientation,
		layout.FormatPx(st.PrevStart), layout.FormatPx(st.NextStart),
		layout.FormatPx(st.PrevEnd), layout.FormatPx(st.NextEnd),
		st.Accepted, st.Rejected)
	if a.OnDragEnd != nil {
		a.OnDragEnd(st)
	}
}

func (a *appModelAdapter) syncSizes() {
	for _, p := range a.Panels {
		p.syncSize()
	}
}

// pointerEvent converts a left-button mouse message. Wheel and other
// buttons are ignored.
func pointerEvent(msg tea.MouseMsg) (layout.PointerEvent, bool) {
	pt := layout.Point{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return layout.PointerEvent{}, false
		}
		return layout.PointerEvent{Action: layout.PointerPress, Point: pt}, true
	case tea.MouseActionRelease:
		return layout.PointerEvent{Action: layout.PointerRelease, Point: pt}, true
	case tea.MouseActionMotion:
		return layout.PointerEvent{Action: layout.PointerMove, Point: pt}, true
	}
	return layout.PointerEvent{}, false
}

func (a *appModelAdapter) handleMouse(msg tea.MouseMsg) {
	ev, ok := pointerEvent(msg)
	if !ok || !a.Root.Mounted() {
		return
	}
	if a.Pointer.Dispatch(ev) {
		a.syncSizes()
		return
	}
	switch ev.Action {
	case layout.PointerPress:
		if s := a.Root.SplitterAt(ev.Point); s != nil {
			if err := s.Begin(ev.Point); err != nil {
				log.Printf("ui: drag: %v", err)
				return
			}
			a.dragging = s
			return
		}
		if b := a.buttonAt(ev.Point); b != nil {
			b.Press()
			a.pressed = b
			a.Spotlight.Focus(b)
		}
	case layout.PointerMove:
		if b := a.pressed; b != nil && a.buttonAt(ev.Point) != b {
			b.Leave()
			a.pressed = nil
		}
	case layout.PointerRelease:
		if b := a.pressed; b != nil {
			a.pressed = nil
			b.Release()
			if a.buttonAt(ev.Point) == b {
				b.Click()
			}
		}
	}
}

func (a *appModelAdapter) buttonAt(pt layout.Point) *Button {
	p := a.byPane[a.Root.PaneAt(pt)]
	if p == nil {
		return nil
	}
	b, _ := p.View.(*Button)
	return b
}

func (a *appModelAdapter) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, p := range a.Panels {
		v, cmd := p.View.Update(msg)
		p.View = v
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if !a.Root.Mounted() {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left, Render(a.Root, a.byPane), a.footer())
}

// footer is the help line, prefixed by the extents either side of the
// splitter being dragged.
func (a *appModelAdapter) footer() string {
	out := a.Help.View(a.Keys)
	if s := a.dragging; s != nil && s.State() == layout.Dragging {
		prev, next := s.Neighbors()
		status := fmt.Sprintf("%s | %s  ", layout.FormatPx(prev.Extent()), layout.FormatPx(next.Extent()))
		out = Styles.Hint.Render(status) + out
	}
	return out
}
