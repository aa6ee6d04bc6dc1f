package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// Each View is the content of one pane.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Sizer is implemented by views that want to know the size of their pane.
// The App calls SetSize after every layout pass.
type Sizer interface {
	SetSize(width, height int)
}

// Closer is implemented by views holding resources past the program's life.
type Closer interface {
	Close() error
}
