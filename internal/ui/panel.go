package ui

import (
	"panekit/internal/layout"

	"github.com/charmbracelet/lipgloss"
)

// Panel hosts a View inside a layout pane.
type Panel struct {
	ID    string
	Pane  *layout.Pane
	View  View
	Style lipgloss.Style
}

// Bounds returns the panel's rectangle from the last layout pass.
func (p *Panel) Bounds() layout.Rect {
	return p.Pane.Bounds()
}

// syncSize pushes the pane's current size to the view when it cares.
func (p *Panel) syncSize() {
	if s, ok := p.View.(Sizer); ok {
		b := p.Pane.Bounds()
		s.SetSize(b.Width, b.Height)
	}
}
