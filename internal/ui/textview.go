package ui

import (
	"strings"

	"panekit/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

// TextView shows static text clipped to its pane.
type TextView struct {
	Text   string
	width  int
	height int
}

// Ensure TextView implements View.
var _ View = (*TextView)(nil)

// NewTextView creates a view for text.
func NewTextView(text string) *TextView {
	return &TextView{Text: text}
}

// SetSize implements Sizer.
func (v *TextView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Init implements View.
func (v *TextView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *TextView) Update(tea.Msg) (View, tea.Cmd) {
	return v, nil
}

// View implements View.
func (v *TextView) View() string {
	return strings.Join(textutil.Fit(v.Text, v.width, v.height), "\n")
}
