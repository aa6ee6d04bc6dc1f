package ui

import (
	"strings"

	"panekit/internal/layout"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Render draws a mounted container. Each pane shows the view of its panel;
// panes without a panel render blank.
func Render(root *layout.Container, panels map[*layout.Pane]*Panel) string {
	if root == nil || !root.Mounted() {
		return ""
	}
	return renderContainer(root, panels)
}

func renderContainer(c *layout.Container, panels map[*layout.Pane]*Panel) string {
	parts := make([]string, 0, len(c.Children()))
	for _, n := range c.Children() {
		if n.Bounds().IsEmpty() {
			continue
		}
		switch v := n.(type) {
		case *layout.Splitter:
			parts = append(parts, renderSplitter(v))
		case *layout.Pane:
			if inner := v.Inner(); inner != nil {
				parts = append(parts, renderContainer(inner, panels))
				continue
			}
			parts = append(parts, renderPane(v, panels[v]))
		}
	}
	if c.Kind() == layout.KindRow {
		return lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderPane(p *layout.Pane, panel *Panel) string {
	b := p.Bounds()
	style := ClassStyles[p.Class()].Inherit(Styles.Pane)
	content := ""
	if panel != nil {
		style = panel.Style.Inherit(style)
		content = panel.View.View()
	}
	return style.Width(b.Width).Height(b.Height).Render(clip(content, b.Width, b.Height))
}

func renderSplitter(s *layout.Splitter) string {
	b := s.Bounds()
	glyph := "│"
	if s.Pane().Kind() == layout.KindRow {
		glyph = "─"
	}
	style := ClassStyles[s.Pane().Class()].Inherit(Styles.Splitter)
	if s.State() == layout.Dragging {
		style = Styles.SplitterActive
	}
	line := strings.Repeat(glyph, b.Width)
	lines := make([]string, b.Height)
	for i := range lines {
		lines[i] = line
	}
	return style.Render(strings.Join(lines, "\n"))
}

// clip cuts s down to at most height lines of at most width cells.
func clip(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, width, "")
	}
	return strings.Join(lines, "\n")
}
