package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - splitter being dragged, focused button
	ColorHighlight = "205" // Magenta - pressed button
	ColorMuted     = "241" // Gray - idle splitters, hints
	ColorText      = "252" // Light gray - normal text
	ColorSurface   = "236" // Dark gray - button background layer
)

// Styles contains shared style definitions used by the renderer and widgets.
var Styles = struct {
	Pane           lipgloss.Style // Pane body
	Splitter       lipgloss.Style // Idle splitter
	SplitterActive lipgloss.Style // Splitter with a drag in progress

	ButtonRoot    lipgloss.Style // Button container
	ButtonBg      lipgloss.Style // Background layer
	ButtonDown    lipgloss.Style // Background layer while pressed
	ButtonFocused lipgloss.Style // Root border while spotlighted
	ButtonClient  lipgloss.Style // Icon + label layer
	ButtonIdle    lipgloss.Style // Client layer when not active

	Hint lipgloss.Style // Footer and status text
}{
	Pane: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Splitter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	SplitterActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	ButtonRoot: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)),
	ButtonBg: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSurface)),
	ButtonDown: lipgloss.NewStyle().
		Background(lipgloss.Color(ColorHighlight)),
	ButtonFocused: lipgloss.NewStyle().
		BorderForeground(lipgloss.Color(ColorAccent)),
	ButtonClient: lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1),
	ButtonIdle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
}

// ClassStyles maps pane class names to the style layered under a panel's
// own style. Unknown classes add nothing.
var ClassStyles = map[string]lipgloss.Style{
	"muted":   lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted)),
	"accent":  lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent)),
	"surface": lipgloss.NewStyle().Background(lipgloss.Color(ColorSurface)),
	"bold":    lipgloss.NewStyle().Bold(true),
}
