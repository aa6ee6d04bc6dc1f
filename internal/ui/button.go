package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ClickAnimateDelay is how long a keyboard-activated button shows as pressed.
const ClickAnimateDelay = 100 * time.Millisecond

// buttonReleaseMsg ends a click animation. gen ties it to the activation
// that scheduled it so a stale timer never releases a later press.
type buttonReleaseMsg struct {
	button *Button
	gen    int
}

// Button is a pressable surface with a background layer and a client
// layer holding the icon and label.
type Button struct {
	Label       string
	Icon        string
	Class       string
	Style       lipgloss.Style // merged onto the root container
	OnClick     func()
	OnIconClick func()
	Disabled    bool

	down    bool
	focused bool
	gen     int
	closed  bool
	width   int
	height  int
}

// Ensure Button implements View.
var _ View = (*Button)(nil)

// NewButton creates a button with a label and click handler.
func NewButton(label string, onClick func()) *Button {
	return &Button{Label: label, OnClick: onClick}
}

// Active reports whether the button reacts to presses.
func (b *Button) Active() bool {
	return !b.Disabled && !b.closed
}

// Down reports whether the button is showing as pressed.
func (b *Button) Down() bool {
	return b.down
}

// Focused reports whether the spotlight is on the button.
func (b *Button) Focused() bool {
	return b.focused
}

// SetFocused is called by the Spotlight.
func (b *Button) SetFocused(v bool) {
	b.focused = v
}

// Press enters the pressed state. The icon handler fires right away,
// independent of the click handler.
func (b *Button) Press() {
	if !b.Active() {
		return
	}
	b.down = true
	if b.OnIconClick != nil {
		b.OnIconClick()
	}
}

// Release leaves the pressed state.
func (b *Button) Release() {
	if !b.Active() {
		return
	}
	b.down = false
}

// Leave is a pointer leaving the button; it releases without clicking.
func (b *Button) Leave() {
	b.Release()
}

// Click invokes the click handler.
func (b *Button) Click() {
	if b.Active() && b.OnClick != nil {
		b.OnClick()
	}
}

// Activate is a non-pointer activation such as Enter on the focused
// button. It clicks, shows the button pressed, and returns the command that
// releases it after ClickAnimateDelay. The press runs the icon handler as a
// pointer press would. Without a click handler it does nothing.
func (b *Button) Activate() tea.Cmd {
	if b.OnClick == nil || !b.Active() {
		return nil
	}
	b.Click()
	b.Press()
	b.gen++
	gen := b.gen
	return tea.Tick(ClickAnimateDelay, func(time.Time) tea.Msg {
		return buttonReleaseMsg{button: b, gen: gen}
	})
}

// Close cancels any pending release and stops the button reacting.
func (b *Button) Close() error {
	b.closed = true
	b.gen++
	b.down = false
	return nil
}

// Classes returns the class list of the root container.
func (b *Button) Classes() []string {
	var out []string
	if b.Class != "" {
		out = append(out, b.Class)
	}
	out = append(out, "button-alive-component")
	if b.down {
		out = append(out, "down")
	}
	if b.Active() {
		out = append(out, "active")
	}
	return out
}

// SetSize implements Sizer.
func (b *Button) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Init implements View.
func (b *Button) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (b *Button) Update(msg tea.Msg) (View, tea.Cmd) {
	// The release ends the animation even if the button was disabled
	// while it ran.
	if m, ok := msg.(buttonReleaseMsg); ok && m.button == b && m.gen == b.gen {
		b.down = false
	}
	return b, nil
}

// rootStyle layers the forwarded Style over the class style and the theme.
func (b *Button) rootStyle() lipgloss.Style {
	root := b.Style.Inherit(ClassStyles[b.Class]).Inherit(Styles.ButtonRoot)
	if b.focused {
		root = root.BorderForeground(Styles.ButtonFocused.GetBorderTopForeground())
	}
	return root
}

// View implements View.
func (b *Button) View() string {
	bg := Styles.ButtonBg
	if b.down {
		bg = Styles.ButtonDown
	}
	client := Styles.ButtonClient.Inherit(bg)
	if !b.Active() {
		client = client.Inherit(Styles.ButtonIdle)
	}
	parts := make([]string, 0, 2)
	if b.Icon != "" {
		parts = append(parts, b.Icon)
	}
	if b.Label != "" {
		parts = append(parts, b.Label)
	}

	out := b.rootStyle().Render(client.Render(strings.Join(parts, " ")))
	if b.width > 0 && b.height > 0 {
		out = lipgloss.Place(b.width, b.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}
