package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"

	"panekit/internal/pty"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// maxScrollback is the number of output lines a CommandView keeps.
const maxScrollback = 500

type commandOutputMsg struct {
	view *CommandView
	data []byte
}

type commandExitMsg struct {
	view *CommandView
	err  error
}

// CommandView runs a command under a pseudo-terminal and shows its output.
// The terminal follows the pane's size, so dragging a splitter resizes it.
type CommandView struct {
	Argv   []string
	Runner pty.Runner

	session  *pty.Session
	out      chan tea.Msg
	lines    []string
	partial  string
	viewport viewport.Model
	width    int
	height   int
	exited   bool
	err      error
}

// Ensure CommandView implements View.
var _ View = (*CommandView)(nil)

// NewCommandView creates a view that runs argv when initialized.
func NewCommandView(argv []string, runner pty.Runner) *CommandView {
	return &CommandView{
		Argv:     argv,
		Runner:   runner,
		viewport: viewport.New(0, 0),
	}
}

// Init implements View. It starts the command.
func (c *CommandView) Init() tea.Cmd {
	if len(c.Argv) == 0 {
		c.err = errors.New("no command")
		return nil
	}
	cmd := exec.Command(c.Argv[0], c.Argv[1:]...)
	s, err := pty.Start(context.Background(), c.Runner, cmd, pty.SizeFor(c.width, c.height))
	if err != nil {
		c.err = err
		log.Printf("ui: command %q: %v", c.Argv[0], err)
		return nil
	}
	c.session = s
	c.out = make(chan tea.Msg, 16)
	go pump(c, s, c.out)
	return c.wait()
}

// pump forwards terminal output to out until the terminal closes.
func pump(c *CommandView, r io.Reader, out chan<- tea.Msg) {
	defer close(out)
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			out <- commandOutputMsg{view: c, data: data}
		}
		if err != nil {
			out <- commandExitMsg{view: c, err: err}
			return
		}
	}
}

func (c *CommandView) wait() tea.Cmd {
	out := c.out
	return func() tea.Msg {
		msg, ok := <-out
		if !ok {
			return nil
		}
		return msg
	}
}

// Update implements View.
func (c *CommandView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case commandOutputMsg:
		if msg.view != c {
			return c, nil
		}
		c.append(msg.data)
		return c, c.wait()
	case commandExitMsg:
		if msg.view != c {
			return c, nil
		}
		c.exited = true
		// The pty master reports EIO once the child side is gone.
		if msg.err != nil && !errors.Is(msg.err, io.EOF) && !isEIO(msg.err) {
			c.err = msg.err
		}
		return c, nil
	}
	return c, nil
}

// Exited reports whether the command's output has ended.
func (c *CommandView) Exited() bool {
	return c.exited
}

// Output returns the captured output with escape sequences removed.
func (c *CommandView) Output() string {
	return strings.Join(c.allLines(), "\n")
}

// SetSize implements Sizer. The pseudo-terminal is resized to match.
func (c *CommandView) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.viewport.Width = width
	c.viewport.Height = height
	c.refreshContent()
	if c.session != nil {
		if err := c.session.Resize(pty.SizeFor(width, height)); err != nil {
			log.Printf("ui: command %q: %v", c.Argv[0], err)
		}
	}
}

// Close implements Closer.
func (c *CommandView) Close() error {
	if c.session == nil {
		return nil
	}
	return c.session.Close()
}

// View implements View.
func (c *CommandView) View() string {
	if c.err != nil {
		return Styles.Hint.Render(fmt.Sprintf("error: %v", c.err))
	}
	return c.viewport.View()
}

func (c *CommandView) append(data []byte) {
	text := ansi.Strip(string(data))
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "")
	parts := strings.Split(c.partial+text, "\n")
	c.partial = parts[len(parts)-1]
	c.lines = append(c.lines, parts[:len(parts)-1]...)
	if n := len(c.lines) - maxScrollback; n > 0 {
		c.lines = c.lines[n:]
	}
	c.refreshContent()
}

func (c *CommandView) allLines() []string {
	if c.partial == "" {
		return c.lines
	}
	return append(append([]string(nil), c.lines...), c.partial)
}

func (c *CommandView) refreshContent() {
	c.viewport.SetContent(strings.Join(c.allLines(), "\n"))
	c.viewport.GotoBottom()
}
