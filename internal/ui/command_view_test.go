package ui

import (
	"context"
	"io"
	"os/exec"
	"strings"
	"testing"

	"panekit/internal/pty"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTerm struct {
	io.Reader
	closed bool
}

func (f *fakeTerm) Write(p []byte) (int, error) { return len(p), nil }
func (f *fakeTerm) Close() error {
	f.closed = true
	return nil
}

type fakeRunner struct {
	term    *fakeTerm
	argv    []string
	resizes []pty.Size
}

func (r *fakeRunner) Start(ctx context.Context, cmd *exec.Cmd, size pty.Size) (io.ReadWriteCloser, error) {
	r.argv = cmd.Args
	return r.term, nil
}

func (r *fakeRunner) Resize(rwc io.ReadWriteCloser, size pty.Size) error {
	r.resizes = append(r.resizes, size)
	return nil
}

// drain runs cmd and feeds every message back into v until it stops
// asking for more.
func drain(t *testing.T, v View, cmd tea.Cmd) View {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 100, "command view never finished")
		msg := cmd()
		if msg == nil {
			break
		}
		v, cmd = v.Update(msg)
	}
	return v
}

func TestCommandView_CapturesOutput(t *testing.T) {
	r := &fakeRunner{term: &fakeTerm{Reader: strings.NewReader("hello \x1b[31mred\x1b[0m\r\nworld")}}
	v := NewCommandView([]string{"echo", "hi"}, r)

	drain(t, v, v.Init())
	assert.Equal(t, []string{"echo", "hi"}, r.argv)
	assert.True(t, v.Exited())
	assert.Equal(t, "hello red\nworld", v.Output())
	v.SetSize(20, 5)
	assert.Contains(t, v.View(), "world")
}

func TestCommandView_ResizesTerminal(t *testing.T) {
	r := &fakeRunner{term: &fakeTerm{Reader: strings.NewReader("")}}
	v := NewCommandView([]string{"sh"}, r)
	v.Init()

	v.SetSize(40, 10)
	v.SetSize(40, 10)
	v.SetSize(30, 10)
	assert.Equal(t, []pty.Size{{Rows: 10, Cols: 40}, {Rows: 10, Cols: 30}}, r.resizes)

	require.NoError(t, v.Close())
	assert.True(t, r.term.closed)
}

func TestCommandView_NoCommand(t *testing.T) {
	v := NewCommandView(nil, &fakeRunner{})
	assert.Nil(t, v.Init())
	assert.Contains(t, v.View(), "no command")
}

func TestCommandView_IgnoresOtherViews(t *testing.T) {
	a := NewCommandView([]string{"a"}, &fakeRunner{})
	b := NewCommandView([]string{"b"}, &fakeRunner{})
	_, cmd := a.Update(commandOutputMsg{view: b, data: []byte("x\n")})
	assert.Nil(t, cmd)
	assert.Empty(t, a.Output())
}
