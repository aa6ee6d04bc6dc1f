// Package pty runs commands under a pseudo-terminal sized to a pane.
package pty

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"
)

// Size is a terminal size in character cells.
type Size struct {
	Rows uint16
	Cols uint16
}

// SizeFor converts a pane's width and height to a Size. Each dimension is
// kept between 1 and the largest value a winsize can carry.
func SizeFor(width, height int) Size {
	return Size{Rows: cells(height), Cols: cells(width)}
}

func cells(v int) uint16 {
	switch {
	case v < 1:
		return 1
	case v > 0xffff:
		return 0xffff
	default:
		return uint16(v)
	}
}

// Runner spawns and resizes pseudo-terminals. Tests substitute a fake.
type Runner interface {
	Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error)
	Resize(rwc io.ReadWriteCloser, size Size) error
}

// CreackPTY implements Runner using github.com/creack/pty.
type CreackPTY struct{}

// Ensure CreackPTY implements Runner.
var _ Runner = (*CreackPTY)(nil)

// Start implements Runner. cmd should come from exec.CommandContext when
// ctx cancellation has to stop the process.
func (c *CreackPTY) Start(ctx context.Context, cmd *exec.Cmd, size Size) (io.ReadWriteCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pty.StartWithSize(cmd, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}

// Resize implements Runner. rwc must be the *os.File returned by Start;
// anything else is left alone.
func (c *CreackPTY) Resize(rwc io.ReadWriteCloser, size Size) error {
	f, ok := rwc.(*os.File)
	if !ok {
		return nil
	}
	return pty.Setsize(f, &pty.Winsize{Rows: size.Rows, Cols: size.Cols})
}
