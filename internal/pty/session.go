package pty

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// ErrClosed is returned by Resize after Close.
var ErrClosed = errors.New("pty session closed")

// Session is a running command attached to a pseudo-terminal.
type Session struct {
	runner Runner
	cmd    *exec.Cmd
	rwc    io.ReadWriteCloser
	size   Size
	closed bool
}

// Start runs cmd under r with the given initial size.
func Start(ctx context.Context, r Runner, cmd *exec.Cmd, size Size) (*Session, error) {
	rwc, err := r.Start(ctx, cmd, size)
	if err != nil {
		return nil, fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	return &Session{runner: r, cmd: cmd, rwc: rwc, size: size}, nil
}

// Read reads terminal output.
func (s *Session) Read(p []byte) (int, error) {
	return s.rwc.Read(p)
}

// Write sends input to the terminal.
func (s *Session) Write(p []byte) (int, error) {
	return s.rwc.Write(p)
}

// Size returns the last size applied.
func (s *Session) Size() Size {
	return s.size
}

// Resize changes the terminal size. Resizing to the current size does nothing.
func (s *Session) Resize(size Size) error {
	if s.closed {
		return ErrClosed
	}
	if size == s.size {
		return nil
	}
	if err := s.runner.Resize(s.rwc, size); err != nil {
		return fmt.Errorf("resize to %dx%d: %w", size.Cols, size.Rows, err)
	}
	s.size = size
	return nil
}

// Close closes the terminal and kills the command if it is still running.
// Closing twice is a no-op.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.rwc.Close()
	if p := s.cmd.Process; p != nil && s.cmd.ProcessState == nil {
		_ = p.Kill()
		_ = s.cmd.Wait()
	}
	return err
}
