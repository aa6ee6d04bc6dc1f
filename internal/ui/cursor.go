package ui

import (
	"io"
	"log"

	"panekit/internal/layout"

	"github.com/charmbracelet/x/ansi"
)

// TerminalCursor sets the mouse pointer shape of the hosting terminal.
// Terminals without pointer shape support ignore the sequence.
type TerminalCursor struct {
	w    io.Writer
	last layout.Cursor
}

// Ensure TerminalCursor implements layout.CursorSink.
var _ layout.CursorSink = (*TerminalCursor)(nil)

// NewTerminalCursor writes pointer shape changes to w.
func NewTerminalCursor(w io.Writer) *TerminalCursor {
	return &TerminalCursor{w: w, last: layout.CursorDefault}
}

// SetCursor implements layout.CursorSink.
func (c *TerminalCursor) SetCursor(v layout.Cursor) {
	if v == c.last {
		return
	}
	c.last = v
	if _, err := io.WriteString(c.w, ansi.SetPointerShape(v.String())); err != nil {
		log.Printf("ui: set pointer shape: %v", err)
	}
}

// Current returns the last shape written.
func (c *TerminalCursor) Current() layout.Cursor {
	return c.last
}
