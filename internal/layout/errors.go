package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrSiblingMismatch means a splitter is not between two Rows or two
	// Cols. It is a misuse of the layout and cannot be recovered from.
	ErrSiblingMismatch = errors.New("splitter must have both the same sibling Row or Col")
	// ErrNotMounted is returned when a measurement-dependent operation runs
	// before the container has been mounted.
	ErrNotMounted = errors.New("layout: not mounted")
	// ErrNotBound is returned by Begin on a splitter that never bound.
	ErrNotBound = errors.New("layout: splitter is not bound")
	// ErrPointerBusy is returned when another splitter already holds the pointer.
	ErrPointerBusy = errors.New("layout: pointer captured by another drag")
)

// BindError reports which siblings a splitter found when binding failed.
type BindError struct {
	Index      int
	Prev, Next string
}

func (e *BindError) Error() string {
	return fmt.Sprintf("layout: splitter at %d between %s and %s: %v", e.Index, e.Prev, e.Next, ErrSiblingMismatch)
}

func (e *BindError) Unwrap() error {
	return ErrSiblingMismatch
}

func describe(n Node) string {
	switch v := n.(type) {
	case nil:
		return "nothing"
	case *Pane:
		return v.kind.String()
	case *Splitter:
		return "splitter"
	default:
		return fmt.Sprintf("%T", n)
	}
}
