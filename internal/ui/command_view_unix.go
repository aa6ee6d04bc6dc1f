//go:build unix

package ui

import (
	"errors"
	"syscall"
)

func isEIO(err error) bool {
	return errors.Is(err, syscall.EIO)
}
