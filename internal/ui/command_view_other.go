//go:build !unix

package ui

func isEIO(error) bool {
	return false
}
