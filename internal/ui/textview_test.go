package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextView_ClipsToSize(t *testing.T) {
	v := NewTextView("first line\nsecond line\nthird\n")
	assert.Equal(t, "first line\nsecond line\nthird", v.View())

	v.SetSize(6, 2)
	assert.Equal(t, "first…\nsecon…", v.View())
}
