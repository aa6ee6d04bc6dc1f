package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPane_SetExtentClampsToMin(t *testing.T) {
	p := NewRow(WithMin(10))

	p.SetExtent(4)
	assert.Equal(t, 10, p.Extent())
	assert.False(t, p.IsFlexible())

	// Same input twice gives the same result.
	p.SetExtent(4)
	assert.Equal(t, 10, p.Extent())

	p.SetExtent(25)
	assert.Equal(t, 25, p.Extent())
}

func TestPane_ConstructionClampsExtentUpToMin(t *testing.T) {
	p := NewCol(WithMin(20), WithExtent(5))
	assert.Equal(t, 20, p.Extent())
	assert.Equal(t, 20, p.MinExtent())
}

func TestPane_NegativeMinIsZero(t *testing.T) {
	p := NewRow(WithMin(-3))
	assert.Equal(t, 0, p.MinExtent())
	assert.Equal(t, 0, NewRow().MinExtent())
}

func TestPane_FlexibleUntilExtentSet(t *testing.T) {
	p := NewRow()
	assert.True(t, p.IsFlexible())
	assert.Equal(t, Constraint{}, p.Constraint())

	p.SetExtent(7)
	assert.False(t, p.IsFlexible())
	assert.Equal(t, Constraint{Min: "7px", Max: "7px"}, p.Constraint())

	p.ClearExtent()
	assert.True(t, p.IsFlexible())
	assert.Equal(t, Constraint{}, p.Constraint())
}

func TestPane_FlexibleExtentIsMeasured(t *testing.T) {
	flex := NewRow()
	root := NewRows(NewRow(WithExtent(10)), flex)
	assert.False(t, flex.Mounted())

	err := root.Mount(Rect{Width: 20, Height: 30}, nil)
	assert.NoError(t, err)
	assert.True(t, flex.Mounted())
	assert.Equal(t, 20, flex.Extent())
	assert.Equal(t, 20, flex.FlexExtent())
	assert.Equal(t, Rect{Y: 10, Width: 20, Height: 20}, flex.Bounds())
}

func TestPane_SetExtentRelaysOutSiblings(t *testing.T) {
	fixed := NewCol(WithExtent(10))
	flex := NewCol()
	root := NewCols(fixed, flex)
	assert.NoError(t, root.Mount(Rect{Width: 50, Height: 5}, nil))
	assert.Equal(t, 40, flex.Extent())

	fixed.SetExtent(30)
	assert.Equal(t, 20, flex.Extent())
	assert.Equal(t, 30, flex.Bounds().X)
}

func TestPane_Class(t *testing.T) {
	assert.Equal(t, "", NewRow().Class())
	assert.Equal(t, "sidebar", NewCol(WithClass("sidebar")).Class())
}
