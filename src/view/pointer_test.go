package view

import (
	"testing"

	"github.com/stretchr/testify/require"

	"automaton/src/grid"
	"automaton/src/universe"
)

//gridControls drives the grid directly, the way the universe does it in its main loop
type gridControls struct {
	g      *grid.Grid
	steps  int
	clears int
}

func (c *gridControls) InverseCell(x int, y int) error { return c.g.Toggle(x, y) }
func (c *gridControls) Step()                          { c.steps++; c.g.Step() }
func (c *gridControls) Clear()                         { c.clears++; c.g.Clear() }

func newTestPointer(t *testing.T) (*Pointer, *gridControls) {
	g, err := grid.New(35)
	require.NoError(t, err)
	c := &gridControls{g: g}
	return NewPointer(c, NewLayout(35, 20), universe.NewAutoAdvance(2)), c
}

func alive(t *testing.T, g *grid.Grid, x int, y int) bool {
	a, err := g.IsAlive(x, y)
	require.NoError(t, err)
	return a
}

func TestPointer_PressCell(t *testing.T) {
	p, c := newTestPointer(t)
	p.Press(45, 65)
	require.True(t, alive(t, c.g, 2, 3))
	p.Release()
	p.Press(41, 79)
	require.False(t, alive(t, c.g, 2, 3))
	require.Zero(t, c.g.LiveCells())
}

func TestPointer_PressOutside(t *testing.T) {
	p, c := newTestPointer(t)
	p.Press(900, 500)
	p.Drag(950, 600)
	require.Zero(t, c.g.LiveCells())
	require.Zero(t, c.steps)
	require.Zero(t, c.clears)
}

func TestPointer_Buttons(t *testing.T) {
	p, c := newTestPointer(t)
	for _, cell := range [][2]int{{10, 10}, {11, 10}, {12, 10}} {
		require.NoError(t, c.g.Toggle(cell[0], cell[1]))
	}
	p.Press(720, 20)
	require.Equal(t, 1, c.steps)
	require.True(t, alive(t, c.g, 11, 9))
	require.False(t, alive(t, c.g, 10, 10))

	p.Press(720, 150)
	require.Equal(t, 1, c.clears)
	require.Zero(t, c.g.LiveCells())

	require.False(t, p.AutoEnabled())
	p.Press(720, 80)
	require.True(t, p.AutoEnabled())
	p.Press(720, 80)
	require.False(t, p.AutoEnabled())
}

func TestPointer_DragTogglesEachCellOnce(t *testing.T) {
	p, c := newTestPointer(t)
	p.Press(5, 5)
	//several events inside the same cell
	p.Drag(6, 5)
	p.Drag(7, 8)
	p.Drag(25, 8)
	p.Drag(30, 9)
	p.Drag(45, 9)
	p.Release()
	require.Equal(t, 3, c.g.LiveCells())
	for x := 0; x < 3; x++ {
		require.True(t, alive(t, c.g, x, 0))
	}

	//drag without the press does nothing
	p.Drag(100, 100)
	require.Equal(t, 3, c.g.LiveCells())
}

func TestPointer_DragReentersCell(t *testing.T) {
	p, c := newTestPointer(t)
	p.Press(690, 5)
	p.Drag(705, 5) //leaves the field
	p.Drag(690, 5) //comes back
	require.False(t, alive(t, c.g, 34, 0))
}

func TestPointer_Frame(t *testing.T) {
	p, c := newTestPointer(t)
	require.False(t, p.Frame())
	p.Press(720, 80)
	steps := 0
	for i := 0; i < 6; i++ {
		if p.Frame() {
			steps++
		}
	}
	require.Equal(t, 3, steps)
	require.Equal(t, 3, c.steps)
}
