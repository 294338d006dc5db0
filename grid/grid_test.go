package grid_test

import (
	"fmt"
	"testing"

	"github.com/plus3/blockfall/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = grid.RGB(255, 0, 0)

func TestNewGridIsEmpty(t *testing.T) {
	g := grid.New(10, 24)

	assert.Equal(t, 10, g.Width())
	assert.Equal(t, 24, g.Height())
	assert.Equal(t, 0, g.Count())

	_, state := g.Get(grid.Pos{X: 0, Y: 0})
	assert.Equal(t, grid.Empty, state)
}

func TestOutOfBoundsNeverMutates(t *testing.T) {
	g := grid.New(4, 3)
	require.NoError(t, g.Set(grid.Pos{X: 1, Y: 1}, grid.Cell{Color: red}))

	positions := []grid.Pos{
		{X: -1, Y: 0},
		{X: 0, Y: -1},
		{X: 4, Y: 0},
		{X: 0, Y: 3},
		{X: 4, Y: 3},
		{X: -5, Y: 100},
	}

	for _, p := range positions {
		t.Run(fmt.Sprintf("x=%d,y=%d", p.X, p.Y), func(t *testing.T) {
			assert.False(t, g.InBounds(p))

			cell, state := g.Get(p)
			assert.Equal(t, grid.OutOfBounds, state)
			assert.Equal(t, grid.Cell{}, cell)

			assert.ErrorIs(t, g.Set(p, grid.Cell{Color: red, Frozen: true}), grid.ErrOutOfBounds)
			assert.ErrorIs(t, g.Clear(p), grid.ErrOutOfBounds)
			assert.Equal(t, 1, g.Count())
		})
	}
}

func TestSetGetClear(t *testing.T) {
	g := grid.New(4, 3)
	p := grid.Pos{X: 3, Y: 2}

	require.NoError(t, g.Set(p, grid.Cell{Color: red, Frozen: true}))
	cell, state := g.Get(p)
	assert.Equal(t, grid.Occupied, state)
	assert.Equal(t, red, cell.Color)
	assert.True(t, cell.Frozen)

	require.NoError(t, g.Clear(p))
	_, state = g.Get(p)
	assert.Equal(t, grid.Empty, state)
}

func fillRow(t *testing.T, g *grid.Grid, y int, frozen bool) {
	t.Helper()
	for x := 0; x < g.Width(); x++ {
		require.NoError(t, g.Set(grid.Pos{X: x, Y: y}, grid.Cell{Color: red, Frozen: frozen}))
	}
}

func TestRemoveRowShiftsDown(t *testing.T) {
	g := grid.New(3, 4)
	fillRow(t, g, 3, true)
	require.NoError(t, g.Set(grid.Pos{X: 1, Y: 2}, grid.Cell{Color: red, Frozen: true}))
	require.NoError(t, g.Set(grid.Pos{X: 0, Y: 0}, grid.Cell{Color: red, Frozen: true}))

	require.True(t, g.RowFull(3))
	require.NoError(t, g.RemoveRow(3))

	assert.Equal(t, 4, g.Height())
	assert.Len(t, g.Rows(), 4)
	assert.False(t, g.RowFull(3))

	_, state := g.Get(grid.Pos{X: 1, Y: 3})
	assert.Equal(t, grid.Occupied, state, "row above the cleared row moves down")
	_, state = g.Get(grid.Pos{X: 0, Y: 1})
	assert.Equal(t, grid.Occupied, state)
	for x := 0; x < 3; x++ {
		_, state = g.Get(grid.Pos{X: x, Y: 0})
		assert.Equal(t, grid.Empty, state, "new row at index 0 is empty")
	}
	assert.Equal(t, 2, g.Count())
}

func TestRemoveRowKeepsRowCount(t *testing.T) {
	g := grid.New(5, 6)
	for i := 0; i < 20; i++ {
		fillRow(t, g, 5, true)
		require.NoError(t, g.RemoveRow(5))
		assert.Len(t, g.Rows(), 6)
		assert.Equal(t, 0, g.Count())
	}

	assert.ErrorIs(t, g.RemoveRow(6), grid.ErrOutOfBounds)
	assert.ErrorIs(t, g.RemoveRow(-1), grid.ErrOutOfBounds)
}

func TestRemoveTopRow(t *testing.T) {
	g := grid.New(2, 2)
	fillRow(t, g, 0, true)
	require.NoError(t, g.RemoveRow(0))
	assert.Equal(t, 0, g.Count())
}

func TestRowHasFrozen(t *testing.T) {
	g := grid.New(3, 3)
	require.NoError(t, g.Set(grid.Pos{X: 1, Y: 0}, grid.Cell{Color: red}))
	assert.False(t, g.RowHasFrozen(0))

	require.NoError(t, g.Set(grid.Pos{X: 2, Y: 0}, grid.Cell{Color: red, Frozen: true}))
	assert.True(t, g.RowHasFrozen(0))
	assert.False(t, g.RowHasFrozen(9))
}

func TestRowSettled(t *testing.T) {
	g := grid.New(3, 3)
	fillRow(t, g, 2, true)
	fillRow(t, g, 1, false)

	assert.True(t, g.RowSettled(2))
	assert.True(t, g.RowFull(1))
	assert.False(t, g.RowSettled(1))
	assert.False(t, g.RowSettled(0))
}

func TestRowsIsACopy(t *testing.T) {
	g := grid.New(2, 2)
	require.NoError(t, g.Set(grid.Pos{X: 0, Y: 0}, grid.Cell{Color: red}))

	rows := g.Rows()
	rows[0][0].Frozen = true
	rows[1][1] = &grid.Cell{}

	cell, _ := g.Get(grid.Pos{X: 0, Y: 0})
	assert.False(t, cell.Frozen)
	_, state := g.Get(grid.Pos{X: 1, Y: 1})
	assert.Equal(t, grid.Empty, state)
}

func TestReset(t *testing.T) {
	g := grid.New(3, 3)
	fillRow(t, g, 1, true)
	g.Reset()
	assert.Equal(t, 0, g.Count())
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := grid.RGB(0xff, 0x80, 0x00).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0x8080), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "OutOfBounds", grid.OutOfBounds.String())
	assert.Equal(t, "State(9)", grid.State(9).String())
}
