// Package grid provides the bounded playfield matrix that pieces are placed into.
package grid

import "errors"

// ErrOutOfBounds is returned by writes to positions outside the grid.
var ErrOutOfBounds = errors.New("grid: position out of bounds")

//go:generate go tool stringer -type=State

// State describes what a grid lookup found at a position.
type State uint8

const (
	Empty State = iota
	Occupied
	OutOfBounds
)

// Pos is a cell coordinate with (0,0) at the top-left corner.
type Pos struct {
	X, Y int
}

// Add returns p shifted by d.
func (p Pos) Add(d Pos) Pos {
	return Pos{X: p.X + d.X, Y: p.Y + d.Y}
}

// Unit directions used by the engine.
var (
	Left  = Pos{X: -1}
	Right = Pos{X: 1}
	Down  = Pos{Y: 1}
)

// Cell is a single occupied grid position.
type Cell struct {
	Color  Color
	Frozen bool
}

// Grid is a W×H cell store. Rows are indexed top-down.
type Grid struct {
	width  int
	height int
	rows   [][]*Cell
}

// New creates an empty grid with the given dimensions.
func New(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		rows:   make([][]*Cell, height),
	}
	for y := range g.rows {
		g.rows[y] = make([]*Cell, width)
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// InBounds reports whether p lies inside [0,W)×[0,H).
func (g *Grid) InBounds(p Pos) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Get returns the cell at p. The returned State distinguishes an empty
// position from one that lies outside the grid; callers must check it
// before treating a zero Cell as empty.
func (g *Grid) Get(p Pos) (Cell, State) {
	if !g.InBounds(p) {
		return Cell{}, OutOfBounds
	}
	c := g.rows[p.Y][p.X]
	if c == nil {
		return Cell{}, Empty
	}
	return *c, Occupied
}

// Set writes c at p.
func (g *Grid) Set(p Pos, c Cell) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.rows[p.Y][p.X] = &c
	return nil
}

// Clear empties the cell at p.
func (g *Grid) Clear(p Pos) error {
	if !g.InBounds(p) {
		return ErrOutOfBounds
	}
	g.rows[p.Y][p.X] = nil
	return nil
}

// RowFull reports whether row y has no empty cell.
func (g *Grid) RowFull(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for _, c := range g.rows[y] {
		if c == nil {
			return false
		}
	}
	return true
}

// RowSettled reports whether row y is full and every cell in it is frozen.
func (g *Grid) RowSettled(y int) bool {
	if !g.RowFull(y) {
		return false
	}
	for _, c := range g.rows[y] {
		if !c.Frozen {
			return false
		}
	}
	return true
}

// RowHasFrozen reports whether row y holds at least one settled cell.
func (g *Grid) RowHasFrozen(y int) bool {
	if y < 0 || y >= g.height {
		return false
	}
	for _, c := range g.rows[y] {
		if c != nil && c.Frozen {
			return true
		}
	}
	return false
}

// RemoveRow deletes row y. Every row above it moves down by one and a new
// empty row is inserted at index 0, so the row count never changes.
func (g *Grid) RemoveRow(y int) error {
	if y < 0 || y >= g.height {
		return ErrOutOfBounds
	}
	copy(g.rows[1:y+1], g.rows[:y])
	g.rows[0] = make([]*Cell, g.width)
	return nil
}

// Reset empties every cell.
func (g *Grid) Reset() {
	for y := range g.rows {
		clear(g.rows[y])
	}
}

// Rows returns a copy of the grid contents for renderers. A nil entry is an
// empty cell.
func (g *Grid) Rows() [][]*Cell {
	out := make([][]*Cell, g.height)
	for y, row := range g.rows {
		out[y] = make([]*Cell, g.width)
		for x, c := range row {
			if c != nil {
				cp := *c
				out[y][x] = &cp
			}
		}
	}
	return out
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, row := range g.rows {
		for _, c := range row {
			if c != nil {
				n++
			}
		}
	}
	return n
}
