// Package piece implements the falling structures of the playfield: blocks,
// pieces built from shape templates, and the factory that deals them.
package piece

import (
	"time"

	"github.com/plus3/blockfall/grid"
)

// Piece is a set of blocks laid out by a shape template. It owns its blocks
// and moves them as a unit.
type Piece struct {
	kind   Type
	shape  Shape
	color  grid.Color
	pos    grid.Pos
	blocks []*Block
	frozen bool

	fallInterval time.Duration
	lastFall     time.Duration

	grid *grid.Grid
}

// New creates an unplaced piece of type t with its bounding box's top-left
// corner at pos. Gravity moves it one row every fallInterval.
func New(t Type, pos grid.Pos, fallInterval time.Duration) *Piece {
	shape, color := Template(t)
	p := &Piece{
		kind:         t,
		shape:        shape,
		color:        color,
		pos:          pos,
		fallInterval: fallInterval,
	}
	p.build()
	return p
}

func (p *Piece) Type() Type              { return p.kind }
func (p *Piece) Color() grid.Color       { return p.color }
func (p *Piece) Position() grid.Pos      { return p.pos }
func (p *Piece) Frozen() bool            { return p.frozen }
func (p *Piece) Placed() bool            { return p.grid != nil }
func (p *Piece) Blocks() []*Block        { return p.blocks }
func (p *Piece) LastFall() time.Duration { return p.lastFall }

// Shape returns a copy of the current, possibly rotated, shape.
func (p *Piece) Shape() Shape {
	return p.shape.Clone()
}

// Cells returns the absolute position of every block.
func (p *Piece) Cells() []grid.Pos {
	out := make([]grid.Pos, len(p.blocks))
	for i, b := range p.blocks {
		out[i] = b.Pos()
	}
	return out
}

func (p *Piece) build() {
	offsets := p.shape.Offsets()
	p.blocks = make([]*Block, len(offsets))
	for i, off := range offsets {
		p.blocks[i] = NewBlock(p.pos.Add(off), p.color)
	}
}

// Place binds the piece and all of its blocks to g.
func (p *Piece) Place(g *grid.Grid) {
	p.grid = g
	for _, b := range p.blocks {
		b.Place(g)
	}
}

// StartFallTimer restarts the gravity interval at now.
func (p *Piece) StartFallTimer(now time.Duration) {
	p.lastFall = now
}

// commit flushes pending block moves.
func (p *Piece) commit() {
	for _, b := range p.blocks {
		b.Update()
	}
}

// Move shifts the whole piece one step in dir. Every block is checked
// before any of them is touched, so either all blocks move or none do.
// Pending moves from an earlier request are committed first so that several
// requests within one tick compose.
func (p *Piece) Move(dir grid.Pos) bool {
	if p.grid == nil || p.frozen {
		return false
	}
	p.commit()

	for _, b := range p.blocks {
		if !b.CanMove(dir) {
			return false
		}
	}

	p.pos = p.pos.Add(dir)
	for _, b := range p.blocks {
		b.Move(dir)
	}
	return true
}

// Update applies gravity when a fall interval has elapsed since the last
// step, then commits every block so moves requested by input are written
// once per tick as well.
func (p *Piece) Update(now time.Duration) {
	if now-p.lastFall >= p.fallInterval {
		p.Fall()
		p.lastFall = now
	}
	p.commit()
}

// Fall moves the piece down one row. When it cannot, the piece freezes and
// Fall returns false. Frozen and unplaced pieces never fall.
func (p *Piece) Fall() bool {
	if p.frozen || p.grid == nil {
		return false
	}
	if p.Move(grid.Down) {
		return true
	}
	p.Freeze()
	return false
}

// InstantFall drops the piece until it settles. The number of steps is
// bounded by the grid height.
func (p *Piece) InstantFall() {
	if p.grid == nil {
		return
	}
	for range p.grid.Height() {
		ok := p.Fall()
		p.commit()
		if !ok {
			return
		}
	}
}

// Freeze settles the piece and every block it owns.
func (p *Piece) Freeze() {
	p.frozen = true
	for _, b := range p.blocks {
		b.Freeze()
	}
}

// RotateCCW turns the piece 90° counter-clockwise.
//
// The rotation is rejected, leaving shape and position untouched, when any
// rotated cell would land on a settled cell. Cells that fall outside the
// playfield horizontally are pushed back in by shifting the piece; cells
// outside vertically are left where they are.
func (p *Piece) RotateCCW() bool {
	if p.grid == nil || p.frozen {
		return false
	}
	p.commit()

	rotated := p.shape.RotateCCW()
	offsets := rotated.Offsets()

	var dx int
	for _, off := range offsets {
		at := p.pos.Add(off)
		cell, state := p.grid.Get(at)
		switch state {
		case grid.Occupied:
			if cell.Frozen {
				return false
			}
		case grid.OutOfBounds:
			ox, _ := overflow(at, p.grid.Width(), p.grid.Height())
			if abs(ox) > abs(dx) {
				dx = ox
			}
		}
	}

	pos := grid.Pos{X: p.pos.X - dx, Y: p.pos.Y}
	if dx != 0 {
		for _, off := range offsets {
			if cell, state := p.grid.Get(pos.Add(off)); state == grid.Occupied && cell.Frozen {
				return false
			}
		}
	}

	p.Remove()
	p.shape = rotated
	p.pos = pos
	p.build()
	for _, b := range p.blocks {
		b.Place(p.grid)
	}
	return true
}

// Remove clears the piece's cells from the grid and detaches its blocks.
// The piece itself stays bound to the grid.
func (p *Piece) Remove() {
	for _, b := range p.blocks {
		b.Remove()
	}
}

// ResetTo rebuilds the piece's blocks at pos, unfrozen and unplaced.
func (p *Piece) ResetTo(pos grid.Pos) {
	p.Remove()
	p.pos = pos
	p.frozen = false
	p.grid = nil
	p.build()
}

// LandingColumns returns the leftmost and rightmost columns the piece
// covers, for highlighting the column band it will land in.
func (p *Piece) LandingColumns() (minX, maxX int) {
	return p.pos.X, p.pos.X + p.shape.Width() - 1
}

// DropDistance returns how many rows the piece can fall before settling.
func (p *Piece) DropDistance() int {
	if p.grid == nil || p.frozen || len(p.blocks) == 0 {
		return 0
	}
	for d := 1; ; d++ {
		for _, b := range p.blocks {
			cell, state := p.grid.Get(b.Pos().Add(grid.Pos{Y: d}))
			if state == grid.OutOfBounds || (state == grid.Occupied && cell.Frozen) {
				return d - 1
			}
		}
	}
}

// overflow returns how far at lies outside [0,w)×[0,h) on each axis:
// negative past the left/top edge, positive past the right/bottom edge.
func overflow(at grid.Pos, w, h int) (dx, dy int) {
	switch {
	case at.X < 0:
		dx = at.X
	case at.X >= w:
		dx = at.X - (w - 1)
	}
	switch {
	case at.Y < 0:
		dy = at.Y
	case at.Y >= h:
		dy = at.Y - (h - 1)
	}
	return dx, dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
