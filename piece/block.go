package piece

import "github.com/plus3/blockfall/grid"

// Block is a single grid-placed unit of a Piece.
//
// Movement is two-phase. Move validates the destination, vacates the
// block's current cell and records the target; Update commits the target and
// writes the cell there. Between the two calls the block occupies no cell,
// which lets every block of a piece move into cells its siblings have just
// vacated without colliding with them.
type Block struct {
	pos    grid.Pos
	target grid.Pos
	color  grid.Color
	frozen bool

	// grid is not owned by the block and always outlives it.
	grid *grid.Grid
}

// NewBlock creates an unplaced block at pos.
func NewBlock(pos grid.Pos, color grid.Color) *Block {
	return &Block{
		pos:    pos,
		target: pos,
		color:  color,
	}
}

func (b *Block) Pos() grid.Pos     { return b.pos }
func (b *Block) Color() grid.Color { return b.color }
func (b *Block) Frozen() bool      { return b.frozen }
func (b *Block) Placed() bool      { return b.grid != nil }
func (b *Block) Pending() bool     { return b.pos != b.target }
func (b *Block) Target() grid.Pos  { return b.target }
func (b *Block) Grid() *grid.Grid  { return b.grid }

// Place binds the block to g on the first call and writes its cell.
func (b *Block) Place(g *grid.Grid) {
	if b.grid == nil {
		b.grid = g
	}
	b.write()
}

// CanMove reports whether the cell one step in dir is empty or held by a
// block that is still falling. Settled cells and positions outside the grid
// block the move.
func (b *Block) CanMove(dir grid.Pos) bool {
	if b.grid == nil {
		return false
	}
	cell, state := b.grid.Get(b.pos.Add(dir))
	switch state {
	case grid.Empty:
		return true
	case grid.Occupied:
		return !cell.Frozen
	default:
		return false
	}
}

// Move requests a move in dir. It is a no-op returning false when the block
// is unplaced, already has a pending move, or the destination is blocked.
// On acceptance the current cell is cleared and the target recorded; the
// new cell is written by Update.
func (b *Block) Move(dir grid.Pos) bool {
	if b.grid == nil || b.Pending() {
		return false
	}
	if !b.CanMove(dir) {
		return false
	}
	_ = b.grid.Clear(b.pos)
	b.target = b.pos.Add(dir)
	return true
}

// Update commits a pending move and rewrites the cell at the block's
// position with its current color and frozen state.
func (b *Block) Update() {
	b.pos = b.target
	b.write()
}

// Freeze settles the block.
func (b *Block) Freeze() {
	b.frozen = true
	if !b.Pending() {
		b.write()
	}
}

// Remove clears the block's cell and unbinds it from the grid. A block with
// a pending move has already vacated its cell, so only the pending target
// is dropped.
func (b *Block) Remove() {
	if b.grid == nil {
		return
	}
	if !b.Pending() {
		_ = b.grid.Clear(b.pos)
	}
	b.target = b.pos
	b.grid = nil
}

func (b *Block) write() {
	if b.grid == nil {
		return
	}
	// Blocks pushed outside the playfield keep their position but have no cell.
	_ = b.grid.Set(b.pos, grid.Cell{Color: b.color, Frozen: b.frozen})
}
