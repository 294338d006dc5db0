package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/grid"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/session"
)

const (
	margin       = 16
	sidebarCells = 6
	previewScale = 0.5
)

var (
	backgroundColor = color.RGBA{24, 24, 28, 255}
	boardColor      = color.RGBA{40, 40, 48, 255}
	landingColor    = color.RGBA{56, 56, 68, 255}
	ghostColor      = color.RGBA{200, 200, 200, 160}
	pausedColor     = color.RGBA{0, 0, 0, 150}
)

// boardRenderer draws a session onto screen. screen is set by Game.Draw
// before every Render call.
type boardRenderer struct {
	screen *ebiten.Image
}

func (r *boardRenderer) Render(s *session.Session) {
	screen := r.screen
	screen.Fill(backgroundColor)

	g := s.Grid()
	cell := r.cellSize(g)
	boardW := cell * float32(g.Width())
	boardH := cell * float32(g.Height())

	vector.DrawFilledRect(screen, margin, margin, boardW, boardH, boardColor, false)

	if p := s.Active(); p != nil {
		minX, maxX := p.LandingColumns()
		x := margin + float32(minX)*cell
		vector.DrawFilledRect(screen, x, margin, float32(maxX-minX+1)*cell, boardH, landingColor, false)
	}

	for y, row := range g.Rows() {
		for x, c := range row {
			if c == nil {
				continue
			}
			drawCell(screen, margin+float32(x)*cell, margin+float32(y)*cell, cell, c.Color)
		}
	}

	if p := s.Active(); p != nil {
		if d := s.GhostOffset(); d > 0 {
			for _, pos := range p.Cells() {
				x := margin + float32(pos.X)*cell
				y := margin + float32(pos.Y+d)*cell
				vector.StrokeRect(screen, x+1, y+1, cell-2, cell-2, 1, ghostColor, false)
			}
		}
	}

	side := margin*2 + boardW
	ebitenutil.DebugPrintAt(screen, "NEXT", int(side), margin)
	y := float32(margin + 20)
	for _, p := range s.Queue() {
		drawPreview(screen, p, side, y, cell*previewScale)
		y += cell*previewScale*3 + 8
	}

	y += 8
	ebitenutil.DebugPrintAt(screen, "HOLD", int(side), int(y))
	if p := s.Held(); p != nil {
		drawPreview(screen, p, side, y+20, cell*previewScale)
	}

	hud := fmt.Sprintf("rows %d\nlosses %d\n%s", s.RowsCleared(), s.Losses(), s.State())
	ebitenutil.DebugPrintAt(screen, hud, int(side), int(margin+boardH-48))

	if s.Paused() {
		vector.DrawFilledRect(screen, margin, margin, boardW, boardH, pausedColor, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P", int(margin+boardW/2-48), int(margin+boardH/2))
	}
}

// cellSize fits the board and the sidebar into the screen.
func (r *boardRenderer) cellSize(g *grid.Grid) float32 {
	bounds := r.screen.Bounds()
	byWidth := float32(bounds.Dx()-3*margin) / float32(g.Width()+sidebarCells)
	byHeight := float32(bounds.Dy()-2*margin) / float32(g.Height())
	return max(min(byWidth, byHeight), 4)
}

func drawPreview(screen *ebiten.Image, p *piece.Piece, x, y, cell float32) {
	for _, off := range p.Shape().Offsets() {
		drawCell(screen, x+float32(off.X)*cell, y+float32(off.Y)*cell, cell, p.Color())
	}
}

func drawCell(screen *ebiten.Image, x, y, size float32, c grid.Color) {
	vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, c, false)
}
