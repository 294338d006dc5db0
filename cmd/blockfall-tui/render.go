package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/grid"
	"github.com/plus3/blockfall/piece"
	"github.com/plus3/blockfall/session"
)

// Every playfield column is two terminal cells wide.
const cellWidth = 2

var (
	frameStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle    = tcell.StyleDefault
	ghostStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	landingStyle = tcell.StyleDefault.Background(tcell.NewRGBColor(28, 28, 36))
)

type termRenderer struct {
	screen tcell.Screen
}

func (r *termRenderer) Render(s *session.Session) {
	r.screen.Clear()

	g := s.Grid()
	boardW := g.Width() * cellWidth
	r.drawFrame(0, 0, boardW+2, g.Height()+2)

	if p := s.Active(); p != nil {
		minX, maxX := p.LandingColumns()
		for y := 0; y < g.Height(); y++ {
			for x := minX; x <= maxX; x++ {
				r.fill(x, y, ' ', landingStyle)
			}
		}
		if d := s.GhostOffset(); d > 0 {
			for _, pos := range p.Cells() {
				r.fill(pos.X, pos.Y+d, '░', ghostStyle)
			}
		}
	}

	for y, row := range g.Rows() {
		for x, c := range row {
			if c != nil {
				r.fill(x, y, ' ', cellStyle(c.Color))
			}
		}
	}

	side := boardW + 4
	r.text(side, 1, "NEXT", textStyle)
	y := 2
	for _, p := range s.Queue() {
		y = r.preview(side, y, p) + 1
	}

	r.text(side, y+1, "HOLD", textStyle)
	if p := s.Held(); p != nil {
		r.preview(side, y+2, p)
	}

	r.text(side, g.Height()-2, fmt.Sprintf("rows %d  losses %d", s.RowsCleared(), s.Losses()), textStyle)
	r.text(side, g.Height()-1, s.State().String(), textStyle)
	if s.Paused() {
		r.text(2, g.Height()/2, "PAUSED - press p", textStyle.Reverse(true))
	}

	r.screen.Show()
}

func cellStyle(c grid.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// fill paints playfield cell (x,y) inside the frame.
func (r *termRenderer) fill(x, y int, ch rune, style tcell.Style) {
	for i := range cellWidth {
		r.screen.SetContent(1+x*cellWidth+i, 1+y, ch, nil, style)
	}
}

// preview draws p's shape at (x,y) and returns the row below it.
func (r *termRenderer) preview(x, y int, p *piece.Piece) int {
	shape := p.Shape()
	style := cellStyle(p.Color())
	for _, off := range shape.Offsets() {
		for i := range cellWidth {
			r.screen.SetContent(x+off.X*cellWidth+i, y+off.Y, ' ', nil, style)
		}
	}
	return y + shape.Height()
}

func (r *termRenderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *termRenderer) drawFrame(x, y, w, h int) {
	for i := x + 1; i < x+w-1; i++ {
		r.screen.SetContent(i, y, '─', nil, frameStyle)
		r.screen.SetContent(i, y+h-1, '─', nil, frameStyle)
	}
	for j := y + 1; j < y+h-1; j++ {
		r.screen.SetContent(x, j, '│', nil, frameStyle)
		r.screen.SetContent(x+w-1, j, '│', nil, frameStyle)
	}
	r.screen.SetContent(x, y, '┌', nil, frameStyle)
	r.screen.SetContent(x+w-1, y, '┐', nil, frameStyle)
	r.screen.SetContent(x, y+h-1, '└', nil, frameStyle)
	r.screen.SetContent(x+w-1, y+h-1, '┘', nil, frameStyle)
}
