package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/grid"
	"github.com/plus3/blockfall/session"
)

const cellSize = 8

// SessionInspector shows the session's lifecycle state, counters, pieces
// and a miniature of the playfield, with controls for pausing and
// resetting.
type SessionInspector struct {
	session *session.Session
}

func NewSessionInspector(s *session.Session) *SessionInspector {
	return &SessionInspector{session: s}
}

func (si *SessionInspector) Render(f *frame.Frame) {
	if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	s := si.session
	imgui.Text(fmt.Sprintf("Game: %s", s.GameID()))
	imgui.Text(fmt.Sprintf("State: %s", s.State()))
	imgui.Text(fmt.Sprintf("Game Time: %s", s.Now().Truncate(time.Millisecond)))
	imgui.Text(fmt.Sprintf("Rows Cleared: %d", s.RowsCleared()))
	imgui.Text(fmt.Sprintf("Losses: %d", s.Losses()))

	label := "Pause"
	if s.Paused() {
		label = "Resume"
	}
	if imgui.Button(label) {
		s.Enqueue(session.Pause)
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		s.Reset()
	}

	imgui.Separator()
	if p := s.Active(); p != nil {
		imgui.Text(fmt.Sprintf("Active: %s at (%d,%d), drop %d", p.Type(), p.Position().X, p.Position().Y, s.GhostOffset()))
	} else {
		imgui.Text("Active: none")
	}
	if p := s.Held(); p != nil {
		imgui.Text(fmt.Sprintf("Held: %s", p.Type()))
	} else {
		imgui.Text("Held: none")
	}

	if imgui.TreeNodeStr("Queue") {
		for i, p := range s.Queue() {
			imgui.BulletText(fmt.Sprintf("%d: %s", i, p.Type()))
		}
		if hidden := s.QueueLen() - len(s.Queue()); hidden > 0 {
			imgui.Text(fmt.Sprintf("(+%d hidden)", hidden))
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Playfield") {
		drawGrid(s.Grid())
		imgui.TreePop()
	}

	imgui.End()
}

func drawGrid(g *grid.Grid) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	background := imgui.ColorU32Vec4(imgui.NewVec4(0.1, 0.1, 0.1, 1.0))

	w := float32(g.Width() * cellSize)
	h := float32(g.Height() * cellSize)
	drawList.AddRectFilled(origin, imgui.NewVec2(origin.X+w, origin.Y+h), background)

	for y, row := range g.Rows() {
		for x, c := range row {
			if c == nil {
				continue
			}
			alpha := float32(0.6)
			if c.Frozen {
				alpha = 1.0
			}
			color := imgui.ColorU32Vec4(imgui.NewVec4(
				float32(c.Color.R)/255, float32(c.Color.G)/255, float32(c.Color.B)/255, alpha))
			lo := imgui.NewVec2(origin.X+float32(x*cellSize), origin.Y+float32(y*cellSize))
			hi := imgui.NewVec2(lo.X+cellSize-1, lo.Y+cellSize-1)
			drawList.AddRectFilled(lo, hi, color)
		}
	}

	imgui.Dummy(imgui.NewVec2(w, h))
}
