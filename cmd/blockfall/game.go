package main

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/frame"
	"github.com/plus3/blockfall/session"
)

// Game implements ebiten.Game. Update drives the scheduler inside an ImGui
// frame, Draw renders the board and then the ImGui overlay on top.
type Game struct {
	session   *session.Session
	scheduler *frame.Scheduler
	backend   *debugui_ebiten.ImguiBackend
	overlay   frame.SystemId
	renderer  *boardRenderer
	dt        time.Duration
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.scheduler.SetEnabled(g.overlay, !g.scheduler.Enabled(g.overlay))
	}

	g.backend.BeginFrame()
	g.scheduler.Once(g.dt)
	g.backend.EndFrame()

	if g.scheduler.Stopped() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.screen = screen
	g.renderer.Render(g.session)

	g.backend.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
