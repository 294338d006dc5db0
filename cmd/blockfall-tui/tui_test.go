package main

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandFor(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want session.Command
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), session.MoveLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), session.MoveRight},
		{tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), session.SoftDrop},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), session.Rotate},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), session.HardDrop},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), session.Hold},
		{tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone), session.Pause},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), session.Quit},
	}
	for _, tc := range cases {
		got, ok := commandFor(tc.ev)
		require.True(t, ok, tc.want.String())
		assert.Equal(t, tc.want, got)
	}

	_, ok := commandFor(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	assert.False(t, ok)
	_, ok = commandFor(tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone))
	assert.False(t, ok)
}

func TestTermInputDrains(t *testing.T) {
	in := newTermInput()
	in.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	in.handle(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone))
	in.handle(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))

	assert.Equal(t, []session.Command{session.MoveLeft, session.HardDrop}, in.Poll())
	assert.Empty(t, in.Poll())
}

func TestTermRenderer(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	defer screen.Fini()
	screen.SetSize(60, 30)

	s := session.New(config.Default(), session.WithRand(rand.New(rand.NewPCG(3, 3))))
	s.Tick(0)

	r := &termRenderer{screen: screen}
	r.Render(s)

	corner, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, '┌', corner)

	p := s.Active()
	require.NotNil(t, p)
	pos := p.Cells()[0]
	_, _, style, _ := screen.GetContent(1+pos.X*cellWidth, 1+pos.Y)
	_, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(int32(p.Color().R), int32(p.Color().G), int32(p.Color().B)), bg)

	label, _, _, _ := screen.GetContent(10*cellWidth+4, 1)
	assert.Equal(t, 'N', label)
}
