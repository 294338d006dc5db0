package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/debugui"
	"github.com/plus3/blockfall/session"
)

// Held movement keys repeat after repeatDelay ticks, every repeatRate ticks.
const (
	repeatDelay = 8
	repeatRate  = 2
)

type binding struct {
	keys    []ebiten.Key
	command session.Command
	repeat  bool
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, command: session.MoveLeft, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, command: session.MoveRight, repeat: true},
	{keys: []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, command: session.SoftDrop, repeat: true},
	{keys: []ebiten.Key{ebiten.KeySpace}, command: session.HardDrop},
	{keys: []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyZ}, command: session.Rotate},
	{keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyShiftLeft}, command: session.Hold},
	{keys: []ebiten.Key{ebiten.KeyP, ebiten.KeyEscape}, command: session.Pause},
	{keys: []ebiten.Key{ebiten.KeyQ}, command: session.Quit},
}

// keyboard turns ebiten key state into session commands. Keys are ignored
// while the ImGui overlay has keyboard focus.
type keyboard struct {
	capture *debugui.InputState
}

func newKeyboard(capture *debugui.InputState) *keyboard {
	return &keyboard{capture: capture}
}

func (k *keyboard) Poll() []session.Command {
	if k.capture != nil && k.capture.WantCaptureKeyboard {
		return nil
	}

	var cmds []session.Command
	for _, b := range bindings {
		for _, key := range b.keys {
			if pressed(key, b.repeat) {
				cmds = append(cmds, b.command)
				break
			}
		}
	}
	return cmds
}

func pressed(key ebiten.Key, repeat bool) bool {
	if inpututil.IsKeyJustPressed(key) {
		return true
	}
	if !repeat {
		return false
	}
	return repeats(inpututil.KeyPressDuration(key))
}

// repeats reports whether a key held for d ticks fires a repeat this tick.
func repeats(d int) bool {
	return d >= repeatDelay && (d-repeatDelay)%repeatRate == 0
}
