package main

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/session"
)

// termInput buffers commands decoded from key events on the polling
// goroutine until the scheduler drains them.
type termInput struct {
	mu      sync.Mutex
	pending []session.Command
}

func newTermInput() *termInput {
	return &termInput{}
}

func (in *termInput) handle(ev *tcell.EventKey) {
	cmd, ok := commandFor(ev)
	if !ok {
		return
	}
	in.mu.Lock()
	in.pending = append(in.pending, cmd)
	in.mu.Unlock()
}

func (in *termInput) Poll() []session.Command {
	in.mu.Lock()
	defer in.mu.Unlock()
	cmds := in.pending
	in.pending = nil
	return cmds
}

func commandFor(ev *tcell.EventKey) (session.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return session.MoveLeft, true
	case tcell.KeyRight:
		return session.MoveRight, true
	case tcell.KeyDown:
		return session.SoftDrop, true
	case tcell.KeyUp:
		return session.Rotate, true
	case tcell.KeyEscape:
		return session.Pause, true
	case tcell.KeyCtrlC:
		return session.Quit, true
	case tcell.KeyRune:
	default:
		return 0, false
	}

	switch ev.Rune() {
	case 'a', 'h':
		return session.MoveLeft, true
	case 'd', 'l':
		return session.MoveRight, true
	case 's', 'j':
		return session.SoftDrop, true
	case 'w', 'k', 'z':
		return session.Rotate, true
	case ' ':
		return session.HardDrop, true
	case 'c':
		return session.Hold, true
	case 'p':
		return session.Pause, true
	case 'q':
		return session.Quit, true
	}
	return 0, false
}
