package session

import "github.com/plus3/blockfall/frame"

// TickSystem drives a session from a frame scheduler. Each frame it polls
// Input, buffers the commands and ticks the session by the frame's delta
// time. Once the session stops running the scheduler is asked to stop.
type TickSystem struct {
	Session *Session
	Input   Input
}

func (s *TickSystem) Execute(f *frame.Frame) {
	if s.Input != nil {
		for _, cmd := range s.Input.Poll() {
			s.Session.Enqueue(cmd)
		}
	}
	s.Session.Tick(f.DeltaTime)
	if !s.Session.Running() {
		f.Commands.Stop()
	}
}

// RenderSystem hands the session to a Renderer after it has been ticked.
type RenderSystem struct {
	Session  *Session
	Renderer Renderer
}

func (s *RenderSystem) Execute(f *frame.Frame) {
	s.Renderer.Render(s.Session)
}
