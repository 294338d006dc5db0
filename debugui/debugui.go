// Package debugui draws Dear ImGui debug windows for a running session and
// the frame scheduler that drives it.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/frame"
)

// Window is a Dear ImGui window rendered once per frame.
type Window interface {
	Render(f *frame.Frame)
}

// WindowFunc adapts a function to the Window interface.
type WindowFunc func(f *frame.Frame)

func (fn WindowFunc) Render(f *frame.Frame) { fn(f) }

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Front ends check it before turning key presses into commands.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System updates the input state and defers every window's render function
// to the end of the frame, after the session has been ticked.
type System struct {
	Windows []Window
	Input   *InputState
}

// Execute updates input state and queues all window renders.
func (s *System) Execute(f *frame.Frame) {
	if s.Input != nil {
		io := imgui.CurrentIO()
		s.Input.WantCaptureMouse = io.WantCaptureMouse()
		s.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, w := range s.Windows {
		f.Commands.Defer(func() { w.Render(f) })
	}
}
