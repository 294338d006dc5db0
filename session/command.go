package session

//go:generate go tool stringer -type=Command,State

// Command is a discrete input event.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	SoftDrop
	HardDrop
	Rotate
	Hold
	Pause
	Quit
)

// State is the session's position in its lifecycle.
type State uint8

const (
	Active State = iota
	Paused
	Stopped
)

// Input produces the commands entered since the previous poll.
type Input interface {
	Poll() []Command
}

// Renderer draws the session. Implementations only read from it.
type Renderer interface {
	Render(s *Session)
}

// InputFunc adapts a function to the Input interface.
type InputFunc func() []Command

func (fn InputFunc) Poll() []Command { return fn() }
