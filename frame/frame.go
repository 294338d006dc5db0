package frame

import "time"

// Frame is the per-frame context shared by all systems.
type Frame struct {
	// DeltaTime is the time since the previous frame.
	DeltaTime time.Duration
	// Number counts frames from 1.
	Number   uint64
	Commands *Commands
}

func newFrame(dt time.Duration, number uint64) *Frame {
	return &Frame{
		DeltaTime: dt,
		Number:    number,
		Commands:  newCommands(),
	}
}
