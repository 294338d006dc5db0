package frame_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/blockfall/frame"
)

type Clock struct {
	Elapsed time.Duration
}

func (c *Clock) Execute(f *frame.Frame) {
	c.Elapsed += f.DeltaTime
}

// ExampleScheduler demonstrates running systems frame by frame. Systems
// execute in registration order, and work deferred through Commands runs
// after all of them.
func ExampleScheduler() {
	clock := &Clock{}

	scheduler := frame.NewScheduler()
	scheduler.Register(clock)
	scheduler.Register(frame.SystemFunc(func(f *frame.Frame) {
		f.Commands.Defer(func() {
			fmt.Printf("frame %d: %s\n", f.Number, clock.Elapsed)
		})
	}))

	scheduler.Once(250 * time.Millisecond)
	scheduler.Once(250 * time.Millisecond)

	// Output:
	// frame 1: 250ms
	// frame 2: 500ms
}

// ExampleScheduler_Run demonstrates running a continuous loop. Run blocks
// until the context is cancelled or a system calls Commands.Stop.
func ExampleScheduler_Run() {
	scheduler := frame.NewScheduler()
	scheduler.Register(frame.SystemFunc(func(f *frame.Frame) {
		if f.Number == 3 {
			f.Commands.Stop()
		}
	}))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	scheduler.Run(ctx, time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}
