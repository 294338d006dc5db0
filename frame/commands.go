package frame

// Commands buffers work that runs after every system of a frame has
// executed.
type Commands struct {
	defers []func()
	stop   bool
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run at the end of the frame, in queue order.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Stop asks the scheduler to end Run after this frame.
func (c *Commands) Stop() {
	c.stop = true
}

// Stopped reports whether Stop was called during the frame.
func (c *Commands) Stopped() bool {
	return c.stop
}

// Flush runs queued functions and resets the buffer. Functions queued by a
// deferred function run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	c.defers = c.defers[:0]
}
