// Package frame drives per-frame systems at a fixed rate.
//
// A Scheduler runs every registered System once per frame, in registration
// order, handing each the same Frame. Work that must not happen while other
// systems are still reading shared state is queued on Frame.Commands and
// runs after the last system.
package frame

// System represents a behavior executed once per frame. Systems may keep
// their own state between frames.
type System interface {
	Execute(f *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(f *Frame)

func (fn SystemFunc) Execute(f *Frame) { fn(f) }
