package ttt

import (
	"slices"
	"time"
)

// FrameTime describes the frame a step function is invoked for.
type FrameTime struct {
	Frame   uint64
	Delta   time.Duration
	Elapsed time.Duration
}

// FrameTicker invokes a step function once per displayed frame until the
// returned handle is cancelled.
type FrameTicker interface {
	RequestFrames(step func(FrameTime)) *FrameHandle
}

// FrameHandle refers to a step function registered with a FrameTicker.
type FrameHandle struct {
	step func(FrameTime)
}

// Cancel stops all further invocations of the step function, including pending
// ones in the frame that is currently executing. Calling Cancel more than once is a no-op.
func (h *FrameHandle) Cancel() {
	if h != nil {
		h.step = nil
	}
}

// Active returns true until Cancel was called.
func (h *FrameHandle) Active() bool {
	return h != nil && h.step != nil
}

// Frames is the FrameTicker of a World. It is inserted by the App and stepped
// from the Update schedule.
type Frames struct {
	_ noCopy

	handles []*FrameHandle
}

var _ FrameTicker = (*Frames)(nil)

func (f *Frames) RequestFrames(step func(FrameTime)) *FrameHandle {
	handle := &FrameHandle{step: step}
	f.handles = append(f.handles, handle)
	return handle
}

// Step invokes every active step function once, in the order they were requested.
// Steps requested while stepping run first in the next call to Step.
func (f *Frames) Step(t FrameTime) {
	pending := len(f.handles)

	for idx := 0; idx < pending; idx++ {
		// re-check for every handle, a previous step might have cancelled it
		if step := f.handles[idx].step; step != nil {
			step(t)
		}
	}

	f.handles = slices.DeleteFunc(f.handles, func(h *FrameHandle) bool {
		return !h.Active()
	})
}

// Active returns the number of step functions that have not been cancelled.
func (f *Frames) Active() int {
	var count int
	for _, handle := range f.handles {
		if handle.Active() {
			count += 1
		}
	}

	return count
}

func runFramesSystem(world *World) {
	vt := MustResourceOf[VirtualTime](world)

	MustResourceOf[Frames](world).Step(FrameTime{
		Frame:   vt.Frame,
		Delta:   vt.Delta,
		Elapsed: vt.Elapsed,
	})
}
