package ttt

import (
	"time"
)

// VirtualTime tracks time.
//
// The progression of time can be scaled by setting the Scale field.
// This will scale the Delta and DeltaSecs values starting at the next frame.
type VirtualTime struct {
	Elapsed   time.Duration
	Delta     time.Duration
	DeltaSecs float64

	// Frame counts the frames started so far, the first frame is 1.
	Frame uint64

	Scale float64
}

// Advance moves the virtual time forward by the given wall clock delta.
func (v *VirtualTime) Advance(realDelta time.Duration) {
	v.Frame += 1

	v.Delta = time.Duration(float64(realDelta) * v.Scale)
	v.DeltaSecs = v.Delta.Seconds()
	v.Elapsed += v.Delta
}

type virtualClock struct {
	lastTime time.Time
}

func (c *virtualClock) update(world *World) {
	v := MustResourceOf[VirtualTime](world)

	now := time.Now()

	if c.lastTime.IsZero() {
		c.lastTime = now
	}

	delta := now.Sub(c.lastTime)
	c.lastTime = now

	v.Advance(delta)
}
