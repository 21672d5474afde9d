package dda

import "time"

// DelayFunc is called by a Rasterizer after every plotted pixel. It exists
// to animate drawing progress and is nil everywhere else.
type DelayFunc func()

// NoDelay plots at full speed.
var NoDelay DelayFunc

// Sleep returns a DelayFunc that blocks for d. A non-positive d yields
// NoDelay.
func Sleep(d time.Duration) DelayFunc {
	if d <= 0 {
		return NoDelay
	}
	return func() { time.Sleep(d) }
}
