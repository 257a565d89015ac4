package rowan

import (
	"sync"
	"time"
)

// Clock drives a Runtime in real time: a background ticker calls
// Runtime.Update with measured wall-clock dt, so wait durations stay accurate
// even when ticks are delivered late. Hosts with their own frame loop (an
// ebiten game, the script runner in tests) skip the Clock and call
// Runtime.Update themselves.
type Clock struct {
	runtime  *Runtime
	interval time.Duration

	mu      sync.Mutex
	done    chan struct{}
	stopped chan struct{}
}

// NewClock creates a clock ticking at the runtime's nominal tick rate (~60Hz).
func NewClock(r *Runtime) *Clock {
	return &Clock{
		runtime:  r,
		interval: time.Second / 60,
	}
}

// Run starts the tick loop in a background goroutine. The loop exits when
// Stop is called or when the runtime stops running (e.g. via the Escape key).
// Calling Run on an already running clock is a no-op.
func (c *Clock) Run() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done != nil {
		return
	}
	c.done = make(chan struct{})
	c.stopped = make(chan struct{})

	go func(done, stopped chan struct{}) {
		defer close(stopped)
		ticker := time.NewTicker(c.interval)
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				dt := now.Sub(last).Seconds()
				last = now
				c.runtime.Update(dt)
				if !c.runtime.Running() {
					return
				}
			}
		}
	}(c.done, c.stopped)
}

// Stop halts the tick loop, waits for the in-flight tick to finish, and then
// stops the runtime. Safe to call from any goroutine, and idempotent.
func (c *Clock) Stop() {
	c.mu.Lock()
	done, stopped := c.done, c.stopped
	c.done, c.stopped = nil, nil
	c.mu.Unlock()

	if done != nil {
		// Cancel the session first so a tick racing the close aborts
		// instances instead of stepping them.
		if c.runtime.sess != nil {
			c.runtime.sess.stop()
		}
		close(done)
		<-stopped
	}
	c.runtime.Stop()
}
