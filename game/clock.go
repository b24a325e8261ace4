package game

import "time"

// Clock is the monotonic time source driving auto-fire and survival time
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. time.Now carries a monotonic reading,
// so differences between two readings are immune to wall clock jumps.
type SystemClock struct{}

// Now returns time.Now()
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock provides a controllable time source for tests and headless runs
type ManualClock struct {
	current time.Time
}

// NewManualClock creates a manual clock starting at the given time
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current manual time
func (m *ManualClock) Now() time.Time {
	return m.current
}

// Advance moves the clock forward by d
func (m *ManualClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}

// PausableClock wraps another clock and hides the time spent paused, so
// survival time only counts while the run is actually playing. Time spent
// waiting on a reward choice is not a pause and keeps counting.
type PausableClock struct {
	inner    Clock
	paused   bool
	pausedAt time.Time
	offset   time.Duration
}

// NewPausableClock wraps inner; a nil inner reads the system clock
func NewPausableClock(inner Clock) *PausableClock {
	if inner == nil {
		inner = SystemClock{}
	}
	return &PausableClock{inner: inner}
}

// Now returns the inner time minus every completed pause. While paused it
// stays frozen at the moment the pause began.
func (c *PausableClock) Now() time.Time {
	if c.paused {
		return c.pausedAt.Add(-c.offset)
	}
	return c.inner.Now().Add(-c.offset)
}

// Pause freezes the clock; pausing twice is a no-op
func (c *PausableClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.inner.Now()
}

// Resume lets the clock run again and discards the paused interval
func (c *PausableClock) Resume() {
	if !c.paused {
		return
	}
	c.offset += c.inner.Now().Sub(c.pausedAt)
	c.paused = false
}

// SetPaused pauses or resumes the clock
func (c *PausableClock) SetPaused(paused bool) {
	if paused {
		c.Pause()
	} else {
		c.Resume()
	}
}

// Paused reports whether the clock is frozen
func (c *PausableClock) Paused() bool {
	return c.paused
}
